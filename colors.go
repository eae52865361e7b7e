package glcanvas

import (
	"fmt"
	"image/color"
	"math"
	"strings"

	"github.com/tdewolff/parse/v2/strconv"
	"golang.org/x/image/colornames"
)

// ParseColor parses a CSS color into non alpha-premultiplied red, green, blue and alpha ∈ [0,1].
// It accepts #rgb, #rgba, #rrggbb, #rrggbbaa, rgb(), rgba(), hsl(), hsla(), transparent and the
// CSS named colors. The alpha defaults to 1.
func ParseColor(s string) ([4]float32, error) {
	s = strings.ToLower(strings.TrimSpace(s))
	if s == "" {
		return [4]float32{}, fmt.Errorf("bad color value %q: %w", s, ErrSyntax)
	} else if s[0] == '#' {
		if c, ok := parseHex(s[1:]); ok {
			return c, nil
		}
	} else if open := strings.IndexByte(s, '('); open != -1 && s[len(s)-1] == ')' {
		if c, ok := parseFunction(s[:open], s[open+1:len(s)-1]); ok {
			return c, nil
		}
	} else if s == "transparent" {
		return [4]float32{}, nil
	} else if c, ok := colornames.Map[s]; ok {
		return fromRGBA(c), nil
	}
	return [4]float32{}, fmt.Errorf("bad color value %q: %w", s, ErrSyntax)
}

// ColorString returns the CSS representation of a color, it is the inverse of ParseColor.
func ColorString(c color.Color) string {
	n := color.NRGBAModel.Convert(c).(color.NRGBA)
	if n.A == 0xff {
		return fmt.Sprintf("#%02x%02x%02x", n.R, n.G, n.B)
	}
	return fmt.Sprintf("rgba(%d,%d,%d,%g)", n.R, n.G, n.B, math.Round(float64(n.A)/255.0*1000.0)/1000.0)
}

func fromRGBA(c color.RGBA) [4]float32 {
	return [4]float32{float32(c.R) / 255.0, float32(c.G) / 255.0, float32(c.B) / 255.0, float32(c.A) / 255.0}
}

func parseHex(s string) ([4]float32, bool) {
	h := make([]uint8, len(s))
	for i := 0; i < len(s); i++ {
		c := s[i]
		if '0' <= c && c <= '9' {
			h[i] = c - '0'
		} else if 'a' <= c && c <= 'f' {
			h[i] = 10 + c - 'a'
		} else {
			return [4]float32{}, false
		}
	}

	c := color.RGBA{A: 0xff}
	switch len(s) {
	case 3, 4:
		c.R, c.G, c.B = h[0]*17, h[1]*17, h[2]*17
		if len(s) == 4 {
			c.A = h[3] * 17
		}
	case 6, 8:
		c.R, c.G, c.B = h[0]<<4|h[1], h[2]<<4|h[3], h[4]<<4|h[5]
		if len(s) == 8 {
			c.A = h[6]<<4 | h[7]
		}
	default:
		return [4]float32{}, false
	}
	return fromRGBA(c), true
}

// colorArgs splits the arguments of a color function, either comma separated or space separated
// with an optional slash before the alpha.
func colorArgs(s string) []string {
	var args []string
	if strings.IndexByte(s, ',') != -1 {
		args = strings.Split(s, ",")
	} else {
		s = strings.Replace(s, "/", " / ", 1)
		for _, f := range strings.Fields(s) {
			if f != "/" {
				args = append(args, f)
			}
		}
	}
	for i := range args {
		args[i] = strings.TrimSpace(args[i])
	}
	return args
}

// parseNumber parses a number with an optional percentage sign, where 100% equals scale.
func parseNumber(s string, scale float64) (float64, bool) {
	f, n := strconv.ParseFloat([]byte(s))
	if n == 0 {
		return 0.0, false
	}
	if n == len(s)-1 && s[n] == '%' {
		return f / 100.0 * scale, true
	} else if n != len(s) {
		return 0.0, false
	}
	return f, true
}

func clamp01(f float64) float32 {
	return float32(math.Max(0.0, math.Min(f, 1.0)))
}

func parseFunction(name, s string) ([4]float32, bool) {
	args := colorArgs(s)
	if len(args) != 3 && len(args) != 4 {
		return [4]float32{}, false
	}

	alpha := 1.0
	if len(args) == 4 {
		var ok bool
		if alpha, ok = parseNumber(args[3], 1.0); !ok {
			return [4]float32{}, false
		}
	}

	switch name {
	case "rgb", "rgba":
		var c [4]float32
		for i := 0; i < 3; i++ {
			v, ok := parseNumber(args[i], 255.0)
			if !ok {
				return [4]float32{}, false
			}
			c[i] = clamp01(v / 255.0)
		}
		c[3] = clamp01(alpha)
		return c, true
	case "hsl", "hsla":
		hue, n := strconv.ParseFloat([]byte(strings.TrimSuffix(args[0], "deg")))
		if n == 0 || n != len(strings.TrimSuffix(args[0], "deg")) {
			return [4]float32{}, false
		}
		sat, ok := parseNumber(args[1], 1.0)
		if !ok || !strings.HasSuffix(args[1], "%") {
			return [4]float32{}, false
		}
		light, ok := parseNumber(args[2], 1.0)
		if !ok || !strings.HasSuffix(args[2], "%") {
			return [4]float32{}, false
		}
		r, g, b := hslToRGB(hue, sat, light)
		return [4]float32{clamp01(r), clamp01(g), clamp01(b), clamp01(alpha)}, true
	}
	return [4]float32{}, false
}

// hslToRGB converts hue in degrees and saturation and lightness ∈ [0,1] to RGB ∈ [0,1].
func hslToRGB(h, s, l float64) (float64, float64, float64) {
	h = math.Mod(h, 360.0)
	if h < 0.0 {
		h += 360.0
	}
	s = math.Max(0.0, math.Min(s, 1.0))
	l = math.Max(0.0, math.Min(l, 1.0))

	f := func(n float64) float64 {
		k := math.Mod(n+h/30.0, 12.0)
		a := s * math.Min(l, 1.0-l)
		return l - a*math.Max(-1.0, math.Min(k-3.0, math.Min(9.0-k, 1.0)))
	}
	return f(0.0), f(8.0), f(4.0)
}
