// Package demo contains the scenes drawn by the command line tools.
package demo

import (
	"fmt"
	"image"
	"image/color"
	"math"
	"sort"

	"github.com/tdewolff/glcanvas"
)

// Scene draws a frame at time t in seconds.
type Scene func(c *glcanvas.Context, t float64) error

var scenes = map[string]Scene{
	"preview":   Preview,
	"shapes":    Shapes,
	"gradients": Gradients,
	"patterns":  Patterns,
	"pixels":    Pixels,
}

// Names returns the names of all scenes in alphabetical order.
func Names() []string {
	names := make([]string, 0, len(scenes))
	for name := range scenes {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// Lookup returns the scene with the given name.
func Lookup(name string) (Scene, error) {
	scene, ok := scenes[name]
	if !ok {
		return nil, fmt.Errorf("unknown scene %q, choose from %v", name, Names())
	}
	return scene, nil
}

// Preview draws every scene in a grid cell, animated by t.
func Preview(c *glcanvas.Context, t float64) error {
	if err := c.ClearRect(0.0, 0.0, float64(c.Width()), float64(c.Height())); err != nil {
		return err
	}
	parts := []Scene{Shapes, Gradients, Patterns}
	w, h := float64(c.Width())/float64(len(parts)), float64(c.Height())
	for i, scene := range parts {
		c.Save()
		c.Translate(float64(i)*w, 0.0)
		c.Scale(w/200.0, h/200.0)
		err := scene(c, t)
		c.Restore()
		if err != nil {
			return err
		}
	}
	return nil
}

// Shapes draws filled and stroked paths in a 200x200 area: a concave star, stroked polylines with
// every cap and join, a dashed circle whose dashes move with t, an SVG path, a spinning ellipse and
// a rotating rounded rectangle.
func Shapes(c *glcanvas.Context, t float64) error {
	c.Save()
	defer c.Restore()

	// star
	if err := c.SetFillStyle(glcanvas.SolidColor("#fbd433")); err != nil {
		return err
	}
	c.BeginPath()
	for i := 0; i < 10; i++ {
		r := 40.0
		if i%2 == 1 {
			r = 16.0
		}
		theta := float64(i)*math.Pi/5.0 - math.Pi/2.0
		c.LineTo(50.0+r*math.Cos(theta), 50.0+r*math.Sin(theta))
	}
	c.ClosePath()
	if err := c.Fill(); err != nil {
		return err
	}

	// caps and joins
	if err := c.SetStrokeStyle(glcanvas.SolidColor("rgb(20,21,24)")); err != nil {
		return err
	} else if err := c.SetLineWidth(6.0); err != nil {
		return err
	}
	caps := []glcanvas.LineCap{glcanvas.ButtCap, glcanvas.RoundCap, glcanvas.SquareCap}
	joins := []glcanvas.LineJoin{glcanvas.MiterJoin, glcanvas.RoundJoin, glcanvas.BevelJoin}
	for i := range caps {
		if err := c.SetLineCap(caps[i]); err != nil {
			return err
		} else if err := c.SetLineJoin(joins[i]); err != nil {
			return err
		}
		x := 110.0 + float64(i)*30.0
		c.BeginPath()
		c.MoveTo(x, 80.0)
		c.LineTo(x+10.0, 20.0)
		c.LineTo(x+20.0, 80.0)
		if err := c.Stroke(); err != nil {
			return err
		}
	}

	// dashed circle
	if err := c.SetStrokeStyle(glcanvas.SolidColor("hsl(210,80%,40%)")); err != nil {
		return err
	} else if err := c.SetLineWidth(3.0); err != nil {
		return err
	} else if err := c.SetLineCap(glcanvas.RoundCap); err != nil {
		return err
	} else if err := c.SetLineDash([]float64{8.0, 6.0, 2.0, 6.0}); err != nil {
		return err
	} else if err := c.SetLineDashOffset(-20.0 * t); err != nil {
		return err
	}
	c.BeginPath()
	if err := c.Arc(50.0, 150.0, 35.0, 0.0, 2.0*math.Pi, false); err != nil {
		return err
	} else if err := c.Stroke(); err != nil {
		return err
	} else if err := c.SetLineDash(nil); err != nil {
		return err
	}

	// heart and ellipse
	if err := c.SetFillStyle(glcanvas.SolidColor("#e0245e")); err != nil {
		return err
	}
	c.BeginPath()
	if err := c.AddSVGPath(heart); err != nil {
		return err
	} else if err := c.Fill(); err != nil {
		return err
	}
	c.BeginPath()
	if err := c.Ellipse(100.0, 150.0, 6.0, 14.0, t, 0.0, 2.0*math.Pi, false); err != nil {
		return err
	} else if err := c.Stroke(); err != nil {
		return err
	}

	// rotating rectangle
	c.Save()
	c.Translate(150.0, 150.0)
	c.Rotate(t)
	if err := c.SetFillStyle(glcanvas.SolidColor("rgba(46,139,87,0.5)")); err != nil {
		c.Restore()
		return err
	}
	c.BeginPath()
	err := c.RoundRect(-30.0, -20.0, 60.0, 40.0, 8.0, 0.0)
	if err == nil {
		err = c.Fill()
	}
	if err == nil {
		err = c.Stroke()
	}
	c.Restore()
	return err
}

const heart = "M100 95c-3-6-18-6-18 5c0 9 12 13 18 19c6-6 18-10 18-19c0-11-15-11-18-5z"

// Gradients draws a linear gradient whose stops shift with t and a radial gradient between two
// circles in a 200x200 area.
func Gradients(c *glcanvas.Context, t float64) error {
	c.Save()
	defer c.Restore()

	linear, err := c.CreateLinearGradient(10.0, 0.0, 190.0, 0.0)
	if err != nil {
		return err
	}
	mid := 0.5 + 0.4*math.Sin(t)
	for _, stop := range []struct {
		offset float64
		color  string
	}{{0.0, "turquoise"}, {mid, "white"}, {1.0, "crimson"}} {
		if err := linear.AddColorStop(stop.offset, stop.color); err != nil {
			return err
		}
	}
	if err := c.SetFillStyle(linear); err != nil {
		return err
	} else if err := c.FillRect(10.0, 10.0, 180.0, 80.0); err != nil {
		return err
	}

	radial, err := c.CreateRadialGradient(80.0, 130.0, 5.0, 100.0, 145.0, 50.0)
	if err != nil {
		return err
	} else if err := radial.AddColorStop(0.0, "#fff"); err != nil {
		return err
	} else if err := radial.AddColorStop(0.3, "gold"); err != nil {
		return err
	} else if err := radial.AddColorStop(1.0, "rgba(255,69,0,0)"); err != nil {
		return err
	} else if err := c.SetFillStyle(radial); err != nil {
		return err
	}
	c.BeginPath()
	if err := c.Arc(100.0, 145.0, 50.0, 0.0, 2.0*math.Pi, false); err != nil {
		return err
	}
	return c.Fill()
}

// Checkerboard returns an image of n×n squares of size px alternating between two colors.
func Checkerboard(n, px int, a, b color.Color) *image.NRGBA {
	img := image.NewNRGBA(image.Rect(0, 0, n*px, n*px))
	for y := 0; y < n*px; y++ {
		for x := 0; x < n*px; x++ {
			if (x/px+y/px)%2 == 0 {
				img.Set(x, y, a)
			} else {
				img.Set(x, y, b)
			}
		}
	}
	return img
}

// Patterns draws a repeating pattern, a scaled image, and a sub-region of the image in a 200x200 area.
func Patterns(c *glcanvas.Context, t float64) error {
	c.Save()
	defer c.Restore()

	img := Checkerboard(4, 4, color.NRGBA{0xe0, 0x40, 0x40, 0xff}, color.NRGBA{0xf0, 0xf0, 0xf0, 0xff})
	pattern, err := c.CreatePattern(img, "repeat")
	if err != nil {
		return err
	} else if err := c.SetFillStyle(pattern); err != nil {
		return err
	}
	c.BeginPath()
	if err := c.Arc(50.0, 50.0, 40.0, 0.0, 2.0*math.Pi, false); err != nil {
		return err
	} else if err := c.Fill(); err != nil {
		return err
	}

	if err := c.DrawImageScaled(img, 110.0, 10.0, 80.0, 80.0); err != nil {
		return err
	}

	c.Translate(100.0, 150.0)
	c.Rotate(0.25 * math.Sin(t))
	if err := c.SetGlobalAlpha(0.75); err != nil {
		return err
	}
	return c.DrawImageRegion(img, 0.0, 0.0, 8.0, 8.0, -40.0, -40.0, 80.0, 80.0)
}

// Pixels draws a gradient, reads it back, and writes it inverted and mirrored next to it.
func Pixels(c *glcanvas.Context, t float64) error {
	c.Save()
	defer c.Restore()

	w, h := c.Width()/2, c.Height()
	if w < 1 || h < 1 {
		return nil
	}
	g, err := c.CreateLinearGradient(0.0, 0.0, float64(w), float64(h))
	if err != nil {
		return err
	} else if err := g.AddColorStop(0.0, "navy"); err != nil {
		return err
	} else if err := g.AddColorStop(1.0, "orange"); err != nil {
		return err
	} else if err := c.SetFillStyle(g); err != nil {
		return err
	} else if err := c.FillRect(0.0, 0.0, float64(w), float64(h)); err != nil {
		return err
	}

	data, err := c.GetImageData(0, 0, w, h)
	if err != nil {
		return err
	}
	out, err := c.CreateImageDataFrom(data)
	if err != nil {
		return err
	}
	for y := 0; y < h; y++ {
		for x := 0; x < w; x++ {
			src := 4 * (y*w + x)
			dst := 4 * (y*w + w - 1 - x)
			for k := 0; k < 3; k++ {
				out.Data[dst+k] = 255 - data.Data[src+k]
			}
			out.Data[dst+3] = data.Data[src+3]
		}
	}
	return c.PutImageData(out, float64(w), 0.0)
}
