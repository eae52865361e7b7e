package glcanvas

import (
	"errors"
	"image/color"
	"testing"

	"github.com/tdewolff/test"
)

func TestParseColor(t *testing.T) {
	var tts = []struct {
		s   string
		rgb color.NRGBA
	}{
		{"#f00", color.NRGBA{255, 0, 0, 255}},
		{"#F00", color.NRGBA{255, 0, 0, 255}},
		{"#0f08", color.NRGBA{0, 255, 0, 136}},
		{"#336699", color.NRGBA{51, 102, 153, 255}},
		{"#33669980", color.NRGBA{51, 102, 153, 128}},
		{"red", color.NRGBA{255, 0, 0, 255}},
		{" Blue ", color.NRGBA{0, 0, 255, 255}},
		{"aliceblue", color.NRGBA{240, 248, 255, 255}},
		{"transparent", color.NRGBA{0, 0, 0, 0}},
		{"rgb(255,128,0)", color.NRGBA{255, 128, 0, 255}},
		{"rgb(100%, 0%, 50%)", color.NRGBA{255, 0, 128, 255}},
		{"rgba(255, 0, 0, 0.5)", color.NRGBA{255, 0, 0, 128}},
		{"rgba(0,0,0,0)", color.NRGBA{0, 0, 0, 0}},
		{"rgb(255 0 0 / 50%)", color.NRGBA{255, 0, 0, 128}},
		{"rgb(300,-20,0)", color.NRGBA{255, 0, 0, 255}},
		{"hsl(0, 100%, 50%)", color.NRGBA{255, 0, 0, 255}},
		{"hsl(120deg 100% 25%)", color.NRGBA{0, 128, 0, 255}},
		{"hsla(240, 100%, 50%, 0.25)", color.NRGBA{0, 0, 255, 64}},
	}
	for _, tt := range tts {
		t.Run(tt.s, func(t *testing.T) {
			c, err := ParseColor(tt.s)
			test.Error(t, err)
			rgb := color.NRGBA{toByte(float64(c[0])), toByte(float64(c[1])), toByte(float64(c[2])), toByte(float64(c[3]))}
			test.T(t, rgb, tt.rgb)
		})
	}
}

func TestParseColorErrors(t *testing.T) {
	var tts = []string{
		"",
		"#",
		"#12",
		"#12345",
		"#ggg",
		"rgb(1,2)",
		"rgb(1,2,3,4,5)",
		"rgb(a,b,c)",
		"rgb(1,2,3",
		"hsl(0, 1, 1)",
		"cmyk(0,0,0,0)",
		"notacolor",
	}
	for _, tt := range tts {
		t.Run(tt, func(t *testing.T) {
			_, err := ParseColor(tt)
			test.That(t, errors.Is(err, ErrSyntax), err)
		})
	}
}

func TestColorString(t *testing.T) {
	test.String(t, ColorString(color.NRGBA{255, 0, 0, 255}), "#ff0000")
	test.String(t, ColorString(color.NRGBA{0, 0, 255, 128}), "rgba(0,0,255,0.502)")
	test.String(t, ColorString(color.Transparent), "rgba(0,0,0,0)")

	c, err := ParseColor(ColorString(color.NRGBA{12, 34, 56, 255}))
	test.Error(t, err)
	test.T(t, toByte(float64(c[1])), uint8(34))
}
