package glcanvas

import (
	"errors"
	"image"
	"image/color"
	"testing"

	"github.com/tdewolff/test"
)

func TestParseRepeatMode(t *testing.T) {
	var tts = []struct {
		s    string
		mode RepeatMode
	}{
		{"", Repeat},
		{"repeat", Repeat},
		{"repeat-x", RepeatX},
		{"repeat-y", RepeatY},
		{"no-repeat", NoRepeat},
	}
	for _, tt := range tts {
		t.Run(tt.s, func(t *testing.T) {
			mode, err := ParseRepeatMode(tt.s)
			test.Error(t, err)
			test.T(t, mode, tt.mode)
		})
	}

	_, err := ParseRepeatMode("src-rect")
	test.That(t, errors.Is(err, ErrSyntax))
	_, err = ParseRepeatMode("repeat-z")
	test.That(t, errors.Is(err, ErrSyntax))
}

func TestCreatePatternErrors(t *testing.T) {
	c, _ := newTestContext(t, 4, 4)
	_, err := c.CreatePattern(nil, "repeat")
	test.That(t, errors.Is(err, ErrSyntax))
	_, err = c.CreatePattern(image.NewNRGBA(image.Rect(0, 0, 0, 0)), "repeat")
	test.That(t, errors.Is(err, ErrIndexSize))
	_, err = c.CreatePattern(checkerImage(), "mirror")
	test.That(t, errors.Is(err, ErrSyntax))
}

func TestFillPattern(t *testing.T) {
	red, green := color.NRGBA{255, 0, 0, 255}, color.NRGBA{0, 255, 0, 255}
	blue, white := color.NRGBA{0, 0, 255, 255}, color.NRGBA{255, 255, 255, 255}

	var tts = []struct {
		repeat string
		row0   []color.NRGBA
		col0   []color.NRGBA
	}{
		{"repeat", []color.NRGBA{red, green, red, green}, []color.NRGBA{red, blue, red, blue}},
		{"repeat-x", []color.NRGBA{red, green, red, green}, []color.NRGBA{red, blue, transparent, transparent}},
		{"repeat-y", []color.NRGBA{red, green, transparent, transparent}, []color.NRGBA{red, blue, red, blue}},
		{"no-repeat", []color.NRGBA{red, green, transparent, transparent}, []color.NRGBA{red, blue, transparent, transparent}},
	}
	for _, tt := range tts {
		t.Run(tt.repeat, func(t *testing.T) {
			c, gl := newTestContext(t, 4, 4)
			pattern, err := c.CreatePattern(checkerImage(), tt.repeat)
			test.Error(t, err)
			test.Error(t, c.SetFillStyle(pattern))
			test.Error(t, c.FillRect(0.0, 0.0, 4.0, 4.0))
			for i := 0; i < 4; i++ {
				test.T(t, pixel(gl, i, 0), tt.row0[i], "row", i)
				test.T(t, pixel(gl, 0, i), tt.col0[i], "col", i)
			}
			test.T(t, pixel(gl, 1, 1), white)
		})
	}
}

func TestPatternUserSpace(t *testing.T) {
	c, gl := newTestContext(t, 4, 4)
	pattern, _ := c.CreatePattern(checkerImage(), "repeat")
	test.Error(t, c.SetFillStyle(pattern))

	// the pattern moves along with the transformation, also for paths
	c.Translate(1.0, 0.0)
	c.Rect(0.0, 0.0, 2.0, 1.0)
	test.Error(t, c.Fill())
	test.T(t, pixel(gl, 0, 0), transparent)
	test.T(t, pixel(gl, 1, 0), color.NRGBA{255, 0, 0, 255})
	test.T(t, pixel(gl, 2, 0), color.NRGBA{0, 255, 0, 255})
}

func TestPatternTextureCache(t *testing.T) {
	c, gl := newTestContext(t, 4, 4)
	img := checkerImage()
	gl.ResetStats()

	for i := 0; i < 3; i++ {
		pattern, err := c.CreatePattern(img, "repeat")
		test.Error(t, err)
		test.Error(t, c.SetFillStyle(pattern))
		test.Error(t, c.FillRect(0.0, 0.0, 4.0, 4.0))
	}
	test.T(t, gl.Stats.TexImage2D, 1)

	pattern, _ := c.CreatePattern(checkerImage(), "repeat")
	test.Error(t, c.SetFillStyle(pattern))
	test.Error(t, c.FillRect(0.0, 0.0, 4.0, 4.0))
	test.T(t, gl.Stats.TexImage2D, 2)
}

func TestPatternTextureEviction(t *testing.T) {
	cfg := DefaultConfig()
	cfg.TextureCacheSize = 1
	c, gl := newTestContext(t, 4, 4, WithConfig(cfg))
	a, b := checkerImage(), checkerImage()
	gl.ResetStats()

	for _, img := range []*image.NRGBA{a, b, a} {
		pattern, _ := c.CreatePattern(img, "repeat")
		test.Error(t, c.SetFillStyle(pattern))
		test.Error(t, c.FillRect(0.0, 0.0, 4.0, 4.0))
	}
	test.T(t, gl.Stats.TexImage2D, 3)
	test.T(t, pixel(gl, 0, 0), color.NRGBA{255, 0, 0, 255})
	test.T(t, gl.Stats.Errors, 0)
}
