package glcanvas

import (
	"fmt"

	"github.com/tdewolff/glcanvas/gles"
)

// Style is a fill or stroke style, one of SolidColor, *Gradient or *Pattern.
type Style interface {
	clone() Style
}

// SolidColor is a CSS color string, see ParseColor.
type SolidColor string

func (c SolidColor) clone() Style {
	return c
}

func validateStyle(style Style) error {
	switch s := style.(type) {
	case SolidColor:
		if _, err := ParseColor(string(s)); err != nil {
			return err
		}
	case *Gradient:
		if s == nil {
			return fmt.Errorf("nil gradient: %w", ErrSyntax)
		} else if MaxGradientStops < len(s.stops) {
			return fmt.Errorf("%d gradient stops: %w", len(s.stops), ErrIndexSize)
		}
	case *Pattern:
		if s == nil || s.Image == nil {
			return fmt.Errorf("nil pattern: %w", ErrSyntax)
		}
	default:
		return fmt.Errorf("bad style %T: %w", style, ErrSyntax)
	}
	return nil
}

// applyStyle binds the program of the style's family and uploads its uniforms. Applying the style
// that is already bound does nothing.
func (c *Context) applyStyle(style Style) error {
	if style == c.activeStyle {
		return nil
	}

	switch s := style.(type) {
	case SolidColor:
		col, err := ParseColor(string(s))
		if err != nil {
			return err
		}
		p, err := c.program(flatFamily)
		if err != nil {
			return err
		}
		c.useProgram(p)
		c.gl.Uniform4fv(p.uniform("uColor"), col[:])
	case *Gradient:
		if MaxGradientStops < len(s.stops) {
			return fmt.Errorf("%d gradient stops: %w", len(s.stops), ErrIndexSize)
		}
		f := linearFamily
		if s.Kind == RadialGradient {
			f = radialFamily
		}
		p, err := c.program(f)
		if err != nil {
			return err
		}
		c.useProgram(p)
		if s.Kind == RadialGradient {
			c.gl.Uniform1f(p.uniform("r0"), float32(s.R0))
			c.gl.Uniform1f(p.uniform("r1"), float32(s.R1))
		}
		c.gl.Uniform2f(p.uniform("p0"), float32(s.P0.X), float32(s.P0.Y))
		c.gl.Uniform2f(p.uniform("p1"), float32(s.P1.X), float32(s.P1.Y))

		stops := s.Stops()
		colors := make([]float32, 0, 4*len(stops))
		offsets := make([]float32, 0, len(stops)+1)
		for _, stop := range stops {
			colors = append(colors, stop.Color[:]...)
			offsets = append(offsets, float32(stop.Offset))
		}
		offsets = append(offsets, -1.0)
		if 0 < len(colors) {
			c.gl.Uniform4fv(p.uniform("colors[0]"), colors)
		}
		c.gl.Uniform1fv(p.uniform("offsets[0]"), offsets)
	case *Pattern:
		p, err := c.program(patternFamily)
		if err != nil {
			return err
		}
		tex, err := c.patternTexture(s.Image)
		if err != nil {
			return err
		}
		c.useProgram(p)
		size := s.Image.Bounds().Size()
		c.gl.ActiveTexture(gles.TEXTURE0)
		c.gl.BindTexture(gles.TEXTURE_2D, tex)
		c.gl.Uniform1i(p.uniform("uTexture"), 0)
		c.gl.Uniform2f(p.uniform("uTextureSize"), float32(size.X), float32(size.Y))
		c.gl.Uniform1i(p.uniform("uRepeatMode"), int(s.Repeat))
	default:
		return fmt.Errorf("bad style %T: %w", style, ErrSyntax)
	}
	c.gl.Uniform1f(c.active.uniform("uGlobalAlpha"), float32(c.state.alpha))
	c.activeStyle = style
	return nil
}
