package glcanvas

import (
	"golang.org/x/image/font"
	"golang.org/x/image/font/basicfont"
)

// TextMetrics are the dimensions of a run of text in pixels.
type TextMetrics struct {
	Width   float64
	Ascent  float64
	Descent float64
}

// MeasureText measures text set in the fixed 7x13 bitmap font, which is the only font available.
func (c *Context) MeasureText(text string) TextMetrics {
	face := basicfont.Face7x13
	metrics := face.Metrics()
	return TextMetrics{
		Width:   float64(font.MeasureString(face, text)) / 64.0,
		Ascent:  float64(metrics.Ascent) / 64.0,
		Descent: float64(metrics.Descent) / 64.0,
	}
}

// FillText does not draw anything, text rendering is not implemented.
func (c *Context) FillText(text string, x, y float64) error {
	Logger().Debug("fillText is not implemented", "text", text)
	return nil
}

// StrokeText does not draw anything, text rendering is not implemented.
func (c *Context) StrokeText(text string, x, y float64) error {
	Logger().Debug("strokeText is not implemented", "text", text)
	return nil
}
