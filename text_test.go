package glcanvas

import (
	"testing"

	"github.com/tdewolff/test"
)

func TestMeasureText(t *testing.T) {
	c, _ := newTestContext(t, 4, 4)
	metrics := c.MeasureText("abc")
	test.Float(t, metrics.Width, 21.0)
	test.Float(t, metrics.Ascent, 11.0)
	test.Float(t, metrics.Descent, 2.0)
	test.Float(t, c.MeasureText("").Width, 0.0)
}

func TestFillText(t *testing.T) {
	c, gl := newTestContext(t, 4, 4)
	gl.ResetStats()
	test.Error(t, c.FillText("abc", 0.0, 0.0))
	test.Error(t, c.StrokeText("abc", 0.0, 0.0))
	test.T(t, gl.Stats.DrawArrays, 0)
}
