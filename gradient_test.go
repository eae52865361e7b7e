package glcanvas

import (
	"errors"
	"image/color"
	"math"
	"testing"

	"github.com/tdewolff/test"
)

func TestAddColorStop(t *testing.T) {
	c, _ := newTestContext(t, 4, 4)
	g, err := c.CreateLinearGradient(0.0, 0.0, 1.0, 0.0)
	test.Error(t, err)

	test.That(t, errors.Is(g.AddColorStop(-0.1, "red"), ErrIndexSize))
	test.That(t, errors.Is(g.AddColorStop(math.NaN(), "red"), ErrIndexSize))
	test.That(t, errors.Is(g.AddColorStop(0.5, "reddish"), ErrSyntax))
	test.T(t, len(g.Stops()), 0)

	test.Error(t, g.AddColorStop(1.0, "blue"))
	test.Error(t, g.AddColorStop(0.0, "red"))
	test.Error(t, g.AddColorStop(0.5, "#00ff00"))
	test.Error(t, g.AddColorStop(0.5, "white"))
	stops := g.Stops()
	test.T(t, len(stops), 4)
	test.Float(t, stops[0].Offset, 0.0)
	test.T(t, stops[1].Color, [4]float32{0.0, 1.0, 0.0, 1.0})
	test.T(t, stops[2].Color, [4]float32{1.0, 1.0, 1.0, 1.0})
	test.Float(t, stops[3].Offset, 1.0)

	for i := len(stops); i < MaxGradientStops; i++ {
		test.Error(t, g.AddColorStop(1.0, "black"))
	}
	test.That(t, errors.Is(g.AddColorStop(1.0, "black"), ErrIndexSize))
	test.T(t, len(g.Stops()), MaxGradientStops)
}

func TestCreateGradientErrors(t *testing.T) {
	c, _ := newTestContext(t, 4, 4)
	_, err := c.CreateLinearGradient(0.0, math.Inf(1), 1.0, 0.0)
	test.That(t, errors.Is(err, ErrSyntax))
	_, err = c.CreateRadialGradient(0.0, 0.0, -1.0, 0.0, 0.0, 1.0)
	test.That(t, errors.Is(err, ErrIndexSize))
	_, err = c.CreateRadialGradient(0.0, 0.0, 0.0, 0.0, math.NaN(), 1.0)
	test.That(t, errors.Is(err, ErrSyntax))
}

func TestGradientAt(t *testing.T) {
	c, _ := newTestContext(t, 4, 4)
	g, _ := c.CreateLinearGradient(0.0, 0.0, 10.0, 0.0)
	test.Error(t, g.AddColorStop(0.0, "red"))
	test.Error(t, g.AddColorStop(1.0, "blue"))
	test.T(t, g.At(-5.0, 3.0), color.NRGBA{255, 0, 0, 255})
	test.T(t, g.At(5.0, 100.0), color.NRGBA{128, 0, 128, 255})
	test.T(t, g.At(20.0, 0.0), color.NRGBA{0, 0, 255, 255})

	r, _ := c.CreateRadialGradient(0.0, 0.0, 0.0, 0.0, 0.0, 10.0)
	test.Error(t, r.AddColorStop(0.0, "white"))
	test.Error(t, r.AddColorStop(1.0, "black"))
	test.T(t, r.At(0.0, 0.0), color.NRGBA{255, 255, 255, 255})
	test.T(t, r.At(0.0, 5.0), color.NRGBA{128, 128, 128, 255})
	test.T(t, r.At(30.0, 0.0), color.NRGBA{0, 0, 0, 255})

	empty, _ := c.CreateLinearGradient(0.0, 0.0, 10.0, 0.0)
	test.T(t, empty.At(5.0, 0.0), color.NRGBA{})
}

func TestFillLinearGradient(t *testing.T) {
	c, gl := newTestContext(t, 10, 2)
	g, _ := c.CreateLinearGradient(0.0, 0.0, 10.0, 0.0)
	test.Error(t, g.AddColorStop(0.0, "red"))
	test.Error(t, g.AddColorStop(1.0, "blue"))
	test.Error(t, c.SetFillStyle(g))
	test.Error(t, c.FillRect(0.0, 0.0, 10.0, 2.0))

	left, right := pixel(gl, 0, 0), pixel(gl, 9, 1)
	test.That(t, 200 < left.R && left.B < 50, left)
	test.That(t, right.R < 50 && 200 < right.B, right)
	test.T(t, left.A, uint8(255))

	// the gradient is in user space, also for paths which are flattened in device space
	c.BeginPath()
	c.Translate(5.0, 0.0)
	c.Rect(0.0, 0.0, 5.0, 2.0)
	test.Error(t, c.Fill())
	test.T(t, pixel(gl, 5, 0), g.At(0.5, 0.5))
}

func TestFillRadialGradient(t *testing.T) {
	c, gl := newTestContext(t, 9, 9)
	g, _ := c.CreateRadialGradient(4.5, 4.5, 0.0, 4.5, 4.5, 4.0)
	test.Error(t, g.AddColorStop(0.0, "white"))
	test.Error(t, g.AddColorStop(1.0, "black"))
	test.Error(t, c.SetFillStyle(g))
	test.Error(t, c.FillRect(0.0, 0.0, 9.0, 9.0))

	test.T(t, pixel(gl, 4, 4), color.NRGBA{255, 255, 255, 255})
	test.T(t, pixel(gl, 0, 0), color.NRGBA{0, 0, 0, 255})
	mid := pixel(gl, 6, 4)
	test.That(t, 100 < mid.R && mid.R < 155, mid)
}
