package glcanvas

import (
	"errors"
	"math"
	"testing"

	"github.com/tdewolff/test"
)

func TestEllipse(t *testing.T) {
	c, _ := newTestContext(t, 10, 10)
	test.Error(t, c.Ellipse(0.0, 0.0, 10.0, 5.0, 0.0, 0.0, math.Pi/2.0, false))
	sp := subpaths(c)[0]
	test.That(t, sp[0].Equals(Point{10.0, 0.0}), sp[0])
	test.That(t, sp[len(sp)-1].Equals(Point{0.0, 5.0}), sp[len(sp)-1])
	for _, p := range sp {
		test.Float(t, p.X*p.X/100.0+p.Y*p.Y/25.0, 1.0, p)
	}

	// rotated by a quarter turn
	c.BeginPath()
	test.Error(t, c.Ellipse(0.0, 0.0, 10.0, 5.0, math.Pi/2.0, 0.0, math.Pi, true))
	sp = subpaths(c)[0]
	test.That(t, sp[0].Equals(Point{0.0, 10.0}), sp[0])
	test.That(t, sp[len(sp)-1].Equals(Point{0.0, -10.0}), sp[len(sp)-1])
	for _, p := range sp {
		test.That(t, -Epsilon < p.X, "counterclockwise passes through positive x", p)
	}

	c.BeginPath()
	test.Error(t, c.Ellipse(0.0, 0.0, 10.0, 5.0, 0.0, math.NaN(), 1.0, false))
	test.T(t, len(subpaths(c)), 0)
	test.That(t, errors.Is(c.Ellipse(0.0, 0.0, -1.0, 5.0, 0.0, 0.0, 1.0, false), ErrIndexSize))
	test.That(t, errors.Is(c.Ellipse(0.0, 0.0, 1.0, -5.0, 0.0, 0.0, 1.0, false), ErrIndexSize))
}

func TestRoundRect(t *testing.T) {
	c, _ := newTestContext(t, 10, 10)

	// radii larger than the sides are scaled down into a circle
	test.Error(t, c.RoundRect(0.0, 0.0, 10.0, 10.0, 10.0))
	sps := subpaths(c)
	test.That(t, sps[0].Closed())
	for _, p := range sps[0] {
		test.Float(t, p.Sub(Point{5.0, 5.0}).Length(), 5.0, p)
	}

	c.BeginPath()
	test.Error(t, c.RoundRect(0.0, 0.0, 10.0, 10.0, 0.0))
	sps = subpaths(c)
	test.T(t, sps[0], Subpath{{0.0, 0.0}, {10.0, 0.0}, {10.0, 10.0}, {0.0, 10.0}, {0.0, 0.0}, {0.0, 0.0}})

	// negative sizes mirror the rectangle
	c.BeginPath()
	test.Error(t, c.RoundRect(10.0, 10.0, -10.0, -10.0, 0.0, 0.0, 0.0, 2.0))
	sps = subpaths(c)
	test.T(t, sps[0][0], Point{0.0, 0.0})
	test.That(t, sps[0][1].Equals(Point{8.0, 0.0}), sps[0][1])

	errs := []struct {
		radii []float64
		err   error
	}{
		{nil, ErrIndexSize},
		{[]float64{1.0, 2.0, 3.0, 4.0, 5.0}, ErrIndexSize},
		{[]float64{1.0, -2.0}, ErrIndexSize},
	}
	for _, tt := range errs {
		test.That(t, errors.Is(c.RoundRect(0.0, 0.0, 10.0, 10.0, tt.radii...), tt.err), tt.radii)
	}

	c.BeginPath()
	test.Error(t, c.RoundRect(0.0, math.Inf(1), 10.0, 10.0, 1.0))
	test.Error(t, c.RoundRect(0.0, 0.0, 10.0, 10.0, math.NaN()))
	test.T(t, len(subpaths(c)), 0)
}

func TestFillRoundRect(t *testing.T) {
	c, gl := newTestContext(t, 10, 10)
	test.Error(t, c.SetFillStyle(SolidColor("red")))
	test.Error(t, c.RoundRect(0.0, 0.0, 10.0, 10.0, 4.0))
	test.Error(t, c.Fill())
	test.T(t, pixel(gl, 0, 0), transparent)
	test.T(t, pixel(gl, 9, 9), transparent)
	test.T(t, pixel(gl, 5, 0), opaqueRed)
	test.T(t, pixel(gl, 5, 5), opaqueRed)
}
