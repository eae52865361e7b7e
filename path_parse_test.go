package glcanvas

import (
	"errors"
	"math"
	"testing"

	"github.com/tdewolff/test"
)

func TestAddSVGPath(t *testing.T) {
	var tts = []struct {
		d        string
		subpaths []Subpath
	}{
		{"", nil},
		{"M1 2L3 4", []Subpath{{{1.0, 2.0}, {3.0, 4.0}}}},
		{"M1,2 3,4", []Subpath{{{1.0, 2.0}, {3.0, 4.0}}}},
		{"m1 2 3 4h1v-1z", []Subpath{{{1.0, 2.0}, {4.0, 6.0}, {5.0, 6.0}, {5.0, 5.0}, {1.0, 2.0}}, {{1.0, 2.0}}}},
		{"M0 0H5V5Zl1-1", []Subpath{{{0.0, 0.0}, {5.0, 0.0}, {5.0, 5.0}, {0.0, 0.0}}, {{0.0, 0.0}, {1.0, -1.0}}}},
		{"M0 0M1 1l.5.5", []Subpath{{{0.0, 0.0}}, {{1.0, 1.0}, {1.5, 1.5}}}},
		{"M0 0A0 5 0 0 1 10 0", []Subpath{{{0.0, 0.0}, {10.0, 0.0}}}},
	}
	for _, tt := range tts {
		t.Run(tt.d, func(t *testing.T) {
			c, _ := newTestContext(t, 10, 10)
			test.Error(t, c.AddSVGPath(tt.d))
			test.T(t, subpaths(c), tt.subpaths)
		})
	}
}

func TestAddSVGPathCurves(t *testing.T) {
	c, _ := newTestContext(t, 10, 10)
	test.Error(t, c.AddSVGPath("M0 0A5 5 0 0 1 10 0"))
	sp := subpaths(c)[0]
	test.That(t, sp[len(sp)-1].Equals(Point{10.0, 0.0}), sp[len(sp)-1])
	test.That(t, minY(sp) < -4.9, "sweep runs through negative y")
	for _, p := range sp {
		test.Float(t, p.Sub(Point{5.0, 0.0}).Length(), 5.0, p)
	}

	// radii are scaled up to reach the endpoint
	c.BeginPath()
	test.Error(t, c.AddSVGPath("M0 0a1 1 0 0 0 10 0"))
	sp = subpaths(c)[0]
	test.That(t, 4.9 < maxY(sp), "sweep runs through positive y")

	// smooth curves reflect the previous control point
	c.BeginPath()
	test.Error(t, c.AddSVGPath("M0 0Q5 10 10 0T20 0"))
	sp = subpaths(c)[0]
	test.T(t, sp[len(sp)-1], Point{20.0, 0.0})
	test.That(t, minY(sp) < -4.0)

	c.BeginPath()
	test.Error(t, c.AddSVGPath("M0 0c0 10 10 10 10 0s10-10 10 0"))
	sp = subpaths(c)[0]
	test.T(t, sp[len(sp)-1], Point{20.0, 0.0})
	test.That(t, minY(sp) < -7.0)

	// path data goes through the transformation
	c.BeginPath()
	c.Translate(10.0, 0.0)
	c.Scale(2.0, 2.0)
	test.Error(t, c.AddSVGPath("M1 1h1"))
	test.T(t, subpaths(c), []Subpath{{{12.0, 2.0}, {14.0, 2.0}}})
}

func minY(sp Subpath) float64 {
	y := math.Inf(1)
	for _, p := range sp {
		y = math.Min(y, p.Y)
	}
	return y
}

func maxY(sp Subpath) float64 {
	y := math.Inf(-1)
	for _, p := range sp {
		y = math.Max(y, p.Y)
	}
	return y
}

func TestAddSVGPathErrors(t *testing.T) {
	var tts = []struct {
		d      string
		points int
	}{
		{"L1 2", 0},
		{"1 2", 0},
		{"M1", 0},
		{"M0 0L1", 1},
		{"M0 0X", 1},
		{"M0 0A1 1 0 2 0 1 1", 1},
		{"M0 0 1 1z 2 2", 4},
	}
	for _, tt := range tts {
		t.Run(tt.d, func(t *testing.T) {
			c, _ := newTestContext(t, 10, 10)
			err := c.AddSVGPath(tt.d)
			test.That(t, errors.Is(err, ErrSyntax), err)

			n := 0
			for _, sp := range subpaths(c) {
				n += len(sp)
			}
			test.T(t, n, tt.points)
		})
	}
}
