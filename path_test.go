package glcanvas

import (
	"errors"
	"math"
	"testing"

	"github.com/tdewolff/test"
)

// subpaths returns the non-empty subpaths of the current path.
func subpaths(c *Context) []Subpath {
	var sps []Subpath
	for _, sp := range c.Path().Subpaths() {
		if 0 < len(sp) {
			sps = append(sps, sp)
		}
	}
	return sps
}

func TestPathLines(t *testing.T) {
	c, _ := newTestContext(t, 10, 10)
	c.MoveTo(1.0, 2.0)
	c.LineTo(3.0, 4.0)
	c.LineTo(math.NaN(), 4.0)
	c.Translate(10.0, 0.0)
	c.LineTo(0.0, 0.0)
	test.T(t, subpaths(c), []Subpath{{{1.0, 2.0}, {3.0, 4.0}, {10.0, 0.0}}})

	c.BeginPath()
	test.T(t, len(subpaths(c)), 0)

	// lineTo on an empty path starts the subpath
	c.ResetTransform()
	c.LineTo(5.0, 5.0)
	c.LineTo(6.0, 5.0)
	test.T(t, subpaths(c), []Subpath{{{5.0, 5.0}, {6.0, 5.0}}})
}

func TestPathClose(t *testing.T) {
	c, _ := newTestContext(t, 10, 10)
	c.ClosePath()
	test.T(t, len(subpaths(c)), 0)

	c.MoveTo(0.0, 0.0)
	c.LineTo(4.0, 0.0)
	c.LineTo(4.0, 4.0)
	c.ClosePath()
	c.LineTo(0.0, 4.0)
	sps := subpaths(c)
	test.T(t, len(sps), 2)
	test.T(t, sps[0], Subpath{{0.0, 0.0}, {4.0, 0.0}, {4.0, 4.0}, {0.0, 0.0}})
	test.That(t, sps[0].Closed())
	test.T(t, sps[1], Subpath{{0.0, 0.0}, {0.0, 4.0}})
	test.That(t, !sps[1].Closed())
}

func TestPathRect(t *testing.T) {
	c, _ := newTestContext(t, 10, 10)
	c.Scale(2.0, 2.0)
	c.Rect(1.0, 1.0, 2.0, 3.0)
	sps := subpaths(c)
	test.T(t, len(sps), 2)
	test.T(t, sps[0], Subpath{{2.0, 2.0}, {6.0, 2.0}, {6.0, 8.0}, {2.0, 8.0}, {2.0, 2.0}})
	test.T(t, sps[1], Subpath{{2.0, 2.0}})
}

func TestPathBezier(t *testing.T) {
	c, _ := newTestContext(t, 10, 10)
	c.MoveTo(0.0, 0.0)
	c.BezierCurveTo(0.0, 10.0, 10.0, 10.0, 10.0, 0.0)
	sp := subpaths(c)[0]
	test.That(t, 4 < len(sp), len(sp))
	test.T(t, sp[0], Point{0.0, 0.0})
	test.T(t, sp[len(sp)-1], Point{10.0, 0.0})
	for i := 1; i < len(sp); i++ {
		test.That(t, !sp[i].Equals(sp[i-1]), "duplicate point", i)
	}

	// the maximum of the curve is at t=0.5, which is a subdivision point
	maxY := 0.0
	for _, p := range sp {
		maxY = math.Max(maxY, p.Y)
	}
	test.Float(t, maxY, 7.5)

	// a curve on an empty subpath starts at its first control point
	c.BeginPath()
	c.QuadraticCurveTo(1.0, 1.0, 2.0, 0.0)
	sp = subpaths(c)[0]
	test.T(t, sp[0], Point{1.0, 1.0})
	test.T(t, sp[len(sp)-1], Point{2.0, 0.0})
}

func TestFlattenTolerance(t *testing.T) {
	p0, p1, p2, p3 := Point{0.0, 0.0}, Point{0.0, 100.0}, Point{100.0, 100.0}, Point{100.0, 0.0}
	coarse := flattenCubicBezier(p0, p1, p2, p3, 1.0)
	fine := flattenCubicBezier(p0, p1, p2, p3, 0.01)
	test.That(t, len(coarse) < len(fine), len(coarse), len(fine))
	test.T(t, fine[len(fine)-1], p3)

	// collinear control points need no subdivision
	test.T(t, flattenCubicBezier(p0, Point{1.0, 0.0}, Point{2.0, 0.0}, Point{3.0, 0.0}, 0.25), []Point{{3.0, 0.0}})
}

func TestPathArc(t *testing.T) {
	c, _ := newTestContext(t, 100, 100)
	test.Error(t, c.Arc(50.0, 50.0, 10.0, 0.0, 2.0*math.Pi, false))
	sp := subpaths(c)[0]
	test.T(t, len(sp), 17) // steps of PI/8 for a chord error below 0.5
	test.That(t, sp[0].Equals(Point{60.0, 50.0}), sp[0])
	test.That(t, sp[len(sp)-1].Equals(Point{60.0, 50.0}), sp[len(sp)-1])
	for _, p := range sp {
		test.Float(t, p.Sub(Point{50.0, 50.0}).Length(), 10.0)
	}
	test.That(t, 50.0 < sp[4].Y, "clockwise arcs go down first", sp[4])

	// a quarter counterclockwise goes up first
	c.BeginPath()
	test.Error(t, c.Arc(50.0, 50.0, 10.0, 0.0, -math.Pi/2.0, true))
	sp = subpaths(c)[0]
	test.T(t, len(sp), 5)
	test.That(t, sp[0].Equals(Point{60.0, 50.0}), sp[0])
	test.That(t, sp[4].Equals(Point{50.0, 40.0}), sp[4])
	test.That(t, sp[2].Y < 50.0, sp[2])

	// clockwise from PI/2 to 0 is three quarters
	c.BeginPath()
	test.Error(t, c.Arc(50.0, 50.0, 10.0, math.Pi/2.0, 0.0, false))
	sp = subpaths(c)[0]
	test.T(t, len(sp), 13)
	test.That(t, sp[0].Equals(Point{50.0, 60.0}), sp[0])
	test.That(t, sp[12].Equals(Point{60.0, 50.0}), sp[12])

	// the arc connects to the current point
	c.BeginPath()
	c.MoveTo(0.0, 0.0)
	test.Error(t, c.Arc(50.0, 50.0, 10.0, 0.0, math.Pi, false))
	sp = subpaths(c)[0]
	test.T(t, sp[0], Point{0.0, 0.0})
	test.That(t, sp[1].Equals(Point{60.0, 50.0}), sp[1])
}

func TestPathArcEdgeCases(t *testing.T) {
	c, _ := newTestContext(t, 100, 100)
	test.That(t, errors.Is(c.Arc(0.0, 0.0, -1.0, 0.0, 1.0, false), ErrIndexSize))
	test.Error(t, c.Arc(0.0, 0.0, math.Inf(1), 0.0, 1.0, false))
	test.T(t, len(subpaths(c)), 0)

	// equal angles give a single point
	test.Error(t, c.Arc(0.0, 0.0, 10.0, 1.0, 1.0, false))
	test.T(t, len(subpaths(c)[0]), 1)

	// more than a full turn is a full circle
	c.BeginPath()
	test.Error(t, c.Arc(0.0, 0.0, 10.0, 0.0, 5.0*math.Pi, false))
	test.T(t, len(subpaths(c)[0]), 17)
	c.BeginPath()
	test.Error(t, c.Arc(0.0, 0.0, 10.0, 0.0, 3.0*math.Pi, true))
	test.T(t, len(subpaths(c)[0]), 9)

	// zero radius
	c.BeginPath()
	test.Error(t, c.Arc(5.0, 5.0, 0.0, 0.0, math.Pi, false))
	for _, p := range subpaths(c)[0] {
		test.T(t, p, Point{5.0, 5.0})
	}

	test.That(t, errors.Is(c.ArcTo(0.0, 0.0, 1.0, 1.0, 1.0), ErrNotSupported))
}

func TestArcStep(t *testing.T) {
	c, _ := newTestContext(t, 100, 100)
	small := arcStep(c.state.transform, 10.0, 0.5)
	c.Scale(10.0, 10.0)
	large := arcStep(c.state.transform, 10.0, 0.5)
	test.That(t, large < small, "scaled arcs get more points")
	test.That(t, minArcStep <= arcStep(c.state.transform, 1e9, 0.5))
}

func TestArcPointsGrowWithRadius(t *testing.T) {
	c, gl := newTestContext(t, 250, 250)
	counts := []int{}
	for _, radius := range []float64{10.0, 100.0} {
		c.BeginPath()
		test.Error(t, c.Arc(120.0, 120.0, radius, 0.0, 2.0*math.Pi, false))
		test.Error(t, c.Fill())
		counts = append(counts, len(subpaths(c)[0]))
	}
	test.That(t, counts[0] < counts[1], "larger arcs get more points", counts)
	test.T(t, gl.Stats.DrawArrays, 2)
	test.T(t, pixel(gl, 120, 120), opaqueBlack)
}
