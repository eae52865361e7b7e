package glcanvas

import (
	"math"

	"github.com/go-gl/mathgl/mgl32"
)

const maxSubdivision = 16

// minArcStep bounds the number of points of very large arcs.
const minArcStep = 2.0 * math.Pi / 4096.0

func splitCubicBezier(p0, p1, p2, p3 Point, t float64) (Point, Point, Point, Point, Point, Point, Point, Point) {
	pm := p1.Interpolate(p2, t)

	q0 := p0
	q1 := p0.Interpolate(p1, t)
	q2 := q1.Interpolate(pm, t)

	r3 := p3
	r2 := p2.Interpolate(p3, t)
	r1 := pm.Interpolate(r2, t)

	r0 := q2.Interpolate(r1, t)
	q3 := r0
	return q0, q1, q2, q3, r0, r1, r2, r3
}

// distanceToLine returns the distance of p to the line through p0 and p1.
func distanceToLine(p, p0, p1 Point) float64 {
	d := p1.Sub(p0)
	length := d.Length()
	if equal(length, 0.0) {
		return p.Sub(p0).Length()
	}
	return math.Abs(d.PerpDot(p.Sub(p0))) / length
}

// flattenCubicBezier returns the points of a polyline approximating the curve within tolerance,
// excluding the start point p0 and ending at p3. The curve is split in half until the control points
// are within tolerance of the chord.
func flattenCubicBezier(p0, p1, p2, p3 Point, tolerance float64) []Point {
	pts := []Point{}
	var subdivide func(p0, p1, p2, p3 Point, depth int)
	subdivide = func(p0, p1, p2, p3 Point, depth int) {
		flat := distanceToLine(p1, p0, p3) <= tolerance && distanceToLine(p2, p0, p3) <= tolerance
		if flat || maxSubdivision <= depth {
			pts = append(pts, p3)
			return
		}
		q0, q1, q2, q3, r0, r1, r2, r3 := splitCubicBezier(p0, p1, p2, p3, 0.5)
		subdivide(q0, q1, q2, q3, depth+1)
		subdivide(r0, r1, r2, r3, depth+1)
	}
	subdivide(p0, p1, p2, p3, 0)
	return pts
}

// flattenQuadraticBezier is flattenCubicBezier for quadratic curves.
func flattenQuadraticBezier(p0, p1, p2 Point, tolerance float64) []Point {
	c1 := p0.Interpolate(p1, 2.0/3.0)
	c2 := p2.Interpolate(p1, 2.0/3.0)
	return flattenCubicBezier(p0, c1, c2, p2, tolerance)
}

// arcStep returns the angle step for an arc of given radius such that the chord deviates no more
// than tolerance from the arc in device space. It starts at a quarter circle and halves.
func arcStep(m mgl32.Mat4, radius, tolerance float64) float64 {
	step := math.Pi / 2.0
	for minArcStep < step {
		p1 := transformPoint(m, radius, 0.0)
		p2 := transformPoint(m, radius*math.Cos(step), radius*math.Sin(step))
		mid := transformPoint(m, radius*math.Cos(step/2.0), radius*math.Sin(step/2.0))
		if !(tolerance < p1.Interpolate(p2, 0.5).Sub(mid).Length()) {
			break
		}
		step /= 2.0
	}
	return step
}

// arcAngles divides the arc from theta0 to theta1 ∈ [0,2PI) in the positive direction, wrapping
// around at 2PI, into equal steps of at most step. It ends exactly at theta1. Equal angles give the
// full circle.
func arcAngles(theta0, theta1, step float64) []float64 {
	sweep := theta1 - theta0
	if sweep <= 0.0 {
		sweep += 2.0 * math.Pi
	}
	n := max(1, int(math.Ceil(sweep/step-Epsilon)))
	thetas := make([]float64, 0, n+1)
	for i := 0; i < n; i++ {
		thetas = append(thetas, theta0+sweep*float64(i)/float64(n))
	}
	return append(thetas, theta1)
}
