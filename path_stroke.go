package glcanvas

import (
	"math"
)

// mesh is a list of triangles in device space, every three points form a triangle.
type mesh []Point

func (m *mesh) triangle(a, b, c Point) {
	*m = append(*m, a, b, c)
}

// quad adds the quadrilateral a-b-c-d as two triangles.
func (m *mesh) quad(a, b, c, d Point) {
	*m = append(*m, a, b, c, a, c, d)
}

// fan adds a circular fan around pivot from pivot+n0 over the given angle, with n0 of length radius.
func (m *mesh) fan(pivot, n0 Point, angle, tolerance float64) {
	radius := n0.Length()
	n := roundSegments(radius, math.Abs(angle), tolerance)
	theta0 := math.Atan2(n0.Y, n0.X)
	prev := pivot.Add(n0)
	for i := 1; i <= n; i++ {
		theta := theta0 + angle*float64(i)/float64(n)
		cur := pivot.Add(Point{radius * math.Cos(theta), radius * math.Sin(theta)})
		m.triangle(pivot, prev, cur)
		prev = cur
	}
}

// roundSegments returns the number of segments for an arc of radius and angle within tolerance.
func roundSegments(radius, angle, tolerance float64) int {
	if radius <= tolerance {
		return max(1, int(math.Ceil(angle/(math.Pi/2.0))))
	}
	step := 2.0 * math.Acos(1.0-tolerance/radius)
	return max(1, min(1024, int(math.Ceil(angle/step))))
}

////////////////////////////////////////////////////////////////

// Capper implements Cap, with m the mesh to append to, halfWidth the half width of the stroke,
// pivot the end point of the polyline around which to construct a cap, and n0 the normal at the end
// of the polyline. The length of n0 is equal to halfWidth and n0.Rot90CCW() points away from the
// polyline.
type Capper interface {
	Cap(*mesh, float64, Point, Point)
}

// CapperFunc is a function that implements Capper.
type CapperFunc func(*mesh, float64, Point, Point)

// Cap calls f.
func (f CapperFunc) Cap(m *mesh, halfWidth float64, pivot, n0 Point) {
	f(m, halfWidth, pivot, n0)
}

// RoundCapper caps the start or end of a polyline by a half circle.
var RoundCapper Capper = CapperFunc(roundCapper)

func roundCapper(m *mesh, halfWidth float64, pivot, n0 Point) {
	m.fan(pivot, n0, math.Pi, strokeTolerance)
}

// ButtCapper caps the start or end of a polyline squarely at the end point.
var ButtCapper Capper = CapperFunc(buttCapper)

func buttCapper(m *mesh, halfWidth float64, pivot, n0 Point) {}

// SquareCapper caps the start or end of a polyline by a square extending half the width.
var SquareCapper Capper = CapperFunc(squareCapper)

func squareCapper(m *mesh, halfWidth float64, pivot, n0 Point) {
	e := n0.Rot90CCW()
	m.quad(pivot.Add(n0), pivot.Add(n0).Add(e), pivot.Sub(n0).Add(e), pivot.Sub(n0))
}

////////////////

// Joiner implements Join, with m the mesh to append to, pivot the point shared by both segments, and
// n0 and n1 the normals of the incoming and outgoing segment respectively. The length of n0 and n1
// is equal to halfWidth.
type Joiner interface {
	Join(*mesh, float64, Point, Point, Point)
}

// JoinerFunc is a function that implements Joiner.
type JoinerFunc func(*mesh, float64, Point, Point, Point)

// Join calls f.
func (f JoinerFunc) Join(m *mesh, halfWidth float64, pivot, n0, n1 Point) {
	f(m, halfWidth, pivot, n0, n1)
}

// outerSide returns the sign of the normals on the outside of the turn, or zero when both segments
// are collinear.
func outerSide(n0, n1 Point) float64 {
	cross := n0.PerpDot(n1)
	if equal(cross, 0.0) {
		return 0.0
	} else if 0.0 < cross {
		return 1.0
	}
	return -1.0
}

// BevelJoiner connects two segments by a straight line between their outer corners.
var BevelJoiner Joiner = JoinerFunc(bevelJoiner)

func bevelJoiner(m *mesh, halfWidth float64, pivot, n0, n1 Point) {
	s := outerSide(n0, n1)
	if s == 0.0 {
		return
	}
	m.triangle(pivot, pivot.Add(n0.Mul(s)), pivot.Add(n1.Mul(s)))
}

// RoundJoiner connects two segments by a circular arc around the pivot.
var RoundJoiner Joiner = JoinerFunc(roundJoiner)

func roundJoiner(m *mesh, halfWidth float64, pivot, n0, n1 Point) {
	s := outerSide(n0, n1)
	if s == 0.0 {
		if n0.Dot(n1) < 0.0 {
			// the polyline turns back on itself
			m.fan(pivot, n0, math.Pi, strokeTolerance)
		}
		return
	}
	a, b := n0.Mul(s), n1.Mul(s)
	angle := math.Atan2(a.PerpDot(b), a.Dot(b))
	m.fan(pivot, a, angle, strokeTolerance)
}

// MiterJoiner connects two segments by extending their outer edges until they meet.
var MiterJoiner Joiner = MiterClipJoiner(BevelJoiner, math.NaN())

// MiterClipJoiner returns a miter joiner that uses gapJoiner instead when the ratio of the miter
// length to half the line width exceeds limit. A NaN limit never falls back.
func MiterClipJoiner(gapJoiner Joiner, limit float64) Joiner {
	return miterJoiner{gapJoiner, limit}
}

type miterJoiner struct {
	gapJoiner Joiner
	limit     float64
}

func (j miterJoiner) Join(m *mesh, halfWidth float64, pivot, n0, n1 Point) {
	s := outerSide(n0, n1)
	if s == 0.0 {
		return
	}
	a, b := n0.Mul(s), n1.Mul(s)
	cosHalf := a.Add(b).Length() / 2.0 / halfWidth // cos of half the angle between the normals
	if equal(cosHalf, 0.0) || !math.IsNaN(j.limit) && j.limit < 1.0/cosHalf {
		j.gapJoiner.Join(m, halfWidth, pivot, n0, n1)
		return
	}
	tip := pivot.Add(a.Add(b).Norm(halfWidth / cosHalf))
	m.triangle(pivot, pivot.Add(a), tip)
	m.triangle(pivot, tip, pivot.Add(b))
}

////////////////////////////////////////////////////////////////

// strokeTolerance is the maximum deviation in pixels of round caps and joins.
const strokeTolerance = 0.25

// stroker extrudes polylines into triangle meshes.
type stroker struct {
	halfWidth float64
	capper    Capper
	joiner    Joiner
}

// syncStroker derives the device-space stroker from the line style and the current transformation.
func (c *Context) syncStroker() {
	c.stroker.halfWidth = c.state.lineWidth * transformScale(c.state.transform) / 2.0

	switch c.state.lineCap {
	case RoundCap:
		c.stroker.capper = RoundCapper
	case SquareCap:
		c.stroker.capper = SquareCapper
	default:
		c.stroker.capper = ButtCapper
	}
	switch c.state.lineJoin {
	case RoundJoin:
		c.stroker.joiner = RoundJoiner
	case BevelJoin:
		c.stroker.joiner = BevelJoiner
	default:
		c.stroker.joiner = MiterClipJoiner(BevelJoiner, c.state.miterLimit)
	}
}

// dedupe removes consecutive equal points.
func dedupe(pts []Point) []Point {
	r := make([]Point, 0, len(pts))
	for _, p := range pts {
		if len(r) == 0 || !p.Equals(r[len(r)-1]) {
			r = append(r, p)
		}
	}
	return r
}

// extrude appends the triangles of the stroked polyline. Closed polylines are joined at the first
// point and have no caps.
func (s stroker) extrude(m *mesh, pts []Point, closed bool) {
	if closed && 2 < len(pts) && pts[0].Equals(pts[len(pts)-1]) {
		pts = pts[:len(pts)-1]
	}
	if len(pts) < 2 || closed && len(pts) < 3 || s.halfWidth <= 0.0 {
		return
	}

	n := len(pts)
	segments := n - 1
	if closed {
		segments = n
	}
	normals := make([]Point, segments)
	for i := 0; i < segments; i++ {
		a, b := pts[i], pts[(i+1)%n]
		normals[i] = b.Sub(a).Rot90CW().Norm(s.halfWidth)
		m.quad(a.Add(normals[i]), b.Add(normals[i]), b.Sub(normals[i]), a.Sub(normals[i]))
	}
	for i := 1; i < segments; i++ {
		s.joiner.Join(m, s.halfWidth, pts[i], normals[i-1], normals[i])
	}
	if closed {
		s.joiner.Join(m, s.halfWidth, pts[0], normals[segments-1], normals[0])
	} else {
		s.capper.Cap(m, s.halfWidth, pts[0], normals[0].Neg())
		s.capper.Cap(m, s.halfWidth, pts[n-1], normals[segments-1])
	}
}

////////////////////////////////////////////////////////////////

// dashPolyline splits a polyline into the dashes of the pattern, starting offset into the pattern.
// Each dash is returned as an open polyline. Gaps of zero length join consecutive dashes.
func dashPolyline(pts []Point, closed bool, dashes []float64, offset float64) [][]Point {
	total := 0.0
	for _, d := range dashes {
		total += d
	}
	if len(dashes) == 0 || total <= 0.0 || len(pts) < 2 {
		return nil
	}
	if closed && !pts[0].Equals(pts[len(pts)-1]) {
		pts = append(append([]Point{}, pts...), pts[0])
	}

	// find the dash and the distance left in it at the start
	offset = math.Mod(offset, total)
	if offset < 0.0 {
		offset += total
	}
	k := 0
	for dashes[k] <= offset {
		offset -= dashes[k]
		k = (k + 1) % len(dashes)
	}
	left := dashes[k] - offset

	var out [][]Point
	var cur []Point
	on := k%2 == 0
	if on {
		cur = []Point{pts[0]}
	}
	for i := 0; i+1 < len(pts); i++ {
		a, b := pts[i], pts[i+1]
		length := b.Sub(a).Length()
		pos := 0.0
		for left < length-pos {
			pos += left
			p := a.Interpolate(b, pos/length)
			if on {
				cur = append(cur, p)
				out = append(out, cur)
				cur = nil
			} else {
				cur = []Point{p}
			}
			on = !on
			k = (k + 1) % len(dashes)
			left = dashes[k]
		}
		left -= length - pos
		if on {
			cur = append(cur, b)
		}
	}
	if on && 1 < len(cur) {
		out = append(out, cur)
	}
	return out
}
