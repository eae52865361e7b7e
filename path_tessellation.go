package glcanvas

import (
	"fmt"

	"github.com/ByteArena/poly2tri-go"
)

// Tessellator triangulates a simple polygon given by its outline.
type Tessellator interface {
	Tessellate([]Point) [][3]Point
}

// TessellatorFunc is a function that implements Tessellator.
type TessellatorFunc func([]Point) [][3]Point

// Tessellate calls f.
func (f TessellatorFunc) Tessellate(polygon []Point) [][3]Point {
	return f(polygon)
}

// EarClipping triangulates by ear clipping. Self-intersecting polygons are triangulated without
// failing but the result covers an unspecified area.
var EarClipping Tessellator = TessellatorFunc(earClipping)

// Poly2tri triangulates by constrained Delaunay triangulation, which gives better shaped triangles.
// It falls back to ear clipping for polygons it cannot handle, such as those touching themselves.
var Poly2tri Tessellator = TessellatorFunc(poly2triTessellate)

func tessellatorByName(name string) (Tessellator, error) {
	switch name {
	case EarcutTessellator:
		return EarClipping, nil
	case Poly2triTessellator:
		return Poly2tri, nil
	}
	return nil, fmt.Errorf("unknown tessellator %q: %w", name, ErrSyntax)
}

// cleanPolygon removes consecutive duplicate points, including a last point equal to the first.
func cleanPolygon(polygon []Point) []Point {
	pts := make([]Point, 0, len(polygon))
	for _, p := range polygon {
		if len(pts) == 0 || !p.Equals(pts[len(pts)-1]) {
			pts = append(pts, p)
		}
	}
	for 1 < len(pts) && pts[0].Equals(pts[len(pts)-1]) {
		pts = pts[:len(pts)-1]
	}
	return pts
}

func polygonArea(pts []Point) float64 {
	area := 0.0
	for i := range pts {
		j := (i + 1) % len(pts)
		area += pts[i].PerpDot(pts[j])
	}
	return area / 2.0
}

// inTriangle returns true if p is inside or on the boundary of the counter-clockwise triangle abc.
func inTriangle(p, a, b, c Point) bool {
	return 0.0 <= b.Sub(a).PerpDot(p.Sub(a)) && 0.0 <= c.Sub(b).PerpDot(p.Sub(b)) && 0.0 <= a.Sub(c).PerpDot(p.Sub(c))
}

func earClipping(polygon []Point) [][3]Point {
	pts := cleanPolygon(polygon)
	if len(pts) < 3 {
		return nil
	} else if polygonArea(pts) < 0.0 {
		for i, j := 0, len(pts)-1; i < j; i, j = i+1, j-1 {
			pts[i], pts[j] = pts[j], pts[i]
		}
	}

	idx := make([]int, len(pts))
	for i := range idx {
		idx[i] = i
	}

	tris := make([][3]Point, 0, len(pts)-2)
	isEar := func(i int) bool {
		n := len(idx)
		a, b, c := pts[idx[(i+n-1)%n]], pts[idx[i]], pts[idx[(i+1)%n]]
		if b.Sub(a).PerpDot(c.Sub(b)) <= 0.0 {
			return false // reflex or collinear
		}
		for _, k := range idx {
			p := pts[k]
			if p.Equals(a) || p.Equals(b) || p.Equals(c) {
				continue
			} else if inTriangle(p, a, b, c) {
				return false
			}
		}
		return true
	}
	clip := func(i int) {
		n := len(idx)
		a, b, c := pts[idx[(i+n-1)%n]], pts[idx[i]], pts[idx[(i+1)%n]]
		if !equal(b.Sub(a).PerpDot(c.Sub(b)), 0.0) {
			tris = append(tris, [3]Point{a, b, c})
		}
		idx = append(idx[:i], idx[i+1:]...)
	}

	i := 0
	for 3 < len(idx) {
		found := false
		for k := 0; k < len(idx); k++ {
			j := (i + k) % len(idx)
			if isEar(j) {
				clip(j)
				i = j % len(idx)
				found = true
				break
			}
		}
		if !found {
			// no ear for self-intersecting or degenerate outlines, remove the flattest corner
			best, bestCross := 0, 0.0
			for j := range idx {
				n := len(idx)
				a, b, c := pts[idx[(j+n-1)%n]], pts[idx[j]], pts[idx[(j+1)%n]]
				cross := b.Sub(a).PerpDot(c.Sub(b))
				if cross < 0.0 {
					cross = -cross
				}
				if j == 0 || cross < bestCross {
					best, bestCross = j, cross
				}
			}
			clip(best)
			i = best % len(idx)
		}
	}
	a, b, c := pts[idx[0]], pts[idx[1]], pts[idx[2]]
	if !equal(b.Sub(a).PerpDot(c.Sub(b)), 0.0) {
		tris = append(tris, [3]Point{a, b, c})
	}
	return tris
}

func poly2triTessellate(polygon []Point) (tris [][3]Point) {
	pts := cleanPolygon(polygon)
	if len(pts) < 3 {
		return nil
	}
	defer func() {
		if r := recover(); r != nil {
			Logger().Debug("poly2tri failed, falling back to ear clipping", "error", r, "points", len(pts))
			tris = earClipping(pts)
		}
	}()

	contour := make([]*poly2tri.Point, 0, len(pts))
	for _, p := range pts {
		contour = append(contour, poly2tri.NewPoint(p.X, p.Y))
	}
	swctx := poly2tri.NewSweepContext(contour, false)
	swctx.Triangulate()

	for _, tr := range swctx.GetTriangles() {
		p0 := Point{tr.Points[0].X, tr.Points[0].Y}
		p1 := Point{tr.Points[1].X, tr.Points[1].Y}
		p2 := Point{tr.Points[2].X, tr.Points[2].Y}
		tris = append(tris, [3]Point{p0, p1, p2})
	}
	return tris
}
