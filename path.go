package glcanvas

import (
	"fmt"
	"math"
)

// Subpath is a sequence of points in device space, ie. with the transformation at the time the
// point was added already applied.
type Subpath []Point

// Closed returns true if the last point equals the first point.
func (sp Subpath) Closed() bool {
	return 2 < len(sp) && sp[0].Equals(sp[len(sp)-1])
}

// Path is the list of subpaths of the current path. The last subpath is where points are added.
type Path struct {
	subpaths []Subpath
}

// Subpaths returns the subpaths, including empty ones.
func (p *Path) Subpaths() []Subpath {
	return p.subpaths
}

func (p *Path) current() *Subpath {
	if len(p.subpaths) == 0 {
		p.subpaths = append(p.subpaths, Subpath{})
	}
	return &p.subpaths[len(p.subpaths)-1]
}

func (p *Path) newSubpath(pts ...Point) {
	p.subpaths = append(p.subpaths, Subpath(pts))
}

func (p *Path) add(pts ...Point) {
	sp := p.current()
	*sp = append(*sp, pts...)
}

// last returns the last point of the current subpath.
func (p *Path) last() (Point, bool) {
	sp := *p.current()
	if len(sp) == 0 {
		return Point{}, false
	}
	return sp[len(sp)-1], true
}

////////////////////////////////////////////////////////////////

// Path returns the current path.
func (c *Context) Path() *Path {
	return &c.path
}

func (c *Context) transformed(x, y float64) Point {
	return transformPoint(c.state.transform, x, y)
}

// BeginPath discards the current path.
func (c *Context) BeginPath() {
	c.path = Path{subpaths: []Subpath{{}}}
}

// ClosePath adds the first point of the current subpath to close it, and starts a new subpath at
// that point.
func (c *Context) ClosePath() {
	sp := *c.path.current()
	if len(sp) == 0 {
		return
	}
	first := sp[0]
	c.path.add(first)
	c.path.newSubpath(first)
}

// MoveTo starts a new subpath at (x,y).
func (c *Context) MoveTo(x, y float64) {
	if !finite(x, y) {
		return
	}
	c.path.newSubpath(c.transformed(x, y))
}

// LineTo adds a line to (x,y). A subpath without points starts at (x,y).
func (c *Context) LineTo(x, y float64) {
	if !finite(x, y) {
		return
	}
	c.path.add(c.transformed(x, y))
}

// Rect adds a closed subpath of the rectangle at (x,y) with size w×h.
func (c *Context) Rect(x, y, w, h float64) {
	if !finite(x, y, w, h) {
		return
	}
	c.MoveTo(x, y)
	c.LineTo(x+w, y)
	c.LineTo(x+w, y+h)
	c.LineTo(x, y+h)
	c.ClosePath()
}

// QuadraticCurveTo adds a quadratic Bézier curve with control point (cpx,cpy) to (x,y). A subpath
// without points starts at the control point.
func (c *Context) QuadraticCurveTo(cpx, cpy, x, y float64) {
	if !finite(cpx, cpy, x, y) {
		return
	}
	cp, end := c.transformed(cpx, cpy), c.transformed(x, y)
	start, ok := c.path.last()
	if !ok {
		start = cp
		c.path.add(start)
	}
	c.path.add(flattenQuadraticBezier(start, cp, end, c.cfg.CurveTolerance)...)
}

// BezierCurveTo adds a cubic Bézier curve with control points (cp1x,cp1y) and (cp2x,cp2y) to (x,y).
// A subpath without points starts at the first control point.
func (c *Context) BezierCurveTo(cp1x, cp1y, cp2x, cp2y, x, y float64) {
	if !finite(cp1x, cp1y, cp2x, cp2y, x, y) {
		return
	}
	cp1, cp2, end := c.transformed(cp1x, cp1y), c.transformed(cp2x, cp2y), c.transformed(x, y)
	start, ok := c.path.last()
	if !ok {
		start = cp1
		c.path.add(start)
	}
	c.path.add(flattenCubicBezier(start, cp1, cp2, end, c.cfg.CurveTolerance)...)
}

// Arc adds a circular arc around (x,y) with radius from startAngle to endAngle in radians, clockwise
// unless counterclockwise is set. The arc is connected by a line to the current subpath.
func (c *Context) Arc(x, y, radius, startAngle, endAngle float64, counterclockwise bool) error {
	if !finite(x, y, radius, startAngle, endAngle) {
		return nil
	} else if radius < 0.0 {
		return fmt.Errorf("arc radius %v: %w", radius, ErrIndexSize)
	}
	c.ellipse(x, y, radius, radius, 0.0, startAngle, endAngle, counterclockwise)
	return nil
}

// ellipse adds the elliptical arc with radii rx and ry rotated by rotation around (x,y).
func (c *Context) ellipse(x, y, rx, ry, rotation, startAngle, endAngle float64, counterclockwise bool) {
	sinRot, cosRot := math.Sincos(rotation)
	point := func(theta float64) Point {
		sin, cos := math.Sincos(theta)
		return c.transformed(x+rx*cos*cosRot-ry*sin*sinRot, y+rx*cos*sinRot+ry*sin*cosRot)
	}

	sweep := endAngle - startAngle
	if counterclockwise {
		sweep = -sweep
	}
	theta0, theta1 := angleNorm(startAngle), angleNorm(endAngle)
	if 2.0*math.Pi <= sweep {
		theta1 = theta0
	} else if theta0 == theta1 {
		c.path.add(point(startAngle))
		return
	}
	if counterclockwise {
		theta0, theta1 = theta1, theta0
	}

	n := len(*c.path.current())
	step := arcStep(c.state.transform, math.Max(rx, ry), c.cfg.ArcTolerance)
	for _, theta := range arcAngles(theta0, theta1, step) {
		c.path.add(point(theta))
	}
	if counterclockwise {
		sp := *c.path.current()
		for i, j := n, len(sp)-1; i < j; i, j = i+1, j-1 {
			sp[i], sp[j] = sp[j], sp[i]
		}
	}
}

// ArcTo is not supported.
func (c *Context) ArcTo(x1, y1, x2, y2, radius float64) error {
	return fmt.Errorf("arcTo: %w", ErrNotSupported)
}
