package glcanvas

import (
	"fmt"
	"math"
)

// Ellipse adds an elliptical arc around (x,y) with radii rx and ry, with its axes rotated by
// rotation, from startAngle to endAngle in radians. Angles are measured on the unrotated ellipse.
// The arc is connected by a line to the current subpath.
func (c *Context) Ellipse(x, y, rx, ry, rotation, startAngle, endAngle float64, counterclockwise bool) error {
	if !finite(x, y, rx, ry, rotation, startAngle, endAngle) {
		return nil
	} else if rx < 0.0 || ry < 0.0 {
		return fmt.Errorf("ellipse radii %v,%v: %w", rx, ry, ErrIndexSize)
	}
	c.ellipse(x, y, rx, ry, rotation, startAngle, endAngle, counterclockwise)
	return nil
}

// RoundRect adds a closed subpath of the rectangle at (x,y) with size w×h and rounded corners. The
// radii are given as one value for all corners, two values for the top-left/bottom-right and
// top-right/bottom-left corners, three values for top-left, top-right/bottom-left and bottom-right,
// or four values clockwise starting at the top-left. Radii that don't fit are scaled down.
func (c *Context) RoundRect(x, y, w, h float64, radii ...float64) error {
	if !finite(x, y, w, h) || !finite(radii...) {
		return nil
	}

	var tl, tr, br, bl float64
	switch len(radii) {
	case 1:
		tl, tr, br, bl = radii[0], radii[0], radii[0], radii[0]
	case 2:
		tl, tr, br, bl = radii[0], radii[1], radii[0], radii[1]
	case 3:
		tl, tr, br, bl = radii[0], radii[1], radii[2], radii[1]
	case 4:
		tl, tr, br, bl = radii[0], radii[1], radii[2], radii[3]
	default:
		return fmt.Errorf("roundRect needs 1 to 4 radii, got %d: %w", len(radii), ErrIndexSize)
	}
	if tl < 0.0 || tr < 0.0 || br < 0.0 || bl < 0.0 {
		return fmt.Errorf("roundRect radii %v: %w", radii, ErrIndexSize)
	}

	// a negative size mirrors the rectangle and its corners
	if w < 0.0 {
		x, w = x+w, -w
		tl, tr, br, bl = tr, tl, bl, br
	}
	if h < 0.0 {
		y, h = y+h, -h
		tl, tr, br, bl = bl, br, tr, tl
	}

	scale := 1.0
	for _, side := range [][3]float64{{w, tl, tr}, {w, bl, br}, {h, tl, bl}, {h, tr, br}} {
		if sum := side[1] + side[2]; side[0] < sum {
			scale = math.Min(scale, side[0]/sum)
		}
	}
	tl, tr, br, bl = tl*scale, tr*scale, br*scale, bl*scale

	corner := func(cx, cy, r, theta float64) {
		c.ellipse(cx, cy, r, r, 0.0, theta, theta+math.Pi/2.0, false)
	}

	c.MoveTo(x+tl, y)
	c.LineTo(x+w-tr, y)
	if 0.0 < tr {
		corner(x+w-tr, y+tr, tr, -math.Pi/2.0)
	}
	c.LineTo(x+w, y+h-br)
	if 0.0 < br {
		corner(x+w-br, y+h-br, br, 0.0)
	}
	c.LineTo(x+bl, y+h)
	if 0.0 < bl {
		corner(x+bl, y+h-bl, bl, math.Pi/2.0)
	}
	c.LineTo(x, y+tl)
	if 0.0 < tl {
		corner(x+tl, y+tl, tl, math.Pi)
	}
	c.ClosePath()
	return nil
}
