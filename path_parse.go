package glcanvas

import (
	"fmt"
	"math"

	"github.com/tdewolff/parse/v2/strconv"
)

func skipCommaWhitespace(path []byte) int {
	i := 0
	for i < len(path) && (path[i] == ' ' || path[i] == ',' || path[i] == '\n' || path[i] == '\r' || path[i] == '\t') {
		i++
	}
	return i
}

func parseNum(path []byte) (float64, int) {
	i := skipCommaWhitespace(path)
	f, n := strconv.ParseFloat(path[i:])
	if n == 0 {
		return 0.0, 0
	}
	return f, i + n
}

func parseFlag(path []byte) (bool, int) {
	i := skipCommaWhitespace(path)
	if i < len(path) && (path[i] == '0' || path[i] == '1') {
		return path[i] == '1', i + 1
	}
	return false, 0
}

// AddSVGPath adds the subpaths of SVG path data, such as "M0 0L10 0 10 10z", to the current path.
// All commands are supported in absolute and relative form. Coordinates are in user space and go
// through the current transformation like the other path methods. Malformed data returns ErrSyntax,
// the commands before the error have been added.
func (c *Context) AddSVGPath(d string) error {
	path := []byte(d)
	var nums [6]float64
	parse := func(i, k int) (int, error) {
		for j := 0; j < k; j++ {
			var n int
			nums[j], n = parseNum(path[i:])
			if n == 0 {
				return i, fmt.Errorf("bad number at offset %d in path data: %w", i, ErrSyntax)
			}
			i += n
		}
		return i, nil
	}

	var prevCmd byte
	x, y := 0.0, 0.0     // current point
	x0, y0 := 0.0, 0.0   // start of subpath
	cpx, cpy := 0.0, 0.0 // control points
	started := false

	i := skipCommaWhitespace(path)
	for i < len(path) {
		cmd := prevCmd
		if 'A' <= path[i] {
			cmd = path[i]
			i++
		} else if prevCmd == 0 || prevCmd == 'Z' || prevCmd == 'z' {
			return fmt.Errorf("expected command at offset %d in path data: %w", i, ErrSyntax)
		} else if prevCmd == 'M' {
			cmd = 'L'
		} else if prevCmd == 'm' {
			cmd = 'l'
		}
		if !started && cmd != 'M' && cmd != 'm' {
			return fmt.Errorf("path data must start with a moveto, got %q: %w", cmd, ErrSyntax)
		}

		var err error
		switch cmd {
		case 'M', 'm':
			if i, err = parse(i, 2); err != nil {
				return err
			}
			if cmd == 'm' {
				nums[0] += x
				nums[1] += y
			}
			x, y = nums[0], nums[1]
			x0, y0 = x, y
			c.MoveTo(x, y)
			started = true
		case 'Z', 'z':
			c.ClosePath()
			x, y = x0, y0
		case 'L', 'l':
			if i, err = parse(i, 2); err != nil {
				return err
			}
			if cmd == 'l' {
				nums[0] += x
				nums[1] += y
			}
			x, y = nums[0], nums[1]
			c.LineTo(x, y)
		case 'H', 'h':
			if i, err = parse(i, 1); err != nil {
				return err
			}
			if cmd == 'h' {
				nums[0] += x
			}
			x = nums[0]
			c.LineTo(x, y)
		case 'V', 'v':
			if i, err = parse(i, 1); err != nil {
				return err
			}
			if cmd == 'v' {
				nums[0] += y
			}
			y = nums[0]
			c.LineTo(x, y)
		case 'C', 'c':
			if i, err = parse(i, 6); err != nil {
				return err
			}
			if cmd == 'c' {
				for j := 0; j < 6; j += 2 {
					nums[j] += x
					nums[j+1] += y
				}
			}
			c.BezierCurveTo(nums[0], nums[1], nums[2], nums[3], nums[4], nums[5])
			cpx, cpy = nums[2], nums[3]
			x, y = nums[4], nums[5]
		case 'S', 's':
			if i, err = parse(i, 4); err != nil {
				return err
			}
			if cmd == 's' {
				for j := 0; j < 4; j += 2 {
					nums[j] += x
					nums[j+1] += y
				}
			}
			a, b := x, y
			if prevCmd == 'C' || prevCmd == 'c' || prevCmd == 'S' || prevCmd == 's' {
				a, b = 2*x-cpx, 2*y-cpy
			}
			c.BezierCurveTo(a, b, nums[0], nums[1], nums[2], nums[3])
			cpx, cpy = nums[0], nums[1]
			x, y = nums[2], nums[3]
		case 'Q', 'q':
			if i, err = parse(i, 4); err != nil {
				return err
			}
			if cmd == 'q' {
				for j := 0; j < 4; j += 2 {
					nums[j] += x
					nums[j+1] += y
				}
			}
			c.QuadraticCurveTo(nums[0], nums[1], nums[2], nums[3])
			cpx, cpy = nums[0], nums[1]
			x, y = nums[2], nums[3]
		case 'T', 't':
			if i, err = parse(i, 2); err != nil {
				return err
			}
			if cmd == 't' {
				nums[0] += x
				nums[1] += y
			}
			a, b := x, y
			if prevCmd == 'Q' || prevCmd == 'q' || prevCmd == 'T' || prevCmd == 't' {
				a, b = 2*x-cpx, 2*y-cpy
			}
			c.QuadraticCurveTo(a, b, nums[0], nums[1])
			cpx, cpy = a, b
			x, y = nums[0], nums[1]
		case 'A', 'a':
			if i, err = parse(i, 3); err != nil {
				return err
			}
			rx, ry, phi := nums[0], nums[1], nums[2]
			large, n := parseFlag(path[i:])
			if n == 0 {
				return fmt.Errorf("bad arc flag at offset %d in path data: %w", i, ErrSyntax)
			}
			i += n
			sweep, n := parseFlag(path[i:])
			if n == 0 {
				return fmt.Errorf("bad arc flag at offset %d in path data: %w", i, ErrSyntax)
			}
			i += n
			if i, err = parse(i, 2); err != nil {
				return err
			}
			if cmd == 'a' {
				nums[0] += x
				nums[1] += y
			}
			c.svgArc(x, y, rx, ry, phi*math.Pi/180.0, large, sweep, nums[0], nums[1])
			x, y = nums[0], nums[1]
		default:
			return fmt.Errorf("unknown path command %q: %w", cmd, ErrSyntax)
		}
		prevCmd = cmd
		i += skipCommaWhitespace(path[i:])
	}
	return nil
}

// svgArc adds the elliptical arc from (x1,y1) to (x2,y2) in endpoint parameterization by converting
// it to the center parameterization. Radii that are too small are scaled up.
func (c *Context) svgArc(x1, y1, rx, ry, phi float64, large, sweep bool, x2, y2 float64) {
	if x1 == x2 && y1 == y2 {
		return
	}
	rx, ry = math.Abs(rx), math.Abs(ry)
	if rx == 0.0 || ry == 0.0 {
		c.LineTo(x2, y2)
		return
	}

	sinphi, cosphi := math.Sincos(phi)
	dx, dy := (x1-x2)/2.0, (y1-y2)/2.0
	x1p := cosphi*dx + sinphi*dy
	y1p := -sinphi*dx + cosphi*dy
	if lambda := x1p*x1p/(rx*rx) + y1p*y1p/(ry*ry); 1.0 < lambda {
		rx *= math.Sqrt(lambda)
		ry *= math.Sqrt(lambda)
	}

	num := rx*rx*ry*ry - rx*rx*y1p*y1p - ry*ry*x1p*x1p
	den := rx*rx*y1p*y1p + ry*ry*x1p*x1p
	coef := math.Sqrt(math.Max(0.0, num/den))
	if large == sweep {
		coef = -coef
	}
	cxp, cyp := coef*rx*y1p/ry, -coef*ry*x1p/rx
	cx := cosphi*cxp - sinphi*cyp + (x1+x2)/2.0
	cy := sinphi*cxp + cosphi*cyp + (y1+y2)/2.0

	theta1 := math.Atan2((y1p-cyp)/ry, (x1p-cxp)/rx)
	theta2 := math.Atan2((-y1p-cyp)/ry, (-x1p-cxp)/rx)
	c.ellipse(cx, cy, rx, ry, phi, theta1, theta2, !sweep)
}
