package glcanvas

import (
	"fmt"
	"math"

	"github.com/go-gl/mathgl/mgl32"
)

// Epsilon is the smallest number below which we assume the value to be zero.
const Epsilon = 1e-10

// equal returns true if a and b are equal with tolerance Epsilon.
func equal(a, b float64) bool {
	return math.Abs(a-b) < Epsilon
}

// angleNorm returns the angle theta in the range [0,2PI).
func angleNorm(theta float64) float64 {
	theta = math.Mod(theta, 2.0*math.Pi)
	if theta < 0.0 {
		theta += 2.0 * math.Pi
	}
	return theta
}

func finite(fs ...float64) bool {
	for _, f := range fs {
		if math.IsNaN(f) || math.IsInf(f, 0) {
			return false
		}
	}
	return true
}

////////////////////////////////////////////////////////////////

// Point is a coordinate in 2D space.
type Point struct {
	X, Y float64
}

// Equals returns true if P and Q are equal with tolerance Epsilon.
func (p Point) Equals(q Point) bool {
	return equal(p.X, q.X) && equal(p.Y, q.Y)
}

// Neg negates x and y.
func (p Point) Neg() Point {
	return Point{-p.X, -p.Y}
}

// Add adds Q to P.
func (p Point) Add(q Point) Point {
	return Point{p.X + q.X, p.Y + q.Y}
}

// Sub subtracts Q from P.
func (p Point) Sub(q Point) Point {
	return Point{p.X - q.X, p.Y - q.Y}
}

// Mul multiplies x and y by f.
func (p Point) Mul(f float64) Point {
	return Point{f * p.X, f * p.Y}
}

// Rot90CW rotates the line OP by 90 degrees CW.
func (p Point) Rot90CW() Point {
	return Point{p.Y, -p.X}
}

// Rot90CCW rotates the line OP by 90 degrees CCW.
func (p Point) Rot90CCW() Point {
	return Point{-p.Y, p.X}
}

// Dot returns the dot product between OP and OQ.
func (p Point) Dot(q Point) float64 {
	return p.X*q.X + p.Y*q.Y
}

// PerpDot returns the perp dot product between OP and OQ.
func (p Point) PerpDot(q Point) float64 {
	return p.X*q.Y - p.Y*q.X
}

// Length returns the length of OP.
func (p Point) Length() float64 {
	return math.Hypot(p.X, p.Y)
}

// Norm normalises OP to be of given length.
func (p Point) Norm(length float64) Point {
	d := p.Length()
	if equal(d, 0.0) {
		return Point{}
	}
	return Point{p.X / d * length, p.Y / d * length}
}

// Interpolate returns a point on PQ that is linearly interpolated by t ∈ [0,1].
func (p Point) Interpolate(q Point, t float64) Point {
	return Point{(1-t)*p.X + t*q.X, (1-t)*p.Y + t*q.Y}
}

func (p Point) String() string {
	return fmt.Sprintf("(%g,%g)", p.X, p.Y)
}

////////////////////////////////////////////////////////////////

// transformPoint applies the affine part of a 4×4 column-major matrix to (x,y).
func transformPoint(m mgl32.Mat4, x, y float64) Point {
	return Point{
		float64(m[0])*x + float64(m[4])*y + float64(m[12]),
		float64(m[1])*x + float64(m[5])*y + float64(m[13]),
	}
}

// transformScale returns the factor by which m scales lengths, averaged over both axes.
func transformScale(m mgl32.Mat4) float64 {
	return math.Sqrt(math.Abs(float64(m[0])*float64(m[5]) - float64(m[1])*float64(m[4])))
}

// affine returns the 4×4 matrix of the 2D transform [a c e; b d f; 0 0 1].
func affine(a, b, c, d, e, f float64) mgl32.Mat4 {
	return mgl32.Mat4{
		float32(a), float32(b), 0.0, 0.0,
		float32(c), float32(d), 0.0, 0.0,
		0.0, 0.0, 1.0, 0.0,
		float32(e), float32(f), 0.0, 1.0,
	}
}
