// Package gradient evaluates gradients the same way the gradient fragment shaders do, so that the CPU
// side and the software GL agree with the GPU on every pixel.
package gradient

import "math"

// MaxStops is the maximum number of color stops a gradient shader accepts.
const MaxStops = 10

// Sentinel terminates the offsets array uploaded to the shaders.
const Sentinel = -1.0

// Lookup returns the color for parameter t. Offsets must be sorted ascending and may be terminated
// early by Sentinel. The parameter is clamped to [0,1], colors before the first stop take the first
// color, and colors after the last stop take the last color.
func Lookup(offsets []float64, colors [][4]float64, t float64) [4]float64 {
	n := len(colors)
	for i, offset := range offsets {
		if offset == Sentinel {
			n = min(n, i)
			break
		}
	}
	n = min(n, len(offsets))
	if n == 0 {
		return [4]float64{}
	}

	t = math.Max(0.0, math.Min(t, 1.0))
	if t < offsets[0] {
		return colors[0]
	}
	for i := 0; i < n-1; i++ {
		if offsets[i] <= t && t < offsets[i+1] {
			f := (t - offsets[i]) / (offsets[i+1] - offsets[i])
			return mix(colors[i], colors[i+1], f)
		}
	}
	return colors[n-1]
}

func mix(a, b [4]float64, f float64) [4]float64 {
	return [4]float64{
		a[0] + (b[0]-a[0])*f,
		a[1] + (b[1]-a[1])*f,
		a[2] + (b[2]-a[2])*f,
		a[3] + (b[3]-a[3])*f,
	}
}

// LinearT projects p onto the axis p0-p1 and returns the unclamped parameter.
func LinearT(p0, p1, p [2]float64) float64 {
	dx, dy := p1[0]-p0[0], p1[1]-p0[1]
	d := dx*dx + dy*dy
	if d == 0.0 {
		return 0.0
	}
	return ((p[0]-p0[0])*dx + (p[1]-p0[1])*dy) / d
}

// RadialT returns the largest parameter t for which p lies on the circle interpolated between
// (p0,r0) and (p1,r1) with a non-negative radius. It returns false when no such circle exists, in
// which case the pixel is transparent.
func RadialT(p0 [2]float64, r0 float64, p1 [2]float64, r1 float64, p [2]float64) (float64, bool) {
	cdx, cdy := p1[0]-p0[0], p1[1]-p0[1]
	pdx, pdy := p[0]-p0[0], p[1]-p0[1]
	dr := r1 - r0

	a := cdx*cdx + cdy*cdy - dr*dr
	b := pdx*cdx + pdy*cdy + r0*dr
	c := pdx*pdx + pdy*pdy - r0*r0

	var t float64
	if math.Abs(a) < 1e-9 {
		if math.Abs(b) < 1e-9 {
			return 0.0, false
		}
		t = c / (2.0 * b)
	} else {
		disc := b*b - a*c
		if disc < 0.0 {
			return 0.0, false
		}
		disc = math.Sqrt(disc)
		t0, t1 := (b+disc)/a, (b-disc)/a
		if t0 < t1 {
			t0, t1 = t1, t0
		}
		t = t0
		if r0+t*dr < 0.0 {
			t = t1
		}
	}
	if r0+t*dr < 0.0 {
		return 0.0, false
	}
	return t, true
}
