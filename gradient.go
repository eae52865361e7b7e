package glcanvas

import (
	"fmt"
	"image/color"
	"math"
	"sort"

	"github.com/tdewolff/glcanvas/internal/gradient"
)

// GradientKind is linear or radial.
type GradientKind int

// See GradientKind.
const (
	LinearGradient GradientKind = iota
	RadialGradient
)

func (k GradientKind) String() string {
	if k == RadialGradient {
		return "radial"
	}
	return "linear"
}

// Stop is a color stop of a gradient, the color is non alpha-premultiplied RGBA ∈ [0,1].
type Stop struct {
	Offset float64
	Color  [4]float32
}

// Gradient is a linear gradient along P0-P1, or a radial gradient between the circles (P0,R0) and
// (P1,R1). Coordinates are in user space at the time the gradient is used.
type Gradient struct {
	Kind   GradientKind
	P0, P1 Point
	R0, R1 float64

	stops []Stop
}

// CreateLinearGradient returns a linear gradient from (x0,y0) to (x1,y1).
func (c *Context) CreateLinearGradient(x0, y0, x1, y1 float64) (*Gradient, error) {
	if !finite(x0, y0, x1, y1) {
		return nil, fmt.Errorf("linear gradient coordinates: %w", ErrSyntax)
	}
	return &Gradient{
		Kind: LinearGradient,
		P0:   Point{x0, y0},
		P1:   Point{x1, y1},
	}, nil
}

// CreateRadialGradient returns a radial gradient from the circle at (x0,y0) with radius r0 to the
// circle at (x1,y1) with radius r1. Radii must be non-negative.
func (c *Context) CreateRadialGradient(x0, y0, r0, x1, y1, r1 float64) (*Gradient, error) {
	if !finite(x0, y0, r0, x1, y1, r1) {
		return nil, fmt.Errorf("radial gradient coordinates: %w", ErrSyntax)
	} else if r0 < 0.0 || r1 < 0.0 {
		return nil, fmt.Errorf("radial gradient radius: %w", ErrIndexSize)
	}
	return &Gradient{
		Kind: RadialGradient,
		P0:   Point{x0, y0},
		P1:   Point{x1, y1},
		R0:   r0,
		R1:   r1,
	}, nil
}

// AddColorStop adds a color stop at offset ∈ [0,1]. The gradient is unchanged on error.
func (g *Gradient) AddColorStop(offset float64, col string) error {
	rgba, err := ParseColor(col)
	if err != nil {
		return err
	} else if math.IsNaN(offset) || offset < 0.0 || 1.0 < offset {
		return fmt.Errorf("color stop offset %v: %w", offset, ErrIndexSize)
	} else if MaxGradientStops <= len(g.stops) {
		return fmt.Errorf("more than %d color stops: %w", MaxGradientStops, ErrIndexSize)
	}
	g.stops = append(g.stops, Stop{offset, rgba})
	return nil
}

// Stops returns the color stops sorted by offset, stops at equal offsets keep their insertion order.
func (g *Gradient) Stops() []Stop {
	stops := append([]Stop{}, g.stops...)
	sort.SliceStable(stops, func(i, j int) bool {
		return stops[i].Offset < stops[j].Offset
	})
	return stops
}

// At returns the color of the gradient at (x,y) in user space, as rendered by the shaders.
func (g *Gradient) At(x, y float64) color.NRGBA {
	stops := g.Stops()
	offsets := make([]float64, len(stops))
	colors := make([][4]float64, len(stops))
	for i, stop := range stops {
		offsets[i] = stop.Offset
		colors[i] = [4]float64{float64(stop.Color[0]), float64(stop.Color[1]), float64(stop.Color[2]), float64(stop.Color[3])}
	}

	p0, p1, p := [2]float64{g.P0.X, g.P0.Y}, [2]float64{g.P1.X, g.P1.Y}, [2]float64{x, y}
	var t float64
	if g.Kind == RadialGradient {
		var ok bool
		if t, ok = gradient.RadialT(p0, g.R0, p1, g.R1, p); !ok {
			return color.NRGBA{}
		}
	} else {
		t = gradient.LinearT(p0, p1, p)
	}
	rgba := gradient.Lookup(offsets, colors, t)
	return color.NRGBA{toByte(rgba[0]), toByte(rgba[1]), toByte(rgba[2]), toByte(rgba[3])}
}

func (g *Gradient) clone() Style {
	r := *g
	r.stops = append([]Stop{}, g.stops...)
	return &r
}

func toByte(f float64) uint8 {
	return uint8(math.Max(0.0, math.Min(f, 1.0))*255.0 + 0.5)
}
