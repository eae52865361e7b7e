package glcanvas

import (
	"math"
	"testing"

	"github.com/tdewolff/test"
)

func trianglesArea(tris [][3]Point) float64 {
	area := 0.0
	for _, tri := range tris {
		area += math.Abs(tri[1].Sub(tri[0]).PerpDot(tri[2].Sub(tri[0])))
	}
	return area / 2.0
}

func TestTessellate(t *testing.T) {
	var tts = []struct {
		name    string
		polygon []Point
		area    float64
	}{
		{"triangle", []Point{{0.0, 0.0}, {4.0, 0.0}, {0.0, 3.0}}, 6.0},
		{"square", []Point{{0.0, 0.0}, {10.0, 0.0}, {10.0, 10.0}, {0.0, 10.0}}, 100.0},
		{"closed square", []Point{{0.0, 0.0}, {10.0, 0.0}, {10.0, 10.0}, {0.0, 10.0}, {0.0, 0.0}}, 100.0},
		{"clockwise", []Point{{0.0, 0.0}, {0.0, 10.0}, {10.0, 10.0}, {10.0, 0.0}}, 100.0},
		{"concave", []Point{{0.0, 0.0}, {10.0, 0.0}, {10.0, 10.0}, {5.0, 5.0}, {0.0, 10.0}}, 75.0},
		{"L shape", []Point{{0.0, 0.0}, {2.0, 0.0}, {2.0, 1.0}, {1.0, 1.0}, {1.0, 2.0}, {0.0, 2.0}}, 3.0},
		{"collinear", []Point{{0.0, 0.0}, {5.0, 0.0}, {10.0, 0.0}, {10.0, 10.0}, {0.0, 10.0}}, 100.0},
	}
	for _, tt := range tts {
		t.Run(tt.name, func(t *testing.T) {
			tris := EarClipping.Tessellate(tt.polygon)
			test.Float(t, trianglesArea(tris), tt.area)

			tris = Poly2tri.Tessellate(tt.polygon)
			test.Float(t, trianglesArea(tris), tt.area)
		})
	}
}

func TestTessellateDegenerate(t *testing.T) {
	test.T(t, len(EarClipping.Tessellate(nil)), 0)
	test.T(t, len(EarClipping.Tessellate([]Point{{0.0, 0.0}, {1.0, 1.0}})), 0)
	test.T(t, len(EarClipping.Tessellate([]Point{{0.0, 0.0}, {1.0, 1.0}, {0.0, 0.0}})), 0)
	test.T(t, len(EarClipping.Tessellate([]Point{{0.0, 0.0}, {1.0, 0.0}, {2.0, 0.0}})), 0)
	test.T(t, len(Poly2tri.Tessellate([]Point{{0.0, 0.0}, {1.0, 1.0}})), 0)

	// self-intersecting outlines do not fail
	bowtie := []Point{{0.0, 0.0}, {10.0, 10.0}, {10.0, 0.0}, {0.0, 10.0}}
	test.That(t, 0 < len(EarClipping.Tessellate(bowtie)))
}

func TestTessellatorByName(t *testing.T) {
	tess, err := tessellatorByName("earcut")
	test.Error(t, err)
	test.T(t, len(tess.Tessellate([]Point{{0.0, 0.0}, {1.0, 0.0}, {0.0, 1.0}})), 1)
	_, err = tessellatorByName("poly2tri")
	test.Error(t, err)
	_, err = tessellatorByName("")
	test.That(t, err != nil)
}

func TestFillConcave(t *testing.T) {
	for _, name := range []string{EarcutTessellator, Poly2triTessellator} {
		t.Run(name, func(t *testing.T) {
			cfg := DefaultConfig()
			cfg.Tessellator = name
			c, gl := newTestContext(t, 4, 4, WithConfig(cfg))
			c.MoveTo(0.0, 0.0)
			c.LineTo(4.0, 0.0)
			c.LineTo(4.0, 4.0)
			c.LineTo(2.0, 2.0)
			c.LineTo(0.0, 4.0)
			test.Error(t, c.Fill())
			test.T(t, pixel(gl, 0, 0), opaqueBlack)
			test.T(t, pixel(gl, 3, 2), opaqueBlack)
			test.T(t, pixel(gl, 1, 3), transparent)
			test.T(t, pixel(gl, 2, 3), transparent)
		})
	}
}
