package soft

import (
	"math"

	"github.com/tdewolff/glcanvas/gles"
	"github.com/tdewolff/glcanvas/internal/gradient"
)

// pattern repeat modes as set in uRepeatMode
const (
	noRepeat = iota
	repeatX
	repeatY
	repeatXY
	srcRect
)

type vertex struct {
	x, y float64    // window coordinates
	v    [2]float64 // varying: vP2 or vTexCoord
}

func (gl *GL) DrawArrays(mode gles.Enum, first, count int) {
	prog := gl.current
	if prog == nil || first < 0 || count < 0 {
		gl.Stats.Errors++
		return
	}
	gl.Stats.DrawArrays++

	verts := make([]vertex, 0, count)
	for i := first; i < first+count; i++ {
		v, ok := gl.vertexShader(prog, i)
		if !ok {
			gl.Stats.Errors++
			return
		}
		verts = append(verts, v)
	}

	switch mode {
	case gles.TRIANGLES:
		for i := 0; i+2 < len(verts); i += 3 {
			gl.triangle(prog, verts[i], verts[i+1], verts[i+2])
		}
	case gles.TRIANGLE_STRIP:
		for i := 0; i+2 < len(verts); i++ {
			gl.triangle(prog, verts[i], verts[i+1], verts[i+2])
		}
	case gles.TRIANGLE_FAN:
		for i := 1; i+1 < len(verts); i++ {
			gl.triangle(prog, verts[0], verts[i], verts[i+1])
		}
	default:
		gl.Stats.Errors++
	}
}

func (gl *GL) attrib(prog *program, name string, i int) ([2]float64, bool) {
	loc := prog.attribLocation(name)
	if loc < 0 {
		return [2]float64{}, false
	}
	a := gl.attribs[loc]
	if !a.enabled {
		return [2]float64{}, false
	}
	buf := gl.buffers[a.buffer]
	stride := a.stride
	if stride == 0 {
		stride = 4 * a.size
	}
	pos := a.offset + i*stride
	if a.size < 2 || len(buf) < pos+8 {
		return [2]float64{}, false
	}
	return [2]float64{float64(gles.Bytes32Float(buf, pos)), float64(gles.Bytes32Float(buf, pos+4))}, true
}

func (gl *GL) vertexShader(prog *program, i int) (vertex, bool) {
	pos, ok := gl.attrib(prog, "aVertexPosition", i)
	if !ok {
		return vertex{}, false
	}
	p := [4]float64{pos[0], pos[1], 0.0, 1.0}

	skip := uniformBool(prog.uniform("uSkipMVTransform"))
	clip := p
	if !skip {
		clip = mat4Mul(prog.uniform("uMVMatrix"), clip)
	}
	clip = mat4Mul(prog.uniform("uPMatrix"), clip)

	var v vertex
	if clip[3] != 0.0 {
		clip[0] /= clip[3]
		clip[1] /= clip[3]
	}
	vp := gl.viewport
	v.x = (clip[0]+1.0)/2.0*float64(vp[2]) + float64(vp[0])
	v.y = (clip[1]+1.0)/2.0*float64(vp[3]) + float64(vp[1])

	model := [2]float64{pos[0], pos[1]}
	if skip {
		q := mat4Mul(prog.uniform("uiMVMatrix"), p)
		model = [2]float64{q[0], q[1]}
	}
	switch prog.family {
	case linearFamily, radialFamily:
		v.v = model
	case patternFamily:
		size := prog.uniform("uTextureSize")
		if len(size) == 2 && size[0] != 0.0 && size[1] != 0.0 {
			v.v = [2]float64{model[0] / float64(size[0]), model[1] / float64(size[1])}
		}
		if int(uniformFloat(prog.uniform("uRepeatMode"))) == srcRect {
			if v.v, ok = gl.attrib(prog, "aTexCoord", i); !ok {
				return vertex{}, false
			}
		}
	}
	return v, true
}

func edge(a, b vertex, x, y float64) float64 {
	return (b.x-a.x)*(y-a.y) - (b.y-a.y)*(x-a.x)
}

// topLeft reports whether edge a-b of a counter-clockwise triangle is a top or left edge.
func topLeft(a, b vertex) bool {
	dx, dy := b.x-a.x, b.y-a.y
	return dy < 0.0 || dy == 0.0 && dx < 0.0
}

func inside(w float64, tl bool) bool {
	return 0.0 < w || w == 0.0 && tl
}

func (gl *GL) triangle(prog *program, a, b, c vertex) {
	area := edge(a, b, c.x, c.y)
	if area == 0.0 || math.IsNaN(area) || math.IsInf(area, 0) {
		return
	} else if area < 0.0 {
		b, c = c, b
		area = -area
	}
	tlA, tlB, tlC := topLeft(b, c), topLeft(c, a), topLeft(a, b)

	x0 := max(0, int(math.Floor(min(a.x, b.x, c.x))))
	x1 := min(gl.width-1, int(math.Ceil(max(a.x, b.x, c.x))))
	y0 := max(0, int(math.Floor(min(a.y, b.y, c.y))))
	y1 := min(gl.height-1, int(math.Ceil(max(a.y, b.y, c.y))))
	for y := y0; y <= y1; y++ {
		py := float64(y) + 0.5
		for x := x0; x <= x1; x++ {
			px := float64(x) + 0.5
			wa, wb, wc := edge(b, c, px, py), edge(c, a, px, py), edge(a, b, px, py)
			if !inside(wa, tlA) || !inside(wb, tlB) || !inside(wc, tlC) {
				continue
			}
			wa, wb, wc = wa/area, wb/area, wc/area
			v := [2]float64{
				wa*a.v[0] + wb*b.v[0] + wc*c.v[0],
				wa*a.v[1] + wb*b.v[1] + wc*c.v[1],
			}
			gl.blendPixel(x, y, gl.fragmentShader(prog, v))
		}
	}
}

func (gl *GL) fragmentShader(prog *program, v [2]float64) [4]float64 {
	alpha := uniformFloat(prog.uniform("uGlobalAlpha"))
	var col [4]float64
	switch prog.family {
	case flatFamily:
		u := prog.uniform("uColor")
		col = [4]float64{float64(u[0]), float64(u[1]), float64(u[2]), float64(u[3])}
	case linearFamily:
		t := gradient.LinearT(vec2(prog.uniform("p0")), vec2(prog.uniform("p1")), v)
		col = gl.stops(prog, t)
	case radialFamily:
		t, ok := gradient.RadialT(vec2(prog.uniform("p0")), uniformFloat(prog.uniform("r0")), vec2(prog.uniform("p1")), uniformFloat(prog.uniform("r1")), v)
		if !ok {
			return [4]float64{}
		}
		col = gl.stops(prog, t)
	case patternFamily:
		mode := int(uniformFloat(prog.uniform("uRepeatMode")))
		outX := v[0] < 0.0 || 1.0 < v[0]
		outY := v[1] < 0.0 || 1.0 < v[1]
		if (mode == noRepeat || mode == srcRect) && (outX || outY) || mode == repeatX && outY || mode == repeatY && outX {
			return [4]float64{}
		}
		if mode == repeatX || mode == repeatXY {
			v[0] -= math.Floor(v[0])
		}
		if mode == repeatY || mode == repeatXY {
			v[1] -= math.Floor(v[1])
		}
		col = gl.sample(uint32(uniformFloat(prog.uniform("uTexture"))), v)
	default:
		col = [4]float64{1.0, 1.0, 1.0, 1.0}
	}
	col[3] *= alpha
	return col
}

func (gl *GL) stops(prog *program, t float64) [4]float64 {
	uo, uc := prog.uniform("offsets"), prog.uniform("colors")
	offsets := make([]float64, len(uo))
	for i, o := range uo {
		offsets[i] = float64(o)
	}
	colors := make([][4]float64, len(uc)/4)
	for i := range colors {
		colors[i] = [4]float64{float64(uc[4*i]), float64(uc[4*i+1]), float64(uc[4*i+2]), float64(uc[4*i+3])}
	}
	return gradient.Lookup(offsets, colors, t)
}

// sample does a nearest-neighbour lookup with clamp-to-edge wrapping in the texture bound to unit.
func (gl *GL) sample(unit uint32, v [2]float64) [4]float64 {
	if len(gl.units) <= int(unit) {
		return [4]float64{}
	}
	t, ok := gl.textures[gl.units[unit]]
	if !ok || t.width == 0 || t.height == 0 {
		return [4]float64{}
	}
	x := min(max(int(math.Floor(v[0]*float64(t.width))), 0), t.width-1)
	y := min(max(int(math.Floor(v[1]*float64(t.height))), 0), t.height-1)
	i := 4 * (y*t.width + x)
	return [4]float64{
		float64(t.data[i]) / 255.0,
		float64(t.data[i+1]) / 255.0,
		float64(t.data[i+2]) / 255.0,
		float64(t.data[i+3]) / 255.0,
	}
}

func (gl *GL) blendPixel(x, y int, src [4]float64) {
	i := 4 * (y*gl.width + x)
	dst := gl.fb[i : i+4]
	if !gl.blend {
		for k := 0; k < 4; k++ {
			dst[k] = quantize(src[k])
		}
		return
	}
	var d [4]float64
	for k := 0; k < 4; k++ {
		d[k] = float64(dst[k]) / 255.0
	}
	sf := factor(gl.sfactor, src, d)
	df := factor(gl.dfactor, src, d)
	for k := 0; k < 4; k++ {
		dst[k] = quantize(src[k]*sf + d[k]*df)
	}
}

func factor(f gles.Enum, src, dst [4]float64) float64 {
	switch f {
	case gles.ZERO:
		return 0.0
	case gles.ONE:
		return 1.0
	case gles.SRC_ALPHA:
		return src[3]
	case gles.ONE_MINUS_SRC_ALPHA:
		return 1.0 - src[3]
	}
	return 1.0
}

func mat4Mul(m []float32, v [4]float64) [4]float64 {
	if len(m) < 16 {
		return [4]float64{}
	}
	var r [4]float64
	for row := 0; row < 4; row++ {
		for col := 0; col < 4; col++ {
			r[row] += float64(m[col*4+row]) * v[col]
		}
	}
	return r
}

func vec2(u []float32) [2]float64 {
	if len(u) < 2 {
		return [2]float64{}
	}
	return [2]float64{float64(u[0]), float64(u[1])}
}

func uniformFloat(u []float32) float64 {
	if len(u) == 0 {
		return 0.0
	}
	return float64(u[0])
}

func uniformBool(u []float32) bool {
	return len(u) != 0 && u[0] != 0.0
}
