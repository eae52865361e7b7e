package glcanvas

import (
	"math"

	"github.com/tdewolff/glcanvas/gles"
)

// clearStyle is transparent black, drawn with blending that replaces the destination.
const clearStyle = SolidColor("rgba(0,0,0,0)")

// draw uploads the vertices into the vertex buffer and draws them with the active program. Vertices
// are either [x y] pairs with stride 8, or interleaved [x y u v] with stride 16.
func (c *Context) draw(mode gles.Enum, vertices []float32, stride int) {
	c.gl.BindBuffer(gles.ARRAY_BUFFER, c.vertexBuffer)
	c.gl.BufferData(gles.ARRAY_BUFFER, gles.Float32Bytes(vertices...), gles.STREAM_DRAW)
	if a, ok := c.active.attribs["aVertexPosition"]; ok {
		c.gl.VertexAttribPointer(a, 2, gles.FLOAT, false, stride, 0)
	}
	if a, ok := c.active.attribs["aTexCoord"]; ok {
		offset := 0
		if stride == 16 {
			offset = 8
		}
		c.gl.VertexAttribPointer(a, 2, gles.FLOAT, false, stride, offset)
	}
	c.gl.DrawArrays(mode, 0, 4*len(vertices)/stride)
}

// drawDevice draws triangles whose points are already in device space, the model-view transform is
// skipped in the vertex shader.
func (c *Context) drawDevice(tris []Point) {
	if len(tris) == 0 {
		return
	}
	vertices := make([]float32, 0, 2*len(tris))
	for _, p := range tris {
		vertices = append(vertices, float32(p.X), float32(p.Y))
	}
	skip := c.active.uniform("uSkipMVTransform")
	c.gl.Uniform1i(skip, 1)
	c.draw(gles.TRIANGLES, vertices, 8)
	c.gl.Uniform1i(skip, 0)
}

// rectStrip returns a triangle strip of the rectangle in user space.
func rectStrip(x, y, w, h float64) []float32 {
	x0, y0, x1, y1 := float32(x), float32(y), float32(x+w), float32(y+h)
	return []float32{x0, y0, x1, y0, x0, y1, x1, y1}
}

////////////////////////////////////////////////////////////////

// Fill fills the subpaths of the current path with the fill style. Each subpath is triangulated
// independently and implicitly closed.
func (c *Context) Fill() error {
	if err := c.applyStyle(c.state.fillStyle); err != nil {
		return err
	}
	var tris []Point
	for _, sp := range c.path.subpaths {
		if len(sp) < 3 {
			continue
		}
		for _, tri := range c.tessellator.Tessellate(sp) {
			tris = append(tris, tri[:]...)
		}
	}
	c.drawDevice(tris)
	return nil
}

// Stroke strokes the subpaths of the current path with the stroke style, line width, caps, joins
// and dash pattern. Subpaths whose last point equals their first point are stroked as closed.
func (c *Context) Stroke() error {
	return c.strokeSubpaths(c.path.subpaths)
}

func (c *Context) strokeSubpaths(subpaths []Subpath) error {
	if err := c.applyStyle(c.state.strokeStyle); err != nil {
		return err
	}

	// the transformation may have changed since the line style was set
	c.syncStroker()

	// dash lengths are in user space, scale them like the line width
	scale := transformScale(c.state.transform)
	var dashes []float64
	if 0 < len(c.state.dashes) {
		dashes = make([]float64, len(c.state.dashes))
		for i, d := range c.state.dashes {
			dashes[i] = d * scale
		}
	}

	var m mesh
	for _, sp := range subpaths {
		pts := dedupe(sp)
		closed := Subpath(pts).Closed()
		if dashes == nil {
			c.stroker.extrude(&m, pts, closed)
			continue
		}
		for _, dash := range dashPolyline(pts, closed, dashes, c.state.dashOffset*scale) {
			c.stroker.extrude(&m, dedupe(dash), false)
		}
	}
	c.drawDevice(m)
	return nil
}

// FillRect fills the rectangle at (x,y) with size w×h with the fill style, without changing the
// current path.
func (c *Context) FillRect(x, y, w, h float64) error {
	if !finite(x, y, w, h) || w == 0.0 || h == 0.0 {
		return nil
	}
	if err := c.applyStyle(c.state.fillStyle); err != nil {
		return err
	}
	c.draw(gles.TRIANGLE_STRIP, rectStrip(x, y, w, h), 8)
	return nil
}

// StrokeRect strokes the rectangle at (x,y) with size w×h with the stroke style, without changing
// the current path.
func (c *Context) StrokeRect(x, y, w, h float64) error {
	if !finite(x, y, w, h) {
		return nil
	}
	rect := Subpath{
		c.transformed(x, y),
		c.transformed(x+w, y),
		c.transformed(x+w, y+h),
		c.transformed(x, y+h),
		c.transformed(x, y),
	}
	return c.strokeSubpaths([]Subpath{rect})
}

// ClearRect sets the pixels of the rectangle at (x,y) with size w×h to transparent black. Clearing
// a rectangle that covers the whole drawing buffer clears the buffer.
func (c *Context) ClearRect(x, y, w, h float64) error {
	if !finite(x, y, w, h) || w == 0.0 || h == 0.0 {
		return nil
	}
	if c.coversViewport(x, y, w, h) {
		c.gl.Clear(gles.COLOR_BUFFER_BIT)
		return nil
	}

	if err := c.applyStyle(clearStyle); err != nil {
		return err
	}
	c.gl.BlendFunc(gles.SRC_ALPHA, gles.ZERO)
	c.draw(gles.TRIANGLE_STRIP, rectStrip(x, y, w, h), 8)
	c.gl.BlendFunc(gles.SRC_ALPHA, gles.ONE_MINUS_SRC_ALPHA)
	c.activeStyle = nil
	return nil
}

// coversViewport returns true if the user space rectangle covers the drawing buffer under a
// transformation without rotation or skew.
func (c *Context) coversViewport(x, y, w, h float64) bool {
	m := c.state.transform
	if m[1] != 0.0 || m[4] != 0.0 {
		return false
	}
	p0, p1 := c.transformed(x, y), c.transformed(x+w, y+h)
	x0, x1 := math.Min(p0.X, p1.X), math.Max(p0.X, p1.X)
	y0, y1 := math.Min(p0.Y, p1.Y), math.Max(p0.Y, p1.Y)
	return x0 <= 0.0 && y0 <= 0.0 && float64(c.width) <= x1 && float64(c.height) <= y1
}
