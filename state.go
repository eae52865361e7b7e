package glcanvas

import (
	"fmt"
	"math"

	"github.com/go-gl/mathgl/mgl32"
)

// LineCap is the shape at the ends of open stroked subpaths and dashes.
type LineCap int

// See LineCap.
const (
	ButtCap LineCap = iota
	RoundCap
	SquareCap
)

// ParseLineCap parses butt, round or square.
func ParseLineCap(s string) (LineCap, error) {
	switch s {
	case "butt":
		return ButtCap, nil
	case "round":
		return RoundCap, nil
	case "square":
		return SquareCap, nil
	}
	return ButtCap, fmt.Errorf("bad line cap %q: %w", s, ErrSyntax)
}

func (c LineCap) String() string {
	switch c {
	case RoundCap:
		return "round"
	case SquareCap:
		return "square"
	}
	return "butt"
}

// LineJoin is the shape at the corners of stroked subpaths.
type LineJoin int

// See LineJoin.
const (
	MiterJoin LineJoin = iota
	RoundJoin
	BevelJoin
)

// ParseLineJoin parses miter, round or bevel.
func ParseLineJoin(s string) (LineJoin, error) {
	switch s {
	case "miter":
		return MiterJoin, nil
	case "round":
		return RoundJoin, nil
	case "bevel":
		return BevelJoin, nil
	}
	return MiterJoin, fmt.Errorf("bad line join %q: %w", s, ErrSyntax)
}

func (j LineJoin) String() string {
	switch j {
	case RoundJoin:
		return "round"
	case BevelJoin:
		return "bevel"
	}
	return "miter"
}

// drawingState is everything Save pushes and Restore pops.
type drawingState struct {
	transform   mgl32.Mat4
	fillStyle   Style
	strokeStyle Style
	lineWidth   float64
	lineCap     LineCap
	lineJoin    LineJoin
	miterLimit  float64
	dashes      []float64
	dashOffset  float64
	alpha       float64
}

func defaultState() drawingState {
	return drawingState{
		transform:   mgl32.Ident4(),
		fillStyle:   SolidColor("#000000"),
		strokeStyle: SolidColor("#000000"),
		lineWidth:   1.0,
		lineCap:     ButtCap,
		lineJoin:    MiterJoin,
		miterLimit:  10.0,
		dashes:      []float64{},
		dashOffset:  0.0,
		alpha:       1.0,
	}
}

// clone returns a deep copy that shares nothing mutable with s.
func (s drawingState) clone() drawingState {
	r := s
	r.fillStyle = s.fillStyle.clone()
	r.strokeStyle = s.strokeStyle.clone()
	r.dashes = append([]float64{}, s.dashes...)
	return r
}

// Save pushes a copy of the drawing state onto the stack.
func (c *Context) Save() {
	c.stack = append(c.stack, c.state.clone())
}

// Restore pops the drawing state saved last. It does nothing when the stack is empty.
func (c *Context) Restore() {
	if len(c.stack) == 0 {
		Logger().Debug("restore on empty state stack")
		return
	}
	c.state = c.stack[len(c.stack)-1]
	c.stack = c.stack[:len(c.stack)-1]

	c.activeStyle = nil
	c.updateMatrixUniforms()
	c.syncStroker()
	c.uploadGlobalAlpha()
}

// Scale scales the current transformation.
func (c *Context) Scale(x, y float64) {
	if !finite(x, y) {
		return
	}
	c.state.transform = c.state.transform.Mul4(mgl32.Scale3D(float32(x), float32(y), 1.0))
	c.updateMatrixUniforms()
}

// Rotate rotates the current transformation by angle in radians, clockwise in the canvas
// coordinate system where y points down.
func (c *Context) Rotate(angle float64) {
	if !finite(angle) {
		return
	}
	c.state.transform = c.state.transform.Mul4(mgl32.HomogRotate3DZ(float32(angle)))
	c.updateMatrixUniforms()
}

// Translate translates the current transformation.
func (c *Context) Translate(x, y float64) {
	if !finite(x, y) {
		return
	}
	c.state.transform = c.state.transform.Mul4(mgl32.Translate3D(float32(x), float32(y), 0.0))
	c.updateMatrixUniforms()
}

// Transform multiplies the current transformation by the matrix
//
//	[a c e]
//	[b d f]
//	[0 0 1]
func (c *Context) Transform(a, b, cc, d, e, f float64) {
	if !finite(a, b, cc, d, e, f) {
		return
	}
	c.state.transform = c.state.transform.Mul4(affine(a, b, cc, d, e, f))
	c.updateMatrixUniforms()
}

// SetTransform resets the current transformation to the identity and then calls Transform.
func (c *Context) SetTransform(a, b, cc, d, e, f float64) {
	if !finite(a, b, cc, d, e, f) {
		return
	}
	c.state.transform = affine(a, b, cc, d, e, f)
	c.updateMatrixUniforms()
}

// ResetTransform resets the current transformation to the identity.
func (c *Context) ResetTransform() {
	c.state.transform = mgl32.Ident4()
	c.updateMatrixUniforms()
}

// GetTransform returns the current transformation as [a b c d e f].
func (c *Context) GetTransform() [6]float64 {
	m := c.state.transform
	return [6]float64{float64(m[0]), float64(m[1]), float64(m[4]), float64(m[5]), float64(m[12]), float64(m[13])}
}

// FillStyle returns a copy of the fill style.
func (c *Context) FillStyle() Style {
	return c.state.fillStyle.clone()
}

// SetFillStyle sets the fill style to a copy of style. Later changes to style have no effect.
func (c *Context) SetFillStyle(style Style) error {
	if err := validateStyle(style); err != nil {
		return err
	}
	c.state.fillStyle = style.clone()
	return nil
}

// StrokeStyle returns a copy of the stroke style.
func (c *Context) StrokeStyle() Style {
	return c.state.strokeStyle.clone()
}

// SetStrokeStyle sets the stroke style to a copy of style. Later changes to style have no effect.
func (c *Context) SetStrokeStyle(style Style) error {
	if err := validateStyle(style); err != nil {
		return err
	}
	c.state.strokeStyle = style.clone()
	return nil
}

// LineWidth returns the line width.
func (c *Context) LineWidth() float64 {
	return c.state.lineWidth
}

// SetLineWidth sets the line width, it must be positive.
func (c *Context) SetLineWidth(width float64) error {
	if !finite(width) || width <= 0.0 {
		return fmt.Errorf("line width %v: %w", width, ErrIndexSize)
	}
	c.state.lineWidth = width
	c.syncStroker()
	return nil
}

// LineCap returns the line cap.
func (c *Context) LineCap() LineCap {
	return c.state.lineCap
}

// SetLineCap sets the line cap.
func (c *Context) SetLineCap(cap LineCap) error {
	if cap < ButtCap || SquareCap < cap {
		return fmt.Errorf("line cap %d: %w", cap, ErrSyntax)
	}
	c.state.lineCap = cap
	c.syncStroker()
	return nil
}

// LineJoin returns the line join.
func (c *Context) LineJoin() LineJoin {
	return c.state.lineJoin
}

// SetLineJoin sets the line join.
func (c *Context) SetLineJoin(join LineJoin) error {
	if join < MiterJoin || BevelJoin < join {
		return fmt.Errorf("line join %d: %w", join, ErrSyntax)
	}
	c.state.lineJoin = join
	c.syncStroker()
	return nil
}

// MiterLimit returns the miter limit.
func (c *Context) MiterLimit() float64 {
	return c.state.miterLimit
}

// SetMiterLimit sets the ratio of the miter length to the line width above which miter joins are
// beveled, it must be positive.
func (c *Context) SetMiterLimit(limit float64) error {
	if !finite(limit) || limit <= 0.0 {
		return fmt.Errorf("miter limit %v: %w", limit, ErrIndexSize)
	}
	c.state.miterLimit = limit
	c.syncStroker()
	return nil
}

// LineDash returns a copy of the dash pattern.
func (c *Context) LineDash() []float64 {
	return append([]float64{}, c.state.dashes...)
}

// SetLineDash sets the dash pattern of alternating dash and gap lengths. A pattern of odd length is
// repeated once to make it even. An empty pattern strokes solid lines.
func (c *Context) SetLineDash(dashes []float64) error {
	for _, d := range dashes {
		if !finite(d) || d < 0.0 {
			return fmt.Errorf("dash length %v: %w", d, ErrIndexSize)
		}
	}
	c.state.dashes = append([]float64{}, dashes...)
	if len(dashes)%2 == 1 {
		c.state.dashes = append(c.state.dashes, dashes...)
	}
	return nil
}

// LineDashOffset returns the dash offset.
func (c *Context) LineDashOffset() float64 {
	return c.state.dashOffset
}

// SetLineDashOffset sets the distance into the dash pattern at which strokes start.
func (c *Context) SetLineDashOffset(offset float64) error {
	if !finite(offset) {
		return fmt.Errorf("dash offset %v: %w", offset, ErrIndexSize)
	}
	c.state.dashOffset = offset
	return nil
}

// GlobalAlpha returns the global alpha.
func (c *Context) GlobalAlpha() float64 {
	return c.state.alpha
}

// SetGlobalAlpha sets the alpha ∈ [0,1] multiplied into everything drawn.
func (c *Context) SetGlobalAlpha(alpha float64) error {
	if math.IsNaN(alpha) || alpha < 0.0 || 1.0 < alpha {
		return fmt.Errorf("global alpha %v: %w", alpha, ErrIndexSize)
	}
	c.state.alpha = alpha
	c.uploadGlobalAlpha()
	return nil
}

// GlobalCompositeOperation returns the compositing operation, which is always source-over.
func (c *Context) GlobalCompositeOperation() string {
	return "source-over"
}

// SetGlobalCompositeOperation accepts only source-over, other compositing operations are not supported.
func (c *Context) SetGlobalCompositeOperation(op string) error {
	switch op {
	case "source-over":
		return nil
	case "source-in", "source-out", "source-atop", "destination-over", "destination-in", "destination-out",
		"destination-atop", "lighter", "copy", "xor", "multiply", "screen", "overlay", "darken", "lighten",
		"color-dodge", "color-burn", "hard-light", "soft-light", "difference", "exclusion", "hue",
		"saturation", "color", "luminosity":
		return fmt.Errorf("composite operation %s: %w", op, ErrNotSupported)
	}
	return fmt.Errorf("bad composite operation %q: %w", op, ErrSyntax)
}

func (c *Context) uploadGlobalAlpha() {
	if c.active != nil {
		if u, ok := c.active.uniforms["uGlobalAlpha"]; ok {
			c.gl.Uniform1f(u, float32(c.state.alpha))
		}
	}
}

// updateMatrixUniforms uploads the projection and model-view matrices to the active program.
func (c *Context) updateMatrixUniforms() {
	p := c.active
	if p == nil {
		return
	}
	c.gl.UniformMatrix4fv(p.uniform("uPMatrix"), c.pMatrix[:])
	c.gl.UniformMatrix4fv(p.uniform("uMVMatrix"), c.state.transform[:])
	if u, ok := p.uniforms["uiMVMatrix"]; ok {
		inv := c.state.transform.Inv()
		c.gl.UniformMatrix4fv(u, inv[:])
	}
	c.gl.Uniform1i(p.uniform("uSkipMVTransform"), 0)
}
