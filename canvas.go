// Package glcanvas implements the HTML Canvas 2D drawing API on top of an OpenGL ES 2.0 / WebGL 1
// context. Paths are flattened and transformed on the CPU, filled by triangulation and stroked by
// extrusion, and colored by one of four shader programs: flat colors, linear gradients, radial
// gradients and image patterns.
//
// A Context is not safe for concurrent use, all calls must happen on the goroutine that owns the GL
// context.
package glcanvas

import (
	"fmt"

	"github.com/go-gl/mathgl/mgl32"

	"github.com/tdewolff/glcanvas/gles"
)

// Option configures a Context in New.
type Option func(*options)

type options struct {
	cfg         Config
	tessellator Tessellator
	frameEnd    func()
}

// WithConfig sets the configuration, the default is DefaultConfig.
func WithConfig(cfg Config) Option {
	return func(o *options) {
		o.cfg = cfg
	}
}

// WithTessellator sets the tessellator used by Fill, overriding Config.Tessellator.
func WithTessellator(t Tessellator) Option {
	return func(o *options) {
		o.tessellator = t
	}
}

// WithFrameEnd sets a function that Flush calls instead of glFlush, such as a buffer swap or the
// publish step of a mobile app.
func WithFrameEnd(f func()) Option {
	return func(o *options) {
		o.frameEnd = f
	}
}

// Context is a Canvas 2D drawing context that renders to the default framebuffer of a GL context.
type Context struct {
	gl            gles.GL
	width, height int
	cfg           Config

	state drawingState
	stack []drawingState
	path  Path

	programs    [numFamilies]*shaderProgram
	programErrs [numFamilies]error
	active      *shaderProgram
	activeStyle Style // style whose uniforms are bound, nil if unknown

	vertexBuffer gles.Buffer
	pMatrix      mgl32.Mat4
	textures     *textureCache
	uncached     gles.Texture

	stroker     stroker
	tessellator Tessellator
	frameEnd    func()
}

// New returns a drawing context of width×height pixels on gl. The GL context must be current. When
// shader programs fail to build the context is still returned, the errors are logged and available
// from ShaderErrors, and drawing with the affected styles fails.
func New(gl gles.GL, width, height int, opts ...Option) (*Context, error) {
	if gl == nil {
		return nil, fmt.Errorf("nil GL context: %w", ErrSyntax)
	} else if width <= 0 || height <= 0 {
		return nil, fmt.Errorf("canvas size %dx%d: %w", width, height, ErrIndexSize)
	}

	o := options{cfg: DefaultConfig()}
	for _, opt := range opts {
		opt(&o)
	}
	if err := o.cfg.Validate(); err != nil {
		return nil, err
	}
	if o.tessellator == nil {
		var err error
		if o.tessellator, err = tessellatorByName(o.cfg.Tessellator); err != nil {
			return nil, err
		}
	}
	textures, err := newTextureCache(gl, o.cfg.TextureCacheSize)
	if err != nil {
		return nil, err
	}

	c := &Context{
		gl:          gl,
		cfg:         o.cfg,
		state:       defaultState(),
		textures:    textures,
		tessellator: o.tessellator,
		frameEnd:    o.frameEnd,
	}
	c.resize(width, height)
	gl.ClearColor(0.0, 0.0, 0.0, 0.0)
	gl.Enable(gles.BLEND)
	gl.BlendFunc(gles.SRC_ALPHA, gles.ONE_MINUS_SRC_ALPHA)
	gl.Clear(gles.COLOR_BUFFER_BIT)
	c.vertexBuffer = gl.CreateBuffer()

	c.compilePrograms()
	c.BeginPath()
	c.syncStroker()
	Logger().Debug("context created", "width", width, "height", height, "tessellator", o.cfg.Tessellator)
	return c, nil
}

func (c *Context) resize(width, height int) {
	c.width, c.height = width, height
	c.pMatrix = mgl32.Ortho(0.0, float32(width), float32(height), 0.0, -1.0, 1.0)
	c.gl.Viewport(0, 0, width, height)
	c.updateMatrixUniforms()
}

// Resize changes the size of the drawing buffer in pixels, for example after the window was
// resized. The content of the drawing buffer is undefined afterwards.
func (c *Context) Resize(width, height int) error {
	if width <= 0 || height <= 0 {
		return fmt.Errorf("canvas size %dx%d: %w", width, height, ErrIndexSize)
	}
	c.resize(width, height)
	return nil
}

// Width returns the width of the drawing buffer in pixels.
func (c *Context) Width() int {
	return c.width
}

// Height returns the height of the drawing buffer in pixels.
func (c *Context) Height() int {
	return c.height
}

// Config returns the configuration the context was created with.
func (c *Context) Config() Config {
	return c.cfg
}

// Flush ends the frame by calling the function set by WithFrameEnd, or glFlush otherwise.
func (c *Context) Flush() {
	if c.frameEnd != nil {
		c.frameEnd()
		return
	}
	c.gl.Flush()
}

// Close deletes the GL objects of the context. The context must not be used afterwards.
func (c *Context) Close() {
	for f, p := range c.programs {
		if p != nil {
			c.gl.DeleteProgram(p.program)
			c.programs[f] = nil
		}
	}
	c.active = nil
	c.activeStyle = nil
	c.textures.purge()
	if c.uncached.Value != 0 {
		c.gl.DeleteTexture(c.uncached)
		c.uncached = gles.Texture{}
	}
	c.gl.DeleteBuffer(c.vertexBuffer)
}
