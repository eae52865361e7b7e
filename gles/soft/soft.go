// Package soft implements gles.GL in pure Go. It rasterizes triangles without anti-aliasing at pixel
// centers the way a GL implementation does, and it emulates the four shader families used by glcanvas
// (flat color, linear gradient, radial gradient and pattern) by recognizing their uniform sets at link
// time. It is used for headless rendering and to verify GL traffic in tests.
package soft

import (
	"image"

	"github.com/tdewolff/glcanvas/gles"
)

// Stats counts the GL calls that matter for render efficiency.
type Stats struct {
	UseProgram   int
	DrawArrays   int
	TexImage2D   int
	BufferData   int
	Clear        int
	Errors       int
	UniformCalls map[string]int // by uniform name, array uniforms as name[0]
}

// Uniforms returns the number of uploads to the named uniform.
func (s *Stats) Uniforms(name string) int {
	return s.UniformCalls[name]
}

type attribPointer struct {
	enabled bool
	buffer  uint32
	size    int
	stride  int
	offset  int
}

type texture struct {
	width, height int
	data          []byte
	params        map[gles.Enum]int
}

// GL is a software GL context rendering into an RGBA framebuffer with the origin at the bottom-left.
type GL struct {
	// CompileError, when set, is called for every shader compilation and a non-empty return value
	// fails the compilation with that info log.
	CompileError func(ty gles.Enum, src string) string

	Stats Stats

	width, height int
	fb            []byte

	clearColor [4]float32
	blend      bool
	sfactor    gles.Enum
	dfactor    gles.Enum
	viewport   [4]int

	next     uint32
	shaders  map[uint32]*shader
	programs map[uint32]*program
	buffers  map[uint32][]byte
	textures map[uint32]*texture

	current     *program
	arrayBuffer uint32
	activeUnit  int
	units       [8]uint32
	attribs     [16]attribPointer
}

// New returns a software GL context with a width×height framebuffer cleared to transparent black.
func New(width, height int) *GL {
	return &GL{
		Stats:    Stats{UniformCalls: map[string]int{}},
		width:    width,
		height:   height,
		fb:       make([]byte, 4*width*height),
		sfactor:  gles.ONE,
		dfactor:  gles.ZERO,
		viewport: [4]int{0, 0, width, height},
		shaders:  map[uint32]*shader{},
		programs: map[uint32]*program{},
		buffers:  map[uint32][]byte{},
		textures: map[uint32]*texture{},
	}
}

// ResetStats zeroes all call counters.
func (gl *GL) ResetStats() {
	gl.Stats = Stats{UniformCalls: map[string]int{}}
}

// Size returns the framebuffer size.
func (gl *GL) Size() (int, int) {
	return gl.width, gl.height
}

// Image returns a copy of the framebuffer with the first row at the top.
func (gl *GL) Image() *image.NRGBA {
	img := image.NewNRGBA(image.Rect(0, 0, gl.width, gl.height))
	stride := 4 * gl.width
	for y := 0; y < gl.height; y++ {
		copy(img.Pix[y*img.Stride:y*img.Stride+stride], gl.fb[(gl.height-1-y)*stride:(gl.height-y)*stride])
	}
	return img
}

func (gl *GL) id() uint32 {
	gl.next++
	return gl.next
}

func (gl *GL) ActiveTexture(texture gles.Enum) {
	unit := int(texture) - gles.TEXTURE0
	if unit < 0 || len(gl.units) <= unit {
		gl.Stats.Errors++
		return
	}
	gl.activeUnit = unit
}

func (gl *GL) BindBuffer(target gles.Enum, b gles.Buffer) {
	if target != gles.ARRAY_BUFFER {
		gl.Stats.Errors++
		return
	}
	gl.arrayBuffer = b.Value
}

func (gl *GL) BindTexture(target gles.Enum, t gles.Texture) {
	gl.units[gl.activeUnit] = t.Value
}

func (gl *GL) BlendFunc(sfactor, dfactor gles.Enum) {
	gl.sfactor, gl.dfactor = sfactor, dfactor
}

func (gl *GL) BufferData(target gles.Enum, src []byte, usage gles.Enum) {
	if target != gles.ARRAY_BUFFER || gl.arrayBuffer == 0 {
		gl.Stats.Errors++
		return
	}
	gl.Stats.BufferData++
	gl.buffers[gl.arrayBuffer] = append([]byte{}, src...)
}

func (gl *GL) Clear(mask gles.Enum) {
	gl.Stats.Clear++
	if mask&gles.COLOR_BUFFER_BIT == 0 {
		return
	}
	var c [4]byte
	for i, v := range gl.clearColor {
		c[i] = quantize(float64(v))
	}
	for i := 0; i < len(gl.fb); i += 4 {
		copy(gl.fb[i:i+4], c[:])
	}
}

func (gl *GL) ClearColor(red, green, blue, alpha float32) {
	gl.clearColor = [4]float32{red, green, blue, alpha}
}

func (gl *GL) CreateBuffer() gles.Buffer {
	id := gl.id()
	gl.buffers[id] = nil
	return gles.Buffer{Value: id}
}

func (gl *GL) CreateTexture() gles.Texture {
	id := gl.id()
	gl.textures[id] = &texture{params: map[gles.Enum]int{}}
	return gles.Texture{Value: id}
}

func (gl *GL) DeleteBuffer(v gles.Buffer) {
	delete(gl.buffers, v.Value)
}

func (gl *GL) DeleteTexture(v gles.Texture) {
	delete(gl.textures, v.Value)
	for i, t := range gl.units {
		if t == v.Value {
			gl.units[i] = 0
		}
	}
}

func (gl *GL) Disable(cap gles.Enum) {
	if cap == gles.BLEND {
		gl.blend = false
	}
}

func (gl *GL) Enable(cap gles.Enum) {
	if cap == gles.BLEND {
		gl.blend = true
	}
}

func (gl *GL) EnableVertexAttribArray(a gles.Attrib) {
	if len(gl.attribs) <= int(a.Value) {
		gl.Stats.Errors++
		return
	}
	gl.attribs[a.Value].enabled = true
}

func (gl *GL) Flush() {}

func (gl *GL) ReadPixels(dst []byte, x, y, width, height int, format, ty gles.Enum) {
	if format != gles.RGBA || ty != gles.UNSIGNED_BYTE || len(dst) < 4*width*height {
		gl.Stats.Errors++
		return
	}
	for j := 0; j < height; j++ {
		fy := y + j
		if fy < 0 || gl.height <= fy {
			continue
		}
		for i := 0; i < width; i++ {
			fx := x + i
			if fx < 0 || gl.width <= fx {
				continue
			}
			copy(dst[4*(j*width+i):4*(j*width+i)+4], gl.fb[4*(fy*gl.width+fx):])
		}
	}
}

func (gl *GL) TexImage2D(target gles.Enum, level int, internalFormat int, width, height int, format gles.Enum, ty gles.Enum, data []byte) {
	t, ok := gl.textures[gl.units[gl.activeUnit]]
	if !ok || target != gles.TEXTURE_2D || format != gles.RGBA || ty != gles.UNSIGNED_BYTE || len(data) < 4*width*height {
		gl.Stats.Errors++
		return
	}
	gl.Stats.TexImage2D++
	t.width, t.height = width, height
	t.data = append([]byte{}, data[:4*width*height]...)
}

func (gl *GL) TexParameteri(target, pname gles.Enum, param int) {
	if t, ok := gl.textures[gl.units[gl.activeUnit]]; ok {
		t.params[pname] = param
	}
}

func (gl *GL) VertexAttribPointer(dst gles.Attrib, size int, ty gles.Enum, normalize bool, stride, offset int) {
	if len(gl.attribs) <= int(dst.Value) || ty != gles.FLOAT {
		gl.Stats.Errors++
		return
	}
	a := &gl.attribs[dst.Value]
	a.buffer = gl.arrayBuffer
	a.size, a.stride, a.offset = size, stride, offset
}

func (gl *GL) Viewport(x, y, width, height int) {
	gl.viewport = [4]int{x, y, width, height}
}

func quantize(v float64) byte {
	if v <= 0.0 {
		return 0
	} else if 1.0 <= v {
		return 255
	}
	return byte(v*255.0 + 0.5)
}
