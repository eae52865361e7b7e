// Package mobile implements gles.GL on top of a golang.org/x/mobile/gl context, as received in the
// lifecycle events of golang.org/x/mobile/app.
package mobile

import (
	"golang.org/x/mobile/gl"

	"github.com/tdewolff/glcanvas/gles"
)

// GL wraps a mobile GL context.
type GL struct {
	ctx gl.Context
}

var _ gles.GL = (*GL)(nil)

// New wraps ctx.
func New(ctx gl.Context) *GL {
	return &GL{ctx}
}

// Context returns the wrapped context.
func (m *GL) Context() gl.Context {
	return m.ctx
}

// Size returns the size of the viewport.
func (m *GL) Size() (int, int) {
	vp := make([]int32, 4)
	m.ctx.GetIntegerv(vp, gl.VIEWPORT)
	return int(vp[2]), int(vp[3])
}

func program(p gles.Program) gl.Program {
	return gl.Program{Init: true, Value: p.Value}
}

func (m *GL) ActiveTexture(texture gles.Enum) {
	m.ctx.ActiveTexture(gl.Enum(texture))
}

func (m *GL) AttachShader(p gles.Program, s gles.Shader) {
	m.ctx.AttachShader(program(p), gl.Shader{Value: s.Value})
}

func (m *GL) BindBuffer(target gles.Enum, b gles.Buffer) {
	m.ctx.BindBuffer(gl.Enum(target), gl.Buffer{Value: b.Value})
}

func (m *GL) BindTexture(target gles.Enum, t gles.Texture) {
	m.ctx.BindTexture(gl.Enum(target), gl.Texture{Value: t.Value})
}

func (m *GL) BlendFunc(sfactor, dfactor gles.Enum) {
	m.ctx.BlendFunc(gl.Enum(sfactor), gl.Enum(dfactor))
}

func (m *GL) BufferData(target gles.Enum, src []byte, usage gles.Enum) {
	m.ctx.BufferData(gl.Enum(target), src, gl.Enum(usage))
}

func (m *GL) Clear(mask gles.Enum) {
	m.ctx.Clear(gl.Enum(mask))
}

func (m *GL) ClearColor(red, green, blue, alpha float32) {
	m.ctx.ClearColor(red, green, blue, alpha)
}

func (m *GL) CompileShader(s gles.Shader) {
	m.ctx.CompileShader(gl.Shader{Value: s.Value})
}

func (m *GL) CreateBuffer() gles.Buffer {
	return gles.Buffer{Value: m.ctx.CreateBuffer().Value}
}

func (m *GL) CreateProgram() gles.Program {
	return gles.Program{Value: m.ctx.CreateProgram().Value}
}

func (m *GL) CreateShader(ty gles.Enum) gles.Shader {
	return gles.Shader{Value: m.ctx.CreateShader(gl.Enum(ty)).Value}
}

func (m *GL) CreateTexture() gles.Texture {
	return gles.Texture{Value: m.ctx.CreateTexture().Value}
}

func (m *GL) DeleteBuffer(v gles.Buffer) {
	m.ctx.DeleteBuffer(gl.Buffer{Value: v.Value})
}

func (m *GL) DeleteProgram(p gles.Program) {
	m.ctx.DeleteProgram(program(p))
}

func (m *GL) DeleteShader(s gles.Shader) {
	m.ctx.DeleteShader(gl.Shader{Value: s.Value})
}

func (m *GL) DeleteTexture(v gles.Texture) {
	m.ctx.DeleteTexture(gl.Texture{Value: v.Value})
}

func (m *GL) Disable(cap gles.Enum) {
	m.ctx.Disable(gl.Enum(cap))
}

func (m *GL) DrawArrays(mode gles.Enum, first, count int) {
	m.ctx.DrawArrays(gl.Enum(mode), first, count)
}

func (m *GL) Enable(cap gles.Enum) {
	m.ctx.Enable(gl.Enum(cap))
}

func (m *GL) EnableVertexAttribArray(a gles.Attrib) {
	m.ctx.EnableVertexAttribArray(gl.Attrib{Value: a.Value})
}

func (m *GL) Flush() {
	m.ctx.Flush()
}

func (m *GL) GetActiveAttrib(p gles.Program, index uint32) (string, int, gles.Enum) {
	name, size, ty := m.ctx.GetActiveAttrib(program(p), index)
	return name, size, gles.Enum(ty)
}

func (m *GL) GetActiveUniform(p gles.Program, index uint32) (string, int, gles.Enum) {
	name, size, ty := m.ctx.GetActiveUniform(program(p), index)
	return name, size, gles.Enum(ty)
}

func (m *GL) GetAttribLocation(p gles.Program, name string) gles.Attrib {
	return gles.Attrib{Value: m.ctx.GetAttribLocation(program(p), name).Value}
}

func (m *GL) GetProgrami(p gles.Program, pname gles.Enum) int {
	return m.ctx.GetProgrami(program(p), gl.Enum(pname))
}

func (m *GL) GetProgramInfoLog(p gles.Program) string {
	return m.ctx.GetProgramInfoLog(program(p))
}

func (m *GL) GetShaderi(s gles.Shader, pname gles.Enum) int {
	return m.ctx.GetShaderi(gl.Shader{Value: s.Value}, gl.Enum(pname))
}

func (m *GL) GetShaderInfoLog(s gles.Shader) string {
	return m.ctx.GetShaderInfoLog(gl.Shader{Value: s.Value})
}

func (m *GL) GetUniformLocation(p gles.Program, name string) gles.Uniform {
	return gles.Uniform{Value: m.ctx.GetUniformLocation(program(p), name).Value}
}

func (m *GL) LinkProgram(p gles.Program) {
	m.ctx.LinkProgram(program(p))
}

func (m *GL) ReadPixels(dst []byte, x, y, width, height int, format, ty gles.Enum) {
	m.ctx.ReadPixels(dst, x, y, width, height, gl.Enum(format), gl.Enum(ty))
}

func (m *GL) ShaderSource(s gles.Shader, src string) {
	m.ctx.ShaderSource(gl.Shader{Value: s.Value}, src)
}

func (m *GL) TexImage2D(target gles.Enum, level int, internalFormat int, width, height int, format gles.Enum, ty gles.Enum, data []byte) {
	m.ctx.TexImage2D(gl.Enum(target), level, internalFormat, width, height, gl.Enum(format), gl.Enum(ty), data)
}

func (m *GL) TexParameteri(target, pname gles.Enum, param int) {
	m.ctx.TexParameteri(gl.Enum(target), gl.Enum(pname), param)
}

func (m *GL) Uniform1f(dst gles.Uniform, v float32) {
	m.ctx.Uniform1f(gl.Uniform{Value: dst.Value}, v)
}

func (m *GL) Uniform1fv(dst gles.Uniform, src []float32) {
	m.ctx.Uniform1fv(gl.Uniform{Value: dst.Value}, src)
}

func (m *GL) Uniform1i(dst gles.Uniform, v int) {
	m.ctx.Uniform1i(gl.Uniform{Value: dst.Value}, v)
}

func (m *GL) Uniform2f(dst gles.Uniform, v0, v1 float32) {
	m.ctx.Uniform2f(gl.Uniform{Value: dst.Value}, v0, v1)
}

func (m *GL) Uniform4fv(dst gles.Uniform, src []float32) {
	m.ctx.Uniform4fv(gl.Uniform{Value: dst.Value}, src)
}

func (m *GL) UniformMatrix4fv(dst gles.Uniform, src []float32) {
	m.ctx.UniformMatrix4fv(gl.Uniform{Value: dst.Value}, src)
}

func (m *GL) UseProgram(p gles.Program) {
	m.ctx.UseProgram(program(p))
}

func (m *GL) VertexAttribPointer(dst gles.Attrib, size int, ty gles.Enum, normalize bool, stride, offset int) {
	m.ctx.VertexAttribPointer(gl.Attrib{Value: dst.Value}, size, gl.Enum(ty), normalize, stride, offset)
}

func (m *GL) Viewport(x, y, width, height int) {
	m.ctx.Viewport(x, y, width, height)
}
