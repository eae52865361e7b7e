// Package desktop implements gles.GL on top of a desktop OpenGL 2.1 context using go-gl. The context
// must be current on the calling thread and gl.Init must have been called, see New.
package desktop

import (
	"strings"
	"unsafe"

	"github.com/go-gl/gl/v2.1/gl"

	"github.com/tdewolff/glcanvas/gles"
)

// GL is a desktop OpenGL context.
type GL struct{}

var _ gles.GL = (*GL)(nil)

// New initializes the GL function pointers of the current context.
func New() (*GL, error) {
	if err := gl.Init(); err != nil {
		return nil, err
	}
	return &GL{}, nil
}

// Version returns the GL version string of the current context.
func (*GL) Version() string {
	return gl.GoStr(gl.GetString(gl.VERSION))
}

// Size returns the size of the viewport.
func (*GL) Size() (int, int) {
	var vp [4]int32
	gl.GetIntegerv(gl.VIEWPORT, &vp[0])
	return int(vp[2]), int(vp[3])
}

func (*GL) ActiveTexture(texture gles.Enum) {
	gl.ActiveTexture(uint32(texture))
}

func (*GL) AttachShader(p gles.Program, s gles.Shader) {
	gl.AttachShader(p.Value, s.Value)
}

func (*GL) BindBuffer(target gles.Enum, b gles.Buffer) {
	gl.BindBuffer(uint32(target), b.Value)
}

func (*GL) BindTexture(target gles.Enum, t gles.Texture) {
	gl.BindTexture(uint32(target), t.Value)
}

func (*GL) BlendFunc(sfactor, dfactor gles.Enum) {
	gl.BlendFunc(uint32(sfactor), uint32(dfactor))
}

func (*GL) BufferData(target gles.Enum, src []byte, usage gles.Enum) {
	var ptr unsafe.Pointer
	if 0 < len(src) {
		ptr = gl.Ptr(&src[0])
	}
	gl.BufferData(uint32(target), len(src), ptr, uint32(usage))
}

func (*GL) Clear(mask gles.Enum) {
	gl.Clear(uint32(mask))
}

func (*GL) ClearColor(red, green, blue, alpha float32) {
	gl.ClearColor(red, green, blue, alpha)
}

func (*GL) CompileShader(s gles.Shader) {
	gl.CompileShader(s.Value)
}

func (*GL) CreateBuffer() gles.Buffer {
	var b uint32
	gl.GenBuffers(1, &b)
	return gles.Buffer{Value: b}
}

func (*GL) CreateProgram() gles.Program {
	return gles.Program{Value: gl.CreateProgram()}
}

func (*GL) CreateShader(ty gles.Enum) gles.Shader {
	return gles.Shader{Value: gl.CreateShader(uint32(ty))}
}

func (*GL) CreateTexture() gles.Texture {
	var t uint32
	gl.GenTextures(1, &t)
	return gles.Texture{Value: t}
}

func (*GL) DeleteBuffer(v gles.Buffer) {
	gl.DeleteBuffers(1, &v.Value)
}

func (*GL) DeleteProgram(p gles.Program) {
	gl.DeleteProgram(p.Value)
}

func (*GL) DeleteShader(s gles.Shader) {
	gl.DeleteShader(s.Value)
}

func (*GL) DeleteTexture(v gles.Texture) {
	gl.DeleteTextures(1, &v.Value)
}

func (*GL) Disable(cap gles.Enum) {
	gl.Disable(uint32(cap))
}

func (*GL) DrawArrays(mode gles.Enum, first, count int) {
	gl.DrawArrays(uint32(mode), int32(first), int32(count))
}

func (*GL) Enable(cap gles.Enum) {
	gl.Enable(uint32(cap))
}

func (*GL) EnableVertexAttribArray(a gles.Attrib) {
	gl.EnableVertexAttribArray(uint32(a.Value))
}

func (*GL) Flush() {
	gl.Flush()
}

// activeVariable reads the name, size and type of an active attribute or uniform.
func activeVariable(p gles.Program, index uint32, pnameMax uint32, get func(uint32, uint32, int32, *int32, *int32, *uint32, *uint8)) (string, int, gles.Enum) {
	var bufSize int32
	gl.GetProgramiv(p.Value, pnameMax, &bufSize)
	if bufSize < 1 {
		bufSize = 1
	}
	buf := make([]uint8, bufSize)
	var length, size int32
	var ty uint32
	get(p.Value, index, bufSize, &length, &size, &ty, &buf[0])
	return string(buf[:length]), int(size), gles.Enum(ty)
}

func (*GL) GetActiveAttrib(p gles.Program, index uint32) (string, int, gles.Enum) {
	return activeVariable(p, index, gl.ACTIVE_ATTRIBUTE_MAX_LENGTH, gl.GetActiveAttrib)
}

func (*GL) GetActiveUniform(p gles.Program, index uint32) (string, int, gles.Enum) {
	return activeVariable(p, index, gl.ACTIVE_UNIFORM_MAX_LENGTH, gl.GetActiveUniform)
}

func (*GL) GetAttribLocation(p gles.Program, name string) gles.Attrib {
	return gles.Attrib{Value: uint(gl.GetAttribLocation(p.Value, gl.Str(name+"\x00")))}
}

func (*GL) GetProgrami(p gles.Program, pname gles.Enum) int {
	var v int32
	gl.GetProgramiv(p.Value, uint32(pname), &v)
	return int(v)
}

func (*GL) GetProgramInfoLog(p gles.Program) string {
	var n int32
	gl.GetProgramiv(p.Value, gl.INFO_LOG_LENGTH, &n)
	if n == 0 {
		return ""
	}
	log := strings.Repeat("\x00", int(n)+1)
	gl.GetProgramInfoLog(p.Value, n, nil, gl.Str(log))
	return strings.TrimRight(log, "\x00")
}

func (*GL) GetShaderi(s gles.Shader, pname gles.Enum) int {
	var v int32
	gl.GetShaderiv(s.Value, uint32(pname), &v)
	return int(v)
}

func (*GL) GetShaderInfoLog(s gles.Shader) string {
	var n int32
	gl.GetShaderiv(s.Value, gl.INFO_LOG_LENGTH, &n)
	if n == 0 {
		return ""
	}
	log := strings.Repeat("\x00", int(n)+1)
	gl.GetShaderInfoLog(s.Value, n, nil, gl.Str(log))
	return strings.TrimRight(log, "\x00")
}

func (*GL) GetUniformLocation(p gles.Program, name string) gles.Uniform {
	return gles.Uniform{Value: gl.GetUniformLocation(p.Value, gl.Str(name+"\x00"))}
}

func (*GL) LinkProgram(p gles.Program) {
	gl.LinkProgram(p.Value)
}

func (*GL) ReadPixels(dst []byte, x, y, width, height int, format, ty gles.Enum) {
	if len(dst) == 0 {
		return
	}
	gl.ReadPixels(int32(x), int32(y), int32(width), int32(height), uint32(format), uint32(ty), gl.Ptr(&dst[0]))
}

func (*GL) ShaderSource(s gles.Shader, src string) {
	csrc, free := gl.Strs(src + "\x00")
	gl.ShaderSource(s.Value, 1, csrc, nil)
	free()
}

func (*GL) TexImage2D(target gles.Enum, level int, internalFormat int, width, height int, format gles.Enum, ty gles.Enum, data []byte) {
	var ptr unsafe.Pointer
	if 0 < len(data) {
		ptr = gl.Ptr(&data[0])
	}
	gl.TexImage2D(uint32(target), int32(level), int32(internalFormat), int32(width), int32(height), 0, uint32(format), uint32(ty), ptr)
}

func (*GL) TexParameteri(target, pname gles.Enum, param int) {
	gl.TexParameteri(uint32(target), uint32(pname), int32(param))
}

func (*GL) Uniform1f(dst gles.Uniform, v float32) {
	gl.Uniform1f(dst.Value, v)
}

func (*GL) Uniform1fv(dst gles.Uniform, src []float32) {
	if 0 < len(src) {
		gl.Uniform1fv(dst.Value, int32(len(src)), &src[0])
	}
}

func (*GL) Uniform1i(dst gles.Uniform, v int) {
	gl.Uniform1i(dst.Value, int32(v))
}

func (*GL) Uniform2f(dst gles.Uniform, v0, v1 float32) {
	gl.Uniform2f(dst.Value, v0, v1)
}

func (*GL) Uniform4fv(dst gles.Uniform, src []float32) {
	if 4 <= len(src) {
		gl.Uniform4fv(dst.Value, int32(len(src)/4), &src[0])
	}
}

func (*GL) UniformMatrix4fv(dst gles.Uniform, src []float32) {
	if 16 <= len(src) {
		gl.UniformMatrix4fv(dst.Value, int32(len(src)/16), false, &src[0])
	}
}

func (*GL) UseProgram(p gles.Program) {
	gl.UseProgram(p.Value)
}

func (*GL) VertexAttribPointer(dst gles.Attrib, size int, ty gles.Enum, normalize bool, stride, offset int) {
	gl.VertexAttribPointerWithOffset(uint32(dst.Value), int32(size), uint32(ty), normalize, int32(stride), uintptr(offset))
}

func (*GL) Viewport(x, y, width, height int) {
	gl.Viewport(int32(x), int32(y), int32(width), int32(height))
}
