// Package gles defines the GL(ES 2) context handle consumed by glcanvas.
//
// The GL interface mirrors the method set of golang.org/x/mobile/gl.Context restricted to what a 2D
// drawing context needs, so that the core stays free of cgo and can be driven by a mobile GL context
// (package gles/mobile), a desktop OpenGL 2.1 context (package gles/desktop), or the software
// implementation in package gles/soft.
package gles

import (
	"encoding/binary"
	"math"
)

// Enum is a GL enumeration value.
type Enum uint32

// Program is a linked shader program.
type Program struct {
	Value uint32
}

// Shader is a vertex or fragment shader object.
type Shader struct {
	Value uint32
}

// Buffer is a buffer object.
type Buffer struct {
	Value uint32
}

// Texture is a texture object.
type Texture struct {
	Value uint32
}

// Uniform is the location of a uniform variable, -1 when it does not exist.
type Uniform struct {
	Value int32
}

// Attrib is the location of a vertex attribute.
type Attrib struct {
	Value uint
}

// Valid returns true if the uniform exists in the program.
func (u Uniform) Valid() bool {
	return 0 <= u.Value
}

// GL is a GL(ES 2) context. All calls must be made from the goroutine that owns the context.
type GL interface {
	ActiveTexture(texture Enum)
	AttachShader(p Program, s Shader)
	BindBuffer(target Enum, b Buffer)
	BindTexture(target Enum, t Texture)
	BlendFunc(sfactor, dfactor Enum)
	BufferData(target Enum, src []byte, usage Enum)
	Clear(mask Enum)
	ClearColor(red, green, blue, alpha float32)
	CompileShader(s Shader)
	CreateBuffer() Buffer
	CreateProgram() Program
	CreateShader(ty Enum) Shader
	CreateTexture() Texture
	DeleteBuffer(v Buffer)
	DeleteProgram(p Program)
	DeleteShader(s Shader)
	DeleteTexture(v Texture)
	Disable(cap Enum)
	DrawArrays(mode Enum, first, count int)
	Enable(cap Enum)
	EnableVertexAttribArray(a Attrib)
	Flush()
	GetActiveAttrib(p Program, index uint32) (name string, size int, ty Enum)
	GetActiveUniform(p Program, index uint32) (name string, size int, ty Enum)
	GetAttribLocation(p Program, name string) Attrib
	GetProgrami(p Program, pname Enum) int
	GetProgramInfoLog(p Program) string
	GetShaderi(s Shader, pname Enum) int
	GetShaderInfoLog(s Shader) string
	GetUniformLocation(p Program, name string) Uniform
	LinkProgram(p Program)
	ReadPixels(dst []byte, x, y, width, height int, format, ty Enum)
	ShaderSource(s Shader, src string)
	TexImage2D(target Enum, level int, internalFormat int, width, height int, format Enum, ty Enum, data []byte)
	TexParameteri(target, pname Enum, param int)
	Uniform1f(dst Uniform, v float32)
	Uniform1fv(dst Uniform, src []float32)
	Uniform1i(dst Uniform, v int)
	Uniform2f(dst Uniform, v0, v1 float32)
	Uniform4fv(dst Uniform, src []float32)
	UniformMatrix4fv(dst Uniform, src []float32)
	UseProgram(p Program)
	VertexAttribPointer(dst Attrib, size int, ty Enum, normalize bool, stride, offset int)
	Viewport(x, y, width, height int)
}

// Float32Bytes encodes values as little-endian bytes for BufferData.
func Float32Bytes(values ...float32) []byte {
	b := make([]byte, 4*len(values))
	for i, v := range values {
		binary.LittleEndian.PutUint32(b[4*i:], math.Float32bits(v))
	}
	return b
}

// Bytes32Float decodes a little-endian float32 at byte offset i.
func Bytes32Float(b []byte, i int) float32 {
	return math.Float32frombits(binary.LittleEndian.Uint32(b[i:]))
}
