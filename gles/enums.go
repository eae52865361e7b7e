package gles

// GL enumeration values, identical to those of GLES 2 and WebGL 1.
const (
	ZERO                = 0
	ONE                 = 1
	SRC_ALPHA           = 0x0302
	ONE_MINUS_SRC_ALPHA = 0x0303

	TRIANGLES      = 0x0004
	TRIANGLE_STRIP = 0x0005
	TRIANGLE_FAN   = 0x0006

	DEPTH_BUFFER_BIT   = 0x00000100
	STENCIL_BUFFER_BIT = 0x00000400
	COLOR_BUFFER_BIT   = 0x00004000

	BLEND = 0x0BE2

	ARRAY_BUFFER = 0x8892
	STREAM_DRAW  = 0x88E0
	STATIC_DRAW  = 0x88E4
	DYNAMIC_DRAW = 0x88E8

	BYTE          = 0x1400
	UNSIGNED_BYTE = 0x1401
	INT           = 0x1404
	FLOAT         = 0x1406

	RGBA = 0x1908

	FLOAT_VEC2      = 0x8B50
	FLOAT_VEC4      = 0x8B52
	BOOL            = 0x8B56
	FLOAT_MAT4      = 0x8B5C
	SAMPLER_2D      = 0x8B5E
	FRAGMENT_SHADER = 0x8B30
	VERTEX_SHADER   = 0x8B31

	COMPILE_STATUS    = 0x8B81
	LINK_STATUS       = 0x8B82
	ACTIVE_UNIFORMS   = 0x8B86
	ACTIVE_ATTRIBUTES = 0x8B89

	TEXTURE_2D         = 0x0DE1
	TEXTURE0           = 0x84C0
	TEXTURE_MAG_FILTER = 0x2800
	TEXTURE_MIN_FILTER = 0x2801
	TEXTURE_WRAP_S     = 0x2802
	TEXTURE_WRAP_T     = 0x2803
	NEAREST            = 0x2600
	LINEAR             = 0x2601
	CLAMP_TO_EDGE      = 0x812F
)
