package glcanvas

import (
	"errors"
	"fmt"
)

// Usage and range errors returned by the drawing context. Errors are wrapped with context, use
// errors.Is to test for them.
var (
	// ErrSyntax is returned for malformed values, such as an unparsable color or repeat mode.
	ErrSyntax = errors.New("syntax error")

	// ErrIndexSize is returned for values out of range, such as a color stop offset outside [0,1].
	ErrIndexSize = errors.New("index size error")

	// ErrNotSupported is returned for operations the context does not implement.
	ErrNotSupported = errors.New("not supported")
)

// ShaderError is returned when the shader program of a style family fails to compile or link.
type ShaderError struct {
	Family string
	Stage  string // vertex, fragment or link
	Log    string
}

func (err *ShaderError) Error() string {
	return fmt.Sprintf("%s shader: %s failed: %s", err.Family, err.Stage, err.Log)
}
