package glcanvas

import (
	"errors"
	"fmt"

	"github.com/tdewolff/glcanvas/gles"
)

// family identifies one of the shader programs, one per kind of style.
type family int

const (
	flatFamily family = iota
	linearFamily
	radialFamily
	patternFamily
	numFamilies
)

func (f family) String() string {
	switch f {
	case flatFamily:
		return "flat"
	case linearFamily:
		return "linear gradient"
	case radialFamily:
		return "radial gradient"
	case patternFamily:
		return "pattern"
	}
	return fmt.Sprintf("family(%d)", int(f))
}

func (f family) sources() (string, string) {
	switch f {
	case linearFamily:
		return gradientVertexShader, linearFragmentShader
	case radialFamily:
		return gradientVertexShader, radialFragmentShader
	case patternFamily:
		return patternVertexShader, patternFragmentShader
	}
	return flatVertexShader, flatFragmentShader
}

// shaderProgram is a linked program with the locations of all its active attributes and uniforms.
type shaderProgram struct {
	family   family
	program  gles.Program
	attribs  map[string]gles.Attrib
	uniforms map[string]gles.Uniform
}

// uniform returns the location of the named uniform, or an invalid location which GL ignores.
func (p *shaderProgram) uniform(name string) gles.Uniform {
	if u, ok := p.uniforms[name]; ok {
		return u
	}
	return gles.Uniform{Value: -1}
}

func compileShader(gl gles.GL, f family, ty gles.Enum, src string) (gles.Shader, error) {
	stage := "vertex"
	if ty == gles.FRAGMENT_SHADER {
		stage = "fragment"
	}

	shader := gl.CreateShader(ty)
	gl.ShaderSource(shader, src)
	gl.CompileShader(shader)
	if gl.GetShaderi(shader, gles.COMPILE_STATUS) == 0 {
		log := gl.GetShaderInfoLog(shader)
		gl.DeleteShader(shader)
		return gles.Shader{}, &ShaderError{Family: f.String(), Stage: stage, Log: log}
	}
	return shader, nil
}

// compileProgram compiles and links the program of a family, and builds its attribute and uniform
// tables by enumerating the active attributes and uniforms. All attribute arrays are enabled.
func compileProgram(gl gles.GL, f family) (*shaderProgram, error) {
	vertSrc, fragSrc := f.sources()
	vert, err := compileShader(gl, f, gles.VERTEX_SHADER, vertSrc)
	if err != nil {
		return nil, err
	}
	defer gl.DeleteShader(vert)
	frag, err := compileShader(gl, f, gles.FRAGMENT_SHADER, fragSrc)
	if err != nil {
		return nil, err
	}
	defer gl.DeleteShader(frag)

	program := gl.CreateProgram()
	gl.AttachShader(program, vert)
	gl.AttachShader(program, frag)
	gl.LinkProgram(program)
	if gl.GetProgrami(program, gles.LINK_STATUS) == 0 {
		log := gl.GetProgramInfoLog(program)
		gl.DeleteProgram(program)
		return nil, &ShaderError{Family: f.String(), Stage: "link", Log: log}
	}
	gl.UseProgram(program)

	p := &shaderProgram{
		family:   f,
		program:  program,
		attribs:  map[string]gles.Attrib{},
		uniforms: map[string]gles.Uniform{},
	}
	n := gl.GetProgrami(program, gles.ACTIVE_ATTRIBUTES)
	for i := 0; i < n; i++ {
		name, _, _ := gl.GetActiveAttrib(program, uint32(i))
		a := gl.GetAttribLocation(program, name)
		gl.EnableVertexAttribArray(a)
		p.attribs[name] = a
	}
	n = gl.GetProgrami(program, gles.ACTIVE_UNIFORMS)
	for i := 0; i < n; i++ {
		name, size, _ := gl.GetActiveUniform(program, uint32(i))
		u := gl.GetUniformLocation(program, name)
		p.uniforms[name] = u
		if base, ok := arrayUniformBase(name); ok {
			p.uniforms[base] = u
		} else if 1 < size {
			// some drivers report arrays without the [0] suffix
			p.uniforms[name+"[0]"] = u
		}
	}
	return p, nil
}

func arrayUniformBase(name string) (string, bool) {
	if 3 < len(name) && name[len(name)-3:] == "[0]" {
		return name[:len(name)-3], true
	}
	return "", false
}

// compilePrograms compiles all families. Families that fail are left nil and their errors joined.
func (c *Context) compilePrograms() error {
	var errs []error
	for f := flatFamily; f < numFamilies; f++ {
		p, err := compileProgram(c.gl, f)
		if err != nil {
			Logger().Error("shader program unavailable", "family", f.String(), "error", err)
			c.programErrs[f] = err
			errs = append(errs, err)
			continue
		}
		c.programs[f] = p
	}
	c.active = nil
	return errors.Join(errs...)
}

// program returns the program of a family, or the error that prevented it from being built.
func (c *Context) program(f family) (*shaderProgram, error) {
	if p := c.programs[f]; p != nil {
		return p, nil
	} else if err := c.programErrs[f]; err != nil {
		return nil, fmt.Errorf("draw with %s style: %w", f, err)
	}
	return nil, fmt.Errorf("%s shader program: %w", f, ErrNotSupported)
}

// useProgram makes p the active program. Switching programs uploads the matrix uniforms and resets
// uSkipMVTransform, binding the active program again does nothing.
func (c *Context) useProgram(p *shaderProgram) {
	if c.active == p {
		return
	}
	c.gl.UseProgram(p.program)
	c.active = p
	c.activeStyle = nil
	c.updateMatrixUniforms()
}

// ShaderErrors returns the errors of the shader programs that failed to compile or link, or nil.
// Drawing with a style whose program failed returns an error wrapping the *ShaderError.
func (c *Context) ShaderErrors() error {
	var errs []error
	for _, err := range c.programErrs {
		if err != nil {
			errs = append(errs, err)
		}
	}
	return errors.Join(errs...)
}
