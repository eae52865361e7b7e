package soft

import (
	"fmt"
	"regexp"
	"strconv"
	"strings"

	"github.com/tdewolff/glcanvas/gles"
)

type family int

const (
	unknownFamily family = iota
	flatFamily
	linearFamily
	radialFamily
	patternFamily
)

var declRe = regexp.MustCompile(`(?m)^\s*(attribute|uniform)\s+(?:(?:lowp|mediump|highp)\s+)?(\w+)\s+(\w+)\s*(?:\[\s*(\w+)\s*\])?\s*;`)
var constRe = regexp.MustCompile(`const\s+int\s+(\w+)\s*=\s*(\d+)\s*;`)

type decl struct {
	name string
	ty   gles.Enum
	size int
}

func (d decl) components() int {
	switch d.ty {
	case gles.FLOAT_VEC2:
		return 2
	case gles.FLOAT_VEC4:
		return 4
	case gles.FLOAT_MAT4:
		return 16
	}
	return 1
}

var glslTypes = map[string]gles.Enum{
	"float":     gles.FLOAT,
	"int":       gles.INT,
	"bool":      gles.BOOL,
	"vec2":      gles.FLOAT_VEC2,
	"vec4":      gles.FLOAT_VEC4,
	"mat4":      gles.FLOAT_MAT4,
	"sampler2D": gles.SAMPLER_2D,
}

type shader struct {
	ty       gles.Enum
	src      string
	compiled bool
	log      string
	attribs  []decl
	uniforms []decl
}

func (s *shader) compile() error {
	consts := map[string]int{}
	for _, m := range constRe.FindAllStringSubmatch(s.src, -1) {
		n, _ := strconv.Atoi(m[2])
		consts[m[1]] = n
	}

	s.attribs, s.uniforms = s.attribs[:0], s.uniforms[:0]
	for _, m := range declRe.FindAllStringSubmatch(s.src, -1) {
		ty, ok := glslTypes[m[2]]
		if !ok {
			return fmt.Errorf("unsupported type %s for %s", m[2], m[3])
		}
		d := decl{name: m[3], ty: ty, size: 1}
		if m[4] != "" {
			if n, err := strconv.Atoi(m[4]); err == nil {
				d.size = n
			} else if n, ok := consts[m[4]]; ok {
				d.size = n
			} else {
				return fmt.Errorf("undefined array size %s", m[4])
			}
		}
		if m[1] == "attribute" {
			if s.ty != gles.VERTEX_SHADER {
				return fmt.Errorf("attribute %s in fragment shader", d.name)
			}
			s.attribs = append(s.attribs, d)
		} else {
			s.uniforms = append(s.uniforms, d)
		}
	}
	if !strings.Contains(s.src, "void main") {
		return fmt.Errorf("missing main")
	}
	return nil
}

type uniformRef struct {
	index   int // into program.uniforms
	element int
}

type program struct {
	shaders  []*shader
	linked   bool
	log      string
	family   family
	attribs  []decl
	uniforms []decl
	values   [][]float32
	locs     []uniformRef // by location
	byName   map[string]int
}

func (p *program) link() error {
	p.attribs, p.uniforms, p.values, p.locs = nil, nil, nil, nil
	p.byName = map[string]int{}

	var vert, frag bool
	for _, s := range p.shaders {
		if !s.compiled {
			return fmt.Errorf("shader not compiled")
		}
		vert = vert || s.ty == gles.VERTEX_SHADER
		frag = frag || s.ty == gles.FRAGMENT_SHADER
		p.attribs = append(p.attribs, s.attribs...)
		for _, u := range s.uniforms {
			if i, ok := p.byName[u.name]; ok {
				if p.uniforms[i] != u {
					return fmt.Errorf("uniform %s declared with different types", u.name)
				}
				continue
			}
			p.byName[u.name] = len(p.uniforms)
			p.uniforms = append(p.uniforms, u)
		}
	}
	if !vert || !frag {
		return fmt.Errorf("program needs a vertex and a fragment shader")
	}

	for i, u := range p.uniforms {
		p.values = append(p.values, make([]float32, u.components()*u.size))
		for j := 0; j < u.size; j++ {
			p.locs = append(p.locs, uniformRef{i, j})
		}
	}

	switch {
	case p.has("uColor"):
		p.family = flatFamily
	case p.has("uTexture"):
		p.family = patternFamily
	case p.has("r0") && p.has("p0"):
		p.family = radialFamily
	case p.has("p0"):
		p.family = linearFamily
	default:
		p.family = unknownFamily
	}
	return nil
}

func (p *program) has(name string) bool {
	_, ok := p.byName[name]
	return ok
}

func (p *program) attribLocation(name string) int {
	for i, a := range p.attribs {
		if a.name == name {
			return i
		}
	}
	return -1
}

// uniform returns the values of the named uniform, or nil if it does not exist.
func (p *program) uniform(name string) []float32 {
	if i, ok := p.byName[name]; ok {
		return p.values[i]
	}
	return nil
}

func (p *program) location(name string) int32 {
	element := 0
	if open := strings.IndexByte(name, '['); open != -1 && strings.HasSuffix(name, "]") {
		n, err := strconv.Atoi(name[open+1 : len(name)-1])
		if err != nil {
			return -1
		}
		name, element = name[:open], n
	}
	i, ok := p.byName[name]
	if !ok || p.uniforms[i].size <= element {
		return -1
	}
	loc := 0
	for j := 0; j < i; j++ {
		loc += p.uniforms[j].size
	}
	return int32(loc + element)
}

func (gl *GL) AttachShader(p gles.Program, s gles.Shader) {
	prog, ok := gl.programs[p.Value]
	sh, ok2 := gl.shaders[s.Value]
	if !ok || !ok2 {
		gl.Stats.Errors++
		return
	}
	prog.shaders = append(prog.shaders, sh)
}

func (gl *GL) CompileShader(s gles.Shader) {
	sh, ok := gl.shaders[s.Value]
	if !ok {
		gl.Stats.Errors++
		return
	}
	sh.compiled, sh.log = false, ""
	if gl.CompileError != nil {
		if msg := gl.CompileError(sh.ty, sh.src); msg != "" {
			sh.log = msg
			return
		}
	}
	if err := sh.compile(); err != nil {
		sh.log = "ERROR: 0:1: " + err.Error()
		return
	}
	sh.compiled = true
}

func (gl *GL) CreateProgram() gles.Program {
	id := gl.id()
	gl.programs[id] = &program{}
	return gles.Program{Value: id}
}

func (gl *GL) CreateShader(ty gles.Enum) gles.Shader {
	if ty != gles.VERTEX_SHADER && ty != gles.FRAGMENT_SHADER {
		gl.Stats.Errors++
		return gles.Shader{}
	}
	id := gl.id()
	gl.shaders[id] = &shader{ty: ty}
	return gles.Shader{Value: id}
}

func (gl *GL) DeleteProgram(p gles.Program) {
	if prog, ok := gl.programs[p.Value]; ok && prog == gl.current {
		gl.current = nil
	}
	delete(gl.programs, p.Value)
}

func (gl *GL) DeleteShader(s gles.Shader) {
	delete(gl.shaders, s.Value)
}

func (gl *GL) GetActiveAttrib(p gles.Program, index uint32) (string, int, gles.Enum) {
	prog, ok := gl.programs[p.Value]
	if !ok || len(prog.attribs) <= int(index) {
		gl.Stats.Errors++
		return "", 0, 0
	}
	a := prog.attribs[index]
	return a.name, a.size, a.ty
}

func (gl *GL) GetActiveUniform(p gles.Program, index uint32) (string, int, gles.Enum) {
	prog, ok := gl.programs[p.Value]
	if !ok || len(prog.uniforms) <= int(index) {
		gl.Stats.Errors++
		return "", 0, 0
	}
	u := prog.uniforms[index]
	name := u.name
	if 1 < u.size {
		name += "[0]"
	}
	return name, u.size, u.ty
}

func (gl *GL) GetAttribLocation(p gles.Program, name string) gles.Attrib {
	prog, ok := gl.programs[p.Value]
	if !ok || !prog.linked {
		gl.Stats.Errors++
		return gles.Attrib{}
	}
	return gles.Attrib{Value: uint(prog.attribLocation(name))}
}

func (gl *GL) GetProgrami(p gles.Program, pname gles.Enum) int {
	prog, ok := gl.programs[p.Value]
	if !ok {
		gl.Stats.Errors++
		return 0
	}
	switch pname {
	case gles.LINK_STATUS:
		if prog.linked {
			return 1
		}
		return 0
	case gles.ACTIVE_ATTRIBUTES:
		return len(prog.attribs)
	case gles.ACTIVE_UNIFORMS:
		return len(prog.uniforms)
	}
	gl.Stats.Errors++
	return 0
}

func (gl *GL) GetProgramInfoLog(p gles.Program) string {
	if prog, ok := gl.programs[p.Value]; ok {
		return prog.log
	}
	return ""
}

func (gl *GL) GetShaderi(s gles.Shader, pname gles.Enum) int {
	sh, ok := gl.shaders[s.Value]
	if !ok || pname != gles.COMPILE_STATUS {
		gl.Stats.Errors++
		return 0
	}
	if sh.compiled {
		return 1
	}
	return 0
}

func (gl *GL) GetShaderInfoLog(s gles.Shader) string {
	if sh, ok := gl.shaders[s.Value]; ok {
		return sh.log
	}
	return ""
}

func (gl *GL) GetUniformLocation(p gles.Program, name string) gles.Uniform {
	prog, ok := gl.programs[p.Value]
	if !ok || !prog.linked {
		gl.Stats.Errors++
		return gles.Uniform{Value: -1}
	}
	return gles.Uniform{Value: prog.location(name)}
}

func (gl *GL) LinkProgram(p gles.Program) {
	prog, ok := gl.programs[p.Value]
	if !ok {
		gl.Stats.Errors++
		return
	}
	prog.linked, prog.log = false, ""
	if err := prog.link(); err != nil {
		prog.log = "ERROR: " + err.Error()
		return
	}
	prog.linked = true
}

func (gl *GL) ShaderSource(s gles.Shader, src string) {
	if sh, ok := gl.shaders[s.Value]; ok {
		sh.src = src
	}
}

func (gl *GL) UseProgram(p gles.Program) {
	gl.Stats.UseProgram++
	if p.Value == 0 {
		gl.current = nil
		return
	}
	prog, ok := gl.programs[p.Value]
	if !ok || !prog.linked {
		gl.Stats.Errors++
		return
	}
	gl.current = prog
}

// setUniform writes values starting at location dst of the current program.
func (gl *GL) setUniform(dst gles.Uniform, values []float32) {
	if dst.Value < 0 {
		return // silently ignored, as in GL
	}
	prog := gl.current
	if prog == nil || len(prog.locs) <= int(dst.Value) {
		gl.Stats.Errors++
		return
	}
	ref := prog.locs[dst.Value]
	u := prog.uniforms[ref.index]
	name := u.name
	if 1 < u.size {
		name += "[" + strconv.Itoa(ref.element) + "]"
	}
	gl.Stats.UniformCalls[name]++

	store := prog.values[ref.index][ref.element*u.components():]
	copy(store, values)
}

func (gl *GL) Uniform1f(dst gles.Uniform, v float32) {
	gl.setUniform(dst, []float32{v})
}

func (gl *GL) Uniform1fv(dst gles.Uniform, src []float32) {
	gl.setUniform(dst, src)
}

func (gl *GL) Uniform1i(dst gles.Uniform, v int) {
	gl.setUniform(dst, []float32{float32(v)})
}

func (gl *GL) Uniform2f(dst gles.Uniform, v0, v1 float32) {
	gl.setUniform(dst, []float32{v0, v1})
}

func (gl *GL) Uniform4fv(dst gles.Uniform, src []float32) {
	gl.setUniform(dst, src)
}

func (gl *GL) UniformMatrix4fv(dst gles.Uniform, src []float32) {
	gl.setUniform(dst, src)
}
