package mobile

import (
	"testing"

	"github.com/tdewolff/test"
	"golang.org/x/mobile/gl"

	"github.com/tdewolff/glcanvas/gles"
)

// recorder implements the calls under test, all others panic on the nil embedded context.
type recorder struct {
	gl.Context
	used     []gl.Program
	pointers [][3]int
}

func (r *recorder) UseProgram(p gl.Program) {
	r.used = append(r.used, p)
}

func (r *recorder) GetIntegerv(dst []int32, pname gl.Enum) {
	if pname == gl.VIEWPORT {
		copy(dst, []int32{0, 0, 320, 240})
	}
}

func (r *recorder) VertexAttribPointer(dst gl.Attrib, size int, ty gl.Enum, normalized bool, stride, offset int) {
	r.pointers = append(r.pointers, [3]int{int(dst.Value), stride, offset})
}

func TestAdapter(t *testing.T) {
	r := &recorder{}
	m := New(r)
	test.T(t, m.Context(), gl.Context(r))

	m.UseProgram(gles.Program{Value: 3})
	test.T(t, r.used, []gl.Program{{Init: true, Value: 3}})

	w, h := m.Size()
	test.T(t, w, 320)
	test.T(t, h, 240)

	m.VertexAttribPointer(gles.Attrib{Value: 1}, 2, gles.FLOAT, false, 16, 8)
	test.T(t, r.pointers, [][3]int{{1, 16, 8}})
}
