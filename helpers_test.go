package glcanvas

import (
	"image"
	"image/color"
	"testing"

	"github.com/tdewolff/test"

	"github.com/tdewolff/glcanvas/gles/soft"
)

func newTestContext(t *testing.T, width, height int, opts ...Option) (*Context, *soft.GL) {
	t.Helper()
	gl := soft.New(width, height)
	c, err := New(gl, width, height, opts...)
	test.Error(t, err)
	test.Error(t, c.ShaderErrors())
	return c, gl
}

func pixel(gl *soft.GL, x, y int) color.NRGBA {
	return gl.Image().NRGBAAt(x, y)
}

// checkerImage returns a 2x2 image with red, green, blue and white pixels in reading order.
func checkerImage() *image.NRGBA {
	img := image.NewNRGBA(image.Rect(0, 0, 2, 2))
	img.SetNRGBA(0, 0, color.NRGBA{255, 0, 0, 255})
	img.SetNRGBA(1, 0, color.NRGBA{0, 255, 0, 255})
	img.SetNRGBA(0, 1, color.NRGBA{0, 0, 255, 255})
	img.SetNRGBA(1, 1, color.NRGBA{255, 255, 255, 255})
	return img
}

var (
	transparent = color.NRGBA{0, 0, 0, 0}
	opaqueRed   = color.NRGBA{255, 0, 0, 255}
	opaqueBlack = color.NRGBA{0, 0, 0, 255}
)
