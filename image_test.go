package glcanvas

import (
	"errors"
	"image"
	"image/color"
	"math"
	"testing"

	"github.com/tdewolff/test"
)

func TestNewImageData(t *testing.T) {
	img := checkerImage()
	data, err := NewImageData(img)
	test.Error(t, err)
	test.T(t, data.Width, 2)
	test.T(t, data.Height, 2)
	test.T(t, data.Data, img.Pix)
	test.T(t, data.Image().NRGBAAt(1, 1), color.NRGBA{255, 255, 255, 255})

	// sub images and other color models
	sub := image.NewRGBA(image.Rect(0, 0, 3, 3))
	sub.Set(2, 2, color.RGBA{0, 0, 128, 128})
	data, err = NewImageData(sub.SubImage(image.Rect(1, 1, 3, 3)))
	test.Error(t, err)
	test.T(t, data.Width, 2)
	test.T(t, data.Image().NRGBAAt(1, 1), color.NRGBA{0, 0, 255, 128})

	_, err = NewImageData(nil)
	test.That(t, errors.Is(err, ErrSyntax))
}

func TestCreateImageData(t *testing.T) {
	c, _ := newTestContext(t, 4, 4)
	data, err := c.CreateImageData(3, -2)
	test.Error(t, err)
	test.T(t, data.Width, 3)
	test.T(t, data.Height, 2)
	test.T(t, len(data.Data), 24)
	for _, b := range data.Data {
		test.T(t, b, uint8(0))
	}

	_, err = c.CreateImageData(0, 2)
	test.That(t, errors.Is(err, ErrIndexSize))

	data, err = c.CreateImageDataFrom(data)
	test.Error(t, err)
	test.T(t, data.Width, 3)
	_, err = c.CreateImageDataFrom(&ImageData{Width: 2, Height: 2})
	test.That(t, errors.Is(err, ErrSyntax))
}

func TestGetImageData(t *testing.T) {
	c, _ := newTestContext(t, 4, 4)
	test.Error(t, c.SetFillStyle(SolidColor("red")))
	test.Error(t, c.FillRect(1.0, 0.0, 1.0, 1.0))

	data, err := c.GetImageData(0, 0, 2, 2)
	test.Error(t, err)
	test.T(t, data.Width, 2)
	test.T(t, data.Image().NRGBAAt(1, 0), opaqueRed)
	test.T(t, data.Image().NRGBAAt(1, 1), transparent)
	test.T(t, data.Image().NRGBAAt(0, 0), transparent)

	// negative sizes extend to the left and up, outside pixels are transparent
	data, err = c.GetImageData(2, 1, -2, -2)
	test.Error(t, err)
	test.T(t, data.Image().NRGBAAt(1, 0), transparent)
	test.T(t, data.Image().NRGBAAt(1, 1), opaqueRed)
	data, err = c.GetImageData(-1, -1, 2, 2)
	test.Error(t, err)
	test.T(t, data.Image().NRGBAAt(0, 0), transparent)

	_, err = c.GetImageData(0, 0, 0, 1)
	test.That(t, errors.Is(err, ErrIndexSize))
}

func TestPutImageData(t *testing.T) {
	c, gl := newTestContext(t, 4, 4)
	test.Error(t, c.FillRect(0.0, 0.0, 4.0, 4.0))

	data, _ := c.CreateImageData(2, 2)
	copy(data.Data, []byte{
		10, 20, 30, 40, 50, 60, 70, 80,
		90, 100, 110, 120, 130, 140, 150, 160,
	})

	// replaces the pixels, ignoring transformation and global alpha
	c.Scale(3.0, 3.0)
	test.Error(t, c.SetGlobalAlpha(0.5))
	gl.ResetStats()
	test.Error(t, c.PutImageData(data, 1.0, 1.0))
	test.T(t, gl.Stats.TexImage2D, 1)
	test.T(t, pixel(gl, 0, 0), opaqueBlack)
	test.T(t, pixel(gl, 3, 3), opaqueBlack)

	got, err := c.GetImageData(1, 1, 2, 2)
	test.Error(t, err)
	test.T(t, got.Data, data.Data)

	// the temporary texture is gone and blending is restored
	test.Error(t, c.FillRect(0.0, 0.0, 1.0, 1.0))
	test.T(t, pixel(gl, 1, 1), color.NRGBA{5, 10, 15, 84})
	test.T(t, gl.Stats.Errors, 0)
}

func TestPutImageDataDirty(t *testing.T) {
	data := &ImageData{Width: 2, Height: 2, Data: []byte{
		255, 0, 0, 255, 0, 255, 0, 255,
		0, 0, 255, 255, 255, 255, 255, 255,
	}}

	green, blue, white := color.NRGBA{0, 255, 0, 255}, color.NRGBA{0, 0, 255, 255}, color.NRGBA{255, 255, 255, 255}
	var tts = []struct {
		name    string
		dirty   [4]float64
		uploads int
		pixels  [4]color.NRGBA // at (2,2), (3,2), (2,3) and (3,3)
	}{
		{"full", [4]float64{0.0, 0.0, 2.0, 2.0}, 1, [4]color.NRGBA{opaqueRed, green, blue, white}},
		{"one pixel", [4]float64{1.0, 1.0, 1.0, 1.0}, 1, [4]color.NRGBA{3: white}},
		{"negative", [4]float64{2.0, 1.0, -1.0, -1.0}, 1, [4]color.NRGBA{1: green}},
		{"clipped", [4]float64{-5.0, -5.0, 6.0, 6.0}, 1, [4]color.NRGBA{0: opaqueRed}},
		{"outside", [4]float64{5.0, 5.0, 1.0, 1.0}, 0, [4]color.NRGBA{}},
		{"empty", [4]float64{1.0, 1.0, 0.0, 1.0}, 0, [4]color.NRGBA{}},
		{"not finite", [4]float64{math.NaN(), 0.0, 2.0, 2.0}, 0, [4]color.NRGBA{}},
	}
	for _, tt := range tts {
		t.Run(tt.name, func(t *testing.T) {
			c, gl := newTestContext(t, 4, 4)
			gl.ResetStats()
			test.Error(t, c.PutImageDataDirty(data, 2.0, 2.0, tt.dirty[0], tt.dirty[1], tt.dirty[2], tt.dirty[3]))
			test.T(t, gl.Stats.TexImage2D, tt.uploads)
			test.T(t, pixel(gl, 2, 2), tt.pixels[0])
			test.T(t, pixel(gl, 3, 2), tt.pixels[1])
			test.T(t, pixel(gl, 2, 3), tt.pixels[2])
			test.T(t, pixel(gl, 3, 3), tt.pixels[3])
		})
	}

	c, _ := newTestContext(t, 4, 4)
	test.That(t, errors.Is(c.PutImageData(nil, 0.0, 0.0), ErrSyntax))
	test.That(t, errors.Is(c.PutImageData(&ImageData{Width: 1, Height: 1}, 0.0, 0.0), ErrSyntax))
}

func TestDrawImage(t *testing.T) {
	c, gl := newTestContext(t, 4, 4)
	img := checkerImage()
	test.Error(t, c.DrawImage(img, 1.0, 1.0))
	test.T(t, pixel(gl, 0, 0), transparent)
	test.T(t, pixel(gl, 1, 1), color.NRGBA{255, 0, 0, 255})
	test.T(t, pixel(gl, 2, 1), color.NRGBA{0, 255, 0, 255})
	test.T(t, pixel(gl, 1, 2), color.NRGBA{0, 0, 255, 255})
	test.T(t, pixel(gl, 2, 2), color.NRGBA{255, 255, 255, 255})
	test.T(t, pixel(gl, 3, 3), transparent)

	// scaled and transformed
	c, gl = newTestContext(t, 4, 4)
	c.Translate(0.0, 2.0)
	test.Error(t, c.DrawImageScaled(img, 0.0, 0.0, 4.0, 2.0))
	test.T(t, pixel(gl, 0, 1), transparent)
	test.T(t, pixel(gl, 1, 2), color.NRGBA{255, 0, 0, 255})
	test.T(t, pixel(gl, 2, 2), color.NRGBA{0, 255, 0, 255})
	test.T(t, pixel(gl, 3, 3), color.NRGBA{255, 255, 255, 255})

	// region
	c, gl = newTestContext(t, 4, 4)
	test.Error(t, c.DrawImageRegion(img, 1.0, 1.0, 1.0, 1.0, 0.0, 0.0, 2.0, 2.0))
	test.T(t, pixel(gl, 0, 0), color.NRGBA{255, 255, 255, 255})
	test.T(t, pixel(gl, 1, 1), color.NRGBA{255, 255, 255, 255})
	test.T(t, pixel(gl, 2, 2), transparent)

	// negative source width mirrors horizontally
	c, gl = newTestContext(t, 4, 4)
	test.Error(t, c.DrawImageRegion(img, 2.0, 0.0, -2.0, 2.0, 0.0, 0.0, 2.0, 2.0))
	test.T(t, pixel(gl, 0, 0), color.NRGBA{0, 255, 0, 255})
	test.T(t, pixel(gl, 1, 0), color.NRGBA{255, 0, 0, 255})
	test.T(t, pixel(gl, 0, 1), color.NRGBA{255, 255, 255, 255})
	test.T(t, pixel(gl, 1, 1), color.NRGBA{0, 0, 255, 255})

	gl.ResetStats()
	test.Error(t, c.DrawImageRegion(img, 0.0, 0.0, 0.0, 1.0, 0.0, 0.0, 2.0, 2.0))
	test.Error(t, c.DrawImageScaled(img, 0.0, 0.0, 2.0, 0.0))
	test.T(t, gl.Stats.DrawArrays, 0)
	test.That(t, errors.Is(c.DrawImage(nil, 0.0, 0.0), ErrSyntax))
}
