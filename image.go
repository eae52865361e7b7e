package glcanvas

import (
	"fmt"
	"image"
	"math"

	"golang.org/x/image/draw"

	"github.com/tdewolff/glcanvas/gles"
)

// ImageData is a rectangle of non alpha-premultiplied RGBA pixels, with rows from top to bottom.
type ImageData struct {
	Width, Height int
	Data          []byte // 4*Width*Height bytes
}

// NewImageData converts img to image data.
func NewImageData(img image.Image) (*ImageData, error) {
	if img == nil {
		return nil, fmt.Errorf("nil image: %w", ErrSyntax)
	}
	b := img.Bounds()
	dst := image.NewNRGBA(image.Rect(0, 0, b.Dx(), b.Dy()))
	if src, ok := img.(*image.NRGBA); ok {
		for y := 0; y < b.Dy(); y++ {
			i := src.PixOffset(b.Min.X, b.Min.Y+y)
			copy(dst.Pix[y*dst.Stride:(y+1)*dst.Stride], src.Pix[i:i+4*b.Dx()])
		}
	} else {
		draw.Draw(dst, dst.Bounds(), img, b.Min, draw.Src)
	}
	return &ImageData{
		Width:  b.Dx(),
		Height: b.Dy(),
		Data:   dst.Pix,
	}, nil
}

// Image returns an image sharing its pixels with the image data.
func (d *ImageData) Image() *image.NRGBA {
	return &image.NRGBA{
		Pix:    d.Data,
		Stride: 4 * d.Width,
		Rect:   image.Rect(0, 0, d.Width, d.Height),
	}
}

func (d *ImageData) valid() bool {
	return d != nil && 0 <= d.Width && 0 <= d.Height && len(d.Data) == 4*d.Width*d.Height
}

// CreateImageData returns transparent black image data of |width|×|height| pixels.
func (c *Context) CreateImageData(width, height int) (*ImageData, error) {
	if width == 0 || height == 0 {
		return nil, fmt.Errorf("image data size %dx%d: %w", width, height, ErrIndexSize)
	}
	if width < 0 {
		width = -width
	}
	if height < 0 {
		height = -height
	}
	return &ImageData{
		Width:  width,
		Height: height,
		Data:   make([]byte, 4*width*height),
	}, nil
}

// CreateImageDataFrom returns transparent black image data with the size of src.
func (c *Context) CreateImageDataFrom(src *ImageData) (*ImageData, error) {
	if !src.valid() {
		return nil, fmt.Errorf("bad image data: %w", ErrSyntax)
	}
	return c.CreateImageData(src.Width, src.Height)
}

// GetImageData reads the pixels of the rectangle at (sx,sy) with size sw×sh of the drawing buffer,
// in device space. Pixels outside the drawing buffer are transparent black.
func (c *Context) GetImageData(sx, sy, sw, sh int) (*ImageData, error) {
	if sw == 0 || sh == 0 {
		return nil, fmt.Errorf("image data size %dx%d: %w", sw, sh, ErrIndexSize)
	}
	if sw < 0 {
		sx, sw = sx+sw, -sw
	}
	if sh < 0 {
		sy, sh = sy+sh, -sh
	}

	// GL rows go from bottom to top
	data := make([]byte, 4*sw*sh)
	c.gl.ReadPixels(data, sx, c.height-sy-sh, sw, sh, gles.RGBA, gles.UNSIGNED_BYTE)
	stride := 4 * sw
	row := make([]byte, stride)
	for i, j := 0, sh-1; i < j; i, j = i+1, j-1 {
		copy(row, data[i*stride:(i+1)*stride])
		copy(data[i*stride:(i+1)*stride], data[j*stride:(j+1)*stride])
		copy(data[j*stride:(j+1)*stride], row)
	}
	return &ImageData{
		Width:  sw,
		Height: sh,
		Data:   data,
	}, nil
}

// PutImageData writes the pixels of img at (dx,dy) in device space, replacing the pixels of the
// drawing buffer. The transformation, global alpha and styles do not apply.
func (c *Context) PutImageData(img *ImageData, dx, dy float64) error {
	if !img.valid() {
		return fmt.Errorf("bad image data: %w", ErrSyntax)
	}
	return c.PutImageDataDirty(img, dx, dy, 0.0, 0.0, float64(img.Width), float64(img.Height))
}

// PutImageDataDirty is PutImageData for only the dirty rectangle of img at (dirtyX,dirtyY) with size
// dirtyWidth×dirtyHeight. A negative size extends the rectangle to the left or up. Nothing is drawn
// when the dirty rectangle does not overlap img.
func (c *Context) PutImageDataDirty(img *ImageData, dx, dy, dirtyX, dirtyY, dirtyWidth, dirtyHeight float64) error {
	if !img.valid() {
		return fmt.Errorf("bad image data: %w", ErrSyntax)
	} else if !finite(dx, dy, dirtyX, dirtyY, dirtyWidth, dirtyHeight) {
		return nil
	}

	if dirtyWidth < 0.0 {
		dirtyX, dirtyWidth = dirtyX+dirtyWidth, -dirtyWidth
	}
	if dirtyHeight < 0.0 {
		dirtyY, dirtyHeight = dirtyY+dirtyHeight, -dirtyHeight
	}
	x0 := math.Max(math.Floor(dirtyX), 0.0)
	y0 := math.Max(math.Floor(dirtyY), 0.0)
	x1 := math.Min(math.Floor(dirtyX+dirtyWidth), float64(img.Width))
	y1 := math.Min(math.Floor(dirtyY+dirtyHeight), float64(img.Height))
	if x1 <= x0 || y1 <= y0 {
		return nil
	}

	p, err := c.program(patternFamily)
	if err != nil {
		return err
	}

	// copy the dirty region
	w, h := int(x1-x0), int(y1-y0)
	sub := &ImageData{
		Width:  w,
		Height: h,
		Data:   make([]byte, 4*w*h),
	}
	for y := 0; y < h; y++ {
		i := 4 * ((int(y0)+y)*img.Width + int(x0))
		copy(sub.Data[4*y*w:4*(y+1)*w], img.Data[i:i+4*w])
	}

	tex := c.uploadTexture(sub)
	defer c.gl.DeleteTexture(tex)

	c.useProgram(p)
	c.activeStyle = nil
	c.gl.ActiveTexture(gles.TEXTURE0)
	c.gl.BindTexture(gles.TEXTURE_2D, tex)
	c.gl.Uniform1i(p.uniform("uTexture"), 0)
	c.gl.Uniform2f(p.uniform("uTextureSize"), float32(w), float32(h))
	c.gl.Uniform1i(p.uniform("uRepeatMode"), int(SrcRect))
	c.gl.Uniform1f(p.uniform("uGlobalAlpha"), 1.0)
	skip := p.uniform("uSkipMVTransform")
	c.gl.Uniform1i(skip, 1)

	X0, Y0 := float32(math.Floor(dx)+x0), float32(math.Floor(dy)+y0)
	X1, Y1 := X0+float32(w), Y0+float32(h)
	vertices := []float32{
		X0, Y0, 0.0, 0.0,
		X1, Y0, 1.0, 0.0,
		X0, Y1, 0.0, 1.0,
		X1, Y1, 1.0, 1.0,
	}
	c.gl.BlendFunc(gles.ONE, gles.ZERO)
	c.draw(gles.TRIANGLE_STRIP, vertices, 16)
	c.gl.BlendFunc(gles.SRC_ALPHA, gles.ONE_MINUS_SRC_ALPHA)
	c.gl.Uniform1i(skip, 0)
	return nil
}

////////////////////////////////////////////////////////////////

// DrawImage draws img at (dx,dy) in user space at its natural size.
func (c *Context) DrawImage(img image.Image, dx, dy float64) error {
	if img == nil {
		return fmt.Errorf("nil image: %w", ErrSyntax)
	}
	size := img.Bounds().Size()
	return c.DrawImageRegion(img, 0.0, 0.0, float64(size.X), float64(size.Y), dx, dy, float64(size.X), float64(size.Y))
}

// DrawImageScaled draws img into the rectangle at (dx,dy) with size dw×dh in user space.
func (c *Context) DrawImageScaled(img image.Image, dx, dy, dw, dh float64) error {
	if img == nil {
		return fmt.Errorf("nil image: %w", ErrSyntax)
	}
	size := img.Bounds().Size()
	return c.DrawImageRegion(img, 0.0, 0.0, float64(size.X), float64(size.Y), dx, dy, dw, dh)
}

// DrawImageRegion draws the rectangle at (sx,sy) with size sw×sh of img, relative to its bounds,
// into the rectangle at (dx,dy) with size dw×dh in user space. Nothing is drawn when either
// rectangle is empty. A negative sw or sh is not normalized: the source rectangle extends to the
// left or up from (sx,sy) and the region is drawn mirrored along that axis.
func (c *Context) DrawImageRegion(img image.Image, sx, sy, sw, sh, dx, dy, dw, dh float64) error {
	if img == nil {
		return fmt.Errorf("nil image: %w", ErrSyntax)
	} else if !finite(sx, sy, sw, sh, dx, dy, dw, dh) {
		return nil
	}
	size := img.Bounds().Size()
	if size.X == 0 || size.Y == 0 || sw == 0.0 || sh == 0.0 || dw == 0.0 || dh == 0.0 {
		return nil
	}

	if err := c.applyStyle(&Pattern{img, SrcRect}); err != nil {
		return err
	}
	iw, ih := float64(size.X), float64(size.Y)
	u0, v0 := float32(sx/iw), float32(sy/ih)
	u1, v1 := float32((sx+sw)/iw), float32((sy+sh)/ih)
	x0, y0 := float32(dx), float32(dy)
	x1, y1 := float32(dx+dw), float32(dy+dh)
	vertices := []float32{
		x0, y0, u0, v0,
		x1, y0, u1, v0,
		x0, y1, u0, v1,
		x1, y1, u1, v1,
	}
	c.draw(gles.TRIANGLE_STRIP, vertices, 16)
	return nil
}
