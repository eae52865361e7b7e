package glcanvas

import (
	"fmt"
	"image"
	"reflect"

	lru "github.com/hashicorp/golang-lru"

	"github.com/tdewolff/glcanvas/gles"
)

// RepeatMode is how a pattern tiles the plane.
type RepeatMode int

// See RepeatMode. SrcRect samples only the source rectangle of an image and is used internally by
// DrawImage and PutImageData.
const (
	NoRepeat RepeatMode = iota
	RepeatX
	RepeatY
	Repeat
	SrcRect
)

// ParseRepeatMode parses no-repeat, repeat-x, repeat-y or repeat. The empty string is repeat.
func ParseRepeatMode(s string) (RepeatMode, error) {
	switch s {
	case "", "repeat":
		return Repeat, nil
	case "no-repeat":
		return NoRepeat, nil
	case "repeat-x":
		return RepeatX, nil
	case "repeat-y":
		return RepeatY, nil
	}
	return Repeat, fmt.Errorf("bad repeat value %q: %w", s, ErrSyntax)
}

func (m RepeatMode) String() string {
	switch m {
	case NoRepeat:
		return "no-repeat"
	case RepeatX:
		return "repeat-x"
	case RepeatY:
		return "repeat-y"
	case Repeat:
		return "repeat"
	case SrcRect:
		return "src-rect"
	}
	return fmt.Sprintf("RepeatMode(%d)", int(m))
}

// Pattern fills with an image tiled from the user space origin. The image is uploaded to a texture
// on first use and must not be changed afterwards.
type Pattern struct {
	Image  image.Image
	Repeat RepeatMode
}

// CreatePattern returns a pattern of img. The repeat value is parsed by ParseRepeatMode.
func (c *Context) CreatePattern(img image.Image, repeat string) (*Pattern, error) {
	if img == nil {
		return nil, fmt.Errorf("nil pattern image: %w", ErrSyntax)
	} else if img.Bounds().Empty() {
		return nil, fmt.Errorf("empty pattern image: %w", ErrIndexSize)
	}
	mode, err := ParseRepeatMode(repeat)
	if err != nil {
		return nil, err
	}
	return &Pattern{img, mode}, nil
}

func (p *Pattern) clone() Style {
	r := *p
	return &r
}

////////////////////////////////////////////////////////////////

// textureCache keeps the textures of recently used images, evicted textures are deleted.
type textureCache struct {
	gl    gles.GL
	cache *lru.Cache
}

func newTextureCache(gl gles.GL, size int) (*textureCache, error) {
	tc := &textureCache{gl: gl}
	cache, err := lru.NewWithEvict(size, func(key, value interface{}) {
		Logger().Debug("evict texture", "texture", value.(gles.Texture).Value)
		gl.DeleteTexture(value.(gles.Texture))
	})
	if err != nil {
		return nil, err
	}
	tc.cache = cache
	return tc, nil
}

func (tc *textureCache) get(img image.Image) (gles.Texture, bool) {
	if !cacheable(img) {
		return gles.Texture{}, false
	}
	if v, ok := tc.cache.Get(img); ok {
		return v.(gles.Texture), true
	}
	return gles.Texture{}, false
}

func (tc *textureCache) add(img image.Image, tex gles.Texture) bool {
	if !cacheable(img) {
		return false
	}
	tc.cache.Add(img, tex)
	return true
}

func (tc *textureCache) purge() {
	tc.cache.Purge()
}

// cacheable is true for images that can be used as map keys, which includes all pointer types.
func cacheable(img image.Image) bool {
	return reflect.TypeOf(img).Comparable()
}

// patternTexture returns the texture of img, uploading it when it is not cached.
func (c *Context) patternTexture(img image.Image) (gles.Texture, error) {
	if tex, ok := c.textures.get(img); ok {
		return tex, nil
	}
	data, err := NewImageData(img)
	if err != nil {
		return gles.Texture{}, err
	}
	tex := c.uploadTexture(data)
	if !c.textures.add(img, tex) {
		// not cacheable, keep only the latest one alive
		if c.uncached.Value != 0 {
			c.gl.DeleteTexture(c.uncached)
		}
		c.uncached = tex
	}
	return tex, nil
}

// uploadTexture creates a texture with nearest filtering and clamp-to-edge wrapping.
func (c *Context) uploadTexture(data *ImageData) gles.Texture {
	Logger().Debug("upload texture", "width", data.Width, "height", data.Height)
	tex := c.gl.CreateTexture()
	c.gl.ActiveTexture(gles.TEXTURE0)
	c.gl.BindTexture(gles.TEXTURE_2D, tex)
	c.gl.TexParameteri(gles.TEXTURE_2D, gles.TEXTURE_MAG_FILTER, gles.NEAREST)
	c.gl.TexParameteri(gles.TEXTURE_2D, gles.TEXTURE_MIN_FILTER, gles.NEAREST)
	c.gl.TexParameteri(gles.TEXTURE_2D, gles.TEXTURE_WRAP_S, gles.CLAMP_TO_EDGE)
	c.gl.TexParameteri(gles.TEXTURE_2D, gles.TEXTURE_WRAP_T, gles.CLAMP_TO_EDGE)
	c.gl.TexImage2D(gles.TEXTURE_2D, 0, gles.RGBA, data.Width, data.Height, gles.RGBA, gles.UNSIGNED_BYTE, data.Data)
	return tex
}
