package assets

import (
	"fmt"
	"image"

	"github.com/anthonynsimon/bild/imgio"
	"github.com/anthonynsimon/bild/transform"
	"github.com/go-gl/gl/v4.1-core/gl"
)

type Texture struct {
	// Path only exists for textures loaded from disk
	Path   string
	TexID  uint32
	Width  int32
	Height int32
}

func (t *Texture) Delete() {
	gl.DeleteTextures(1, &t.TexID)
	t.TexID = 0
}

// LoadTexture decodes an image file and uploads it.
// Rows are flipped first because OpenGL expects the bottom row first.
func LoadTexture(file string) (Texture, error) {

	img, err := imgio.Open(file)
	if err != nil {
		return Texture{}, err
	}

	rgba := FlipToRGBA(img)
	tex, err := NewTexture(rgba.Pix, int32(rgba.Rect.Dx()), int32(rgba.Rect.Dy()))
	if err != nil {
		return Texture{}, fmt.Errorf("failed to upload texture '%s': %w", file, err)
	}

	tex.Path = file
	return tex, nil
}

// FlipToRGBA returns a vertically flipped RGBA copy of img with a tightly packed pixel buffer
func FlipToRGBA(img image.Image) *image.RGBA {
	return transform.FlipV(img)
}

// NewTexture uploads tightly packed 8-bit RGBA pixels as mip level 0 of a new 2D texture.
// Wrapping is set to repeat and filtering to linear. No mipmaps are generated.
func NewTexture(pixels []byte, width, height int32) (Texture, error) {

	if width <= 0 || height <= 0 {
		return Texture{}, fmt.Errorf("invalid texture size %dx%d", width, height)
	}

	if len(pixels) != int(width)*int(height)*4 {
		return Texture{}, fmt.Errorf("texture of size %dx%d needs %d bytes of RGBA data but got %d", width, height, width*height*4, len(pixels))
	}

	tex := Texture{
		Width:  width,
		Height: height,
	}

	gl.GenTextures(1, &tex.TexID)
	if tex.TexID == 0 {
		return Texture{}, fmt.Errorf("failed to create OpenGL texture. OpenGl Error=%d", gl.GetError())
	}

	gl.BindTexture(gl.TEXTURE_2D, tex.TexID)
	defer gl.BindTexture(gl.TEXTURE_2D, 0)

	gl.TexParameteri(gl.TEXTURE_2D, gl.TEXTURE_WRAP_S, gl.REPEAT)
	gl.TexParameteri(gl.TEXTURE_2D, gl.TEXTURE_WRAP_T, gl.REPEAT)
	gl.TexParameteri(gl.TEXTURE_2D, gl.TEXTURE_MIN_FILTER, gl.LINEAR)
	gl.TexParameteri(gl.TEXTURE_2D, gl.TEXTURE_MAG_FILTER, gl.LINEAR)

	// Rows of RGBA8 data are always 4 byte aligned, so the default unpack alignment is fine
	gl.TexImage2D(gl.TEXTURE_2D, 0, gl.RGBA8, width, height, 0, gl.RGBA, gl.UNSIGNED_BYTE, gl.Ptr(&pixels[0]))

	return tex, nil
}
