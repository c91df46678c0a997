package assets

import (
	"image"
	"image/color"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestFlipToRGBA(t *testing.T) {

	img := image.NewNRGBA(image.Rect(0, 0, 2, 3))
	img.Set(0, 0, color.NRGBA{R: 255, A: 255})
	img.Set(1, 2, color.NRGBA{B: 255, A: 255})

	flipped := FlipToRGBA(img)
	assert.Equal(t, 2, flipped.Rect.Dx())
	assert.Equal(t, 3, flipped.Rect.Dy())
	assert.Len(t, flipped.Pix, 2*3*4)

	// Top row moved to the bottom and the other way round
	assert.Equal(t, color.RGBA{R: 255, A: 255}, flipped.RGBAAt(0, 2))
	assert.Equal(t, color.RGBA{B: 255, A: 255}, flipped.RGBAAt(1, 0))
	assert.Equal(t, color.RGBA{}, flipped.RGBAAt(0, 0))
}

func TestNewTextureValidatesInput(t *testing.T) {

	_, err := NewTexture(make([]byte, 16), 0, 4)
	assert.Error(t, err)

	_, err = NewTexture(make([]byte, 15), 2, 2)
	assert.Error(t, err)
}
