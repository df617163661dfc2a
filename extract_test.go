package tileclass

import (
	"bytes"
	"image"
	"image/color"
	"image/png"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCropExtractor(t *testing.T) {
	src := solidImage(96, 96, color.RGBA{0, 0, 0, 255})
	red := color.NRGBA{255, 0, 0, 255}
	src.Set(1, 1, red)

	crop, err := CropExtractor{}.Extract(src, image.Rect(1, 1, 49, 49))
	require.Nil(t, err)

	assert.Equal(t, image.Rect(0, 0, 48, 48), crop.Image.Bounds())
	assert.Equal(t, red, crop.Image.At(0, 0))

	decoded, err := png.Decode(bytes.NewReader(crop.Data))
	require.Nil(t, err)
	assert.Equal(t, crop.Image.Bounds(), decoded.Bounds())
	r, g, b, a := decoded.At(0, 0).RGBA()
	assert.Equal(t, []uint32{0xffff, 0, 0, 0xffff}, []uint32{r, g, b, a})
}

func TestCropExtractorClipsOverhang(t *testing.T) {
	src := solidImage(96, 96, color.RGBA{10, 10, 10, 255})

	crop, err := CropExtractor{}.Extract(src, image.Rect(49, 49, 97, 97))
	require.Nil(t, err)

	assert.Equal(t, image.Rect(0, 0, 47, 47), crop.Image.Bounds())

	// the encoded tile is the clipped size too
	decoded, err := png.Decode(bytes.NewReader(crop.Data))
	require.Nil(t, err)
	assert.Equal(t, image.Rect(0, 0, 47, 47), decoded.Bounds())
}

func TestCropExtractorOutside(t *testing.T) {
	src := solidImage(48, 48, color.RGBA{10, 10, 10, 255})

	_, err := CropExtractor{}.Extract(src, image.Rect(48, 0, 96, 48))

	assert.Error(t, err)
}

func TestCropExtractorKeepsTransparentColour(t *testing.T) {
	for _, alpha := range []uint8{0, 1, 128} {
		src := image.NewNRGBA(image.Rect(0, 0, 50, 50))
		c := color.NRGBA{200, 100, 50, alpha}
		for y := 0; y < 50; y++ {
			for x := 0; x < 50; x++ {
				src.SetNRGBA(x, y, c)
			}
		}

		crop, err := CropExtractor{}.Extract(src, image.Rect(1, 1, 49, 49))
		require.Nil(t, err)

		assert.Equal(t, Signature(src), Signature(crop.Image), "alpha %d", alpha)
		assert.Equal(t, 350, Signature(crop.Image), "alpha %d", alpha)

		// and the encoded pixel data keeps it too
		decoded, err := png.Decode(bytes.NewReader(crop.Data))
		require.Nil(t, err)
		assert.Equal(t, c, color.NRGBAModel.Convert(decoded.At(0, 0)), "alpha %d", alpha)
		assert.Equal(t, 350, Signature(decoded), "alpha %d", alpha)
	}
}
