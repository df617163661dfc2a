package tileclass

import (
	"bytes"
	"fmt"
	"image"
	"image/color"
	"image/png"
)

// Crop is a single tile cut from a larger image.
type Crop struct {
	// Image is the cut out tile, with it's origin at (0,0)
	Image image.Image

	// Data is Image encoded as PNG
	Data []byte
}

// Extractor cuts a rectangle out of a source image.
type Extractor interface {
	Extract(src image.Image, r image.Rectangle) (*Crop, error)
}

// CropExtractor copies the requested area into a new image & encodes it.
// Areas hanging over the edge of the source are clipped to it, an area
// entirely outside of the source is an error.
type CropExtractor struct{}

// Extract the rectangle `r` from `src`
func (CropExtractor) Extract(src image.Image, r image.Rectangle) (*Crop, error) {
	clipped := r.Intersect(src.Bounds())
	if clipped.Empty() {
		return nil, fmt.Errorf("area %v is outside of image bounds %v", r, src.Bounds())
	}

	out := cutOut(src, clipped)

	buff := new(bytes.Buffer)
	if err := png.Encode(buff, out); err != nil {
		return nil, fmt.Errorf("failed to encode tile: %w", err)
	}

	return &Crop{Image: out, Data: buff.Bytes()}, nil
}

// cutOut the rectangle marked by `r` from the given image.
// Pixels are copied un-premultiplied so fully transparent pixels keep
// their colour.
func cutOut(in image.Image, r image.Rectangle) *image.NRGBA {
	out := image.NewNRGBA(image.Rect(0, 0, r.Dx(), r.Dy()))

	for dx := r.Min.X; dx < r.Max.X; dx++ {
		for dy := r.Min.Y; dy < r.Max.Y; dy++ {
			c := color.NRGBAModel.Convert(in.At(dx, dy))
			out.Set(dx-r.Min.X, dy-r.Min.Y, c)
		}
	}

	return out
}
