package tileclass

import (
	"image"
	"image/color"
	"math"

	"gonum.org/v1/gonum/stat"
)

// ChannelMeans returns the mean red, green & blue of every pixel in img,
// each in the range 0-255. Colours are un-premultiplied first so
// transparent pixels keep their stored colour.
func ChannelMeans(img image.Image) (r, g, b float64) {
	bnds := img.Bounds()
	n := bnds.Dx() * bnds.Dy()
	if n <= 0 {
		return 0, 0, 0
	}

	rs := make([]float64, 0, n)
	gs := make([]float64, 0, n)
	bs := make([]float64, 0, n)
	for y := bnds.Min.Y; y < bnds.Max.Y; y++ {
		for x := bnds.Min.X; x < bnds.Max.X; x++ {
			c := color.NRGBAModel.Convert(img.At(x, y)).(color.NRGBA)
			rs = append(rs, float64(c.R))
			gs = append(gs, float64(c.G))
			bs = append(bs, float64(c.B))
		}
	}

	return stat.Mean(rs, nil), stat.Mean(gs, nil), stat.Mean(bs, nil)
}

// Signature is a tile's colour fingerprint: the sum of it's channel means
// rounded to the nearest int (halves round up).
func Signature(img image.Image) int {
	r, g, b := ChannelMeans(img)
	return int(math.Floor(r + g + b + 0.5))
}
