package tileclass

import (
	"bytes"
	"fmt"
	"image/png"

	"github.com/fogleman/gg"
)

// WritePreview draws every classified tile back at it's grid position so the
// operator can eyeball the result. Walls are outlined red, transitions blue
// (a tile that is both gets both, blue inside red).
func WritePreview(fname string, grid *Grid, tiles []*Tile) error {
	w := grid.Cols * grid.TileWidth
	h := grid.Rows * grid.TileHeight
	if w <= 0 || h <= 0 {
		return fmt.Errorf("nothing to preview in a %dx%d grid", grid.Cols, grid.Rows)
	}

	dc := gg.NewContext(w, h)
	dc.SetRGB(0, 0, 0)
	dc.Clear()
	dc.SetLineWidth(2)

	for _, t := range tiles {
		img, err := png.Decode(bytes.NewReader(t.PixelData))
		if err != nil {
			return fmt.Errorf("bad pixel data for tile at %d,%d: %w", t.Coordinates.X, t.Coordinates.Y, err)
		}

		x, y := t.Coordinates.X, t.Coordinates.Y
		dc.DrawImage(img, x, y)

		if t.IsWall {
			dc.SetRGB(1, 0, 0)
			dc.DrawRectangle(float64(x)+1, float64(y)+1, float64(grid.TileWidth)-2, float64(grid.TileHeight)-2)
			dc.Stroke()
		}
		if t.IsTransition {
			dc.SetRGB(0, 0, 1)
			dc.DrawRectangle(float64(x)+3, float64(y)+3, float64(grid.TileWidth)-6, float64(grid.TileHeight)-6)
			dc.Stroke()
		}
	}

	return dc.SavePNG(fname)
}
