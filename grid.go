package tileclass

import (
	"image"
)

// Grid describes how an image is cut into equally sized tiles.
// Any pixels left over at the right / bottom edge are not part of the grid.
type Grid struct {
	Origin     image.Point
	Cols       int // tiles wide
	Rows       int // tiles high
	TileWidth  int // in pixels
	TileHeight int // in pixels
}

// NewGrid fits as many whole tiles as possible into `bounds`.
func NewGrid(bounds image.Rectangle, tileWidth, tileHeight int) *Grid {
	return &Grid{
		Origin:     bounds.Min,
		Cols:       bounds.Dx() / tileWidth,
		Rows:       bounds.Dy() / tileHeight,
		TileWidth:  tileWidth,
		TileHeight: tileHeight,
	}
}

// Count returns the total number of cells.
func (g *Grid) Count() int {
	return g.Cols * g.Rows
}

// Each calls fn for every cell with it's (column, row) index. Columns are the
// outer loop, so a whole column is walked top to bottom before moving right.
// Iteration stops early if fn returns false.
func (g *Grid) Each(fn func(ix, iy int) bool) {
	for ix := 0; ix < g.Cols; ix++ {
		for iy := 0; iy < g.Rows; iy++ {
			if !fn(ix, iy) {
				return
			}
		}
	}
}

// Pixel returns the top left pixel of cell (ix, iy), relative to the image
// origin.
func (g *Grid) Pixel(ix, iy int) image.Point {
	return image.Pt(ix*g.TileWidth, iy*g.TileHeight)
}

// Rect returns the source rectangle for cell (ix, iy), moved `inset` pixels
// right & down to avoid grid lines drawn between tiles.
func (g *Grid) Rect(ix, iy, inset int) image.Rectangle {
	at := g.Origin.Add(g.Pixel(ix, iy)).Add(image.Pt(inset, inset))
	return image.Rectangle{Min: at, Max: at.Add(image.Pt(g.TileWidth, g.TileHeight))}
}
