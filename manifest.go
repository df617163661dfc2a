package tileclass

import (
	"encoding/json"
	"fmt"
	"io/ioutil"
)

// Coordinates is the top left pixel of a grid cell in the source image.
type Coordinates struct {
	X int `json:"x"`
	Y int `json:"y"`
}

// Tile is a single classified grid cell.
type Tile struct {
	Name string `json:"name"`

	// PixelData is the tile PNG encoded. Crops hanging over the right or
	// bottom edge of the source (the last column / row, because of the inset)
	// are clipped, so those tiles are one pixel narrower / shorter than the
	// rest, eg. 47x48 instead of 48x48.
	PixelData []byte `json:"pixel_data"`

	Coordinates  Coordinates `json:"coordinates"`
	IsWall       bool        `json:"is_wall"`
	IsTransition bool        `json:"is_transition"`
}

// newTile builds a manifest entry from a crop & it's tile type
func newTile(at Coordinates, crop *Crop, t *TileType) *Tile {
	return &Tile{
		Name:         t.Name,
		PixelData:    crop.Data,
		Coordinates:  at,
		IsWall:       t.IsWall,
		IsTransition: t.IsTransition,
	}
}

// WriteManifest writes all tiles, in order, as a JSON array.
// Any existing file is overwritten.
func WriteManifest(fname string, tiles []*Tile) error {
	if tiles == nil {
		tiles = []*Tile{} // "[]" rather than "null"
	}

	data, err := json.Marshal(tiles)
	if err != nil {
		return err
	}
	return ioutil.WriteFile(fname, data, 0644)
}

// ReadManifest reads tiles written by WriteManifest
func ReadManifest(fname string) ([]*Tile, error) {
	data, err := ioutil.ReadFile(fname)
	if err != nil {
		return nil, err
	}

	tiles := []*Tile{}
	if err := json.Unmarshal(data, &tiles); err != nil {
		return nil, fmt.Errorf("failed to parse manifest %s: %w", fname, err)
	}
	return tiles, nil
}
