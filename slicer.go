package tileclass

import (
	"errors"
	"fmt"
	"image"
	_ "image/gif"
	_ "image/jpeg"
	_ "image/png"
	"io"
	"os"

	_ "golang.org/x/image/bmp"
	_ "golang.org/x/image/tiff"
	_ "golang.org/x/image/webp"
)

// Result describes a finished run.
type Result struct {
	Grid       *Grid
	Dictionary *Dictionary

	// Tiles holds every classified cell in grid order
	Tiles []*Tile

	Processed  int // cells visited, including skipped ones
	Skipped    int // cells that could not be extracted & are absent from Tiles
	Discovered int // new tile types named by the operator
}

// Slicer cuts an image into tiles & classifies each one against a
// dictionary of known tile types, asking the operator about new ones.
type Slicer struct {
	Config    *Config
	Store     Store
	Extractor Extractor
	Prompter  Prompter

	// Out receives progress & error logging
	Out io.Writer
}

// NewSlicer returns a slicer using the default CropExtractor.
func NewSlicer(cfg *Config, store Store, prompter Prompter, out io.Writer) *Slicer {
	return &Slicer{
		Config:    cfg,
		Store:     store,
		Extractor: CropExtractor{},
		Prompter:  prompter,
		Out:       out,
	}
}

// RunFile decodes the configured input image & runs over it.
func (s *Slicer) RunFile() (*Result, error) {
	f, err := os.Open(s.Config.Input)
	if err != nil {
		return nil, fmt.Errorf("failed to open image: %w", err)
	}
	defer f.Close()

	src, _, err := image.Decode(f)
	if err != nil {
		return nil, fmt.Errorf("failed to decode image %s: %w", s.Config.Input, err)
	}

	return s.Run(src)
}

// Run classifies every grid cell of `src` then writes out the dictionary &
// the tile manifest. The dictionary is also saved after every cell, so
// anything the operator has named survives an interrupted run. Dictionary
// saves are best effort: failures are logged & never stop the manifest
// being written.
func (s *Slicer) Run(src image.Image) (*Result, error) {
	if err := s.Config.Validate(); err != nil {
		return nil, err
	}

	d, err := s.loadDictionary()
	if err != nil {
		return nil, err
	}

	grid := NewGrid(src.Bounds(), int(s.Config.TileWidth), int(s.Config.TileHeight))
	total := grid.Count()

	resolver := &Resolver{
		Prompter: s.Prompter,
		Out:      s.Out,
		Dir:      s.Config.ReferenceDir,
		Scale:    s.Config.ReferenceScale,
	}
	result := &Result{Grid: grid, Dictionary: d, Tiles: []*Tile{}}

	fmt.Fprintf(s.Out, "Creating tileset with %d x %d tiles.\n", grid.Cols, grid.Rows)

	var cellErr error
	grid.Each(func(ix, iy int) bool {
		cellErr = s.classify(src, grid, d, resolver, result, ix, iy)
		if cellErr != nil {
			return false
		}

		result.Processed++
		if err := s.Store.Save(d); err != nil {
			fmt.Fprintf(s.Out, "error: failed to save dictionary: %v\n", err)
		}
		fmt.Fprintf(s.Out, "Total Progress: %v\n", float64(result.Processed)/float64(total)*100)
		return true
	})
	if cellErr != nil {
		return result, cellErr
	}

	fmt.Fprintln(s.Out, "Tileset creation complete.")
	if result.Skipped > 0 {
		fmt.Fprintf(s.Out, "Skipped %d of %d tiles.\n", result.Skipped, total)
	}

	if err := s.Store.Save(d); err != nil {
		fmt.Fprintf(s.Out, "error: failed to save dictionary: %v\n", err)
	}
	if err := WriteManifest(s.Config.Output, result.Tiles); err != nil {
		return result, fmt.Errorf("failed to write manifest: %w", err)
	}
	if s.Config.Preview != "" {
		if err := WritePreview(s.Config.Preview, grid, result.Tiles); err != nil {
			return result, fmt.Errorf("failed to write preview: %w", err)
		}
	}

	return result, nil
}

// loadDictionary from our store, starting empty if nothing was saved
func (s *Slicer) loadDictionary() (*Dictionary, error) {
	d, err := s.Store.Load()
	if errors.Is(err, ErrNoDictionary) {
		fmt.Fprintf(s.Out, "%s not found. Starting from scratch.\n", s.Config.Dictionary)
		return NewDictionary(), nil
	} else if err != nil {
		return nil, fmt.Errorf("failed to load dictionary: %w", err)
	}

	fmt.Fprintf(s.Out, "Loading %d known tile types from %s.\n", d.Len(), s.Config.Dictionary)
	return d, nil
}

// classify a single cell & append it to the result.
// A cell that cannot be extracted is logged & skipped, not an error.
func (s *Slicer) classify(src image.Image, grid *Grid, d *Dictionary, resolver *Resolver, result *Result, ix, iy int) error {
	px := grid.Pixel(ix, iy)

	crop, err := s.Extractor.Extract(src, grid.Rect(ix, iy, s.Config.Inset))
	if err != nil {
		fmt.Fprintf(s.Out, "error: processing tile at coordinates: (%d,%d). Pixel Position: %d, %d. %v\n", ix, iy, px.X, px.Y, err)
		result.Skipped++
		return nil
	}

	sig := Signature(crop.Image)

	t, _, ok := d.Lookup(sig, s.Config.Tolerance)
	if !ok {
		fmt.Fprintf(s.Out, "Processing tile at coordinates: (%d,%d). Pixel Position: %d, %d.\n", ix, iy, px.X, px.Y)
		t, err = resolver.Resolve(d, ix, iy, sig, crop)
		if err != nil {
			return err
		}
		result.Discovered++
	}

	result.Tiles = append(result.Tiles, newTile(Coordinates{X: px.X, Y: px.Y}, crop, t))
	return nil
}
