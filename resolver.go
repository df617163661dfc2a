package tileclass

import (
	"bytes"
	"fmt"
	"image/png"
	"io"
	"io/ioutil"
	"path/filepath"

	"github.com/nfnt/resize"
)

const (
	questionName       = "Enter a name for the new tile type: "
	questionTransition = "Is this a transition tile? (yes/no): "
	questionWall       = "Is this a wall tile? (yes/no): "
)

// Resolver asks the operator to describe tile types we haven't seen before.
type Resolver struct {
	Prompter Prompter
	Out      io.Writer

	// Dir is where reference images are written
	Dir string

	// Scale enlarges reference images to make them easier to look at.
	// 0 & 1 write the tile as is.
	Scale uint
}

// ReferenceName returns the file name of the reference image for cell (ix, iy)
func ReferenceName(ix, iy int) string {
	return fmt.Sprintf("%d_%d_tile.png", ix, iy)
}

// Resolve writes out a reference image of the tile at cell (ix, iy), asks
// the operator for it's name, transition & wall flags (in that order) and
// registers the answer in `d` under exactly `sig`.
func (r *Resolver) Resolve(d *Dictionary, ix, iy, sig int, crop *Crop) (*TileType, error) {
	fmt.Fprintf(r.Out, "Creating new tile type with average color %d.\n", sig)

	fname := filepath.Join(r.Dir, ReferenceName(ix, iy))
	if err := r.writeReference(fname, crop); err != nil {
		return nil, fmt.Errorf("failed to write reference image %s: %w", fname, err)
	}
	fmt.Fprintf(r.Out, "Creating file for reference: %s\n", fname)

	name, err := r.Prompter.Ask(questionName)
	if err != nil {
		return nil, err
	}
	transition, err := r.Prompter.Ask(questionTransition)
	if err != nil {
		return nil, err
	}
	wall, err := r.Prompter.Ask(questionWall)
	if err != nil {
		return nil, err
	}

	t := &TileType{Name: name, IsTransition: isYes(transition), IsWall: isYes(wall)}
	d.Register(sig, t)
	return t, nil
}

// writeReference saves the crop to disk, enlarged if Scale > 1.
func (r *Resolver) writeReference(fname string, crop *Crop) error {
	if r.Scale <= 1 {
		return ioutil.WriteFile(fname, crop.Data, 0644)
	}

	bnds := crop.Image.Bounds()
	big := resize.Resize(
		uint(bnds.Dx())*r.Scale,
		uint(bnds.Dy())*r.Scale,
		crop.Image,
		resize.NearestNeighbor,
	)

	buff := new(bytes.Buffer)
	if err := png.Encode(buff, big); err != nil {
		return err
	}
	return ioutil.WriteFile(fname, buff.Bytes(), 0644)
}
