package main

import (
	"fmt"
	"io"
	"os"

	"github.com/alecthomas/kong"

	"github.com/voidshard/tileclass"
)

const desc = `Cuts a tilemap image into tiles & classifies each one by average colour.

Tile types are kept in a dictionary that is reused between runs. Whenever a tile doesn't
match any known type a reference image is written & you're asked to name it. Every tile,
with it's type & pixel data, is written to a JSON manifest at the end.

With no flags the defaults are used: tileset_in.png -> tileset.json with the dictionary in
tile_dictionary.json & 48x48 tiles.`

type flags struct {
	// optional YAML file, flags below override it
	Config string `short:"c" help:"YAML config file"`

	Input      string `short:"i" help:"input image (default tileset_in.png)"`
	Dictionary string `short:"d" help:"tile dictionary file (default tile_dictionary.json)"`
	Output     string `short:"o" help:"output manifest (default tileset.json)"`
	Store      string `help:"dictionary store: json or sqlite (default json)"`

	TileWidth  uint `help:"width of each tile in px (default 48)"`
	TileHeight uint `help:"height of each tile in px (default 48)"`
	Tolerance  int  `help:"match tile types within +/- this signature distance (default 3)"`

	RefDir   string `help:"where to write reference images of new tile types (default .)"`
	RefScale uint   `help:"enlarge reference images by this factor"`
	Preview  string `help:"also write a preview image of all classified tiles"`
}

var cli flags

// setFlags returns the names of flags given on the command line
func setFlags(ctx *kong.Context) map[string]bool {
	set := map[string]bool{}
	for _, p := range ctx.Path {
		if p.Flag != nil {
			set[p.Flag.Name] = true
		}
	}
	return set
}

// buildConfig layers set flags over the config file (or defaults).
// Flags where zero is a valid value only count if they're in `set`.
func buildConfig(opts *flags, set map[string]bool) (*tileclass.Config, error) {
	cfg := tileclass.DefaultConfig()
	if opts.Config != "" {
		var err error
		cfg, err = tileclass.LoadConfig(opts.Config)
		if err != nil {
			return nil, err
		}
	}

	setString := func(dst *string, v string) {
		if v != "" {
			*dst = v
		}
	}
	setString(&cfg.Input, opts.Input)
	setString(&cfg.Dictionary, opts.Dictionary)
	setString(&cfg.Output, opts.Output)
	setString(&cfg.Store, opts.Store)
	setString(&cfg.ReferenceDir, opts.RefDir)
	setString(&cfg.Preview, opts.Preview)

	if opts.TileWidth > 0 {
		cfg.TileWidth = opts.TileWidth
	}
	if opts.TileHeight > 0 {
		cfg.TileHeight = opts.TileHeight
	}
	if set["tolerance"] {
		cfg.Tolerance = opts.Tolerance
	}
	if opts.RefScale > 0 {
		cfg.ReferenceScale = opts.RefScale
	}

	return cfg, cfg.Expand()
}

func main() {
	ctx := kong.Parse(
		&cli,
		kong.Name("tileclass"),
		kong.Description(desc),
	)

	cfg, err := buildConfig(&cli, setFlags(ctx))
	if err != nil {
		panic(err)
	}

	store, err := tileclass.OpenStore(cfg)
	if err != nil {
		panic(err)
	}
	if closer, ok := store.(io.Closer); ok {
		defer closer.Close()
	}

	slicer := tileclass.NewSlicer(cfg, store, tileclass.NewConsolePrompter(os.Stdin, os.Stdout), os.Stdout)

	result, err := slicer.RunFile()
	if err != nil {
		panic(err)
	}

	fmt.Printf("wrote %d tiles to %s, %d tile types known (%d new)\n",
		len(result.Tiles), cfg.Output, result.Dictionary.Len(), result.Discovered)
}
