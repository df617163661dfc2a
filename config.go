package tileclass

import (
	"fmt"
	"io/ioutil"

	"github.com/go-yaml/yaml"
	"github.com/mitchellh/go-homedir"
)

const (
	// Dictionary store kinds
	StoreJSON   = "json"
	StoreSQLite = "sqlite"
)

// Config includes settings for a single slicing run.
type Config struct {
	// input image & output files
	Input      string `yaml:"input"`
	Dictionary string `yaml:"dictionary"`
	Output     string `yaml:"output"`
	Store      string `yaml:"store"` // json (default) or sqlite

	// where reference images for new tile types are written
	ReferenceDir   string `yaml:"reference_dir"`
	ReferenceScale uint   `yaml:"reference_scale"`

	// optional preview sheet, empty means none
	Preview string `yaml:"preview"`

	// in pixels
	TileWidth  uint `yaml:"tile_width"`
	TileHeight uint `yaml:"tile_height"`
	Inset      int  `yaml:"inset"` // skips grid lines between tiles

	// how far (+/-) from a signature we look for a known tile type
	Tolerance int `yaml:"tolerance"`
}

// DefaultConfig returns a config with default settings.
func DefaultConfig() *Config {
	return &Config{
		Input:          "tileset_in.png",
		Dictionary:     "tile_dictionary.json",
		Output:         "tileset.json",
		Store:          StoreJSON,
		ReferenceDir:   ".",
		ReferenceScale: 1,
		TileWidth:      48,
		TileHeight:     48,
		Inset:          1,
		Tolerance:      3,
	}
}

// LoadConfig reads a YAML config file. Keys missing from the file keep their
// default values.
func LoadConfig(fname string) (*Config, error) {
	path, err := homedir.Expand(fname)
	if err != nil {
		return nil, err
	}

	data, err := ioutil.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read config: %w", err)
	}

	cfg := DefaultConfig()
	if err := yaml.Unmarshal(data, cfg); err != nil {
		return nil, fmt.Errorf("failed to parse config %s: %w", path, err)
	}

	return cfg, cfg.Expand()
}

// Validate returns an error if the config cannot be used for a run.
func (c *Config) Validate() error {
	if c.TileWidth == 0 || c.TileHeight == 0 {
		return fmt.Errorf("tile size %dx%d is invalid", c.TileWidth, c.TileHeight)
	}
	if c.Inset < 0 {
		return fmt.Errorf("inset must not be negative, got %d", c.Inset)
	}
	if c.Tolerance < 0 {
		return fmt.Errorf("tolerance must not be negative, got %d", c.Tolerance)
	}
	switch c.Store {
	case StoreJSON, StoreSQLite:
	default:
		return fmt.Errorf("unknown dictionary store %q", c.Store)
	}
	return nil
}

// Expand resolves '~' in all configured paths
func (c *Config) Expand() error {
	for _, p := range []*string{&c.Input, &c.Dictionary, &c.Output, &c.ReferenceDir, &c.Preview} {
		if *p == "" {
			continue
		}
		expanded, err := homedir.Expand(*p)
		if err != nil {
			return err
		}
		*p = expanded
	}
	return nil
}
