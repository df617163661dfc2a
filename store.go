package tileclass

import (
	"encoding/json"
	"errors"
	"fmt"
	"io/ioutil"
	"os"
)

// ErrNoDictionary is returned by Store.Load when nothing has been saved yet.
var ErrNoDictionary = errors.New("no saved dictionary")

// Store persists a Dictionary between runs.
type Store interface {
	// Load the saved dictionary, or ErrNoDictionary if there isn't one
	Load() (*Dictionary, error)

	// Save the full dictionary, overwriting whatever was saved before
	Save(d *Dictionary) error
}

// OpenStore returns the dictionary store configured in cfg.
func OpenStore(cfg *Config) (Store, error) {
	switch cfg.Store {
	case StoreSQLite:
		return OpenSQLStore(cfg.Dictionary)
	case StoreJSON, "":
		return &JSONStore{Path: cfg.Dictionary}, nil
	}
	return nil, fmt.Errorf("unknown dictionary store %q", cfg.Store)
}

// JSONStore keeps the dictionary as a single JSON object on disk
// mapping string encoded signatures to tile types, eg.
//   {"382": {"name": "grass", "is_transition": false, "is_wall": false}}
type JSONStore struct {
	Path string
}

// Load reads the dictionary file.
func (s *JSONStore) Load() (*Dictionary, error) {
	data, err := ioutil.ReadFile(s.Path)
	if os.IsNotExist(err) {
		return nil, ErrNoDictionary
	} else if err != nil {
		return nil, err
	}

	d := NewDictionary()
	if err := json.Unmarshal(data, &d.types); err != nil {
		return nil, fmt.Errorf("failed to parse %s: %w", s.Path, err)
	}
	if d.types == nil { // file contained 'null'
		d.types = map[int]*TileType{}
	}
	for sig, t := range d.types {
		if t == nil {
			return nil, fmt.Errorf("failed to parse %s: tile type for signature %d is null", s.Path, sig)
		}
	}
	return d, nil
}

// Save writes the whole dictionary & flushes it to disk.
func (s *JSONStore) Save(d *Dictionary) error {
	data, err := json.Marshal(d.types)
	if err != nil {
		return err
	}

	f, err := os.Create(s.Path)
	if err != nil {
		return err
	}

	_, err = f.Write(data)
	if err == nil {
		err = f.Sync()
	}
	if cerr := f.Close(); err == nil {
		err = cerr
	}
	return err
}
