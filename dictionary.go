package tileclass

import (
	"sort"
)

// DefaultTolerance is how far either side of a signature we search for a
// known tile type.
const DefaultTolerance = 3

// TileType is a named classification shared by every tile whose signature
// falls near the same dictionary key.
type TileType struct {
	Name         string `json:"name"`
	IsTransition bool   `json:"is_transition"`
	IsWall       bool   `json:"is_wall"`
}

// Properties returns the tile type as a Properties bag
func (t *TileType) Properties() *Properties {
	p := NewProperties()
	p.SetString(PropName, t.Name)
	p.SetBool(PropTransition, t.IsTransition)
	p.SetBool(PropWall, t.IsWall)
	return p
}

// tileTypeFromProperties is the reverse of TileType.Properties.
// Missing keys are left as zero values.
func tileTypeFromProperties(p *Properties) *TileType {
	t := &TileType{}
	t.Name, _ = p.String(PropName)
	t.IsTransition, _ = p.Bool(PropTransition)
	t.IsWall, _ = p.Bool(PropWall)
	return t
}

// Dictionary maps signatures to known tile types.
// Entries are only ever added.
type Dictionary struct {
	types map[int]*TileType
}

// NewDictionary returns an empty dictionary
func NewDictionary() *Dictionary {
	return &Dictionary{types: map[int]*TileType{}}
}

// Len returns the number of known tile types
func (d *Dictionary) Len() int {
	return len(d.types)
}

// Get returns the tile type stored at exactly `sig`
func (d *Dictionary) Get(sig int) (*TileType, bool) {
	t, ok := d.types[sig]
	return t, ok
}

// Register adds a tile type at exactly `sig`.
// An existing entry for `sig` is kept as is.
func (d *Dictionary) Register(sig int, t *TileType) {
	if _, ok := d.types[sig]; ok {
		return
	}
	d.types[sig] = t
}

// Lookup searches for a known tile type within +/- tolerance of `sig`.
// Offsets are probed 0, +1, -1, +2, -2 ... and the first hit wins.
// Returns the matched tile type & the key it was stored under.
func (d *Dictionary) Lookup(sig, tolerance int) (*TileType, int, bool) {
	for i := 0; i <= tolerance; i++ {
		if t, ok := d.types[sig+i]; ok {
			return t, sig + i, true
		}
		if i == 0 {
			continue
		}
		if t, ok := d.types[sig-i]; ok {
			return t, sig - i, true
		}
	}
	return nil, 0, false
}

// Signatures returns all keys, sorted low -> high.
func (d *Dictionary) Signatures() []int {
	keys := make([]int, 0, len(d.types))
	for k := range d.types {
		keys = append(keys, k)
	}
	sort.Ints(keys)
	return keys
}
