package tileclass

import (
	"encoding/json"
)

const (
	// Property keys used to store a TileType
	PropName       = "name"
	PropWall       = "is_wall"
	PropTransition = "is_transition"
)

// Properties is a loosely typed key/value bag used to persist tile types
// in stores that keep one opaque blob per row.
type Properties struct {
	strings map[string]string
	bools   map[string]bool
}

// NewProperties returns an empty properties
func NewProperties() *Properties {
	return &Properties{
		strings: map[string]string{},
		bools:   map[string]bool{},
	}
}

// Merge properties `o` into this properties
func (p *Properties) Merge(o *Properties) *Properties {
	for k, v := range o.strings {
		p.SetString(k, v)
	}
	for k, v := range o.bools {
		p.SetBool(k, v)
	}
	return p
}

func (p *Properties) String(key string) (string, bool) {
	v, ok := p.strings[key]
	return v, ok
}

func (p *Properties) SetString(key, value string) {
	p.strings[key] = value
	delete(p.bools, key)
}

func (p *Properties) Bool(key string) (bool, bool) {
	v, ok := p.bools[key]
	return v, ok
}

func (p *Properties) SetBool(key string, value bool) {
	p.bools[key] = value
	delete(p.strings, key)
}

// propBlock is how properties are laid out when encoded
type propBlock struct {
	S map[string]string `json:"s,omitempty"`
	B map[string]bool   `json:"b,omitempty"`
}

// MarshalJSON encodes properties as {"s": {...}, "b": {...}}
func (p *Properties) MarshalJSON() ([]byte, error) {
	return json.Marshal(propBlock{S: p.strings, B: p.bools})
}

// UnmarshalJSON replaces the contents of p with the encoded block.
func (p *Properties) UnmarshalJSON(data []byte) error {
	block := propBlock{}
	if err := json.Unmarshal(data, &block); err != nil {
		return err
	}

	p.strings = block.S
	p.bools = block.B
	if p.strings == nil {
		p.strings = map[string]string{}
	}
	if p.bools == nil {
		p.bools = map[string]bool{}
	}
	return nil
}
