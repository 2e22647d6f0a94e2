package navbar

import (
	"errors"
	"fmt"
	"io"

	"gopkg.in/yaml.v3"
)

// Load reads a YAML list of entries and builds a registry from it:
//
//	- label: Men
//	  path: /Men
//	- label: Women
//	  path: /Women
//
// Unknown keys are rejected. An empty document yields an empty registry.
func Load(r io.Reader) (*Registry, error) {
	dec := yaml.NewDecoder(r)
	dec.KnownFields(true)
	var entries []Entry
	if err := dec.Decode(&entries); err != nil && !errors.Is(err, io.EOF) {
		return nil, fmt.Errorf("navbar: decode links: %w", err)
	}
	return New(entries...)
}
