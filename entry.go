package navbar

import (
	"errors"
	"iter"
	"slices"
	"strconv"
	"strings"
)

// Entry is a single link in the navigation bar.
type Entry struct {
	Label string `yaml:"label"`
	Path  string `yaml:"path"`
}

// Registry is an ordered, immutable set of entries. Order is display order.
// A Registry is safe for concurrent use once built.
type Registry struct {
	entries []Entry
	index   map[string]int
}

// New builds a registry from entries in the order given. Every entry needs a
// label and a path starting with "/", and paths must be unique. All problems
// are reported, joined; use errors.As with *ValidationError to inspect them.
func New(entries ...Entry) (*Registry, error) {
	reg := &Registry{
		entries: slices.Clone(entries),
		index:   make(map[string]int, len(entries)),
	}
	var errs []error
	for i, e := range reg.entries {
		if err := validateEntry(i, e); err != nil {
			errs = append(errs, err)
			continue
		}
		if prev, ok := reg.index[e.Path]; ok {
			errs = append(errs, &ValidationError{
				Index:  i,
				Entry:  e,
				Reason: "path duplicates entry " + strconv.Itoa(prev),
			})
			continue
		}
		reg.index[e.Path] = i
	}
	if len(errs) > 0 {
		return nil, errors.Join(errs...)
	}
	return reg, nil
}

// MustNew is like New but panics on invalid entries. Meant for package-level link tables.
func MustNew(entries ...Entry) *Registry {
	reg, err := New(entries...)
	if err != nil {
		panic(err)
	}
	return reg
}

func validateEntry(i int, e Entry) error {
	switch {
	case strings.TrimSpace(e.Label) == "":
		return &ValidationError{Index: i, Entry: e, Reason: "label is empty"}
	case e.Path == "":
		return &ValidationError{Index: i, Entry: e, Reason: "path is empty"}
	case !strings.HasPrefix(e.Path, "/"):
		return &ValidationError{Index: i, Entry: e, Reason: `path must start with "/"`}
	}
	return nil
}

// List returns the entries in display order. The returned slice is a copy.
func (r *Registry) List() []Entry {
	if r == nil {
		return nil
	}
	return slices.Clone(r.entries)
}

// Len returns the number of entries.
func (r *Registry) Len() int {
	if r == nil {
		return 0
	}
	return len(r.entries)
}

// All iterates over the entries in display order.
func (r *Registry) All() iter.Seq2[int, Entry] {
	return func(yield func(int, Entry) bool) {
		if r == nil {
			return
		}
		for i, e := range r.entries {
			if !yield(i, e) {
				return
			}
		}
	}
}

// Lookup finds the entry with the given path. Paths compare exactly.
func (r *Registry) Lookup(path string) (Entry, bool) {
	if r == nil {
		return Entry{}, false
	}
	i, ok := r.index[path]
	if !ok {
		return Entry{}, false
	}
	return r.entries[i], true
}
