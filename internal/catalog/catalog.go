// Package catalog holds the fixed crop table and resolves a selected crop id
// to its parameter set.
package catalog

import (
	"errors"
	"fmt"

	"github.com/greenstem/irrigator/internal/model"
)

// ErrInvalidSelection is returned for any id outside 1..Size().
var ErrInvalidSelection = errors.New("invalid crop selection")

// Entry pairs a catalog crop with its parameter tuple.
type Entry struct {
	Crop   model.CropEntry
	Params model.CropParameters
}

// Catalog is an ordered, immutable crop table. Valid ids are 1..Size().
type Catalog struct {
	entries []Entry
}

// New builds a catalog from the given entries, checking that ids are exactly
// 1..N in list order and that every parameter set satisfies its invariants.
func New(entries []Entry) (*Catalog, error) {
	if len(entries) == 0 {
		return nil, errors.New("empty crop table")
	}
	for i, e := range entries {
		if e.Crop.ID != i+1 {
			return nil, fmt.Errorf("crop %q: id %d at position %d, want %d", e.Crop.Name, e.Crop.ID, i, i+1)
		}
		if e.Crop.Name == "" {
			return nil, fmt.Errorf("crop %d has no name", e.Crop.ID)
		}
		if err := e.Params.Validate(); err != nil {
			return nil, fmt.Errorf("crop %q: %w", e.Crop.Name, err)
		}
	}
	c := &Catalog{entries: make([]Entry, len(entries))}
	copy(c.entries, entries)
	return c, nil
}

// Default returns the built-in crop table.
func Default() *Catalog {
	c, err := New([]Entry{
		{
			Crop:   model.CropEntry{Name: "Cilantro", ID: 1},
			Params: model.CropParameters{MinTemp: 15, MaxTemp: 24, MinHumidity: 40, MaxHumidity: 50},
		},
		{
			Crop:   model.CropEntry{Name: "Strawberry", ID: 2},
			Params: model.CropParameters{MinTemp: 15, MaxTemp: 20, MinHumidity: 60, MaxHumidity: 80},
		},
	})
	if err != nil {
		// the built-in table is covered by tests; this cannot happen at runtime
		panic(err)
	}
	return c
}

// Size returns the number of crops in the table.
func (c *Catalog) Size() int { return len(c.entries) }

// Entries returns the crop list in display order.
func (c *Catalog) Entries() []Entry {
	out := make([]Entry, len(c.entries))
	copy(out, c.entries)
	return out
}

// Lookup resolves id to its parameter set. The catalog is never mutated, so a
// failed lookup leaves whatever parameter set the caller holds untouched.
func (c *Catalog) Lookup(id int) (model.CropParameters, error) {
	if id < 1 || id > len(c.entries) {
		return model.CropParameters{}, fmt.Errorf("%w: id %d not in 1..%d", ErrInvalidSelection, id, len(c.entries))
	}
	return c.entries[id-1].Params, nil
}

// Name returns the display name for id, or "" when id is invalid.
func (c *Catalog) Name(id int) string {
	if id < 1 || id > len(c.entries) {
		return ""
	}
	return c.entries[id-1].Crop.Name
}
