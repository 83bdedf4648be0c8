// ssz: Go Simple Serialize (SSZ) codec library
// Copyright 2024 ssz Authors
// SPDX-License-Identifier: BSD-3-Clause

// Package presets contains the named integer constants parameterizing the shape
// of the consensus types for each supported network configuration.
package presets

import (
	"errors"
	"fmt"
	"maps"
	"slices"
	"strings"
)

// ErrUnknownPreset is returned when a preset name is not registered.
var ErrUnknownPreset = errors.New("presets: unknown preset")

// Preset is an immutable named set of constants.
type Preset struct {
	name   string
	values map[string]uint64
}

// New creates a preset from a constant table. The table is copied.
func New(name string, values map[string]uint64) *Preset {
	return &Preset{name: name, values: maps.Clone(values)}
}

// Name returns the name of the preset.
func (p *Preset) Name() string { return p.name }

// String implements fmt.Stringer.
func (p *Preset) String() string { return p.name }

// Get retrieves a constant, reporting whether it is defined.
func (p *Preset) Get(name string) (uint64, bool) {
	v, ok := p.values[name]
	return v, ok
}

// Value retrieves a constant, panicking if it is not defined. Type descriptors
// are built from constants at startup, a missing one is a programming error.
func (p *Preset) Value(name string) uint64 {
	v, ok := p.values[name]
	if !ok {
		panic(fmt.Sprintf("presets: %s missing constant %s", p.name, name))
	}
	return v
}

// Names returns the names of all the constants in sorted order.
func (p *Preset) Names() []string {
	return slices.Sorted(maps.Keys(p.values))
}

// Map returns a copy of the constant table.
func (p *Preset) Map() map[string]uint64 {
	return maps.Clone(p.values)
}

// With returns a renamed copy of the preset with some constants overridden.
func (p *Preset) With(name string, overrides map[string]uint64) *Preset {
	values := maps.Clone(p.values)
	for k, v := range overrides {
		values[k] = v
	}
	return &Preset{name: name, values: values}
}

// builtins are the presets known by name.
var builtins = map[string]*Preset{
	Mainnet.name: Mainnet,
	Minimal.name: Minimal,
	Gnosis.name:  Gnosis,
}

// Lookup retrieves a built-in preset by case insensitive name.
func Lookup(name string) (*Preset, error) {
	if p, ok := builtins[strings.ToLower(name)]; ok {
		return p, nil
	}
	return nil, fmt.Errorf("%w: %q", ErrUnknownPreset, name)
}

// Builtins returns the built-in presets ordered by name.
func Builtins() []*Preset {
	return []*Preset{Gnosis, Mainnet, Minimal}
}
