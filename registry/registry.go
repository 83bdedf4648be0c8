// ssz: Go Simple Serialize (SSZ) codec library
// Copyright 2024 ssz Authors
// SPDX-License-Identifier: BSD-3-Clause

// Package registry maps (fork, preset, container) identifiers to the type
// descriptors of the consensus containers, and runs the codec through them.
package registry

import (
	"fmt"
	"slices"
	"strings"
	"sync"

	"github.com/beaconkit/ssz"
	"github.com/beaconkit/ssz/containers"
	"github.com/beaconkit/ssz/presets"
)

// TypeID identifies a container descriptor.
type TypeID struct {
	Fork   ssz.Fork
	Preset string
	Kind   string
}

// String implements fmt.Stringer, rendering the id as fork/preset/kind.
func (id TypeID) String() string {
	return id.Fork.String() + "/" + id.Preset + "/" + id.Kind
}

// ParseTypeID parses a type id in its fork/preset/kind form. Fork and preset
// names are case insensitive, kinds are not.
func ParseTypeID(s string) (TypeID, error) {
	parts := strings.Split(s, "/")
	if len(parts) != 3 || parts[1] == "" || parts[2] == "" {
		return TypeID{}, fmt.Errorf("%w: malformed type id %q", ssz.ErrUnknownType, s)
	}
	fork, err := ssz.ParseFork(parts[0])
	if err != nil {
		return TypeID{}, err
	}
	return TypeID{Fork: fork, Preset: strings.ToLower(parts[1]), Kind: parts[2]}, nil
}

// Registry is a lookup table of container descriptors. It's safe for concurrent
// use; the descriptors themselves are immutable.
type Registry struct {
	presets map[string]*presets.Preset
	types   map[TypeID]*ssz.Type
	lock    sync.RWMutex
}

// New creates a registry populated with every container of every fork for each
// of the given presets.
func New(ps ...*presets.Preset) (*Registry, error) {
	reg := &Registry{
		presets: make(map[string]*presets.Preset),
		types:   make(map[TypeID]*ssz.Type),
	}
	for _, preset := range ps {
		if err := reg.AddPreset(preset); err != nil {
			return nil, err
		}
	}
	return reg, nil
}

// AddPreset generates and registers the containers of all forks for a preset.
func (reg *Registry) AddPreset(preset *presets.Preset) error {
	name := strings.ToLower(preset.Name())

	generated := make(map[TypeID]*ssz.Type)
	for _, fork := range ssz.Forks() {
		set, err := containers.Build(fork, preset)
		if err != nil {
			return fmt.Errorf("registry: preset %s: %w", name, err)
		}
		for _, kind := range set.Names() {
			typ, _ := set.Type(kind)
			generated[TypeID{Fork: fork, Preset: name, Kind: kind}] = typ
		}
	}
	reg.lock.Lock()
	defer reg.lock.Unlock()

	reg.presets[name] = preset
	for id, typ := range generated {
		reg.types[id] = typ
	}
	return nil
}

// Register adds a custom descriptor to the registry, replacing any previous one
// with the same id.
func (reg *Registry) Register(id TypeID, typ *ssz.Type) {
	reg.lock.Lock()
	defer reg.lock.Unlock()

	reg.types[id] = typ
}

// Resolve retrieves the descriptor of a type id.
func (reg *Registry) Resolve(id TypeID) (*ssz.Type, error) {
	reg.lock.RLock()
	defer reg.lock.RUnlock()

	if typ, ok := reg.types[id]; ok {
		return typ, nil
	}
	return nil, fmt.Errorf("%w: %v", ssz.ErrUnknownType, id)
}

// Preset retrieves a registered preset by case insensitive name.
func (reg *Registry) Preset(name string) (*presets.Preset, bool) {
	reg.lock.RLock()
	defer reg.lock.RUnlock()

	preset, ok := reg.presets[strings.ToLower(name)]
	return preset, ok
}

// IDs returns all the registered type ids, ordered by fork, preset and kind.
func (reg *Registry) IDs() []TypeID {
	reg.lock.RLock()
	ids := make([]TypeID, 0, len(reg.types))
	for id := range reg.types {
		ids = append(ids, id)
	}
	reg.lock.RUnlock()

	slices.SortFunc(ids, func(a, b TypeID) int {
		if a.Fork != b.Fork {
			return int(a.Fork) - int(b.Fork)
		}
		if c := strings.Compare(a.Preset, b.Preset); c != 0 {
			return c
		}
		return strings.Compare(a.Kind, b.Kind)
	})
	return ids
}

// Decode parses an SSZ blob as the type behind the id.
func (reg *Registry) Decode(id TypeID, blob []byte) (ssz.Value, error) {
	typ, err := reg.Resolve(id)
	if err != nil {
		return nil, err
	}
	return ssz.DecodeFromBytes(blob, typ)
}

// Encode serializes a value as the type behind the id, validating it first.
func (reg *Registry) Encode(id TypeID, v ssz.Value) ([]byte, error) {
	typ, err := reg.Resolve(id)
	if err != nil {
		return nil, err
	}
	if err := ssz.Validate(typ, v); err != nil {
		return nil, err
	}
	return ssz.Encode(typ, v), nil
}

// HashTreeRoot computes the Merkle root of a value as the type behind the id,
// validating it first.
func (reg *Registry) HashTreeRoot(id TypeID, v ssz.Value) ([32]byte, error) {
	typ, err := reg.Resolve(id)
	if err != nil {
		return [32]byte{}, err
	}
	if err := ssz.Validate(typ, v); err != nil {
		return [32]byte{}, err
	}
	return ssz.HashConcurrent(typ, v), nil
}

var (
	defaultRegistry *Registry
	defaultOnce     sync.Once
)

// Default returns the registry of the built-in presets, created on first use.
func Default() *Registry {
	defaultOnce.Do(func() {
		reg, err := New(presets.Builtins()...)
		if err != nil {
			panic(fmt.Sprintf("registry: built-in presets: %v", err))
		}
		defaultRegistry = reg
	})
	return defaultRegistry
}
