// ssz: Go Simple Serialize (SSZ) codec library
// Copyright 2024 ssz Authors
// SPDX-License-Identifier: BSD-3-Clause

// Package containers generates the type descriptors of the consensus containers
// for a given fork and preset.
//
// Every container is declared once as a monolith spanning all forks, with the
// fields introduced or retired by later forks tagged with fork filters. The set
// for a specific fork is derived by pruning those monoliths.
package containers

import (
	"errors"
	"fmt"
	"math/bits"
	"slices"
	"sync"

	"github.com/beaconkit/ssz"
	"github.com/beaconkit/ssz/presets"
)

// ErrMissingConstant is returned if a preset lacks a constant needed to shape a
// container, or sets a length to zero.
var ErrMissingConstant = errors.New("containers: missing preset constant")

// ErrInvalidPreset is returned if a preset constant shapes a type too large to
// be encoded.
var ErrInvalidPreset = errors.New("containers: invalid preset constant")

// maxVectorSize caps the encoded size of the preset sized vectors, keeping the
// fixed area of every container well within the 32 bit offset space.
const maxVectorSize = 1 << 28

// Set is the collection of container descriptors of one fork and preset.
type Set struct {
	fork   ssz.Fork
	preset *presets.Preset
	types  map[string]*ssz.Type
	names  []string
}

// Fork returns the fork the set was built for.
func (s *Set) Fork() ssz.Fork { return s.fork }

// Preset returns the preset the set was built with.
func (s *Set) Preset() *presets.Preset { return s.preset }

// Type retrieves a container descriptor by name.
func (s *Set) Type(name string) (*ssz.Type, bool) {
	t, ok := s.types[name]
	return t, ok
}

// Names returns the names of the containers in the set, dependencies first.
func (s *Set) Names() []string { return slices.Clone(s.names) }

type setKey struct {
	fork   ssz.Fork
	preset *presets.Preset
}

// sets caches the built container sets, descriptors are immutable so they can
// be shared across all users.
var sets sync.Map

// Build generates the descriptors of every container existing in a fork, sized
// by the constants of a preset. Sets are cached per (fork, preset) pair.
func Build(fork ssz.Fork, preset *presets.Preset) (*Set, error) {
	if fork <= ssz.ForkUnknown || fork >= ssz.ForkFuture {
		return nil, fmt.Errorf("%w: fork %v", ssz.ErrUnknownType, fork)
	}
	key := setKey{fork: fork, preset: preset}
	if set, ok := sets.Load(key); ok {
		return set.(*Set), nil
	}
	b := &builder{
		fork:   fork,
		preset: preset,
		types:  make(map[string]*ssz.Type),
	}
	set := &Set{
		fork:   fork,
		preset: preset,
		types:  make(map[string]*ssz.Type),
	}
	for _, entry := range catalog {
		if !entry.filter.Includes(fork) {
			continue
		}
		set.types[entry.name] = b.get(entry.name)
		set.names = append(set.names, entry.name)
	}
	if b.err != nil {
		return nil, b.err
	}
	actual, _ := sets.LoadOrStore(key, set)
	return actual.(*Set), nil
}

// Defines reports whether a container exists in a fork.
func Defines(fork ssz.Fork, name string) bool {
	for _, entry := range catalog {
		if entry.name == name {
			return entry.filter.Includes(fork)
		}
	}
	return false
}

// Names returns the names of all the containers across all forks.
func Names() []string {
	names := make([]string, len(catalog))
	for i, entry := range catalog {
		names[i] = entry.name
	}
	return names
}

// builder assembles the descriptors of a single fork and preset. Containers
// are memoized so every reference to a container shares the same descriptor.
type builder struct {
	fork   ssz.Fork
	preset *presets.Preset
	types  map[string]*ssz.Type
	err    error // Sticky error, the first missing or invalid constant
}

// fail records a build error if none was recorded yet.
func (b *builder) fail(kind error, format string, args ...any) {
	if b.err == nil {
		b.err = fmt.Errorf("%w: %s in preset %s", kind, fmt.Sprintf(format, args...), b.preset.Name())
	}
}

// get retrieves a container descriptor, building it on first use.
func (b *builder) get(name string) *ssz.Type {
	if t, ok := b.types[name]; ok {
		return t
	}
	idx := slices.IndexFunc(catalog, func(e catalogEntry) bool { return e.name == name })
	if idx < 0 {
		panic(fmt.Sprintf("containers: unknown container %s", name))
	}
	t := catalog[idx].build(b)
	b.types[name] = t
	return t
}

// limit retrieves a preset constant used as a list capacity.
func (b *builder) limit(name string) uint64 {
	v, ok := b.preset.Get(name)
	if !ok {
		b.fail(ErrMissingConstant, "%s", name)
		return 1
	}
	return v
}

// length retrieves a preset constant used as a vector length, which must not
// be zero.
func (b *builder) length(name string) uint64 {
	v := b.limit(name)
	if v == 0 {
		b.fail(ErrMissingConstant, "%s is zero", name)
		return 1
	}
	return v
}

// product multiplies two preset constants, failing on overflow.
func (b *builder) product(x, y uint64) uint64 {
	hi, lo := bits.Mul64(x, y)
	if hi != 0 {
		b.fail(ErrInvalidPreset, "%d*%d overflows", x, y)
		return 1
	}
	return lo
}

// vector creates a preset sized vector, failing if the encoding would not fit
// into maxVectorSize.
func (b *builder) vector(elem *ssz.Type, length uint64) *ssz.Type {
	size := uint64(4)
	if elem.IsFixed() {
		size = uint64(elem.FixedSize())
	}
	return ssz.Vector(elem, b.checkLength(length, size))
}

// byteVector creates a preset sized byte array, failing if it would not fit
// into maxVectorSize.
func (b *builder) byteVector(length uint64) *ssz.Type {
	return ssz.ByteVector(b.checkLength(length, 1))
}

// checkLength validates the length of a vector of items of the given encoded
// size, falling back to a single item on failure.
func (b *builder) checkLength(length uint64, size uint64) uint64 {
	if length == 0 || length > maxVectorSize/size {
		b.fail(ErrInvalidPreset, "vector of %d items of %d bytes", length, size)
		return 1
	}
	return length
}

// bitvector creates a preset sized bitvector, failing if the encoding would not
// fit into maxVectorSize.
func (b *builder) bitvector(n uint64) *ssz.Type {
	if n == 0 || n > maxVectorSize*8 {
		b.fail(ErrInvalidPreset, "bitvector of %d bits", n)
		n = 1
	}
	return ssz.Bitvector(n)
}

// optional creates a fork restricted field, only resolving its type if the
// field exists in the fork being built.
func (b *builder) optional(name string, filter ssz.ForkFilter, typ func() *ssz.Type) *ssz.Field {
	field := &ssz.Field{Name: name, Filter: filter}
	if filter.Includes(b.fork) {
		field.Type = typ()
	}
	return field
}
