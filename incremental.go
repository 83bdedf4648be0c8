// ssz: Go Simple Serialize (SSZ) codec library
// Copyright 2024 ssz Authors
// SPDX-License-Identifier: BSD-3-Clause

package ssz

import (
	"fmt"
	"slices"
)

// ListBuilder maintains the hash tree root of a growing list, caching every
// intermediate node by (level, index) and rehashing only the paths from the
// modified leaves up to the root.
//
// A builder is a single-writer object; concurrent use requires external
// synchronization.
type ListBuilder struct {
	typ   *Type
	depth uint8

	items []Value // Items of a composite or non-byte basic list
	bytes []byte  // Items of a byte list

	nodes [][][32]byte // Cached tree layers, nodes[0] are the leaf chunks
	dirty []uint64     // Leaf indices modified since the last root computation
}

// NewListBuilder creates an empty builder for a list type.
func NewListBuilder(t *Type) *ListBuilder {
	if t.kind != KindList {
		panic(fmt.Sprintf("ssz: list builder for non-list type %s", t))
	}
	b := &ListBuilder{
		typ:   t,
		depth: getDepth(t.chunks),
	}
	b.nodes = make([][][32]byte, b.depth+1)
	return b
}

// Len returns the number of items in the list.
func (b *ListBuilder) Len() int {
	if b.typ.IsBytes() {
		return len(b.bytes)
	}
	return len(b.items)
}

// Append adds an item to the end of the list.
func (b *ListBuilder) Append(item Value) error {
	if uint64(b.Len()) >= b.typ.limit {
		return fmt.Errorf("%w: list full at %d items", ErrCapacityExceeded, b.typ.limit)
	}
	if err := Validate(b.typ.elem, item); err != nil {
		return err
	}
	index := b.Len()
	if b.typ.IsBytes() {
		b.bytes = append(b.bytes, item.(uint8))
	} else {
		b.items = append(b.items, item)
	}
	b.update(index, item)
	return nil
}

// Set replaces the item at the given index.
func (b *ListBuilder) Set(index int, item Value) error {
	if index < 0 || index >= b.Len() {
		return fmt.Errorf("%w: index %d out of range [0, %d)", ErrInvalidValue, index, b.Len())
	}
	if err := Validate(b.typ.elem, item); err != nil {
		return err
	}
	if b.typ.IsBytes() {
		b.bytes[index] = item.(uint8)
	} else {
		b.items[index] = item
	}
	b.update(index, item)
	return nil
}

// Value returns a copy of the list built so far.
func (b *ListBuilder) Value() Value {
	if b.typ.IsBytes() {
		return slices.Clone(b.bytes)
	}
	return slices.Clone(b.items)
}

// update writes an item into its leaf chunk and marks the leaf dirty.
func (b *ListBuilder) update(index int, item Value) {
	var (
		leaf   uint64
		offset int
	)
	if b.typ.elem.IsBasic() {
		per := 32 / int(b.typ.elem.size)
		leaf, offset = uint64(index/per), (index%per)*int(b.typ.elem.size)
	} else {
		leaf = uint64(index)
	}
	for uint64(len(b.nodes[0])) <= leaf {
		b.nodes[0] = append(b.nodes[0], [32]byte{})
	}
	if b.typ.elem.IsBasic() {
		copy(b.nodes[0][leaf][offset:], appendScalar(nil, b.typ.elem, item))
	} else {
		b.nodes[0][leaf] = HashSequential(b.typ.elem, item)
	}
	b.dirty = append(b.dirty, leaf)
}

// Root returns the hash tree root of the list, identical to hashing the value
// returned by Value from scratch.
func (b *ListBuilder) Root() [32]byte {
	if b.typ.chunks == 0 {
		return MixInLength([32]byte{}, uint64(b.Len()))
	}
	dirty := b.dirty
	for level := 0; level < int(b.depth); level++ {
		// Grow the parent layer to cover every child pair
		width := (len(b.nodes[level]) + 1) / 2
		for len(b.nodes[level+1]) < width {
			b.nodes[level+1] = append(b.nodes[level+1], [32]byte{})
		}
		// Rehash the parents of all the dirty nodes, deduplicated
		slices.Sort(dirty)
		dirty = slices.Compact(dirty)

		parents := dirty[:0]
		for _, index := range dirty {
			parent := index / 2
			if len(parents) > 0 && parents[len(parents)-1] == parent {
				continue
			}
			left := b.nodes[level][2*parent]
			right := zeroHashes[level]
			if 2*parent+1 < uint64(len(b.nodes[level])) {
				right = b.nodes[level][2*parent+1]
			}
			b.nodes[level+1][parent] = hashPair(left, right)
			parents = append(parents, parent)
		}
		dirty = parents
	}
	b.dirty = b.dirty[:0]

	root := zeroHashes[b.depth]
	if len(b.nodes[b.depth]) > 0 {
		root = b.nodes[b.depth][0]
	}
	return MixInLength(root, uint64(b.Len()))
}
