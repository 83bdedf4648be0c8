// ssz: Go Simple Serialize (SSZ) codec library
// Copyright 2024 ssz Authors
// SPDX-License-Identifier: BSD-3-Clause

package ssz

import (
	"fmt"
	"math"
	"strings"
)

// MaxNestingDepth is the maximum number of composite levels the decoder will
// descend into before aborting with ErrNestingTooDeep.
const MaxNestingDepth = 64

// Kind is the structural category of an SSZ type.
type Kind int

const (
	KindBool Kind = iota + 1
	KindUint
	KindVector
	KindList
	KindBitvector
	KindBitlist
	KindContainer
	KindUnion
)

var kindNames = map[Kind]string{
	KindBool:      "bool",
	KindUint:      "uint",
	KindVector:    "vector",
	KindList:      "list",
	KindBitvector: "bitvector",
	KindBitlist:   "bitlist",
	KindContainer: "container",
	KindUnion:     "union",
}

// String implements fmt.Stringer.
func (k Kind) String() string {
	if name, ok := kindNames[k]; ok {
		return name
	}
	return fmt.Sprintf("kind(%d)", int(k))
}

// Type is an immutable SSZ type descriptor. Descriptors are built once via the
// constructors in this file and are safe for concurrent use afterwards.
type Type struct {
	name string
	kind Kind

	bits   int    // Bit width of a uint (8, 16, 32, 64, 128, 256)
	elem   *Type  // Element type of vectors and lists
	length uint64 // Item count of vectors, bit count of bitvectors
	limit  uint64 // Maximum item count of lists, maximum bit count of bitlists

	fields   []*Field       // Ordered fields of a container
	index    map[string]int // Field name to position lookup
	variants []*Type        // Variants of a union, nil at index 0 if None is allowed

	fixed  bool   // Whether the type has a constant encoded size
	size   uint32 // Encoded size of a fixed type, or of the fixed area of a container
	chunks uint64 // Maximum number of leaf chunks before padding to a power of 2
	depth  int    // Number of composite levels below and including this one
}

// Field is a named member of a container type.
type Field struct {
	Name   string
	Type   *Type
	Filter ForkFilter
}

// NewField creates a container field present in all forks.
func NewField(name string, typ *Type) *Field {
	return &Field{Name: name, Type: typ}
}

// OnFork returns a copy of the field restricted to the forks of the filter.
func (f *Field) OnFork(filter ForkFilter) *Field {
	return &Field{Name: f.Name, Type: f.Type, Filter: filter}
}

// Pre-constructed basic descriptors, they are immutable so can be shared.
var (
	boolType    = newUint(KindBool, 8, "bool")
	uint8Type   = newUint(KindUint, 8, "uint8")
	uint16Type  = newUint(KindUint, 16, "uint16")
	uint32Type  = newUint(KindUint, 32, "uint32")
	uint64Type  = newUint(KindUint, 64, "uint64")
	uint128Type = newUint(KindUint, 128, "uint128")
	uint256Type = newUint(KindUint, 256, "uint256")
)

func newUint(kind Kind, bits int, name string) *Type {
	return &Type{name: name, kind: kind, bits: bits, fixed: true, size: uint32(bits / 8), chunks: 1}
}

// Bool returns the boolean type descriptor.
func Bool() *Type { return boolType }

// Uint8 returns the uint8 type descriptor.
func Uint8() *Type { return uint8Type }

// Uint16 returns the uint16 type descriptor.
func Uint16() *Type { return uint16Type }

// Uint32 returns the uint32 type descriptor.
func Uint32() *Type { return uint32Type }

// Uint64 returns the uint64 type descriptor.
func Uint64() *Type { return uint64Type }

// Uint128 returns the uint128 type descriptor.
func Uint128() *Type { return uint128Type }

// Uint256 returns the uint256 type descriptor.
func Uint256() *Type { return uint256Type }

// Uint returns the unsigned integer descriptor of the requested bit width.
func Uint(bits int) *Type {
	switch bits {
	case 8:
		return uint8Type
	case 16:
		return uint16Type
	case 32:
		return uint32Type
	case 64:
		return uint64Type
	case 128:
		return uint128Type
	case 256:
		return uint256Type
	default:
		panic(fmt.Sprintf("ssz: unsupported uint width: %d", bits))
	}
}

// Vector creates a fixed length homogeneous sequence type.
func Vector(elem *Type, length uint64) *Type {
	if length == 0 {
		panic("ssz: zero length vector")
	}
	t := &Type{
		name:   fmt.Sprintf("Vector[%s, %d]", elem.name, length),
		kind:   KindVector,
		elem:   elem,
		length: length,
		fixed:  elem.fixed,
		depth:  elem.depth + 1,
	}
	if elem.IsBasic() {
		t.chunks = chunkCount(length, 32/uint64(elem.size))
	} else {
		t.chunks = length
	}
	if elem.fixed {
		t.size = mulSize(uint64(elem.size), length)
	} else {
		t.size = mulSize(4, length)
	}
	return t
}

// ByteVector creates a fixed length byte array type.
func ByteVector(length uint64) *Type {
	t := Vector(uint8Type, length)
	t.name = fmt.Sprintf("ByteVector[%d]", length)
	return t
}

// List creates a variable length homogeneous sequence type capped at limit items.
func List(elem *Type, limit uint64) *Type {
	t := &Type{
		name:  fmt.Sprintf("List[%s, %d]", elem.name, limit),
		kind:  KindList,
		elem:  elem,
		limit: limit,
		depth: elem.depth + 1,
	}
	if elem.IsBasic() {
		t.chunks = chunkCount(limit, 32/uint64(elem.size))
	} else {
		t.chunks = limit
	}
	return t
}

// ByteList creates a variable length byte array type capped at limit bytes.
func ByteList(limit uint64) *Type {
	t := List(uint8Type, limit)
	t.name = fmt.Sprintf("ByteList[%d]", limit)
	return t
}

// Bitvector creates a fixed length bit array type.
func Bitvector(bits uint64) *Type {
	if bits == 0 {
		panic("ssz: zero length bitvector")
	}
	return &Type{
		name:   fmt.Sprintf("Bitvector[%d]", bits),
		kind:   KindBitvector,
		length: bits,
		fixed:  true,
		size:   mulSize(1, chunkCount(bits, 8)),
		chunks: chunkCount(bits, 256),
	}
}

// Bitlist creates a variable length bit array type capped at limit bits.
func Bitlist(limit uint64) *Type {
	return &Type{
		name:   fmt.Sprintf("Bitlist[%d]", limit),
		kind:   KindBitlist,
		limit:  limit,
		chunks: chunkCount(limit, 256),
	}
}

// Container creates an ordered heterogeneous struct type.
func Container(name string, fields ...*Field) *Type {
	if len(fields) == 0 {
		panic(fmt.Sprintf("ssz: container %s has no fields", name))
	}
	t := &Type{
		name:   name,
		kind:   KindContainer,
		fields: fields,
		index:  make(map[string]int, len(fields)),
		fixed:  true,
		chunks: uint64(len(fields)),
	}
	var size uint64
	for i, field := range fields {
		if _, ok := t.index[field.Name]; ok {
			panic(fmt.Sprintf("ssz: container %s has duplicate field %s", name, field.Name))
		}
		t.index[field.Name] = i

		if field.Type.fixed {
			size += uint64(field.Type.size)
		} else {
			size += 4
			t.fixed = false
		}
		if field.Type.depth+1 > t.depth {
			t.depth = field.Type.depth + 1
		}
	}
	t.size = mulSize(1, size)
	return t
}

// ContainerOnFork creates a container type from a monolith field set, keeping
// only the fields whose fork filter includes the requested fork.
func ContainerOnFork(name string, fork Fork, fields ...*Field) *Type {
	kept := make([]*Field, 0, len(fields))
	for _, field := range fields {
		if field.Filter.Includes(fork) {
			kept = append(kept, field)
		}
	}
	return Container(name, kept...)
}

// Union creates a tagged variant type. A nil variant is permitted at index 0 to
// represent the None option.
func Union(variants ...*Type) *Type {
	if len(variants) == 0 || len(variants) > 128 {
		panic(fmt.Sprintf("ssz: union with %d variants", len(variants)))
	}
	names := make([]string, len(variants))
	t := &Type{
		kind:     KindUnion,
		variants: variants,
		chunks:   1,
	}
	for i, variant := range variants {
		if variant == nil {
			if i != 0 {
				panic(fmt.Sprintf("ssz: union None variant at index %d", i))
			}
			names[i] = "None"
			continue
		}
		names[i] = variant.name
		if variant.depth+1 > t.depth {
			t.depth = variant.depth + 1
		}
	}
	if variants[0] == nil && len(variants) == 1 {
		panic("ssz: union with only the None variant")
	}
	t.name = "Union[" + strings.Join(names, ", ") + "]"
	return t
}

// Named returns a copy of the type with a different display name. Names carry no
// meaning for encoding or hashing.
func (t *Type) Named(name string) *Type {
	cpy := *t
	cpy.name = name
	return &cpy
}

// chunkCount returns the number of chunks needed to hold items, with per items
// fitting into a single chunk. The result is rounded up without overflowing.
func chunkCount(items, per uint64) uint64 {
	chunks := items / per
	if items%per != 0 {
		chunks++
	}
	return chunks
}

// mulSize multiplies two sizes, panicking if the result does not fit into the
// 32 bit offset space of SSZ.
func mulSize(a, b uint64) uint32 {
	if b != 0 && a > math.MaxUint32/b {
		panic(fmt.Sprintf("ssz: fixed size %d*%d overflows", a, b))
	}
	return uint32(a * b)
}

// Name returns the display name of the type.
func (t *Type) Name() string { return t.name }

// String implements fmt.Stringer.
func (t *Type) String() string { return t.name }

// Kind returns the structural category of the type.
func (t *Type) Kind() Kind { return t.kind }

// Bits returns the bit width of a uint or bool type.
func (t *Type) Bits() int { return t.bits }

// Elem returns the element type of a vector or list.
func (t *Type) Elem() *Type { return t.elem }

// Length returns the item count of a vector or the bit count of a bitvector.
func (t *Type) Length() uint64 { return t.length }

// Limit returns the maximum item count of a list or bit count of a bitlist.
func (t *Type) Limit() uint64 { return t.limit }

// Fields returns the ordered fields of a container.
func (t *Type) Fields() []*Field { return t.fields }

// FieldIndex returns the position of a named container field.
func (t *Type) FieldIndex(name string) (int, bool) {
	i, ok := t.index[name]
	return i, ok
}

// Variants returns the variants of a union, nil at index 0 standing for None.
func (t *Type) Variants() []*Type { return t.variants }

// IsBasic reports whether the type is a bool or unsigned integer.
func (t *Type) IsBasic() bool { return t.kind == KindBool || t.kind == KindUint }

// IsFixed reports whether every value of the type encodes to the same size.
func (t *Type) IsFixed() bool { return t.fixed }

// IsBytes reports whether the type is a vector or list of uint8s.
func (t *Type) IsBytes() bool {
	return (t.kind == KindVector || t.kind == KindList) && t.elem.kind == KindUint && t.elem.bits == 8
}

// FixedSize returns the encoded size of a fixed type, or the size of the fixed
// area (with 4 bytes per dynamic field) of a dynamic container or vector. It is
// zero for lists, bitlists and unions.
func (t *Type) FixedSize() uint32 { return t.size }

// ChunkLimit returns the maximum number of 32 byte leaves the type merkleizes.
func (t *Type) ChunkLimit() uint64 { return t.chunks }

// Depth returns the number of composite nesting levels of the type.
func (t *Type) Depth() int { return t.depth }

// MinSize returns the smallest possible encoded size of the type.
func (t *Type) MinSize() uint64 {
	switch t.kind {
	case KindList:
		return 0
	case KindBitlist:
		return 1
	case KindUnion:
		if t.variants[0] == nil {
			return 1
		}
		least := uint64(math.MaxUint64)
		for _, variant := range t.variants {
			least = min(least, variant.MinSize())
		}
		return 1 + least
	case KindVector:
		if t.fixed {
			return uint64(t.size)
		}
		return uint64(t.size) + t.length*t.elem.MinSize()
	case KindContainer:
		size := uint64(t.size)
		for _, field := range t.fields {
			if !field.Type.fixed {
				size += field.Type.MinSize()
			}
		}
		return size
	default:
		return uint64(t.size)
	}
}

// MaxSize returns the largest possible encoded size of the type, saturating at
// math.MaxUint64.
func (t *Type) MaxSize() uint64 {
	switch t.kind {
	case KindList:
		if t.elem.fixed {
			return satMul(t.limit, uint64(t.elem.size))
		}
		return satMul(t.limit, satAdd(4, t.elem.MaxSize()))
	case KindBitlist:
		return t.limit/8 + 1
	case KindUnion:
		var most uint64
		for _, variant := range t.variants {
			if variant != nil {
				most = max(most, variant.MaxSize())
			}
		}
		return satAdd(1, most)
	case KindVector:
		if t.fixed {
			return uint64(t.size)
		}
		return satAdd(uint64(t.size), satMul(t.length, t.elem.MaxSize()))
	case KindContainer:
		size := uint64(t.size)
		for _, field := range t.fields {
			if !field.Type.fixed {
				size = satAdd(size, field.Type.MaxSize())
			}
		}
		return size
	default:
		return uint64(t.size)
	}
}

func satAdd(a, b uint64) uint64 {
	if a > math.MaxUint64-b {
		return math.MaxUint64
	}
	return a + b
}

func satMul(a, b uint64) uint64 {
	if b != 0 && a > math.MaxUint64/b {
		return math.MaxUint64
	}
	return a * b
}
