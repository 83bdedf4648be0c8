// ssz: Go Simple Serialize (SSZ) codec library
// Copyright 2024 ssz Authors
// SPDX-License-Identifier: BSD-3-Clause

package ssz

import (
	"encoding/binary"
	"errors"
	"math"
	"testing"

	fastssz "github.com/ferranbt/fastssz"
	"github.com/prysmaticlabs/go-bitfield"
)

// chunkOf returns a little-endian uint64 padded to a 32 byte chunk.
func chunkOf(n uint64) [32]byte {
	var chunk [32]byte
	binary.LittleEndian.PutUint64(chunk[:], n)
	return chunk
}

// Tests that the root of a single all-zero chunk is the chunk itself.
func TestZeroVectorRoot(t *testing.T) {
	for _, typ := range []*Type{ByteVector(32), Vector(Uint8(), 32)} {
		if root := HashTreeRoot(typ, make([]byte, 32)); root != ([32]byte{}) {
			t.Errorf("%s: root mismatch: have %x, want %x", typ, root, [32]byte{})
		}
	}
}

// Tests the raw Merkleization helpers against a manually computed tree.
func TestMerkleize(t *testing.T) {
	a, b, c := chunkOf(1), chunkOf(2), chunkOf(3)

	if root := Merkleize(nil, 0); root != ([32]byte{}) {
		t.Errorf("zero limit root mismatch: have %x, want %x", root, [32]byte{})
	}
	if root := Merkleize([][32]byte{a}, 1); root != a {
		t.Errorf("single chunk root mismatch: have %x, want %x", root, a)
	}
	want := hashPair(hashPair(a, b), hashPair(c, [32]byte{}))
	if root := Merkleize([][32]byte{a, b, c}, 3); root != want {
		t.Errorf("padded root mismatch: have %x, want %x", root, want)
	}
	want = hashPair(want, ZeroHash(2))
	if root := Merkleize([][32]byte{a, b, c}, 5); root != want {
		t.Errorf("deep padded root mismatch: have %x, want %x", root, want)
	}
	if root := Merkleize(nil, 1<<20); root != ZeroHash(20) {
		t.Errorf("empty root mismatch: have %x, want %x", root, ZeroHash(20))
	}
	if chunks := Pack([]byte{1, 2, 3}); len(chunks) != 1 || chunks[0][2] != 3 || chunks[0][3] != 0 {
		t.Errorf("pack mismatch: have %x", chunks)
	}
}

// Tests that the tree depth of a list is derived from its capacity, not the
// number of items in it.
func TestListRootDepth(t *testing.T) {
	typ := List(Uint64(), 1024) // 256 chunks, depth 8

	if have, want := HashTreeRoot(typ, []Value{}), MixInLength(ZeroHash(8), 0); have != want {
		t.Errorf("empty list root mismatch: have %x, want %x", have, want)
	}
	have := HashTreeRoot(typ, []Value{uint64(1)})
	want := MixInLength(Merkleize([][32]byte{chunkOf(1)}, 256), 1)
	if have != want {
		t.Errorf("single item root mismatch: have %x, want %x", have, want)
	}
	if other := HashTreeRoot(List(Uint64(), 2048), []Value{uint64(1)}); other == have {
		t.Errorf("different capacities produced the same root %x", other)
	}
}

// Tests that capacities near the top of the uint64 range still derive the tree
// depth from the full capacity.
func TestHugeCapacityDepth(t *testing.T) {
	list := List(Uint64(), 1<<62)
	if have, want := list.ChunkLimit(), uint64(1<<60); have != want {
		t.Errorf("list chunk limit mismatch: have %d, want %d", have, want)
	}
	if have, want := HashTreeRoot(list, []Value{}), MixInLength(ZeroHash(60), 0); have != want {
		t.Errorf("empty list root mismatch: have %x, want %x", have, want)
	}
	bits := Bitlist(math.MaxUint64)
	if have, want := bits.ChunkLimit(), uint64(1<<56); have != want {
		t.Errorf("bitlist chunk limit mismatch: have %d, want %d", have, want)
	}
	if have, want := List(Uint8(), math.MaxUint64).ChunkLimit(), uint64(1<<59); have != want {
		t.Errorf("byte list chunk limit mismatch: have %d, want %d", have, want)
	}
}

// Tests that the length mix-in differentiates lists with identical chunks.
func TestLengthMixin(t *testing.T) {
	typ := List(Uint64(), 16)

	short := HashTreeRoot(typ, []Value{uint64(1)})
	long := HashTreeRoot(typ, []Value{uint64(1), uint64(0)})
	if short == long {
		t.Fatalf("identical chunks with different lengths produced the same root %x", short)
	}
	bits := Bitlist(16)
	b1, b2 := bitfield.NewBitlist(3), bitfield.NewBitlist(4)
	if HashTreeRoot(bits, b1) == HashTreeRoot(bits, b2) {
		t.Fatalf("empty bitlists with different lengths produced the same root")
	}
}

// Tests union roots for both the None and the value variants.
func TestUnionRoot(t *testing.T) {
	typ := Union(nil, Uint16())

	if have, want := HashTreeRoot(typ, &Selection{}), MixInLength([32]byte{}, 0); have != want {
		t.Errorf("None root mismatch: have %x, want %x", have, want)
	}
	if have, want := HashTreeRoot(typ, &Selection{Selector: 1, Value: uint16(5)}), MixInLength(chunkOf(5), 1); have != want {
		t.Errorf("value root mismatch: have %x, want %x", have, want)
	}
}

// Tests the hasher against the fastssz implementation for a container mixing
// every major type class.
func TestHashAgainstFastSSZ(t *testing.T) {
	checkpoint := Container("Checkpoint",
		NewField("epoch", Uint64()),
		NewField("root", ByteVector(32)),
	)
	typ := Container("Mixed",
		NewField("slot", Uint64()),
		NewField("root", ByteVector(32)),
		NewField("bits", Bitlist(2048)),
		NewField("values", List(Uint64(), 16)),
		NewField("checkpoints", List(checkpoint, 4)),
		NewField("flag", Bool()),
		NewField("extra", ByteList(100)),
	)
	var (
		slot   = uint64(123456)
		root   = make([]byte, 32)
		bits   = bitfield.NewBitlist(700)
		values = []uint64{1, 2, 3, 4, 5}
		extra  = make([]byte, 70)
	)
	for i := range root {
		root[i] = byte(i)
	}
	for i := range extra {
		extra[i] = byte(255 - i)
	}
	bits.SetBitAt(5, true)
	bits.SetBitAt(699, true)

	cps := []Value{
		NewObject(checkpoint, uint64(7), root),
		NewObject(checkpoint, uint64(8), make([]byte, 32)),
	}
	items := make([]Value, len(values))
	for i, v := range values {
		items[i] = v
	}
	have := HashTreeRoot(typ, NewObject(typ, slot, root, bits, items, cps, true, extra))

	hh := fastssz.DefaultHasherPool.Get()
	defer fastssz.DefaultHasherPool.Put(hh)

	indx := hh.Index()
	hh.PutUint64(slot)
	hh.PutBytes(root)
	hh.PutBitlist(bits, 2048)
	{
		sub := hh.Index()
		for _, v := range values {
			hh.AppendUint64(v)
		}
		hh.FillUpTo32()
		hh.MerkleizeWithMixin(sub, uint64(len(values)), (16*8+31)/32)
	}
	{
		sub := hh.Index()
		for i, epoch := range []uint64{7, 8} {
			cpIndx := hh.Index()
			hh.PutUint64(epoch)
			if i == 0 {
				hh.PutBytes(root)
			} else {
				hh.PutBytes(make([]byte, 32))
			}
			hh.Merkleize(cpIndx)
		}
		hh.MerkleizeWithMixin(sub, 2, 4)
	}
	hh.PutBool(true)
	{
		sub := hh.Index()
		hh.Append(extra)
		hh.FillUpTo32()
		hh.MerkleizeWithMixin(sub, uint64(len(extra)), (100+31)/32)
	}
	hh.Merkleize(indx)

	want, err := hh.HashRoot()
	if err != nil {
		t.Fatalf("failed to hash with fastssz: %v", err)
	}
	if have != want {
		t.Fatalf("root mismatch: have %x, want %x", have, want)
	}
}

// Tests that concurrent hashing produces the same roots as sequential hashing.
func TestHashConcurrent(t *testing.T) {
	elem := Container("Item",
		NewField("index", Uint64()),
		NewField("payload", ByteList(64)),
	)
	typ := List(elem, 1024)

	items := make([]Value, 300)
	for i := range items {
		items[i] = NewObject(elem, uint64(i), make([]byte, i%64))
	}
	if seq, conc := HashSequential(typ, items), HashConcurrent(typ, items); seq != conc {
		t.Fatalf("root mismatch: sequential %x, concurrent %x", seq, conc)
	}
}

// Tests that incrementally built lists hash to the same root as the complete
// list, for every length up to the capacity.
func TestListBuilderEquivalence(t *testing.T) {
	elem := Container("Pair",
		NewField("a", Uint32()),
		NewField("b", ByteList(8)),
	)
	tests := []struct {
		typ  *Type
		item func(i int) Value
	}{
		{List(Uint64(), 37), func(i int) Value { return uint64(i * i) }},
		{List(Uint16(), 100), func(i int) Value { return uint16(i) }},
		{ByteList(70), func(i int) Value { return uint8(i) }},
		{List(elem, 33), func(i int) Value { return NewObject(elem, uint32(i), make([]byte, i%9)) }},
		{List(Bool(), 1), func(i int) Value { return true }},
	}
	for _, tt := range tests {
		builder := NewListBuilder(tt.typ)
		for n := 0; ; n++ {
			if have, want := builder.Root(), HashSequential(tt.typ, builder.Value()); have != want {
				t.Fatalf("%s: root mismatch at length %d: have %x, want %x", tt.typ, n, have, want)
			}
			if uint64(n) == tt.typ.Limit() {
				break
			}
			if err := builder.Append(tt.item(n)); err != nil {
				t.Fatalf("%s: failed to append item %d: %v", tt.typ, n, err)
			}
		}
		if err := builder.Append(tt.item(0)); !errors.Is(err, ErrCapacityExceeded) {
			t.Fatalf("%s: error mismatch: have %v, want %v", tt.typ, err, ErrCapacityExceeded)
		}
		// Modify a few items and ensure only the paths get updated correctly
		for _, i := range []int{0, builder.Len() / 2, builder.Len() - 1} {
			if err := builder.Set(i, tt.item(i+1)); err != nil {
				t.Fatalf("%s: failed to set item %d: %v", tt.typ, i, err)
			}
			if have, want := builder.Root(), HashSequential(tt.typ, builder.Value()); have != want {
				t.Fatalf("%s: root mismatch after set %d: have %x, want %x", tt.typ, i, have, want)
			}
		}
	}
}

// Tests that the builder rejects items not conforming to the element type.
func TestListBuilderValidation(t *testing.T) {
	builder := NewListBuilder(List(Uint64(), 4))
	if err := builder.Append(uint32(1)); !errors.Is(err, ErrInvalidValue) {
		t.Fatalf("error mismatch: have %v, want %v", err, ErrInvalidValue)
	}
	if err := builder.Set(0, uint64(1)); !errors.Is(err, ErrInvalidValue) {
		t.Fatalf("error mismatch: have %v, want %v", err, ErrInvalidValue)
	}
	if builder.Len() != 0 {
		t.Fatalf("length mismatch: have %d, want %d", builder.Len(), 0)
	}
}
