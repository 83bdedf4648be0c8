// ssz: Go Simple Serialize (SSZ) codec library
// Copyright 2024 ssz Authors
// SPDX-License-Identifier: BSD-3-Clause

package ssz

import (
	"bytes"
	"math/rand"
	"reflect"
	"testing"
	"testing/quick"

	"github.com/holiman/uint256"
	"github.com/prysmaticlabs/go-bitfield"
)

func roll(n int, r *rand.Rand) int {
	if n == 0 {
		return 0
	}
	k := r.Intn(n + 1)
	if k%2 == 0 {
		return 0
	}
	return k
}

// randomValue generates a random value conforming to a type descriptor, biased
// towards empty lists and zero values to hit the padding corner cases.
func randomValue(t *Type, r *rand.Rand) Value {
	switch t.Kind() {
	case KindBool:
		return r.Intn(2) == 1
	case KindUint:
		switch t.Bits() {
		case 8:
			return uint8(r.Uint32())
		case 16:
			return uint16(r.Uint32())
		case 32:
			return r.Uint32()
		case 64:
			return r.Uint64()
		case 128:
			return &uint256.Int{r.Uint64(), r.Uint64(), 0, 0}
		default:
			return &uint256.Int{r.Uint64(), r.Uint64(), r.Uint64(), r.Uint64()}
		}
	case KindVector, KindList:
		n := int(t.Length())
		if t.Kind() == KindList {
			n = roll(int(min(t.Limit(), 64)), r)
		}
		if t.IsBytes() {
			blob := make([]byte, n)
			r.Read(blob)
			return blob
		}
		items := make([]Value, n)
		for i := range items {
			items[i] = randomValue(t.Elem(), r)
		}
		return items
	case KindBitvector:
		bits := make([]byte, t.FixedSize())
		for i := uint64(0); i < t.Length(); i++ {
			if r.Intn(2) == 1 {
				bits[i/8] |= 1 << (i % 8)
			}
		}
		return bits
	case KindBitlist:
		bits := bitfield.NewBitlist(uint64(roll(int(t.Limit()), r)))
		for i := uint64(0); i < bits.Len(); i++ {
			bits.SetBitAt(i, r.Intn(2) == 1)
		}
		return bits
	case KindContainer:
		fields := make([]Value, len(t.Fields()))
		for i, field := range t.Fields() {
			fields[i] = randomValue(field.Type, r)
		}
		return NewObject(t, fields...)
	case KindUnion:
		selector := r.Intn(len(t.Variants()))
		if t.Variants()[selector] == nil {
			return &Selection{}
		}
		return &Selection{Selector: uint8(selector), Value: randomValue(t.Variants()[selector], r)}
	}
	panic("unreachable")
}

// randomizedTypes is a set of descriptors exercising all the type kinds both
// in fixed and dynamic positions.
func randomizedTypes() []*Type {
	header := Container("Header",
		NewField("slot", Uint64()),
		NewField("index", Uint32()),
		NewField("root", ByteVector(32)),
		NewField("bits", Bitvector(12)),
	)
	body := Container("Body",
		NewField("header", header),
		NewField("flags", List(Bool(), 9)),
		NewField("blobs", List(ByteList(40), 5)),
		NewField("headers", List(header, 3)),
		NewField("votes", Bitlist(300)),
		NewField("choice", Union(nil, Uint16(), ByteList(16), header)),
		NewField("wide", Vector(Uint128(), 3)),
		NewField("nested", Vector(List(Uint256(), 2), 2)),
	)
	return []*Type{
		header,
		body,
		List(body, 4),
		Vector(body, 2),
		Union(body, header),
	}
}

// Tests that random values survive an encode/decode round trip, that the sizer
// agrees with the encoder and that hashing is deterministic.
func TestRandomizedRoundTrip(t *testing.T) {
	for _, typ := range randomizedTypes() {
		typ := typ
		check := func(seed int64) bool {
			r := rand.New(rand.NewSource(seed))
			val := randomValue(typ, r)

			if err := Validate(typ, val); err != nil {
				t.Logf("%s: generated invalid value: %v", typ.Name(), err)
				return false
			}
			blob := Encode(typ, val)
			if size := Size(typ, val); int(size) != len(blob) {
				t.Logf("%s: size mismatch: have %d, want %d", typ.Name(), size, len(blob))
				return false
			}
			dec, err := DecodeFromBytes(blob, typ)
			if err != nil {
				t.Logf("%s: failed to decode: %v", typ.Name(), err)
				return false
			}
			if !reflect.DeepEqual(dec, val) {
				t.Logf("%s: decoded mismatch: have %+v, want %+v", typ.Name(), dec, val)
				return false
			}
			if !bytes.Equal(Encode(typ, dec), blob) {
				t.Logf("%s: re-encoding mismatch", typ.Name())
				return false
			}
			return HashSequential(typ, val) == HashConcurrent(typ, dec)
		}
		if err := quick.Check(check, &quick.Config{MaxCount: 100}); err != nil {
			t.Errorf("%s: %v", typ.Name(), err)
		}
	}
}

// Tests that truncated inputs never crash the decoder, and that whenever they
// happen to be well formed, they are canonical.
func TestRandomizedTruncation(t *testing.T) {
	typ := randomizedTypes()[1]

	check := func(seed int64) bool {
		r := rand.New(rand.NewSource(seed))
		blob := Encode(typ, randomValue(typ, r))

		cut := blob[:r.Intn(len(blob))]
		val, err := DecodeFromBytes(cut, typ)
		if err != nil {
			return true
		}
		return bytes.Equal(Encode(typ, val), cut)
	}
	if err := quick.Check(check, &quick.Config{MaxCount: 200}); err != nil {
		t.Error(err)
	}
}
