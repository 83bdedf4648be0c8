// ssz: Go Simple Serialize (SSZ) codec library
// Copyright 2024 ssz Authors
// SPDX-License-Identifier: BSD-3-Clause

package ssz

import (
	"bytes"
	"encoding/hex"
	"errors"
	"reflect"
	"testing"

	"github.com/holiman/uint256"
	"github.com/prysmaticlabs/go-bitfield"
)

// Tests the canonical two field container layout: a fixed uint8 followed by a
// variable list, whose offset (5) points right past the fixed area.
func TestContainerLayout(t *testing.T) {
	typ := Container("Pair",
		NewField("a", Uint8()),
		NewField("b", List(Uint8(), 4)),
	)
	val := NewObject(typ, uint8(7), []byte{1, 2})

	blob := Encode(typ, val)
	if want, _ := hex.DecodeString("07050000000102"); !bytes.Equal(blob, want) {
		t.Fatalf("encoding mismatch: have %x, want %x", blob, want)
	}
	if size := Size(typ, val); size != 7 {
		t.Fatalf("size mismatch: have %d, want %d", size, 7)
	}
	dec, err := DecodeFromBytes(blob, typ)
	if err != nil {
		t.Fatalf("failed to decode: %v", err)
	}
	if !reflect.DeepEqual(dec, val) {
		t.Fatalf("decoded mismatch: have %+v, want %+v", dec, val)
	}
}

// Tests that scalars encode little-endian at their exact width and decode back.
func TestScalars(t *testing.T) {
	tests := []struct {
		typ  *Type
		val  Value
		blob string
	}{
		{Bool(), false, "00"},
		{Bool(), true, "01"},
		{Uint8(), uint8(0xab), "ab"},
		{Uint16(), uint16(0x0102), "0201"},
		{Uint32(), uint32(0x01020304), "04030201"},
		{Uint64(), uint64(0x0102030405060708), "0807060504030201"},
		{Uint128(), uint256.NewInt(1), "01000000000000000000000000000000"},
		{Uint256(), new(uint256.Int).Lsh(uint256.NewInt(1), 255), "0000000000000000000000000000000000000000000000000000000000000080"},
	}
	for _, tt := range tests {
		blob := EncodeScalar(tt.typ, tt.val)
		if have := hex.EncodeToString(blob); have != tt.blob {
			t.Errorf("%s: encoding mismatch: have %s, want %s", tt.typ, have, tt.blob)
			continue
		}
		val, err := DecodeScalar(tt.typ, blob)
		if err != nil {
			t.Errorf("%s: failed to decode: %v", tt.typ, err)
			continue
		}
		if !reflect.DeepEqual(val, tt.val) {
			t.Errorf("%s: decoded mismatch: have %v, want %v", tt.typ, val, tt.val)
		}
	}
}

// Tests that scalar decoding rejects bad lengths and non-canonical booleans.
func TestScalarFailures(t *testing.T) {
	tests := []struct {
		typ  *Type
		blob []byte
		err  error
	}{
		{Bool(), []byte{0x02}, ErrInvalidBoolean},
		{Bool(), []byte{0xff}, ErrInvalidBoolean},
		{Bool(), []byte{}, ErrMalformedLength},
		{Uint16(), []byte{0x01}, ErrMalformedLength},
		{Uint64(), make([]byte, 9), ErrMalformedLength},
		{Uint256(), make([]byte, 31), ErrMalformedLength},
	}
	for _, tt := range tests {
		if _, err := DecodeScalar(tt.typ, tt.blob); !errors.Is(err, tt.err) {
			t.Errorf("%s %x: error mismatch: have %v, want %v", tt.typ, tt.blob, err, tt.err)
		}
	}
}

// Tests the various ways an offset table can be corrupted.
func TestOffsetFailures(t *testing.T) {
	typ := Container("Triple",
		NewField("a", Uint8()),
		NewField("b", ByteList(8)),
		NewField("c", ByteList(8)),
	)
	tests := []struct {
		name   string
		blob   string
		offset int
	}{
		// fixed area is 9 bytes: a(1) + offset(4) + offset(4)
		{"decreasing", "07" + "09000000" + "08000000" + "0102", 5},
		{"first mismatch", "07" + "0a000000" + "0b000000" + "0102", 1},
		{"beyond end", "07" + "09000000" + "0c000000" + "0102", 5},
		{"first beyond end", "07" + "ff000000" + "ff000000", 1},
	}
	for _, tt := range tests {
		blob, _ := hex.DecodeString(tt.blob)
		_, err := DecodeFromBytes(blob, typ)
		if !errors.Is(err, ErrInvalidOffset) {
			t.Errorf("%s: error mismatch: have %v, want %v", tt.name, err, ErrInvalidOffset)
			continue
		}
		var serr *Error
		if !errors.As(err, &serr) {
			t.Errorf("%s: error type mismatch: have %T, want %T", tt.name, err, serr)
			continue
		}
		if serr.Offset != tt.offset {
			t.Errorf("%s: error offset mismatch: have %d, want %d", tt.name, serr.Offset, tt.offset)
		}
	}
	// Sanity check that a well formed variant of the above decodes
	blob, _ := hex.DecodeString("07" + "09000000" + "0a000000" + "0102")
	val, err := DecodeFromBytes(blob, typ)
	if err != nil {
		t.Fatalf("failed to decode valid input: %v", err)
	}
	want := NewObject(typ, uint8(7), []byte{1}, []byte{2})
	if !reflect.DeepEqual(val, want) {
		t.Fatalf("decoded mismatch: have %+v, want %+v", val, want)
	}
}

// Tests that errors deep inside nested structures are reported with the byte
// position in the top level input.
func TestNestedErrorOffset(t *testing.T) {
	inner := Container("Inner",
		NewField("flag", Bool()),
		NewField("data", ByteList(4)),
	)
	outer := Container("Outer",
		NewField("pad", Uint32()),
		NewField("items", List(inner, 4)),
	)
	val := NewObject(outer, uint32(1), []Value{
		NewObject(inner, true, []byte{0xaa}),
		NewObject(inner, false, []byte{0xbb, 0xcc}),
	})
	blob := Encode(outer, val)

	// Layout: pad(4) offset(4) | list: offsets(8) | inner0: flag(1) off(4) aa | inner1: flag(1) ...
	flag := 4 + 4 + 8 + 6
	if blob[flag] != 0x00 {
		t.Fatalf("test layout mismatch: have %#x at %d", blob[flag], flag)
	}
	blob[flag] = 0x02

	_, err := DecodeFromBytes(blob, outer)
	var serr *Error
	if !errors.As(err, &serr) || serr.Kind != ErrInvalidBoolean {
		t.Fatalf("error mismatch: have %v, want %v", err, ErrInvalidBoolean)
	}
	if serr.Offset != flag {
		t.Fatalf("error offset mismatch: have %d, want %d", serr.Offset, flag)
	}
}

// Tests list capacity enforcement for every list flavor.
func TestListCapacity(t *testing.T) {
	tests := []struct {
		name string
		typ  *Type
		blob []byte
		err  error
	}{
		{"bytes", ByteList(2), []byte{1, 2, 3}, ErrCapacityExceeded},
		{"uint64s", List(Uint64(), 1), make([]byte, 16), ErrCapacityExceeded},
		{"uint64s indivisible", List(Uint64(), 4), make([]byte, 12), ErrMalformedLength},
		{"dynamics", List(ByteList(4), 1), []byte{8, 0, 0, 0, 8, 0, 0, 0}, ErrCapacityExceeded},
		{"dynamics short", List(ByteList(4), 1), []byte{4, 0}, ErrMalformedLength},
		{"dynamics bad counter", List(ByteList(4), 4), []byte{3, 0, 0, 0}, ErrInvalidOffset},
	}
	for _, tt := range tests {
		if _, err := DecodeFromBytes(tt.blob, tt.typ); !errors.Is(err, tt.err) {
			t.Errorf("%s: error mismatch: have %v, want %v", tt.name, err, tt.err)
		}
	}
}

// Tests bitlist sentinel handling and capacity enforcement.
func TestBitlistDecoding(t *testing.T) {
	typ := Bitlist(4)

	tests := []struct {
		name string
		blob []byte
		err  error
	}{
		{"empty", []byte{}, ErrInvalidBitlistLength},
		{"no sentinel", []byte{0x00}, ErrInvalidBitlistLength},
		{"five bits", []byte{0b00111111}, ErrInvalidBitlistLength},
		{"too many bytes", []byte{0x0f, 0x01}, ErrCapacityExceeded},
	}
	for _, tt := range tests {
		if _, err := DecodeFromBytes(tt.blob, typ); !errors.Is(err, tt.err) {
			t.Errorf("%s: error mismatch: have %v, want %v", tt.name, err, tt.err)
		}
	}
	// Four bits exactly at the limit are fine
	val, err := DecodeFromBytes([]byte{0b00011010}, typ)
	if err != nil {
		t.Fatalf("failed to decode full bitlist: %v", err)
	}
	bits := val.(bitfield.Bitlist)
	if bits.Len() != 4 {
		t.Fatalf("bit length mismatch: have %d, want %d", bits.Len(), 4)
	}
	if !bits.BitAt(1) || !bits.BitAt(3) || bits.BitAt(0) || bits.BitAt(2) {
		t.Fatalf("bit content mismatch: have %08b", bits.Bytes())
	}
}

// Tests that bitvectors with padding bits set are rejected.
func TestBitvectorPadding(t *testing.T) {
	typ := Bitvector(10)

	if _, err := DecodeFromBytes([]byte{0xff, 0x03}, typ); err != nil {
		t.Fatalf("failed to decode valid bitvector: %v", err)
	}
	if _, err := DecodeFromBytes([]byte{0xff, 0x07}, typ); !errors.Is(err, ErrJunkInBitvector) {
		t.Fatalf("error mismatch: have %v, want %v", err, ErrJunkInBitvector)
	}
	if _, err := DecodeFromBytes([]byte{0xff}, typ); !errors.Is(err, ErrMalformedLength) {
		t.Fatalf("error mismatch: have %v, want %v", err, ErrMalformedLength)
	}
}

// Tests union selector dispatch, including the None variant.
func TestUnionCodec(t *testing.T) {
	typ := Union(nil, Uint16(), ByteList(8))

	tests := []struct {
		val  *Selection
		blob []byte
	}{
		{&Selection{Selector: 0}, []byte{0x00}},
		{&Selection{Selector: 1, Value: uint16(0xaabb)}, []byte{0x01, 0xbb, 0xaa}},
		{&Selection{Selector: 2, Value: []byte{1, 2, 3}}, []byte{0x02, 0x01, 0x02, 0x03}},
	}
	for _, tt := range tests {
		blob := Encode(typ, tt.val)
		if !bytes.Equal(blob, tt.blob) {
			t.Errorf("selector %d: encoding mismatch: have %x, want %x", tt.val.Selector, blob, tt.blob)
			continue
		}
		val, err := DecodeFromBytes(blob, typ)
		if err != nil {
			t.Errorf("selector %d: failed to decode: %v", tt.val.Selector, err)
			continue
		}
		if !reflect.DeepEqual(val, tt.val) {
			t.Errorf("selector %d: decoded mismatch: have %+v, want %+v", tt.val.Selector, val, tt.val)
		}
	}
	if _, err := DecodeFromBytes([]byte{0x03}, typ); !errors.Is(err, ErrInvalidUnionSelector) {
		t.Errorf("error mismatch: have %v, want %v", err, ErrInvalidUnionSelector)
	}
	if _, err := DecodeFromBytes([]byte{0x00, 0x01}, typ); !errors.Is(err, ErrMalformedLength) {
		t.Errorf("error mismatch: have %v, want %v", err, ErrMalformedLength)
	}
	if _, err := DecodeFromBytes([]byte{}, typ); !errors.Is(err, ErrMalformedLength) {
		t.Errorf("error mismatch: have %v, want %v", err, ErrMalformedLength)
	}
	// Without a None variant, selector 0 is the first real type
	plain := Union(Uint8(), Uint16())
	if _, err := DecodeFromBytes([]byte{0x02, 0x00}, plain); !errors.Is(err, ErrInvalidUnionSelector) {
		t.Errorf("error mismatch: have %v, want %v", err, ErrInvalidUnionSelector)
	}
}

// Tests that union construction rejects None anywhere but the first slot.
func TestUnionNonePlacement(t *testing.T) {
	defer func() {
		if recover() == nil {
			t.Fatalf("expected panic for misplaced None variant")
		}
	}()
	Union(Uint8(), nil)
}

// Tests that adversarially deep descriptors are rejected by the decoder
// instead of recursing without bound.
func TestNestingTooDeep(t *testing.T) {
	typ := Uint8()
	for i := 0; i < MaxNestingDepth+1; i++ {
		typ = Vector(typ, 1)
	}
	_, err := DecodeFromBytes([]byte{0x01}, typ)
	if !errors.Is(err, ErrNestingTooDeep) {
		t.Fatalf("error mismatch: have %v, want %v", err, ErrNestingTooDeep)
	}
	// One level shallower is fine
	if _, err := DecodeFromBytes([]byte{0x01}, typ.Elem()); err != nil {
		t.Fatalf("failed to decode at nesting cap: %v", err)
	}
	// Too deep descriptors are rejected even if the input never reaches the
	// bottom levels
	deep := List(Uint8(), 4)
	for i := 0; i < MaxNestingDepth+5; i++ {
		deep = List(deep, 4)
	}
	_, err = DecodeFromBytes(nil, deep)
	if !errors.Is(err, ErrNestingTooDeep) {
		t.Fatalf("empty input error mismatch: have %v, want %v", err, ErrNestingTooDeep)
	}
}

// Tests that decoded values don't alias the input buffer.
func TestDecodeCopies(t *testing.T) {
	typ := Container("Blobs",
		NewField("fixed", ByteVector(2)),
		NewField("dynamic", ByteList(2)),
	)
	blob := []byte{1, 2, 6, 0, 0, 0, 3, 4}
	val, err := DecodeFromBytes(blob, typ)
	if err != nil {
		t.Fatalf("failed to decode: %v", err)
	}
	for i := range blob {
		blob[i] = 0xff
	}
	obj := val.(*Object)
	if !bytes.Equal(obj.Get("fixed").([]byte), []byte{1, 2}) || !bytes.Equal(obj.Get("dynamic").([]byte), []byte{3, 4}) {
		t.Fatalf("decoded value aliases input: %+v", obj.Fields)
	}
}

// Tests the stream and buffer variants of the codec.
func TestStreamCodec(t *testing.T) {
	typ := Container("Mixed",
		NewField("n", Uint64()),
		NewField("bits", Bitlist(16)),
		NewField("list", List(Uint32(), 8)),
	)
	bits := bitfield.NewBitlist(9)
	bits.SetBitAt(3, true)
	val := NewObject(typ, uint64(42), bits, []Value{uint32(1), uint32(2)})

	buf := new(bytes.Buffer)
	if err := EncodeToStream(buf, typ, val); err != nil {
		t.Fatalf("failed to stream encode: %v", err)
	}
	if !bytes.Equal(buf.Bytes(), Encode(typ, val)) {
		t.Fatalf("stream/buffer encoding mismatch: have %x, want %x", buf.Bytes(), Encode(typ, val))
	}
	size := uint32(buf.Len())
	dec, err := DecodeFromStream(buf, typ, size)
	if err != nil {
		t.Fatalf("failed to stream decode: %v", err)
	}
	if !reflect.DeepEqual(dec, val) {
		t.Fatalf("decoded mismatch: have %+v, want %+v", dec, val)
	}
	if err := EncodeToBytes(make([]byte, size-1), typ, val); !errors.Is(err, ErrBufferTooSmall) {
		t.Fatalf("error mismatch: have %v, want %v", err, ErrBufferTooSmall)
	}
}

// Tests that Validate catches values that would make encoding panic.
func TestValidate(t *testing.T) {
	typ := Container("Checked",
		NewField("root", ByteVector(32)),
		NewField("items", List(Uint16(), 2)),
		NewField("choice", Union(nil, Bool())),
	)
	good := NewObject(typ, make([]byte, 32), []Value{uint16(1)}, &Selection{Selector: 1, Value: true})
	if err := Validate(typ, good); err != nil {
		t.Fatalf("valid value rejected: %v", err)
	}
	bad := []*Object{
		NewObject(typ, make([]byte, 31), []Value{}, &Selection{}),
		NewObject(typ, make([]byte, 32), []Value{uint16(1), uint16(2), uint16(3)}, &Selection{}),
		NewObject(typ, make([]byte, 32), []Value{uint32(1)}, &Selection{}),
		NewObject(typ, make([]byte, 32), []Value{}, &Selection{Selector: 2}),
		NewObject(typ, make([]byte, 32), []Value{}, &Selection{Selector: 0, Value: true}),
	}
	for i, val := range bad {
		if err := Validate(typ, val); !errors.Is(err, ErrInvalidValue) {
			t.Errorf("test %d: error mismatch: have %v, want %v", i, err, ErrInvalidValue)
		}
	}
}

// Tests that the size bounds of types are computed correctly.
func TestSizeBounds(t *testing.T) {
	typ := Container("Bounds",
		NewField("a", Uint64()),
		NewField("b", ByteList(10)),
		NewField("c", Bitlist(20)),
	)
	if have, want := typ.FixedSize(), uint32(16); have != want {
		t.Errorf("fixed size mismatch: have %d, want %d", have, want)
	}
	if have, want := typ.MinSize(), uint64(17); have != want {
		t.Errorf("min size mismatch: have %d, want %d", have, want)
	}
	if have, want := typ.MaxSize(), uint64(16+10+3); have != want {
		t.Errorf("max size mismatch: have %d, want %d", have, want)
	}
	if typ.IsFixed() {
		t.Errorf("dynamic container reported fixed")
	}
}
