// ssz: Go Simple Serialize (SSZ) codec library
// Copyright 2024 ssz Authors
// SPDX-License-Identifier: BSD-3-Clause

package ssz

import (
	"encoding/binary"
	"math/bits"

	"github.com/holiman/uint256"
	"github.com/prysmaticlabs/go-bitfield"
)

// Decoder is a wrapper around a []byte buffer to implement validating SSZ
// decoding. It has the following behaviors:
//
//  1. The decoder operates on a fully loaded input. Streams are read into a
//     pooled buffer up to the caller supplied size before decoding starts.
//
//  2. The decoder does not return errors from individual decoding methods. The
//     first failure is retained and halts all further decoding, so nested code
//     can be dense and error checking is done once at the end.
//
//  3. Every failure is reported as an *Error carrying the absolute position in
//     the top level input, regardless of how deep in the type it was detected.
//
//  4. Composite nesting is capped at MaxNestingDepth, so adversarially deep
//     descriptors cannot exhaust the stack.
type Decoder struct {
	inBuffer []byte // Underlying input buffer to read from
	err      error  // Any decoding error to halt future decoding calls
	depth    int    // Current composite nesting depth

	offsets []int // Scratch space for offset tables, used as a stack
}

// fail records a decoding error if none was recorded yet.
func (dec *Decoder) fail(kind error, offset int, format string, args ...any) {
	if dec.err == nil {
		dec.err = newError(kind, offset, format, args...)
	}
}

// descend enters a composite level, failing if the nesting cap is exceeded.
func (dec *Decoder) descend(start int) bool {
	dec.depth++
	if dec.depth > MaxNestingDepth {
		dec.fail(ErrNestingTooDeep, start, "depth %d, max %d", dec.depth, MaxNestingDepth)
		return false
	}
	return true
}

// ascend leaves a composite level.
func (dec *Decoder) ascend() {
	dec.depth--
}

// decodeValue parses the region [start, end) of the input as a value of type t.
func (dec *Decoder) decodeValue(t *Type, start, end int) Value {
	if dec.err != nil {
		return nil
	}
	size := end - start
	if t.fixed && size != int(t.size) {
		dec.fail(ErrMalformedLength, start, "%s needs %d bytes, have %d", t, t.size, size)
		return nil
	}
	switch t.kind {
	case KindBool, KindUint:
		v, err := decodeScalar(t, dec.inBuffer[start:end], start)
		if err != nil {
			dec.err = err
			return nil
		}
		return v

	case KindBitvector:
		return dec.decodeBitvector(t, start, end)

	case KindBitlist:
		return dec.decodeBitlist(t, start, end)
	}
	// Anything else is a composite type, track the nesting
	if !dec.descend(start) {
		return nil
	}
	defer dec.ascend()

	switch t.kind {
	case KindVector:
		if t.IsBytes() {
			return append([]byte{}, dec.inBuffer[start:end]...)
		}
		if t.elem.fixed {
			return dec.decodeFixedItems(t.elem, start, t.length)
		}
		return dec.decodeDynamicItems(t.elem, start, end, t.length)

	case KindList:
		if t.IsBytes() {
			if uint64(size) > t.limit {
				dec.fail(ErrCapacityExceeded, start, "decoded %d bytes, max %d", size, t.limit)
				return nil
			}
			return append([]byte{}, dec.inBuffer[start:end]...)
		}
		if t.elem.fixed {
			if size%int(t.elem.size) != 0 {
				dec.fail(ErrMalformedLength, start, "%d bytes not divisible by item size %d", size, t.elem.size)
				return nil
			}
			count := uint64(size / int(t.elem.size))
			if count > t.limit {
				dec.fail(ErrCapacityExceeded, start, "decoded %d items, max %d", count, t.limit)
				return nil
			}
			return dec.decodeFixedItems(t.elem, start, count)
		}
		if size == 0 {
			return []Value{}
		}
		if size < 4 {
			dec.fail(ErrMalformedLength, start, "insufficient data for 4-byte counter offset")
			return nil
		}
		first := int(binary.LittleEndian.Uint32(dec.inBuffer[start:]))
		if first == 0 || first%4 != 0 || first > size {
			dec.fail(ErrInvalidOffset, start, "counter offset %d in %d bytes", first, size)
			return nil
		}
		count := uint64(first / 4)
		if count > t.limit {
			dec.fail(ErrCapacityExceeded, start, "decoded %d items, max %d", count, t.limit)
			return nil
		}
		return dec.decodeDynamicItems(t.elem, start, end, count)

	case KindContainer:
		return dec.decodeContainer(t, start, end)

	case KindUnion:
		return dec.decodeUnion(t, start, end)
	}
	panic("ssz: unsupported type: " + t.String())
}

// decodeFixedItems parses count back to back fixed size items.
func (dec *Decoder) decodeFixedItems(elem *Type, start int, count uint64) []Value {
	items := make([]Value, count)
	for i := range items {
		pos := start + i*int(elem.size)
		items[i] = dec.decodeValue(elem, pos, pos+int(elem.size))
		if dec.err != nil {
			return nil
		}
	}
	return items
}

// decodeDynamicItems parses count dynamic items prefixed by an offset table.
func (dec *Decoder) decodeDynamicItems(elem *Type, start, end int, count uint64) []Value {
	if end-start < 4*int(count) {
		dec.fail(ErrMalformedLength, start, "offset table of %d items in %d bytes", count, end-start)
		return nil
	}
	base := len(dec.offsets)
	defer func() { dec.offsets = dec.offsets[:base] }()

	for i := 0; i < int(count); i++ {
		dec.readOffset(start, start+4*i, end, 4*int(count), i == 0)
	}
	if dec.err != nil {
		return nil
	}
	items := make([]Value, count)
	for i := range items {
		from, to := dec.region(base, i, end)
		items[i] = dec.decodeValue(elem, from, to)
		if dec.err != nil {
			return nil
		}
	}
	return items
}

// readOffset parses an offset at pos, relative to the enclosing value starting
// at start, validating it against the fixed area size (first offset only), the
// previous offset and the end of the enclosing value. The absolute position is
// pushed onto the offset stack.
func (dec *Decoder) readOffset(start, pos, end int, fixed int, first bool) {
	if dec.err != nil {
		return
	}
	offset := int(binary.LittleEndian.Uint32(dec.inBuffer[pos:]))
	if offset > end-start {
		dec.fail(ErrInvalidOffset, pos, "offset %d beyond capacity %d", offset, end-start)
		return
	}
	if first {
		if offset != fixed {
			dec.fail(ErrInvalidOffset, pos, "first offset %d, want %d", offset, fixed)
			return
		}
	} else if prev := dec.offsets[len(dec.offsets)-1]; start+offset < prev {
		dec.fail(ErrInvalidOffset, pos, "offset %d smaller than previous %d", offset, prev-start)
		return
	}
	dec.offsets = append(dec.offsets, start+offset)
}

// region returns the absolute bounds of the i-th dynamic item whose offsets
// were pushed starting at base. The last item extends to end.
func (dec *Decoder) region(base, i, end int) (int, int) {
	from := dec.offsets[base+i]
	if base+i+1 < len(dec.offsets) {
		return from, dec.offsets[base+i+1]
	}
	return from, end
}

// decodeContainer parses the fixed area of a container, then its dynamic fields
// from the regions delimited by the offset table.
func (dec *Decoder) decodeContainer(t *Type, start, end int) *Object {
	if end-start < int(t.size) {
		dec.fail(ErrMalformedLength, start, "%s fixed area needs %d bytes, have %d", t, t.size, end-start)
		return nil
	}
	obj := &Object{Type: t, Fields: make([]Value, len(t.fields))}

	base := len(dec.offsets)
	defer func() { dec.offsets = dec.offsets[:base] }()

	pos := start
	for i, field := range t.fields {
		if field.Type.fixed {
			obj.Fields[i] = dec.decodeValue(field.Type, pos, pos+int(field.Type.size))
			pos += int(field.Type.size)
		} else {
			dec.readOffset(start, pos, end, int(t.size), len(dec.offsets) == base)
			pos += 4
		}
		if dec.err != nil {
			return nil
		}
	}
	if t.fixed {
		return obj
	}
	dyn := 0
	for i, field := range t.fields {
		if field.Type.fixed {
			continue
		}
		from, to := dec.region(base, dyn, end)
		obj.Fields[i] = dec.decodeValue(field.Type, from, to)
		if dec.err != nil {
			return nil
		}
		dyn++
	}
	return obj
}

// decodeUnion parses the selector byte and the selected variant.
func (dec *Decoder) decodeUnion(t *Type, start, end int) *Selection {
	if end-start < 1 {
		dec.fail(ErrMalformedLength, start, "union selector missing")
		return nil
	}
	selector := dec.inBuffer[start]
	if int(selector) >= len(t.variants) {
		dec.fail(ErrInvalidUnionSelector, start, "selector %d, variants %d", selector, len(t.variants))
		return nil
	}
	variant := t.variants[selector]
	if variant == nil {
		if end-start != 1 {
			dec.fail(ErrMalformedLength, start+1, "None variant with %d trailing bytes", end-start-1)
			return nil
		}
		return &Selection{Selector: selector}
	}
	value := dec.decodeValue(variant, start+1, end)
	if dec.err != nil {
		return nil
	}
	return &Selection{Selector: selector, Value: value}
}

// decodeBitvector parses a packed bit array, rejecting set padding bits.
func (dec *Decoder) decodeBitvector(t *Type, start, end int) []byte {
	if rest := t.length % 8; rest != 0 {
		if dec.inBuffer[end-1]>>rest != 0 {
			dec.fail(ErrJunkInBitvector, end-1, "padding bits set in %08b", dec.inBuffer[end-1])
			return nil
		}
	}
	return append([]byte{}, dec.inBuffer[start:end]...)
}

// decodeBitlist parses a packed bit array terminated by a length sentinel.
func (dec *Decoder) decodeBitlist(t *Type, start, end int) bitfield.Bitlist {
	size := end - start
	if size == 0 {
		dec.fail(ErrInvalidBitlistLength, start, "length bit missing")
		return nil
	}
	if maxBytes := t.limit/8 + 1; uint64(size) > maxBytes {
		dec.fail(ErrCapacityExceeded, start, "decoded %d bytes, max %d", size, maxBytes)
		return nil
	}
	high := dec.inBuffer[end-1]
	if high == 0 {
		dec.fail(ErrInvalidBitlistLength, end-1, "length bit missing from last byte")
		return nil
	}
	if length := uint64(8*(size-1) + bits.Len8(high) - 1); length > t.limit {
		dec.fail(ErrInvalidBitlistLength, end-1, "decoded %d bits, max %d", length, t.limit)
		return nil
	}
	return append(bitfield.Bitlist{}, dec.inBuffer[start:end]...)
}

// DecodeScalar parses the little-endian encoding of a bool or unsigned integer.
func DecodeScalar(t *Type, blob []byte) (Value, error) {
	if !t.IsBasic() {
		panic("ssz: non-scalar type: " + t.String())
	}
	v, err := decodeScalar(t, blob, 0)
	if err != nil {
		return nil, err
	}
	return v, nil
}

// decodeScalar parses a basic value whose encoding starts at the given absolute
// offset (used only for error reporting).
func decodeScalar(t *Type, blob []byte, offset int) (Value, *Error) {
	if len(blob) != int(t.size) {
		return nil, newError(ErrMalformedLength, offset, "%s needs %d bytes, have %d", t, t.size, len(blob))
	}
	if t.kind == KindBool {
		switch blob[0] {
		case 0:
			return false, nil
		case 1:
			return true, nil
		default:
			return nil, newError(ErrInvalidBoolean, offset, "byte %#02x", blob[0])
		}
	}
	switch t.bits {
	case 8:
		return blob[0], nil
	case 16:
		return binary.LittleEndian.Uint16(blob), nil
	case 32:
		return binary.LittleEndian.Uint32(blob), nil
	case 64:
		return binary.LittleEndian.Uint64(blob), nil
	default:
		n := new(uint256.Int)
		for limb := 0; limb < t.bits/64; limb++ {
			n[limb] = binary.LittleEndian.Uint64(blob[8*limb:])
		}
		return n, nil
	}
}
