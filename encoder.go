// ssz: Go Simple Serialize (SSZ) codec library
// Copyright 2024 ssz Authors
// SPDX-License-Identifier: BSD-3-Clause

package ssz

import (
	"encoding/binary"
	"fmt"
	"io"

	"github.com/holiman/uint256"
	"github.com/prysmaticlabs/go-bitfield"
)

// Some helpers to avoid occasional allocations
var (
	encoderBoolFalse = []byte{0x00}
	encoderBoolTrue  = []byte{0x01}
)

// Encoder is a wrapper around an io.Writer or a []byte buffer to implement dense
// SSZ encoding. It has the following behaviors:
//
//  1. The encoder does not buffer, simply writes to the wrapped output stream
//     directly. If you need buffering (and flushing), that is up to you.
//
//  2. The encoder does not return errors that were hit during writing to the
//     underlying output stream from individual encoding methods. Internally an
//     error will halt all future output operations.
//
//  3. The offsets for dynamic fields are computed from the sizes of the values
//     preceding them, so every dynamic item is written in a single pass.
//
//  4. The encoder does not tolerate values that violate their descriptor. If the
//     caller provided bad data to encode, it is a programming error and a runtime
//     error will not fix anything, so it panics.
type Encoder struct {
	outWriter io.Writer // Underlying output stream to write into (streaming mode)
	outBuffer []byte    // Underlying output buffer to write into (buffered mode)

	err error    // Any write error to halt future encoding calls
	buf [32]byte // Integer conversion buffer
}

// write appends a blob to the output, either the stream or the buffer.
func (enc *Encoder) write(blob []byte) {
	if enc.err != nil {
		return
	}
	if enc.outWriter != nil {
		_, enc.err = enc.outWriter.Write(blob)
		return
	}
	enc.outBuffer = enc.outBuffer[copy(enc.outBuffer, blob):]
}

// encodeOffset serializes a dynamic item offset as a uint32 little-endian.
func (enc *Encoder) encodeOffset(offset uint32) {
	binary.LittleEndian.PutUint32(enc.buf[:4], offset)
	enc.write(enc.buf[:4])
}

// encodeValue serializes a value of the given type into the output.
func (enc *Encoder) encodeValue(t *Type, v Value) {
	if enc.err != nil {
		return
	}
	switch t.kind {
	case KindBool, KindUint:
		enc.write(appendScalar(enc.buf[:0], t, v))

	case KindVector:
		if t.IsBytes() {
			blob := v.([]byte)
			if uint64(len(blob)) != t.length {
				panic(fmt.Sprintf("ssz: %s value of length %d", t, len(blob)))
			}
			enc.write(blob)
			return
		}
		items := v.([]Value)
		if uint64(len(items)) != t.length {
			panic(fmt.Sprintf("ssz: %s value of length %d", t, len(items)))
		}
		enc.encodeItems(t.elem, items)

	case KindList:
		if t.IsBytes() {
			blob := v.([]byte)
			if uint64(len(blob)) > t.limit {
				panic(fmt.Sprintf("ssz: %s value of length %d", t, len(blob)))
			}
			enc.write(blob)
			return
		}
		items := v.([]Value)
		if uint64(len(items)) > t.limit {
			panic(fmt.Sprintf("ssz: %s value of length %d", t, len(items)))
		}
		enc.encodeItems(t.elem, items)

	case KindBitvector:
		bits := v.([]byte)
		if uint32(len(bits)) != t.size {
			panic(fmt.Sprintf("ssz: %s value of %d bytes", t, len(bits)))
		}
		enc.write(bits)

	case KindBitlist:
		bits := v.(bitfield.Bitlist)
		if len(bits) == 0 || bits[len(bits)-1] == 0 {
			panic(fmt.Sprintf("ssz: %s value without length bit", t))
		}
		if bits.Len() > t.limit {
			panic(fmt.Sprintf("ssz: %s value of %d bits", t, bits.Len()))
		}
		enc.write(bits)

	case KindContainer:
		obj := v.(*Object)
		if len(obj.Fields) != len(t.fields) {
			panic(fmt.Sprintf("ssz: %s value with %d fields", t, len(obj.Fields)))
		}
		// Write the fixed area first with offsets in place of the dynamic
		// fields, then the dynamic fields themselves in declaration order
		offset := t.size
		for i, field := range t.fields {
			if field.Type.fixed {
				enc.encodeValue(field.Type, obj.Fields[i])
			} else {
				enc.encodeOffset(offset)
				offset += sizeOf(field.Type, obj.Fields[i])
			}
		}
		for i, field := range t.fields {
			if !field.Type.fixed {
				enc.encodeValue(field.Type, obj.Fields[i])
			}
		}

	case KindUnion:
		sel := v.(*Selection)
		if int(sel.Selector) >= len(t.variants) {
			panic(fmt.Sprintf("ssz: %s value with selector %d", t, sel.Selector))
		}
		enc.buf[0] = sel.Selector
		enc.write(enc.buf[:1])
		if variant := t.variants[sel.Selector]; variant != nil {
			enc.encodeValue(variant, sel.Value)
		}

	default:
		panic(fmt.Sprintf("ssz: unsupported type: %s", t))
	}
}

// encodeItems serializes the items of a vector or list. Basic items are packed
// back to back, dynamic ones are preceded by an offset table.
func (enc *Encoder) encodeItems(elem *Type, items []Value) {
	if elem.fixed {
		for _, item := range items {
			enc.encodeValue(elem, item)
		}
		return
	}
	offset := uint32(4 * len(items))
	for _, item := range items {
		enc.encodeOffset(offset)
		offset += sizeOf(elem, item)
	}
	for _, item := range items {
		enc.encodeValue(elem, item)
	}
}

// EncodeScalar serializes a bool or unsigned integer value as little-endian.
func EncodeScalar(t *Type, v Value) []byte {
	if !t.IsBasic() {
		panic(fmt.Sprintf("ssz: non-scalar type: %s", t))
	}
	return appendScalar(make([]byte, 0, t.size), t, v)
}

// appendScalar appends the little-endian encoding of a basic value to dst.
func appendScalar(dst []byte, t *Type, v Value) []byte {
	if t.kind == KindBool {
		if v.(bool) {
			return append(dst, encoderBoolTrue...)
		}
		return append(dst, encoderBoolFalse...)
	}
	switch t.bits {
	case 8:
		return append(dst, v.(uint8))
	case 16:
		return binary.LittleEndian.AppendUint16(dst, v.(uint16))
	case 32:
		return binary.LittleEndian.AppendUint32(dst, v.(uint32))
	case 64:
		return binary.LittleEndian.AppendUint64(dst, v.(uint64))
	default:
		n := v.(*uint256.Int)
		if n.BitLen() > t.bits {
			panic(fmt.Sprintf("ssz: %d bit value overflows uint%d", n.BitLen(), t.bits))
		}
		for limb := 0; limb < t.bits/64; limb++ {
			dst = binary.LittleEndian.AppendUint64(dst, n[limb])
		}
		return dst
	}
}
