// ssz: Go Simple Serialize (SSZ) codec library
// Copyright 2024 ssz Authors
// SPDX-License-Identifier: BSD-3-Clause

package ssz

import (
	"fmt"

	"github.com/holiman/uint256"
	"github.com/prysmaticlabs/go-bitfield"
)

// Value is an in-memory instance of an SSZ type. The concrete Go type depends
// on the descriptor kind:
//
//   - bool:                         bool
//   - uint8, uint16, uint32, uint64: uint8, uint16, uint32, uint64
//   - uint128, uint256:             *uint256.Int
//   - vector or list of uint8:      []byte
//   - other vectors and lists:      []Value
//   - bitvector:                    []byte, packed LSB first
//   - bitlist:                      bitfield.Bitlist, with length sentinel
//   - container:                    *Object
//   - union:                        *Selection
type Value any

// Object is the value of a container type.
type Object struct {
	Type   *Type
	Fields []Value
}

// NewObject creates a container value from the field values in order.
func NewObject(t *Type, fields ...Value) *Object {
	if t.kind != KindContainer {
		panic(fmt.Sprintf("ssz: object of non-container type %s", t))
	}
	if len(fields) != len(t.fields) {
		panic(fmt.Sprintf("ssz: container %s has %d fields, got %d", t, len(t.fields), len(fields)))
	}
	return &Object{Type: t, Fields: fields}
}

// Get retrieves a field value by name, panicking if the field does not exist.
func (o *Object) Get(name string) Value {
	i, ok := o.Type.index[name]
	if !ok {
		panic(fmt.Sprintf("ssz: container %s has no field %s", o.Type, name))
	}
	return o.Fields[i]
}

// Set replaces a field value by name, panicking if the field does not exist.
func (o *Object) Set(name string, v Value) {
	i, ok := o.Type.index[name]
	if !ok {
		panic(fmt.Sprintf("ssz: container %s has no field %s", o.Type, name))
	}
	o.Fields[i] = v
}

// Selection is the value of a union type.
type Selection struct {
	Selector uint8
	Value    Value // nil for the None variant
}

// Zero creates the default value of a type.
func Zero(t *Type) Value {
	switch t.kind {
	case KindBool:
		return false
	case KindUint:
		switch t.bits {
		case 8:
			return uint8(0)
		case 16:
			return uint16(0)
		case 32:
			return uint32(0)
		case 64:
			return uint64(0)
		default:
			return new(uint256.Int)
		}
	case KindVector:
		if t.IsBytes() {
			return make([]byte, t.length)
		}
		items := make([]Value, t.length)
		for i := range items {
			items[i] = Zero(t.elem)
		}
		return items
	case KindList:
		if t.IsBytes() {
			return []byte{}
		}
		return []Value{}
	case KindBitvector:
		return make([]byte, t.size)
	case KindBitlist:
		return bitfield.NewBitlist(0)
	case KindContainer:
		fields := make([]Value, len(t.fields))
		for i, field := range t.fields {
			fields[i] = Zero(field.Type)
		}
		return &Object{Type: t, Fields: fields}
	case KindUnion:
		if t.variants[0] == nil {
			return &Selection{}
		}
		return &Selection{Value: Zero(t.variants[0])}
	default:
		panic(fmt.Sprintf("ssz: unsupported type: %s", t))
	}
}

// Validate checks that a value conforms to its type descriptor. Encoding and
// hashing treat non-conforming values as programming errors and panic, so any
// value not produced by the decoder should be validated first.
func Validate(t *Type, v Value) error {
	return validate(t, v, "")
}

func validate(t *Type, v Value, path string) error {
	fail := func(format string, args ...any) error {
		return fmt.Errorf("%w: %s%s", ErrInvalidValue, pathPrefix(path), fmt.Sprintf(format, args...))
	}
	switch t.kind {
	case KindBool:
		if _, ok := v.(bool); !ok {
			return fail("want bool, have %T", v)
		}
	case KindUint:
		switch t.bits {
		case 8:
			if _, ok := v.(uint8); !ok {
				return fail("want uint8, have %T", v)
			}
		case 16:
			if _, ok := v.(uint16); !ok {
				return fail("want uint16, have %T", v)
			}
		case 32:
			if _, ok := v.(uint32); !ok {
				return fail("want uint32, have %T", v)
			}
		case 64:
			if _, ok := v.(uint64); !ok {
				return fail("want uint64, have %T", v)
			}
		default:
			n, ok := v.(*uint256.Int)
			if !ok || n == nil {
				return fail("want *uint256.Int, have %T", v)
			}
			if n.BitLen() > t.bits {
				return fail("%d bits overflow uint%d", n.BitLen(), t.bits)
			}
		}
	case KindVector, KindList:
		var count uint64
		if t.IsBytes() {
			blob, ok := v.([]byte)
			if !ok {
				return fail("want []byte, have %T", v)
			}
			count = uint64(len(blob))
		} else {
			items, ok := v.([]Value)
			if !ok {
				return fail("want []ssz.Value, have %T", v)
			}
			count = uint64(len(items))
			for i, item := range items {
				if err := validate(t.elem, item, fmt.Sprintf("%s[%d]", path, i)); err != nil {
					return err
				}
			}
		}
		if t.kind == KindVector && count != t.length {
			return fail("vector length %d, want %d", count, t.length)
		}
		if t.kind == KindList && count > t.limit {
			return fail("list length %d, limit %d", count, t.limit)
		}
	case KindBitvector:
		bits, ok := v.([]byte)
		if !ok {
			return fail("want []byte, have %T", v)
		}
		if uint32(len(bits)) != t.size {
			return fail("bitvector of %d bytes, want %d", len(bits), t.size)
		}
		if rest := t.length % 8; rest != 0 && bits[len(bits)-1]>>rest != 0 {
			return fail("bitvector padding bits set")
		}
	case KindBitlist:
		bits, ok := v.(bitfield.Bitlist)
		if !ok {
			return fail("want bitfield.Bitlist, have %T", v)
		}
		if len(bits) == 0 || bits[len(bits)-1] == 0 {
			return fail("bitlist length bit missing")
		}
		if bits.Len() > t.limit {
			return fail("bitlist length %d, limit %d", bits.Len(), t.limit)
		}
	case KindContainer:
		obj, ok := v.(*Object)
		if !ok || obj == nil {
			return fail("want *ssz.Object, have %T", v)
		}
		if obj.Type != t && obj.Type.name != t.name {
			return fail("object of type %s, want %s", obj.Type, t)
		}
		if len(obj.Fields) != len(t.fields) {
			return fail("object with %d fields, want %d", len(obj.Fields), len(t.fields))
		}
		for i, field := range t.fields {
			if err := validate(field.Type, obj.Fields[i], path+"."+field.Name); err != nil {
				return err
			}
		}
	case KindUnion:
		sel, ok := v.(*Selection)
		if !ok || sel == nil {
			return fail("want *ssz.Selection, have %T", v)
		}
		if int(sel.Selector) >= len(t.variants) {
			return fail("selector %d with %d variants", sel.Selector, len(t.variants))
		}
		variant := t.variants[sel.Selector]
		if variant == nil {
			if sel.Value != nil {
				return fail("None variant with value %T", sel.Value)
			}
			return nil
		}
		return validate(variant, sel.Value, fmt.Sprintf("%s<%d>", path, sel.Selector))
	}
	return nil
}

func pathPrefix(path string) string {
	if path == "" {
		return ""
	}
	return path + ": "
}
