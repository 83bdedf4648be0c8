// ssz: Go Simple Serialize (SSZ) codec library
// Copyright 2024 ssz Authors
// SPDX-License-Identifier: BSD-3-Clause

package ssz

import (
	"fmt"

	"github.com/prysmaticlabs/go-bitfield"
)

// sizeOf returns the serialized size of a value. Fixed types short circuit to
// their precomputed size, dynamic ones recurse into their dynamic parts.
func sizeOf(t *Type, v Value) uint32 {
	if t.fixed {
		return t.size
	}
	switch t.kind {
	case KindList:
		if t.IsBytes() {
			return uint32(len(v.([]byte)))
		}
		items := v.([]Value)
		if t.elem.fixed {
			return uint32(len(items)) * t.elem.size
		}
		return sizeOfDynamicItems(t.elem, items)

	case KindVector:
		return sizeOfDynamicItems(t.elem, v.([]Value))

	case KindBitlist:
		return uint32(len(v.(bitfield.Bitlist)))

	case KindContainer:
		obj := v.(*Object)

		size := t.size
		for i, field := range t.fields {
			if !field.Type.fixed {
				size += sizeOf(field.Type, obj.Fields[i])
			}
		}
		return size

	case KindUnion:
		sel := v.(*Selection)
		if t.variants[sel.Selector] == nil {
			return 1
		}
		return 1 + sizeOf(t.variants[sel.Selector], sel.Value)

	default:
		panic(fmt.Sprintf("ssz: unsupported type: %s", t))
	}
}

// sizeOfDynamicItems returns the serialized size of a sequence of dynamic
// items, each prefixed by its 4-byte offset.
func sizeOfDynamicItems(elem *Type, items []Value) uint32 {
	var size uint32
	for _, item := range items {
		size += 4 + sizeOf(elem, item) // 4-byte offset + dynamic data later
	}
	return size
}
