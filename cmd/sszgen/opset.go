// ssz: Go Simple Serialize (SSZ) codec library
// Copyright 2024 ssz Authors
// SPDX-License-Identifier: BSD-3-Clause

package main

import (
	"fmt"
	"go/types"
	"strconv"
)

// opset is the Go expression constructing the ssz type descriptor of a struct
// field. Nested containers are referenced through their own generated
// constructors, forwarding the fork and preset.
type opset string

// parseContext carries the package being generated for.
type parseContext struct {
	pkg *types.Package
}

// resolveOpset retrieves the descriptor expression of a type, where dim is the
// nesting dimension within the field used to index into the size tags.
func (p *parseContext) resolveOpset(typ types.Type, tags *sizeTag, dim int) (opset, error) {
	switch t := typ.(type) {
	case *types.Named:
		if isUint256(t) {
			return p.resolveUint256Opset(tags, dim)
		}
		if isBitlist(t) {
			return p.resolveBitlistOpset(tags, dim)
		}
		if bits, ok := bitvectorSize(t); ok {
			return opset(fmt.Sprintf("ssz.Bitvector(%d)", bits)), nil
		}
		if _, ok := t.Underlying().(*types.Struct); ok {
			return p.resolveContainerOpset(t, tags, dim)
		}
		return p.resolveOpset(t.Underlying(), tags, dim)

	case *types.Pointer:
		return p.resolvePointerOpset(t, tags, dim)

	case *types.Basic:
		return p.resolveBasicOpset(t, tags, dim)

	case *types.Array:
		return p.resolveArrayOpset(t, tags, dim)

	case *types.Slice:
		return p.resolveSliceOpset(t, tags, dim)
	}
	return "", fmt.Errorf("unsupported type %s", typ.String())
}

// resolveBasicOpset retrieves the descriptor of a basic struct field.
func (p *parseContext) resolveBasicOpset(typ *types.Basic, tags *sizeTag, dim int) (opset, error) {
	if tags.limitAt(dim) != "" {
		return "", fmt.Errorf("basic type cannot have ssz-max tag")
	}
	switch typ.Kind() {
	case types.Bool:
		return "ssz.Bool()", nil
	case types.Uint8:
		return "ssz.Uint8()", nil
	case types.Uint16:
		return "ssz.Uint16()", nil
	case types.Uint32:
		return "ssz.Uint32()", nil
	case types.Uint64:
		return "ssz.Uint64()", nil
	default:
		return "", fmt.Errorf("unsupported basic type: %s", typ)
	}
}

// resolveUint256Opset retrieves the descriptor of a uint256.Int field, which
// may be narrowed down to 128 bits via an ssz-size of 16 bytes.
func (p *parseContext) resolveUint256Opset(tags *sizeTag, dim int) (opset, error) {
	if tags.limitAt(dim) != "" {
		return "", fmt.Errorf("uint256 basic type cannot have ssz-max tag")
	}
	switch size := tags.sizeAt(dim); size {
	case "", "32":
		return "ssz.Uint256()", nil
	case "16":
		return "ssz.Uint128()", nil
	default:
		return "", fmt.Errorf("uint256 basic type tag conflict: field is [16] or [32] bytes, tag wants %s", size)
	}
}

func (p *parseContext) resolveBitlistOpset(tags *sizeTag, dim int) (opset, error) {
	if tags.sizeAt(dim) != "" {
		return "", fmt.Errorf("slice of bits type cannot have ssz-size tag")
	}
	limit := tags.limitAt(dim)
	if limit == "" {
		return "", fmt.Errorf("slice of bits type requires ssz-max tag")
	}
	return opset(fmt.Sprintf("ssz.Bitlist(%s)", limit)), nil
}

func (p *parseContext) resolveContainerOpset(typ *types.Named, tags *sizeTag, dim int) (opset, error) {
	if tags.sizeAt(dim) != "" || tags.limitAt(dim) != "" {
		return "", fmt.Errorf("container type cannot have size tags")
	}
	if typ.Obj().Pkg() != p.pkg {
		return "", fmt.Errorf("container type %s outside of package %s", typ, p.pkg.Path())
	}
	return opset(fmt.Sprintf("%s(fork, p)", constructorName(typ.Obj().Name()))), nil
}

func (p *parseContext) resolvePointerOpset(typ *types.Pointer, tags *sizeTag, dim int) (opset, error) {
	if isUint256(typ.Elem()) {
		return p.resolveUint256Opset(tags, dim)
	}
	if named, ok := typ.Elem().(*types.Named); ok {
		if _, ok := named.Underlying().(*types.Struct); ok {
			return p.resolveContainerOpset(named, tags, dim)
		}
	}
	return "", fmt.Errorf("unsupported pointer type %s", typ.String())
}

func (p *parseContext) resolveArrayOpset(typ *types.Array, tags *sizeTag, dim int) (opset, error) {
	if tags.limitAt(dim) != "" {
		return "", fmt.Errorf("array type cannot have ssz-max tag")
	}
	size := tags.sizeAt(dim)
	if isByte(typ.Elem()) {
		// If the byte array is a packed bitvector, the bit count may be less
		// than the array capacity
		if tags != nil && tags.bits {
			if size == "" {
				return opset(fmt.Sprintf("ssz.Bitvector(%d)", typ.Len()*8)), nil
			}
			if bits, err := strconv.ParseInt(size, 10, 64); err == nil && (bits <= (typ.Len()-1)*8 || bits > typ.Len()*8) {
				return "", fmt.Errorf("array of bits tag conflict: field supports %d-%d bits, tag wants %d bits", (typ.Len()-1)*8+1, typ.Len()*8, bits)
			}
			return opset(fmt.Sprintf("ssz.Bitvector(%s)", size)), nil
		}
		if err := checkArraySize(typ, size); err != nil {
			return "", err
		}
		return opset(fmt.Sprintf("ssz.ByteVector(%d)", typ.Len())), nil
	}
	if err := checkArraySize(typ, size); err != nil {
		return "", err
	}
	elem, err := p.resolveOpset(typ.Elem(), tags, dim+1)
	if err != nil {
		return "", err
	}
	return opset(fmt.Sprintf("ssz.Vector(%s, %d)", elem, typ.Len())), nil
}

func (p *parseContext) resolveSliceOpset(typ *types.Slice, tags *sizeTag, dim int) (opset, error) {
	var (
		size  = tags.sizeAt(dim)
		limit = tags.limitAt(dim)
	)
	if size != "" && limit != "" {
		return "", fmt.Errorf("slice type cannot have both ssz-size and ssz-max tags in dimension %d", dim)
	}
	if size == "" && limit == "" {
		return "", fmt.Errorf("slice type requires ssz-size or ssz-max tag in dimension %d", dim)
	}
	if isByte(typ.Elem()) {
		if tags.bits {
			return "", fmt.Errorf("slice of bits must use bitfield.Bitlist")
		}
		if size != "" {
			return opset(fmt.Sprintf("ssz.ByteVector(%s)", size)), nil
		}
		return opset(fmt.Sprintf("ssz.ByteList(%s)", limit)), nil
	}
	elem, err := p.resolveOpset(typ.Elem(), tags, dim+1)
	if err != nil {
		return "", err
	}
	if size != "" {
		return opset(fmt.Sprintf("ssz.Vector(%s, %s)", elem, size)), nil
	}
	return opset(fmt.Sprintf("ssz.List(%s, %s)", elem, limit)), nil
}

// checkArraySize rejects numeric ssz-size tags contradicting an array length.
func checkArraySize(typ *types.Array, size string) error {
	if size == "" {
		return nil
	}
	if n, err := strconv.ParseInt(size, 10, 64); err == nil && n != typ.Len() {
		return fmt.Errorf("array tag conflict: field is %d items, tag wants %d", typ.Len(), n)
	}
	return nil
}

func isByte(typ types.Type) bool {
	basic, ok := typ.(*types.Basic)
	return ok && basic.Kind() == types.Byte
}
