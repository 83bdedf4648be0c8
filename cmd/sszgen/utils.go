// ssz: Go Simple Serialize (SSZ) codec library
// Copyright 2024 ssz Authors
// SPDX-License-Identifier: BSD-3-Clause

package main

import (
	"go/types"
	"strconv"
	"strings"
	"unicode"
)

const (
	uint256PkgPath  = "github.com/holiman/uint256"
	bitfieldPkgPath = "github.com/prysmaticlabs/go-bitfield"
)

// isUint256 reports whether a type is uint256.Int.
func isUint256(typ types.Type) bool {
	return isNamed(typ, uint256PkgPath, "Int")
}

// isBitlist reports whether a type is bitfield.Bitlist.
func isBitlist(typ types.Type) bool {
	return isNamed(typ, bitfieldPkgPath, "Bitlist")
}

// bitvectorSize returns the bit count of the fixed size bitfield types, such
// as bitfield.Bitvector512.
func bitvectorSize(typ types.Type) (int, bool) {
	named, ok := typ.(*types.Named)
	if !ok || named.Obj().Pkg() == nil || named.Obj().Pkg().Path() != bitfieldPkgPath {
		return 0, false
	}
	bits, err := strconv.Atoi(strings.TrimPrefix(named.Obj().Name(), "Bitvector"))
	if err != nil || !strings.HasPrefix(named.Obj().Name(), "Bitvector") {
		return 0, false
	}
	return bits, true
}

func isNamed(typ types.Type, path string, name string) bool {
	named, ok := typ.(*types.Named)
	if !ok {
		return false
	}
	obj := named.Obj()
	return obj.Pkg() != nil && obj.Pkg().Path() == path && obj.Name() == name
}

// snakeCase converts a Go field name into the snake case naming convention of
// the consensus containers, keeping initialisms together (BLSToExecution ->
// bls_to_execution).
func snakeCase(name string) string {
	runes := []rune(name)

	var b strings.Builder
	for i, r := range runes {
		if unicode.IsUpper(r) && i > 0 {
			prev := runes[i-1]
			next := i+1 < len(runes) && unicode.IsLower(runes[i+1])
			if unicode.IsLower(prev) || unicode.IsDigit(prev) || (unicode.IsUpper(prev) && next) {
				b.WriteByte('_')
			}
		}
		b.WriteRune(unicode.ToLower(r))
	}
	return b.String()
}
