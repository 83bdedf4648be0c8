// ssz: Go Simple Serialize (SSZ) codec library
// Copyright 2024 ssz Authors
// SPDX-License-Identifier: BSD-3-Clause

package consensus_spec_tests

import "github.com/prysmaticlabs/go-bitfield"

//go:generate go run ../../../cmd/sszgen --out gen_ssz.go

type SingleFieldTestStruct struct {
	A byte
}

type SmallTestStruct struct {
	A uint16
	B uint16
}

type FixedTestStruct struct {
	A uint8
	B uint64
	C uint32
}

type VarTestStruct struct {
	A uint16
	B []uint16 `ssz-max:"1024"`
	C uint8
}

type ComplexTestStruct struct {
	A uint16
	B []uint16 `ssz-max:"128"`
	C uint8
	D []byte `ssz-max:"256"`
	E VarTestStruct
	F [4]FixedTestStruct
	G [2]VarTestStruct
}

type BitsStruct struct {
	A bitfield.Bitlist `ssz-max:"5"`
	B [1]byte          `ssz-size:"2" ssz:"bits"`
	C [1]byte          `ssz-size:"1" ssz:"bits"`
	D bitfield.Bitlist `ssz-max:"6"`
	E [1]byte          `ssz-size:"8" ssz:"bits"`
}
