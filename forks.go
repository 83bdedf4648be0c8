// ssz: Go Simple Serialize (SSZ) codec library
// Copyright 2024 ssz Authors
// SPDX-License-Identifier: BSD-3-Clause

package ssz

import (
	"fmt"
	"strings"
)

// Fork is an enum with all the consensus layer hard forks, which can be used
// to multiplex monolith container descriptors that span a range of forks.
//
// These enums are only meaningful in relation to one another, but are completely
// meaningless numbers otherwise. Do not persist them across code versions.
type Fork int

const (
	ForkUnknown Fork = iota // Placeholder if forks haven't been specified (must be index 0)

	ForkPhase0    // https://ethereum.org/en/history/#beacon-chain-genesis
	ForkAltair    // https://ethereum.org/en/history/#altair
	ForkBellatrix // https://ethereum.org/en/history/#bellatrix
	ForkCapella   // https://ethereum.org/en/history/#shapella
	ForkDeneb     // https://ethereum.org/en/history/#dencun
	ForkElectra   // https://ethereum.org/en/history/#pectra

	ForkFuture // Use this for specifying future features (must be last index, no gaps)

	ForkMerge    = ForkBellatrix // Common alias for Bellatrix
	ForkShapella = ForkCapella   // Combined EL+CL name for Capella
	ForkDencun   = ForkDeneb     // Combined EL+CL name for Deneb
	ForkPectra   = ForkElectra   // Combined EL+CL name for Electra
)

// ForkMapping maps fork names to fork values. This is used by the descriptor
// registry and the codec generator to convert names and tags to values.
var ForkMapping = map[string]Fork{
	"phase0":    ForkPhase0,
	"altair":    ForkAltair,
	"bellatrix": ForkBellatrix,
	"merge":     ForkMerge,
	"capella":   ForkCapella,
	"shapella":  ForkShapella,
	"deneb":     ForkDeneb,
	"dencun":    ForkDencun,
	"electra":   ForkElectra,
	"pectra":    ForkPectra,
	"future":    ForkFuture,
}

// forkNames is the canonical (consensus layer) name of each fork.
var forkNames = [...]string{
	ForkUnknown:   "unknown",
	ForkPhase0:    "phase0",
	ForkAltair:    "altair",
	ForkBellatrix: "bellatrix",
	ForkCapella:   "capella",
	ForkDeneb:     "deneb",
	ForkElectra:   "electra",
	ForkFuture:    "future",
}

// String implements fmt.Stringer.
func (f Fork) String() string {
	if f < 0 || int(f) >= len(forkNames) {
		return fmt.Sprintf("fork(%d)", int(f))
	}
	return forkNames[f]
}

// Forks returns all the concrete forks in activation order.
func Forks() []Fork {
	forks := make([]Fork, 0, ForkFuture-ForkPhase0)
	for f := ForkPhase0; f < ForkFuture; f++ {
		forks = append(forks, f)
	}
	return forks
}

// ParseFork converts a case insensitive fork name (or alias) into a fork value.
func ParseFork(name string) (Fork, error) {
	if fork, ok := ForkMapping[strings.ToLower(name)]; ok {
		return fork, nil
	}
	return ForkUnknown, fmt.Errorf("%w: fork %q", ErrUnknownType, name)
}

// ForkFilter can be used by container fields to define them appearing only in
// certain forks. Added is inclusive, Removed is exclusive; a zero value for
// either means unbounded in that direction.
type ForkFilter struct {
	Added   Fork
	Removed Fork
}

// Includes reports whether the filter permits the given fork.
func (f ForkFilter) Includes(fork Fork) bool {
	if f.Added != ForkUnknown && fork < f.Added {
		return false
	}
	if f.Removed != ForkUnknown && fork >= f.Removed {
		return false
	}
	return true
}
