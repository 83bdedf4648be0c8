// ssz: Go Simple Serialize (SSZ) codec library
// Copyright 2024 ssz Authors
// SPDX-License-Identifier: BSD-3-Clause

package main

import (
	"fmt"
	"strings"

	"github.com/beaconkit/ssz"
)

// parseForkTag validates an ssz-fork tag value. The tag names the fork a field
// is added in, or, prefixed with '!', the fork it is removed in.
func parseForkTag(tag string) error {
	name := strings.TrimPrefix(tag, "!")
	if _, ok := ssz.ForkMapping[name]; !ok {
		return fmt.Errorf("unknown fork %q", name)
	}
	return nil
}

// forkFilter renders the fork filter literal of a validated ssz-fork tag.
func forkFilter(tag string) string {
	removed := strings.HasPrefix(tag, "!")
	ident := forkIdent(ssz.ForkMapping[strings.TrimPrefix(tag, "!")])

	if removed {
		return "ssz.ForkFilter{Removed: " + ident + "}"
	}
	return "ssz.ForkFilter{Added: " + ident + "}"
}

// forkIdent returns the Go identifier of a fork, resolving aliases to their
// canonical consensus layer names.
func forkIdent(fork ssz.Fork) string {
	name := fork.String()
	return "ssz.Fork" + strings.ToUpper(name[:1]) + name[1:]
}
