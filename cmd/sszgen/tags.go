// ssz: Go Simple Serialize (SSZ) codec library
// Copyright 2024 ssz Authors
// SPDX-License-Identifier: BSD-3-Clause

package main

import (
	"fmt"
	"reflect"
	"regexp"
	"strconv"
	"strings"
)

const (
	sszTagIdent     = "ssz"
	sszSizeTagIdent = "ssz-size"
	sszMaxTagIdent  = "ssz-max"
	sszForkTagIdent = "ssz-fork"
	jsonTagIdent    = "json"
)

// constantRegexp matches the names of preset constants.
var constantRegexp = regexp.MustCompile(`^[A-Z][A-Z0-9_]*$`)

// sizeTag describes the size restrictions and fork constraints of a field.
// Sizes and limits are given per dimension, outermost first, with the empty
// string meaning undefined in that dimension.
type sizeTag struct {
	size  []string // Fixed lengths, integers or preset constant products
	limit []string // Maximum lengths, integers or preset constant products
	bits  bool     // Whether a byte array should be handled as a bitfield
	fork  string   // Fork filter, "name" for added or "!name" for removed
	name  string   // Name of the field in the container, from the json tag
}

// sizeAt returns the fixed length of a dimension, if any.
func (t *sizeTag) sizeAt(dim int) string {
	if t == nil || dim >= len(t.size) {
		return ""
	}
	return t.size[dim]
}

// limitAt returns the maximum length of a dimension, if any.
func (t *sizeTag) limitAt(dim int) string {
	if t == nil || dim >= len(t.limit) {
		return ""
	}
	return t.limit[dim]
}

// parseTag parses the struct tag of a field, returning whether it should be
// ignored.
func parseTag(input string) (bool, *sizeTag, error) {
	tag := reflect.StructTag(input)
	out := new(sizeTag)

	if v, ok := tag.Lookup(sszTagIdent); ok {
		switch v {
		case "-":
			return true, nil, nil
		case "bits":
			out.bits = true
		default:
			return false, nil, fmt.Errorf("invalid %s tag %q", sszTagIdent, v)
		}
	}
	for _, spec := range []struct {
		ident string
		dst   *[]string
	}{
		{sszSizeTagIdent, &out.size},
		{sszMaxTagIdent, &out.limit},
	} {
		v, ok := tag.Lookup(spec.ident)
		if !ok {
			continue
		}
		for _, dim := range strings.Split(v, ",") {
			if dim == "?" {
				*spec.dst = append(*spec.dst, "")
				continue
			}
			expr, err := sizeExpr(dim)
			if err != nil {
				return false, nil, fmt.Errorf("invalid %s tag: %v", spec.ident, err)
			}
			*spec.dst = append(*spec.dst, expr)
		}
	}
	if v, ok := tag.Lookup(sszForkTagIdent); ok {
		if err := parseForkTag(v); err != nil {
			return false, nil, fmt.Errorf("invalid %s tag: %v", sszForkTagIdent, err)
		}
		out.fork = v
	}
	if v, ok := tag.Lookup(jsonTagIdent); ok {
		if name, _, _ := strings.Cut(v, ","); name != "" && name != "-" {
			out.name = name
		}
	}
	return false, out, nil
}

// sizeExpr converts a size tag value into a Go expression. Values are products
// of integers and preset constant names, the latter read from the preset p of
// the generated constructor.
func sizeExpr(value string) (string, error) {
	factors := strings.Split(value, "*")
	for i, factor := range factors {
		factor = strings.TrimSpace(factor)
		switch {
		case constantRegexp.MatchString(factor):
			factors[i] = fmt.Sprintf("p.Value(%q)", factor)
		default:
			if _, err := strconv.ParseUint(factor, 10, 64); err != nil {
				return "", fmt.Errorf("invalid size %q", factor)
			}
			factors[i] = factor
		}
	}
	return strings.Join(factors, "*"), nil
}
