// ssz: Go Simple Serialize (SSZ) codec library
// Copyright 2024 ssz Authors
// SPDX-License-Identifier: BSD-3-Clause

package presets

import (
	"fmt"
	"io"
	"math/big"
	"strconv"
	"strings"

	"gopkg.in/yaml.v3"
)

// Load parses a preset file in the consensus-specs YAML layout (a flat mapping
// of constant names to values) and layers it on top of a base preset. Values
// may be plain integers, decimal or 0x-prefixed hex strings, or powers of two
// written as "2**k". A nil base starts from an empty table.
func Load(name string, r io.Reader, base *Preset) (*Preset, error) {
	var doc map[string]yaml.Node
	if err := yaml.NewDecoder(r).Decode(&doc); err != nil && err != io.EOF {
		return nil, fmt.Errorf("presets: failed to parse %s: %w", name, err)
	}
	values := make(map[string]uint64, len(doc))
	for key, node := range doc {
		if node.Kind != yaml.ScalarNode {
			return nil, fmt.Errorf("presets: %s: constant %s is not a scalar", name, key)
		}
		v, err := parseValue(node.Value)
		if err != nil {
			return nil, fmt.Errorf("presets: %s: constant %s: %w", name, key, err)
		}
		values[key] = v
	}
	if base == nil {
		return New(name, values), nil
	}
	return base.With(name, values), nil
}

// parseValue converts a textual preset value into an integer.
func parseValue(text string) (uint64, error) {
	text = strings.ReplaceAll(strings.TrimSpace(text), "_", "")
	if exp, ok := strings.CutPrefix(text, "2**"); ok {
		shift, err := strconv.ParseUint(exp, 10, 8)
		if err != nil || shift > 63 {
			return 0, fmt.Errorf("invalid power of two %q", text)
		}
		return 1 << shift, nil
	}
	n, ok := new(big.Int).SetString(text, 0)
	if !ok || n.Sign() < 0 || !n.IsUint64() {
		return 0, fmt.Errorf("invalid value %q", text)
	}
	return n.Uint64(), nil
}

// Dump writes a preset in the consensus-specs YAML layout, sorted by name.
func Dump(w io.Writer, p *Preset) error {
	var doc yaml.Node
	doc.Kind = yaml.MappingNode
	for _, name := range p.Names() {
		doc.Content = append(doc.Content,
			&yaml.Node{Kind: yaml.ScalarNode, Value: name},
			&yaml.Node{Kind: yaml.ScalarNode, Tag: "!!int", Value: strconv.FormatUint(p.values[name], 10)},
		)
	}
	enc := yaml.NewEncoder(w)
	enc.SetIndent(2)
	if err := enc.Encode(&doc); err != nil {
		return err
	}
	return enc.Close()
}
