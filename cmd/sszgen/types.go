// ssz: Go Simple Serialize (SSZ) codec library
// Copyright 2024 ssz Authors
// SPDX-License-Identifier: BSD-3-Clause

package main

import (
	"fmt"
	"go/types"
)

type sszContainer struct {
	*types.Struct
	named  *types.Named
	fields []string // Go names of the encoded fields
	names  []string // Container names of the encoded fields
	forks  []string // Fork tags of the encoded fields, empty if unconstrained
	opsets []opset
}

func (p *parseContext) newContainer(named *types.Named, typ *types.Struct) (*sszContainer, error) {
	cont := &sszContainer{
		Struct: typ,
		named:  named,
	}
	seen := make(map[string]string)

	// Iterate over all the fields of the struct
	for i := 0; i < typ.NumFields(); i++ {
		// Skip private fields, and skip ignored ssz fields
		f := typ.Field(i)
		if !f.Exported() {
			continue
		}
		ignore, tags, err := parseTag(typ.Tag(i))
		if err != nil {
			return nil, fmt.Errorf("failed to parse field %s.%s tags: %v", named.Obj().Name(), f.Name(), err)
		}
		if ignore {
			continue
		}
		// Required field found, validate type with tag content
		opset, err := p.resolveOpset(f.Type(), tags, 0)
		if err != nil {
			return nil, fmt.Errorf("failed to validate field %s.%s: %v", named.Obj().Name(), f.Name(), err)
		}
		name := tags.name
		if name == "" {
			name = snakeCase(f.Name())
		}
		// Fields with the same name are only allowed to exist in disjoint forks,
		// which cannot be verified here for fork-less fields
		if prev, ok := seen[name]; ok && (prev == "" || tags.fork == "") {
			return nil, fmt.Errorf("duplicate field name %q in %s", name, named.Obj().Name())
		}
		seen[name] = tags.fork

		cont.fields = append(cont.fields, f.Name())
		cont.names = append(cont.names, name)
		cont.forks = append(cont.forks, tags.fork)
		cont.opsets = append(cont.opsets, opset)
	}
	if len(cont.fields) == 0 {
		return nil, fmt.Errorf("container %s has no ssz fields", named.Obj().Name())
	}
	return cont, nil
}
