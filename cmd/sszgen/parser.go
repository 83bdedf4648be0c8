// ssz: Go Simple Serialize (SSZ) codec library
// Copyright 2024 ssz Authors
// SPDX-License-Identifier: BSD-3-Clause

package main

import (
	"errors"
	"fmt"
	"go/types"

	"golang.org/x/tools/go/packages"
)

// loadPackage type checks the Go package in a directory.
func loadPackage(dir string) (*types.Package, error) {
	config := &packages.Config{
		Mode: packages.NeedName | packages.NeedTypes | packages.NeedImports | packages.NeedDeps,
		Dir:  dir,
	}
	pkgs, err := packages.Load(config, ".")
	if err != nil {
		return nil, err
	}
	if len(pkgs) != 1 {
		return nil, fmt.Errorf("expected one package in %s, found %d", dir, len(pkgs))
	}
	if errs := pkgs[0].Errors; len(errs) > 0 {
		return nil, fmt.Errorf("failed to load %s: %v", dir, errors.Join(packagesErrors(errs)...))
	}
	return pkgs[0].Types, nil
}

func packagesErrors(errs []packages.Error) []error {
	out := make([]error, len(errs))
	for i, err := range errs {
		out[i] = err
	}
	return out
}

// parsePackage collects the containers to generate descriptors for. If no type
// names are given, all the exported structs of the package are used.
func parsePackage(pkg *types.Package, names []string) ([]*sszContainer, error) {
	if len(names) == 0 {
		for _, name := range pkg.Scope().Names() {
			obj := pkg.Scope().Lookup(name)
			if !obj.Exported() {
				continue
			}
			if _, _, err := lookupStruct(pkg.Scope(), name); err == nil {
				names = append(names, name)
			}
		}
	}
	p := &parseContext{pkg: pkg}

	var conts []*sszContainer
	for _, name := range names {
		named, str, err := lookupStruct(pkg.Scope(), name)
		if err != nil {
			return nil, err
		}
		typ, err := p.newContainer(named, str)
		if err != nil {
			return nil, err
		}
		conts = append(conts, typ)
	}
	return conts, nil
}

func lookupStruct(scope *types.Scope, name string) (*types.Named, *types.Struct, error) {
	obj := scope.Lookup(name)
	if obj == nil {
		return nil, nil, fmt.Errorf("identifier not found: %s", name)
	}
	typ, ok := obj.(*types.TypeName)
	if !ok {
		return nil, nil, fmt.Errorf("identifier not a type: %s", name)
	}
	dec, ok := typ.Type().(*types.Named)
	if !ok {
		return nil, nil, fmt.Errorf("identifier not a named type: %s", name)
	}
	str, ok := dec.Underlying().(*types.Struct)
	if !ok {
		return nil, nil, fmt.Errorf("identifier not a named struct: %s", name)
	}
	return dec, str, nil
}
