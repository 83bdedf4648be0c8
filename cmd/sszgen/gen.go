// ssz: Go Simple Serialize (SSZ) codec library
// Copyright 2024 ssz Authors
// SPDX-License-Identifier: BSD-3-Clause

package main

import (
	"bytes"
	"fmt"
	"go/format"
	"go/types"
	"sort"
)

const (
	sszPkgPath     = "github.com/beaconkit/ssz"
	presetsPkgPath = "github.com/beaconkit/ssz/presets"
)

type genContext struct {
	pkg     *types.Package
	imports map[string]string
}

func newGenContext(pkg *types.Package) *genContext {
	return &genContext{
		pkg:     pkg,
		imports: make(map[string]string),
	}
}

func (ctx *genContext) addImport(path string, alias string) error {
	if path == ctx.pkg.Path() {
		return nil
	}
	if n, ok := ctx.imports[path]; ok && n != alias {
		return fmt.Errorf("conflict import %s(alias: %s-%s)", path, n, alias)
	}
	ctx.imports[path] = alias
	return nil
}

func (ctx *genContext) header() []byte {
	var paths sort.StringSlice
	for path := range ctx.imports {
		paths = append(paths, path)
	}
	sort.Sort(paths)

	var b bytes.Buffer
	fmt.Fprintf(&b, "// Code generated by github.com/beaconkit/ssz/cmd/sszgen. DO NOT EDIT.\n\n")
	fmt.Fprintf(&b, "package %s\n", ctx.pkg.Name())
	if len(paths) == 0 {
		return b.Bytes()
	}
	fmt.Fprintf(&b, "import (\n")
	for _, path := range paths {
		alias := ctx.imports[path]
		if alias == "" {
			fmt.Fprintf(&b, "\"%s\"\n", path)
		} else {
			fmt.Fprintf(&b, "%s \"%s\"\n", alias, path)
		}
	}
	fmt.Fprintf(&b, ")\n")
	return b.Bytes()
}

// constructorName returns the name of the generated descriptor constructor of
// a container type.
func constructorName(typeName string) string {
	return typeName + "SSZType"
}

func generateTypeSSZ(ctx *genContext, typ *sszContainer) ([]byte, error) {
	var b bytes.Buffer

	if err := ctx.addImport(sszPkgPath, ""); err != nil {
		return nil, err
	}
	if err := ctx.addImport(presetsPkgPath, ""); err != nil {
		return nil, err
	}
	name := typ.named.Obj().Name()

	fmt.Fprintf(&b, "// %s returns the ssz type descriptor of %s at a fork, with\n", constructorName(name), name)
	fmt.Fprint(&b, "// the list limits and vector lengths taken from a preset.\n")
	fmt.Fprintf(&b, "func %s(fork ssz.Fork, p *presets.Preset) *ssz.Type {\n", constructorName(name))
	fmt.Fprintf(&b, "return ssz.ContainerOnFork(%q, fork,\n", name)
	for i := range typ.fields {
		fmt.Fprintf(&b, "ssz.NewField(%q, %s)", typ.names[i], typ.opsets[i])
		if fork := typ.forks[i]; fork != "" {
			fmt.Fprintf(&b, ".OnFork(%s)", forkFilter(fork))
		}
		fmt.Fprint(&b, ",\n")
	}
	fmt.Fprint(&b, ")\n")
	fmt.Fprint(&b, "}\n")
	return b.Bytes(), nil
}

// generate assembles and formats the descriptor constructors of a set of
// containers into a Go source file.
func generate(ctx *genContext, conts []*sszContainer) ([]byte, error) {
	var codes [][]byte
	for _, typ := range conts {
		code, err := generateTypeSSZ(ctx, typ)
		if err != nil {
			return nil, err
		}
		codes = append(codes, code)
	}
	code := append(ctx.header(), '\n')
	code = append(code, bytes.Join(codes, []byte("\n"))...)

	formatted, err := format.Source(code)
	if err != nil {
		return nil, fmt.Errorf("failed to format generated code: %v\n%s", err, code)
	}
	return formatted, nil
}
