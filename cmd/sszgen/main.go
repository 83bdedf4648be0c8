// ssz: Go Simple Serialize (SSZ) codec library
// Copyright 2024 ssz Authors
// SPDX-License-Identifier: BSD-3-Clause

// sszgen generates fork and preset parametrized ssz type descriptors from
// tagged Go structs.
package main

import (
	"fmt"
	"os"

	"github.com/ledgerwatch/log/v3"
	"github.com/urfave/cli/v2"
)

var (
	DirFlag = cli.StringFlag{
		Name:  "dir",
		Usage: "Directory of the Go package to parse",
		Value: ".",
	}
	TypesFlag = cli.StringSliceFlag{
		Name:  "type",
		Usage: "Struct types to generate descriptors for, all exported structs if unset",
	}
	OutFlag = cli.StringFlag{
		Name:  "out",
		Usage: "Output file for the generated code, stdout if unset",
	}
)

func main() {
	app := cli.NewApp()
	app.Name = "sszgen"
	app.Usage = "Generate ssz type descriptors from tagged Go structs"
	app.Flags = []cli.Flag{&DirFlag, &TypesFlag, &OutFlag}
	app.Action = run

	if err := app.Run(os.Args); err != nil {
		_, _ = fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func run(ctx *cli.Context) error {
	pkg, err := loadPackage(ctx.String(DirFlag.Name))
	if err != nil {
		return err
	}
	conts, err := parsePackage(pkg, ctx.StringSlice(TypesFlag.Name))
	if err != nil {
		return err
	}
	code, err := generate(newGenContext(pkg), conts)
	if err != nil {
		return err
	}
	out := ctx.String(OutFlag.Name)
	if out == "" {
		_, err = ctx.App.Writer.Write(code)
		return err
	}
	if err := os.WriteFile(out, code, 0o644); err != nil {
		return err
	}
	log.Info("Generated ssz descriptors", "package", pkg.Path(), "types", len(conts), "file", out)
	return nil
}
