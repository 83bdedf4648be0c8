// ssz: Go Simple Serialize (SSZ) codec library
// Copyright 2024 ssz Authors
// SPDX-License-Identifier: BSD-3-Clause

// ssztool is a command line utility to inspect, convert and hash consensus
// containers in their SSZ and beacon-API JSON forms.
package main

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/beaconkit/ssz/binding"
	"github.com/beaconkit/ssz/presets"
	"github.com/beaconkit/ssz/registry"
	"github.com/ledgerwatch/log/v3"
	"github.com/urfave/cli/v2"
)

var (
	VerbosityFlag = cli.IntFlag{
		Name:  "verbosity",
		Usage: "Logging verbosity: 0=crit, 1=error, 2=warn, 3=info, 4=debug, 5=trace",
		Value: int(log.LvlInfo),
	}
	PresetFileFlag = cli.StringSliceFlag{
		Name:  "preset-file",
		Usage: "Custom preset YAML files to register, named after the file",
	}
	PresetBaseFlag = cli.StringFlag{
		Name:  "preset-base",
		Usage: "Built-in preset the custom preset files override",
		Value: presets.Mainnet.Name(),
	}
	CacheSizeFlag = cli.IntFlag{
		Name:  "root-cache",
		Usage: "Number of Merkle roots to cache",
		Value: binding.DefaultCacheSize,
	}
)

func main() {
	if err := newApp().Run(os.Args); err != nil {
		_, _ = fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

// newApp assembles the command line application.
func newApp() *cli.App {
	app := cli.NewApp()
	app.Name = "ssztool"
	app.Usage = "Inspect, convert and hash consensus SSZ containers"
	app.UsageText = app.Name + ` [global flags] command [flags] [arguments]`

	app.Commands = []*cli.Command{
		&typesCommand,
		&decodeCommand,
		&encodeCommand,
		&rootCommand,
		&headerCommand,
		&signCommand,
		&presetCommand,
	}
	app.Flags = []cli.Flag{
		&VerbosityFlag,
		&PresetFileFlag,
		&PresetBaseFlag,
		&CacheSizeFlag,
	}
	app.Before = func(ctx *cli.Context) error {
		handler := log.StreamHandler(os.Stderr, log.TerminalFormat())
		log.Root().SetHandler(log.LvlFilterHandler(log.Lvl(ctx.Int(VerbosityFlag.Name)), handler))
		return nil
	}
	return app
}

// makeCodec assembles the registry of the built-in and custom presets, and
// wraps it into a codec.
func makeCodec(ctx *cli.Context) (*binding.Codec, error) {
	reg := registry.Default()

	if files := ctx.StringSlice(PresetFileFlag.Name); len(files) > 0 {
		base, err := presets.Lookup(ctx.String(PresetBaseFlag.Name))
		if err != nil {
			return nil, err
		}
		all := presets.Builtins()
		for _, file := range files {
			preset, err := loadPreset(file, base)
			if err != nil {
				return nil, err
			}
			log.Debug("Loaded custom preset", "name", preset.Name(), "base", base.Name(), "file", file)
			all = append(all, preset)
		}
		if reg, err = registry.New(all...); err != nil {
			return nil, err
		}
	}
	return binding.NewCodec(reg, ctx.Int(CacheSizeFlag.Name))
}

// loadPreset reads a preset YAML file, naming the preset after the file.
func loadPreset(path string, base *presets.Preset) (*presets.Preset, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()

	name := strings.TrimSuffix(filepath.Base(path), filepath.Ext(path))
	return presets.Load(name, f, base)
}
