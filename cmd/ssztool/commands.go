// ssz: Go Simple Serialize (SSZ) codec library
// Copyright 2024 ssz Authors
// SPDX-License-Identifier: BSD-3-Clause

package main

import (
	"errors"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/beaconkit/ssz"
	"github.com/beaconkit/ssz/binding"
	"github.com/beaconkit/ssz/presets"
	"github.com/beaconkit/ssz/registry"
	"github.com/ethereum/go-ethereum/common/hexutil"
	"github.com/golang/snappy"
	jsoniter "github.com/json-iterator/go"
	"github.com/ledgerwatch/log/v3"
	"github.com/urfave/cli/v2"
)

var (
	TypeFlag = cli.StringFlag{
		Name:     "type",
		Usage:    "Type id of the container as fork/preset/kind, e.g. electra/mainnet/SignedBeaconBlock",
		Required: true,
	}
	JSONFlag = cli.BoolFlag{
		Name:  "json",
		Usage: "Read the input as beacon-API JSON instead of SSZ",
	}
	OutputFlag = cli.StringFlag{
		Name:  "out",
		Usage: "File to write the output into, stdout if unset",
	}
	SnappyFlag = cli.BoolFlag{
		Name:  "snappy",
		Usage: "Snappy compress the SSZ output",
	}
	SignatureFlag = cli.StringFlag{
		Name:     "signature",
		Usage:    "Hex encoded 96 byte BLS signature",
		Required: true,
	}
	ForkFilterFlag = cli.StringFlag{
		Name:  "fork",
		Usage: "Only list types of this fork",
	}
	PresetFilterFlag = cli.StringFlag{
		Name:  "preset",
		Usage: "Only list types of this preset",
	}
)

var typesCommand = cli.Command{
	Action: listTypes,
	Name:   "types",
	Usage:  "List the registered container types",
	Flags: []cli.Flag{
		&ForkFilterFlag,
		&PresetFilterFlag,
	},
}

var decodeCommand = cli.Command{
	Action:    decodeObject,
	Name:      "decode",
	Usage:     "Decode an SSZ container into beacon-API JSON",
	ArgsUsage: "<file.ssz|file.ssz_snappy|->",
	Flags: []cli.Flag{
		&TypeFlag,
		&OutputFlag,
	},
}

var encodeCommand = cli.Command{
	Action:    encodeObject,
	Name:      "encode",
	Usage:     `Encode a beacon-API JSON container ({"data": ...}) into SSZ`,
	ArgsUsage: "<file.json|->",
	Flags: []cli.Flag{
		&TypeFlag,
		&OutputFlag,
		&SnappyFlag,
	},
}

var rootCommand = cli.Command{
	Action:    hashObject,
	Name:      "root",
	Usage:     "Compute the Merkle root of a container",
	ArgsUsage: "<file|->",
	Flags: []cli.Flag{
		&TypeFlag,
		&JSONFlag,
	},
}

var headerCommand = cli.Command{
	Action:    blockHeader,
	Name:      "header",
	Usage:     "Print the header fields and root of a block",
	ArgsUsage: "<file|->",
	Flags: []cli.Flag{
		&TypeFlag,
		&JSONFlag,
	},
}

var signCommand = cli.Command{
	Action:    signObject,
	Name:      "sign",
	Usage:     "Wrap a container into its signed counterpart",
	ArgsUsage: "<file|->",
	Flags: []cli.Flag{
		&TypeFlag,
		&JSONFlag,
		&SignatureFlag,
		&OutputFlag,
		&SnappyFlag,
	},
}

var presetCommand = cli.Command{
	Action:    dumpPreset,
	Name:      "preset",
	Usage:     "Print the constants of a preset as YAML",
	ArgsUsage: "<name>",
}

func listTypes(ctx *cli.Context) error {
	codec, err := makeCodec(ctx)
	if err != nil {
		return err
	}
	var fork ssz.Fork
	if name := ctx.String(ForkFilterFlag.Name); name != "" {
		if fork, err = ssz.ParseFork(name); err != nil {
			return err
		}
	}
	preset := strings.ToLower(ctx.String(PresetFilterFlag.Name))

	for _, id := range codec.Registry().IDs() {
		if fork != ssz.ForkUnknown && id.Fork != fork {
			continue
		}
		if preset != "" && id.Preset != preset {
			continue
		}
		typ, _ := codec.Registry().Resolve(id)
		if typ.IsFixed() {
			fmt.Fprintf(ctx.App.Writer, "%-60s fixed %d bytes\n", id, typ.FixedSize())
		} else {
			fmt.Fprintf(ctx.App.Writer, "%-60s dynamic %d-%d bytes\n", id, typ.MinSize(), typ.MaxSize())
		}
	}
	return nil
}

func decodeObject(ctx *cli.Context) error {
	codec, id, err := setup(ctx)
	if err != nil {
		return err
	}
	obj, err := readObject(ctx, codec, id, false)
	if err != nil {
		return err
	}
	out, err := obj.ToJSON()
	if err != nil {
		return err
	}
	return writeOutput(ctx, append(out, '\n'))
}

func encodeObject(ctx *cli.Context) error {
	codec, id, err := setup(ctx)
	if err != nil {
		return err
	}
	obj, err := readObject(ctx, codec, id, true)
	if err != nil {
		return err
	}
	return writeSSZ(ctx, obj)
}

func hashObject(ctx *cli.Context) error {
	codec, id, err := setup(ctx)
	if err != nil {
		return err
	}
	obj, err := readObject(ctx, codec, id, ctx.Bool(JSONFlag.Name))
	if err != nil {
		return err
	}
	root := obj.HashTreeRoot()
	fmt.Fprintln(ctx.App.Writer, hexutil.Encode(root[:]))
	return nil
}

func blockHeader(ctx *cli.Context) error {
	codec, id, err := setup(ctx)
	if err != nil {
		return err
	}
	obj, err := readObject(ctx, codec, id, ctx.Bool(JSONFlag.Name))
	if err != nil {
		return err
	}
	header, err := obj.HeaderDict()
	if err != nil {
		return err
	}
	if header["root"], err = obj.BlockHashTreeRoot(); err != nil {
		return err
	}
	out, err := jsoniter.ConfigCompatibleWithStandardLibrary.MarshalIndent(header, "", "  ")
	if err != nil {
		return err
	}
	fmt.Fprintln(ctx.App.Writer, string(out))
	return nil
}

func signObject(ctx *cli.Context) error {
	codec, id, err := setup(ctx)
	if err != nil {
		return err
	}
	obj, err := readObject(ctx, codec, id, ctx.Bool(JSONFlag.Name))
	if err != nil {
		return err
	}
	signed, err := obj.Sign(ctx.String(SignatureFlag.Name))
	if err != nil {
		return err
	}
	log.Info("Signed object", "type", signed.ID())
	return writeSSZ(ctx, signed)
}

func dumpPreset(ctx *cli.Context) error {
	if ctx.Args().Len() != 1 {
		return errors.New("preset name required")
	}
	codec, err := makeCodec(ctx)
	if err != nil {
		return err
	}
	preset, ok := codec.Registry().Preset(ctx.Args().First())
	if !ok {
		return fmt.Errorf("%w: %q", presets.ErrUnknownPreset, ctx.Args().First())
	}
	return presets.Dump(ctx.App.Writer, preset)
}

// setup creates the codec and parses the type id flag of a command.
func setup(ctx *cli.Context) (*binding.Codec, registry.TypeID, error) {
	if ctx.Args().Len() != 1 {
		return nil, registry.TypeID{}, errors.New("exactly one input file required")
	}
	codec, err := makeCodec(ctx)
	if err != nil {
		return nil, registry.TypeID{}, err
	}
	id, err := registry.ParseTypeID(ctx.String(TypeFlag.Name))
	if err != nil {
		return nil, registry.TypeID{}, err
	}
	return codec, id, nil
}

// readObject loads the input file of a command and parses it either as JSON or
// as SSZ, decompressing the latter if the file has an .ssz_snappy extension.
func readObject(ctx *cli.Context, codec *binding.Codec, id registry.TypeID, json bool) (*binding.Object, error) {
	path := ctx.Args().First()

	var (
		input []byte
		err   error
	)
	if path == "-" {
		input, err = io.ReadAll(os.Stdin)
	} else {
		input, err = os.ReadFile(path)
	}
	if err != nil {
		return nil, err
	}
	if json {
		obj, err := codec.FromJSON(id, input)
		if err != nil {
			return nil, err
		}
		log.Debug("Parsed JSON object", "type", id, "bytes", len(input))
		return obj, nil
	}
	if strings.HasSuffix(path, ".ssz_snappy") {
		compressed := len(input)
		if input, err = snappy.Decode(nil, input); err != nil {
			return nil, fmt.Errorf("failed to decompress %s: %w", path, err)
		}
		log.Debug("Decompressed input", "compressed", compressed, "bytes", len(input))
	}
	obj, err := codec.FromSSZ(id, input)
	if err != nil {
		return nil, err
	}
	log.Info("Decoded object", "type", id, "bytes", len(input))
	return obj, nil
}

// writeSSZ writes the SSZ form of an object, optionally snappy compressed.
func writeSSZ(ctx *cli.Context, obj *binding.Object) error {
	blob := obj.ToSSZ()
	if ctx.Bool(SnappyFlag.Name) {
		blob = snappy.Encode(nil, blob)
	}
	if ctx.String(OutputFlag.Name) == "" {
		return writeOutput(ctx, []byte(hexutil.Encode(blob)+"\n"))
	}
	return writeOutput(ctx, blob)
}

// writeOutput writes a command result into the output file, or stdout.
func writeOutput(ctx *cli.Context, data []byte) error {
	path := ctx.String(OutputFlag.Name)
	if path == "" {
		_, err := ctx.App.Writer.Write(data)
		return err
	}
	if err := os.WriteFile(path, data, 0o644); err != nil {
		return err
	}
	log.Info("Wrote output", "file", path, "bytes", len(data))
	return nil
}
