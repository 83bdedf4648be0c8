// ssz: Go Simple Serialize (SSZ) codec library
// Copyright 2024 ssz Authors
// SPDX-License-Identifier: BSD-3-Clause

package binding

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/beaconkit/ssz"
	"github.com/beaconkit/ssz/registry"
	"github.com/ethereum/go-ethereum/common/hexutil"
)

// signedKinds maps the signable containers to their signed counterparts.
var signedKinds = map[string]string{
	"BeaconBlock":          "SignedBeaconBlock",
	"BlindedBeaconBlock":   "SignedBlindedBeaconBlock",
	"BeaconBlockContents":  "SignedBeaconBlockContents",
	"BeaconBlockHeader":    "SignedBeaconBlockHeader",
	"VoluntaryExit":        "SignedVoluntaryExit",
	"BLSToExecutionChange": "SignedBLSToExecutionChange",
}

// block extracts the (possibly blinded) beacon block carried by the object.
func (o *Object) block() (*ssz.Object, error) {
	obj, ok := o.value.(*ssz.Object)
	if !ok {
		return nil, fmt.Errorf("%w: %v", ErrNotABlock, o.id)
	}
	switch o.id.Kind {
	case "BeaconBlock", "BlindedBeaconBlock":
		return obj, nil
	case "SignedBeaconBlock", "SignedBlindedBeaconBlock":
		return obj.Get("message").(*ssz.Object), nil
	case "BeaconBlockContents":
		return obj.Get("block").(*ssz.Object), nil
	case "SignedBeaconBlockContents":
		return obj.Get("signed_block").(*ssz.Object).Get("message").(*ssz.Object), nil
	default:
		return nil, fmt.Errorf("%w: %v", ErrNotABlock, o.id)
	}
}

// HeaderDict returns the fields of the block header matching the block carried
// by the object: slot and proposer_index as decimal strings, parent_root,
// state_root and body_root as 0x-prefixed hex.
func (o *Object) HeaderDict() (map[string]string, error) {
	block, err := o.block()
	if err != nil {
		return nil, err
	}
	idx, _ := block.Type.FieldIndex("body")
	body := block.Type.Fields()[idx].Type
	bodyRoot := ssz.HashConcurrent(body, block.Get("body"))

	return map[string]string{
		"slot":           strconv.FormatUint(block.Get("slot").(uint64), 10),
		"proposer_index": strconv.FormatUint(block.Get("proposer_index").(uint64), 10),
		"parent_root":    hexutil.Encode(block.Get("parent_root").([]byte)),
		"state_root":     hexutil.Encode(block.Get("state_root").([]byte)),
		"body_root":      hexutil.Encode(bodyRoot[:]),
	}, nil
}

// BlockHashTreeRoot returns the 0x-prefixed hex Merkle root of the block carried
// by the object, which equals the root of its header.
func (o *Object) BlockHashTreeRoot() (string, error) {
	block, err := o.block()
	if err != nil {
		return "", err
	}
	root := ssz.HashConcurrent(block.Type, block)
	return hexutil.Encode(root[:]), nil
}

// Sign wraps the object into its signed counterpart using an externally made
// signature. The signature is hex encoded, with or without the 0x prefix, and
// is carried as opaque bytes without any verification.
func (o *Object) Sign(signature string) (*Object, error) {
	kind, ok := signedKinds[o.id.Kind]
	if !ok {
		return nil, fmt.Errorf("%w: %v", ErrNotSignable, o.id)
	}
	if !strings.HasPrefix(signature, "0x") && !strings.HasPrefix(signature, "0X") {
		signature = "0x" + signature
	}
	sig, err := hexutil.Decode(signature)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrInvalidSignature, err)
	}
	if len(sig) != 96 {
		return nil, fmt.Errorf("%w: %d bytes, want 96", ErrInvalidSignature, len(sig))
	}
	id := registry.TypeID{Fork: o.id.Fork, Preset: o.id.Preset, Kind: kind}
	typ, err := o.codec.reg.Resolve(id)
	if err != nil {
		return nil, err
	}
	var signed *ssz.Object
	if kind == "SignedBeaconBlockContents" {
		contents := o.value.(*ssz.Object)
		block := ssz.NewObject(typ.Fields()[0].Type, contents.Get("block"), sig)
		signed = ssz.NewObject(typ, block, contents.Get("kzg_proofs"), contents.Get("blobs"))
	} else {
		signed = ssz.NewObject(typ, o.value, sig)
	}
	return &Object{codec: o.codec, id: id, typ: typ, value: signed}, nil
}
