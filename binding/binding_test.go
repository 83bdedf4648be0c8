// ssz: Go Simple Serialize (SSZ) codec library
// Copyright 2024 ssz Authors
// SPDX-License-Identifier: BSD-3-Clause

package binding

import (
	"bytes"
	"strings"
	"testing"

	"github.com/beaconkit/ssz"
	"github.com/beaconkit/ssz/registry"
	"github.com/ethereum/go-ethereum/common/hexutil"
	"github.com/holiman/uint256"
	"github.com/stretchr/testify/require"
)

// newTestCodec creates a codec around the default registry.
func newTestCodec(t *testing.T) *Codec {
	t.Helper()

	codec, err := NewCodec(registry.Default(), 16)
	require.NoError(t, err)
	return codec
}

// mustID parses a type id, failing the test on error.
func mustID(t *testing.T, s string) registry.TypeID {
	t.Helper()

	id, err := registry.ParseTypeID(s)
	require.NoError(t, err)
	return id
}

// zeroObject wraps the default value of a type into an object.
func zeroObject(t *testing.T, codec *Codec, id registry.TypeID) *Object {
	t.Helper()

	typ, err := codec.Registry().Resolve(id)
	require.NoError(t, err)
	obj, err := codec.Wrap(id, ssz.Zero(typ))
	require.NoError(t, err)
	return obj
}

func TestCheckpointJSON(t *testing.T) {
	codec := newTestCodec(t)
	id := mustID(t, "phase0/mainnet/Checkpoint")

	root := "0x" + strings.Repeat("11", 32)
	obj, err := codec.FromJSON(id, []byte(`{"data": {"epoch": "5", "root": "`+root+`"}}`))
	require.NoError(t, err)

	want := append([]byte{5, 0, 0, 0, 0, 0, 0, 0}, bytes.Repeat([]byte{0x11}, 32)...)
	require.Equal(t, want, obj.ToSSZ())

	js, err := obj.ToJSON()
	require.NoError(t, err)
	require.Equal(t, `{"epoch":"5","root":"`+root+`"}`, string(js))

	// Bare numbers are accepted too
	num, err := codec.FromJSON(id, []byte(`{"data": {"epoch": 5, "root": "`+root+`"}}`))
	require.NoError(t, err)
	require.Equal(t, want, num.ToSSZ())
}

func TestJSONFailures(t *testing.T) {
	codec := newTestCodec(t)
	id := mustID(t, "phase0/mainnet/Checkpoint")
	root := `"0x` + strings.Repeat("00", 32) + `"`

	tests := []string{
		`{"epoch": "5", "root": ` + root + `}`,
		`{"data": {"root": ` + root + `}}`,
		`{"data": {"epoch": "-5", "root": ` + root + `}}`,
		`{"data": {"epoch": "18446744073709551616", "root": ` + root + `}}`,
		`{"data": {"epoch": "5", "root": "0x00"}}`,
		`{"data": {"epoch": "5", "root": "00"}}`,
		`{"data": [1, 2, 3]}`,
		`not json`,
	}
	for _, test := range tests {
		_, err := codec.FromJSON(id, []byte(test))
		require.ErrorIs(t, err, ErrInvalidJSON, "%s", test)
	}
	_, err := codec.FromJSON(mustID(t, "phase0/mainnet/Nonsense"), []byte(`{"data": {}}`))
	require.ErrorIs(t, err, ssz.ErrUnknownType)
}

func TestJSONRoundTrip(t *testing.T) {
	codec := newTestCodec(t)

	for _, fork := range ssz.Forks() {
		id := registry.TypeID{Fork: fork, Preset: "minimal", Kind: "SignedBeaconBlock"}
		obj := zeroObject(t, codec, id)

		block := obj.Value().(*ssz.Object).Get("message").(*ssz.Object)
		block.Set("slot", uint64(1234))
		block.Set("parent_root", bytes.Repeat([]byte{0xaa}, 32))
		if fork >= ssz.ForkBellatrix {
			payload := block.Get("body").(*ssz.Object).Get("execution_payload").(*ssz.Object)
			payload.Set("base_fee_per_gas", uint256.NewInt(7_000_000_000))
			payload.Set("transactions", []ssz.Value{[]byte{0x02, 0xf8}, []byte{}})
		}
		js, err := obj.ToJSON()
		require.NoError(t, err)

		back, err := codec.FromJSON(id, []byte(`{"data":`+string(js)+`}`))
		require.NoError(t, err, "%v", fork)
		require.Equal(t, obj.ToSSZ(), back.ToSSZ(), "%v", fork)
		require.Equal(t, obj.HashTreeRoot(), back.HashTreeRoot(), "%v", fork)
	}
}

func TestUnionJSON(t *testing.T) {
	reg, err := registry.New()
	require.NoError(t, err)
	codec, err := NewCodec(reg, 0)
	require.NoError(t, err)

	id := registry.TypeID{Fork: ssz.ForkDeneb, Preset: "custom", Kind: "Option"}
	reg.Register(id, ssz.Container("Option", ssz.NewField("value", ssz.Union(nil, ssz.Uint16(), ssz.Bitlist(8)))))

	for _, test := range []struct {
		json string
		ssz  []byte
	}{
		{`{"value":{"selector":"0","value":null}}`, []byte{0x04, 0, 0, 0, 0x00}},
		{`{"value":{"selector":"1","value":"513"}}`, []byte{0x04, 0, 0, 0, 0x01, 0x01, 0x02}},
		{`{"value":{"selector":"2","value":"0x0d"}}`, []byte{0x04, 0, 0, 0, 0x02, 0x0d}},
	} {
		obj, err := codec.FromJSON(id, []byte(`{"data":`+test.json+`}`))
		require.NoError(t, err, test.json)
		require.Equal(t, test.ssz, obj.ToSSZ(), test.json)

		js, err := obj.ToJSON()
		require.NoError(t, err)
		require.Equal(t, test.json, string(js))
	}
	for _, bad := range []string{
		`{"value":{"selector":"3","value":null}}`,
		`{"value":{"selector":"0","value":"1"}}`,
		`{"value":{"selector":"2","value":"0x00"}}`,
	} {
		_, err := codec.FromJSON(id, []byte(`{"data":`+bad+`}`))
		require.ErrorIs(t, err, ErrInvalidJSON, bad)
	}
}

func TestFromSSZErrors(t *testing.T) {
	codec := newTestCodec(t)

	_, err := codec.FromSSZ(mustID(t, "deneb/mainnet/SignedBeaconBlock"), []byte{0x01, 0x02})
	require.ErrorIs(t, err, ssz.ErrMalformedLength)

	var sszErr *ssz.Error
	require.ErrorAs(t, err, &sszErr)

	_, err = codec.FromSSZ(mustID(t, "phase0/mainnet/ExecutionPayload"), nil)
	require.ErrorIs(t, err, ssz.ErrUnknownType)
}

func TestHeaderDict(t *testing.T) {
	codec := newTestCodec(t)
	contents := zeroObject(t, codec, mustID(t, "electra/minimal/BeaconBlockContents"))

	block := contents.Value().(*ssz.Object).Get("block").(*ssz.Object)
	block.Set("slot", uint64(7))
	block.Set("proposer_index", uint64(3))
	block.Set("parent_root", bytes.Repeat([]byte{0xaa}, 32))
	block.Set("state_root", bytes.Repeat([]byte{0xbb}, 32))
	block.Get("body").(*ssz.Object).Set("graffiti", bytes.Repeat([]byte{0xcc}, 32))

	dict, err := contents.HeaderDict()
	require.NoError(t, err)
	require.Equal(t, "7", dict["slot"])
	require.Equal(t, "3", dict["proposer_index"])
	require.Equal(t, "0x"+strings.Repeat("aa", 32), dict["parent_root"])
	require.Equal(t, "0x"+strings.Repeat("bb", 32), dict["state_root"])

	body, err := codec.Registry().Resolve(mustID(t, "electra/minimal/BeaconBlockBody"))
	require.NoError(t, err)
	bodyRoot := ssz.HashSequential(body, block.Get("body"))
	require.Equal(t, hexutil.Encode(bodyRoot[:]), dict["body_root"])

	// The block root must match the root of the header assembled from the dict
	headerID := mustID(t, "electra/minimal/BeaconBlockHeader")
	headerType, err := codec.Registry().Resolve(headerID)
	require.NoError(t, err)
	header := ssz.NewObject(headerType, uint64(7), uint64(3),
		bytes.Repeat([]byte{0xaa}, 32), bytes.Repeat([]byte{0xbb}, 32), bodyRoot[:])
	headerRoot := ssz.HashSequential(headerType, header)

	root, err := contents.BlockHashTreeRoot()
	require.NoError(t, err)
	require.Equal(t, hexutil.Encode(headerRoot[:]), root)

	_, err = zeroObject(t, codec, mustID(t, "electra/minimal/Checkpoint")).HeaderDict()
	require.ErrorIs(t, err, ErrNotABlock)
}

func TestSign(t *testing.T) {
	codec := newTestCodec(t)
	signature := strings.Repeat("ab", 96)

	for _, kind := range []string{"BeaconBlockContents", "BlindedBeaconBlock", "BeaconBlock"} {
		unsigned := zeroObject(t, codec, mustID(t, "deneb/mainnet/"+kind))

		signed, err := unsigned.Sign(signature)
		require.NoError(t, err, kind)
		require.Equal(t, signedKinds[kind], signed.ID().Kind)
		require.NoError(t, ssz.Validate(signed.Type(), signed.Value()))

		want, err := unsigned.HeaderDict()
		require.NoError(t, err)
		have, err := signed.HeaderDict()
		require.NoError(t, err)
		require.Equal(t, want, have)

		wantRoot, _ := unsigned.BlockHashTreeRoot()
		haveRoot, _ := signed.BlockHashTreeRoot()
		require.Equal(t, wantRoot, haveRoot)

		// The signature must sit right at the end of the signed block
		blob := signed.ToSSZ()
		if kind != "BeaconBlockContents" {
			require.Equal(t, bytes.Repeat([]byte{0xab}, 96), blob[4:100])
		}
	}
	exit := zeroObject(t, codec, mustID(t, "capella/mainnet/VoluntaryExit"))
	signed, err := exit.Sign("0x" + signature)
	require.NoError(t, err)
	require.Equal(t, append(make([]byte, 16), bytes.Repeat([]byte{0xab}, 96)...), signed.ToSSZ())

	_, err = exit.Sign("abcd")
	require.ErrorIs(t, err, ErrInvalidSignature)
	_, err = exit.Sign(strings.Repeat("zz", 96))
	require.ErrorIs(t, err, ErrInvalidSignature)
	_, err = signed.Sign(signature)
	require.ErrorIs(t, err, ErrNotSignable)
}

func TestRootCache(t *testing.T) {
	codec := newTestCodec(t)
	id := mustID(t, "capella/mainnet/BeaconBlockBody")

	a := zeroObject(t, codec, id)
	b := zeroObject(t, codec, id)

	root := a.HashTreeRoot()
	require.Equal(t, ssz.HashSequential(a.Type(), a.Value()), root)
	require.Equal(t, 1, codec.roots.Len())

	require.Equal(t, root, b.HashTreeRoot())
	require.Equal(t, 1, codec.roots.Len())

	// Same bytes under a different type id must not collide
	other := zeroObject(t, codec, mustID(t, "capella/minimal/BeaconBlockBody"))
	other.HashTreeRoot()
	require.Equal(t, 2, codec.roots.Len())
}

func TestSigningRoot(t *testing.T) {
	codec := newTestCodec(t)
	obj := zeroObject(t, codec, mustID(t, "phase0/mainnet/VoluntaryExit"))

	var domain [32]byte
	copy(domain[:], []byte{0x04, 0x00, 0x00, 0x00, 0xde, 0xad})

	root, err := obj.SigningRoot(domain)
	require.NoError(t, err)
	require.Equal(t, ssz.Merkleize([][32]byte{obj.HashTreeRoot(), domain}, 2), root)
}
