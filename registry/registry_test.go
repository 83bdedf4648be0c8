// ssz: Go Simple Serialize (SSZ) codec library
// Copyright 2024 ssz Authors
// SPDX-License-Identifier: BSD-3-Clause

package registry

import (
	"strings"
	"testing"

	"github.com/beaconkit/ssz"
	"github.com/beaconkit/ssz/containers"
	"github.com/beaconkit/ssz/presets"
	"github.com/stretchr/testify/require"
)

func TestParseTypeID(t *testing.T) {
	id, err := ParseTypeID("Electra/Mainnet/SignedBeaconBlock")
	require.NoError(t, err)
	require.Equal(t, TypeID{Fork: ssz.ForkElectra, Preset: "mainnet", Kind: "SignedBeaconBlock"}, id)
	require.Equal(t, "electra/mainnet/SignedBeaconBlock", id.String())

	id, err = ParseTypeID("dencun/minimal/BeaconBlockContents")
	require.NoError(t, err)
	require.Equal(t, ssz.ForkDeneb, id.Fork)

	for _, bad := range []string{"", "electra", "electra/mainnet", "electra//Attestation", "osaka/mainnet/Attestation", "a/b/c/d"} {
		_, err := ParseTypeID(bad)
		require.ErrorIs(t, err, ssz.ErrUnknownType, "%q", bad)
	}
}

func TestResolve(t *testing.T) {
	reg := Default()

	typ, err := reg.Resolve(TypeID{Fork: ssz.ForkPhase0, Preset: "mainnet", Kind: "Checkpoint"})
	require.NoError(t, err)
	require.Equal(t, uint32(40), typ.FixedSize())

	_, err = reg.Resolve(TypeID{Fork: ssz.ForkPhase0, Preset: "mainnet", Kind: "Withdrawal"})
	require.ErrorIs(t, err, ssz.ErrUnknownType)

	_, err = reg.Resolve(TypeID{Fork: ssz.ForkCapella, Preset: "sepolia", Kind: "Withdrawal"})
	require.ErrorIs(t, err, ssz.ErrUnknownType)

	_, err = reg.Decode(TypeID{Fork: ssz.ForkCapella, Preset: "mainnet", Kind: "Nonsense"}, nil)
	require.ErrorIs(t, err, ssz.ErrUnknownType)

	require.Same(t, reg, Default())
}

func TestIDs(t *testing.T) {
	reg, err := New(presets.Minimal)
	require.NoError(t, err)

	ids := reg.IDs()
	require.NotEmpty(t, ids)
	require.Equal(t, ssz.ForkPhase0, ids[0].Fork)
	require.Equal(t, ssz.ForkElectra, ids[len(ids)-1].Fork)
	for i := 1; i < len(ids); i++ {
		if ids[i-1].Fork == ids[i].Fork {
			require.Negative(t, strings.Compare(ids[i-1].Kind, ids[i].Kind))
		}
	}
	for _, id := range ids {
		require.Equal(t, "minimal", id.Preset)
	}
	_, ok := reg.Preset("MINIMAL")
	require.True(t, ok)
	_, ok = reg.Preset("mainnet")
	require.False(t, ok)
}

func TestRegisterCustom(t *testing.T) {
	reg, err := New()
	require.NoError(t, err)

	id := TypeID{Fork: ssz.ForkDeneb, Preset: "custom", Kind: "Pair"}
	pair := ssz.Container("Pair",
		ssz.NewField("a", ssz.Uint16()),
		ssz.NewField("b", ssz.ByteList(8)),
	)
	reg.Register(id, pair)

	value := ssz.NewObject(pair, uint16(0x0102), []byte{0xaa})
	blob, err := reg.Encode(id, value)
	require.NoError(t, err)
	require.Equal(t, []byte{0x02, 0x01, 0x06, 0x00, 0x00, 0x00, 0xaa}, blob)

	dec, err := reg.Decode(id, blob)
	require.NoError(t, err)
	require.Equal(t, value, dec)

	root, err := reg.HashTreeRoot(id, dec)
	require.NoError(t, err)
	require.Equal(t, ssz.HashSequential(pair, value), root)

	_, err = reg.Encode(id, ssz.NewObject(pair, uint16(1), make([]byte, 9)))
	require.ErrorIs(t, err, ssz.ErrInvalidValue)
	_, err = reg.HashTreeRoot(id, uint64(1))
	require.ErrorIs(t, err, ssz.ErrInvalidValue)
}

func TestDecodeErrorsPreserved(t *testing.T) {
	id := TypeID{Fork: ssz.ForkPhase0, Preset: "mainnet", Kind: "VoluntaryExit"}

	_, err := Default().Decode(id, make([]byte, 15))
	require.ErrorIs(t, err, ssz.ErrMalformedLength)

	var sszErr *ssz.Error
	require.ErrorAs(t, err, &sszErr)
}

func TestCustomPreset(t *testing.T) {
	devnet, err := presets.Load("devnet", strings.NewReader("SYNC_COMMITTEE_SIZE: 16\n"), presets.Minimal)
	require.NoError(t, err)

	reg, err := New(devnet)
	require.NoError(t, err)

	typ, err := reg.Resolve(TypeID{Fork: ssz.ForkAltair, Preset: "devnet", Kind: "SyncAggregate"})
	require.NoError(t, err)
	require.Equal(t, uint32(2+96), typ.FixedSize())

	_, err = New(presets.New("broken", nil))
	require.ErrorIs(t, err, containers.ErrMissingConstant)

	huge, err := presets.Load("huge", strings.NewReader("SLOTS_PER_HISTORICAL_ROOT: 2**30\n"), presets.Mainnet)
	require.NoError(t, err)

	_, err = New(huge)
	require.ErrorIs(t, err, containers.ErrInvalidPreset)
}
