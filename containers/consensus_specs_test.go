// ssz: Go Simple Serialize (SSZ) codec library
// Copyright 2024 ssz Authors
// SPDX-License-Identifier: BSD-3-Clause

package containers

import (
	"bytes"
	"fmt"
	"os"
	"path/filepath"
	"testing"

	"github.com/beaconkit/ssz"
	"github.com/beaconkit/ssz/presets"
	"github.com/golang/snappy"
	"github.com/stretchr/testify/require"
	"gopkg.in/yaml.v3"
)

// consensusSpecTestsRoot is the folder where the consensus spec tests are
// extracted into (https://github.com/ethereum/consensus-spec-tests).
var consensusSpecTestsRoot = filepath.Join("testdata", "consensus-spec-tests", "tests")

// TestConsensusSpecs iterates over the ssz_static tests of every preset and
// fork, running a decoding, re-encoding and hashing round on each container
// this package generates. The test is skipped if the fixtures are missing.
func TestConsensusSpecs(t *testing.T) {
	if _, err := os.Stat(consensusSpecTestsRoot); err != nil {
		t.Skipf("consensus spec tests not found at %s", consensusSpecTestsRoot)
	}
	for _, preset := range presets.Builtins() {
		for _, fork := range ssz.Forks() {
			path := filepath.Join(consensusSpecTestsRoot, preset.Name(), fork.String(), "ssz_static")
			if _, err := os.Stat(path); err != nil {
				continue
			}
			set := mustBuild(t, fork, preset)
			for _, name := range set.Names() {
				typ := mustType(t, set, name)
				t.Run(fmt.Sprintf("%s/%s/%s", preset.Name(), fork, name), func(t *testing.T) {
					testConsensusSpecType(t, filepath.Join(path, name), typ)
				})
			}
		}
	}
}

func testConsensusSpecType(t *testing.T, path string, typ *ssz.Type) {
	suites, err := os.ReadDir(path)
	if err != nil {
		t.Skipf("no fixtures for %s", typ)
	}
	for _, suite := range suites {
		cases, err := os.ReadDir(filepath.Join(path, suite.Name()))
		require.NoError(t, err)

		for _, test := range cases {
			dir := filepath.Join(path, suite.Name(), test.Name())

			// Parse the input SSZ data and the expected root for the test
			inSnappy, err := os.ReadFile(filepath.Join(dir, "serialized.ssz_snappy"))
			require.NoError(t, err, "failed to load snappy ssz binary")
			inSSZ, err := snappy.Decode(nil, inSnappy)
			require.NoError(t, err, "failed to parse snappy ssz binary")

			inYAML, err := os.ReadFile(filepath.Join(dir, "roots.yaml"))
			require.NoError(t, err, "failed to load yaml root")
			inRoot := struct {
				Root string `yaml:"root"`
			}{}
			require.NoError(t, yaml.Unmarshal(inYAML, &inRoot), "failed to parse yaml root")

			// Do a decode/encode round from a stream and check the roots
			obj, err := ssz.DecodeFromStream(bytes.NewReader(inSSZ), typ, uint32(len(inSSZ)))
			require.NoError(t, err, "%s: failed to decode SSZ stream", dir)
			require.NoError(t, ssz.Validate(typ, obj), "%s: decoded value invalid", dir)

			blob := new(bytes.Buffer)
			require.NoError(t, ssz.EncodeToStream(blob, typ, obj))
			require.Equal(t, inSSZ, blob.Bytes(), "%s: re-encoded stream mismatch", dir)
			require.Equal(t, uint32(len(inSSZ)), ssz.Size(typ, obj), "%s: reported size mismatch", dir)

			require.Equal(t, inRoot.Root, fmt.Sprintf("%#x", ssz.HashSequential(typ, obj)), "%s: sequential root mismatch", dir)
			require.Equal(t, inRoot.Root, fmt.Sprintf("%#x", ssz.HashConcurrent(typ, obj)), "%s: concurrent root mismatch", dir)
		}
	}
}
