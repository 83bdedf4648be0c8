// ssz: Go Simple Serialize (SSZ) codec library
// Copyright 2024 ssz Authors
// SPDX-License-Identifier: BSD-3-Clause

package ssz

import (
	"encoding/binary"

	"github.com/minio/sha256-simd"
)

// Pack splits a blob into 32 byte chunks, zero padding the last partial one.
// An empty blob packs into no chunks.
func Pack(blob []byte) [][32]byte {
	chunks := make([][32]byte, (len(blob)+31)/32)
	for i := range chunks {
		copy(chunks[i][:], blob[32*i:])
	}
	return chunks
}

// Merkleize computes the root of a binary Merkle tree over the chunks, padded
// with zero chunks up to the next power of two of limit. A zero limit yields
// the zero chunk. It panics if there are more chunks than the limit.
func Merkleize(chunks [][32]byte, limit uint64) [32]byte {
	input := make([]byte, 32*len(chunks), 32*len(chunks)+32)
	for i, chunk := range chunks {
		copy(input[32*i:], chunk[:])
	}
	var root [32]byte
	copy(root[:], merkleizeImpl(nil, input, limit))
	return root
}

// MixInLength combines a root with a length, encoded as a 32 byte little-endian
// chunk, via one application of the hash function.
func MixInLength(root [32]byte, length uint64) [32]byte {
	var buf [64]byte
	copy(buf[:32], root[:])
	binary.LittleEndian.PutUint64(buf[32:], length)
	return sha256.Sum256(buf[:])
}

// ZeroHash returns the root of an all-zero tree of the given depth.
func ZeroHash(depth int) [32]byte {
	return zeroHashes[depth]
}

// hashPair hashes the concatenation of two nodes.
func hashPair(left, right [32]byte) [32]byte {
	var buf [64]byte
	copy(buf[:32], left[:])
	copy(buf[32:], right[:])
	return sha256.Sum256(buf[:])
}
