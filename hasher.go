// ssz: Go Simple Serialize (SSZ) codec library
// Copyright 2024 ssz Authors
// SPDX-License-Identifier: BSD-3-Clause

package ssz

import (
	"encoding/binary"
	"fmt"
	"math/bits"
	"runtime"
	"sync"

	"github.com/minio/sha256-simd"
	"github.com/prysmaticlabs/go-bitfield"
	"github.com/prysmaticlabs/gohashtree"
)

// concurrencyThreshold is the number of composite items in a vector or list
// above which a concurrent hasher splits the work across goroutines.
const concurrencyThreshold = 64

// Some helpers to avoid occasional allocations
var (
	hasherUint64Pad = []byte{0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0}
	hasherZeroChunk = []byte{0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0}
)

// zeroHashes is the root of an all-zero subtree of each depth.
var zeroHashes [65][32]byte

func init() {
	var tmp [64]byte
	for i := 0; i < 64; i++ {
		copy(tmp[:32], zeroHashes[i][:])
		copy(tmp[32:], zeroHashes[i][:])
		zeroHashes[i+1] = sha256.Sum256(tmp[:])
	}
}

// Hasher is an SSZ Merkle Hash Root computer. It accumulates the roots of the
// items of a composite value in a scratch space and collapses them in place.
type Hasher struct {
	scratch []byte   // Scratch space for not-yet-hashed writes
	threads bool     // Whether to hash large composite sequences concurrently
	buf     [32]byte // Integer conversion buffer
}

// hashValue appends the 32 byte hash tree root of a value to the scratch space.
func (h *Hasher) hashValue(t *Type, v Value) {
	pos := len(h.scratch)

	switch t.kind {
	case KindBool, KindUint:
		h.scratch = appendScalar(h.scratch, t, v)
		h.fillUpTo32()

	case KindVector, KindList:
		var count int
		switch {
		case t.IsBytes():
			blob := v.([]byte)
			count = len(blob)
			h.scratch = append(h.scratch, blob...)
			h.fillUpTo32()

		case t.elem.IsBasic():
			items := v.([]Value)
			count = len(items)
			for _, item := range items {
				h.scratch = appendScalar(h.scratch, t.elem, item)
			}
			h.fillUpTo32()

		default:
			items := v.([]Value)
			count = len(items)
			h.hashItems(t.elem, items)
		}
		if t.kind == KindVector {
			if uint64(count) != t.length {
				panic(fmt.Sprintf("ssz: %s value of length %d", t, count))
			}
			h.merkleize(pos, t.chunks)
		} else {
			if uint64(count) > t.limit {
				panic(fmt.Sprintf("ssz: %s value of length %d", t, count))
			}
			h.merkleizeWithMixin(pos, uint64(count), t.chunks)
		}

	case KindBitvector:
		bits := v.([]byte)
		if uint32(len(bits)) != t.size {
			panic(fmt.Sprintf("ssz: %s value of %d bytes", t, len(bits)))
		}
		h.scratch = append(h.scratch, bits...)
		h.fillUpTo32()
		h.merkleize(pos, t.chunks)

	case KindBitlist:
		var size uint64
		h.scratch, size = parseBitlist(h.scratch, v.(bitfield.Bitlist))
		if size > t.limit {
			panic(fmt.Sprintf("ssz: %s value of %d bits", t, size))
		}
		h.fillUpTo32()
		h.merkleizeWithMixin(pos, size, t.chunks)

	case KindContainer:
		obj := v.(*Object)
		if len(obj.Fields) != len(t.fields) {
			panic(fmt.Sprintf("ssz: %s value with %d fields", t, len(obj.Fields)))
		}
		for i, field := range t.fields {
			h.hashValue(field.Type, obj.Fields[i])
		}
		h.merkleize(pos, t.chunks)

	case KindUnion:
		sel := v.(*Selection)
		if int(sel.Selector) >= len(t.variants) {
			panic(fmt.Sprintf("ssz: %s value with selector %d", t, sel.Selector))
		}
		if variant := t.variants[sel.Selector]; variant != nil {
			h.hashValue(variant, sel.Value)
		} else {
			h.scratch = append(h.scratch, hasherZeroChunk...)
		}
		h.merkleizeWithMixin(pos, uint64(sel.Selector), 1)

	default:
		panic(fmt.Sprintf("ssz: unsupported type: %s", t))
	}
}

// hashItems appends the roots of a sequence of composite items. If concurrent
// hashing is enabled and the sequence is large enough, the items are split up
// among multiple goroutines, each with its own hasher.
func (h *Hasher) hashItems(elem *Type, items []Value) {
	if !h.threads || len(items) < concurrencyThreshold {
		for _, item := range items {
			h.hashValue(elem, item)
		}
		return
	}
	var (
		roots   = make([]byte, 32*len(items))
		workers = min(runtime.GOMAXPROCS(0), len(items))
		batch   = (len(items) + workers - 1) / workers
		pend    sync.WaitGroup
	)
	for from := 0; from < len(items); from += batch {
		to := min(from+batch, len(items))

		pend.Add(1)
		go func(from, to int) {
			defer pend.Done()

			hasher := hasherPool.Get().(*Hasher)
			defer hasherPool.Put(hasher)

			for i := from; i < to; i++ {
				hasher.Reset()
				hasher.hashValue(elem, items[i])
				copy(roots[32*i:], hasher.scratch[:32])
			}
		}(from, to)
	}
	pend.Wait()
	h.scratch = append(h.scratch, roots...)
}

// Reset resets the Hasher obj
func (h *Hasher) Reset() {
	h.scratch = h.scratch[:0]
	h.threads = false
}

// fillUpTo32 pads the scratch space with zeroes to a multiple of 32 bytes.
func (h *Hasher) fillUpTo32() {
	if rest := len(h.scratch) & 0x1f; rest != 0 {
		h.scratch = append(h.scratch, hasherZeroChunk[:32-rest]...)
	}
}

// hash retrieves the computed hash from the hasher.
func (h *Hasher) hash() [32]byte {
	var hash [32]byte
	copy(hash[:], h.scratch)
	return hash
}

// parseBitlist appends the content of a bitlist to dst with the length bit
// cleared and trailing zero bytes trimmed, also returning the bit length.
func parseBitlist(dst, buf []byte) ([]byte, uint64) {
	if len(buf) == 0 || buf[len(buf)-1] == 0 {
		panic("ssz: bitlist without length bit")
	}
	msb := uint8(bits.Len8(buf[len(buf)-1])) - 1
	size := uint64(8*(len(buf)-1) + int(msb))

	start := len(dst)
	dst = append(dst, buf...)
	dst[len(dst)-1] &^= uint8(1 << msb)

	newLen := len(dst)
	for i := len(dst) - 1; i >= start; i-- {
		if dst[i] != 0x00 {
			break
		}
		newLen = i
	}
	return dst[:newLen], size
}

// merkleize hashes everything in the scratch space from the starting position.
func (h *Hasher) merkleize(pos int, limit uint64) {
	// merkleizeImpl will expand the `input` by 32 bytes if some hashing depth
	// hits an odd chunk length. But if we're at the end of `h.scratch` already,
	// appending to `input` will allocate a new buffer, *not* expand `h.scratch`,
	// so the next invocation will realloc, over and over and over. We can pre-
	// emptively cater for that by ensuring that an extra 32 bytes is always
	// available.
	if len(h.scratch) == cap(h.scratch) {
		h.scratch = append(h.scratch, hasherZeroChunk...)
		h.scratch = h.scratch[:len(h.scratch)-len(hasherZeroChunk)]
	}
	input := h.scratch[pos:]

	input = merkleizeImpl(input[:0], input, limit)
	h.scratch = append(h.scratch[:pos], input...)
}

// merkleizeWithMixin hashes everything in the scratch space from the starting
// position, also mixing in the size of the dynamic slice of data.
func (h *Hasher) merkleizeWithMixin(pos int, num, limit uint64) {
	h.merkleize(pos, limit)
	input := h.scratch[pos:]

	binary.LittleEndian.PutUint64(h.buf[:8], num)
	input = append(input, h.buf[:8]...)
	input = append(input, hasherUint64Pad...)

	// input is of the form [<input><size>] of 64 bytes
	gohashtree.HashByteSlice(input, input)
	h.scratch = append(h.scratch[:pos], input[:32]...)
}

// getDepth returns the depth of a binary tree with limit leaves, rounding up to
// the next power of two.
func getDepth(limit uint64) uint8 {
	if limit <= 1 {
		return 0
	}
	return uint8(bits.Len64(limit - 1))
}

// merkleizeImpl reduces the 32 byte aligned input chunks into a single root of
// a tree padded with zero chunks up to limit leaves, appending it to dst. The
// input buffer is overwritten during hashing.
func merkleizeImpl(dst []byte, input []byte, limit uint64) []byte {
	count := uint64((len(input) + 31) / 32)
	if count > limit {
		panic(fmt.Sprintf("BUG: count '%d' higher than limit '%d'", count, limit))
	}
	if limit == 0 {
		return append(dst, hasherZeroChunk...)
	}
	if limit == 1 {
		if count == 1 {
			return append(dst, input[:32]...)
		}
		return append(dst, hasherZeroChunk...)
	}
	depth := getDepth(limit)
	if len(input) == 0 {
		return append(dst, zeroHashes[depth][:]...)
	}
	for i := uint8(0); i < depth; i++ {
		layerLen := len(input) / 32
		if layerLen%2 == 1 {
			input = append(input, zeroHashes[i][:]...)
			layerLen++
		}
		outputLen := (layerLen / 2) * 32

		gohashtree.HashByteSlice(input, input)
		input = input[:outputLen]
	}
	return append(dst, input...)
}
