// ssz: Go Simple Serialize (SSZ) codec library
// Copyright 2024 ssz Authors
// SPDX-License-Identifier: BSD-3-Clause

// Package ssz is a descriptor driven SSZ encoder, decoder and Merkle hasher.
//
// Types are described at runtime by immutable *Type descriptors, parametrized
// by preset constants at construction. Values are plain Go data structures (see
// Value) that are validated on decode and trusted on encode and hash.
package ssz

import (
	"fmt"
	"io"
	"sync"
)

// encoderPool is a pool of SSZ encoders to reuse some tiny internal helpers
// without hitting Go's GC constantly.
var encoderPool = sync.Pool{
	New: func() any { return new(Encoder) },
}

// decoderPool is a pool of SSZ decoders to reuse some tiny internal helpers
// without hitting Go's GC constantly.
var decoderPool = sync.Pool{
	New: func() any { return new(Decoder) },
}

// hasherPool is a pool of SSZ hashers to reuse some tiny internal helpers
// without hitting Go's GC constantly.
var hasherPool = sync.Pool{
	New: func() any { return new(Hasher) },
}

// streamPool is a pool of read buffers to load streamed inputs into before
// decoding them.
var streamPool = sync.Pool{
	New: func() any { return new([]byte) },
}

// EncodeToStream serializes the value into a data stream. Do not use this
// method with a bytes.Buffer to write into a []byte slice, as that will do
// double the byte copying. For that use case, use EncodeToBytes instead.
func EncodeToStream(w io.Writer, t *Type, v Value) error {
	enc := encoderPool.Get().(*Encoder)
	defer encoderPool.Put(enc)

	enc.outWriter = w
	enc.encodeValue(t, v)

	// Retrieve any errors, zero out the sink and return
	err := enc.err

	enc.outWriter = nil
	enc.err = nil

	return err
}

// EncodeToBytes serializes the value into a byte buffer. Don't use this method
// if you want to then write the buffer into a stream via some writer, as that
// would double the memory use for the temporary buffer. For that use case, use
// EncodeToStream instead.
func EncodeToBytes(buf []byte, t *Type, v Value) error {
	// Sanity check that we have enough space to serialize into
	if size := Size(t, v); int(size) > len(buf) {
		return fmt.Errorf("%w: buffer %d bytes, object %d bytes", ErrBufferTooSmall, len(buf), size)
	}
	enc := encoderPool.Get().(*Encoder)
	defer encoderPool.Put(enc)

	enc.outBuffer = buf
	enc.encodeValue(t, v)

	// Retrieve any errors, zero out the sink and return
	err := enc.err

	enc.outBuffer = nil
	enc.err = nil

	return err
}

// Encode serializes the value into a freshly allocated byte slice. Encoding a
// value that satisfies its descriptor never fails; violations panic.
func Encode(t *Type, v Value) []byte {
	blob := make([]byte, Size(t, v))
	if err := EncodeToBytes(blob, t, v); err != nil {
		panic(err) // cannot happen, buffer sized exactly
	}
	return blob
}

// DecodeFromStream parses exactly size bytes from a data stream as a value of
// the given type. Do not use this method with a bytes.Buffer to read from a
// []byte slice, as that will double the byte copying. For that use case, use
// DecodeFromBytes instead.
func DecodeFromStream(r io.Reader, t *Type, size uint32) (Value, error) {
	if err := checkDepth(t); err != nil {
		return nil, err
	}
	bufp := streamPool.Get().(*[]byte)
	defer streamPool.Put(bufp)

	if cap(*bufp) < int(size) {
		*bufp = make([]byte, size)
	}
	buf := (*bufp)[:size]
	if _, err := io.ReadFull(r, buf); err != nil {
		return nil, err
	}
	return DecodeFromBytes(buf, t)
}

// checkDepth rejects descriptors nested deeper than the decoder would descend.
func checkDepth(t *Type) error {
	if t.depth > MaxNestingDepth {
		return newError(ErrNestingTooDeep, 0, "depth %d, max %d", t.depth, MaxNestingDepth)
	}
	return nil
}

// DecodeFromBytes parses a byte slice as a value of the given type. The input
// is never retained, every byte slice in the result is freshly allocated. Any
// malformed input results in an *Error describing the failure kind and the
// byte offset where it was detected.
func DecodeFromBytes(blob []byte, t *Type) (Value, error) {
	if err := checkDepth(t); err != nil {
		return nil, err
	}
	dec := decoderPool.Get().(*Decoder)
	defer decoderPool.Put(dec)

	dec.inBuffer = blob
	v := dec.decodeValue(t, 0, len(blob))

	// Retrieve any errors, zero out the source and return
	err := dec.err

	dec.inBuffer = nil
	dec.err = nil
	dec.depth = 0
	dec.offsets = dec.offsets[:0]

	if err != nil {
		return nil, err
	}
	return v, nil
}

// HashSequential computes the ssz merkle root of the value on a single thread.
// This is useful for processing small values with stable runtime and O(1) GC
// guarantees.
func HashSequential(t *Type, v Value) [32]byte {
	h := hasherPool.Get().(*Hasher)
	defer hasherPool.Put(h)
	h.Reset()

	h.hashValue(t, v)
	if len(h.scratch) != 32 {
		panic(fmt.Sprintf("unfinished hashing: left %d bytes", len(h.scratch)))
	}
	return h.hash()
}

// HashConcurrent computes the ssz merkle root of the value on potentially
// multiple concurrent threads (iff some of the value's lists are large enough
// to warrant it). This is useful for processing large values, but will place
// a bigger load on your CPU and GC; and might be more variable timing wise
// depending on other load.
func HashConcurrent(t *Type, v Value) [32]byte {
	h := hasherPool.Get().(*Hasher)
	defer hasherPool.Put(h)
	h.Reset()

	h.threads = true
	h.hashValue(t, v)
	if len(h.scratch) != 32 {
		panic(fmt.Sprintf("unfinished hashing: left %d bytes", len(h.scratch)))
	}
	return h.hash()
}

// HashTreeRoot computes the ssz merkle root of the value. It is an alias for
// HashSequential.
func HashTreeRoot(t *Type, v Value) [32]byte {
	return HashSequential(t, v)
}

// Size retrieves the size of a ssz value, independent if it's a static or a
// dynamic one.
func Size(t *Type, v Value) uint32 {
	return sizeOf(t, v)
}
