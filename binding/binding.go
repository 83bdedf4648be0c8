// ssz: Go Simple Serialize (SSZ) codec library
// Copyright 2024 ssz Authors
// SPDX-License-Identifier: BSD-3-Clause

// Package binding wraps the registry into a value-object surface for consensus
// containers: SSZ and beacon-API JSON conversion, cached Merkle roots and the
// block helpers needed by signing clients.
package binding

import (
	"errors"
	"fmt"

	"github.com/beaconkit/ssz"
	"github.com/beaconkit/ssz/registry"
	lru "github.com/hashicorp/golang-lru/v2"
	"github.com/minio/sha256-simd"
)

var (
	// ErrInvalidJSON is returned if a JSON document does not describe a value
	// of the requested type.
	ErrInvalidJSON = errors.New("binding: invalid json")

	// ErrNotABlock is returned if a block helper is called on a container that
	// does not carry a beacon block.
	ErrNotABlock = errors.New("binding: not a block")

	// ErrNotSignable is returned if a container has no signed counterpart.
	ErrNotSignable = errors.New("binding: no signed counterpart")

	// ErrInvalidSignature is returned if a signature is not 96 hex encoded bytes.
	ErrInvalidSignature = errors.New("binding: invalid signature")
)

// DefaultCacheSize is the number of Merkle roots retained by a codec created
// without an explicit cache size.
const DefaultCacheSize = 1024

// rootKey identifies a cached Merkle root by the type and the digest of the SSZ
// encoding of the value.
type rootKey struct {
	id     registry.TypeID
	digest [32]byte
}

// Codec converts between wire formats and objects of the types of a registry.
// It is safe for concurrent use.
type Codec struct {
	reg   *registry.Registry
	roots *lru.Cache[rootKey, [32]byte]
}

// NewCodec creates a codec around a registry, caching up to cacheSize Merkle
// roots. A non-positive size uses DefaultCacheSize.
func NewCodec(reg *registry.Registry, cacheSize int) (*Codec, error) {
	if cacheSize <= 0 {
		cacheSize = DefaultCacheSize
	}
	roots, err := lru.New[rootKey, [32]byte](cacheSize)
	if err != nil {
		return nil, err
	}
	return &Codec{reg: reg, roots: roots}, nil
}

// Registry returns the registry the codec resolves types from.
func (c *Codec) Registry() *registry.Registry { return c.reg }

// FromSSZ decodes an SSZ blob into an object. Decoding failures are returned
// as *ssz.Error values, retaining their kind and offset.
func (c *Codec) FromSSZ(id registry.TypeID, blob []byte) (*Object, error) {
	typ, err := c.reg.Resolve(id)
	if err != nil {
		return nil, err
	}
	v, err := ssz.DecodeFromBytes(blob, typ)
	if err != nil {
		return nil, err
	}
	return &Object{codec: c, id: id, typ: typ, value: v}, nil
}

// FromJSON decodes a beacon-API JSON document into an object. The value is
// expected within a {"data": ...} envelope.
func (c *Codec) FromJSON(id registry.TypeID, data []byte) (*Object, error) {
	typ, err := c.reg.Resolve(id)
	if err != nil {
		return nil, err
	}
	raw, err := unwrapEnvelope(data)
	if err != nil {
		return nil, err
	}
	v, err := decodeJSON(typ, raw, "data")
	if err != nil {
		return nil, err
	}
	if err := ssz.Validate(typ, v); err != nil {
		return nil, fmt.Errorf("%w: %w", ErrInvalidJSON, err)
	}
	return &Object{codec: c, id: id, typ: typ, value: v}, nil
}

// Wrap creates an object from an already constructed value, validating it.
func (c *Codec) Wrap(id registry.TypeID, v ssz.Value) (*Object, error) {
	typ, err := c.reg.Resolve(id)
	if err != nil {
		return nil, err
	}
	if err := ssz.Validate(typ, v); err != nil {
		return nil, err
	}
	return &Object{codec: c, id: id, typ: typ, value: v}, nil
}

// Object is a validated value of a registered container type. Objects are
// immutable, their values must not be modified after construction.
type Object struct {
	codec *Codec
	id    registry.TypeID
	typ   *ssz.Type
	value ssz.Value
}

// ID returns the type id of the object.
func (o *Object) ID() registry.TypeID { return o.id }

// Type returns the descriptor of the object.
func (o *Object) Type() *ssz.Type { return o.typ }

// Value returns the underlying value of the object.
func (o *Object) Value() ssz.Value { return o.value }

// ToSSZ encodes the object into its SSZ form.
func (o *Object) ToSSZ() []byte {
	return ssz.Encode(o.typ, o.value)
}

// ToJSON encodes the object into its beacon-API JSON form, without envelope.
func (o *Object) ToJSON() ([]byte, error) {
	return encodeJSON(o.typ, o.value)
}

// HashTreeRoot computes the Merkle root of the object. Roots are cached by the
// codec, keyed by the type and the digest of the SSZ encoding.
func (o *Object) HashTreeRoot() [32]byte {
	key := rootKey{id: o.id, digest: sha256.Sum256(o.ToSSZ())}
	if root, ok := o.codec.roots.Get(key); ok {
		return root
	}
	root := ssz.HashConcurrent(o.typ, o.value)
	o.codec.roots.Add(key, root)
	return root
}

// SigningRoot computes the root signed over by validators, which is the root
// of a SigningData container binding the object root to a signature domain.
func (o *Object) SigningRoot(domain [32]byte) ([32]byte, error) {
	typ, err := o.codec.reg.Resolve(registry.TypeID{Fork: o.id.Fork, Preset: o.id.Preset, Kind: "SigningData"})
	if err != nil {
		return [32]byte{}, err
	}
	root := o.HashTreeRoot()
	data := ssz.NewObject(typ, root[:], domain[:])
	return ssz.HashSequential(typ, data), nil
}
