// ssz: Go Simple Serialize (SSZ) codec library
// Copyright 2024 ssz Authors
// SPDX-License-Identifier: BSD-3-Clause

package binding

import (
	"bytes"
	"fmt"
	"strconv"

	"github.com/beaconkit/ssz"
	"github.com/ethereum/go-ethereum/common/hexutil"
	"github.com/holiman/uint256"
	jsoniter "github.com/json-iterator/go"
	"github.com/prysmaticlabs/go-bitfield"
)

// json is the standard library compatible configuration used for parsing.
var json = jsoniter.ConfigCompatibleWithStandardLibrary

// encodeJSON renders a value in the beacon-API conventions: integers are
// decimal strings, byte arrays and bitfields are 0x-prefixed hex and containers
// are objects with the fields in declaration order.
func encodeJSON(t *ssz.Type, v ssz.Value) ([]byte, error) {
	stream := jsoniter.ConfigDefault.BorrowStream(nil)
	defer jsoniter.ConfigDefault.ReturnStream(stream)

	writeJSON(stream, t, v)
	if stream.Error != nil {
		return nil, stream.Error
	}
	return bytes.Clone(stream.Buffer()), nil
}

func writeJSON(stream *jsoniter.Stream, t *ssz.Type, v ssz.Value) {
	switch t.Kind() {
	case ssz.KindBool:
		stream.WriteBool(v.(bool))

	case ssz.KindUint:
		switch v := v.(type) {
		case uint8:
			stream.WriteString(strconv.FormatUint(uint64(v), 10))
		case uint16:
			stream.WriteString(strconv.FormatUint(uint64(v), 10))
		case uint32:
			stream.WriteString(strconv.FormatUint(uint64(v), 10))
		case uint64:
			stream.WriteString(strconv.FormatUint(v, 10))
		case *uint256.Int:
			stream.WriteString(v.Dec())
		}

	case ssz.KindVector, ssz.KindList:
		if t.IsBytes() {
			stream.WriteString(hexutil.Encode(v.([]byte)))
			return
		}
		stream.WriteArrayStart()
		for i, item := range v.([]ssz.Value) {
			if i > 0 {
				stream.WriteMore()
			}
			writeJSON(stream, t.Elem(), item)
		}
		stream.WriteArrayEnd()

	case ssz.KindBitvector:
		stream.WriteString(hexutil.Encode(v.([]byte)))

	case ssz.KindBitlist:
		stream.WriteString(hexutil.Encode(v.(bitfield.Bitlist)))

	case ssz.KindContainer:
		obj := v.(*ssz.Object)

		stream.WriteObjectStart()
		for i, field := range t.Fields() {
			if i > 0 {
				stream.WriteMore()
			}
			stream.WriteObjectField(field.Name)
			writeJSON(stream, field.Type, obj.Fields[i])
		}
		stream.WriteObjectEnd()

	case ssz.KindUnion:
		sel := v.(*ssz.Selection)

		stream.WriteObjectStart()
		stream.WriteObjectField("selector")
		stream.WriteString(strconv.Itoa(int(sel.Selector)))
		stream.WriteMore()
		stream.WriteObjectField("value")
		if variant := t.Variants()[sel.Selector]; variant == nil {
			stream.WriteNil()
		} else {
			writeJSON(stream, variant, sel.Value)
		}
		stream.WriteObjectEnd()
	}
}

// unwrapEnvelope extracts the payload of a {"data": ...} document.
func unwrapEnvelope(data []byte) (jsoniter.RawMessage, error) {
	var envelope struct {
		Data jsoniter.RawMessage `json:"data"`
	}
	if err := json.Unmarshal(data, &envelope); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrInvalidJSON, err)
	}
	if len(envelope.Data) == 0 {
		return nil, fmt.Errorf("%w: missing data field", ErrInvalidJSON)
	}
	return envelope.Data, nil
}

// decodeJSON parses a raw JSON value as a value of type t. The returned value
// is only structurally checked, the caller is expected to validate it.
func decodeJSON(t *ssz.Type, raw jsoniter.RawMessage, path string) (ssz.Value, error) {
	switch t.Kind() {
	case ssz.KindBool:
		var b bool
		if err := json.Unmarshal(raw, &b); err != nil {
			return nil, fmt.Errorf("%w: %s: %v", ErrInvalidJSON, path, err)
		}
		return b, nil

	case ssz.KindUint:
		return decodeJSONUint(t, raw, path)

	case ssz.KindVector, ssz.KindList, ssz.KindBitvector, ssz.KindBitlist:
		if t.IsBytes() || t.Kind() == ssz.KindBitvector || t.Kind() == ssz.KindBitlist {
			blob, err := decodeJSONHex(raw, path)
			if err != nil {
				return nil, err
			}
			if t.Kind() == ssz.KindBitlist {
				return bitfield.Bitlist(blob), nil
			}
			return blob, nil
		}
		var items []jsoniter.RawMessage
		if err := json.Unmarshal(raw, &items); err != nil {
			return nil, fmt.Errorf("%w: %s: %v", ErrInvalidJSON, path, err)
		}
		values := make([]ssz.Value, len(items))
		for i, item := range items {
			v, err := decodeJSON(t.Elem(), item, fmt.Sprintf("%s[%d]", path, i))
			if err != nil {
				return nil, err
			}
			values[i] = v
		}
		return values, nil

	case ssz.KindContainer:
		var fields map[string]jsoniter.RawMessage
		if err := json.Unmarshal(raw, &fields); err != nil {
			return nil, fmt.Errorf("%w: %s: %v", ErrInvalidJSON, path, err)
		}
		obj := &ssz.Object{Type: t, Fields: make([]ssz.Value, len(t.Fields()))}
		for i, field := range t.Fields() {
			item, ok := fields[field.Name]
			if !ok {
				return nil, fmt.Errorf("%w: %s: missing field %s", ErrInvalidJSON, path, field.Name)
			}
			v, err := decodeJSON(field.Type, item, path+"."+field.Name)
			if err != nil {
				return nil, err
			}
			obj.Fields[i] = v
		}
		return obj, nil

	case ssz.KindUnion:
		var sel struct {
			Selector jsoniter.RawMessage `json:"selector"`
			Value    jsoniter.RawMessage `json:"value"`
		}
		if err := json.Unmarshal(raw, &sel); err != nil {
			return nil, fmt.Errorf("%w: %s: %v", ErrInvalidJSON, path, err)
		}
		selector, err := decodeJSONUint(ssz.Uint8(), sel.Selector, path+".selector")
		if err != nil {
			return nil, err
		}
		index := selector.(uint8)
		if int(index) >= len(t.Variants()) {
			return nil, fmt.Errorf("%w: %s: selector %d out of range", ErrInvalidJSON, path, index)
		}
		variant := t.Variants()[index]
		if variant == nil {
			if len(sel.Value) != 0 && string(sel.Value) != "null" {
				return nil, fmt.Errorf("%w: %s: value for None variant", ErrInvalidJSON, path)
			}
			return &ssz.Selection{Selector: index}, nil
		}
		v, err := decodeJSON(variant, sel.Value, path+".value")
		if err != nil {
			return nil, err
		}
		return &ssz.Selection{Selector: index, Value: v}, nil

	default:
		return nil, fmt.Errorf("%w: %s: unsupported type %v", ErrInvalidJSON, path, t)
	}
}

// decodeJSONUint parses an integer given either as a decimal string or as a
// bare JSON number.
func decodeJSONUint(t *ssz.Type, raw jsoniter.RawMessage, path string) (ssz.Value, error) {
	text := string(bytes.TrimSpace(raw))
	if len(text) > 0 && text[0] == '"' {
		if err := json.Unmarshal(raw, &text); err != nil {
			return nil, fmt.Errorf("%w: %s: %v", ErrInvalidJSON, path, err)
		}
	}
	if t.Bits() > 64 {
		n, err := uint256.FromDecimal(text)
		if err != nil || n.BitLen() > t.Bits() {
			return nil, fmt.Errorf("%w: %s: invalid uint%d %q", ErrInvalidJSON, path, t.Bits(), text)
		}
		return n, nil
	}
	n, err := strconv.ParseUint(text, 10, t.Bits())
	if err != nil {
		return nil, fmt.Errorf("%w: %s: invalid uint%d %q", ErrInvalidJSON, path, t.Bits(), text)
	}
	switch t.Bits() {
	case 8:
		return uint8(n), nil
	case 16:
		return uint16(n), nil
	case 32:
		return uint32(n), nil
	default:
		return n, nil
	}
}

// decodeJSONHex parses a 0x-prefixed hex string.
func decodeJSONHex(raw jsoniter.RawMessage, path string) ([]byte, error) {
	var text string
	if err := json.Unmarshal(raw, &text); err != nil {
		return nil, fmt.Errorf("%w: %s: %v", ErrInvalidJSON, path, err)
	}
	blob, err := hexutil.Decode(text)
	if err != nil {
		return nil, fmt.Errorf("%w: %s: %v", ErrInvalidJSON, path, err)
	}
	return blob, nil
}
