// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package contract

import (
	"encoding/binary"
	"math"

	"github.com/bitmark-inc/drived/fault"
	"github.com/bitmark-inc/drived/identifier"
)

const signBit = uint64(1) << 63

// EncodeIndexValue - canonical order preserving key for a value
//
// integers: 8 bytes big endian with the sign bit flipped
// numbers:  IEEE 754 bits, negative values inverted, positive values
//           with the sign bit set
// strings:  UTF-8, booleans: one byte, identifiers and bytes: raw
// null and the empty string: the empty key
func EncodeIndexValue(t PropertyType, value interface{}) ([]byte, error) {
	if nil == value {
		return []byte{}, nil
	}
	switch t {
	case IntegerProperty:
		i, ok := value.(int64)
		if !ok {
			return nil, fault.ErrInvalidPropertyValue
		}
		return encodeUint64(uint64(i) ^ signBit), nil

	case NumberProperty:
		f, ok := value.(float64)
		if !ok || math.IsNaN(f) {
			return nil, fault.ErrInvalidPropertyValue
		}
		bits := math.Float64bits(f)
		if 0 != bits&signBit {
			bits = ^bits
		} else {
			bits |= signBit
		}
		return encodeUint64(bits), nil

	case StringProperty:
		s, ok := value.(string)
		if !ok {
			return nil, fault.ErrInvalidPropertyValue
		}
		return []byte(s), nil

	case BooleanProperty:
		b, ok := value.(bool)
		if !ok {
			return nil, fault.ErrInvalidPropertyValue
		}
		if b {
			return []byte{1}, nil
		}
		return []byte{0}, nil

	case IdentifierProperty:
		id, ok := value.(identifier.Identifier)
		if !ok {
			return nil, fault.ErrInvalidPropertyValue
		}
		return id.Bytes(), nil

	case BytesProperty:
		b, ok := value.([]byte)
		if !ok {
			return nil, fault.ErrInvalidPropertyValue
		}
		result := make([]byte, len(b))
		copy(result, b)
		return result, nil
	}
	return nil, fault.ErrInvalidPropertyType
}

// IsNullKey - true for the key of a missing value
func IsNullKey(key []byte) bool {
	return 0 == len(key)
}

func encodeUint64(n uint64) []byte {
	buffer := make([]byte, 8)
	binary.BigEndian.PutUint64(buffer, n)
	return buffer
}
