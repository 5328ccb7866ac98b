// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package util

// Varint64MaximumBytes - longest encoding of a uint64
const Varint64MaximumBytes = 9

// AppendVarint64 - append the canonical varint of value
//
// seven bits per byte, least significant group first, the high bit
// set on every byte but the last; a ninth byte carries all eight of
// the remaining bits
func AppendVarint64(buffer []byte, value uint64) []byte {
	for i := 1; i < Varint64MaximumBytes && value >= 0x80; i += 1 {
		buffer = append(buffer, byte(value)|0x80)
		value >>= 7
	}
	return append(buffer, byte(value))
}

// ToVarint64 - the canonical varint of value
func ToVarint64(value uint64) []byte {
	return AppendVarint64(make([]byte, 0, Varint64MaximumBytes), value)
}

// FromVarint64 - decode a varint from the front of buffer
//
// also returns the number of bytes used; a truncated buffer or an
// encoding that is longer than necessary gives 0, 0 so that every
// value has exactly one accepted form
func FromVarint64(buffer []byte) (uint64, int) {
	result := uint64(0)
	shift := uint(0)

	for count := 1; count <= len(buffer) && count <= Varint64MaximumBytes; count += 1 {
		b := buffer[count-1]
		if Varint64MaximumBytes == count {
			if 0 == b {
				return 0, 0
			}
			return result | uint64(b)<<shift, count
		}
		result |= uint64(b&0x7f) << shift
		if 0 == b&0x80 {
			if count > 1 && 0 == b {
				return 0, 0
			}
			return result, count
		}
		shift += 7
	}
	return 0, 0
}
