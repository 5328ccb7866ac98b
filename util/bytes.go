// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package util

import (
	"encoding/binary"

	"github.com/bitmark-inc/drived/fault"
)

// AppendBytes - append a Varint64 length prefix followed by data
func AppendBytes(buffer []byte, data []byte) []byte {
	buffer = AppendVarint64(buffer, uint64(len(data)))
	return append(buffer, data...)
}

// AppendUint64 - append a fixed 8 byte big endian value
func AppendUint64(buffer []byte, value uint64) []byte {
	b := make([]byte, 8)
	binary.BigEndian.PutUint64(b, value)
	return append(buffer, b...)
}

// AppendUint16 - append a fixed 2 byte big endian value
func AppendUint16(buffer []byte, value uint16) []byte {
	return append(buffer, byte(value>>8), byte(value))
}

// Reader - sequential decoder over a byte buffer
//
// the first failure is remembered and all later reads return zero
// values, so a caller only needs to check Err once at the end
type Reader struct {
	buffer []byte
	offset int
	err    error
}

// NewReader - create a reader for buffer
func NewReader(buffer []byte) *Reader {
	return &Reader{
		buffer: buffer,
	}
}

// Err - the first error encountered
func (r *Reader) Err() error {
	return r.err
}

// Fail - record err unless an earlier error is already held
func (r *Reader) Fail(err error) {
	if nil == r.err {
		r.err = err
	}
}

// Remaining - number of unread bytes
func (r *Reader) Remaining() int {
	return len(r.buffer) - r.offset
}

// Varint64 - read one Varint64
func (r *Reader) Varint64() uint64 {
	if nil != r.err {
		return 0
	}
	value, n := FromVarint64(r.buffer[r.offset:])
	if 0 == n {
		r.err = fault.ErrInvalidVarint
		return 0
	}
	r.offset += n
	return value
}

// Count - read an item count, every item needs at least one byte
func (r *Reader) Count() int {
	n := r.Varint64()
	if nil != r.err {
		return 0
	}
	if n > uint64(r.Remaining()) {
		r.err = fault.ErrTruncatedData
		return 0
	}
	return int(n)
}

// Fixed - read exactly n bytes
func (r *Reader) Fixed(n int) []byte {
	if nil != r.err {
		return nil
	}
	if n < 0 || r.Remaining() < n {
		r.err = fault.ErrTruncatedData
		return nil
	}
	b := make([]byte, n)
	copy(b, r.buffer[r.offset:r.offset+n])
	r.offset += n
	return b
}

// Byte - read a single byte
func (r *Reader) Byte() byte {
	b := r.Fixed(1)
	if nil == b {
		return 0
	}
	return b[0]
}

// Bytes - read a length prefixed byte slice
func (r *Reader) Bytes() []byte {
	n := r.Varint64()
	if nil != r.err {
		return nil
	}
	if n > uint64(r.Remaining()) {
		r.err = fault.ErrTruncatedData
		return nil
	}
	return r.Fixed(int(n))
}

// Uint64 - read a fixed 8 byte big endian value
func (r *Reader) Uint64() uint64 {
	b := r.Fixed(8)
	if nil == b {
		return 0
	}
	return binary.BigEndian.Uint64(b)
}

// Uint16 - read a fixed 2 byte big endian value
func (r *Reader) Uint16() uint16 {
	b := r.Fixed(2)
	if nil == b {
		return 0
	}
	return binary.BigEndian.Uint16(b)
}

// Finish - error unless every byte was consumed
func (r *Reader) Finish() error {
	if nil != r.err {
		return r.err
	}
	if 0 != r.Remaining() {
		return fault.ErrCorruptedSerialization
	}
	return nil
}
