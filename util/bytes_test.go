// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package util_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/bitmark-inc/drived/fault"
	"github.com/bitmark-inc/drived/util"
)

func TestReaderSequence(t *testing.T) {
	b := util.AppendVarint64(nil, 300)
	b = util.AppendBytes(b, []byte("quantum"))
	b = util.AppendUint64(b, 0x0102030405060708)
	b = util.AppendUint16(b, 0xbeef)
	b = append(b, 0x7f)

	r := util.NewReader(b)
	assert.Equal(t, uint64(300), r.Varint64(), "wrong varint")
	assert.Equal(t, []byte("quantum"), r.Bytes(), "wrong bytes")
	assert.Equal(t, uint64(0x0102030405060708), r.Uint64(), "wrong uint64")
	assert.Equal(t, uint16(0xbeef), r.Uint16(), "wrong uint16")
	assert.Equal(t, byte(0x7f), r.Byte(), "wrong byte")
	assert.Nil(t, r.Finish(), "reader should be fully consumed")
}

func TestReaderTruncated(t *testing.T) {
	b := util.AppendBytes(nil, []byte("dash"))

	r := util.NewReader(b[:3])
	assert.Nil(t, r.Bytes(), "truncated bytes returned data")
	assert.Equal(t, fault.ErrTruncatedData, r.Err(), "wrong error")

	// later reads keep the first error
	assert.Equal(t, uint64(0), r.Uint64(), "read after error returned data")
	assert.Equal(t, fault.ErrTruncatedData, r.Finish(), "wrong finish error")
}

func TestReaderTrailingData(t *testing.T) {
	b := util.AppendUint16(nil, 7)
	b = append(b, 0x00)

	r := util.NewReader(b)
	assert.Equal(t, uint16(7), r.Uint16(), "wrong value")
	assert.Equal(t, fault.ErrCorruptedSerialization, r.Finish(), "trailing byte not detected")
}

func TestReaderBadVarint(t *testing.T) {
	r := util.NewReader([]byte{0x80, 0x80})
	assert.Equal(t, uint64(0), r.Varint64(), "bad varint returned value")
	assert.Equal(t, fault.ErrInvalidVarint, r.Err(), "wrong error")
}

func TestReaderFailKeepsFirstError(t *testing.T) {
	r := util.NewReader([]byte{1, 2})
	r.Fail(fault.ErrInvalidCount)
	r.Fail(fault.ErrTruncatedData)
	assert.Equal(t, fault.ErrInvalidCount, r.Err(), "first error replaced")
	assert.Equal(t, byte(0), r.Byte(), "read after failure")
}
