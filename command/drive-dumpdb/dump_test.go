// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package main

import (
	"bytes"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/bitmark-inc/drived/grove"
	"github.com/bitmark-inc/drived/storage"
)

func setupDatabase(t *testing.T) *storage.Database {
	db, err := storage.OpenMemory()
	if nil != err {
		t.Fatalf("open error: %s", err)
	}

	_ = db.Begin()
	db.Put([]byte("Ea1"), grove.NewItem([]byte("hello"), nil).Serialize())
	db.Put([]byte("Ea2"), grove.NewSumItem(42, nil).Serialize())
	db.Put([]byte("Eb1"), []byte{0xff})
	db.Put([]byte("R"), bytes.Repeat([]byte{0x11}, 32))
	if err := db.Commit(); nil != err {
		t.Fatalf("commit error: %s", err)
	}
	return db
}

func TestDumpPrefix(t *testing.T) {
	db := setupDatabase(t)
	defer db.Close()

	out := &bytes.Buffer{}
	d := dumper{out: out, count: 10, earlyStop: true, decode: true}

	prefix, ok := tagPrefix("E")
	assert.True(t, ok, "E tag missing")

	err := d.dump(db, append(prefix, 'a'))
	assert.Nil(t, err, "wrong error")

	text := out.String()
	assert.Contains(t, text, "0: Key: 456131", "first key missing")
	assert.Contains(t, text, "0: Dec: item: 5 bytes", "item not decoded")
	assert.Contains(t, text, "1: Dec: sum item: 42", "sum item not decoded")
	assert.NotContains(t, text, "456231", "key beyond prefix")
	assert.Contains(t, text, "*** early stop", "missing early stop")
}

func TestDumpCount(t *testing.T) {
	db := setupDatabase(t)
	defer db.Close()

	out := &bytes.Buffer{}
	d := dumper{out: out, count: 3}

	prefix, _ := tagPrefix("E")
	err := d.dump(db, prefix)
	assert.Nil(t, err, "wrong error")

	text := out.String()
	assert.Equal(t, 6, strings.Count(text, "\n"), "wrong number of lines")
	assert.Contains(t, text, "2: Val: ff", "undecoded value missing")
	assert.NotContains(t, text, "Dec:", "decoded without option")
}

func TestUnknownTag(t *testing.T) {
	_, ok := tagPrefix("Z")
	assert.False(t, ok, "unknown tag accepted")
}

func TestHexDump(t *testing.T) {
	out := &bytes.Buffer{}
	hexDump(out, "> ", "", []byte("ab\x00"))
	assert.True(t, strings.HasPrefix(out.String(), "> 0000  61 62 00 "), "wrong hex: %q", out.String())
	assert.True(t, strings.HasSuffix(out.String(), "|ab.|\n"), "wrong ascii: %q", out.String())
}
