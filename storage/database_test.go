// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package storage_test

import (
	"io/ioutil"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/bitmark-inc/drived/fault"
	"github.com/bitmark-inc/drived/storage"
)

func TestOpenAndReopen(t *testing.T) {
	dir, err := ioutil.TempDir("", "drive-storage")
	require.Nil(t, err, "temp dir")
	defer os.RemoveAll(dir)

	name := filepath.Join(dir, "state.leveldb")

	// read only open of a missing database fails
	_, err = storage.Open(name, storage.ReadOnly)
	assert.NotNil(t, err, "missing database opened read only")

	db, err := storage.Open(name, storage.ReadWrite)
	require.Nil(t, err, "open error")

	require.Nil(t, db.Begin(), "begin error")
	db.Put([]byte("Ekey"), []byte("value"))
	require.Nil(t, db.Commit(), "commit error")
	require.Nil(t, db.Close(), "close error")

	db, err = storage.Open(name, storage.ReadOnly)
	require.Nil(t, err, "reopen error")
	defer db.Close()

	value, err := db.Get([]byte("Ekey"))
	assert.Nil(t, err, "get error")
	assert.Equal(t, []byte("value"), value, "value not persisted")
}

func TestMemoryIterator(t *testing.T) {
	db, err := storage.OpenMemory()
	require.Nil(t, err, "open error")
	defer db.Close()

	require.Nil(t, db.Begin(), "begin error")
	db.Put([]byte("E2"), []byte("two"))
	db.Put([]byte("E1"), []byte("one"))
	db.Put([]byte("F1"), []byte("other"))
	db.Delete([]byte("E3"))
	require.Nil(t, db.Commit(), "commit error")

	iter := db.Iterator(nil)
	defer iter.Release()

	keys := []string{}
	for iter.Next() {
		keys = append(keys, string(iter.Key()))
	}
	// version record sorts first
	assert.Equal(t, []string{"\x00VERSION", "E1", "E2", "F1"}, keys, "wrong key order")
}

func TestDoubleBegin(t *testing.T) {
	db, err := storage.OpenMemory()
	require.Nil(t, err, "open error")
	defer db.Close()

	require.Nil(t, db.Begin(), "begin error")
	assert.Equal(t, fault.ErrTransactionAlreadyInUse, db.Begin(), "second begin")
	db.Abort()
	assert.Nil(t, db.Begin(), "begin after abort")
}
