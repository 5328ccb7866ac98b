// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package storage

import (
	"testing"

	"github.com/golang/mock/gomock"
	"github.com/stretchr/testify/assert"
	"github.com/syndtr/goleveldb/leveldb"
	ldb_storage "github.com/syndtr/goleveldb/leveldb/storage"

	"github.com/bitmark-inc/drived/fault"
	"github.com/bitmark-inc/drived/storage/mocks"
)

const (
	defaultKey = "key"
)

var (
	defaultValue = []byte{'a'}
)

func newMockCache(t *testing.T) (*mocks.MockCache, *gomock.Controller) {
	ctl := gomock.NewController(t)
	return mocks.NewMockCache(ctl), ctl
}

func setupTestDataAccess(t *testing.T, c Cache) (Access, *leveldb.DB) {
	db, err := leveldb.Open(ldb_storage.NewMemStorage(), nil)
	if nil != err {
		t.Fatalf("open memory database error: %s", err)
	}
	return newDA(db, new(leveldb.Batch), c), db
}

func TestBeginShouldErrorWhenAlreadyInTransaction(t *testing.T) {
	mc, ctl := newMockCache(t)
	defer ctl.Finish()

	da, db := setupTestDataAccess(t, mc)
	defer db.Close()

	err := da.Begin()
	assert.Nil(t, err, "first time Begin should not error")

	err = da.Begin()
	assert.Equal(t, fault.ErrTransactionAlreadyInUse, err, "second time Begin should return error")
}

func TestCommitReleasesBatch(t *testing.T) {
	mc, ctl := newMockCache(t)
	defer ctl.Finish()

	mc.EXPECT().Stage(defaultKey, defaultValue).Times(1)
	mc.EXPECT().Reset().Times(1)

	da, db := setupTestDataAccess(t, mc)
	defer db.Close()

	_ = da.Begin()
	da.Put([]byte(defaultKey), defaultValue)
	err := da.Commit()
	assert.Nil(t, err, "commit error")

	assert.False(t, da.InUse(), "commit did not release batch")
	assert.Equal(t, 0, da.Pending(), "commit did not reset batch")

	err = da.Begin()
	assert.Nil(t, err, "begin after commit should succeed")
}

func TestCommitWithoutBegin(t *testing.T) {
	mc, ctl := newMockCache(t)
	defer ctl.Finish()

	da, db := setupTestDataAccess(t, mc)
	defer db.Close()

	assert.Equal(t, fault.ErrTransactionFinished, da.Commit(), "commit without begin")
}

func TestCommitWriteToDB(t *testing.T) {
	mc, ctl := newMockCache(t)
	defer ctl.Finish()

	mc.EXPECT().Lookup(gomock.Any()).Return(nil, false, false).AnyTimes()
	mc.EXPECT().Stage(gomock.Any(), gomock.Any()).AnyTimes()
	mc.EXPECT().Reset().AnyTimes()

	da, db := setupTestDataAccess(t, mc)
	defer db.Close()

	_ = da.Begin()
	da.Put([]byte(defaultKey), defaultValue)
	_ = da.Commit()

	actual, err := da.Get([]byte(defaultKey))
	assert.Nil(t, err, "get error")
	assert.Equal(t, defaultValue, actual, "commit not write to db")
}

func TestPutActionCached(t *testing.T) {
	mc, ctl := newMockCache(t)
	defer ctl.Finish()

	mc.EXPECT().Stage(defaultKey, defaultValue).Times(1)

	da, db := setupTestDataAccess(t, mc)
	defer db.Close()

	_ = da.Begin()
	da.Put([]byte(defaultKey), defaultValue)
}

func TestDeleteActionCached(t *testing.T) {
	mc, ctl := newMockCache(t)
	defer ctl.Finish()

	mc.EXPECT().Stage("a", []byte{'b'}).Times(1)
	mc.EXPECT().Tombstone("a").Times(1)

	da, db := setupTestDataAccess(t, mc)
	defer db.Close()

	_ = da.Begin()
	da.Put([]byte{'a'}, []byte{'b'})
	da.Delete([]byte{'a'})
}

func TestGetActionReadsFromCache(t *testing.T) {
	mc, ctl := newMockCache(t)
	defer ctl.Finish()

	mc.EXPECT().Lookup(defaultKey).Return(defaultValue, false, true).Times(1)
	mc.EXPECT().Stage(defaultKey, defaultValue).Times(1)

	da, db := setupTestDataAccess(t, mc)
	defer db.Close()

	_ = da.Begin()
	da.Put([]byte(defaultKey), defaultValue)
	actual, _ := da.Get([]byte(defaultKey))

	assert.Equal(t, defaultValue, actual, "wrong cached value")
}

func TestGetStagedDeleteIsNotFound(t *testing.T) {
	mc, ctl := newMockCache(t)
	defer ctl.Finish()

	mc.EXPECT().Lookup(defaultKey).Return(nil, true, true).Times(1)

	da, db := setupTestDataAccess(t, mc)
	defer db.Close()

	// committed value is hidden by the staged delete
	_ = db.Put([]byte(defaultKey), defaultValue, nil)

	_, err := da.Get([]byte(defaultKey))
	assert.Equal(t, leveldb.ErrNotFound, err, "staged delete still visible")
}

func TestAbortResetBatch(t *testing.T) {
	mc, ctl := newMockCache(t)
	defer ctl.Finish()

	mc.EXPECT().Stage(gomock.Any(), gomock.Any()).Times(1)
	mc.EXPECT().Reset().Times(1)

	da, db := setupTestDataAccess(t, mc)
	defer db.Close()

	_ = da.Begin()
	da.Put([]byte(defaultKey), defaultValue)
	assert.True(t, da.InUse(), "inUse not set")
	assert.Equal(t, 1, da.Pending(), "put not staged")
	da.Abort()

	assert.False(t, da.InUse(), "inUse is not reset")
	assert.Equal(t, 0, da.Pending(), "abort did not reset batch")
}

func TestStagedCache(t *testing.T) {
	c := newCache()

	_, _, staged := c.Lookup("x")
	assert.False(t, staged, "empty cache has a staged key")

	c.Stage("x", []byte("y"))
	value, deleted, staged := c.Lookup("x")
	assert.True(t, staged, "value not staged")
	assert.False(t, deleted, "value reported as deleted")
	assert.Equal(t, []byte("y"), value, "wrong value")

	c.Tombstone("x")
	value, deleted, staged = c.Lookup("x")
	assert.True(t, staged, "tombstone not staged")
	assert.True(t, deleted, "tombstone not reported")
	assert.Nil(t, value, "tombstone carries a value")

	c.Reset()
	_, _, staged = c.Lookup("x")
	assert.False(t, staged, "reset kept a staged key")
}
