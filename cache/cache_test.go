// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package cache_test

import (
	"bytes"
	"fmt"
	"io/ioutil"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/bitmark-inc/logger"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/bitmark-inc/drived/cache"
	"github.com/bitmark-inc/drived/fixtures"
	"github.com/bitmark-inc/drived/identifier"
)

func TestMain(m *testing.M) {
	dir, err := ioutil.TempDir("", "cache-test")
	if nil != err {
		panic(err)
	}
	logging := logger.Configuration{
		Directory: dir,
		File:      "testing.log",
		Size:      1048576,
		Count:     10,
		Console:   false,
		Levels: map[string]string{
			logger.DefaultTag: "critical",
		},
	}
	if err := logger.Initialise(logging); nil != err {
		panic(fmt.Sprintf("logger initialization failed: %s", err))
	}
	rc := m.Run()
	logger.Finalise()
	_ = os.RemoveAll(dir)
	os.Exit(rc)
}

// the fixture contract under another id
func otherContractJSON(id identifier.Identifier) []byte {
	return bytes.Replace(fixtures.ContractJSON(), []byte(fixtures.ContractID.String()), []byte(id.String()), 1)
}

func TestPutGetDelete(t *testing.T) {
	c := cache.New()
	assert.Nil(t, c.Get(fixtures.ContractID), "empty cache returned a contract")

	c.Put(fixtures.Contract())
	got := c.Get(fixtures.ContractID)
	require.NotNil(t, got, "contract not cached")
	assert.Equal(t, fixtures.ContractID, got.ID, "wrong contract")
	assert.Equal(t, 1, c.Len(), "wrong length")

	c.Delete(fixtures.ContractID)
	assert.Nil(t, c.Get(fixtures.ContractID), "contract not deleted")
	assert.Equal(t, 0, c.Len(), "wrong length after delete")
}

func TestSnapshotIsolation(t *testing.T) {
	c := cache.New()
	c.Put(fixtures.Contract())
	s := c.Snapshot()
	c.Delete(fixtures.ContractID)

	ct, err := s.DataContract(fixtures.ContractID)
	require.Nil(t, err, "snapshot lookup")
	require.NotNil(t, ct, "snapshot lost a contract")
	assert.Equal(t, 1, s.Len(), "wrong snapshot length")

	ct, err = s.DataContract(identifier.FromSeed([]byte("unknown")))
	assert.Nil(t, err, "unknown contract error")
	assert.Nil(t, ct, "unknown contract found")
}

func TestWatch(t *testing.T) {
	dir, err := ioutil.TempDir("", "contracts")
	require.Nil(t, err, "temp dir")
	defer os.RemoveAll(dir)

	err = ioutil.WriteFile(filepath.Join(dir, "fixture.json"), fixtures.ContractJSON(), 0600)
	require.Nil(t, err, "write contract")
	err = ioutil.WriteFile(filepath.Join(dir, "broken.json"), []byte("{"), 0600)
	require.Nil(t, err, "write broken contract")

	c := cache.New()
	w, err := c.Watch(dir)
	require.Nil(t, err, "watch")
	defer w.Stop()

	assert.NotNil(t, c.Get(fixtures.ContractID), "existing file not loaded")
	assert.Equal(t, 1, c.Len(), "broken file loaded")

	other := identifier.FromSeed([]byte("watched"))
	err = ioutil.WriteFile(filepath.Join(dir, "other.json"), otherContractJSON(other), 0600)
	require.Nil(t, err, "write second contract")

	for i := 0; i < 100 && nil == c.Get(other); i += 1 {
		time.Sleep(20 * time.Millisecond)
	}
	assert.NotNil(t, c.Get(other), "new file not loaded")
}
