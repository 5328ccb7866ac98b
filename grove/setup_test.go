// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package grove_test

import (
	"fmt"
	"io/ioutil"
	"os"
	"testing"

	"github.com/bitmark-inc/logger"
	"github.com/stretchr/testify/require"

	"github.com/bitmark-inc/drived/grove"
	"github.com/bitmark-inc/drived/storage"
)

func TestMain(m *testing.M) {
	dir, err := ioutil.TempDir("", "grove-test")
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

func newStore(t *testing.T) *grove.Store {
	db, err := storage.OpenMemory()
	require.Nil(t, err, "open memory database")
	s, err := grove.New(db)
	require.Nil(t, err, "new store")
	return s
}

// apply batches in one transaction and commit
func commit(t *testing.T, s *grove.Store, batches ...*grove.Batch) {
	tx, err := s.Begin()
	require.Nil(t, err, "begin")
	for i, b := range batches {
		require.Nil(t, tx.Apply(b), "apply batch %d", i)
	}
	require.Nil(t, tx.Commit(), "commit")
}

func p(segments ...string) [][]byte {
	path := make([][]byte, len(segments))
	for i, s := range segments {
		path[i] = []byte(s)
	}
	return path
}
