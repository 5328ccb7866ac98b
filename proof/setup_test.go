// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package proof_test

import (
	"fmt"
	"io/ioutil"
	"os"
	"testing"

	"github.com/bitmark-inc/logger"
	"github.com/stretchr/testify/require"

	"github.com/bitmark-inc/drived/grove"
	"github.com/bitmark-inc/drived/merkle"
	"github.com/bitmark-inc/drived/proof"
	"github.com/bitmark-inc/drived/storage"
)

func TestMain(m *testing.M) {
	dir, err := ioutil.TempDir("", "proof-test")
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

func newStore(t *testing.T, b *grove.Batch) *grove.Store {
	db, err := storage.OpenMemory()
	require.Nil(t, err, "open memory database")
	s, err := grove.New(db)
	require.Nil(t, err, "new store")

	tx, err := s.Begin()
	require.Nil(t, err, "begin")
	require.Nil(t, tx.Apply(b), "apply")
	require.Nil(t, tx.Commit(), "commit")
	return s
}

// run read against the store, prove what it touched and read the
// proof back
func proveAndVerify[T any](t *testing.T, s *grove.Store, read func(proof.Source) (T, error)) (T, T, merkle.Digest) {
	recorder := proof.NewRecorder(s)
	direct, err := read(recorder)
	require.Nil(t, err, "direct read")

	p, err := s.Prove(recorder.Queries()...)
	require.Nil(t, err, "prove")

	root, proven, err := proof.Verify(p, read)
	require.Nil(t, err, "verify")
	return direct, proven, root
}
