// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package paths_test

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/bitmark-inc/drived/fault"
	"github.com/bitmark-inc/drived/identifier"
	"github.com/bitmark-inc/drived/paths"
)

var contractID = identifier.FromSeed([]byte("dpns"))

func TestDocumentPaths(t *testing.T) {
	typePath := paths.DocumentTypePath(contractID, "domain")
	assert.Equal(t, [][]byte{{64}, contractID.Bytes(), {1}, []byte("domain")}, typePath, "type path")

	assert.Equal(t, append(typePath, []byte{0}), paths.PrimaryStoragePath(contractID, "domain"), "primary path")
	assert.Equal(t, append(typePath, []byte{1}), paths.ContestedStoragePath(contractID, "domain"), "contested path")

	doc := identifier.FromSeed([]byte("doc"))
	history := paths.DocumentHistoryPath(contractID, "domain", doc)
	assert.Equal(t, doc.Bytes(), history[len(history)-1], "history path")
}

func TestIndexPath(t *testing.T) {
	path, err := paths.IndexPath(contractID, "domain", []string{"parent", "label"}, [][]byte{[]byte("dash"), []byte("quantum")})
	require.Nil(t, err, "index path")
	expected := append(paths.DocumentTypePath(contractID, "domain"), []byte("parent"), []byte("dash"), []byte("label"), []byte("quantum"))
	assert.Equal(t, expected, path, "index path")

	contest, err := paths.ContestPath(contractID, "domain", []string{"parent", "label"}, [][]byte{[]byte("dash"), []byte("quantum")})
	require.Nil(t, err, "contest path")
	assert.Equal(t, append(expected, []byte{0}), contest, "contest path")

	voter := identifier.FromSeed([]byte("i1"))
	assert.Equal(t, append(append(contest, voter.Bytes()), []byte{1}), paths.VoterPath(contest, voter), "voter path")

	_, err = paths.IndexPath(contractID, "domain", []string{"parent"}, nil)
	assert.Equal(t, fault.ErrIndexValuesCount, err, "count mismatch accepted")
}

func TestPathsDoNotAlias(t *testing.T) {
	contest, err := paths.ContestPath(contractID, "domain", []string{"p"}, [][]byte{[]byte("v")})
	require.Nil(t, err, "contest path")
	a := paths.ContenderPath(contest, identifier.FromSeed([]byte("a")))
	b := paths.ContenderPath(contest, identifier.FromSeed([]byte("b")))
	assert.NotEqual(t, a, b, "contender paths share storage")
}

func TestReservedKeysAreDistinctFromIdentifiers(t *testing.T) {
	reserved := [][]byte{paths.TerminalKey, paths.VoteAccumulatorKey, paths.AbstainKey, paths.LockKey}
	id := identifier.FromSeed([]byte("x"))
	for _, r := range reserved {
		assert.Equal(t, 1, len(r), "reserved key is not a single byte")
		assert.False(t, bytes.Equal(r, id.Bytes()), "identifier collides")
	}
}

func TestEndDateKeysSortByTime(t *testing.T) {
	a := paths.EndDateKeyFor(999)
	b := paths.EndDateKeyFor(1000)
	c := paths.EndDateKeyFor(1 << 40)
	assert.True(t, bytes.Compare(a, b) < 0, "999 after 1000")
	assert.True(t, bytes.Compare(b, c) < 0, "1000 after 2^40")
}

func TestRootKeysAscending(t *testing.T) {
	for i := 1; i < len(paths.RootKeys); i += 1 {
		assert.True(t, bytes.Compare(paths.RootKeys[i-1], paths.RootKeys[i]) < 0, "root keys out of order at %d", i)
	}
}
