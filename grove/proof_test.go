// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package grove_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/bitmark-inc/drived/fault"
	"github.com/bitmark-inc/drived/grove"
)

func proofFixture(t *testing.T) *grove.Store {
	s := newStore(t)
	b := grove.NewBatch()
	b.Insert(nil, []byte("docs"), grove.NewTree(nil))
	b.Insert(nil, []byte("index"), grove.NewTree(nil))
	b.Insert(nil, []byte("other"), grove.NewItem([]byte("x"), nil))
	b.Insert(p("docs"), []byte("d1"), grove.NewItem([]byte("doc one"), nil))
	b.Insert(p("docs"), []byte("d2"), grove.NewItem([]byte("doc two"), nil))
	b.Insert(p("docs"), []byte("d3"), grove.NewItem([]byte("doc three"), nil))
	b.Insert(p("index"), []byte("name"), grove.NewReference(p("docs"), []byte("d2"), nil))
	commit(t, s, b)
	return s
}

func TestProveAndVerifyPresent(t *testing.T) {
	s := proofFixture(t)

	proof, err := s.Prove(grove.PathQuery{Path: p("docs"), Query: grove.KeysQuery([]byte("d1"))})
	require.Nil(t, err, "prove")

	v, err := grove.Verify(proof)
	require.Nil(t, err, "verify")
	assert.Equal(t, s.RootHash(), v.RootHash(), "root mismatch")

	e, err := v.Get(p("docs"), []byte("d1"))
	require.Nil(t, err, "get")
	require.NotNil(t, e, "element missing")
	assert.Equal(t, []byte("doc one"), e.Value, "wrong value")

	// present but not revealed
	_, err = v.Get(p("docs"), []byte("d2"))
	assert.Equal(t, fault.ErrIncompleteProof, err, "unrevealed element returned")

	// layer not in the proof
	_, err = v.Get(p("index"), []byte("name"))
	assert.Equal(t, fault.ErrIncompleteProof, err, "missing layer returned")
}

func TestProveAbsence(t *testing.T) {
	s := proofFixture(t)

	proof, err := s.Prove(
		grove.PathQuery{Path: p("docs"), Query: grove.KeysQuery([]byte("d9"))},
		grove.PathQuery{Path: p("nothing", "below"), Query: grove.KeysQuery([]byte("k"))},
		grove.PathQuery{Path: p("other", "below"), Query: grove.KeysQuery([]byte("k"))},
	)
	require.Nil(t, err, "prove")

	v, err := grove.Verify(proof)
	require.Nil(t, err, "verify")
	assert.Equal(t, s.RootHash(), v.RootHash(), "root mismatch")

	e, err := v.Get(p("docs"), []byte("d9"))
	assert.Nil(t, err, "absent key")
	assert.Nil(t, e, "absent key returned element")

	e, err = v.Get(p("nothing", "below"), []byte("k"))
	assert.Nil(t, err, "absent path")
	assert.Nil(t, e, "absent path returned element")

	e, err = v.Get(p("other", "below"), []byte("k"))
	assert.Nil(t, err, "path through item")
	assert.Nil(t, e, "path through item returned element")
}

func TestProveFollowsReferences(t *testing.T) {
	s := proofFixture(t)

	proof, err := s.Prove(grove.PathQuery{Path: p("index"), Query: grove.KeysQuery([]byte("name"))})
	require.Nil(t, err, "prove")

	v, err := grove.Verify(proof)
	require.Nil(t, err, "verify")

	e, err := v.GetResolved(p("index"), []byte("name"))
	require.Nil(t, err, "resolve")
	require.NotNil(t, e, "target missing")
	assert.Equal(t, []byte("doc two"), e.Value, "wrong target")
}

func TestProveRangeQuery(t *testing.T) {
	s := proofFixture(t)

	q := &grove.Query{Start: []byte("d2"), StartInclusive: true, Limit: 5}
	proof, err := s.Prove(grove.PathQuery{Path: p("docs"), Query: q})
	require.Nil(t, err, "prove")

	v, err := grove.Verify(proof)
	require.Nil(t, err, "verify")

	entries, err := v.Query(p("docs"), q)
	require.Nil(t, err, "query")
	require.Equal(t, 2, len(entries), "wrong count")
	assert.Equal(t, []byte("d2"), entries[0].Key, "wrong first key")
	assert.Equal(t, []byte("d3"), entries[1].Key, "wrong second key")

	// a wider query than the proof covers is detected
	_, err = v.Query(p("docs"), grove.AllKeys())
	assert.Equal(t, fault.ErrIncompleteProof, err, "hidden entry not detected")

	keys, err := v.Keys(p("docs"))
	assert.Nil(t, err, "keys")
	assert.Equal(t, 3, len(keys), "wrong key count")
}

func TestTamperedProofFails(t *testing.T) {
	s := proofFixture(t)

	proof, err := s.Prove(grove.PathQuery{Path: p("docs"), Query: grove.KeysQuery([]byte("d1"))})
	require.Nil(t, err, "prove")

	// every single byte change either breaks decoding or the root
	for i := range proof {
		tampered := append([]byte{}, proof...)
		tampered[i] ^= 0x01
		v, err := grove.Verify(tampered)
		if nil == err {
			assert.NotEqual(t, s.RootHash(), v.RootHash(), "byte %d: tampering not detected", i)
		}
	}

	_, err = grove.Verify(proof[:len(proof)-1])
	assert.Equal(t, fault.ErrInvalidProof, err, "truncated proof accepted")

	_, err = grove.Verify(append(proof, 0x00))
	assert.Equal(t, fault.ErrInvalidProof, err, "trailing data accepted")
}
