// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package transition_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/bitmark-inc/drived/fault"
	"github.com/bitmark-inc/drived/identifier"
	"github.com/bitmark-inc/drived/transition"
	"github.com/bitmark-inc/drived/vote"
)

func TestDocumentsBatchRoundTrip(t *testing.T) {
	contractID := identifier.FromSeed([]byte("c"))
	b := &transition.DocumentsBatch{
		Owner: identifier.FromSeed([]byte("owner")),
		Transitions: []transition.DocumentTransition{
			{
				Action:       transition.Create,
				ContractID:   contractID,
				DocumentType: "note",
				DocumentID:   identifier.FromSeed([]byte("n1")),
				Revision:     1,
				Properties:   map[string]interface{}{"title": "hello"},
			},
			{
				Action:       transition.Delete,
				ContractID:   contractID,
				DocumentType: "note",
				DocumentID:   identifier.FromSeed([]byte("n0")),
			},
		},
	}
	buffer, err := b.Serialize()
	require.Nil(t, err, "serialize")

	st, err := transition.Deserialize(buffer)
	require.Nil(t, err, "deserialize")
	assert.Equal(t, transition.DocumentsBatchKind, st.Kind(), "kind")
	assert.Equal(t, b, st, "round trip")
}

func TestMasternodeVoteRoundTrip(t *testing.T) {
	v := &transition.MasternodeVote{
		Voter: identifier.FromSeed([]byte("mn")),
		Vote: vote.ResourceVote{
			Poll: vote.Poll{
				ContractID:   identifier.FromSeed([]byte("c")),
				DocumentType: "domain",
				IndexName:    "parentNameAndLabel",
				IndexValues:  [][]byte{[]byte("dash"), []byte("quantum")},
			},
			Choice: vote.Choice{Kind: vote.Abstain},
		},
	}
	buffer, err := v.Serialize()
	require.Nil(t, err, "serialize")

	st, err := transition.Deserialize(buffer)
	require.Nil(t, err, "deserialize")
	assert.Equal(t, v, st, "round trip")
}

func TestDeserializeRejects(t *testing.T) {
	for _, buffer := range [][]byte{nil, {9}, {byte(transition.MasternodeVoteKind), 1, 2}, {byte(transition.DocumentsBatchKind)}} {
		_, err := transition.Deserialize(buffer)
		assert.Equal(t, fault.ErrInvalidStateTransition, err, "accepted: %x", buffer)
	}
}

func TestResultRevision(t *testing.T) {
	tests := []struct {
		action   transition.Action
		revision uint64
		expected uint64
		err      error
	}{
		{transition.Create, 0, transition.InitialRevision, nil},
		{transition.Create, 1, transition.InitialRevision, nil},
		{transition.Create, 2, 0, fault.ErrInvalidRevision},
		{transition.Replace, 5, 5, nil},
		{transition.Delete, 3, 0, nil},
	}

	for i, item := range tests {
		dt := transition.DocumentTransition{Action: item.action, Revision: item.revision}
		revision, err := dt.ResultRevision()
		assert.Equal(t, item.err, err, "%d: wrong error", i)
		assert.Equal(t, item.expected, revision, "%d: wrong revision", i)
	}
}
