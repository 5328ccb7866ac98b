// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package proof_test

import (
	"errors"
	"testing"

	"github.com/golang/mock/gomock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/bitmark-inc/drived/fault"
	"github.com/bitmark-inc/drived/fee"
	"github.com/bitmark-inc/drived/grove"
	"github.com/bitmark-inc/drived/identifier"
	"github.com/bitmark-inc/drived/paths"
	"github.com/bitmark-inc/drived/proof"
	"github.com/bitmark-inc/drived/proof/mocks"
	"github.com/bitmark-inc/drived/vote"
)

var (
	alice = identifier.FromSeed([]byte("alice"))
	bob   = identifier.FromSeed([]byte("bob"))
)

func balanceBatch() *grove.Batch {
	b := grove.NewBatch()
	b.Insert(nil, []byte{paths.Balances}, grove.NewSumTree(nil))
	b.Insert(paths.BalancesPath(), alice.Bytes(), grove.NewSumItem(500, nil))
	return b
}

func TestRecorderRecordsReads(t *testing.T) {
	ctl := gomock.NewController(t)
	defer ctl.Finish()

	source := mocks.NewMockSource(ctl)
	item := grove.NewItem([]byte("value"), nil)
	source.EXPECT().Get(paths.MiscPath(), paths.TotalCreditsKey).Return(&item, nil).Times(1)
	source.EXPECT().Query(paths.BalancesPath(), gomock.Any()).Return([]grove.KeyElement{}, nil).Times(1)

	r := proof.NewRecorder(source)
	e, err := r.Get(paths.MiscPath(), paths.TotalCreditsKey)
	assert.Nil(t, err, "get")
	assert.Equal(t, &item, e, "wrong element")

	q := &grove.Query{Limit: 10}
	_, err = r.Query(paths.BalancesPath(), q)
	assert.Nil(t, err, "query")

	queries := r.Queries()
	require.Equal(t, 2, len(queries), "wrong query count")
	assert.Equal(t, paths.MiscPath(), queries[0].Path, "wrong get path")
	assert.Equal(t, [][]byte{paths.TotalCreditsKey}, queries[0].Query.Keys, "wrong get keys")
	assert.Equal(t, q, queries[1].Query, "wrong query")
}

func TestReferenceLoopIsCorruption(t *testing.T) {
	ctl := gomock.NewController(t)
	defer ctl.Finish()

	source := mocks.NewMockSource(ctl)
	loop := grove.NewSiblingReference(paths.ContractKey, nil)
	source.EXPECT().Get(gomock.Any(), gomock.Any()).Return(&loop, nil).Times(4)

	_, err := proof.ReadContract(source, alice)
	assert.Equal(t, fault.ErrCorruptedReference, err, "loop not detected")
}

func TestIdentityBalanceProof(t *testing.T) {
	s := newStore(t, balanceBatch())

	read := func(src proof.Source) (*fee.Credits, error) {
		return proof.ReadIdentityBalance(src, alice)
	}
	direct, proven, root := proveAndVerify(t, s, read)
	require.NotNil(t, direct, "direct balance missing")
	require.NotNil(t, proven, "proven balance missing")
	assert.Equal(t, fee.Credits(500), *proven, "wrong proven balance")
	assert.Equal(t, *direct, *proven, "direct and proven differ")
	assert.Equal(t, s.RootHash(), root, "wrong root")

	absent := func(src proof.Source) (*fee.Credits, error) {
		return proof.ReadIdentityBalance(src, bob)
	}
	direct, proven, _ = proveAndVerify(t, s, absent)
	assert.Nil(t, direct, "absent balance found directly")
	assert.Nil(t, proven, "absent balance found in proof")
}

func TestProofCoveringAnotherKeyIsIncomplete(t *testing.T) {
	b := balanceBatch()
	b.Insert(paths.BalancesPath(), bob.Bytes(), grove.NewSumItem(7, nil))
	s := newStore(t, b)

	p, err := s.Prove(grove.PathQuery{Path: paths.BalancesPath(), Query: grove.KeysQuery(alice.Bytes())})
	require.Nil(t, err, "prove")

	_, _, err = proof.Verify(p, func(src proof.Source) (*fee.Credits, error) {
		return proof.ReadIdentityBalance(src, bob)
	})
	assert.True(t, proof.IsIncomplete(err), "unexpected error: %v", err)
}

func TestCorruptedLayoutInProofIsInvalid(t *testing.T) {
	b := grove.NewBatch()
	b.Insert(nil, []byte{paths.Balances}, grove.NewSumTree(nil))
	b.Insert(paths.BalancesPath(), alice.Bytes(), grove.NewItem([]byte("not a balance"), nil))
	s := newStore(t, b)

	p, err := s.Prove(grove.PathQuery{Path: paths.BalancesPath(), Query: grove.KeysQuery(alice.Bytes())})
	require.Nil(t, err, "prove")

	_, _, err = proof.Verify(p, func(src proof.Source) (*fee.Credits, error) {
		return proof.ReadIdentityBalance(src, alice)
	})
	assert.True(t, errors.Is(err, fault.ErrInvalidProof), "unexpected error: %v", err)
}

func TestGarbageProof(t *testing.T) {
	_, _, err := proof.Verify([]byte{1, 2, 3}, func(src proof.Source) (*fee.Credits, error) {
		return proof.ReadIdentityBalance(src, alice)
	})
	assert.Equal(t, fault.ErrInvalidProof, err, "garbage accepted")
}

func endDateBatch(polls map[uint64][]*vote.Poll) *grove.Batch {
	b := grove.NewBatch()
	b.Insert(nil, []byte{paths.Votes}, grove.NewTree(nil))
	b.Insert(paths.VotesPath(), paths.ContestedResourcesKey, grove.NewTree(nil))
	b.Insert(paths.ContestedResourcesPath(), paths.EndDateKey, grove.NewTree(nil))
	for at, list := range polls {
		b.Insert(paths.EndDatePath(), paths.EndDateKeyFor(at), grove.NewTree(nil))
		for _, poll := range list {
			b.Insert(paths.EndDateTimePath(at), poll.ID().Bytes(), grove.NewItem(poll.Serialize(), nil))
		}
	}
	return b
}

func testPoll(label string) *vote.Poll {
	return &vote.Poll{
		ContractID:   alice,
		DocumentType: "domain",
		IndexName:    "parentNameAndLabel",
		IndexValues:  [][]byte{[]byte("dash"), []byte(label)},
	}
}

func TestVotePollsByEndDate(t *testing.T) {
	s := newStore(t, endDateBatch(map[uint64][]*vote.Poll{
		1000: {testPoll("a"), testPoll("b")},
		2000: {testPoll("c")},
		3000: {testPoll("d")},
	}))

	start := uint64(1000)
	end := uint64(2000)
	read := func(src proof.Source) ([]proof.PollsEndingAt, error) {
		return proof.ReadVotePollsByEndDate(src, &proof.EndDateQuery{
			Start:         &start,
			StartIncluded: true,
			End:           &end,
			EndIncluded:   true,
			Ascending:     true,
		})
	}
	direct, proven, _ := proveAndVerify(t, s, read)
	assert.Equal(t, direct, proven, "direct and proven differ")
	require.Equal(t, 2, len(proven), "wrong group count")
	assert.Equal(t, uint64(1000), proven[0].TimeMs, "wrong first time")
	assert.Equal(t, 2, len(proven[0].Polls), "wrong first group")
	assert.Equal(t, uint64(2000), proven[1].TimeMs, "wrong second time")

	limited := func(src proof.Source) ([]proof.PollsEndingAt, error) {
		return proof.ReadVotePollsByEndDate(src, &proof.EndDateQuery{
			Limit: 2,
		})
	}
	direct, proven, _ = proveAndVerify(t, s, limited)
	assert.Equal(t, direct, proven, "direct and proven differ")
	require.Equal(t, 2, len(proven), "wrong descending group count")
	assert.Equal(t, uint64(3000), proven[0].TimeMs, "descending starts at the latest")
	assert.Equal(t, uint64(2000), proven[1].TimeMs, "wrong second descending time")
}

func TestIdentityVotesPaging(t *testing.T) {
	b := endDateBatch(nil)
	b.Insert(paths.ContestedResourcesPath(), paths.IdentityVotesKey, grove.NewTree(nil))
	b.Insert(paths.AllIdentityVotesPath(), bob.Bytes(), grove.NewTree(nil))
	for _, label := range []string{"a", "b", "c"} {
		v := &vote.ResourceVote{
			Poll:   *testPoll(label),
			Choice: vote.Choice{Kind: vote.Abstain},
		}
		b.Insert(paths.IdentityVotesPath(bob), v.Poll.ID().Bytes(), grove.NewItem(v.Serialize(), nil))
	}
	s := newStore(t, b)

	read := func(src proof.Source) ([]*vote.ResourceVote, error) {
		return proof.ReadIdentityVotes(src, bob, proof.Page{Limit: 2, Ascending: true})
	}
	direct, proven, _ := proveAndVerify(t, s, read)
	assert.Equal(t, direct, proven, "direct and proven differ")
	assert.Equal(t, 2, len(proven), "limit ignored")
	for _, v := range proven {
		assert.Equal(t, vote.Abstain, v.Choice.Kind, "wrong choice")
	}
}
