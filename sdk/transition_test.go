// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package sdk_test

import (
	"testing"

	"github.com/golang/mock/gomock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/bitmark-inc/drived/contract"
	"github.com/bitmark-inc/drived/drive"
	"github.com/bitmark-inc/drived/fault"
	"github.com/bitmark-inc/drived/fixtures"
	"github.com/bitmark-inc/drived/identifier"
	"github.com/bitmark-inc/drived/sdk"
	"github.com/bitmark-inc/drived/sdk/mocks"
	"github.com/bitmark-inc/drived/transition"
	"github.com/bitmark-inc/drived/wire"
)

var agenda = identifier.FromSeed([]byte("sdk/agenda"))

func notesBatch() *transition.DocumentsBatch {
	return &transition.DocumentsBatch{
		Owner: fixtures.OwnerID,
		Transitions: []transition.DocumentTransition{
			{
				Action:       transition.Create,
				ContractID:   fixtures.ContractID,
				DocumentType: fixtures.NoteType,
				DocumentID:   agenda,
				Revision:     1,
				Properties:   map[string]interface{}{"title": "agenda"},
			},
			{
				Action:       transition.Replace,
				ContractID:   fixtures.ContractID,
				DocumentType: fixtures.NoteType,
				DocumentID:   note.ID,
				Revision:     2,
				Properties:   map[string]interface{}{"title": "minutes, approved"},
			},
		},
	}
}

func transitionRequest(t *testing.T, st transition.StateTransition) *wire.WaitForStateTransitionResultRequest {
	buffer, err := st.Serialize()
	require.Nil(t, err, "serialize transition")
	return &wire.WaitForStateTransitionResultRequest{
		V0: &wire.WaitForStateTransitionResultRequestV0{
			StateTransition: buffer,
			Prove:           true,
		},
	}
}

func TestBatchResultWithKnownContracts(t *testing.T) {
	ctl := gomock.NewController(t)
	defer ctl.Finish()

	n := newNode(t)
	batch := notesBatch()
	n.block(func(b *drive.Block) {
		_, err := b.ApplyStateTransition(batch)
		require.Nil(t, err, "apply batch")
	})

	request := transitionRequest(t, batch)
	response, err := n.handler.WaitForStateTransitionResult(request)
	require.Nil(t, err, "wait for result")

	// the provider is only asked for the quorum key
	provider := mocks.NewMockContextProvider(ctl)
	provider.EXPECT().QuorumPublicKey(gomock.Any(), gomock.Any(), gomock.Any()).DoAndReturn(quorum.QuorumPublicKey).Times(1)

	known := func(id identifier.Identifier) (*contract.Contract, error) {
		if fixtures.ContractID == id {
			return fixtures.Contract(), nil
		}
		return nil, nil
	}
	result, err := sdk.FromProofWithKnownContracts(request, response, known, provider)
	require.Nil(t, err, "verify")
	require.Equal(t, 2, len(result.Documents), "wrong document count")
	assert.Equal(t, "agenda", result.Documents[agenda].Get("title"), "wrong created note")
	assert.Equal(t, uint64(2), result.Documents[note.ID].Revision, "wrong replaced revision")
}

func TestBatchResultFallsBackToProvider(t *testing.T) {
	ctl := gomock.NewController(t)
	defer ctl.Finish()

	n := newNode(t)
	batch := notesBatch()
	n.block(func(b *drive.Block) {
		_, err := b.ApplyStateTransition(batch)
		require.Nil(t, err, "apply batch")
	})

	request := transitionRequest(t, batch)
	response, err := n.handler.WaitForStateTransitionResult(request)
	require.Nil(t, err, "wait for result")

	result, err := sdk.MaybeStateTransitionResultFromProof(request, response, newProvider(ctl))
	require.Nil(t, err, "verify")
	assert.Equal(t, 2, len(result.Documents), "wrong document count")
}

func TestVoteResultFromProof(t *testing.T) {
	ctl := gomock.NewController(t)
	defer ctl.Finish()

	n := newNode(t)
	mv := &transition.MasternodeVote{
		Voter: identifier.FromSeed([]byte("second masternode")),
		Vote:  *voteFor(alice),
	}
	n.block(func(b *drive.Block) {
		_, err := b.ApplyStateTransition(mv)
		require.Nil(t, err, "apply vote")
	})

	request := transitionRequest(t, mv)
	response, err := n.handler.WaitForStateTransitionResult(request)
	require.Nil(t, err, "wait for result")

	result, err := sdk.MaybeStateTransitionResultFromProof(request, response, newProvider(ctl))
	require.Nil(t, err, "verify")
	require.NotNil(t, result.Vote, "no vote")
	assert.Equal(t, alice, result.Vote.Choice.Identity, "wrong choice")
}

func TestUnexecutedTransitionCannotBeProved(t *testing.T) {
	n := newNode(t)

	_, err := n.handler.WaitForStateTransitionResult(transitionRequest(t, notesBatch()))
	assert.Equal(t, fault.ErrDocumentMissingInProof, err, "proof of a batch never applied")
}
