// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package sdk

import (
	"github.com/bitmark-inc/drived/fault"
	"github.com/bitmark-inc/drived/identifier"
	"github.com/bitmark-inc/drived/proof"
	"github.com/bitmark-inc/drived/vote"
	"github.com/bitmark-inc/drived/wire"
)

// ContestedResources - index value tuples with a running contest
type ContestedResources struct {
	Values [][][]byte
}

// Voters - identities voting for one contender
type Voters struct {
	Contender identifier.Identifier
	Voters    []identifier.Identifier
}

// IdentityVotes - running votes cast by one identity
type IdentityVotes struct {
	Voter identifier.Identifier
	Votes []*vote.ResourceVote
}

// VotePolls - polls grouped by end time
type VotePolls struct {
	Groups []proof.PollsEndingAt
}

// MaybeVoteStateFromProof - contenders and tallies of a poll, nil if
// the poll has neither a running contest nor a decision
func MaybeVoteStateFromProof(request *wire.GetContestedResourceVoteStateRequest, response *wire.GetContestedResourceVoteStateResponse, provider ContextProvider) (*vote.ContestState, error) {
	if nil == request.V0 || nil == response.V0 {
		return nil, fault.ErrEmptyVersion
	}
	c, err := trustedContract(provider, request.V0.ContractId)
	if nil != err {
		return nil, err
	}
	poll, err := request.V0.Poll()
	if nil != err {
		return nil, err
	}
	includeDocuments := request.V0.IncludeDocuments
	return verify(response.V0.Proof, response.V0.Metadata, provider, func(src proof.Source) (*vote.ContestState, error) {
		return proof.ReadVoteState(src, c, poll, includeDocuments)
	})
}

// MaybeContestedResourcesFromProof - value tuples of a contested
// index, nil if none is contested
func MaybeContestedResourcesFromProof(request *wire.GetContestedResourcesRequest, response *wire.GetContestedResourcesResponse, provider ContextProvider) (*ContestedResources, error) {
	if nil == request.V0 || nil == response.V0 {
		return nil, fault.ErrEmptyVersion
	}
	c, err := trustedContract(provider, request.V0.ContractId)
	if nil != err {
		return nil, err
	}
	q := request.V0.Query()
	values, err := verify(response.V0.Proof, response.V0.Metadata, provider, func(src proof.Source) ([][][]byte, error) {
		return proof.ReadContestedResources(src, c, q)
	})
	if nil != err || 0 == len(values) {
		return nil, err
	}
	return &ContestedResources{Values: values}, nil
}

// MaybeVotersFromProof - voters of a contender, nil if the contender
// is not in a running contest or has no voters in the window
func MaybeVotersFromProof(request *wire.GetContestedResourceVotersRequest, response *wire.GetContestedResourceVotersResponse, provider ContextProvider) (*Voters, error) {
	if nil == request.V0 || nil == response.V0 {
		return nil, fault.ErrEmptyVersion
	}
	c, err := trustedContract(provider, request.V0.ContractId)
	if nil != err {
		return nil, err
	}
	poll, err := request.V0.Poll()
	if nil != err {
		return nil, err
	}
	contender, err := request.V0.Contender()
	if nil != err {
		return nil, err
	}
	page := request.V0.Page()
	voters, err := verify(response.V0.Proof, response.V0.Metadata, provider, func(src proof.Source) ([]identifier.Identifier, error) {
		return proof.ReadVoters(src, c, poll, contender, page)
	})
	if nil != err || 0 == len(voters) {
		return nil, err
	}
	return &Voters{
		Contender: contender,
		Voters:    voters,
	}, nil
}

// MaybeIdentityVotesFromProof - running votes of an identity, nil if
// it has none in the window
func MaybeIdentityVotesFromProof(request *wire.GetIdentityVotesRequest, response *wire.GetIdentityVotesResponse, provider ContextProvider) (*IdentityVotes, error) {
	if nil == request.V0 || nil == response.V0 {
		return nil, fault.ErrEmptyVersion
	}
	voter, err := identifier.FromBytes(request.V0.IdentityId)
	if nil != err {
		return nil, err
	}
	page := request.V0.Page()
	votes, err := verify(response.V0.Proof, response.V0.Metadata, provider, func(src proof.Source) ([]*vote.ResourceVote, error) {
		return proof.ReadIdentityVotes(src, voter, page)
	})
	if nil != err || 0 == len(votes) {
		return nil, err
	}
	return &IdentityVotes{
		Voter: voter,
		Votes: votes,
	}, nil
}

// MaybeVotePollsByEndDateFromProof - polls ending in a time window,
// nil if there are none
func MaybeVotePollsByEndDateFromProof(request *wire.GetVotePollsByEndDateRequest, response *wire.GetVotePollsByEndDateResponse, provider ContextProvider) (*VotePolls, error) {
	if nil == request.V0 || nil == response.V0 {
		return nil, fault.ErrEmptyVersion
	}
	q := request.V0.Query()
	groups, err := verify(response.V0.Proof, response.V0.Metadata, provider, func(src proof.Source) ([]proof.PollsEndingAt, error) {
		return proof.ReadVotePollsByEndDate(src, q)
	})
	if nil != err || 0 == len(groups) {
		return nil, err
	}
	return &VotePolls{Groups: groups}, nil
}
