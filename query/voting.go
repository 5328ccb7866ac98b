// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package query

import (
	"github.com/bitmark-inc/drived/fault"
	"github.com/bitmark-inc/drived/identifier"
	"github.com/bitmark-inc/drived/wire"
)

// GetContestedResourceVoteState - contenders and tallies of a poll
func (h *Handler) GetContestedResourceVoteState(request *wire.GetContestedResourceVoteStateRequest) (*wire.GetContestedResourceVoteStateResponse, error) {
	if err := h.allow("vote state"); nil != err {
		return nil, err
	}
	if nil == request.V0 {
		return nil, fault.ErrEmptyVersion
	}
	poll, err := request.V0.Poll()
	if nil != err {
		return nil, err
	}

	state, proven, err := h.drive.FetchVoteState(poll, request.V0.IncludeDocuments, request.V0.Prove)
	if nil != err {
		return nil, err
	}
	response := &wire.GetContestedResourceVoteStateResponseV0{}
	if nil != proven {
		response.Proof, response.Metadata, err = h.proved(proven)
		if nil != err {
			return nil, err
		}
	} else if nil != state {
		response.Found = true
		response.AbstainTally = state.AbstainTally
		response.LockTally = state.LockTally
		for _, c := range state.Contenders {
			response.Contenders = append(response.Contenders, &wire.Contender{
				Identifier: c.Identity.Bytes(),
				Tally:      c.Tally,
				Document:   c.Document,
			})
		}
		if d := state.Decision; nil != d {
			response.Finished = &wire.FinishedVoteInfo{
				Outcome:               uint32(d.Outcome),
				FinishedAtBlockHeight: d.BlockHeight,
				FinishedAtBlockTimeMs: d.FinishedAt,
			}
			if !d.Winner.IsZero() {
				response.Finished.WonByIdentityId = d.Winner.Bytes()
			}
		}
	}
	return &wire.GetContestedResourceVoteStateResponse{V0: response}, nil
}

// GetContestedResources - value tuples of a contested index with a
// running contest
func (h *Handler) GetContestedResources(request *wire.GetContestedResourcesRequest) (*wire.GetContestedResourcesResponse, error) {
	if err := h.allow("contested resources"); nil != err {
		return nil, err
	}
	if nil == request.V0 {
		return nil, fault.ErrEmptyVersion
	}
	contractID, err := identifier.FromBytes(request.V0.ContractId)
	if nil != err {
		return nil, err
	}

	values, proven, err := h.drive.FetchContestedResources(contractID, request.V0.Query(), request.V0.Prove)
	if nil != err {
		return nil, err
	}
	response := &wire.GetContestedResourcesResponseV0{}
	if nil != proven {
		response.Proof, response.Metadata, err = h.proved(proven)
		if nil != err {
			return nil, err
		}
	} else {
		for _, v := range values {
			response.Resources = append(response.Resources, &wire.IndexValues{Values: v})
		}
	}
	return &wire.GetContestedResourcesResponse{V0: response}, nil
}

// GetContestedResourceVoters - identities voting for a contender
func (h *Handler) GetContestedResourceVoters(request *wire.GetContestedResourceVotersRequest) (*wire.GetContestedResourceVotersResponse, error) {
	if err := h.allow("voters"); nil != err {
		return nil, err
	}
	if nil == request.V0 {
		return nil, fault.ErrEmptyVersion
	}
	poll, err := request.V0.Poll()
	if nil != err {
		return nil, err
	}
	contender, err := request.V0.Contender()
	if nil != err {
		return nil, err
	}

	voters, proven, err := h.drive.FetchVoters(poll, contender, request.V0.Page(), request.V0.Prove)
	if nil != err {
		return nil, err
	}
	response := &wire.GetContestedResourceVotersResponseV0{}
	if nil != proven {
		response.Proof, response.Metadata, err = h.proved(proven)
		if nil != err {
			return nil, err
		}
	} else if nil != voters {
		response.Found = true
		for _, v := range voters {
			response.Voters = append(response.Voters, v.Bytes())
		}
	}
	return &wire.GetContestedResourceVotersResponse{V0: response}, nil
}

// GetIdentityVotes - running votes of one voter
func (h *Handler) GetIdentityVotes(request *wire.GetIdentityVotesRequest) (*wire.GetIdentityVotesResponse, error) {
	if err := h.allow("identity votes"); nil != err {
		return nil, err
	}
	if nil == request.V0 {
		return nil, fault.ErrEmptyVersion
	}
	voter, err := identifier.FromBytes(request.V0.IdentityId)
	if nil != err {
		return nil, err
	}

	votes, proven, err := h.drive.FetchIdentityVotes(voter, request.V0.Page(), request.V0.Prove)
	if nil != err {
		return nil, err
	}
	response := &wire.GetIdentityVotesResponseV0{}
	if nil != proven {
		response.Proof, response.Metadata, err = h.proved(proven)
		if nil != err {
			return nil, err
		}
	} else {
		for _, v := range votes {
			response.Votes = append(response.Votes, v.Serialize())
		}
	}
	return &wire.GetIdentityVotesResponse{V0: response}, nil
}

// GetVotePollsByEndDate - polls grouped by end time
func (h *Handler) GetVotePollsByEndDate(request *wire.GetVotePollsByEndDateRequest) (*wire.GetVotePollsByEndDateResponse, error) {
	if err := h.allow("polls by end date"); nil != err {
		return nil, err
	}
	if nil == request.V0 {
		return nil, fault.ErrEmptyVersion
	}

	groups, proven, err := h.drive.FetchVotePollsByEndDate(request.V0.Query(), request.V0.Prove)
	if nil != err {
		return nil, err
	}
	response := &wire.GetVotePollsByEndDateResponseV0{}
	if nil != proven {
		response.Proof, response.Metadata, err = h.proved(proven)
		if nil != err {
			return nil, err
		}
	} else {
		for _, g := range groups {
			group := &wire.PollsAtTime{TimeMs: g.TimeMs}
			for _, p := range g.Polls {
				group.Polls = append(group.Polls, p.Serialize())
			}
			response.Groups = append(response.Groups, group)
		}
	}
	return &wire.GetVotePollsByEndDateResponse{V0: response}, nil
}
