// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package drive

import (
	"github.com/bitmark-inc/drived/contract"
	"github.com/bitmark-inc/drived/document"
	"github.com/bitmark-inc/drived/fault"
	"github.com/bitmark-inc/drived/fee"
	"github.com/bitmark-inc/drived/identifier"
	"github.com/bitmark-inc/drived/proof"
	"github.com/bitmark-inc/drived/transition"
	"github.com/bitmark-inc/drived/vote"
)

// run read against committed state; with prove the result is
// replaced by a proof of everything read
func query[T any](d *Drive, prove bool, read func(src proof.Source) (T, error)) (T, *Proven, error) {
	var result T
	reader := func(src proof.Source) error {
		var err error
		result, err = read(src)
		return err
	}
	if !prove {
		err := d.Read(reader)
		return result, nil, err
	}
	proven, err := d.Prove(reader)
	return result, proven, err
}

// FetchContract - a committed contract or a proof of it
func (d *Drive) FetchContract(id identifier.Identifier, prove bool) (*contract.Contract, *Proven, error) {
	return query(d, prove, func(src proof.Source) (*contract.Contract, error) {
		return proof.ReadContract(src, id)
	})
}

// FetchDocument - a committed document, nil if absent
func (d *Drive) FetchDocument(contractID identifier.Identifier, typeName string, id identifier.Identifier, prove bool) (*document.Document, *Proven, error) {
	c, err := d.Contract(contractID)
	if nil != err {
		return nil, nil, err
	}
	return query(d, prove, func(src proof.Source) (*document.Document, error) {
		return proof.ReadDocument(src, c, typeName, id)
	})
}

// FetchIdentityBalance - credits of an identity, nil if unknown
func (d *Drive) FetchIdentityBalance(id identifier.Identifier, prove bool) (*fee.Credits, *Proven, error) {
	return query(d, prove, func(src proof.Source) (*fee.Credits, error) {
		return proof.ReadIdentityBalance(src, id)
	})
}

// FetchVoteState - contenders and tallies of a poll
func (d *Drive) FetchVoteState(poll *vote.Poll, includeDocuments bool, prove bool) (*vote.ContestState, *Proven, error) {
	c, err := d.Contract(poll.ContractID)
	if nil != err {
		return nil, nil, err
	}
	return query(d, prove, func(src proof.Source) (*vote.ContestState, error) {
		return proof.ReadVoteState(src, c, poll, includeDocuments)
	})
}

// FetchContestedResources - value tuples of a contested index with a
// running contest
func (d *Drive) FetchContestedResources(contractID identifier.Identifier, q *proof.ContestedResourcesQuery, prove bool) ([][][]byte, *Proven, error) {
	c, err := d.Contract(contractID)
	if nil != err {
		return nil, nil, err
	}
	return query(d, prove, func(src proof.Source) ([][][]byte, error) {
		return proof.ReadContestedResources(src, c, q)
	})
}

// FetchVoters - identities voting for a contender
func (d *Drive) FetchVoters(poll *vote.Poll, contender identifier.Identifier, page proof.Page, prove bool) ([]identifier.Identifier, *Proven, error) {
	c, err := d.Contract(poll.ContractID)
	if nil != err {
		return nil, nil, err
	}
	return query(d, prove, func(src proof.Source) ([]identifier.Identifier, error) {
		return proof.ReadVoters(src, c, poll, contender, page)
	})
}

// FetchIdentityVotes - the running votes of a voter by poll id
func (d *Drive) FetchIdentityVotes(voter identifier.Identifier, page proof.Page, prove bool) ([]*vote.ResourceVote, *Proven, error) {
	return query(d, prove, func(src proof.Source) ([]*vote.ResourceVote, error) {
		return proof.ReadIdentityVotes(src, voter, page)
	})
}

// FetchVotePollsByEndDate - polls grouped by end time
func (d *Drive) FetchVotePollsByEndDate(q *proof.EndDateQuery, prove bool) ([]proof.PollsEndingAt, *Proven, error) {
	return query(d, prove, func(src proof.Source) ([]proof.PollsEndingAt, error) {
		return proof.ReadVotePollsByEndDate(src, q)
	})
}

// ProveStateTransitionResult - proof that a transition's effects are
// committed
func (d *Drive) ProveStateTransitionResult(st transition.StateTransition) (*Proven, error) {
	// contracts are loaded before the read lock is taken
	contracts := map[identifier.Identifier]*contract.Contract{}
	if batch, ok := st.(*transition.DocumentsBatch); ok {
		for _, dt := range batch.Transitions {
			if _, ok := contracts[dt.ContractID]; ok {
				continue
			}
			c, err := d.Contract(dt.ContractID)
			if nil != err {
				return nil, err
			}
			contracts[dt.ContractID] = c
		}
	}
	lookup := func(id identifier.Identifier) (*contract.Contract, error) {
		if c, ok := contracts[id]; ok {
			return c, nil
		}
		return nil, fault.ErrContractNotFound
	}

	_, proven, err := query(d, true, func(src proof.Source) (*proof.StateTransitionResult, error) {
		return proof.ReadStateTransitionResult(src, st, lookup)
	})
	return proven, err
}

// FetchSpecializedBalance - credits prefunded for a vote poll, nil if
// the poll has none
func (d *Drive) FetchSpecializedBalance(pollID identifier.Identifier, prove bool) (*fee.Credits, *Proven, error) {
	return query(d, prove, func(src proof.Source) (*fee.Credits, error) {
		return proof.ReadSpecializedBalance(src, pollID)
	})
}
