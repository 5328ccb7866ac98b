// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package proof

import (
	"github.com/bitmark-inc/drived/contract"
	"github.com/bitmark-inc/drived/document"
	"github.com/bitmark-inc/drived/fault"
	"github.com/bitmark-inc/drived/identifier"
	"github.com/bitmark-inc/drived/paths"
	"github.com/bitmark-inc/drived/transition"
	"github.com/bitmark-inc/drived/vote"
)

// ContractLookup - find a contract that is already trusted
type ContractLookup func(id identifier.Identifier) (*contract.Contract, error)

// StateTransitionResult - proven state after a transition executed
type StateTransitionResult struct {
	Documents map[identifier.Identifier]*document.Document // nil for a deleted document
	Vote      *vote.ResourceVote
}

// ReadStateTransitionResult - the state a transition must have left
//
// created and replaced documents must be present with the expected
// owner and revision, deleted ones proven absent, and a vote must be
// recorded with the same choice
func ReadStateTransitionResult(src Source, st transition.StateTransition, lookup ContractLookup) (*StateTransitionResult, error) {
	switch tr := st.(type) {
	case *transition.DocumentsBatch:
		return readBatchResult(src, tr, lookup)
	case *transition.MasternodeVote:
		return readVoteResult(src, tr)
	default:
		return nil, fault.ErrInvalidStateTransition
	}
}

func readBatchResult(src Source, batch *transition.DocumentsBatch, lookup ContractLookup) (*StateTransitionResult, error) {
	result := &StateTransitionResult{
		Documents: make(map[identifier.Identifier]*document.Document),
	}
	for _, dt := range batch.Transitions {
		c, err := lookup(dt.ContractID)
		if nil != err {
			return nil, err
		}
		if nil == c {
			return nil, fault.ErrContractNotFound
		}

		doc, err := ReadDocument(src, c, dt.DocumentType, dt.DocumentID)
		if nil != err {
			return nil, err
		}

		switch dt.Action {
		case transition.Create:
			if nil == doc {
				// a contender waits in contested storage
				doc, err = ReadContestedDocument(src, c, dt.DocumentType, dt.DocumentID)
				if nil != err {
					return nil, err
				}
			}
			fallthrough
		case transition.Replace:
			if nil == doc {
				return nil, fault.ErrDocumentMissingInProof
			}
			revision, err := dt.ResultRevision()
			if nil != err {
				return nil, err
			}
			if doc.Owner != batch.Owner || doc.Revision != revision {
				return nil, fault.ErrInvalidProof
			}
		case transition.Delete:
			if nil != doc {
				return nil, fault.ErrInvalidProof
			}
		default:
			return nil, fault.ErrInvalidStateTransition
		}
		result.Documents[dt.DocumentID] = doc
	}
	return result, nil
}

func readVoteResult(src Source, mv *transition.MasternodeVote) (*StateTransitionResult, error) {
	pollID := mv.Vote.Poll.ID()
	value, err := itemValue(src, paths.IdentityVotesPath(mv.Voter), pollID.Bytes())
	if nil != err {
		return nil, err
	}
	if nil == value {
		return nil, fault.ErrVoteMissingInProof
	}
	v, err := vote.DeserializeResourceVote(value)
	if nil != err {
		return nil, err
	}
	if v.Poll.ID() != pollID || !v.Choice.Equal(mv.Vote.Choice) {
		return nil, fault.ErrInvalidProof
	}
	return &StateTransitionResult{
		Vote: v,
	}, nil
}
