// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package proof

import (
	"bytes"

	"github.com/bitmark-inc/drived/contract"
	"github.com/bitmark-inc/drived/fault"
	"github.com/bitmark-inc/drived/grove"
	"github.com/bitmark-inc/drived/identifier"
	"github.com/bitmark-inc/drived/paths"
	"github.com/bitmark-inc/drived/vote"
)

// Page - a window over an ordered layer
type Page struct {
	StartAt         []byte
	StartAtIncluded bool
	Limit           int // zero for no limit
	Ascending       bool
}

// the grove query for a page; starting point of a descending page is
// its upper bound
func (p Page) query() *grove.Query {
	q := &grove.Query{
		Limit:      p.Limit,
		Descending: !p.Ascending,
	}
	if nil != p.StartAt {
		if p.Ascending {
			q.Start = p.StartAt
			q.StartInclusive = p.StartAtIncluded
		} else {
			q.End = p.StartAt
			q.EndInclusive = p.StartAtIncluded
		}
	}
	return q
}

// ContestLocation - the contested index of a poll and the path of its
// contest tree
func ContestLocation(c *contract.Contract, poll *vote.Poll) (*contract.DocumentType, *contract.Index, [][]byte, error) {
	if poll.ContractID != c.ID {
		return nil, nil, nil, fault.ErrContractNotFound
	}
	t, err := c.DocumentType(poll.DocumentType)
	if nil != err {
		return nil, nil, nil, err
	}
	index, err := t.Index(poll.IndexName)
	if nil != err {
		return nil, nil, nil, err
	}
	if !index.Contested {
		return nil, nil, nil, fault.ErrNotAContestedIndex
	}
	for _, v := range poll.IndexValues {
		if contract.IsNullKey(v) {
			return nil, nil, nil, fault.ErrInvalidPropertyValue
		}
	}
	contest, err := paths.ContestPath(c.ID, t.Name, index.PropertyNames(), poll.IndexValues)
	if nil != err {
		return nil, nil, nil, err
	}
	return t, index, contest, nil
}

// ReadDecision - the stored outcome of a poll, nil if undecided
func ReadDecision(src Source, pollID identifier.Identifier) (*vote.Decision, error) {
	value, err := itemValue(src, paths.DecisionsPath(), pollID.Bytes())
	if nil != err || nil == value {
		return nil, err
	}
	return vote.DeserializeDecision(value)
}

// ReadVoteState - contenders and tallies of a poll
//
// contenders are sorted by tally, highest first; nil when the poll has
// neither a running contest nor a decision
func ReadVoteState(src Source, c *contract.Contract, poll *vote.Poll, includeDocuments bool) (*vote.ContestState, error) {
	_, _, contest, err := ContestLocation(c, poll)
	if nil != err {
		return nil, err
	}

	decision, err := ReadDecision(src, poll.ID())
	if nil != err {
		return nil, err
	}

	entries, err := src.Query(contest, grove.AllKeys())
	if nil != err {
		return nil, err
	}
	if nil == decision && 0 == len(entries) {
		return nil, nil
	}

	state := &vote.ContestState{
		Decision: decision,
	}
	for _, ke := range entries {
		if grove.SumTreeElement != ke.Element.Type || ke.Element.Sum < 0 {
			return nil, fault.ErrCorruptedElementType
		}
		tally := uint64(ke.Element.Sum)

		switch {
		case bytes.Equal(ke.Key, paths.AbstainKey):
			state.AbstainTally = tally
		case bytes.Equal(ke.Key, paths.LockKey):
			state.LockTally = tally
		default:
			id, err := identifier.FromBytes(ke.Key)
			if nil != err {
				return nil, fault.ErrCorruptedElementType
			}
			contender := vote.Contender{
				Identity: id,
				Tally:    tally,
			}
			if includeDocuments {
				value, err := itemValue(src, paths.ContenderPath(contest, id), paths.ContenderReferenceKey)
				if nil != err {
					return nil, err
				}
				if nil == value {
					return nil, fault.ErrCorruptedReference
				}
				contender.Document = value
			}
			state.Contenders = append(state.Contenders, contender)
		}
	}
	vote.SortContenders(state.Contenders)
	return state, nil
}

// ContestedResourcesQuery - enumerate the value tuples of a contested
// index that currently have a running contest
type ContestedResourcesQuery struct {
	DocumentType     string
	IndexName        string
	StartIndexValues [][]byte // fixed leading values
	Page                      // over the first value after the fixed ones
}

// ReadContestedResources - full index value tuples with a running
// contest
func ReadContestedResources(src Source, c *contract.Contract, q *ContestedResourcesQuery) ([][][]byte, error) {
	t, err := c.DocumentType(q.DocumentType)
	if nil != err {
		return nil, err
	}
	index, err := t.Index(q.IndexName)
	if nil != err {
		return nil, err
	}
	if !index.Contested {
		return nil, fault.ErrNotAContestedIndex
	}
	names := index.PropertyNames()
	depth := len(q.StartIndexValues)
	if depth >= len(names) {
		return nil, fault.ErrIndexValuesCount
	}

	path := paths.DocumentTypePath(c.ID, t.Name)
	for i, v := range q.StartIndexValues {
		path = grove.Extend(path, []byte(names[i]), v)
	}

	e := &enumerator{
		src:       src,
		names:     names,
		remaining: q.Limit,
		result:    [][][]byte{},
	}
	first := q.Page
	first.Limit = 0 // null and resolved entries do not count
	err = e.walk(depth, grove.Extend(path, []byte(names[depth])), q.StartIndexValues, first.query())
	if nil != err {
		return nil, err
	}
	return e.result, nil
}

type enumerator struct {
	src       Source
	names     []string
	remaining int // zero for no limit
	result    [][][]byte
}

func (e *enumerator) full() bool {
	return e.remaining > 0 && len(e.result) >= e.remaining
}

func (e *enumerator) walk(depth int, layer [][]byte, prefix [][]byte, q *grove.Query) error {
	entries, err := e.src.Query(layer, q)
	if nil != err {
		return err
	}
	last := depth == len(e.names)-1

	for _, ke := range entries {
		if e.full() {
			return nil
		}
		if contract.IsNullKey(ke.Key) {
			continue
		}
		if !ke.Element.IsTree() {
			return fault.ErrCorruptedElementType
		}
		values := make([][]byte, len(prefix), len(prefix)+1)
		copy(values, prefix)
		values = append(values, ke.Key)
		valuePath := grove.Extend(layer, ke.Key)

		if !last {
			next := grove.Extend(valuePath, []byte(e.names[depth+1]))
			err := e.walk(depth+1, next, values, &grove.Query{Descending: q.Descending})
			if nil != err {
				return err
			}
			continue
		}

		terminal, err := e.src.Get(valuePath, paths.TerminalKey)
		if nil != err {
			return err
		}
		// a resolved contest leaves a plain unique reference
		if nil != terminal && terminal.IsTree() {
			e.result = append(e.result, values)
		}
	}
	return nil
}

// ReadVoters - identities voting for one contender
//
// nil when the contender has no running contest
func ReadVoters(src Source, c *contract.Contract, poll *vote.Poll, contender identifier.Identifier, page Page) ([]identifier.Identifier, error) {
	_, _, contest, err := ContestLocation(c, poll)
	if nil != err {
		return nil, err
	}
	e, err := src.Get(contest, contender.Bytes())
	if nil != err || nil == e {
		return nil, err
	}
	if grove.SumTreeElement != e.Type {
		return nil, fault.ErrCorruptedElementType
	}

	entries, err := src.Query(paths.VoterPath(contest, contender), page.query())
	if nil != err {
		return nil, err
	}
	voters := make([]identifier.Identifier, 0, len(entries))
	for _, ke := range entries {
		id, err := identifier.FromBytes(ke.Key)
		if nil != err {
			return nil, fault.ErrCorruptedElementType
		}
		voters = append(voters, id)
	}
	return voters, nil
}
