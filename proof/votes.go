// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package proof

import (
	"encoding/binary"

	"github.com/bitmark-inc/drived/fault"
	"github.com/bitmark-inc/drived/grove"
	"github.com/bitmark-inc/drived/identifier"
	"github.com/bitmark-inc/drived/paths"
	"github.com/bitmark-inc/drived/vote"
)

// ReadIdentityVotes - live votes of a voter, paged by poll id
func ReadIdentityVotes(src Source, voter identifier.Identifier, page Page) ([]*vote.ResourceVote, error) {
	entries, err := src.Query(paths.IdentityVotesPath(voter), page.query())
	if nil != err {
		return nil, err
	}
	votes := make([]*vote.ResourceVote, 0, len(entries))
	for _, ke := range entries {
		if grove.ItemElement != ke.Element.Type {
			return nil, fault.ErrCorruptedElementType
		}
		v, err := vote.DeserializeResourceVote(ke.Element.Value)
		if nil != err {
			return nil, err
		}
		votes = append(votes, v)
	}
	return votes, nil
}

// EndDateQuery - a window of poll end times
type EndDateQuery struct {
	Start         *uint64
	StartIncluded bool
	End           *uint64
	EndIncluded   bool
	Limit         int // polls, zero for no limit
	Ascending     bool
}

// PollsEndingAt - polls sharing one end time
type PollsEndingAt struct {
	TimeMs uint64
	Polls  []*vote.Poll
}

// ReadVotePollsByEndDate - polls grouped by end time
func ReadVotePollsByEndDate(src Source, q *EndDateQuery) ([]PollsEndingAt, error) {
	gq := &grove.Query{
		StartInclusive: q.StartIncluded,
		EndInclusive:   q.EndIncluded,
		Descending:     !q.Ascending,
	}
	if nil != q.Start {
		gq.Start = paths.EndDateKeyFor(*q.Start)
	}
	if nil != q.End {
		gq.End = paths.EndDateKeyFor(*q.End)
	}

	times, err := src.Query(paths.EndDatePath(), gq)
	if nil != err {
		return nil, err
	}

	result := []PollsEndingAt{}
	count := 0
	for _, t := range times {
		if q.Limit > 0 && count >= q.Limit {
			break
		}
		if 8 != len(t.Key) || !t.Element.IsTree() {
			return nil, fault.ErrCorruptedElementType
		}
		at := timeFromKey(t.Key)
		entries, err := src.Query(paths.EndDateTimePath(at), grove.AllKeys())
		if nil != err {
			return nil, err
		}
		group := PollsEndingAt{
			TimeMs: at,
		}
		for _, ke := range entries {
			if q.Limit > 0 && count >= q.Limit {
				break
			}
			if grove.ItemElement != ke.Element.Type {
				return nil, fault.ErrCorruptedElementType
			}
			poll, err := vote.DeserializePoll(ke.Element.Value)
			if nil != err {
				return nil, err
			}
			group.Polls = append(group.Polls, poll)
			count += 1
		}
		result = append(result, group)
	}
	return result, nil
}

func timeFromKey(key []byte) uint64 {
	return binary.BigEndian.Uint64(key)
}
