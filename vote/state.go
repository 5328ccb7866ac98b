// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package vote

import (
	"bytes"
	"sort"

	"github.com/bitmark-inc/drived/identifier"
)

// Contender - one competitor of a contest
type Contender struct {
	Identity identifier.Identifier
	Document []byte // serialized document, nil when not requested
	Tally    uint64
}

// ContestState - the tallies of a contest
type ContestState struct {
	Contenders   []Contender
	AbstainTally uint64
	LockTally    uint64
	Decision     *Decision // set once resolved
}

// SortContenders - highest tally first, ties by identity
func SortContenders(contenders []Contender) {
	sort.SliceStable(contenders, func(i, j int) bool {
		if contenders[i].Tally != contenders[j].Tally {
			return contenders[i].Tally > contenders[j].Tally
		}
		return bytes.Compare(contenders[i].Identity[:], contenders[j].Identity[:]) < 0
	})
}

// Outcome - what resolving the state now would decide
func (s *ContestState) Outcome() (Outcome, identifier.Identifier) {
	if 0 == len(s.Contenders) {
		return NoWinner, identifier.Identifier{}
	}
	c := make([]Contender, len(s.Contenders))
	copy(c, s.Contenders)
	SortContenders(c)

	best := c[0].Tally
	if s.LockTally > best {
		return Locked, identifier.Identifier{}
	}
	if 0 == best || (len(c) > 1 && c[1].Tally == best) {
		return NoWinner, identifier.Identifier{}
	}
	return Won, c[0].Identity
}

// TotalTally - every live vote counted in this state
func (s *ContestState) TotalTally() uint64 {
	total := s.AbstainTally + s.LockTally
	for _, c := range s.Contenders {
		total += c.Tally
	}
	return total
}
