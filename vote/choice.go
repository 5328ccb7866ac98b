// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package vote

import (
	"fmt"

	"github.com/bitmark-inc/drived/fault"
	"github.com/bitmark-inc/drived/identifier"
	"github.com/bitmark-inc/drived/util"
)

// ChoiceKind - what a vote is for
type ChoiceKind byte

// vote choices
const (
	TowardsIdentity ChoiceKind = 0
	Abstain         ChoiceKind = 1
	Lock            ChoiceKind = 2
)

// Choice - a resource vote choice
type Choice struct {
	Kind     ChoiceKind
	Identity identifier.Identifier // only for TowardsIdentity
}

// String - printable form
func (c Choice) String() string {
	switch c.Kind {
	case TowardsIdentity:
		return fmt.Sprintf("towards %s", c.Identity)
	case Abstain:
		return "abstain"
	case Lock:
		return "lock"
	default:
		return "*unknown*"
	}
}

// Equal - same choice
func (c Choice) Equal(other Choice) bool {
	if c.Kind != other.Kind {
		return false
	}
	return TowardsIdentity != c.Kind || c.Identity == other.Identity
}

func (c Choice) append(buffer []byte) []byte {
	buffer = append(buffer, byte(c.Kind))
	if TowardsIdentity == c.Kind {
		buffer = append(buffer, c.Identity[:]...)
	}
	return buffer
}

func readChoice(r *util.Reader) Choice {
	c := Choice{Kind: ChoiceKind(r.Byte())}
	switch c.Kind {
	case TowardsIdentity:
		copy(c.Identity[:], r.Fixed(identifier.Length))
	case Abstain, Lock:
	default:
		r.Fail(fault.ErrInvalidVoteChoice)
	}
	return c
}

// ResourceVote - a vote of one voter in one poll
type ResourceVote struct {
	Poll   Poll
	Choice Choice
}

// Serialize - stored under the voter's identity votes
func (v *ResourceVote) Serialize() []byte {
	return v.Choice.append(v.Poll.Serialize())
}

// DeserializeResourceVote - inverse of Serialize
func DeserializeResourceVote(buffer []byte) (*ResourceVote, error) {
	r := util.NewReader(buffer)
	p := readPoll(r)
	c := readChoice(r)
	if err := r.Finish(); nil != err {
		if fault.ErrInvalidVoteChoice == err {
			return nil, err
		}
		return nil, fault.ErrCorruptedSerialization
	}
	return &ResourceVote{Poll: *p, Choice: c}, nil
}
