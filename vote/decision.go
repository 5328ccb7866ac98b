// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package vote

import (
	"github.com/bitmark-inc/drived/fault"
	"github.com/bitmark-inc/drived/identifier"
	"github.com/bitmark-inc/drived/util"
)

// Outcome - result of a finished poll
type Outcome byte

// outcomes
const (
	Won      Outcome = 0
	Locked   Outcome = 1
	NoWinner Outcome = 2
)

// String - printable form
func (o Outcome) String() string {
	switch o {
	case Won:
		return "won"
	case Locked:
		return "locked"
	case NoWinner:
		return "no winner"
	default:
		return "*unknown*"
	}
}

// Decision - stored when a poll is resolved
type Decision struct {
	Outcome     Outcome
	Winner      identifier.Identifier // only when Won
	FinishedAt  uint64                // block time in milliseconds
	BlockHeight uint64
}

// Serialize - canonical byte form
func (d *Decision) Serialize() []byte {
	buffer := []byte{byte(d.Outcome)}
	if Won == d.Outcome {
		buffer = append(buffer, d.Winner[:]...)
	}
	buffer = util.AppendUint64(buffer, d.FinishedAt)
	return util.AppendVarint64(buffer, d.BlockHeight)
}

// DeserializeDecision - inverse of Serialize
func DeserializeDecision(buffer []byte) (*Decision, error) {
	r := util.NewReader(buffer)
	d := &Decision{Outcome: Outcome(r.Byte())}
	switch d.Outcome {
	case Won:
		copy(d.Winner[:], r.Fixed(identifier.Length))
	case Locked, NoWinner:
	default:
		return nil, fault.ErrCorruptedSerialization
	}
	d.FinishedAt = r.Uint64()
	d.BlockHeight = r.Varint64()
	if err := r.Finish(); nil != err {
		return nil, fault.ErrCorruptedSerialization
	}
	return d, nil
}
