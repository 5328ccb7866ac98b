// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package main

import (
	"github.com/urfave/cli"

	"github.com/bitmark-inc/drived/document"
	"github.com/bitmark-inc/drived/vote"
	"github.com/bitmark-inc/drived/wire"
)

type contenderReply struct {
	Identity string             `json:"identity"`
	Tally    uint64             `json:"tally"`
	Document *document.Document `json:"document,omitempty"`
}

type stateReply struct {
	Found        bool             `json:"found"`
	Contenders   []contenderReply `json:"contenders,omitempty"`
	AbstainTally uint64           `json:"abstainTally"`
	LockTally    uint64           `json:"lockTally"`
	Outcome      string           `json:"outcome,omitempty"`
	Winner       string           `json:"winner,omitempty"`
	FinishedAtMs uint64           `json:"finishedAtMs,omitempty"`
}

func newStateReply(state *vote.ContestState) (*stateReply, error) {
	if nil == state {
		return &stateReply{}, nil
	}
	r := &stateReply{
		Found:        true,
		Contenders:   make([]contenderReply, len(state.Contenders)),
		AbstainTally: state.AbstainTally,
		LockTally:    state.LockTally,
	}
	for i, contender := range state.Contenders {
		r.Contenders[i] = contenderReply{
			Identity: contender.Identity.String(),
			Tally:    contender.Tally,
		}
		if nil != contender.Document {
			doc, err := document.Deserialize(contender.Document)
			if nil != err {
				return nil, err
			}
			r.Contenders[i].Document = doc
		}
	}
	if d := state.Decision; nil != d {
		r.Outcome = d.Outcome.String()
		r.FinishedAtMs = d.FinishedAt
		if vote.Won == d.Outcome {
			r.Winner = d.Winner.String()
		}
	}
	return r, nil
}

func runVoteState(c *cli.Context) error {

	m := c.App.Metadata["config"].(*metadata)

	p, err := poll(m, c)
	if nil != err {
		return err
	}
	includeDocuments := c.Bool("documents")

	if c.Bool("prove") {
		request := &wire.GetContestedResourceVoteStateRequest{
			V0: &wire.GetContestedResourceVoteStateRequestV0{
				ContractId:       p.ContractID.Bytes(),
				DocumentTypeName: p.DocumentType,
				IndexName:        p.IndexName,
				IndexValues:      p.IndexValues,
				IncludeDocuments: includeDocuments,
				Prove:            true,
			},
		}
		response, err := m.handler.GetContestedResourceVoteState(request)
		if nil != err {
			return err
		}
		return writeProof(m.w, voteStateProof, request, response)
	}

	state, _, err := m.drive.FetchVoteState(p, includeDocuments, false)
	if nil != err {
		return err
	}
	reply, err := newStateReply(state)
	if nil != err {
		return err
	}
	return printJson(m.w, reply)
}
