// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package main

import (
	"context"
	"fmt"
	"io"
	"os"

	"github.com/urfave/cli"

	"github.com/bitmark-inc/drived/document"
	"github.com/bitmark-inc/drived/sdk"
	"github.com/bitmark-inc/drived/wire"
)

type transitionReply struct {
	Documents map[string]*document.Document `json:"documents,omitempty"`
	Vote      string                        `json:"vote,omitempty"`
}

type verifyReply struct {
	Kind       string             `json:"kind"`
	Verified   bool               `json:"verified"`
	Found      bool               `json:"found"`
	Document   *document.Document `json:"document,omitempty"`
	State      *stateReply        `json:"state,omitempty"`
	Transition *transitionReply   `json:"transition,omitempty"`
}

func runVerifyProof(c *cli.Context) error {

	m := c.App.Metadata["config"].(*metadata)

	files := c.StringSlice("file")
	if 0 == len(files) {
		files = []string{"-"}
	}

	envelopes := make([]*envelope, len(files))
	for i, name := range files {
		e, err := readProofFile(name)
		if nil != err {
			return fmt.Errorf("read: %q  error: %w", name, err)
		}
		envelopes[i] = e
	}

	provider := localProvider{m: m}
	replies := make([]*verifyReply, len(envelopes))
	checks := make([]func() error, len(envelopes))
	for i, e := range envelopes {
		i, e := i, e
		checks[i] = func() error {
			r, err := m.verify(e, provider)
			if nil != err {
				return fmt.Errorf("%s: %w", files[i], err)
			}
			replies[i] = r
			return nil
		}
	}
	if err := sdk.VerifyBatch(context.Background(), checks...); nil != err {
		return err
	}

	if 1 == len(replies) {
		return printJson(m.w, replies[0])
	}
	return printJson(m.w, replies)
}

// read by a file name of "-"
var input io.Reader = os.Stdin

func readProofFile(name string) (*envelope, error) {
	if "-" == name {
		return readProof(input)
	}
	f, err := os.Open(name)
	if nil != err {
		return nil, err
	}
	defer f.Close()
	return readProof(f)
}

func (m *metadata) verify(e *envelope, provider sdk.ContextProvider) (*verifyReply, error) {
	reply := &verifyReply{
		Kind: e.Kind,
	}

	switch e.Kind {
	case documentProof:
		request := &wire.GetDocumentRequest{}
		response := &wire.GetDocumentResponse{}
		if err := e.decode(request, response); nil != err {
			return nil, err
		}
		doc, err := sdk.MaybeDocumentFromProof(request, response, provider)
		if nil != err {
			return nil, err
		}
		reply.Found = nil != doc
		reply.Document = doc

	case voteStateProof:
		request := &wire.GetContestedResourceVoteStateRequest{}
		response := &wire.GetContestedResourceVoteStateResponse{}
		if err := e.decode(request, response); nil != err {
			return nil, err
		}
		state, err := sdk.MaybeVoteStateFromProof(request, response, provider)
		if nil != err {
			return nil, err
		}
		reply.Found = nil != state
		reply.State, err = newStateReply(state)
		if nil != err {
			return nil, err
		}

	case transitionProof:
		request := &wire.WaitForStateTransitionResultRequest{}
		response := &wire.WaitForStateTransitionResultResponse{}
		if err := e.decode(request, response); nil != err {
			return nil, err
		}
		result, err := sdk.FromProofWithKnownContracts(request, response, m.known.Snapshot().DataContract, provider)
		if nil != err {
			return nil, err
		}
		reply.Found = true
		reply.Transition = &transitionReply{}
		if 0 != len(result.Documents) {
			reply.Transition.Documents = make(map[string]*document.Document, len(result.Documents))
			for id, doc := range result.Documents {
				reply.Transition.Documents[id.String()] = doc
			}
		}
		if nil != result.Vote {
			reply.Transition.Vote = result.Vote.Choice.String()
		}

	default:
		return nil, ErrInvalidProofKind
	}

	reply.Verified = true
	return reply, nil
}
