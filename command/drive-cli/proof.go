// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package main

import (
	"encoding/hex"
	"encoding/json"
	"io"

	"github.com/golang/protobuf/proto"
	"golang.org/x/crypto/ed25519"

	"github.com/bitmark-inc/drived/contract"
	"github.com/bitmark-inc/drived/fault"
	"github.com/bitmark-inc/drived/identifier"
	"github.com/bitmark-inc/drived/merkle"
	"github.com/bitmark-inc/drived/wire"
)

// kinds of proof this program writes
const (
	documentProof   = "document"
	voteStateProof  = "vote-state"
	transitionProof = "transition"
)

// envelope - a request and its proved response as hex protobuf
type envelope struct {
	Kind     string `json:"kind"`
	Request  string `json:"request"`
	Response string `json:"response"`
}

func writeProof(w io.Writer, kind string, request proto.Message, response proto.Message) error {
	requestBytes, err := wire.Marshal(request)
	if nil != err {
		return err
	}
	responseBytes, err := wire.Marshal(response)
	if nil != err {
		return err
	}
	return printJson(w, envelope{
		Kind:     kind,
		Request:  hex.EncodeToString(requestBytes),
		Response: hex.EncodeToString(responseBytes),
	})
}

func readProof(r io.Reader) (*envelope, error) {
	e := &envelope{}
	if err := json.NewDecoder(r).Decode(e); nil != err {
		return nil, err
	}
	return e, nil
}

// decode - the request and response of the envelope into the messages
func (e *envelope) decode(request proto.Message, response proto.Message) error {
	buffer, err := hex.DecodeString(e.Request)
	if nil != err {
		return err
	}
	if err := wire.Unmarshal(buffer, request); nil != err {
		return err
	}
	buffer, err = hex.DecodeString(e.Response)
	if nil != err {
		return err
	}
	return wire.Unmarshal(buffer, response)
}

// localProvider - trusts the local quorum and the contracts stored in
// the local drive
type localProvider struct {
	m *metadata
}

func (p localProvider) QuorumPublicKey(quorumType uint32, quorumHash merkle.Digest, coreHeight uint32) (ed25519.PublicKey, error) {
	return p.m.quorum.QuorumPublicKey(quorumType, quorumHash, coreHeight)
}

func (p localProvider) DataContract(id identifier.Identifier) (*contract.Contract, error) {
	c, err := p.m.drive.Contract(id)
	if fault.IsErrNotFound(err) {
		return nil, nil
	}
	return c, err
}
