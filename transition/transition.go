// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package transition

import (
	"github.com/bitmark-inc/drived/document"
	"github.com/bitmark-inc/drived/fault"
	"github.com/bitmark-inc/drived/identifier"
	"github.com/bitmark-inc/drived/util"
	"github.com/bitmark-inc/drived/vote"
)

// Kind - type of state transition
type Kind byte

// transition kinds
const (
	DocumentsBatchKind Kind = 1
	MasternodeVoteKind Kind = 2
)

// StateTransition - anything that can be applied and proved
type StateTransition interface {
	Kind() Kind
	Serialize() ([]byte, error)
}

// Action - what a document transition does
type Action byte

// document actions
const (
	Create  Action = 0
	Replace Action = 1
	Delete  Action = 2
)

// DocumentTransition - one document change of a batch
type DocumentTransition struct {
	Action       Action
	ContractID   identifier.Identifier
	DocumentType string
	DocumentID   identifier.Identifier
	Revision     uint64
	Properties   map[string]interface{} // create and replace only
}

// InitialRevision - revision of every newly created document
const InitialRevision = 1

// ResultRevision - revision the document holds once dt is applied
//
// a create may leave the revision unset, anything else but the initial
// revision is rejected
func (dt *DocumentTransition) ResultRevision() (uint64, error) {
	switch dt.Action {
	case Create:
		if 0 != dt.Revision && InitialRevision != dt.Revision {
			return 0, fault.ErrInvalidRevision
		}
		return InitialRevision, nil
	case Replace:
		return dt.Revision, nil
	default:
		return 0, nil
	}
}

// DocumentsBatch - document changes by one owner
type DocumentsBatch struct {
	Owner       identifier.Identifier
	Transitions []DocumentTransition
}

// MasternodeVote - one resource vote
type MasternodeVote struct {
	Voter identifier.Identifier
	Vote  vote.ResourceVote
}

// Kind - DocumentsBatchKind
func (b *DocumentsBatch) Kind() Kind {
	return DocumentsBatchKind
}

// Kind - MasternodeVoteKind
func (v *MasternodeVote) Kind() Kind {
	return MasternodeVoteKind
}

// Serialize - canonical byte form
func (b *DocumentsBatch) Serialize() ([]byte, error) {
	buffer := []byte{byte(DocumentsBatchKind)}
	buffer = append(buffer, b.Owner[:]...)
	buffer = util.AppendVarint64(buffer, uint64(len(b.Transitions)))
	for _, t := range b.Transitions {
		buffer = append(buffer, byte(t.Action))
		buffer = append(buffer, t.ContractID[:]...)
		buffer = util.AppendBytes(buffer, []byte(t.DocumentType))

		// the document codec carries id, revision and properties
		d := document.Document{
			ID:         t.DocumentID,
			Owner:      b.Owner,
			Revision:   t.Revision,
			Properties: t.Properties,
		}
		if Delete == t.Action {
			d.Properties = nil
		}
		body, err := d.Serialize()
		if nil != err {
			return nil, err
		}
		buffer = util.AppendBytes(buffer, body)
	}
	return buffer, nil
}

// Serialize - canonical byte form
func (v *MasternodeVote) Serialize() ([]byte, error) {
	buffer := []byte{byte(MasternodeVoteKind)}
	buffer = append(buffer, v.Voter[:]...)
	return append(buffer, v.Vote.Serialize()...), nil
}

// Deserialize - any state transition from its byte form
func Deserialize(buffer []byte) (StateTransition, error) {
	if 0 == len(buffer) {
		return nil, fault.ErrInvalidStateTransition
	}
	switch Kind(buffer[0]) {
	case DocumentsBatchKind:
		return deserializeBatch(buffer[1:])
	case MasternodeVoteKind:
		if len(buffer) < 1+identifier.Length {
			return nil, fault.ErrInvalidStateTransition
		}
		v := &MasternodeVote{}
		copy(v.Voter[:], buffer[1:1+identifier.Length])
		rv, err := vote.DeserializeResourceVote(buffer[1+identifier.Length:])
		if nil != err {
			return nil, fault.ErrInvalidStateTransition
		}
		v.Vote = *rv
		return v, nil
	}
	return nil, fault.ErrInvalidStateTransition
}

func deserializeBatch(buffer []byte) (*DocumentsBatch, error) {
	r := util.NewReader(buffer)
	b := &DocumentsBatch{}
	copy(b.Owner[:], r.Fixed(identifier.Length))
	n := r.Count()
	for i := 0; i < n && nil == r.Err(); i += 1 {
		t := DocumentTransition{
			Action: Action(r.Byte()),
		}
		copy(t.ContractID[:], r.Fixed(identifier.Length))
		t.DocumentType = string(r.Bytes())
		body := r.Bytes()
		if nil != r.Err() {
			break
		}
		d, err := document.Deserialize(body)
		if nil != err || t.Action > Delete || d.Owner != b.Owner {
			return nil, fault.ErrInvalidStateTransition
		}
		t.DocumentID = d.ID
		t.Revision = d.Revision
		if Delete != t.Action {
			t.Properties = d.Properties
		}
		b.Transitions = append(b.Transitions, t)
	}
	if err := r.Finish(); nil != err {
		return nil, fault.ErrInvalidStateTransition
	}
	return b, nil
}
