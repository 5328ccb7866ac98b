// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package vote

import (
	"golang.org/x/crypto/sha3"

	"github.com/bitmark-inc/drived/fault"
	"github.com/bitmark-inc/drived/identifier"
	"github.com/bitmark-inc/drived/util"
)

// Poll - one contested value tuple of a contested index
//
// IndexValues are encoded with the canonical key encoding
type Poll struct {
	ContractID   identifier.Identifier
	DocumentType string
	IndexName    string
	IndexValues  [][]byte
}

// Serialize - canonical byte form
func (p *Poll) Serialize() []byte {
	buffer := append([]byte{}, p.ContractID[:]...)
	buffer = util.AppendBytes(buffer, []byte(p.DocumentType))
	buffer = util.AppendBytes(buffer, []byte(p.IndexName))
	buffer = util.AppendVarint64(buffer, uint64(len(p.IndexValues)))
	for _, v := range p.IndexValues {
		buffer = util.AppendBytes(buffer, v)
	}
	return buffer
}

func readPoll(r *util.Reader) *Poll {
	p := &Poll{}
	copy(p.ContractID[:], r.Fixed(identifier.Length))
	p.DocumentType = string(r.Bytes())
	p.IndexName = string(r.Bytes())
	n := r.Count()
	for i := 0; i < n && nil == r.Err(); i += 1 {
		p.IndexValues = append(p.IndexValues, r.Bytes())
	}
	return p
}

// DeserializePoll - inverse of Serialize
func DeserializePoll(buffer []byte) (*Poll, error) {
	r := util.NewReader(buffer)
	p := readPoll(r)
	if err := r.Finish(); nil != err {
		return nil, fault.ErrCorruptedSerialization
	}
	return p, nil
}

// ID - identifier of the poll, the hash of its serialized form
func (p *Poll) ID() identifier.Identifier {
	return identifier.Identifier(sha3.Sum256(p.Serialize()))
}
