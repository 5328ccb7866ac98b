// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package wire

import (
	"github.com/golang/protobuf/proto"
)

// Proof - a compressed grove proof and the commit signing its root
type Proof struct {
	GroveProof  []byte `protobuf:"bytes,1,opt,name=grove_proof,json=groveProof,proto3" json:"grove_proof,omitempty"`
	QuorumHash  []byte `protobuf:"bytes,2,opt,name=quorum_hash,json=quorumHash,proto3" json:"quorum_hash,omitempty"`
	Signature   []byte `protobuf:"bytes,3,opt,name=signature,proto3" json:"signature,omitempty"`
	Round       uint32 `protobuf:"varint,4,opt,name=round,proto3" json:"round,omitempty"`
	BlockIdHash []byte `protobuf:"bytes,5,opt,name=block_id_hash,json=blockIdHash,proto3" json:"block_id_hash,omitempty"`
	QuorumType  uint32 `protobuf:"varint,6,opt,name=quorum_type,json=quorumType,proto3" json:"quorum_type,omitempty"`
}

func (m *Proof) Reset()         { *m = Proof{} }
func (m *Proof) String() string { return proto.CompactTextString(m) }
func (*Proof) ProtoMessage()    {}

// ResponseMetadata - the committed block a response was read from
type ResponseMetadata struct {
	Height                uint64 `protobuf:"varint,1,opt,name=height,proto3" json:"height,omitempty"`
	CoreChainLockedHeight uint32 `protobuf:"varint,2,opt,name=core_chain_locked_height,json=coreChainLockedHeight,proto3" json:"core_chain_locked_height,omitempty"`
	Epoch                 uint32 `protobuf:"varint,3,opt,name=epoch,proto3" json:"epoch,omitempty"`
	TimeMs                uint64 `protobuf:"varint,4,opt,name=time_ms,json=timeMs,proto3" json:"time_ms,omitempty"`
	ProtocolVersion       uint32 `protobuf:"varint,5,opt,name=protocol_version,json=protocolVersion,proto3" json:"protocol_version,omitempty"`
	ChainId               string `protobuf:"bytes,6,opt,name=chain_id,json=chainId,proto3" json:"chain_id,omitempty"`
}

func (m *ResponseMetadata) Reset()         { *m = ResponseMetadata{} }
func (m *ResponseMetadata) String() string { return proto.CompactTextString(m) }
func (*ResponseMetadata) ProtoMessage()    {}

// Marshal - binary encoding of any message of this package
func Marshal(m proto.Message) ([]byte, error) {
	return proto.Marshal(m)
}

// Unmarshal - decode buffer into m
func Unmarshal(buffer []byte, m proto.Message) error {
	return proto.Unmarshal(buffer, m)
}
