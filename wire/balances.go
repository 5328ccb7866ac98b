// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package wire

import (
	"github.com/golang/protobuf/proto"
)

// GetBalanceRequest - credits of an identity or of a contest
type GetBalanceRequest struct {
	V0 *GetBalanceRequestV0 `protobuf:"bytes,1,opt,name=v0,proto3" json:"v0,omitempty"`
}

func (m *GetBalanceRequest) Reset()         { *m = GetBalanceRequest{} }
func (m *GetBalanceRequest) String() string { return proto.CompactTextString(m) }
func (*GetBalanceRequest) ProtoMessage()    {}

// BalanceKind - which sum tree a balance is read from
type BalanceKind int32

// balance kinds
const (
	IdentityBalance    BalanceKind = 0
	SpecializedBalance BalanceKind = 1 // keyed by vote poll id
)

type GetBalanceRequestV0 struct {
	Id    []byte      `protobuf:"bytes,1,opt,name=id,proto3" json:"id,omitempty"`
	Kind  BalanceKind `protobuf:"varint,2,opt,name=kind,proto3" json:"kind,omitempty"`
	Prove bool        `protobuf:"varint,3,opt,name=prove,proto3" json:"prove,omitempty"`
}

func (m *GetBalanceRequestV0) Reset()         { *m = GetBalanceRequestV0{} }
func (m *GetBalanceRequestV0) String() string { return proto.CompactTextString(m) }
func (*GetBalanceRequestV0) ProtoMessage()    {}

type GetBalanceResponse struct {
	V0 *GetBalanceResponseV0 `protobuf:"bytes,1,opt,name=v0,proto3" json:"v0,omitempty"`
}

func (m *GetBalanceResponse) Reset()         { *m = GetBalanceResponse{} }
func (m *GetBalanceResponse) String() string { return proto.CompactTextString(m) }
func (*GetBalanceResponse) ProtoMessage()    {}

type GetBalanceResponseV0 struct {
	Found    bool              `protobuf:"varint,1,opt,name=found,proto3" json:"found,omitempty"`
	Balance  uint64            `protobuf:"varint,2,opt,name=balance,proto3" json:"balance,omitempty"`
	Proof    *Proof            `protobuf:"bytes,3,opt,name=proof,proto3" json:"proof,omitempty"`
	Metadata *ResponseMetadata `protobuf:"bytes,4,opt,name=metadata,proto3" json:"metadata,omitempty"`
}

func (m *GetBalanceResponseV0) Reset()         { *m = GetBalanceResponseV0{} }
func (m *GetBalanceResponseV0) String() string { return proto.CompactTextString(m) }
func (*GetBalanceResponseV0) ProtoMessage()    {}
