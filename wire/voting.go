// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package wire

import (
	"github.com/golang/protobuf/proto"
)

// vote state of one contested value tuple

type GetContestedResourceVoteStateRequest struct {
	V0 *GetContestedResourceVoteStateRequestV0 `protobuf:"bytes,1,opt,name=v0,proto3" json:"v0,omitempty"`
}

func (m *GetContestedResourceVoteStateRequest) Reset() {
	*m = GetContestedResourceVoteStateRequest{}
}
func (m *GetContestedResourceVoteStateRequest) String() string { return proto.CompactTextString(m) }
func (*GetContestedResourceVoteStateRequest) ProtoMessage()    {}

type GetContestedResourceVoteStateRequestV0 struct {
	ContractId       []byte   `protobuf:"bytes,1,opt,name=contract_id,json=contractId,proto3" json:"contract_id,omitempty"`
	DocumentTypeName string   `protobuf:"bytes,2,opt,name=document_type_name,json=documentTypeName,proto3" json:"document_type_name,omitempty"`
	IndexName        string   `protobuf:"bytes,3,opt,name=index_name,json=indexName,proto3" json:"index_name,omitempty"`
	IndexValues      [][]byte `protobuf:"bytes,4,rep,name=index_values,json=indexValues,proto3" json:"index_values,omitempty"`
	IncludeDocuments bool     `protobuf:"varint,5,opt,name=include_documents,json=includeDocuments,proto3" json:"include_documents,omitempty"`
	Prove            bool     `protobuf:"varint,6,opt,name=prove,proto3" json:"prove,omitempty"`
}

func (m *GetContestedResourceVoteStateRequestV0) Reset() {
	*m = GetContestedResourceVoteStateRequestV0{}
}
func (m *GetContestedResourceVoteStateRequestV0) String() string { return proto.CompactTextString(m) }
func (*GetContestedResourceVoteStateRequestV0) ProtoMessage()    {}

type GetContestedResourceVoteStateResponse struct {
	V0 *GetContestedResourceVoteStateResponseV0 `protobuf:"bytes,1,opt,name=v0,proto3" json:"v0,omitempty"`
}

func (m *GetContestedResourceVoteStateResponse) Reset() {
	*m = GetContestedResourceVoteStateResponse{}
}
func (m *GetContestedResourceVoteStateResponse) String() string { return proto.CompactTextString(m) }
func (*GetContestedResourceVoteStateResponse) ProtoMessage()    {}

type GetContestedResourceVoteStateResponseV0 struct {
	Found        bool              `protobuf:"varint,1,opt,name=found,proto3" json:"found,omitempty"`
	Contenders   []*Contender      `protobuf:"bytes,2,rep,name=contenders,proto3" json:"contenders,omitempty"`
	AbstainTally uint64            `protobuf:"varint,3,opt,name=abstain_tally,json=abstainTally,proto3" json:"abstain_tally,omitempty"`
	LockTally    uint64            `protobuf:"varint,4,opt,name=lock_tally,json=lockTally,proto3" json:"lock_tally,omitempty"`
	Finished     *FinishedVoteInfo `protobuf:"bytes,5,opt,name=finished,proto3" json:"finished,omitempty"`
	Proof        *Proof            `protobuf:"bytes,6,opt,name=proof,proto3" json:"proof,omitempty"`
	Metadata     *ResponseMetadata `protobuf:"bytes,7,opt,name=metadata,proto3" json:"metadata,omitempty"`
}

func (m *GetContestedResourceVoteStateResponseV0) Reset() {
	*m = GetContestedResourceVoteStateResponseV0{}
}
func (m *GetContestedResourceVoteStateResponseV0) String() string { return proto.CompactTextString(m) }
func (*GetContestedResourceVoteStateResponseV0) ProtoMessage()    {}

type Contender struct {
	Identifier []byte `protobuf:"bytes,1,opt,name=identifier,proto3" json:"identifier,omitempty"`
	Tally      uint64 `protobuf:"varint,2,opt,name=tally,proto3" json:"tally,omitempty"`
	Document   []byte `protobuf:"bytes,3,opt,name=document,proto3" json:"document,omitempty"`
}

func (m *Contender) Reset()         { *m = Contender{} }
func (m *Contender) String() string { return proto.CompactTextString(m) }
func (*Contender) ProtoMessage()    {}

type FinishedVoteInfo struct {
	Outcome                uint32 `protobuf:"varint,1,opt,name=outcome,proto3" json:"outcome,omitempty"`
	WonByIdentityId        []byte `protobuf:"bytes,2,opt,name=won_by_identity_id,json=wonByIdentityId,proto3" json:"won_by_identity_id,omitempty"`
	FinishedAtBlockHeight  uint64 `protobuf:"varint,3,opt,name=finished_at_block_height,json=finishedAtBlockHeight,proto3" json:"finished_at_block_height,omitempty"`
	FinishedAtBlockTimeMs  uint64 `protobuf:"varint,4,opt,name=finished_at_block_time_ms,json=finishedAtBlockTimeMs,proto3" json:"finished_at_block_time_ms,omitempty"`
}

func (m *FinishedVoteInfo) Reset()         { *m = FinishedVoteInfo{} }
func (m *FinishedVoteInfo) String() string { return proto.CompactTextString(m) }
func (*FinishedVoteInfo) ProtoMessage()    {}

// value tuples of a contested index with a running contest

type GetContestedResourcesRequest struct {
	V0 *GetContestedResourcesRequestV0 `protobuf:"bytes,1,opt,name=v0,proto3" json:"v0,omitempty"`
}

func (m *GetContestedResourcesRequest) Reset()         { *m = GetContestedResourcesRequest{} }
func (m *GetContestedResourcesRequest) String() string { return proto.CompactTextString(m) }
func (*GetContestedResourcesRequest) ProtoMessage()    {}

type GetContestedResourcesRequestV0 struct {
	ContractId           []byte   `protobuf:"bytes,1,opt,name=contract_id,json=contractId,proto3" json:"contract_id,omitempty"`
	DocumentTypeName     string   `protobuf:"bytes,2,opt,name=document_type_name,json=documentTypeName,proto3" json:"document_type_name,omitempty"`
	IndexName            string   `protobuf:"bytes,3,opt,name=index_name,json=indexName,proto3" json:"index_name,omitempty"`
	StartIndexValues     [][]byte `protobuf:"bytes,4,rep,name=start_index_values,json=startIndexValues,proto3" json:"start_index_values,omitempty"`
	StartAtValue         []byte   `protobuf:"bytes,5,opt,name=start_at_value,json=startAtValue,proto3" json:"start_at_value,omitempty"`
	StartAtValueIncluded bool     `protobuf:"varint,6,opt,name=start_at_value_included,json=startAtValueIncluded,proto3" json:"start_at_value_included,omitempty"`
	Count                uint32   `protobuf:"varint,7,opt,name=count,proto3" json:"count,omitempty"`
	OrderAscending       bool     `protobuf:"varint,8,opt,name=order_ascending,json=orderAscending,proto3" json:"order_ascending,omitempty"`
	Prove                bool     `protobuf:"varint,9,opt,name=prove,proto3" json:"prove,omitempty"`
}

func (m *GetContestedResourcesRequestV0) Reset()         { *m = GetContestedResourcesRequestV0{} }
func (m *GetContestedResourcesRequestV0) String() string { return proto.CompactTextString(m) }
func (*GetContestedResourcesRequestV0) ProtoMessage()    {}

type GetContestedResourcesResponse struct {
	V0 *GetContestedResourcesResponseV0 `protobuf:"bytes,1,opt,name=v0,proto3" json:"v0,omitempty"`
}

func (m *GetContestedResourcesResponse) Reset()         { *m = GetContestedResourcesResponse{} }
func (m *GetContestedResourcesResponse) String() string { return proto.CompactTextString(m) }
func (*GetContestedResourcesResponse) ProtoMessage()    {}

type GetContestedResourcesResponseV0 struct {
	Resources []*IndexValues    `protobuf:"bytes,1,rep,name=resources,proto3" json:"resources,omitempty"`
	Proof     *Proof            `protobuf:"bytes,2,opt,name=proof,proto3" json:"proof,omitempty"`
	Metadata  *ResponseMetadata `protobuf:"bytes,3,opt,name=metadata,proto3" json:"metadata,omitempty"`
}

func (m *GetContestedResourcesResponseV0) Reset()         { *m = GetContestedResourcesResponseV0{} }
func (m *GetContestedResourcesResponseV0) String() string { return proto.CompactTextString(m) }
func (*GetContestedResourcesResponseV0) ProtoMessage()    {}

type IndexValues struct {
	Values [][]byte `protobuf:"bytes,1,rep,name=values,proto3" json:"values,omitempty"`
}

func (m *IndexValues) Reset()         { *m = IndexValues{} }
func (m *IndexValues) String() string { return proto.CompactTextString(m) }
func (*IndexValues) ProtoMessage()    {}

// voters for one contender

type GetContestedResourceVotersRequest struct {
	V0 *GetContestedResourceVotersRequestV0 `protobuf:"bytes,1,opt,name=v0,proto3" json:"v0,omitempty"`
}

func (m *GetContestedResourceVotersRequest) Reset()         { *m = GetContestedResourceVotersRequest{} }
func (m *GetContestedResourceVotersRequest) String() string { return proto.CompactTextString(m) }
func (*GetContestedResourceVotersRequest) ProtoMessage()    {}

type GetContestedResourceVotersRequestV0 struct {
	ContractId        []byte   `protobuf:"bytes,1,opt,name=contract_id,json=contractId,proto3" json:"contract_id,omitempty"`
	DocumentTypeName  string   `protobuf:"bytes,2,opt,name=document_type_name,json=documentTypeName,proto3" json:"document_type_name,omitempty"`
	IndexName         string   `protobuf:"bytes,3,opt,name=index_name,json=indexName,proto3" json:"index_name,omitempty"`
	IndexValues       [][]byte `protobuf:"bytes,4,rep,name=index_values,json=indexValues,proto3" json:"index_values,omitempty"`
	ContestantId      []byte   `protobuf:"bytes,5,opt,name=contestant_id,json=contestantId,proto3" json:"contestant_id,omitempty"`
	StartAtIdentifier []byte   `protobuf:"bytes,6,opt,name=start_at_identifier,json=startAtIdentifier,proto3" json:"start_at_identifier,omitempty"`
	StartAtIncluded   bool     `protobuf:"varint,7,opt,name=start_at_included,json=startAtIncluded,proto3" json:"start_at_included,omitempty"`
	Count             uint32   `protobuf:"varint,8,opt,name=count,proto3" json:"count,omitempty"`
	OrderAscending    bool     `protobuf:"varint,9,opt,name=order_ascending,json=orderAscending,proto3" json:"order_ascending,omitempty"`
	Prove             bool     `protobuf:"varint,10,opt,name=prove,proto3" json:"prove,omitempty"`
}

func (m *GetContestedResourceVotersRequestV0) Reset()         { *m = GetContestedResourceVotersRequestV0{} }
func (m *GetContestedResourceVotersRequestV0) String() string { return proto.CompactTextString(m) }
func (*GetContestedResourceVotersRequestV0) ProtoMessage()    {}

type GetContestedResourceVotersResponse struct {
	V0 *GetContestedResourceVotersResponseV0 `protobuf:"bytes,1,opt,name=v0,proto3" json:"v0,omitempty"`
}

func (m *GetContestedResourceVotersResponse) Reset()         { *m = GetContestedResourceVotersResponse{} }
func (m *GetContestedResourceVotersResponse) String() string { return proto.CompactTextString(m) }
func (*GetContestedResourceVotersResponse) ProtoMessage()    {}

type GetContestedResourceVotersResponseV0 struct {
	Found    bool              `protobuf:"varint,1,opt,name=found,proto3" json:"found,omitempty"`
	Voters   [][]byte          `protobuf:"bytes,2,rep,name=voters,proto3" json:"voters,omitempty"`
	Proof    *Proof            `protobuf:"bytes,3,opt,name=proof,proto3" json:"proof,omitempty"`
	Metadata *ResponseMetadata `protobuf:"bytes,4,opt,name=metadata,proto3" json:"metadata,omitempty"`
}

func (m *GetContestedResourceVotersResponseV0) Reset()         { *m = GetContestedResourceVotersResponseV0{} }
func (m *GetContestedResourceVotersResponseV0) String() string { return proto.CompactTextString(m) }
func (*GetContestedResourceVotersResponseV0) ProtoMessage()    {}

// running votes of one voter

type GetIdentityVotesRequest struct {
	V0 *GetIdentityVotesRequestV0 `protobuf:"bytes,1,opt,name=v0,proto3" json:"v0,omitempty"`
}

func (m *GetIdentityVotesRequest) Reset()         { *m = GetIdentityVotesRequest{} }
func (m *GetIdentityVotesRequest) String() string { return proto.CompactTextString(m) }
func (*GetIdentityVotesRequest) ProtoMessage()    {}

type GetIdentityVotesRequestV0 struct {
	IdentityId        []byte `protobuf:"bytes,1,opt,name=identity_id,json=identityId,proto3" json:"identity_id,omitempty"`
	StartAtVotePollId []byte `protobuf:"bytes,2,opt,name=start_at_vote_poll_id,json=startAtVotePollId,proto3" json:"start_at_vote_poll_id,omitempty"`
	StartAtIncluded   bool   `protobuf:"varint,3,opt,name=start_at_included,json=startAtIncluded,proto3" json:"start_at_included,omitempty"`
	Limit             uint32 `protobuf:"varint,4,opt,name=limit,proto3" json:"limit,omitempty"`
	OrderAscending    bool   `protobuf:"varint,5,opt,name=order_ascending,json=orderAscending,proto3" json:"order_ascending,omitempty"`
	Prove             bool   `protobuf:"varint,6,opt,name=prove,proto3" json:"prove,omitempty"`
}

func (m *GetIdentityVotesRequestV0) Reset()         { *m = GetIdentityVotesRequestV0{} }
func (m *GetIdentityVotesRequestV0) String() string { return proto.CompactTextString(m) }
func (*GetIdentityVotesRequestV0) ProtoMessage()    {}

type GetIdentityVotesResponse struct {
	V0 *GetIdentityVotesResponseV0 `protobuf:"bytes,1,opt,name=v0,proto3" json:"v0,omitempty"`
}

func (m *GetIdentityVotesResponse) Reset()         { *m = GetIdentityVotesResponse{} }
func (m *GetIdentityVotesResponse) String() string { return proto.CompactTextString(m) }
func (*GetIdentityVotesResponse) ProtoMessage()    {}

// GetIdentityVotesResponseV0 - votes in the canonical resource vote
// serialization
type GetIdentityVotesResponseV0 struct {
	Votes    [][]byte          `protobuf:"bytes,1,rep,name=votes,proto3" json:"votes,omitempty"`
	Proof    *Proof            `protobuf:"bytes,2,opt,name=proof,proto3" json:"proof,omitempty"`
	Metadata *ResponseMetadata `protobuf:"bytes,3,opt,name=metadata,proto3" json:"metadata,omitempty"`
}

func (m *GetIdentityVotesResponseV0) Reset()         { *m = GetIdentityVotesResponseV0{} }
func (m *GetIdentityVotesResponseV0) String() string { return proto.CompactTextString(m) }
func (*GetIdentityVotesResponseV0) ProtoMessage()    {}

// polls by end time

type GetVotePollsByEndDateRequest struct {
	V0 *GetVotePollsByEndDateRequestV0 `protobuf:"bytes,1,opt,name=v0,proto3" json:"v0,omitempty"`
}

func (m *GetVotePollsByEndDateRequest) Reset()         { *m = GetVotePollsByEndDateRequest{} }
func (m *GetVotePollsByEndDateRequest) String() string { return proto.CompactTextString(m) }
func (*GetVotePollsByEndDateRequest) ProtoMessage()    {}

type GetVotePollsByEndDateRequestV0 struct {
	StartTimeInfo *TimeBound `protobuf:"bytes,1,opt,name=start_time_info,json=startTimeInfo,proto3" json:"start_time_info,omitempty"`
	EndTimeInfo   *TimeBound `protobuf:"bytes,2,opt,name=end_time_info,json=endTimeInfo,proto3" json:"end_time_info,omitempty"`
	Limit         uint32     `protobuf:"varint,3,opt,name=limit,proto3" json:"limit,omitempty"`
	Ascending     bool       `protobuf:"varint,4,opt,name=ascending,proto3" json:"ascending,omitempty"`
	Prove         bool       `protobuf:"varint,5,opt,name=prove,proto3" json:"prove,omitempty"`
}

func (m *GetVotePollsByEndDateRequestV0) Reset()         { *m = GetVotePollsByEndDateRequestV0{} }
func (m *GetVotePollsByEndDateRequestV0) String() string { return proto.CompactTextString(m) }
func (*GetVotePollsByEndDateRequestV0) ProtoMessage()    {}

type TimeBound struct {
	TimeMs   uint64 `protobuf:"varint,1,opt,name=time_ms,json=timeMs,proto3" json:"time_ms,omitempty"`
	Included bool   `protobuf:"varint,2,opt,name=included,proto3" json:"included,omitempty"`
}

func (m *TimeBound) Reset()         { *m = TimeBound{} }
func (m *TimeBound) String() string { return proto.CompactTextString(m) }
func (*TimeBound) ProtoMessage()    {}

type GetVotePollsByEndDateResponse struct {
	V0 *GetVotePollsByEndDateResponseV0 `protobuf:"bytes,1,opt,name=v0,proto3" json:"v0,omitempty"`
}

func (m *GetVotePollsByEndDateResponse) Reset()         { *m = GetVotePollsByEndDateResponse{} }
func (m *GetVotePollsByEndDateResponse) String() string { return proto.CompactTextString(m) }
func (*GetVotePollsByEndDateResponse) ProtoMessage()    {}

type GetVotePollsByEndDateResponseV0 struct {
	Groups   []*PollsAtTime    `protobuf:"bytes,1,rep,name=groups,proto3" json:"groups,omitempty"`
	Proof    *Proof            `protobuf:"bytes,2,opt,name=proof,proto3" json:"proof,omitempty"`
	Metadata *ResponseMetadata `protobuf:"bytes,3,opt,name=metadata,proto3" json:"metadata,omitempty"`
}

func (m *GetVotePollsByEndDateResponseV0) Reset()         { *m = GetVotePollsByEndDateResponseV0{} }
func (m *GetVotePollsByEndDateResponseV0) String() string { return proto.CompactTextString(m) }
func (*GetVotePollsByEndDateResponseV0) ProtoMessage()    {}

// PollsAtTime - serialized polls ending at one time
type PollsAtTime struct {
	TimeMs uint64   `protobuf:"varint,1,opt,name=time_ms,json=timeMs,proto3" json:"time_ms,omitempty"`
	Polls  [][]byte `protobuf:"bytes,2,rep,name=polls,proto3" json:"polls,omitempty"`
}

func (m *PollsAtTime) Reset()         { *m = PollsAtTime{} }
func (m *PollsAtTime) String() string { return proto.CompactTextString(m) }
func (*PollsAtTime) ProtoMessage()    {}
