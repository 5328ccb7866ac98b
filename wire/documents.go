// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package wire

import (
	"github.com/golang/protobuf/proto"
)

type GetDataContractRequest struct {
	V0 *GetDataContractRequestV0 `protobuf:"bytes,1,opt,name=v0,proto3" json:"v0,omitempty"`
}

func (m *GetDataContractRequest) Reset()         { *m = GetDataContractRequest{} }
func (m *GetDataContractRequest) String() string { return proto.CompactTextString(m) }
func (*GetDataContractRequest) ProtoMessage()    {}

type GetDataContractRequestV0 struct {
	Id    []byte `protobuf:"bytes,1,opt,name=id,proto3" json:"id,omitempty"`
	Prove bool   `protobuf:"varint,2,opt,name=prove,proto3" json:"prove,omitempty"`
}

func (m *GetDataContractRequestV0) Reset()         { *m = GetDataContractRequestV0{} }
func (m *GetDataContractRequestV0) String() string { return proto.CompactTextString(m) }
func (*GetDataContractRequestV0) ProtoMessage()    {}

type GetDataContractResponse struct {
	V0 *GetDataContractResponseV0 `protobuf:"bytes,1,opt,name=v0,proto3" json:"v0,omitempty"`
}

func (m *GetDataContractResponse) Reset()         { *m = GetDataContractResponse{} }
func (m *GetDataContractResponse) String() string { return proto.CompactTextString(m) }
func (*GetDataContractResponse) ProtoMessage()    {}

type GetDataContractResponseV0 struct {
	DataContract []byte            `protobuf:"bytes,1,opt,name=data_contract,json=dataContract,proto3" json:"data_contract,omitempty"`
	Proof        *Proof            `protobuf:"bytes,2,opt,name=proof,proto3" json:"proof,omitempty"`
	Metadata     *ResponseMetadata `protobuf:"bytes,3,opt,name=metadata,proto3" json:"metadata,omitempty"`
}

func (m *GetDataContractResponseV0) Reset()         { *m = GetDataContractResponseV0{} }
func (m *GetDataContractResponseV0) String() string { return proto.CompactTextString(m) }
func (*GetDataContractResponseV0) ProtoMessage()    {}

type GetDocumentRequest struct {
	V0 *GetDocumentRequestV0 `protobuf:"bytes,1,opt,name=v0,proto3" json:"v0,omitempty"`
}

func (m *GetDocumentRequest) Reset()         { *m = GetDocumentRequest{} }
func (m *GetDocumentRequest) String() string { return proto.CompactTextString(m) }
func (*GetDocumentRequest) ProtoMessage()    {}

type GetDocumentRequestV0 struct {
	DataContractId []byte `protobuf:"bytes,1,opt,name=data_contract_id,json=dataContractId,proto3" json:"data_contract_id,omitempty"`
	DocumentType   string `protobuf:"bytes,2,opt,name=document_type,json=documentType,proto3" json:"document_type,omitempty"`
	DocumentId     []byte `protobuf:"bytes,3,opt,name=document_id,json=documentId,proto3" json:"document_id,omitempty"`
	Prove          bool   `protobuf:"varint,4,opt,name=prove,proto3" json:"prove,omitempty"`
}

func (m *GetDocumentRequestV0) Reset()         { *m = GetDocumentRequestV0{} }
func (m *GetDocumentRequestV0) String() string { return proto.CompactTextString(m) }
func (*GetDocumentRequestV0) ProtoMessage()    {}

type GetDocumentResponse struct {
	V0 *GetDocumentResponseV0 `protobuf:"bytes,1,opt,name=v0,proto3" json:"v0,omitempty"`
}

func (m *GetDocumentResponse) Reset()         { *m = GetDocumentResponse{} }
func (m *GetDocumentResponse) String() string { return proto.CompactTextString(m) }
func (*GetDocumentResponse) ProtoMessage()    {}

type GetDocumentResponseV0 struct {
	Document []byte            `protobuf:"bytes,1,opt,name=document,proto3" json:"document,omitempty"`
	Proof    *Proof            `protobuf:"bytes,2,opt,name=proof,proto3" json:"proof,omitempty"`
	Metadata *ResponseMetadata `protobuf:"bytes,3,opt,name=metadata,proto3" json:"metadata,omitempty"`
}

func (m *GetDocumentResponseV0) Reset()         { *m = GetDocumentResponseV0{} }
func (m *GetDocumentResponseV0) String() string { return proto.CompactTextString(m) }
func (*GetDocumentResponseV0) ProtoMessage()    {}
