// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package wire

import (
	"github.com/golang/protobuf/proto"
)

type WaitForStateTransitionResultRequest struct {
	V0 *WaitForStateTransitionResultRequestV0 `protobuf:"bytes,1,opt,name=v0,proto3" json:"v0,omitempty"`
}

func (m *WaitForStateTransitionResultRequest) Reset() {
	*m = WaitForStateTransitionResultRequest{}
}
func (m *WaitForStateTransitionResultRequest) String() string { return proto.CompactTextString(m) }
func (*WaitForStateTransitionResultRequest) ProtoMessage()    {}

// WaitForStateTransitionResultRequestV0 - the transition in its
// canonical serialization
type WaitForStateTransitionResultRequestV0 struct {
	StateTransition []byte `protobuf:"bytes,1,opt,name=state_transition,json=stateTransition,proto3" json:"state_transition,omitempty"`
	Prove           bool   `protobuf:"varint,2,opt,name=prove,proto3" json:"prove,omitempty"`
}

func (m *WaitForStateTransitionResultRequestV0) Reset() {
	*m = WaitForStateTransitionResultRequestV0{}
}
func (m *WaitForStateTransitionResultRequestV0) String() string { return proto.CompactTextString(m) }
func (*WaitForStateTransitionResultRequestV0) ProtoMessage()    {}

type WaitForStateTransitionResultResponse struct {
	V0 *WaitForStateTransitionResultResponseV0 `protobuf:"bytes,1,opt,name=v0,proto3" json:"v0,omitempty"`
}

func (m *WaitForStateTransitionResultResponse) Reset() {
	*m = WaitForStateTransitionResultResponse{}
}
func (m *WaitForStateTransitionResultResponse) String() string { return proto.CompactTextString(m) }
func (*WaitForStateTransitionResultResponse) ProtoMessage()    {}

type WaitForStateTransitionResultResponseV0 struct {
	Proof    *Proof            `protobuf:"bytes,1,opt,name=proof,proto3" json:"proof,omitempty"`
	Metadata *ResponseMetadata `protobuf:"bytes,2,opt,name=metadata,proto3" json:"metadata,omitempty"`
}

func (m *WaitForStateTransitionResultResponseV0) Reset() {
	*m = WaitForStateTransitionResultResponseV0{}
}
func (m *WaitForStateTransitionResultResponseV0) String() string { return proto.CompactTextString(m) }
func (*WaitForStateTransitionResultResponseV0) ProtoMessage()    {}
