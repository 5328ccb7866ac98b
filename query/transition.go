// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package query

import (
	"github.com/bitmark-inc/drived/fault"
	"github.com/bitmark-inc/drived/transition"
	"github.com/bitmark-inc/drived/wire"
)

// WaitForStateTransitionResult - proof that an executed transition
// left its documents or vote in committed state
//
// without prove the request only checks that the transition decodes
func (h *Handler) WaitForStateTransitionResult(request *wire.WaitForStateTransitionResultRequest) (*wire.WaitForStateTransitionResultResponse, error) {
	if err := h.allow("state transition result"); nil != err {
		return nil, err
	}
	if nil == request.V0 {
		return nil, fault.ErrEmptyVersion
	}
	st, err := transition.Deserialize(request.V0.StateTransition)
	if nil != err {
		return nil, err
	}

	response := &wire.WaitForStateTransitionResultResponseV0{}
	if request.V0.Prove {
		proven, err := h.drive.ProveStateTransitionResult(st)
		if nil != err {
			return nil, err
		}
		response.Proof, response.Metadata, err = h.proved(proven)
		if nil != err {
			return nil, err
		}
	}
	return &wire.WaitForStateTransitionResultResponse{V0: response}, nil
}
