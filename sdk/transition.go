// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package sdk

import (
	"github.com/bitmark-inc/drived/contract"
	"github.com/bitmark-inc/drived/fault"
	"github.com/bitmark-inc/drived/identifier"
	"github.com/bitmark-inc/drived/proof"
	"github.com/bitmark-inc/drived/transition"
	"github.com/bitmark-inc/drived/wire"
)

// MaybeStateTransitionResultFromProof - the state a transition left,
// contracts of a documents batch come from the provider
func MaybeStateTransitionResultFromProof(request *wire.WaitForStateTransitionResultRequest, response *wire.WaitForStateTransitionResultResponse, provider ContextProvider) (*proof.StateTransitionResult, error) {
	return FromProofWithKnownContracts(request, response, nil, provider)
}

// FromProofWithKnownContracts - the state a transition left
//
// contracts are looked up in known first so that a transition that
// just created or used a contract can be checked without fetching it;
// a nil known consults only the provider
func FromProofWithKnownContracts(request *wire.WaitForStateTransitionResultRequest, response *wire.WaitForStateTransitionResultResponse, known proof.ContractLookup, provider ContextProvider) (*proof.StateTransitionResult, error) {
	if nil == request.V0 || nil == response.V0 {
		return nil, fault.ErrEmptyVersion
	}
	st, err := transition.Deserialize(request.V0.StateTransition)
	if nil != err {
		return nil, err
	}

	lookup := func(id identifier.Identifier) (*contract.Contract, error) {
		if nil != known {
			c, err := known(id)
			if nil != err && !fault.IsErrNotFound(err) {
				return nil, err
			}
			if nil != c {
				return c, nil
			}
		}
		c, err := provider.DataContract(id)
		if nil != err {
			return nil, err
		}
		if nil == c {
			return nil, fault.ErrContractNotFound
		}
		return c, nil
	}

	return verify(response.V0.Proof, response.V0.Metadata, provider, func(src proof.Source) (*proof.StateTransitionResult, error) {
		return proof.ReadStateTransitionResult(src, st, lookup)
	})
}
