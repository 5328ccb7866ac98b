// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package sdk

import (
	"github.com/bitmark-inc/drived/contract"
	"github.com/bitmark-inc/drived/document"
	"github.com/bitmark-inc/drived/fault"
	"github.com/bitmark-inc/drived/fee"
	"github.com/bitmark-inc/drived/identifier"
	"github.com/bitmark-inc/drived/proof"
	"github.com/bitmark-inc/drived/wire"
)

// MaybeDataContractFromProof - the proved contract, nil if proved absent
func MaybeDataContractFromProof(request *wire.GetDataContractRequest, response *wire.GetDataContractResponse, provider ContextProvider) (*contract.Contract, error) {
	if nil == request.V0 || nil == response.V0 {
		return nil, fault.ErrEmptyVersion
	}
	id, err := identifier.FromBytes(request.V0.Id)
	if nil != err {
		return nil, err
	}
	return verify(response.V0.Proof, response.V0.Metadata, provider, func(src proof.Source) (*contract.Contract, error) {
		return proof.ReadContract(src, id)
	})
}

// MaybeDocumentFromProof - the proved document, nil if proved absent
//
// the document's contract comes from the provider
func MaybeDocumentFromProof(request *wire.GetDocumentRequest, response *wire.GetDocumentResponse, provider ContextProvider) (*document.Document, error) {
	if nil == request.V0 || nil == response.V0 {
		return nil, fault.ErrEmptyVersion
	}
	c, err := trustedContract(provider, request.V0.DataContractId)
	if nil != err {
		return nil, err
	}
	id, err := identifier.FromBytes(request.V0.DocumentId)
	if nil != err {
		return nil, err
	}
	typeName := request.V0.DocumentType
	return verify(response.V0.Proof, response.V0.Metadata, provider, func(src proof.Source) (*document.Document, error) {
		return proof.ReadDocument(src, c, typeName, id)
	})
}

// MaybeBalanceFromProof - identity or prefunded specialized balance,
// nil if proved absent
func MaybeBalanceFromProof(request *wire.GetBalanceRequest, response *wire.GetBalanceResponse, provider ContextProvider) (*fee.Credits, error) {
	if nil == request.V0 || nil == response.V0 {
		return nil, fault.ErrEmptyVersion
	}
	id, err := identifier.FromBytes(request.V0.Id)
	if nil != err {
		return nil, err
	}

	var read func(proof.Source, identifier.Identifier) (*fee.Credits, error)
	switch request.V0.Kind {
	case wire.IdentityBalance:
		read = proof.ReadIdentityBalance
	case wire.SpecializedBalance:
		read = proof.ReadSpecializedBalance
	default:
		return nil, fault.ErrInvalidBalanceKind
	}
	return verify(response.V0.Proof, response.V0.Metadata, provider, func(src proof.Source) (*fee.Credits, error) {
		return read(src, id)
	})
}
