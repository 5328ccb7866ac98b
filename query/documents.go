// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package query

import (
	"github.com/bitmark-inc/drived/drive"
	"github.com/bitmark-inc/drived/fault"
	"github.com/bitmark-inc/drived/fee"
	"github.com/bitmark-inc/drived/identifier"
	"github.com/bitmark-inc/drived/wire"
)

// GetDataContract - a contract by id
func (h *Handler) GetDataContract(request *wire.GetDataContractRequest) (*wire.GetDataContractResponse, error) {
	if err := h.allow("data contract"); nil != err {
		return nil, err
	}
	if nil == request.V0 {
		return nil, fault.ErrEmptyVersion
	}
	id, err := identifier.FromBytes(request.V0.Id)
	if nil != err {
		return nil, err
	}

	c, proven, err := h.drive.FetchContract(id, request.V0.Prove)
	if nil != err {
		return nil, err
	}
	response := &wire.GetDataContractResponseV0{}
	if nil != proven {
		response.Proof, response.Metadata, err = h.proved(proven)
		if nil != err {
			return nil, err
		}
	} else if nil != c {
		response.DataContract = c.Serialize()
	}
	return &wire.GetDataContractResponse{V0: response}, nil
}

// GetDocument - a document by id
func (h *Handler) GetDocument(request *wire.GetDocumentRequest) (*wire.GetDocumentResponse, error) {
	if err := h.allow("document"); nil != err {
		return nil, err
	}
	if nil == request.V0 {
		return nil, fault.ErrEmptyVersion
	}
	contractID, err := identifier.FromBytes(request.V0.DataContractId)
	if nil != err {
		return nil, err
	}
	id, err := identifier.FromBytes(request.V0.DocumentId)
	if nil != err {
		return nil, err
	}

	doc, proven, err := h.drive.FetchDocument(contractID, request.V0.DocumentType, id, request.V0.Prove)
	if nil != err {
		return nil, err
	}
	response := &wire.GetDocumentResponseV0{}
	if nil != proven {
		response.Proof, response.Metadata, err = h.proved(proven)
		if nil != err {
			return nil, err
		}
	} else if nil != doc {
		response.Document, err = doc.Serialize()
		if nil != err {
			return nil, err
		}
	}
	return &wire.GetDocumentResponse{V0: response}, nil
}

// GetBalance - identity balance or prefunded specialized balance
func (h *Handler) GetBalance(request *wire.GetBalanceRequest) (*wire.GetBalanceResponse, error) {
	if err := h.allow("balance"); nil != err {
		return nil, err
	}
	if nil == request.V0 {
		return nil, fault.ErrEmptyVersion
	}
	id, err := identifier.FromBytes(request.V0.Id)
	if nil != err {
		return nil, err
	}

	var fetch func(identifier.Identifier, bool) (*fee.Credits, *drive.Proven, error)
	switch request.V0.Kind {
	case wire.IdentityBalance:
		fetch = h.drive.FetchIdentityBalance
	case wire.SpecializedBalance:
		fetch = h.drive.FetchSpecializedBalance
	default:
		return nil, fault.ErrInvalidBalanceKind
	}

	balance, proven, err := fetch(id, request.V0.Prove)
	if nil != err {
		return nil, err
	}
	response := &wire.GetBalanceResponseV0{}
	if nil != proven {
		response.Proof, response.Metadata, err = h.proved(proven)
		if nil != err {
			return nil, err
		}
	} else if nil != balance {
		response.Found = true
		response.Balance = uint64(*balance)
	}
	return &wire.GetBalanceResponse{V0: response}, nil
}
