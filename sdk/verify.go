// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package sdk

import (
	"fmt"

	"github.com/golang/snappy"

	"github.com/bitmark-inc/drived/consensus"
	"github.com/bitmark-inc/drived/contract"
	"github.com/bitmark-inc/drived/fault"
	"github.com/bitmark-inc/drived/identifier"
	"github.com/bitmark-inc/drived/merkle"
	"github.com/bitmark-inc/drived/proof"
	"github.com/bitmark-inc/drived/wire"
)

// replay read on the proof of a response and check the signed commit
// of the root it yields
func verify[T any](p *wire.Proof, metadata *wire.ResponseMetadata, provider ContextProvider, read func(proof.Source) (T, error)) (T, error) {
	var zero T

	if nil == p || 0 == len(p.GroveProof) {
		return zero, fault.ErrNoProofInResult
	}
	if nil == metadata {
		return zero, fault.ErrEmptyResponseMetadata
	}

	raw, err := snappy.Decode(nil, p.GroveProof)
	if nil != err {
		return zero, fmt.Errorf("%w: %v", fault.ErrInvalidProof, err)
	}

	root, result, err := proof.Verify(raw, read)
	if nil != err {
		return zero, err
	}

	commit, err := commitOf(p, metadata, root)
	if nil != err {
		return zero, err
	}
	key, err := provider.QuorumPublicKey(commit.QuorumType, commit.QuorumHash, commit.StateID.CoreHeight)
	if nil != err {
		return zero, err
	}
	if err := commit.Verify(key); nil != err {
		return zero, err
	}
	return result, nil
}

// the commit the quorum must have signed if the proven root is the
// app hash of the block described by metadata
func commitOf(p *wire.Proof, metadata *wire.ResponseMetadata, root merkle.Digest) (*consensus.Commit, error) {
	c := &consensus.Commit{
		ChainID:     metadata.ChainId,
		Height:      metadata.Height,
		Round:       p.Round,
		BlockIDHash: p.BlockIdHash,
		StateID: consensus.StateID{
			ProtocolVersion: metadata.ProtocolVersion,
			CoreHeight:      metadata.CoreChainLockedHeight,
			TimeMs:          metadata.TimeMs,
			AppHash:         root,
			Height:          metadata.Height,
		},
		QuorumType: p.QuorumType,
		Signature:  p.Signature,
	}
	if err := merkle.DigestFromBytes(&c.QuorumHash, p.QuorumHash); nil != err {
		return nil, fmt.Errorf("%w: quorum hash: %v", fault.ErrInvalidProof, err)
	}
	return c, nil
}

// FromProof - as maybe but a value proved absent is ErrNotFound
func FromProof[Request any, Response any, T any](maybe func(Request, Response, ContextProvider) (*T, error), request Request, response Response, provider ContextProvider) (*T, error) {
	result, err := maybe(request, response, provider)
	if nil != err {
		return nil, err
	}
	if nil == result {
		return nil, fault.ErrNotFound
	}
	return result, nil
}

// the contract a request refers to, from the provider
func trustedContract(provider ContextProvider, buffer []byte) (*contract.Contract, error) {
	id, err := identifier.FromBytes(buffer)
	if nil != err {
		return nil, err
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
