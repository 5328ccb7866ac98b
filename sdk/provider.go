// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package sdk

import (
	"golang.org/x/crypto/ed25519"

	"github.com/bitmark-inc/drived/contract"
	"github.com/bitmark-inc/drived/identifier"
	"github.com/bitmark-inc/drived/merkle"
)

// ContextProvider - the trusted data a client brings to verification
type ContextProvider interface {
	// QuorumPublicKey - key of the quorum that signed at a core height
	QuorumPublicKey(quorumType uint32, quorumHash merkle.Digest, coreHeight uint32) (ed25519.PublicKey, error)

	// DataContract - a contract the client trusts, nil if unknown
	DataContract(id identifier.Identifier) (*contract.Contract, error)
}
