// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package local

import (
	"golang.org/x/crypto/ed25519"
	"golang.org/x/crypto/sha3"

	"github.com/bitmark-inc/drived/consensus"
	"github.com/bitmark-inc/drived/drive"
	"github.com/bitmark-inc/drived/fault"
	"github.com/bitmark-inc/drived/merkle"
	"github.com/bitmark-inc/drived/util"
)

// QuorumType - quorum type used by a single node chain
const QuorumType = 100

// Quorum - one signing key standing in for a validator quorum
type Quorum struct {
	Type uint32
	Hash merkle.Digest
	key  ed25519.PrivateKey
}

// NewQuorum - deterministic quorum from seed
func NewQuorum(seed []byte) *Quorum {
	s := sha3.Sum256(seed)
	key := ed25519.NewKeyFromSeed(s[:ed25519.SeedSize])
	return &Quorum{
		Type: QuorumType,
		Hash: merkle.NewDigest(key.Public().(ed25519.PublicKey)),
		key:  key,
	}
}

// PublicKey - the quorum's verification key
func (q *Quorum) PublicKey() ed25519.PublicKey {
	return q.key.Public().(ed25519.PublicKey)
}

// QuorumPublicKey - the key of this quorum, ErrQuorumKeyNotFound for
// any other
func (q *Quorum) QuorumPublicKey(quorumType uint32, quorumHash merkle.Digest, coreHeight uint32) (ed25519.PublicKey, error) {
	if quorumType != q.Type || quorumHash != q.Hash {
		return nil, fault.ErrQuorumKeyNotFound
	}
	return q.PublicKey(), nil
}

// Sign - commit a block's state the way the quorum would
func (q *Quorum) Sign(chainID string, round uint32, state consensus.StateID) (*consensus.Commit, error) {
	blockID := util.AppendBytes(nil, []byte(chainID))
	blockID = util.AppendUint64(blockID, state.Height)
	blockID = append(blockID, state.AppHash[:]...)
	blockIDHash := sha3.Sum256(blockID)

	c := &consensus.Commit{
		ChainID:     chainID,
		Height:      state.Height,
		Round:       round,
		BlockIDHash: blockIDHash[:],
		StateID:     state,
		QuorumType:  q.Type,
		QuorumHash:  q.Hash,
	}
	if err := c.Sign(q.key); nil != err {
		return nil, err
	}
	return c, nil
}

// SignBlock - the commit of a block that left root as app hash
func (q *Quorum) SignBlock(chainID string, info drive.BlockInfo, root merkle.Digest) (*consensus.Commit, error) {
	return q.Sign(chainID, 0, consensus.StateID{
		ProtocolVersion: uint32(info.ProtocolVersion),
		CoreHeight:      info.CoreHeight,
		TimeMs:          info.TimeMs,
		AppHash:         root,
		Height:          info.Height,
	})
}

// CommitBlock - commit b and sign the state it left
func (q *Quorum) CommitBlock(chainID string, b *drive.Block) (*consensus.Commit, error) {
	root, err := b.Commit()
	if nil != err {
		return nil, err
	}
	return q.SignBlock(chainID, b.Info(), root)
}
