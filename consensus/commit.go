// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package consensus

import (
	"golang.org/x/crypto/ed25519"

	"github.com/bitmark-inc/drived/fault"
	"github.com/bitmark-inc/drived/merkle"
	"github.com/bitmark-inc/drived/util"
)

// domain separation for commit signatures
const signPrefix = "drive/commit/v0"

// BlockIDHashLength - length of a block id hash
const BlockIDHashLength = 32

// StateID - the state a block left behind
type StateID struct {
	ProtocolVersion uint32
	CoreHeight      uint32
	TimeMs          uint64
	AppHash         merkle.Digest
	Height          uint64
}

// Bytes - canonical encoding
func (s *StateID) Bytes() []byte {
	buffer := util.AppendVarint64(nil, uint64(s.ProtocolVersion))
	buffer = util.AppendVarint64(buffer, s.Height)
	buffer = util.AppendVarint64(buffer, uint64(s.CoreHeight))
	buffer = util.AppendUint64(buffer, s.TimeMs)
	return append(buffer, s.AppHash[:]...)
}

// Hash - digest of the canonical encoding
func (s *StateID) Hash() merkle.Digest {
	return merkle.NewDigest(s.Bytes())
}

// Commit - a quorum's signature over a block and its state
type Commit struct {
	ChainID     string
	Height      uint64
	Round       uint32
	BlockIDHash []byte
	StateID     StateID
	QuorumType  uint32
	QuorumHash  merkle.Digest
	Signature   []byte
}

// SignBytes - the message the quorum signs
func (c *Commit) SignBytes() ([]byte, error) {
	if BlockIDHashLength != len(c.BlockIDHash) {
		return nil, fault.ErrInvalidProof
	}
	if c.StateID.Height != c.Height {
		return nil, fault.ErrProofMetadataMismatch
	}
	stateHash := c.StateID.Hash()

	buffer := []byte(signPrefix)
	buffer = util.AppendBytes(buffer, []byte(c.ChainID))
	buffer = util.AppendUint64(buffer, c.Height)
	buffer = util.AppendVarint64(buffer, uint64(c.Round))
	buffer = append(buffer, c.BlockIDHash...)
	buffer = append(buffer, stateHash[:]...)
	buffer = util.AppendVarint64(buffer, uint64(c.QuorumType))
	buffer = append(buffer, c.QuorumHash[:]...)
	return buffer, nil
}

// Sign - sign as the quorum holding key
func (c *Commit) Sign(key ed25519.PrivateKey) error {
	message, err := c.SignBytes()
	if nil != err {
		return err
	}
	c.Signature = ed25519.Sign(key, message)
	return nil
}

// Verify - check the signature with the quorum's public key
func (c *Commit) Verify(key ed25519.PublicKey) error {
	if ed25519.PublicKeySize != len(key) || ed25519.SignatureSize != len(c.Signature) {
		return fault.ErrInvalidSignature
	}
	message, err := c.SignBytes()
	if nil != err {
		return err
	}
	if !ed25519.Verify(key, message, c.Signature) {
		return fault.ErrInvalidSignature
	}
	return nil
}
