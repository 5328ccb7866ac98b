// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package local_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/bitmark-inc/drived/consensus"
	"github.com/bitmark-inc/drived/consensus/local"
	"github.com/bitmark-inc/drived/drive"
	"github.com/bitmark-inc/drived/fault"
	"github.com/bitmark-inc/drived/merkle"
	"github.com/bitmark-inc/drived/version"
)

func TestNewQuorumIsDeterministic(t *testing.T) {
	q := local.NewQuorum([]byte("seed"))
	assert.Equal(t, uint32(local.QuorumType), q.Type, "wrong type")
	assert.Equal(t, q.Hash, local.NewQuorum([]byte("seed")).Hash, "same seed, different quorum")
	assert.NotEqual(t, q.Hash, local.NewQuorum([]byte("other")).Hash, "different seed, same quorum")
}

func TestQuorumSignsVerifiableCommits(t *testing.T) {
	q := local.NewQuorum([]byte("test"))
	state := consensus.StateID{
		ProtocolVersion: 1,
		Height:          3,
		TimeMs:          1000,
		AppHash:         merkle.NewDigest([]byte("app")),
	}
	c, err := q.Sign("drive-local", 0, state)
	require.Nil(t, err, "sign")

	key, err := q.QuorumPublicKey(c.QuorumType, c.QuorumHash, 0)
	require.Nil(t, err, "quorum key")
	assert.Nil(t, c.Verify(key), "verify")

	_, err = q.QuorumPublicKey(c.QuorumType+1, c.QuorumHash, 0)
	assert.Equal(t, fault.ErrQuorumKeyNotFound, err, "wrong quorum type accepted")

	other := local.NewQuorum([]byte("other"))
	assert.Equal(t, fault.ErrInvalidSignature, c.Verify(other.PublicKey()), "other quorum verified")
}

func TestSignBlockCarriesBlockState(t *testing.T) {
	q := local.NewQuorum([]byte("test"))
	info := drive.BlockInfo{
		Height:          7,
		TimeMs:          1600000007000,
		CoreHeight:      900,
		ProtocolVersion: version.ProtocolVersion(1),
	}
	root := merkle.NewDigest([]byte("root"))

	c, err := q.SignBlock("drive-local", info, root)
	require.Nil(t, err, "sign block")
	assert.Equal(t, info.Height, c.Height, "wrong height")
	assert.Equal(t, consensus.StateID{
		ProtocolVersion: 1,
		CoreHeight:      900,
		TimeMs:          1600000007000,
		AppHash:         root,
		Height:          7,
	}, c.StateID, "wrong state")
	assert.Nil(t, c.Verify(q.PublicKey()), "verify")
}
