// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package version_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/bitmark-inc/drived/fault"
	"github.com/bitmark-inc/drived/version"
)

func TestGet(t *testing.T) {
	for _, p := range version.Known() {
		v, err := version.Get(p)
		assert.Nil(t, err, "protocol %d", p)
		assert.Equal(t, p, v.Protocol, "table for wrong protocol")
		assert.NotNil(t, v.Fee, "protocol %d has no fee version", p)
	}

	_, err := version.Get(0)
	assert.Equal(t, fault.ErrUnknownProtocolVersion, err, "protocol 0 known")
}

func TestLatest(t *testing.T) {
	known := version.Known()
	assert.Equal(t, known[len(known)-1], version.Latest().Protocol, "latest is not the highest")
}

func TestWithVoting(t *testing.T) {
	v := version.Latest()
	original := v.Voting
	short := v.WithVoting(version.VotingParameters{ContestDurationMs: 1000, ContenderFee: 5, VoteCost: 1})

	assert.Equal(t, uint64(1000), short.Voting.ContestDurationMs, "override lost")
	assert.Equal(t, v.Protocol, short.Protocol, "protocol changed")
	assert.Equal(t, original, version.Latest().Voting, "shared table modified")
}
