// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package version

import (
	"sort"

	"github.com/bitmark-inc/drived/fault"
	"github.com/bitmark-inc/drived/fee"
)

// ProtocolVersion - the network wide protocol number
type ProtocolVersion uint32

// DocumentMethodVersions - implementation numbers for document writes
type DocumentMethodVersions struct {
	AddDocument        uint16
	AddIndices         uint16
	AddContestedIndex  uint16
	UpdateDocument     uint16
	DeleteDocument     uint16
	EstimateInsertion  uint16
	ValidateUniqueness uint16
}

// VoteMethodVersions - implementation numbers for the contest tally
type VoteMethodVersions struct {
	RegisterIdentityVote uint16
	ResolveEndedPolls    uint16
}

// VerifyMethodVersions - implementation numbers for proof decoding
type VerifyMethodVersions struct {
	Document           uint16
	VoteState          uint16
	ContestedResources uint16
	Voters             uint16
	IdentityVotes      uint16
	EndDateVotePolls   uint16
	SpecializedBalance uint16
	StateTransition    uint16
}

// VotingParameters - economics of contested resources
type VotingParameters struct {
	ContestDurationMs uint64
	ContenderFee      fee.Credits
	VoteCost          fee.Credits
}

// PlatformVersion - everything selected by one protocol version
type PlatformVersion struct {
	Protocol ProtocolVersion
	Document DocumentMethodVersions
	Vote     VoteMethodVersions
	Verify   VerifyMethodVersions
	Fee      *fee.FeeVersion
	Voting   VotingParameters
}

// two weeks
const defaultContestDurationMs = 14 * 24 * 60 * 60 * 1000

var platformVersion1 = PlatformVersion{
	Protocol: 1,
	Fee:      &fee.FeeVersion1,
	Voting: VotingParameters{
		ContestDurationMs: defaultContestDurationMs,
		ContenderFee:      20000000000,
		VoteCost:          10000000,
	},
}

// version 2 charges more for each vote
var platformVersion2 = PlatformVersion{
	Protocol: 2,
	Fee:      &fee.FeeVersion1,
	Voting: VotingParameters{
		ContestDurationMs: defaultContestDurationMs,
		ContenderFee:      20000000000,
		VoteCost:          20000000,
	},
}

var platformVersions = map[ProtocolVersion]*PlatformVersion{
	1: &platformVersion1,
	2: &platformVersion2,
}

// Get - the table for a protocol version
func Get(protocol ProtocolVersion) (*PlatformVersion, error) {
	v, ok := platformVersions[protocol]
	if !ok {
		return nil, fault.ErrUnknownProtocolVersion
	}
	return v, nil
}

// Latest - the table of the highest known protocol version
func Latest() *PlatformVersion {
	return platformVersions[Known()[len(platformVersions)-1]]
}

// Known - all supported protocol versions in ascending order
func Known() []ProtocolVersion {
	result := make([]ProtocolVersion, 0, len(platformVersions))
	for p := range platformVersions {
		result = append(result, p)
	}
	sort.Slice(result, func(i, j int) bool { return result[i] < result[j] })
	return result
}

// WithVoting - copy of v using different voting parameters
//
// local and test networks shorten contests through configuration
func (v *PlatformVersion) WithVoting(voting VotingParameters) *PlatformVersion {
	c := *v
	c.Voting = voting
	return &c
}
