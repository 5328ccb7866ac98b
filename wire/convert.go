// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package wire

import (
	"github.com/bitmark-inc/drived/identifier"
	"github.com/bitmark-inc/drived/proof"
	"github.com/bitmark-inc/drived/vote"
)

// the server answers and the client verifies a request with the same
// reader, so both derive its arguments here

func poll(contractID []byte, typeName string, indexName string, values [][]byte) (*vote.Poll, error) {
	id, err := identifier.FromBytes(contractID)
	if nil != err {
		return nil, err
	}
	return &vote.Poll{
		ContractID:   id,
		DocumentType: typeName,
		IndexName:    indexName,
		IndexValues:  values,
	}, nil
}

// Poll - the vote poll a vote state request refers to
func (m *GetContestedResourceVoteStateRequestV0) Poll() (*vote.Poll, error) {
	return poll(m.ContractId, m.DocumentTypeName, m.IndexName, m.IndexValues)
}

// Poll - the vote poll a voters request refers to
func (m *GetContestedResourceVotersRequestV0) Poll() (*vote.Poll, error) {
	return poll(m.ContractId, m.DocumentTypeName, m.IndexName, m.IndexValues)
}

// Contender - the contender whose voters are requested
func (m *GetContestedResourceVotersRequestV0) Contender() (identifier.Identifier, error) {
	return identifier.FromBytes(m.ContestantId)
}

// Page - window over the voters
func (m *GetContestedResourceVotersRequestV0) Page() proof.Page {
	return proof.Page{
		StartAt:         m.StartAtIdentifier,
		StartAtIncluded: m.StartAtIncluded,
		Limit:           int(m.Count),
		Ascending:       m.OrderAscending,
	}
}

// Query - the enumeration a contested resources request asks for
func (m *GetContestedResourcesRequestV0) Query() *proof.ContestedResourcesQuery {
	return &proof.ContestedResourcesQuery{
		DocumentType:     m.DocumentTypeName,
		IndexName:        m.IndexName,
		StartIndexValues: m.StartIndexValues,
		Page: proof.Page{
			StartAt:         m.StartAtValue,
			StartAtIncluded: m.StartAtValueIncluded,
			Limit:           int(m.Count),
			Ascending:       m.OrderAscending,
		},
	}
}

// Page - window over a voter's votes by poll id
func (m *GetIdentityVotesRequestV0) Page() proof.Page {
	return proof.Page{
		StartAt:         m.StartAtVotePollId,
		StartAtIncluded: m.StartAtIncluded,
		Limit:           int(m.Limit),
		Ascending:       m.OrderAscending,
	}
}

// Query - the end time window of a polls request
func (m *GetVotePollsByEndDateRequestV0) Query() *proof.EndDateQuery {
	q := &proof.EndDateQuery{
		Limit:     int(m.Limit),
		Ascending: m.Ascending,
	}
	if nil != m.StartTimeInfo {
		start := m.StartTimeInfo.TimeMs
		q.Start = &start
		q.StartIncluded = m.StartTimeInfo.Included
	}
	if nil != m.EndTimeInfo {
		end := m.EndTimeInfo.TimeMs
		q.End = &end
		q.EndIncluded = m.EndTimeInfo.Included
	}
	return q
}
