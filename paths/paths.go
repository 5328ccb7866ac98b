// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package paths

import (
	"encoding/binary"

	"github.com/bitmark-inc/drived/fault"
	"github.com/bitmark-inc/drived/identifier"
)

// root tree keys
const (
	Identities                   = 32
	PreFundedSpecializedBalances = 40
	Pools                        = 48
	DataContractDocuments        = 64
	Balances                     = 96
	Misc                         = 104
	Votes                        = 112
)

// RootKeys - every root tree in key order
var RootKeys = [][]byte{
	{Identities},
	{PreFundedSpecializedBalances},
	{Pools},
	{DataContractDocuments},
	{Balances},
	{Misc},
	{Votes},
}

// reserved single byte keys
var (
	// ContractKey - contract item under the contract tree
	ContractKey = []byte{0}
	// DocumentTypesKey - tree of document types under the contract tree
	DocumentTypesKey = []byte{1}
	// PrimaryStorageKey - primary storage tree under a document type
	PrimaryStorageKey = []byte{0}
	// ContestedStorageKey - storage of contested documents under a type
	ContestedStorageKey = []byte{1}
	// TerminalKey - index terminal, and latest revision pointer in history
	TerminalKey = []byte{0}
	// ContenderReferenceKey - document reference inside a contender tree
	ContenderReferenceKey = []byte{0}
	// VoteAccumulatorKey - voter sum tree inside a contender tree
	VoteAccumulatorKey = []byte{1}
	// AbstainKey - abstain sum tree of a contest
	AbstainKey = []byte{'a'}
	// LockKey - lock sum tree of a contest
	LockKey = []byte{'l'}
	// SpecializedBalancesKey - sum tree under the prefunded root
	SpecializedBalancesKey = []byte{128}
	// StoragePoolKey - storage fees pool
	StoragePoolKey = []byte{'s'}
	// ProcessingPoolKey - processing fees pool
	ProcessingPoolKey = []byte{'p'}
	// TotalCreditsKey - total system credits under misc
	TotalCreditsKey = []byte{'t'}
	// DecisionsKey - vote decisions under votes
	DecisionsKey = []byte{'d'}
	// ContestedResourcesKey - contested resource trees under votes
	ContestedResourcesKey = []byte{'c'}
	// EndDateKey - end date index under contested resources
	EndDateKey = []byte{'e'}
	// IdentityVotesKey - identity vote trees under contested resources
	IdentityVotesKey = []byte{'i'}
)

// ContractPath - tree holding a contract and its document types
func ContractPath(contractID identifier.Identifier) [][]byte {
	return [][]byte{{DataContractDocuments}, contractID.Bytes()}
}

// DocumentTypePath - tree of one document type
func DocumentTypePath(contractID identifier.Identifier, typeName string) [][]byte {
	return append(ContractPath(contractID), DocumentTypesKey, []byte(typeName))
}

// PrimaryStoragePath - layer holding documents by id
func PrimaryStoragePath(contractID identifier.Identifier, typeName string) [][]byte {
	return append(DocumentTypePath(contractID, typeName), PrimaryStorageKey)
}

// ContestedStoragePath - layer holding documents waiting for a contest
func ContestedStoragePath(contractID identifier.Identifier, typeName string) [][]byte {
	return append(DocumentTypePath(contractID, typeName), ContestedStorageKey)
}

// DocumentHistoryPath - revision tree of a history keeping document
func DocumentHistoryPath(contractID identifier.Identifier, typeName string, documentID identifier.Identifier) [][]byte {
	return append(PrimaryStoragePath(contractID, typeName), documentID.Bytes())
}

// RevisionKey - key of one revision inside a history tree
func RevisionKey(blockTimeMs uint64) []byte {
	key := make([]byte, 8)
	binary.BigEndian.PutUint64(key, blockTimeMs)
	return key
}

// IndexPath - layer whose key 0 is the terminal of an index
//
// values are already encoded with the canonical key encoding
func IndexPath(contractID identifier.Identifier, typeName string, properties []string, values [][]byte) ([][]byte, error) {
	if len(properties) != len(values) || 0 == len(properties) {
		return nil, fault.ErrIndexValuesCount
	}
	path := DocumentTypePath(contractID, typeName)
	for i, name := range properties {
		path = append(path, []byte(name), values[i])
	}
	return path, nil
}

// ContestPath - the contest tree of a contested index value tuple
func ContestPath(contractID identifier.Identifier, typeName string, properties []string, values [][]byte) ([][]byte, error) {
	path, err := IndexPath(contractID, typeName, properties, values)
	if nil != err {
		return nil, err
	}
	return append(path, TerminalKey), nil
}

// ContenderPath - the tree of one contender
func ContenderPath(contest [][]byte, contender identifier.Identifier) [][]byte {
	return extend(contest, contender.Bytes())
}

// VoterPath - the sum tree of voters for one contender
func VoterPath(contest [][]byte, contender identifier.Identifier) [][]byte {
	return extend(contest, contender.Bytes(), VoteAccumulatorKey)
}

// IdentitiesPath - tree of identities
func IdentitiesPath() [][]byte {
	return [][]byte{{Identities}}
}

// BalancesPath - sum tree of identity balances
func BalancesPath() [][]byte {
	return [][]byte{{Balances}}
}

// SpecializedBalancesPath - sum tree of contest balances by poll id
func SpecializedBalancesPath() [][]byte {
	return [][]byte{{PreFundedSpecializedBalances}, SpecializedBalancesKey}
}

// PoolsPath - sum tree of fee pools
func PoolsPath() [][]byte {
	return [][]byte{{Pools}}
}

// MiscPath - tree of system values
func MiscPath() [][]byte {
	return [][]byte{{Misc}}
}

// VotesPath - root of all voting state
func VotesPath() [][]byte {
	return [][]byte{{Votes}}
}

// DecisionsPath - finished polls by poll id
func DecisionsPath() [][]byte {
	return [][]byte{{Votes}, DecisionsKey}
}

// ContestedResourcesPath - tree holding the end date and vote trees
func ContestedResourcesPath() [][]byte {
	return [][]byte{{Votes}, ContestedResourcesKey}
}

// EndDatePath - poll end times in ascending order
func EndDatePath() [][]byte {
	return [][]byte{{Votes}, ContestedResourcesKey, EndDateKey}
}

// EndDateKeyFor - key of one end time
func EndDateKeyFor(endMs uint64) []byte {
	return RevisionKey(endMs)
}

// EndDateTimePath - polls ending at one time
func EndDateTimePath(endMs uint64) [][]byte {
	return append(EndDatePath(), EndDateKeyFor(endMs))
}

// AllIdentityVotesPath - tree of voter trees
func AllIdentityVotesPath() [][]byte {
	return [][]byte{{Votes}, ContestedResourcesKey, IdentityVotesKey}
}

// IdentityVotesPath - votes of one voter by poll id
func IdentityVotesPath(voter identifier.Identifier) [][]byte {
	return append(AllIdentityVotesPath(), voter.Bytes())
}

func extend(path [][]byte, segments ...[]byte) [][]byte {
	result := make([][]byte, 0, len(path)+len(segments))
	result = append(result, path...)
	return append(result, segments...)
}
