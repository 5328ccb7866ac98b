// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package fixtures

import (
	"github.com/bitmark-inc/drived/contract"
	"github.com/bitmark-inc/drived/identifier"
)

// well known identities
var (
	ContractID = identifier.FromSeed([]byte("fixtures/contract"))
	OwnerID    = identifier.FromSeed([]byte("fixtures/owner"))
)

// document type names of the fixture contract
const (
	DomainType  = "domain"
	NoteType    = "note"
	ProfileType = "profile"

	ContestedIndex = "parentNameAndLabel"
)

// a name registry with a contested index, a mutable type with unique
// and non-unique indexes sharing a prefix, and a history keeping type
const documentTypes = `{
  "domain":{
    "documentsMutable":false,
    "canBeDeleted":true,
    "documentsKeepHistory":false,
    "transferable":1,
    "properties":{
      "label":{"type":"string","position":0,"maxLength":63},
      "normalizedLabel":{"type":"string","position":1,"maxLength":63},
      "normalizedParentDomainName":{"type":"string","position":2,"maxLength":63},
      "records":{"type":"object","position":3}
    },
    "required":["label","normalizedLabel","normalizedParentDomainName"],
    "indices":[
      {"name":"parentNameAndLabel","properties":[{"normalizedParentDomainName":"asc"},{"normalizedLabel":"asc"}],"unique":true,"contested":{"description":"names shorter than twenty characters are contested"}},
      {"name":"parent","properties":[{"normalizedParentDomainName":"asc"}]},
      {"name":"owner","properties":[{"$ownerId":"asc"}]}
    ]
  },
  "note":{
    "documentsMutable":true,
    "canBeDeleted":true,
    "documentsKeepHistory":false,
    "properties":{
      "title":{"type":"string","position":0,"maxLength":100},
      "body":{"type":"string","position":1},
      "tag":{"type":"string","position":2,"maxLength":20},
      "priority":{"type":"integer","position":3}
    },
    "required":["title"],
    "indices":[
      {"name":"title","properties":[{"title":"asc"}],"unique":true},
      {"name":"tag","properties":[{"tag":"asc"}]},
      {"name":"tagPriority","properties":[{"tag":"asc"},{"priority":"desc"}]}
    ]
  },
  "profile":{
    "documentsMutable":true,
    "canBeDeleted":true,
    "documentsKeepHistory":true,
    "properties":{
      "displayName":{"type":"string","position":0,"maxLength":50},
      "bio":{"type":"string","position":1}
    },
    "indices":[
      {"name":"displayName","properties":[{"displayName":"asc"}]}
    ]
  }
}`

// ContractJSON - the fixture contract as loaded from a file
func ContractJSON() []byte {
	return []byte(`{"id":"` + ContractID.String() + `","ownerId":"` + OwnerID.String() + `","version":1,"documents":` + documentTypes + `}`)
}

// Contract - the loaded fixture contract
func Contract() *contract.Contract {
	c, err := contract.Load(ContractJSON())
	if nil != err {
		panic(err)
	}
	return c
}
