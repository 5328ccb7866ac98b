// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package proof

import (
	"github.com/bitmark-inc/drived/contract"
	"github.com/bitmark-inc/drived/document"
	"github.com/bitmark-inc/drived/fault"
	"github.com/bitmark-inc/drived/grove"
	"github.com/bitmark-inc/drived/identifier"
	"github.com/bitmark-inc/drived/paths"
)

// ReadContract - the contract stored under id, nil if absent
func ReadContract(src Source, id identifier.Identifier) (*contract.Contract, error) {
	value, err := itemValue(src, paths.ContractPath(id), paths.ContractKey)
	if nil != err || nil == value {
		return nil, err
	}
	c, err := contract.Load(value)
	if nil != err {
		return nil, fault.ErrCorruptedSerialization
	}
	if c.ID != id {
		return nil, fault.ErrCorruptedReference
	}
	return c, nil
}

// ReadDocument - the current revision of a document, nil if absent
//
// history keeping types are read through their latest revision pointer
func ReadDocument(src Source, c *contract.Contract, typeName string, id identifier.Identifier) (*document.Document, error) {
	t, err := c.DocumentType(typeName)
	if nil != err {
		return nil, err
	}

	path := paths.PrimaryStoragePath(c.ID, t.Name)
	key := id.Bytes()
	if t.KeepsHistory {
		path = grove.Extend(path, key)
		key = paths.TerminalKey
	}
	return readDocument(src, path, key, id)
}

// ReadContestedDocument - a document waiting for its contest to end
func ReadContestedDocument(src Source, c *contract.Contract, typeName string, id identifier.Identifier) (*document.Document, error) {
	t, err := c.DocumentType(typeName)
	if nil != err {
		return nil, err
	}
	return readDocument(src, paths.ContestedStoragePath(c.ID, t.Name), id.Bytes(), id)
}

// ReadDocumentRevisions - every stored revision of a history keeping
// document keyed by block time
func ReadDocumentRevisions(src Source, c *contract.Contract, typeName string, id identifier.Identifier) (map[uint64]*document.Document, error) {
	t, err := c.DocumentType(typeName)
	if nil != err {
		return nil, err
	}
	if !t.KeepsHistory {
		return nil, fault.ErrInvalidStateTransition
	}

	entries, err := src.Query(paths.DocumentHistoryPath(c.ID, t.Name, id), grove.AllKeys())
	if nil != err {
		return nil, err
	}
	revisions := make(map[uint64]*document.Document)
	for _, ke := range entries {
		if grove.ItemElement != ke.Element.Type {
			continue // the latest revision pointer
		}
		if 8 != len(ke.Key) {
			return nil, fault.ErrCorruptedElementType
		}
		doc, err := document.Deserialize(ke.Element.Value)
		if nil != err {
			return nil, err
		}
		revisions[timeFromKey(ke.Key)] = doc
	}
	return revisions, nil
}

func readDocument(src Source, path [][]byte, key []byte, id identifier.Identifier) (*document.Document, error) {
	value, err := itemValue(src, path, key)
	if nil != err || nil == value {
		return nil, err
	}
	doc, err := document.Deserialize(value)
	if nil != err {
		return nil, err
	}
	if doc.ID != id {
		return nil, fault.ErrCorruptedReference
	}
	return doc, nil
}
