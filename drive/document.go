// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package drive

import (
	"bytes"

	"github.com/bitmark-inc/drived/contract"
	"github.com/bitmark-inc/drived/document"
	"github.com/bitmark-inc/drived/fault"
	"github.com/bitmark-inc/drived/fee"
	"github.com/bitmark-inc/drived/grove"
	"github.com/bitmark-inc/drived/identifier"
	"github.com/bitmark-inc/drived/paths"
	"github.com/bitmark-inc/drived/proof"
	"github.com/bitmark-inc/drived/version"
)

// copy of doc with the block's time filled in
func stamp(doc *document.Document, timeMs uint64) *document.Document {
	d := doc.Clone()
	if 0 == d.CreatedAt {
		d.CreatedAt = timeMs
	}
	if 0 == d.UpdatedAt {
		d.UpdatedAt = timeMs
	}
	if 0 == d.Revision {
		d.Revision = 1
	}
	return d
}

// AddDocument - store a new document with every index of its type
//
// a document whose contested index values are all set enters a contest
// instead; with override an existing document of the same id is
// replaced without checks
func (b *Block) AddDocument(doc *document.Document, contractID identifier.Identifier, typeName string, override bool) (*fee.FeeResult, error) {
	c, t, err := b.documentType(contractID, typeName)
	if nil != err {
		return nil, err
	}
	doc = stamp(doc, b.info.TimeMs)

	o := b.newOps()
	if !override {
		if err := validateUniqueness(o.view(), c, t, doc); nil != err {
			return nil, err
		}
	}
	if err := o.addDocument(c, t, doc, override, b.info.TimeMs, b.platform); nil != err {
		return nil, err
	}
	return b.apply(o, doc.Owner)
}

// EstimateDocumentInsertion - the fee AddDocument would charge if
// nothing the document needs existed yet
func (b *Block) EstimateDocumentInsertion(doc *document.Document, contractID identifier.Identifier, typeName string) (*fee.FeeResult, error) {
	c, t, err := b.documentType(contractID, typeName)
	if nil != err {
		return nil, err
	}
	return b.drive.estimate(c, t, doc, b.info, b.platform)
}

// EstimateDocumentInsertion - estimate against a block context without
// touching storage
func (d *Drive) EstimateDocumentInsertion(doc *document.Document, contractID identifier.Identifier, typeName string, info BlockInfo) (*fee.FeeResult, error) {
	c, err := d.Contract(contractID)
	if nil != err {
		return nil, err
	}
	t, err := c.DocumentType(typeName)
	if nil != err {
		return nil, err
	}
	pv, err := version.Get(info.ProtocolVersion)
	if nil != err {
		return nil, err
	}
	if nil != d.voting {
		pv = pv.WithVoting(*d.voting)
	}
	return d.estimate(c, t, doc, info, pv)
}

func (d *Drive) estimate(c *contract.Contract, t *contract.DocumentType, doc *document.Document, info BlockInfo, pv *version.PlatformVersion) (*fee.FeeResult, error) {
	switch pv.Document.EstimateInsertion {
	case 0:
	default:
		return nil, fault.ErrUnknownMethodVersion
	}
	o := newOps(nil, info.Epoch)
	if err := o.addDocument(c, t, stamp(doc, info.TimeMs), false, info.TimeMs, pv); nil != err {
		return nil, err
	}
	return fee.Calculate(&o.ops, info.Epoch, d.feeVersions)
}

// the operations of an insertion, applied or estimated
func (o *opBuilder) addDocument(c *contract.Contract, t *contract.DocumentType, doc *document.Document, override bool, timeMs uint64, pv *version.PlatformVersion) error {
	switch pv.Document.AddDocument {
	case 0:
	default:
		return fault.ErrUnknownMethodVersion
	}
	if err := doc.Validate(t); nil != err {
		return err
	}

	if index := t.ContestedIndex(); nil != index && !override {
		values, contested, err := contestedValues(t, index, doc)
		if nil != err {
			return err
		}
		if contested {
			switch pv.Document.AddContestedIndex {
			case 0:
			default:
				return fault.ErrUnknownMethodVersion
			}
			return o.addContender(c, t, index, values, doc, timeMs, pv)
		}
	}

	target, err := o.addToPrimaryStorage(c, t, doc, override, timeMs)
	if nil != err {
		return err
	}

	switch pv.Document.AddIndices {
	case 0:
	default:
		return fault.ErrUnknownMethodVersion
	}
	entries, err := indexEntries(c, t, doc)
	if nil != err {
		return err
	}
	return o.addIndexes(entries, o.documentReference(t, target, doc.Owner))
}

// encoded values of the contested index; contested is false if any is
// null
func contestedValues(t *contract.DocumentType, index *contract.Index, doc *document.Document) ([][]byte, bool, error) {
	values := make([][]byte, len(index.Properties))
	for i, p := range index.Properties {
		v, err := t.EncodeValue(p.Name, doc.Get(p.Name))
		if nil != err {
			return nil, false, err
		}
		if contract.IsNullKey(v) {
			return nil, false, nil
		}
		values[i] = v
	}
	return values, true, nil
}

// write the document item; returns the slot references must point at
//
// history keeping types store each revision under its block time and
// keep a pointer to the latest at the terminal key
func (o *opBuilder) addToPrimaryStorage(c *contract.Contract, t *contract.DocumentType, doc *document.Document, override bool, timeMs uint64) (slot, error) {
	value, err := doc.Serialize()
	if nil != err {
		return slot{}, err
	}
	item := grove.NewItem(value, o.flags(doc.Owner))
	primary := paths.PrimaryStoragePath(c.ID, t.Name)
	id := doc.ID.Bytes()

	if !t.KeepsHistory {
		if override {
			return slot{primary, id}, o.upsert(primary, id, item)
		}
		return slot{primary, id}, o.insertNew(primary, id, item, fault.ErrDocumentAlreadyExists)
	}

	created, err := o.insertIfAbsent(primary, id, grove.NewTree(nil))
	if nil != err {
		return slot{}, err
	}
	if !created && !override {
		return slot{}, fault.ErrDocumentAlreadyExists
	}
	history := grove.Extend(primary, id)
	return o.addRevision(history, item, timeMs)
}

func (o *opBuilder) addRevision(history [][]byte, item grove.Element, timeMs uint64) (slot, error) {
	revision := paths.RevisionKey(timeMs)
	if err := o.insertNew(history, revision, item, fault.ErrCorruptedDocumentAlreadyExists); nil != err {
		return slot{}, err
	}
	if err := o.upsert(history, paths.TerminalKey, grove.NewSiblingReference(revision, nil)); nil != err {
		return slot{}, err
	}
	return slot{history, paths.TerminalKey}, nil
}

// UpdateDocument - replace a document with its next revision
func (b *Block) UpdateDocument(doc *document.Document, contractID identifier.Identifier, typeName string) (*fee.FeeResult, error) {
	c, t, err := b.documentType(contractID, typeName)
	if nil != err {
		return nil, err
	}
	o := b.newOps()
	if err := o.updateDocument(c, t, doc, b.info.TimeMs, b.platform); nil != err {
		return nil, err
	}
	return b.apply(o, doc.Owner)
}

func (o *opBuilder) updateDocument(c *contract.Contract, t *contract.DocumentType, doc *document.Document, timeMs uint64, pv *version.PlatformVersion) error {
	if !t.DocumentsMutable {
		return fault.ErrCannotUpdateDocument
	}
	switch pv.Document.UpdateDocument {
	case 0:
	default:
		return fault.ErrUnknownMethodVersion
	}

	old, err := proof.ReadDocument(o, c, t.Name, doc.ID)
	if nil != err {
		return err
	}
	if nil == old {
		return fault.ErrDocumentNotFound
	}
	if old.Owner != doc.Owner || doc.Revision != old.Revision+1 {
		return fault.ErrInvalidStateTransition
	}

	updated := doc.Clone()
	updated.CreatedAt = old.CreatedAt
	updated.UpdatedAt = timeMs
	if err := updated.Validate(t); nil != err {
		return err
	}
	if index := t.ContestedIndex(); nil != index {
		if err := sameIndexValues(t, index, old, updated); nil != err {
			return err
		}
	}
	if err := validateUniqueness(o.view(), c, t, updated); nil != err {
		return err
	}

	target, err := o.replaceInPrimaryStorage(c, t, updated, timeMs)
	if nil != err {
		return err
	}

	oldEntries, err := indexEntries(c, t, old)
	if nil != err {
		return err
	}
	newEntries, err := indexEntries(c, t, updated)
	if nil != err {
		return err
	}
	removed, added := diffIndexes(oldEntries, newEntries)
	if err := o.removeIndexes(removed); nil != err {
		return err
	}
	return o.addIndexes(added, o.documentReference(t, target, updated.Owner))
}

// a contested value can only change through a new contest
func sameIndexValues(t *contract.DocumentType, index *contract.Index, old *document.Document, updated *document.Document) error {
	for _, p := range index.Properties {
		a, err := t.EncodeValue(p.Name, old.Get(p.Name))
		if nil != err {
			return err
		}
		b, err := t.EncodeValue(p.Name, updated.Get(p.Name))
		if nil != err {
			return err
		}
		if !bytes.Equal(a, b) {
			return fault.ErrInvalidStateTransition
		}
	}
	return nil
}

// overwrite the stored document, re-tagging its storage flags
func (o *opBuilder) replaceInPrimaryStorage(c *contract.Contract, t *contract.DocumentType, doc *document.Document, timeMs uint64) (slot, error) {
	value, err := doc.Serialize()
	if nil != err {
		return slot{}, err
	}
	primary := paths.PrimaryStoragePath(c.ID, t.Name)
	id := doc.ID.Bytes()

	if t.KeepsHistory {
		item := grove.NewItem(value, o.flags(doc.Owner))
		return o.addRevision(grove.Extend(primary, id), item, timeMs)
	}

	existing, err := o.Get(primary, id)
	if nil != err {
		return slot{}, err
	}
	if nil == existing || grove.ItemElement != existing.Type {
		return slot{}, fault.ErrCorruptedElementType
	}
	flags, err := fee.DeserializeStorageFlags(existing.Flags)
	if nil != err {
		return slot{}, err
	}

	var released map[fee.Epoch]uint32
	if nil == flags {
		flags = fee.NewStorageFlags(o.epoch, &doc.Owner)
	} else {
		flags, released = flags.Resize(uint32(len(existing.Value)), uint32(len(value)), o.epoch)
	}
	o.replace(primary, id, existing, grove.NewItem(value, flags.Serialize()), flags.Owner, released)
	return slot{primary, id}, nil
}

// DeleteDocument - remove a document with all its index references
func (b *Block) DeleteDocument(contractID identifier.Identifier, typeName string, id identifier.Identifier, owner identifier.Identifier) (*fee.FeeResult, error) {
	c, t, err := b.documentType(contractID, typeName)
	if nil != err {
		return nil, err
	}
	o := b.newOps()
	if err := o.deleteDocument(c, t, id, owner, b.platform); nil != err {
		return nil, err
	}
	return b.apply(o, owner)
}

func (o *opBuilder) deleteDocument(c *contract.Contract, t *contract.DocumentType, id identifier.Identifier, owner identifier.Identifier, pv *version.PlatformVersion) error {
	if !t.CanBeDeleted {
		return fault.ErrCannotDeleteDocument
	}
	switch pv.Document.DeleteDocument {
	case 0:
	default:
		return fault.ErrUnknownMethodVersion
	}

	old, err := proof.ReadDocument(o, c, t.Name, id)
	if nil != err {
		return err
	}
	if nil == old {
		return fault.ErrDocumentNotFound
	}
	if old.Owner != owner {
		return fault.ErrInvalidStateTransition
	}

	entries, err := indexEntries(c, t, old)
	if nil != err {
		return err
	}
	if err := o.removeIndexes(entries); nil != err {
		return err
	}

	primary := paths.PrimaryStoragePath(c.ID, t.Name)
	existing, err := o.Get(primary, id.Bytes())
	if nil != err {
		return err
	}
	if nil == existing {
		return fault.ErrCorruptedReference
	}
	if t.KeepsHistory {
		return o.removeTree(primary, id.Bytes(), existing)
	}
	return o.remove(primary, id.Bytes(), existing)
}
