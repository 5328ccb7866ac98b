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
	"github.com/bitmark-inc/drived/grove"
	"github.com/bitmark-inc/drived/identifier"
	"github.com/bitmark-inc/drived/paths"
	"github.com/bitmark-inc/drived/proof"
)

// a position in the grove
type slot struct {
	path [][]byte
	key  []byte
}

func (s slot) name() string {
	return string(grove.EncodePath(grove.Extend(s.path, s.key)))
}

// indexEntry - where one index holds the reference to one document
type indexEntry struct {
	index *contract.Index
	trees []slot // created on the way down when absent
	slot         // the reference itself

	// a single reference at the terminal key, not a tree of them
	unique bool
}

// every index slot a document occupies
//
// a unique index with a null value in any of its properties holds its
// documents in a tree of references like a non-unique one
func indexEntries(c *contract.Contract, t *contract.DocumentType, doc *document.Document) ([]indexEntry, error) {
	entries := []indexEntry{}

	var walk func(level *contract.IndexLevel, path [][]byte, trees []slot, null bool) error
	walk = func(level *contract.IndexLevel, path [][]byte, trees []slot, null bool) error {
		for _, name := range level.ChildNames() {
			child := level.Children[name]
			value, err := t.EncodeValue(name, doc.Get(name))
			if nil != err {
				return err
			}

			propertyPath := grove.Extend(path, []byte(name))
			valuePath := grove.Extend(propertyPath, value)
			childTrees := make([]slot, len(trees), len(trees)+2)
			copy(childTrees, trees)
			childTrees = append(childTrees, slot{path, []byte(name)}, slot{propertyPath, value})
			childNull := null || contract.IsNullKey(value)

			if index := child.Terminal; nil != index {
				entries = append(entries, terminalEntry(index, valuePath, childTrees, childNull, doc.ID))
			}
			if child.HasTreeBelow() {
				if err := walk(child, valuePath, childTrees, childNull); nil != err {
					return err
				}
			}
		}
		return nil
	}

	err := walk(t.IndexTree, paths.DocumentTypePath(c.ID, t.Name), nil, false)
	if nil != err {
		return nil, err
	}
	return entries, nil
}

func terminalEntry(index *contract.Index, valuePath [][]byte, trees []slot, null bool, id identifier.Identifier) indexEntry {
	if index.Unique && !null {
		return indexEntry{
			index:  index,
			trees:  trees,
			slot:   slot{valuePath, paths.TerminalKey},
			unique: true,
		}
	}
	refs := make([]slot, len(trees), len(trees)+1)
	copy(refs, trees)
	refs = append(refs, slot{valuePath, paths.TerminalKey})
	return indexEntry{
		index: index,
		trees: refs,
		slot:  slot{grove.Extend(valuePath, paths.TerminalKey), id.Bytes()},
	}
}

// reference to a document, owned so that deletion refunds its bytes
func (o *opBuilder) documentReference(t *contract.DocumentType, target slot, owner identifier.Identifier) grove.Element {
	var flags []byte
	if t.CanBeDeleted || t.DocumentsMutable {
		flags = o.flags(owner)
	}
	return grove.NewReference(target.path, target.key, flags)
}

// insert index references to target
func (o *opBuilder) addIndexes(entries []indexEntry, reference grove.Element) error {
	for _, e := range entries {
		for _, s := range e.trees {
			if err := o.ensureTree(s.path, s.key); nil != err {
				return err
			}
		}
		existing, err := o.Get(e.path, e.key)
		if nil != err {
			return err
		}
		if nil != existing {
			// uniqueness is validated before any write
			return fault.ErrCorruptedContractIndexes
		}
		o.insert(e.path, e.key, reference)
	}
	return nil
}

// remove index references; empty index trees stay behind
func (o *opBuilder) removeIndexes(entries []indexEntry) error {
	for _, e := range entries {
		existing, err := o.Get(e.path, e.key)
		if nil != err {
			return err
		}
		if nil == existing || grove.ReferenceElement != existing.Type {
			return fault.ErrCorruptedReference
		}
		if err := o.remove(e.path, e.key, existing); nil != err {
			return err
		}
	}
	return nil
}

// split old and new entries into those to remove and those to add
func diffIndexes(old []indexEntry, updated []indexEntry) ([]indexEntry, []indexEntry) {
	before := make(map[string]bool, len(old))
	for _, e := range old {
		before[e.name()] = true
	}
	after := make(map[string]bool, len(updated))
	added := []indexEntry{}
	for _, e := range updated {
		after[e.name()] = true
		if !before[e.name()] {
			added = append(added, e)
		}
	}
	removed := []indexEntry{}
	for _, e := range old {
		if !after[e.name()] {
			removed = append(removed, e)
		}
	}
	return removed, added
}

// no other document holds a unique value of doc
//
// contested indexes are skipped: duplicates there start a contest
func validateUniqueness(src proof.Source, c *contract.Contract, t *contract.DocumentType, doc *document.Document) error {
	entries, err := indexEntries(c, t, doc)
	if nil != err {
		return err
	}
	for _, e := range entries {
		if !e.unique || e.index.Contested {
			continue
		}
		existing, err := src.Get(e.path, e.key)
		if nil != err {
			return err
		}
		if nil == existing {
			continue
		}
		if grove.ReferenceElement != existing.Type {
			return fault.ErrCorruptedElementType
		}
		holder := existing.Ref.Key
		if bytes.Equal(holder, paths.TerminalKey) && 0 != len(existing.Ref.Path) {
			// history keeping types point at the latest revision
			holder = existing.Ref.Path[len(existing.Ref.Path)-1]
		}
		if !bytes.Equal(holder, doc.ID.Bytes()) {
			return fault.ErrDuplicateUniqueIndex
		}
	}
	return nil
}

// ValidateUniqueness - check a document against the unique indexes of
// its type without writing anything
func (b *Block) ValidateUniqueness(contractID identifier.Identifier, typeName string, doc *document.Document) error {
	c, t, err := b.documentType(contractID, typeName)
	if nil != err {
		return err
	}
	switch b.platform.Document.ValidateUniqueness {
	case 0:
		return validateUniqueness(b.tx, c, t, doc)
	default:
		return fault.ErrUnknownMethodVersion
	}
}

// ValidateUniqueness - check a document against committed state
func (d *Drive) ValidateUniqueness(contractID identifier.Identifier, typeName string, doc *document.Document) error {
	c, err := d.Contract(contractID)
	if nil != err {
		return err
	}
	t, err := c.DocumentType(typeName)
	if nil != err {
		return err
	}
	return d.Read(func(src proof.Source) error {
		return validateUniqueness(src, c, t, doc)
	})
}
