// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package grove

import (
	"bytes"
	"sort"

	"github.com/bitmark-inc/drived/fault"
	"github.com/bitmark-inc/drived/merkle"
)

// Transaction - uncommitted state on top of the store
//
// only one transaction may be open at a time; it holds every applied
// batch in memory until Commit writes them as one database batch
type Transaction struct {
	store    *Store
	ov       *overlay
	aux      map[string][]byte
	root     merkle.Digest
	finished bool
}

func (tx *Transaction) reader() reader {
	return overlayReader{parent: committedReader{access: tx.store.db}, ov: tx.ov}
}

// RootHash - root commitment including all applied batches
func (tx *Transaction) RootHash() merkle.Digest {
	return tx.root
}

// Get - element at path/key, nil if absent
func (tx *Transaction) Get(path [][]byte, key []byte) (*Element, error) {
	if tx.finished {
		return nil, fault.ErrTransactionFinished
	}
	return tx.reader().get(layerOf(path), key)
}

// Query - entries of the layer at path selected by q
func (tx *Transaction) Query(path [][]byte, q *Query) ([]KeyElement, error) {
	if tx.finished {
		return nil, fault.ErrTransactionFinished
	}
	return query(tx.reader(), path, q)
}

// PutAux - store data outside the authenticated tree
func (tx *Transaction) PutAux(key []byte, value []byte) {
	tx.aux[string(key)] = value
}

// Apply - apply a batch, either all of it or none of it
func (tx *Transaction) Apply(b *Batch) error {
	if tx.finished {
		return fault.ErrTransactionFinished
	}

	a := &applier{
		scratch: newOverlay(),
		touched: make(map[string][][]byte),
	}
	a.r = overlayReader{parent: tx.reader(), ov: a.scratch}

	for _, op := range b.ops {
		var err error
		switch op.Kind {
		case OpInsert:
			err = a.insert(op.Path, op.Key, op.Element)
		case OpDelete:
			err = a.delete(op.Path, op.Key, false)
		case OpDeleteTree:
			err = a.delete(op.Path, op.Key, true)
		default:
			err = fault.ErrCorruptedCodeExecution
		}
		if nil != err {
			tx.store.log.Warnf("batch rejected at op kind: %d  path: %x  key: %x  error: %s", op.Kind, op.Path, op.Key, err)
			return err
		}
	}

	root, err := a.propagate(tx.root)
	if nil != err {
		return err
	}

	tx.ov.merge(a.scratch)
	tx.root = root
	return nil
}

// Commit - write everything to the database
func (tx *Transaction) Commit() error {
	if tx.finished {
		return fault.ErrTransactionFinished
	}
	tx.finished = true
	return tx.store.commit(tx)
}

// Rollback - discard everything
func (tx *Transaction) Rollback() {
	if tx.finished {
		return
	}
	tx.finished = true
	tx.store.release()
}

// state of one batch being applied
type applier struct {
	r       overlayReader
	scratch *overlay
	touched map[string][][]byte
}

func (a *applier) touch(path [][]byte) {
	a.touched[string(EncodePath(path))] = path
}

// the parent element of a layer must be a tree
func (a *applier) checkParent(path [][]byte) error {
	if 0 == len(path) {
		return nil
	}
	n := len(path) - 1
	parent, err := a.r.get(layerOf(path[:n]), path[n])
	if nil != err {
		return err
	}
	if nil == parent {
		return fault.ErrParentLayerNotFound
	}
	if !parent.IsTree() {
		return fault.ErrCorruptedElementType
	}
	return nil
}

func (a *applier) insert(path [][]byte, key []byte, e Element) error {
	if err := a.checkParent(path); nil != err {
		return err
	}
	layer := layerOf(path)
	existing, err := a.r.get(layer, key)
	if nil != err {
		return err
	}
	if nil != existing && existing.IsTree() && !e.IsTree() {
		return fault.ErrCorruptedElementType
	}
	a.scratch.set(layer, key, &e)
	a.touch(path)
	if e.IsTree() {
		// recompute the child root in case a tree replaced a tree
		a.touch(Extend(path, key))
	}
	return nil
}

func (a *applier) delete(path [][]byte, key []byte, recursive bool) error {
	layer := layerOf(path)
	existing, err := a.r.get(layer, key)
	if nil != err {
		return err
	}
	if nil == existing {
		return fault.ErrPathNotFound
	}
	if existing.IsTree() {
		if err := a.deleteLayer(Extend(path, key)); nil != err {
			return err
		}
	} else if recursive {
		return fault.ErrCorruptedElementType
	}
	a.scratch.set(layer, key, nil)
	a.touch(path)
	return nil
}

func (a *applier) deleteLayer(path [][]byte) error {
	layer := layerOf(path)
	entries, err := a.r.entries(layer)
	if nil != err {
		return err
	}
	for _, ke := range entries {
		if ke.Element.IsTree() {
			if err := a.deleteLayer(Extend(path, ke.Key)); nil != err {
				return err
			}
		}
		a.scratch.set(layer, ke.Key, nil)
	}
	return nil
}

// recompute layer hashes bottom up, returning the new store root
func (a *applier) propagate(root merkle.Digest) (merkle.Digest, error) {
	for len(a.touched) > 0 {

		// deepest layers first so each parent sees final child roots
		depth := 0
		for _, p := range a.touched {
			if len(p) > depth {
				depth = len(p)
			}
		}
		level := make([][][]byte, 0)
		for k, p := range a.touched {
			if len(p) == depth {
				level = append(level, p)
				delete(a.touched, k)
			}
		}
		sort.Slice(level, func(i, j int) bool {
			return bytes.Compare(EncodePath(level[i]), EncodePath(level[j])) < 0
		})

		for _, path := range level {
			hash, sum, err := layerHash(a.r, path)
			if nil != err {
				return root, err
			}
			if 0 == depth {
				root = hash
				continue
			}

			n := len(path) - 1
			parentLayer := layerOf(path[:n])
			parent, err := a.r.get(parentLayer, path[n])
			if nil != err {
				return root, err
			}
			if nil == parent {
				// the layer itself was deleted
				continue
			}
			if !parent.IsTree() {
				return root, fault.ErrCorruptedElementType
			}
			updated := *parent
			updated.Root = hash
			if SumTreeElement == updated.Type {
				updated.Sum = sum
			}
			a.scratch.set(parentLayer, path[n], &updated)
			a.touch(path[:n])
		}
	}
	return root, nil
}

// hash and sum of one layer
func layerHash(r reader, path [][]byte) (merkle.Digest, int64, error) {
	entries, err := r.entries(layerOf(path))
	if nil != err {
		return merkle.Digest{}, 0, err
	}
	leaves := make([]merkle.Digest, 0, len(entries))
	sum := int64(0)
	for _, ke := range entries {
		leaves = append(leaves, leafHash(ke.Key, ke.Element.Hash()))
		switch ke.Element.Type {
		case SumItemElement, SumTreeElement:
			sum += ke.Element.Sum
		}
	}
	return merkle.Root(leaves), sum, nil
}
