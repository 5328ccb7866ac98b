// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package grove

// OpKind - type of batch operation
type OpKind int

// batch operations
const (
	OpInsert     OpKind = iota // insert or replace
	OpDelete                   // remove one element, a tree is removed with its contents
	OpDeleteTree               // remove a tree and everything below it
)

// Op - one low level operation
type Op struct {
	Kind    OpKind
	Path    [][]byte
	Key     []byte
	Element Element
}

// Batch - ordered operations applied all or nothing
//
// pending state is tracked so that builders can read their own
// earlier operations before the batch reaches a transaction
type Batch struct {
	ops     []Op
	pending *overlay
}

// NewBatch - empty batch
func NewBatch() *Batch {
	return &Batch{
		pending: newOverlay(),
	}
}

// Insert - insert or replace an element
func (b *Batch) Insert(path [][]byte, key []byte, e Element) {
	b.ops = append(b.ops, Op{Kind: OpInsert, Path: path, Key: key, Element: e})
	b.pending.set(layerOf(path), key, &e)
}

// Delete - remove an element
func (b *Batch) Delete(path [][]byte, key []byte) {
	b.ops = append(b.ops, Op{Kind: OpDelete, Path: path, Key: key})
	b.pending.set(layerOf(path), key, nil)
}

// DeleteTree - remove a tree element and all its descendants
func (b *Batch) DeleteTree(path [][]byte, key []byte) {
	b.ops = append(b.ops, Op{Kind: OpDeleteTree, Path: path, Key: key})
	b.pending.set(layerOf(path), key, nil)
}

// Ops - the operations in order
func (b *Batch) Ops() []Op {
	return b.ops
}

// Len - number of operations
func (b *Batch) Len() int {
	return len(b.ops)
}

// Pending - the effect of this batch on one key
//
// found is false when the batch has not touched the key; otherwise a
// nil element means the batch deletes it
func (b *Batch) Pending(path [][]byte, key []byte) (e *Element, found bool) {
	return b.pending.lookup(layerOf(path), key)
}

// Append - add all operations of other after those of b
func (b *Batch) Append(other *Batch) {
	b.ops = append(b.ops, other.ops...)
	b.pending.merge(other.pending)
}
