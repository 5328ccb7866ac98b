// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package drive

import (
	"math"

	"github.com/bitmark-inc/drived/fault"
	"github.com/bitmark-inc/drived/fee"
	"github.com/bitmark-inc/drived/grove"
	"github.com/bitmark-inc/drived/identifier"
	"github.com/bitmark-inc/drived/proof"
)

// a pending transfer that must happen after fees are known
type transfer struct {
	from   identifier.Identifier
	pollID identifier.Identifier
	amount fee.Credits
}

// opBuilder - accumulates one batch and its storage costs
//
// with a transaction every existence check reads real state; without
// one (estimating) every slot is assumed to be empty, so the
// estimate can only be greater than or equal to the applied cost
type opBuilder struct {
	tx        *grove.Transaction
	batch     *grove.Batch
	ops       fee.Operations
	epoch     fee.Epoch
	transfers []transfer
}

func newOps(tx *grove.Transaction, epoch fee.Epoch) *opBuilder {
	return &opBuilder{
		tx:    tx,
		batch: grove.NewBatch(),
		epoch: epoch,
	}
}

func (o *opBuilder) estimating() bool {
	return nil == o.tx
}

// Get - element at path/key including this batch's own writes
func (o *opBuilder) Get(path [][]byte, key []byte) (*grove.Element, error) {
	o.ops.Seeks += 1
	if e, found := o.batch.Pending(path, key); found {
		return e, nil
	}
	if o.estimating() {
		return nil, nil
	}
	e, err := o.tx.Get(path, key)
	if nil != err {
		return nil, err
	}
	if nil != e {
		o.ops.LoadedBytes += grove.StorageSize(key, *e)
	}
	return e, nil
}

// Query - a layer as of the start of this batch
func (o *opBuilder) Query(path [][]byte, q *grove.Query) ([]grove.KeyElement, error) {
	o.ops.Seeks += 1
	if o.estimating() {
		return []grove.KeyElement{}, nil
	}
	entries, err := o.tx.Query(path, q)
	if nil != err {
		return nil, err
	}
	for _, ke := range entries {
		o.ops.LoadedBytes += grove.StorageSize(ke.Key, ke.Element)
	}
	return entries, nil
}

// owner's storage flags for bytes added now
func (o *opBuilder) flags(owner identifier.Identifier) []byte {
	return fee.NewStorageFlags(o.epoch, &owner).Serialize()
}

func (o *opBuilder) insert(path [][]byte, key []byte, e grove.Element) {
	o.batch.Insert(path, key, e)
	o.ops.AddedBytes += grove.StorageSize(key, e)
}

// insert unless something is already there; reports whether it
// inserted
func (o *opBuilder) insertIfAbsent(path [][]byte, key []byte, e grove.Element) (bool, error) {
	existing, err := o.Get(path, key)
	if nil != err {
		return false, err
	}
	if nil == existing {
		o.insert(path, key, e)
		return true, nil
	}
	if e.IsTree() && !existing.IsTree() {
		return false, fault.ErrCorruptedElementType
	}
	return false, nil
}

// insert a tree along a path unless already there
func (o *opBuilder) ensureTree(path [][]byte, key []byte) error {
	_, err := o.insertIfAbsent(path, key, grove.NewTree(nil))
	return err
}

// insert into a slot that must be empty, conflict otherwise
func (o *opBuilder) insertNew(path [][]byte, key []byte, e grove.Element, conflict error) error {
	existing, err := o.Get(path, key)
	if nil != err {
		return err
	}
	if nil != existing {
		return conflict
	}
	o.insert(path, key, e)
	return nil
}

// overwrite old with e
//
// bytes up to the old size count as replaced, growth as added; bytes
// released by shrinking are refunded to their payers
func (o *opBuilder) replace(path [][]byte, key []byte, old *grove.Element, e grove.Element, owner *identifier.Identifier, released map[fee.Epoch]uint32) {
	o.batch.Insert(path, key, e)
	oldSize := grove.StorageSize(key, *old)
	newSize := grove.StorageSize(key, e)
	if newSize > oldSize {
		o.ops.AddedBytes += newSize - oldSize
		o.ops.ReplacedBytes += oldSize
	} else {
		o.ops.ReplacedBytes += newSize
	}
	if 0 != len(released) {
		o.ops.Removed = append(o.ops.Removed, fee.RemovedBytes{
			Owner:   owner,
			ByEpoch: released,
		})
	}
}

// insert, or replace whatever is there
func (o *opBuilder) upsert(path [][]byte, key []byte, e grove.Element) error {
	existing, err := o.Get(path, key)
	if nil != err {
		return err
	}
	if nil == existing {
		o.insert(path, key, e)
	} else {
		o.replace(path, key, existing, e, nil, nil)
	}
	return nil
}

// delete an element and account for its bytes
func (o *opBuilder) remove(path [][]byte, key []byte, old *grove.Element) error {
	o.batch.Delete(path, key)
	return o.released(key, old)
}

// delete a tree with everything below it, accounting for all of it
func (o *opBuilder) removeTree(path [][]byte, key []byte, old *grove.Element) error {
	if err := o.releasedLayer(grove.Extend(path, key)); nil != err {
		return err
	}
	o.batch.DeleteTree(path, key)
	return o.released(key, old)
}

func (o *opBuilder) releasedLayer(path [][]byte) error {
	entries, err := o.Query(path, grove.AllKeys())
	if nil != err {
		return err
	}
	for _, ke := range entries {
		e := ke.Element
		if e.IsTree() {
			if err := o.releasedLayer(grove.Extend(path, ke.Key)); nil != err {
				return err
			}
		}
		if err := o.released(ke.Key, &e); nil != err {
			return err
		}
	}
	return nil
}

// record bytes leaving storage against the epochs that paid for them
func (o *opBuilder) released(key []byte, old *grove.Element) error {
	size := grove.StorageSize(key, *old)
	flags, err := fee.DeserializeStorageFlags(old.Flags)
	if nil != err {
		return err
	}
	if nil == flags {
		o.ops.Removed = append(o.ops.Removed, fee.RemovedBytes{
			ByEpoch: map[fee.Epoch]uint32{o.epoch: size},
		})
		return nil
	}
	o.ops.Removed = append(o.ops.Removed, fee.RemovedBytes{
		Owner:   flags.Owner,
		ByEpoch: flags.BytesByEpoch(size),
	})
	return nil
}

// add delta to a sum item that must exist
//
// applied after fees are calculated so the adjustment itself is free
func (o *opBuilder) adjust(path [][]byte, key []byte, delta int64, missing error, insufficient error) error {
	e, found := o.batch.Pending(path, key)
	if !found {
		var err error
		if o.estimating() {
			return nil
		}
		e, err = o.tx.Get(path, key)
		if nil != err {
			return err
		}
	}
	if nil == e {
		return missing
	}
	if grove.SumItemElement != e.Type {
		return fault.ErrCorruptedElementType
	}

	value := e.Sum + delta
	switch {
	case delta > 0 && value < e.Sum:
		return fault.ErrBalanceOverflow
	case delta < 0 && value > e.Sum:
		return fault.ErrBalanceOverflow
	case value < 0:
		return insufficient
	}
	o.batch.Insert(path, key, grove.NewSumItem(value, e.Flags))
	return nil
}

// credits as a signed sum delta
func signed(c fee.Credits) (int64, error) {
	if c > math.MaxInt64 {
		return 0, fault.ErrBalanceOverflow
	}
	return int64(c), nil
}

// view - the transaction with this batch's writes on top, read
// without being charged
func (o *opBuilder) view() proof.Source {
	return pendingView{o: o}
}

type pendingView struct {
	o *opBuilder
}

func (v pendingView) Get(path [][]byte, key []byte) (*grove.Element, error) {
	if e, found := v.o.batch.Pending(path, key); found {
		return e, nil
	}
	if v.o.estimating() {
		return nil, nil
	}
	return v.o.tx.Get(path, key)
}

func (v pendingView) Query(path [][]byte, q *grove.Query) ([]grove.KeyElement, error) {
	if v.o.estimating() {
		return []grove.KeyElement{}, nil
	}
	return v.o.tx.Query(path, q)
}
