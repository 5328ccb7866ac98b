// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package fee

import (
	"sort"

	"github.com/bitmark-inc/drived/fault"
	"github.com/bitmark-inc/drived/identifier"
	"github.com/bitmark-inc/drived/util"
)

// serialized flag kinds
const (
	singleEpoch      = 0
	multiEpoch       = 1
	singleEpochOwned = 2
	multiEpochOwned  = 3
)

// StorageFlags - who paid for an element's bytes and when
//
// bytes not listed in OtherEpochBytes were added in BaseEpoch
type StorageFlags struct {
	BaseEpoch       Epoch
	Owner           *identifier.Identifier
	OtherEpochBytes map[Epoch]uint32
}

// NewStorageFlags - flags for bytes added now
func NewStorageFlags(epoch Epoch, owner *identifier.Identifier) *StorageFlags {
	return &StorageFlags{
		BaseEpoch: epoch,
		Owner:     owner,
	}
}

func (f *StorageFlags) sortedEpochs() []Epoch {
	epochs := make([]Epoch, 0, len(f.OtherEpochBytes))
	for e := range f.OtherEpochBytes {
		epochs = append(epochs, e)
	}
	sort.Slice(epochs, func(i, j int) bool { return epochs[i] < epochs[j] })
	return epochs
}

// Serialize - byte form stored with the element
func (f *StorageFlags) Serialize() []byte {
	if nil == f {
		return nil
	}
	kind := byte(singleEpoch)
	if 0 != len(f.OtherEpochBytes) {
		kind = multiEpoch
	}
	if nil != f.Owner {
		kind += 2
	}
	buffer := []byte{kind}
	buffer = util.AppendUint16(buffer, uint16(f.BaseEpoch))
	if nil != f.Owner {
		buffer = append(buffer, f.Owner[:]...)
	}
	if 0 != len(f.OtherEpochBytes) {
		epochs := f.sortedEpochs()
		buffer = util.AppendVarint64(buffer, uint64(len(epochs)))
		for _, e := range epochs {
			buffer = util.AppendUint16(buffer, uint16(e))
			buffer = util.AppendVarint64(buffer, uint64(f.OtherEpochBytes[e]))
		}
	}
	return buffer
}

// DeserializeStorageFlags - inverse of Serialize, nil for no flags
func DeserializeStorageFlags(buffer []byte) (*StorageFlags, error) {
	if 0 == len(buffer) {
		return nil, nil
	}
	r := util.NewReader(buffer)
	kind := r.Byte()
	if kind > multiEpochOwned {
		return nil, fault.ErrInvalidStorageFlags
	}
	f := &StorageFlags{
		BaseEpoch: Epoch(r.Uint16()),
	}
	if singleEpochOwned == kind || multiEpochOwned == kind {
		id, err := identifier.FromBytes(r.Fixed(identifier.Length))
		if nil != err {
			return nil, fault.ErrInvalidStorageFlags
		}
		f.Owner = &id
	}
	if multiEpoch == kind || multiEpochOwned == kind {
		n := r.Count()
		f.OtherEpochBytes = make(map[Epoch]uint32, n)
		for i := 0; i < n; i += 1 {
			e := Epoch(r.Uint16())
			f.OtherEpochBytes[e] = uint32(r.Varint64())
		}
	}
	if err := r.Finish(); nil != err {
		return nil, fault.ErrInvalidStorageFlags
	}
	return f, nil
}

// BytesByEpoch - split size bytes into the epochs that paid for them
func (f *StorageFlags) BytesByEpoch(size uint32) map[Epoch]uint32 {
	result := make(map[Epoch]uint32)
	base := size
	epochs := f.sortedEpochs()
	for i := len(epochs) - 1; i >= 0; i -= 1 {
		e := epochs[i]
		b := f.OtherEpochBytes[e]
		if b > base {
			b = base
		}
		result[e] += b
		base -= b
	}
	if base > 0 {
		result[f.BaseEpoch] += base
	}
	return result
}

// Resize - flags after an element changes from oldSize to newSize
//
// growth is attributed to the current epoch; shrinkage is taken from
// the most recent epochs first and returned for refunding
func (f *StorageFlags) Resize(oldSize uint32, newSize uint32, current Epoch) (*StorageFlags, map[Epoch]uint32) {
	updated := &StorageFlags{
		BaseEpoch:       f.BaseEpoch,
		Owner:           f.Owner,
		OtherEpochBytes: make(map[Epoch]uint32, len(f.OtherEpochBytes)+1),
	}
	for e, b := range f.OtherEpochBytes {
		updated.OtherEpochBytes[e] = b
	}
	removed := make(map[Epoch]uint32)

	switch {
	case newSize > oldSize:
		if current != f.BaseEpoch {
			updated.OtherEpochBytes[current] += newSize - oldSize
		}
	case newSize < oldSize:
		shrink := oldSize - newSize
		epochs := updated.sortedEpochs()
		for i := len(epochs) - 1; i >= 0 && shrink > 0; i -= 1 {
			e := epochs[i]
			b := updated.OtherEpochBytes[e]
			if b > shrink {
				b = shrink
			}
			updated.OtherEpochBytes[e] -= b
			if 0 == updated.OtherEpochBytes[e] {
				delete(updated.OtherEpochBytes, e)
			}
			removed[e] += b
			shrink -= b
		}
		if shrink > 0 {
			removed[f.BaseEpoch] += shrink
		}
	}
	if 0 == len(updated.OtherEpochBytes) {
		updated.OtherEpochBytes = nil
	}
	return updated, removed
}
