// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package fee

import (
	"sort"
)

// Credits - unit of account
type Credits = uint64

// Epoch - index of a fee accounting window
type Epoch uint16

// FeeVersion - per byte and per operation prices
type FeeVersion struct {
	StorageDiskUsageCreditPerByte  uint64
	StorageProcessingCreditPerByte uint64
	StorageLoadCreditPerByte       uint64
	NonStorageLoadCreditPerByte    uint64
	StorageSeekCost                uint64
}

// FeeVersion1 - the initial price list
var FeeVersion1 = FeeVersion{
	StorageDiskUsageCreditPerByte:  27000,
	StorageProcessingCreditPerByte: 400,
	StorageLoadCreditPerByte:       20,
	NonStorageLoadCreditPerByte:    10,
	StorageSeekCost:                2000,
}

// EpochFeeVersions - the price list in force from each listed epoch on
type EpochFeeVersions struct {
	epochs   []Epoch
	versions []*FeeVersion
}

// NewEpochFeeVersions - initial price list from epoch zero
func NewEpochFeeVersions(initial *FeeVersion) *EpochFeeVersions {
	return &EpochFeeVersions{
		epochs:   []Epoch{0},
		versions: []*FeeVersion{initial},
	}
}

// Set - use v from epoch on, until the next override
func (e *EpochFeeVersions) Set(epoch Epoch, v *FeeVersion) {
	i := sort.Search(len(e.epochs), func(i int) bool { return e.epochs[i] >= epoch })
	if i < len(e.epochs) && e.epochs[i] == epoch {
		e.versions[i] = v
		return
	}
	e.epochs = append(e.epochs, 0)
	e.versions = append(e.versions, nil)
	copy(e.epochs[i+1:], e.epochs[i:])
	copy(e.versions[i+1:], e.versions[i:])
	e.epochs[i] = epoch
	e.versions[i] = v
}

// At - the price list in force at epoch
func (e *EpochFeeVersions) At(epoch Epoch) *FeeVersion {
	i := sort.Search(len(e.epochs), func(i int) bool { return e.epochs[i] > epoch })
	return e.versions[i-1]
}
