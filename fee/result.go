// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package fee

import (
	"github.com/holiman/uint256"

	"github.com/bitmark-inc/drived/fault"
	"github.com/bitmark-inc/drived/identifier"
)

// Refunds - credits owed back to identities, by the epoch they paid in
type Refunds map[identifier.Identifier]map[Epoch]Credits

// Total - all refunds to one identity
func (r Refunds) Total(id identifier.Identifier) Credits {
	total := Credits(0)
	for _, c := range r[id] {
		total += c
	}
	return total
}

// Sum - all refunds to everyone
func (r Refunds) Sum() Credits {
	total := Credits(0)
	for id := range r {
		total += r.Total(id)
	}
	return total
}

func (r Refunds) add(id identifier.Identifier, epoch Epoch, c Credits) {
	m, ok := r[id]
	if !ok {
		m = make(map[Epoch]Credits)
		r[id] = m
	}
	m[epoch] += c
}

// FeeResult - what an operation costs and what it gives back
type FeeResult struct {
	StorageFee             Credits
	ProcessingFee          Credits
	FeeRefunds             Refunds
	RemovedBytesFromSystem uint32
}

// Add - accumulate other into r
func (r *FeeResult) Add(other *FeeResult) {
	r.StorageFee += other.StorageFee
	r.ProcessingFee += other.ProcessingFee
	r.RemovedBytesFromSystem += other.RemovedBytesFromSystem
	if nil == r.FeeRefunds {
		r.FeeRefunds = make(Refunds)
	}
	for id, m := range other.FeeRefunds {
		for e, c := range m {
			r.FeeRefunds.add(id, e, c)
		}
	}
}

// Total - storage plus processing
func (r *FeeResult) Total() Credits {
	return r.StorageFee + r.ProcessingFee
}

// RemovedBytes - bytes leaving storage, split by the epochs that paid
type RemovedBytes struct {
	Owner   *identifier.Identifier
	ByEpoch map[Epoch]uint32
}

// Operations - storage activity of one batch
type Operations struct {
	AddedBytes    uint32
	ReplacedBytes uint32
	LoadedBytes   uint32
	Seeks         uint32
	Removed       []RemovedBytes
}

// multiply and check the product fits
func product(a uint64, b uint64) (Credits, error) {
	p := uint256.NewInt(a)
	p.Mul(p, uint256.NewInt(b))
	if !p.IsUint64() {
		return 0, fault.ErrBalanceOverflow
	}
	return p.Uint64(), nil
}

// Calculate - fees for ops at epoch current
func Calculate(ops *Operations, current Epoch, versions *EpochFeeVersions) (*FeeResult, error) {
	fv := versions.At(current)
	result := &FeeResult{
		FeeRefunds: make(Refunds),
	}

	storage, err := product(uint64(ops.AddedBytes), fv.StorageDiskUsageCreditPerByte)
	if nil != err {
		return nil, err
	}
	result.StorageFee = storage

	processing := uint64(0)
	for _, item := range []struct {
		n     uint32
		price uint64
	}{
		{ops.AddedBytes + ops.ReplacedBytes, fv.StorageProcessingCreditPerByte},
		{ops.LoadedBytes, fv.StorageLoadCreditPerByte},
		{ops.Seeks, fv.StorageSeekCost},
	} {
		p, err := product(uint64(item.n), item.price)
		if nil != err {
			return nil, err
		}
		processing += p
	}
	result.ProcessingFee = processing

	for _, removed := range ops.Removed {
		for epoch, bytes := range removed.ByEpoch {
			result.RemovedBytesFromSystem += bytes
			if nil == removed.Owner {
				continue
			}
			paid, err := product(uint64(bytes), versions.At(epoch).StorageDiskUsageCreditPerByte)
			if nil != err {
				return nil, err
			}
			refund := RefundAmount(paid, epoch, current)
			if refund > 0 {
				result.FeeRefunds.add(*removed.Owner, epoch, refund)
			}
		}
	}
	return result, nil
}
