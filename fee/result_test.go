// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package fee_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/bitmark-inc/drived/fee"
	"github.com/bitmark-inc/drived/identifier"
)

func TestCalculateStorageAndProcessing(t *testing.T) {
	versions := fee.NewEpochFeeVersions(&fee.FeeVersion1)
	ops := &fee.Operations{
		AddedBytes:    100,
		ReplacedBytes: 10,
		LoadedBytes:   50,
		Seeks:         3,
	}
	result, err := fee.Calculate(ops, 0, versions)
	require.Nil(t, err, "calculate")

	v := fee.FeeVersion1
	assert.Equal(t, 100*v.StorageDiskUsageCreditPerByte, result.StorageFee, "storage fee")
	assert.Equal(t, 110*v.StorageProcessingCreditPerByte+50*v.StorageLoadCreditPerByte+3*v.StorageSeekCost, result.ProcessingFee, "processing fee")
	assert.Equal(t, fee.Credits(0), result.FeeRefunds.Sum(), "unexpected refunds")
}

func TestCalculateRefundUsesCreationEpochPrice(t *testing.T) {
	owner := identifier.FromSeed([]byte("owner"))
	removed := &fee.Operations{
		Removed: []fee.RemovedBytes{
			{Owner: &owner, ByEpoch: map[fee.Epoch]uint32{0: 1000}},
		},
	}

	flat := fee.NewEpochFeeVersions(&fee.FeeVersion1)
	before, err := fee.Calculate(removed, 10, flat)
	require.Nil(t, err, "calculate")

	// a price rise after the bytes were paid for changes nothing
	doubled := fee.FeeVersion1
	doubled.StorageDiskUsageCreditPerByte *= 2
	changed := fee.NewEpochFeeVersions(&fee.FeeVersion1)
	changed.Set(10, &doubled)
	after, err := fee.Calculate(removed, 10, changed)
	require.Nil(t, err, "calculate")

	paid := 1000 * fee.FeeVersion1.StorageDiskUsageCreditPerByte
	assert.Equal(t, before.FeeRefunds.Total(owner), after.FeeRefunds.Total(owner), "refund depends on the current price")
	assert.True(t, after.FeeRefunds.Total(owner) < paid, "refund exceeds the fee paid")
	assert.True(t, after.FeeRefunds.Total(owner)*100 > 98*paid, "ten epoch refund too small")
	assert.Equal(t, uint32(1000), after.RemovedBytesFromSystem, "removed bytes")
}

func TestCalculateUnownedBytesAreNotRefunded(t *testing.T) {
	versions := fee.NewEpochFeeVersions(&fee.FeeVersion1)
	ops := &fee.Operations{
		Removed: []fee.RemovedBytes{{ByEpoch: map[fee.Epoch]uint32{0: 500}}},
	}
	result, err := fee.Calculate(ops, 0, versions)
	require.Nil(t, err, "calculate")
	assert.Equal(t, fee.Credits(0), result.FeeRefunds.Sum(), "unowned bytes refunded")
	assert.Equal(t, uint32(500), result.RemovedBytesFromSystem, "removed bytes")
}

func TestFeeResultAdd(t *testing.T) {
	owner := identifier.FromSeed([]byte("owner"))
	a := &fee.FeeResult{StorageFee: 10, ProcessingFee: 1}
	b := &fee.FeeResult{
		StorageFee:    5,
		ProcessingFee: 2,
		FeeRefunds:    fee.Refunds{owner: {3: 7}},
	}
	a.Add(b)
	a.Add(b)
	assert.Equal(t, fee.Credits(20), a.StorageFee, "storage")
	assert.Equal(t, fee.Credits(5), a.ProcessingFee, "processing")
	assert.Equal(t, fee.Credits(14), a.FeeRefunds.Total(owner), "refunds")
	assert.Equal(t, fee.Credits(25), a.Total(), "total")
}
