// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package fee_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/bitmark-inc/drived/fault"
	"github.com/bitmark-inc/drived/fee"
	"github.com/bitmark-inc/drived/identifier"
)

func TestStorageFlagsSerialization(t *testing.T) {
	owner := identifier.FromSeed([]byte("owner"))
	flags := []*fee.StorageFlags{
		fee.NewStorageFlags(3, nil),
		fee.NewStorageFlags(7, &owner),
		{BaseEpoch: 1, OtherEpochBytes: map[fee.Epoch]uint32{4: 10, 2: 300}},
		{BaseEpoch: 1, Owner: &owner, OtherEpochBytes: map[fee.Epoch]uint32{9: 1}},
	}
	for i, f := range flags {
		decoded, err := fee.DeserializeStorageFlags(f.Serialize())
		require.Nil(t, err, "%d: deserialize", i)
		assert.Equal(t, f, decoded, "%d: round trip differs", i)
	}

	f, err := fee.DeserializeStorageFlags(nil)
	assert.Nil(t, err, "empty flags")
	assert.Nil(t, f, "empty flags decoded to a value")

	_, err = fee.DeserializeStorageFlags([]byte{9, 0, 0})
	assert.Equal(t, fault.ErrInvalidStorageFlags, err, "bad kind accepted")
}

func TestResizeGrowAndShrink(t *testing.T) {
	f := fee.NewStorageFlags(2, nil)

	// same epoch growth stays in the base epoch
	grown, removed := f.Resize(100, 120, 2)
	assert.Nil(t, grown.OtherEpochBytes, "same epoch growth recorded")
	assert.Equal(t, 0, len(removed), "growth removed bytes")

	grown, _ = f.Resize(100, 130, 5)
	assert.Equal(t, map[fee.Epoch]uint32{5: 30}, grown.OtherEpochBytes, "growth not recorded")
	assert.Equal(t, map[fee.Epoch]uint32{2: 100, 5: 30}, grown.BytesByEpoch(130), "wrong split")

	// shrink takes the newest bytes first
	shrunk, removed := grown.Resize(130, 110, 6)
	assert.Equal(t, map[fee.Epoch]uint32{5: 20}, removed, "wrong refunded epochs")
	assert.Equal(t, map[fee.Epoch]uint32{5: 10}, shrunk.OtherEpochBytes, "wrong remaining bytes")

	shrunk, removed = shrunk.Resize(110, 50, 6)
	assert.Equal(t, map[fee.Epoch]uint32{5: 10, 2: 50}, removed, "wrong refunded epochs")
	assert.Nil(t, shrunk.OtherEpochBytes, "epoch bytes left over")
}
