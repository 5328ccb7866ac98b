// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package fee_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/bitmark-inc/drived/fee"
)

func TestEpochFeeVersions(t *testing.T) {
	v1 := fee.FeeVersion1
	v2 := fee.FeeVersion1
	v2.StorageDiskUsageCreditPerByte *= 2
	v3 := fee.FeeVersion1
	v3.StorageDiskUsageCreditPerByte *= 3

	versions := fee.NewEpochFeeVersions(&v1)
	versions.Set(20, &v3)
	versions.Set(10, &v2)

	assert.Equal(t, &v1, versions.At(0), "epoch 0")
	assert.Equal(t, &v1, versions.At(9), "epoch 9")
	assert.Equal(t, &v2, versions.At(10), "epoch 10")
	assert.Equal(t, &v2, versions.At(19), "epoch 19")
	assert.Equal(t, &v3, versions.At(20), "epoch 20")
	assert.Equal(t, &v3, versions.At(60000), "last override applies forever")

	// replacing an existing override
	v4 := fee.FeeVersion1
	versions.Set(10, &v4)
	assert.Equal(t, &v4, versions.At(15), "override not replaced")
}
