// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package fee

import (
	"github.com/holiman/uint256"
)

// distribution schedule
const (
	EpochsPerEra         = 40
	PerpetualStorageEras = 50
	MaximumRefundHorizon = EpochsPerEra * PerpetualStorageEras

	distributionDenominator = 100000
)

// share of a storage fee released in each epoch of an era, in
// 1/(distributionDenominator × EpochsPerEra) units; the eras total
// to distributionDenominator
var eraDistribution = [PerpetualStorageEras]uint64{
	5000, 4850, 4700, 4550, 4400, 4250, 4100, 3950, 3800, 3650,
	3500, 3350, 3200, 3050, 2900, 2750, 2600, 2450, 2300, 2150,
	1470, 1465, 1460, 1455, 1450, 1448, 1398, 1348, 1298, 1248,
	1198, 1148, 1098, 1048, 998, 948, 898, 848, 798, 748,
	698, 648, 598, 548, 498, 448, 398, 348, 298, 248,
}

// released weight through elapsed epochs inclusive
func releasedWeight(elapsed uint64) uint64 {
	if elapsed >= MaximumRefundHorizon {
		return distributionDenominator * EpochsPerEra
	}
	era := elapsed / EpochsPerEra
	w := uint64(0)
	for e := uint64(0); e < era; e += 1 {
		w += eraDistribution[e] * EpochsPerEra
	}
	return w + (elapsed%EpochsPerEra+1)*eraDistribution[era]
}

// Released - portion of fee already paid out after elapsed epochs
func Released(fee Credits, elapsed uint64) Credits {
	a := uint256.NewInt(fee)
	a.Mul(a, uint256.NewInt(releasedWeight(elapsed)))
	a.Div(a, uint256.NewInt(distributionDenominator*EpochsPerEra))
	return a.Uint64()
}

// RefundAmount - what remains of a storage fee paid in created when
// the bytes are removed in current
func RefundAmount(fee Credits, created Epoch, current Epoch) Credits {
	elapsed := uint64(0)
	if current > created {
		elapsed = uint64(current - created)
	}
	return fee - Released(fee, elapsed)
}
