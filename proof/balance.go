// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package proof

import (
	"github.com/bitmark-inc/drived/fault"
	"github.com/bitmark-inc/drived/fee"
	"github.com/bitmark-inc/drived/identifier"
	"github.com/bitmark-inc/drived/paths"
)

// ReadIdentityBalance - credits held by an identity, nil if absent
func ReadIdentityBalance(src Source, id identifier.Identifier) (*fee.Credits, error) {
	return readCredits(src, paths.BalancesPath(), id.Bytes())
}

// ReadSpecializedBalance - credits prefunded for a vote poll, nil if
// absent
func ReadSpecializedBalance(src Source, pollID identifier.Identifier) (*fee.Credits, error) {
	return readCredits(src, paths.SpecializedBalancesPath(), pollID.Bytes())
}

func readCredits(src Source, path [][]byte, key []byte) (*fee.Credits, error) {
	value, err := sumValue(src, path, key)
	if nil != err || nil == value {
		return nil, err
	}
	if *value < 0 {
		return nil, fault.ErrCorruptedSolvency
	}
	credits := fee.Credits(*value)
	return &credits, nil
}
