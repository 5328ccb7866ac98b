// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

// Package fee - storage cost and refund model
//
// Storage is paid once, up front, at the rate in force in the epoch
// the bytes were added.  That payment is released to block proposers
// over PerpetualStorageEras eras of EpochsPerEra epochs following the
// distribution table below; whatever has not yet been released when
// the bytes are removed is refunded to the identity that paid.
package fee
