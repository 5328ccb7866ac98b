// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

// Package wire - versioned query requests and responses
//
// every request and response wraps its fields in a V0 message so a
// later version can be added beside it; a message with no version set
// is rejected by both ends
//
// proofs travel snappy compressed together with the commit data a
// client needs to check them against a quorum signature
package wire
