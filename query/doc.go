// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

// Package query answers wire requests from committed drive state
//
// a request with prove set is answered with a snappy compressed grove
// proof of everything the answer was read from and the quorum commit
// of the block that state belongs to; otherwise the values are
// returned inline
package query
