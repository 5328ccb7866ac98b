// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

// Package paths - locations of everything inside the store
//
// every function is pure; the write path, the query path and the
// proof verifier all derive their paths here so the three cannot
// drift apart
//
//   [64, contract]                     0: contract item  1: document types
//   [64, contract, 1, type]            0: primary storage  1: contested storage
//                                      <property>: index trees
//   ... <property>, <value>            0: index terminal  <property>: next level
//   [32]                               identities
//   [96]                               balances (sum tree)
//   [40, 128]                          specialized balances (sum tree)
//   [48]                               pools (sum tree)
//   [104]                              misc: total system credits
//   [112, 'd']                         vote decisions
//   [112, 'c', 'e']                    end date index
//   [112, 'c', 'i', voter]             identity votes
package paths
