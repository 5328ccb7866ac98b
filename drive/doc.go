// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

// Package drive - documents, indexes and contested resources over a
// grove
//
// All writes happen inside a Block.  Each operation builds one batch
// of grove operations with its storage costs, computes the fee result
// and applies the batch together with the balance changes, so an
// operation either happens completely or not at all.
//
// Storage layout:
//
//   [64, contract, 0]                          contract
//   [64, contract, 1, type, 0, id]             document (or history tree)
//   [64, contract, 1, type, 1, id]             contested document
//   [64, contract, 1, type, prop, value, ...]  index levels
//   [..., value, 0]                            reference, tree of references
//                                              or contest tree
//   [96, id]                                   balances
//   [40, 128, poll]                            specialized balances
//   [48, 's' | 'p']                            fee pools
//   [104, 't']                                 total credits
//   [112, 'd', poll]                           decisions
//   [112, 'c', 'e', time, poll]                polls by end time
//   [112, 'c', 'i', voter, poll]               votes of an identity
package drive
