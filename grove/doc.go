// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

// Package grove - authenticated hierarchical key-value store
//
// Data is arranged in layers.  A layer is addressed by a path (a list
// of byte segments) and holds key → element pairs.  A Tree or SumTree
// element at key k of layer P is the parent of layer P ++ [k] and
// carries that layer's root hash, so every layer hashes up into the
// single root commitment of the store.
//
// Layer hash:
//
//   leaf(k, e)  = SHA3-256(varint(len k) ++ k ++ SHA3-256(serialized e))
//   layer hash  = merkle root of the leaves in ascending key order
//   empty layer = zero digest
//
// Proofs list every key of each included layer; entries that are
// not revealed carry only their element hash.  A verifier therefore
// knows the complete key set of a proven layer, which is what lets
// it prove absence.
package grove
