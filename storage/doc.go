// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

// Package storage - maintain the on-disk data store
//
// A single LevelDB database written through one batch at a time.
// All writes of a batch are staged in a LevelDB Batch and mirrored in
// a read cache so that reads inside the batch see its own writes.
// Nothing reaches the disk until Commit, and Abort discards the lot.
//
// Notes:
// 1. each record kind has a single byte prefix (to spread the keys in LevelDB)
// 2. ++           = concatenation of byte data
// 3. layer id     = SHA3-256(encoded path) (32 bytes)
//
// Records:
//
//   0x00 ++ "VERSION"          - database version, big endian uint32
//   E ++ layer id ++ key       - serialized store element
//   R                          - committed root hash of the store
//   A ++ key                   - auxiliary data outside the authenticated tree
package storage
