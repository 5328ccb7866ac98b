// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

// Package consensus - what a validator quorum signs for a block
//
// A commit binds the chain id, height, round and block id to a state
// id whose app hash is the grove root after the block.  A verified
// grove proof is only trusted when its recomputed root equals that app
// hash and the quorum signature over the commit is valid.
package consensus
