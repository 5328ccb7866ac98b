// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

// Package proof - typed readers over drive storage
//
// Every reader takes a Source: the committed store, an open
// transaction, or a verified proof.  The same code therefore answers
// a query inline, records what must be proven for it and decodes the
// proven result on the client side, so the three can never disagree
// about the storage layout.
//
// A reader returns nil (not an error) for a proven absence; an
// incomplete proof yields fault.ErrIncompleteProof.
package proof
