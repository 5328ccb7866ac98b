// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

// Package fault - error instances
//
// Provides a single instance of errors to allow easy comparison
// without having to resort to partial string matches
//
// Corrupted errors are fatal to the operation that produced them:
// the enclosing batch is aborted and never retried.  Proof errors
// mean a response could not be verified; they are distinct from
// the not found errors that are only returned after a successful
// verification proved absence.
package fault
