// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

// Package sdk verifies proved query responses
//
// a response is trusted only after its grove proof has been replayed
// with the reader matching its request and the recomputed root has
// been found inside a commit signed by the quorum the context
// provider vouches for
//
// every verification is independent of every other and safe to run
// concurrently, see VerifyBatch
package sdk
