// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

// Package local - a single key quorum for a one node chain
//
// The key is derived from a seed, so every process started with the
// same seed signs and verifies the same commits.
package local
