// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

// Package cache - loaded data contracts
//
// One owner writes (the drive after a commit, or a directory
// watcher); readers take a Snapshot, which never changes after it is
// taken and can be handed to proof verification.
package cache
