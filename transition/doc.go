// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

// Package transition - state transitions applied to the store
//
// signatures and business rules are checked before a transition
// reaches this package; only the shape needed to apply and to prove
// a transition is kept
package transition
