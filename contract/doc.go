// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

// Package contract - data contracts and their document types
//
// a contract is loaded once from JSON and is immutable afterwards;
// each document type carries its declared properties in position
// order, its indexes and the index level tree built from them
//
// the canonical key encoding of property values is also defined
// here since the write path and every query must agree on it
package contract
