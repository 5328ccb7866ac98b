// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

// Package document - documents and their deterministic serialization
//
// property values are held as Go values:
//
//   nil, string, int64, float64, bool, identifier.Identifier, []byte,
//   []interface{}, map[string]interface{}
//
// the serialized form is the stored item value; identical documents
// always serialize to identical bytes on every node
package document
