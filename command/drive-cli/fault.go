// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package main

import (
	"github.com/bitmark-inc/drived/fault"
)

// command errors - keep in alphabetic order
var (
	ErrInvalidProofKind     = fault.InvalidError("invalid proof kind")
	ErrRequiredBalance      = fault.InvalidError("balance is required")
	ErrRequiredChoice       = fault.InvalidError("exactly one vote choice is required")
	ErrRequiredContract     = fault.InvalidError("contract is required")
	ErrRequiredDocumentType = fault.InvalidError("document type is required")
	ErrRequiredFileName     = fault.InvalidError("file name is required")
	ErrRequiredIdentity     = fault.InvalidError("identity is required")
	ErrRequiredIndexValues  = fault.InvalidError("index values are required")
	ErrRequiredProperties   = fault.InvalidError("properties are required")
	ErrTypeNotContested     = fault.InvalidError("document type has no contested index")
	ErrWrongIndexValueCount = fault.InvalidError("wrong number of index values")
)
