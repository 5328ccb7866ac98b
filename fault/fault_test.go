// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package fault_test

import (
	"fmt"
	"testing"

	"github.com/bitmark-inc/drived/fault"
)

var (
	ErrCorruptedOne = fault.CorruptedError("corrupted one")
	ErrExistsOne    = fault.ExistsError("exists one ")
	ErrExistsTwo    = fault.ExistsError("exists two")
	ErrInvalidOne   = fault.InvalidError("invalid one")
	ErrInvalidTwo   = fault.InvalidError("invalid two")
	ErrLengthOne    = fault.LengthError("length one")
	ErrNotFoundOne  = fault.NotFoundError("not found one")
	ErrNotFoundTwo  = fault.NotFoundError("not found two")
	ErrProcessOne   = fault.ProcessError("process one")
	ErrProofOne     = fault.ProofError("proof one")
)

// test that various errors can be subclassed
func TestClasses(t *testing.T) {
	errorList := []struct {
		err       error
		corrupted bool
		exists    bool
		invalid   bool
		length    bool
		notFound  bool
		process   bool
		proof     bool
	}{
		{ErrCorruptedOne, true, false, false, false, false, false, false},
		{ErrExistsOne, false, true, false, false, false, false, false},
		{ErrExistsTwo, false, true, false, false, false, false, false},
		{ErrInvalidOne, false, false, true, false, false, false, false},
		{ErrInvalidTwo, false, false, true, false, false, false, false},
		{ErrLengthOne, false, false, false, true, false, false, false},
		{ErrNotFoundOne, false, false, false, false, true, false, false},
		{ErrNotFoundTwo, false, false, false, false, true, false, false},
		{ErrProcessOne, false, false, false, false, false, true, false},
		{ErrProofOne, false, false, false, false, false, false, true},
		{fmt.Errorf("layer 7: %w", ErrCorruptedOne), true, false, false, false, false, false, false},
		{fault.ErrNoProofInResult, false, false, false, false, false, false, true},
		{fault.ErrCorruptedContractIndexes, true, false, false, false, false, false, false},
		{nil, false, false, false, false, false, false, false},
	}

	for i, e := range errorList {
		err := e.err
		if fault.IsErrCorrupted(err) != e.corrupted {
			t.Errorf("%d: expected 'corrupted' == %v for err = %v", i, e.corrupted, err)
		}
		if fault.IsErrExists(err) != e.exists {
			t.Errorf("%d: expected 'exists' == %v for err = %v", i, e.exists, err)
		}
		if fault.IsErrInvalid(err) != e.invalid {
			t.Errorf("%d: expected 'invalid' == %v for err = %v", i, e.invalid, err)
		}
		if fault.IsErrLength(err) != e.length {
			t.Errorf("%d: expected 'length' == %v for err = %v", i, e.length, err)
		}
		if fault.IsErrNotFound(err) != e.notFound {
			t.Errorf("%d: expected 'not found' == %v for err = %v", i, e.notFound, err)
		}
		if fault.IsErrProcess(err) != e.process {
			t.Errorf("%d: expected 'process' == %v for err = %v", i, e.process, err)
		}
		if fault.IsErrProof(err) != e.proof {
			t.Errorf("%d: expected 'proof' == %v for err = %v", i, e.proof, err)
		}
	}
}

func TestCorrupted(t *testing.T) {
	wrapped := fmt.Errorf("layer 7: %w", fault.ErrCorruptedReference)
	if err := fault.Corrupted(wrapped, "apply: %d ops", 3); err != wrapped {
		t.Errorf("corrupted error changed: %v", err)
	}
	if err := fault.Corrupted(fault.ErrNotFound, "apply: %d ops", 3); err != fault.ErrNotFound {
		t.Errorf("other error changed: %v", err)
	}
	if err := fault.Corrupted(nil, "apply"); nil != err {
		t.Errorf("nil became: %v", err)
	}
}
