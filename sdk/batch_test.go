// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package sdk_test

import (
	"context"
	"testing"

	"github.com/golang/mock/gomock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/bitmark-inc/drived/fault"
	"github.com/bitmark-inc/drived/identifier"
	"github.com/bitmark-inc/drived/sdk"
)

func TestVerifyBatch(t *testing.T) {
	ctl := gomock.NewController(t)
	defer ctl.Finish()

	n := newNode(t)
	provider := newProvider(ctl)

	check := func(id identifier.Identifier, present bool) func() error {
		request := documentRequest(id)
		response, err := n.handler.GetDocument(request)
		require.Nil(t, err, "get document")
		return func() error {
			doc, err := sdk.MaybeDocumentFromProof(request, response, provider)
			if nil != err {
				return err
			}
			if present != (nil != doc) {
				return fault.ErrInvalidProof
			}
			return nil
		}
	}

	checks := []func() error{
		check(note.ID, true),
		check(identifier.FromSeed([]byte("one")), false),
		check(identifier.FromSeed([]byte("two")), false),
		check(note.ID, true),
	}
	assert.Nil(t, sdk.VerifyBatch(context.Background(), checks...), "batch")

	tampered := func() error {
		return fault.ErrInvalidSignature
	}
	err := sdk.VerifyBatch(context.Background(), append(checks, tampered)...)
	assert.Equal(t, fault.ErrInvalidSignature, err, "failure hidden")

	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	err = sdk.VerifyBatch(ctx, checks...)
	assert.Equal(t, context.Canceled, err, "ran after cancel")
}
