// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package sdk

import (
	"context"

	"golang.org/x/sync/errgroup"
)

// VerifyBatch - run independent verifications concurrently
//
// the first failure is returned and cancels the checks not yet
// started
func VerifyBatch(ctx context.Context, checks ...func() error) error {
	g, ctx := errgroup.WithContext(ctx)
	for _, check := range checks {
		check := check
		g.Go(func() error {
			if err := ctx.Err(); nil != err {
				return err
			}
			return check()
		})
	}
	return g.Wait()
}
