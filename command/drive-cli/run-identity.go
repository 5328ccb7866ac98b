// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package main

import (
	"github.com/urfave/cli"

	"github.com/bitmark-inc/drived/drive"
	"github.com/bitmark-inc/drived/fee"
)

func runIdentity(c *cli.Context) error {

	m := c.App.Metadata["config"].(*metadata)

	id, err := checkIdentity(c.String("id"))
	if nil != err {
		return err
	}
	balance := fee.Credits(c.Uint64("balance"))
	if 0 == balance {
		return ErrRequiredBalance
	}

	info, err := m.block(c, func(b *drive.Block) error {
		return b.CreateIdentity(&drive.Identity{
			ID:        id,
			PublicKey: id.Bytes(),
		}, balance)
	})
	if nil != err {
		return err
	}

	return printJson(m.w, struct {
		ID      string      `json:"id"`
		Balance fee.Credits `json:"balance"`
		Height  uint64      `json:"height"`
	}{
		ID:      id.String(),
		Balance: balance,
		Height:  info.Height,
	})
}
