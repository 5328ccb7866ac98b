// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package main

import (
	"github.com/urfave/cli"

	"github.com/bitmark-inc/drived/fee"
)

func runCredits(c *cli.Context) error {

	m := c.App.Metadata["config"].(*metadata)

	balance, err := m.drive.CalculateTotalCreditsBalance()
	if nil != err {
		return err
	}

	return printJson(m.w, struct {
		TotalCredits        fee.Credits `json:"totalCredits"`
		IdentityBalances    fee.Credits `json:"identityBalances"`
		SpecializedBalances fee.Credits `json:"specializedBalances"`
		Pools               fee.Credits `json:"pools"`
		Ok                  bool        `json:"ok"`
	}{
		TotalCredits:        balance.TotalCredits,
		IdentityBalances:    balance.IdentityBalances,
		SpecializedBalances: balance.SpecializedBalances,
		Pools:               balance.Pools,
		Ok:                  balance.Ok(),
	})
}
