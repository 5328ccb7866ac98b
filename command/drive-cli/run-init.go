// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package main

import (
	"github.com/urfave/cli"

	"github.com/bitmark-inc/drived/drive"
)

func runInit(c *cli.Context) error {

	m := c.App.Metadata["config"].(*metadata)

	info, err := m.block(c, func(b *drive.Block) error {
		return b.InitChain()
	})
	if nil != err {
		return err
	}

	return printJson(m.w, struct {
		Chain  string `json:"chain"`
		Height uint64 `json:"height"`
		Root   string `json:"root"`
	}{
		Chain:  m.chainID,
		Height: info.Height,
		Root:   m.drive.RootHash().String(),
	})
}
