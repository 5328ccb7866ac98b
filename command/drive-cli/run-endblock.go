// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package main

import (
	"github.com/urfave/cli"

	"github.com/bitmark-inc/drived/drive"
)

type resolutionReply struct {
	Poll         string `json:"poll"`
	DocumentType string `json:"documentType"`
	IndexName    string `json:"indexName"`
	Outcome      string `json:"outcome"`
	Winner       string `json:"winner,omitempty"`
}

func runEndBlock(c *cli.Context) error {

	m := c.App.Metadata["config"].(*metadata)

	resolutions := []drive.Resolution(nil)
	info, err := m.block(c, func(b *drive.Block) error {
		r, err := b.ResolveEndedPolls()
		resolutions = r
		return err
	})
	if nil != err {
		return err
	}

	replies := make([]resolutionReply, len(resolutions))
	for i, r := range resolutions {
		replies[i] = resolutionReply{
			Poll:         r.Poll.ID().String(),
			DocumentType: r.Poll.DocumentType,
			IndexName:    r.Poll.IndexName,
			Outcome:      r.Decision.Outcome.String(),
		}
		if !r.Decision.Winner.IsZero() {
			replies[i].Winner = r.Decision.Winner.String()
		}
	}

	return printJson(m.w, struct {
		Height   uint64            `json:"height"`
		TimeMs   uint64            `json:"timeMs"`
		Resolved []resolutionReply `json:"resolved"`
	}{
		Height:   info.Height,
		TimeMs:   info.TimeMs,
		Resolved: replies,
	})
}
