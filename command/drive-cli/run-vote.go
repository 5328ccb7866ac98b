// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package main

import (
	"github.com/urfave/cli"

	"github.com/bitmark-inc/drived/drive"
	"github.com/bitmark-inc/drived/transition"
	"github.com/bitmark-inc/drived/vote"
)

func runVote(c *cli.Context) error {

	m := c.App.Metadata["config"].(*metadata)

	p, err := poll(m, c)
	if nil != err {
		return err
	}
	voter, err := checkIdentity(c.String("voter"))
	if nil != err {
		return err
	}
	choice, err := checkChoice(c)
	if nil != err {
		return err
	}

	mv := &transition.MasternodeVote{
		Voter: voter,
		Vote: vote.ResourceVote{
			Poll:   *p,
			Choice: choice,
		},
	}

	info, err := m.block(c, func(b *drive.Block) error {
		_, err := b.ApplyStateTransition(mv)
		return err
	})
	if nil != err {
		return err
	}

	if c.Bool("prove") {
		return m.proveTransition(mv)
	}

	return printJson(m.w, struct {
		Poll   string `json:"poll"`
		Voter  string `json:"voter"`
		Choice string `json:"choice"`
		Height uint64 `json:"height"`
	}{
		Poll:   p.ID().String(),
		Voter:  voter.String(),
		Choice: choice.String(),
		Height: info.Height,
	})
}

// exactly one of towards, abstain and lock
func checkChoice(c *cli.Context) (vote.Choice, error) {
	choices := []vote.Choice{}
	if s := c.String("towards"); "" != s {
		id, err := checkIdentity(s)
		if nil != err {
			return vote.Choice{}, err
		}
		choices = append(choices, vote.Choice{Kind: vote.TowardsIdentity, Identity: id})
	}
	if c.Bool("abstain") {
		choices = append(choices, vote.Choice{Kind: vote.Abstain})
	}
	if c.Bool("lock") {
		choices = append(choices, vote.Choice{Kind: vote.Lock})
	}
	if 1 != len(choices) {
		return vote.Choice{}, ErrRequiredChoice
	}
	return choices[0], nil
}
