// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package main

import (
	"github.com/urfave/cli"

	"github.com/bitmark-inc/drived/document"
	"github.com/bitmark-inc/drived/drive"
	"github.com/bitmark-inc/drived/fee"
	"github.com/bitmark-inc/drived/transition"
)

func runInsert(c *cli.Context) error {

	m := c.App.Metadata["config"].(*metadata)

	ct, err := checkContract(m, c.String("contract"))
	if nil != err {
		return err
	}
	t, err := checkDocumentType(ct, c.String("type"))
	if nil != err {
		return err
	}
	owner, err := checkIdentity(c.String("owner"))
	if nil != err {
		return err
	}

	text := c.String("properties")
	if "" == text {
		return ErrRequiredProperties
	}
	properties, err := document.PropertiesFromJSON(t, []byte(text))
	if nil != err {
		return err
	}

	entropy := c.String("entropy")
	if "" == entropy {
		entropy = text
	}
	id := document.GenerateID(ct.ID, owner, t.Name, []byte(entropy))

	batch := &transition.DocumentsBatch{
		Owner: owner,
		Transitions: []transition.DocumentTransition{
			{
				Action:       transition.Create,
				ContractID:   ct.ID,
				DocumentType: t.Name,
				DocumentID:   id,
				Revision:     1,
				Properties:   properties,
			},
		},
	}

	result := (*fee.FeeResult)(nil)
	info, err := m.block(c, func(b *drive.Block) error {
		r, err := b.ApplyStateTransition(batch)
		result = r
		return err
	})
	if nil != err {
		return err
	}

	if c.Bool("prove") {
		return m.proveTransition(batch)
	}

	return printJson(m.w, struct {
		ID string `json:"id"`
		feeReply
	}{
		ID:       id.String(),
		feeReply: newFeeReply(info, result),
	})
}
