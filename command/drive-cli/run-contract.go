// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package main

import (
	"fmt"
	"io/ioutil"

	"github.com/urfave/cli"

	"github.com/bitmark-inc/drived/contract"
	"github.com/bitmark-inc/drived/drive"
	"github.com/bitmark-inc/drived/fee"
)

type feeReply struct {
	Height        uint64      `json:"height"`
	StorageFee    fee.Credits `json:"storageFee"`
	ProcessingFee fee.Credits `json:"processingFee"`
	RemovedBytes  uint32      `json:"removedBytes,omitempty"`
}

func newFeeReply(info drive.BlockInfo, result *fee.FeeResult) feeReply {
	return feeReply{
		Height:        info.Height,
		StorageFee:    result.StorageFee,
		ProcessingFee: result.ProcessingFee,
		RemovedBytes:  result.RemovedBytesFromSystem,
	}
}

func runLoadContract(c *cli.Context) error {

	m := c.App.Metadata["config"].(*metadata)

	fileName := c.String("file")
	if "" == fileName {
		return ErrRequiredFileName
	}

	buffer, err := ioutil.ReadFile(fileName)
	if nil != err {
		return err
	}
	ct, err := contract.Load(buffer)
	if nil != err {
		return err
	}

	if m.verbose {
		fmt.Fprintf(m.e, "contract: %s  types: %v\n", ct.ID, ct.TypeNames())
	}

	result := (*fee.FeeResult)(nil)
	info, err := m.block(c, func(b *drive.Block) error {
		r, err := b.ApplyContract(ct)
		result = r
		return err
	})
	if nil != err {
		return err
	}

	return printJson(m.w, struct {
		ID    string   `json:"id"`
		Types []string `json:"types"`
		feeReply
	}{
		ID:       ct.ID.String(),
		Types:    ct.TypeNames(),
		feeReply: newFeeReply(info, result),
	})
}
