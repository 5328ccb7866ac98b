// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package main

import (
	"github.com/urfave/cli"

	"github.com/bitmark-inc/drived/identifier"
	"github.com/bitmark-inc/drived/transition"
	"github.com/bitmark-inc/drived/wire"
)

func runProveDocument(c *cli.Context) error {

	m := c.App.Metadata["config"].(*metadata)

	ct, err := checkContract(m, c.String("contract"))
	if nil != err {
		return err
	}
	t, err := checkDocumentType(ct, c.String("type"))
	if nil != err {
		return err
	}
	if "" == c.String("id") {
		return ErrRequiredIdentity
	}
	id, err := identifier.FromString(c.String("id"))
	if nil != err {
		return err
	}

	request := &wire.GetDocumentRequest{
		V0: &wire.GetDocumentRequestV0{
			DataContractId: ct.ID.Bytes(),
			DocumentType:   t.Name,
			DocumentId:     id.Bytes(),
			Prove:          true,
		},
	}
	response, err := m.handler.GetDocument(request)
	if nil != err {
		return err
	}
	return writeProof(m.w, documentProof, request, response)
}

// proof that a committed transition took effect
func (m *metadata) proveTransition(st transition.StateTransition) error {
	buffer, err := st.Serialize()
	if nil != err {
		return err
	}
	request := &wire.WaitForStateTransitionResultRequest{
		V0: &wire.WaitForStateTransitionResultRequestV0{
			StateTransition: buffer,
			Prove:           true,
		},
	}
	response, err := m.handler.WaitForStateTransitionResult(request)
	if nil != err {
		return err
	}
	return writeProof(m.w, transitionProof, request, response)
}
