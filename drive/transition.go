// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package drive

import (
	"github.com/bitmark-inc/drived/document"
	"github.com/bitmark-inc/drived/fault"
	"github.com/bitmark-inc/drived/fee"
	"github.com/bitmark-inc/drived/transition"
)

// ApplyStateTransition - apply a whole state transition or nothing
//
// all document transitions of a batch share one grove batch and one
// fee charged to the batch owner; votes are free
func (b *Block) ApplyStateTransition(st transition.StateTransition) (*fee.FeeResult, error) {
	switch tr := st.(type) {
	case *transition.DocumentsBatch:
		return b.applyDocumentsBatch(tr)
	case *transition.MasternodeVote:
		if err := b.RegisterIdentityVote(tr.Voter, &tr.Vote); nil != err {
			return nil, err
		}
		return &fee.FeeResult{}, nil
	default:
		return nil, fault.ErrInvalidStateTransition
	}
}

func (b *Block) applyDocumentsBatch(batch *transition.DocumentsBatch) (*fee.FeeResult, error) {
	if 0 == len(batch.Transitions) {
		return nil, fault.ErrInvalidStateTransition
	}

	o := b.newOps()
	for i, dt := range batch.Transitions {
		c, t, err := b.documentType(dt.ContractID, dt.DocumentType)
		if nil != err {
			return nil, err
		}

		doc := &document.Document{
			ID:         dt.DocumentID,
			Owner:      batch.Owner,
			Properties: dt.Properties,
		}

		if doc.Revision, err = dt.ResultRevision(); nil != err {
			return nil, err
		}

		switch dt.Action {
		case transition.Create:
			doc = stamp(doc, b.info.TimeMs)
			if err := validateUniqueness(o.view(), c, t, doc); nil != err {
				return nil, err
			}
			err = o.addDocument(c, t, doc, false, b.info.TimeMs, b.platform)
		case transition.Replace:
			err = o.updateDocument(c, t, doc, b.info.TimeMs, b.platform)
		case transition.Delete:
			err = o.deleteDocument(c, t, dt.DocumentID, batch.Owner, b.platform)
		default:
			err = fault.ErrInvalidStateTransition
		}
		if nil != err {
			b.drive.log.Debugf("transition: %d of %d  action: %d  error: %s", i+1, len(batch.Transitions), dt.Action, err)
			return nil, err
		}
	}
	return b.apply(o, batch.Owner)
}
