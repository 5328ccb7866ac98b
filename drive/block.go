// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package drive

import (
	"github.com/bitmark-inc/drived/contract"
	"github.com/bitmark-inc/drived/document"
	"github.com/bitmark-inc/drived/fault"
	"github.com/bitmark-inc/drived/fee"
	"github.com/bitmark-inc/drived/grove"
	"github.com/bitmark-inc/drived/identifier"
	"github.com/bitmark-inc/drived/merkle"
	"github.com/bitmark-inc/drived/paths"
	"github.com/bitmark-inc/drived/proof"
	"github.com/bitmark-inc/drived/version"
)

// Block - writes of one block inside a single grove transaction
//
// nothing is visible to readers of the drive until Commit
type Block struct {
	drive     *Drive
	tx        *grove.Transaction
	info      BlockInfo
	platform  *version.PlatformVersion
	contracts map[identifier.Identifier]*contract.Contract
}

// BeginBlock - open the transaction of the next block
//
// the protocol version of the block selects every method version used
// by the block's writes
func (d *Drive) BeginBlock(info BlockInfo) (*Block, error) {
	pv, err := version.Get(info.ProtocolVersion)
	if nil != err {
		return nil, err
	}
	if nil != d.voting {
		pv = pv.WithVoting(*d.voting)
	}

	d.RLock()
	last := d.last
	d.RUnlock()
	if nil != last && info.Height <= last.Height {
		d.log.Warnf("block height: %d  not above last: %d", info.Height, last.Height)
		return nil, fault.ErrInvalidBlockHeight
	}

	tx, err := d.store.Begin()
	if nil != err {
		return nil, err
	}
	d.log.Debugf("begin block: %d  time: %d  epoch: %d  protocol: %d", info.Height, info.TimeMs, info.Epoch, info.ProtocolVersion)

	return &Block{
		drive:     d,
		tx:        tx,
		info:      info,
		platform:  pv,
		contracts: make(map[identifier.Identifier]*contract.Contract),
	}, nil
}

// Info - the block's context
func (b *Block) Info() BlockInfo {
	return b.info
}

// Platform - the method versions in force for this block
func (b *Block) Platform() *version.PlatformVersion {
	return b.platform
}

// AppHash - the root after everything applied so far
func (b *Block) AppHash() merkle.Digest {
	return b.tx.RootHash()
}

// Commit - make the block's writes visible and durable
func (b *Block) Commit() (merkle.Digest, error) {
	d := b.drive
	b.tx.PutAux(lastBlockKey, b.info.serialize())

	d.Lock()
	defer d.Unlock()

	root := b.tx.RootHash()
	if err := b.tx.Commit(); nil != err {
		d.log.Errorf("commit block: %d  error: %s", b.info.Height, err)
		return merkle.Digest{}, err
	}
	for _, c := range b.contracts {
		d.contracts.Put(c)
	}
	info := b.info
	d.last = &info

	d.log.Infof("committed block: %d  root: %s", b.info.Height, root)
	return root, nil
}

// Rollback - discard the block
func (b *Block) Rollback() {
	b.tx.Rollback()
	b.drive.log.Infof("rolled back block: %d", b.info.Height)
}

// InitChain - create the fixed root structure of an empty store
func (b *Block) InitChain() error {
	o := newOps(b.tx, b.info.Epoch)
	existing, err := o.Get(nil, []byte{paths.Votes})
	if nil != err {
		return err
	}
	if nil != existing {
		return fault.ErrAlreadyInitialised
	}

	o.insert(nil, []byte{paths.Identities}, grove.NewTree(nil))
	o.insert(nil, []byte{paths.PreFundedSpecializedBalances}, grove.NewTree(nil))
	o.insert(nil, []byte{paths.Pools}, grove.NewSumTree(nil))
	o.insert(nil, []byte{paths.DataContractDocuments}, grove.NewTree(nil))
	o.insert(nil, []byte{paths.Balances}, grove.NewSumTree(nil))
	o.insert(nil, []byte{paths.Misc}, grove.NewTree(nil))
	o.insert(nil, []byte{paths.Votes}, grove.NewTree(nil))

	prefunded := [][]byte{{paths.PreFundedSpecializedBalances}}
	o.insert(prefunded, paths.SpecializedBalancesKey, grove.NewSumTree(nil))

	o.insert(paths.PoolsPath(), paths.StoragePoolKey, grove.NewSumItem(0, nil))
	o.insert(paths.PoolsPath(), paths.ProcessingPoolKey, grove.NewSumItem(0, nil))

	o.insert(paths.MiscPath(), paths.TotalCreditsKey, totalCreditsItem(0))

	o.insert(paths.VotesPath(), paths.DecisionsKey, grove.NewTree(nil))
	o.insert(paths.VotesPath(), paths.ContestedResourcesKey, grove.NewTree(nil))
	o.insert(paths.ContestedResourcesPath(), paths.EndDateKey, grove.NewTree(nil))
	o.insert(paths.ContestedResourcesPath(), paths.IdentityVotesKey, grove.NewTree(nil))

	if err := b.tx.Apply(o.batch); nil != err {
		return err
	}
	b.drive.log.Infof("initialised chain at block: %d", b.info.Height)
	return nil
}

// contract visible to this block, including ones applied in it
func (b *Block) contract(id identifier.Identifier) (*contract.Contract, error) {
	if c, ok := b.contracts[id]; ok {
		return c, nil
	}
	return b.drive.Contract(id)
}

func (b *Block) documentType(contractID identifier.Identifier, typeName string) (*contract.Contract, *contract.DocumentType, error) {
	c, err := b.contract(contractID)
	if nil != err {
		return nil, nil, err
	}
	t, err := c.DocumentType(typeName)
	if nil != err {
		return nil, nil, err
	}
	return c, t, nil
}

func (b *Block) newOps() *opBuilder {
	return newOps(b.tx, b.info.Epoch)
}

// price the batch, charge the payer and apply everything at once
func (b *Block) apply(o *opBuilder, payer identifier.Identifier) (*fee.FeeResult, error) {
	result, err := fee.Calculate(&o.ops, b.info.Epoch, b.drive.feeVersions)
	if nil != err {
		return nil, err
	}
	if err := o.chargeFees(payer, result); nil != err {
		return nil, err
	}
	if err := o.settleTransfers(); nil != err {
		return nil, err
	}
	if err := b.tx.Apply(o.batch); nil != err {
		return nil, fault.Corrupted(err, "apply batch: %d ops", o.batch.Len())
	}
	b.drive.log.Debugf("applied: %d ops  storage fee: %d  processing fee: %d", o.batch.Len(), result.StorageFee, result.ProcessingFee)
	return result, nil
}

// FetchDocument - a document as seen by this block
func (b *Block) FetchDocument(contractID identifier.Identifier, typeName string, id identifier.Identifier) (*document.Document, error) {
	c, t, err := b.documentType(contractID, typeName)
	if nil != err {
		return nil, err
	}
	return proof.ReadDocument(b.tx, c, t.Name, id)
}

// CalculateTotalCreditsBalance - credits by holder as seen by this
// block
func (b *Block) CalculateTotalCreditsBalance() (*CreditsBalance, error) {
	return calculateCreditsBalance(b.tx)
}
