// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package drive

import (
	"bytes"
	"encoding/binary"
	"sort"

	"github.com/holiman/uint256"

	"github.com/bitmark-inc/drived/fault"
	"github.com/bitmark-inc/drived/fee"
	"github.com/bitmark-inc/drived/grove"
	"github.com/bitmark-inc/drived/identifier"
	"github.com/bitmark-inc/drived/paths"
	"github.com/bitmark-inc/drived/proof"
	"github.com/bitmark-inc/drived/util"
)

// Identity - a credit holding participant
type Identity struct {
	ID        identifier.Identifier
	PublicKey []byte
	Revision  uint64
}

func (i *Identity) serialize() []byte {
	buffer := util.AppendVarint64(nil, i.Revision)
	return util.AppendBytes(buffer, i.PublicKey)
}

// CreditsBalance - every credit in the system by holder
type CreditsBalance struct {
	TotalCredits        fee.Credits
	IdentityBalances    fee.Credits
	SpecializedBalances fee.Credits
	Pools               fee.Credits
}

// Ok - the holders account for exactly the credits in existence
func (c *CreditsBalance) Ok() bool {
	held := uint256.NewInt(c.IdentityBalances)
	held.Add(held, uint256.NewInt(c.SpecializedBalances))
	held.Add(held, uint256.NewInt(c.Pools))
	return held.Eq(uint256.NewInt(c.TotalCredits))
}

// CreateIdentity - register an identity with its initial balance
//
// the only place credits enter the system
func (b *Block) CreateIdentity(identity *Identity, balance fee.Credits) error {
	amount, err := signed(balance)
	if nil != err {
		return err
	}

	o := b.newOps()
	item := grove.NewItem(identity.serialize(), nil)
	if err := o.insertNew(paths.IdentitiesPath(), identity.ID.Bytes(), item, fault.ErrIdentityAlreadyExists); nil != err {
		return err
	}
	o.insert(paths.BalancesPath(), identity.ID.Bytes(), grove.NewSumItem(amount, nil))
	if err := o.mint(balance); nil != err {
		return err
	}

	if err := b.tx.Apply(o.batch); nil != err {
		return err
	}
	b.drive.log.Infof("identity: %s  balance: %d", identity.ID, balance)
	return nil
}

func totalCreditsItem(total fee.Credits) grove.Element {
	buffer := make([]byte, 8)
	binary.BigEndian.PutUint64(buffer, total)
	return grove.NewItem(buffer, nil)
}

func readTotalCredits(src proof.Source) (fee.Credits, error) {
	e, err := src.Get(paths.MiscPath(), paths.TotalCreditsKey)
	if nil != err {
		return 0, err
	}
	if nil == e {
		return 0, fault.ErrChainNotConfigured
	}
	if grove.ItemElement != e.Type || 8 != len(e.Value) {
		return 0, fault.ErrCorruptedElementType
	}
	return binary.BigEndian.Uint64(e.Value), nil
}

// raise the total credits in existence
func (o *opBuilder) mint(amount fee.Credits) error {
	total, err := readTotalCredits(o)
	if nil != err {
		return err
	}
	if total+amount < total {
		return fault.ErrBalanceOverflow
	}
	o.batch.Insert(paths.MiscPath(), paths.TotalCreditsKey, totalCreditsItem(total+amount))
	return nil
}

// debit the payer, pay refunds and move the fees into the pools
func (o *opBuilder) chargeFees(payer identifier.Identifier, result *fee.FeeResult) error {
	total, err := signed(result.Total())
	if nil != err {
		return err
	}
	if err := o.adjust(paths.BalancesPath(), payer.Bytes(), -total, fault.ErrIdentityNotFound, fault.ErrInsufficientBalance); nil != err {
		return err
	}

	ids := make([]identifier.Identifier, 0, len(result.FeeRefunds))
	for id := range result.FeeRefunds {
		ids = append(ids, id)
	}
	sort.Slice(ids, func(i, j int) bool {
		return bytes.Compare(ids[i][:], ids[j][:]) < 0
	})

	refunded := fee.Credits(0)
	for _, id := range ids {
		amount := result.FeeRefunds.Total(id)
		refunded += amount
		delta, err := signed(amount)
		if nil != err {
			return err
		}
		err = o.adjust(paths.BalancesPath(), id.Bytes(), delta, fault.ErrIdentityNotFound, fault.ErrInsufficientBalance)
		if fault.ErrIdentityNotFound == err {
			// nobody left to refund
			err = o.adjustPool(paths.ProcessingPoolKey, delta)
		}
		if nil != err {
			return err
		}
	}

	storage, err := signed(result.StorageFee)
	if nil != err {
		return err
	}
	returned, err := signed(refunded)
	if nil != err {
		return err
	}
	if err := o.adjustPool(paths.StoragePoolKey, storage-returned); nil != err {
		return err
	}
	processing, err := signed(result.ProcessingFee)
	if nil != err {
		return err
	}
	return o.adjustPool(paths.ProcessingPoolKey, processing)
}

func (o *opBuilder) adjustPool(key []byte, delta int64) error {
	return o.adjust(paths.PoolsPath(), key, delta, fault.ErrChainNotConfigured, fault.ErrCorruptedSolvency)
}

// move contender fees into the polls' specialized balances
func (o *opBuilder) settleTransfers() error {
	for _, t := range o.transfers {
		amount, err := signed(t.amount)
		if nil != err {
			return err
		}
		if err := o.adjust(paths.BalancesPath(), t.from.Bytes(), -amount, fault.ErrIdentityNotFound, fault.ErrInsufficientBalance); nil != err {
			return err
		}
		if err := o.adjust(paths.SpecializedBalancesPath(), t.pollID.Bytes(), amount, fault.ErrVotePollNotFound, fault.ErrCorruptedSolvency); nil != err {
			return err
		}
	}
	o.transfers = nil
	return nil
}

func sumTreeTotal(src proof.Source, path [][]byte, key []byte) (fee.Credits, error) {
	e, err := src.Get(path, key)
	if nil != err {
		return 0, err
	}
	if nil == e {
		return 0, fault.ErrChainNotConfigured
	}
	if grove.SumTreeElement != e.Type || e.Sum < 0 {
		return 0, fault.ErrCorruptedElementType
	}
	return fee.Credits(e.Sum), nil
}

func calculateCreditsBalance(src proof.Source) (*CreditsBalance, error) {
	total, err := readTotalCredits(src)
	if nil != err {
		return nil, err
	}
	balances, err := sumTreeTotal(src, nil, []byte{paths.Balances})
	if nil != err {
		return nil, err
	}
	specialized, err := sumTreeTotal(src, [][]byte{{paths.PreFundedSpecializedBalances}}, paths.SpecializedBalancesKey)
	if nil != err {
		return nil, err
	}
	pools, err := sumTreeTotal(src, nil, []byte{paths.Pools})
	if nil != err {
		return nil, err
	}
	return &CreditsBalance{
		TotalCredits:        total,
		IdentityBalances:    balances,
		SpecializedBalances: specialized,
		Pools:               pools,
	}, nil
}
