// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package drive

import (
	"sync"

	"github.com/bitmark-inc/logger"

	"github.com/bitmark-inc/drived/cache"
	"github.com/bitmark-inc/drived/contract"
	"github.com/bitmark-inc/drived/fault"
	"github.com/bitmark-inc/drived/fee"
	"github.com/bitmark-inc/drived/grove"
	"github.com/bitmark-inc/drived/identifier"
	"github.com/bitmark-inc/drived/merkle"
	"github.com/bitmark-inc/drived/proof"
	"github.com/bitmark-inc/drived/storage"
	"github.com/bitmark-inc/drived/version"
)

// Options - chain parameters that differ from the protocol defaults
type Options struct {
	// prices by epoch, nil for the first protocol version's prices
	FeeVersions *fee.EpochFeeVersions

	// nil to use the voting parameters of each protocol version
	Voting *version.VotingParameters
}

// Drive - committed state plus at most one open block
type Drive struct {
	sync.RWMutex

	log         *logger.L
	store       *grove.Store
	contracts   *cache.Cache
	feeVersions *fee.EpochFeeVersions
	voting      *version.VotingParameters
	last        *BlockInfo
}

// Proven - a proof of committed data and the block it belongs to
type Proven struct {
	Proof []byte
	Root  merkle.Digest
	Block BlockInfo
}

// New - attach to a database
func New(db *storage.Database, options Options) (*Drive, error) {
	store, err := grove.New(db)
	if nil != err {
		return nil, err
	}

	feeVersions := options.FeeVersions
	if nil == feeVersions {
		first, err := version.Get(version.Known()[0])
		if nil != err {
			return nil, err
		}
		feeVersions = fee.NewEpochFeeVersions(first.Fee)
	}

	d := &Drive{
		log:         logger.New("drive"),
		store:       store,
		contracts:   cache.New(),
		feeVersions: feeVersions,
		voting:      options.Voting,
	}

	buffer, err := store.GetAux(lastBlockKey)
	if nil != err {
		return nil, err
	}
	if nil != buffer {
		d.last, err = deserializeBlockInfo(buffer)
		if nil != err {
			return nil, err
		}
		d.log.Infof("last block: %d  root: %s", d.last.Height, store.RootHash())
	}
	return d, nil
}

// LastBlock - the last committed block, nil before the first commit
func (d *Drive) LastBlock() *BlockInfo {
	d.RLock()
	defer d.RUnlock()
	if nil == d.last {
		return nil
	}
	info := *d.last
	return &info
}

// RootHash - the committed app hash
func (d *Drive) RootHash() merkle.Digest {
	return d.store.RootHash()
}

// Contracts - read only view of the contracts loaded so far
func (d *Drive) Contracts() *cache.Snapshot {
	return d.contracts.Snapshot()
}

// Contract - a committed contract
func (d *Drive) Contract(id identifier.Identifier) (*contract.Contract, error) {
	if c := d.contracts.Get(id); nil != c {
		return c, nil
	}
	d.RLock()
	c, err := proof.ReadContract(d.store, id)
	d.RUnlock()
	if nil != err {
		return nil, err
	}
	if nil == c {
		return nil, fault.ErrContractNotFound
	}
	d.contracts.Put(c)
	return c, nil
}

// Read - run a reader against committed state
func (d *Drive) Read(read func(src proof.Source) error) error {
	d.RLock()
	defer d.RUnlock()
	return read(d.store)
}

// Prove - run a reader against committed state and prove everything
// it read
//
// the reader's own result is discarded by the caller's closure as it
// sees fit; the proof lets a client run the same reader
func (d *Drive) Prove(read func(src proof.Source) error) (*Proven, error) {
	d.RLock()
	defer d.RUnlock()

	recorder := proof.NewRecorder(d.store)
	if err := read(recorder); nil != err {
		return nil, err
	}
	p, err := d.store.Prove(recorder.Queries()...)
	if nil != err {
		return nil, err
	}

	result := &Proven{
		Proof: p,
		Root:  d.store.RootHash(),
	}
	if nil != d.last {
		result.Block = *d.last
	}
	return result, nil
}

// CalculateTotalCreditsBalance - committed credits by holder
func (d *Drive) CalculateTotalCreditsBalance() (*CreditsBalance, error) {
	d.RLock()
	defer d.RUnlock()
	return calculateCreditsBalance(d.store)
}
