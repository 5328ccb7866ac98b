// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package main

import (
	"fmt"
	"io"
	"time"

	"github.com/bitmark-inc/logger"
	"github.com/urfave/cli"

	"github.com/bitmark-inc/drived/cache"
	"github.com/bitmark-inc/drived/chain"
	"github.com/bitmark-inc/drived/configuration"
	"github.com/bitmark-inc/drived/consensus/local"
	"github.com/bitmark-inc/drived/drive"
	"github.com/bitmark-inc/drived/fault"
	"github.com/bitmark-inc/drived/fee"
	"github.com/bitmark-inc/drived/query"
	"github.com/bitmark-inc/drived/storage"
	"github.com/bitmark-inc/drived/version"
)

// logging is set up once per process
var loggerStarted = false

type metadata struct {
	config  *configuration.Configuration
	log     *logger.L
	db      *storage.Database
	drive   *drive.Drive
	quorum  *local.Quorum
	chainID string
	commits *query.CommitLog
	handler *query.Handler
	known   *cache.Cache
	watcher *cache.Watcher
	verbose bool
	e       io.Writer
	w       io.Writer
}

// open - everything a command needs from the configuration file
func open(file string) (*metadata, error) {
	config, err := configuration.Get(file)
	if nil != err {
		return nil, err
	}

	if !loggerStarted {
		if err := logger.Initialise(config.Logging); nil != err {
			return nil, err
		}
		if err := fault.Initialise(); nil != err {
			return nil, err
		}
		loggerStarted = true
	}
	log := logger.New("drive-cli")

	db, err := storage.Open(config.Database.Name, storage.ReadWrite)
	if nil != err {
		return nil, err
	}

	d, err := drive.New(db, drive.Options{
		Voting: config.VotingParameters(),
	})
	if nil != err {
		db.Close()
		return nil, err
	}

	seed := config.QuorumSeed
	if "" == seed {
		seed = chain.ID(config.Chain)
	}

	m := &metadata{
		config:  config,
		log:     log,
		db:      db,
		drive:   d,
		quorum:  local.NewQuorum([]byte(seed)),
		chainID: chain.ID(config.Chain),
		commits: query.NewCommitLog(time.Duration(config.Query.CommitRetention) * time.Second),
		known:   cache.New(),
	}
	m.handler = query.New(d, m.commits, config.Query.RateLimit, config.Query.Burst)

	// the local quorum signs deterministically so the commit of the
	// last block can be recreated
	if last := d.LastBlock(); nil != last {
		commit, err := m.quorum.SignBlock(m.chainID, *last, d.RootHash())
		if nil != err {
			m.close()
			return nil, err
		}
		m.commits.Record(commit)
	}

	if "" != config.ContractsDirectory {
		m.watcher, err = m.known.Watch(config.ContractsDirectory)
		if nil != err {
			m.close()
			return nil, err
		}
	}

	log.Debugf("opened: %q  chain: %s", config.Database.Name, config.Chain)
	return m, nil
}

func (m *metadata) close() error {
	if nil != m.watcher {
		m.watcher.Stop()
		m.watcher = nil
	}
	if nil == m.db {
		return nil
	}
	err := m.db.Close()
	m.db = nil
	return err
}

// block - run f in the next block then commit and sign it
func (m *metadata) block(c *cli.Context, f func(b *drive.Block) error) (drive.BlockInfo, error) {
	info := drive.BlockInfo{
		Height:          1,
		TimeMs:          c.GlobalUint64("time"),
		CoreHeight:      uint32(c.GlobalUint("core-height")),
		Epoch:           fee.Epoch(c.GlobalUint("epoch")),
		ProtocolVersion: version.ProtocolVersion(m.config.ProtocolVersion),
	}
	if last := m.drive.LastBlock(); nil != last {
		info.Height = last.Height + 1
		if 0 == info.CoreHeight {
			info.CoreHeight = last.CoreHeight
		}
	}
	if 0 == info.TimeMs {
		info.TimeMs = uint64(time.Now().UnixNano() / int64(time.Millisecond))
	}

	b, err := m.drive.BeginBlock(info)
	if nil != err {
		return info, err
	}
	if err := f(b); nil != err {
		b.Rollback()
		return info, err
	}

	commit, err := m.quorum.CommitBlock(m.chainID, b)
	if nil != err {
		return info, err
	}
	m.commits.Record(commit)

	if m.verbose {
		fmt.Fprintf(m.e, "block: %d  time: %d  root: %x\n", info.Height, info.TimeMs, commit.StateID.AppHash)
	}
	m.log.Infof("block: %d  root: %x", info.Height, commit.StateID.AppHash)
	return info, nil
}
