// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package query

import (
	"strconv"
	"time"

	cache "github.com/patrickmn/go-cache"

	"github.com/bitmark-inc/drived/consensus"
	"github.com/bitmark-inc/drived/fault"
)

// CommitSource - the signed commit of a committed block
type CommitSource interface {
	Commit(height uint64) (*consensus.Commit, error)
}

const cleanupInterval = 1 * time.Minute

// CommitLog - commits of recent blocks
//
// a proof can only be answered while the commit of its block is
// retained
type CommitLog struct {
	commits *cache.Cache
}

// NewCommitLog - keep each commit for retain, forever if zero
func NewCommitLog(retain time.Duration) *CommitLog {
	expiration := cache.NoExpiration
	if retain > 0 {
		expiration = retain
	}
	return &CommitLog{
		commits: cache.New(expiration, cleanupInterval),
	}
}

// Record - remember the commit of a block
func (l *CommitLog) Record(c *consensus.Commit) {
	l.commits.Set(strconv.FormatUint(c.Height, 10), c, cache.DefaultExpiration)
}

// Commit - the commit of a block, ErrCommitNotFound if not retained
func (l *CommitLog) Commit(height uint64) (*consensus.Commit, error) {
	obj, found := l.commits.Get(strconv.FormatUint(height, 10))
	if !found {
		return nil, fault.ErrCommitNotFound
	}
	return obj.(*consensus.Commit), nil
}
