// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package storage

import (
	"time"

	cache "github.com/patrickmn/go-cache"
)

// Cache - read-your-writes view of the open batch
//
// a key is either staged with a value or marked as a tombstone
type Cache interface {
	Lookup(key string) (value []byte, deleted bool, staged bool)
	Stage(key string, value []byte)
	Tombstone(key string)
	Reset()
}

// staged entries live until the batch ends, the janitor only
// sweeps in case a Reset is missed
const sweepInterval = 5 * time.Minute

type tombstone struct{}

type stagedCache struct {
	entries *cache.Cache
}

func newCache() Cache {
	return &stagedCache{
		entries: cache.New(cache.NoExpiration, sweepInterval),
	}
}

func (c *stagedCache) Lookup(key string) ([]byte, bool, bool) {
	obj, found := c.entries.Get(key)
	if !found {
		return nil, false, false
	}
	switch v := obj.(type) {
	case tombstone:
		return nil, true, true
	case []byte:
		return v, false, true
	default:
		return nil, false, false
	}
}

func (c *stagedCache) Stage(key string, value []byte) {
	c.entries.Set(key, value, cache.NoExpiration)
}

func (c *stagedCache) Tombstone(key string) {
	c.entries.Set(key, tombstone{}, cache.NoExpiration)
}

func (c *stagedCache) Reset() {
	c.entries.Flush()
}
