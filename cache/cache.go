// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package cache

import (
	gocache "github.com/patrickmn/go-cache"

	"github.com/bitmark-inc/drived/contract"
	"github.com/bitmark-inc/drived/identifier"
)

// Cache - contracts by id
type Cache struct {
	contracts *gocache.Cache
}

// Snapshot - read only view of a cache at one moment
type Snapshot struct {
	contracts map[identifier.Identifier]*contract.Contract
}

// New - empty cache; contracts never expire
func New() *Cache {
	return &Cache{
		contracts: gocache.New(gocache.NoExpiration, 0),
	}
}

// Put - add or replace a contract
func (c *Cache) Put(ct *contract.Contract) {
	c.contracts.Set(ct.ID.String(), ct, gocache.NoExpiration)
}

// Get - a contract, nil if not loaded
func (c *Cache) Get(id identifier.Identifier) *contract.Contract {
	if v, found := c.contracts.Get(id.String()); found {
		return v.(*contract.Contract)
	}
	return nil
}

// Delete - forget a contract
func (c *Cache) Delete(id identifier.Identifier) {
	c.contracts.Delete(id.String())
}

// Len - number of loaded contracts
func (c *Cache) Len() int {
	return c.contracts.ItemCount()
}

// Snapshot - every contract loaded now
func (c *Cache) Snapshot() *Snapshot {
	items := c.contracts.Items()
	s := &Snapshot{
		contracts: make(map[identifier.Identifier]*contract.Contract, len(items)),
	}
	for _, item := range items {
		ct := item.Object.(*contract.Contract)
		s.contracts[ct.ID] = ct
	}
	return s
}

// DataContract - a contract of the snapshot, nil if unknown
func (s *Snapshot) DataContract(id identifier.Identifier) (*contract.Contract, error) {
	return s.contracts[id], nil
}

// Len - number of contracts in the snapshot
func (s *Snapshot) Len() int {
	return len(s.contracts)
}
