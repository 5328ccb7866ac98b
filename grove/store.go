// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package grove

import (
	"sync"

	"github.com/bitmark-inc/logger"
	"github.com/syndtr/goleveldb/leveldb"

	"github.com/bitmark-inc/drived/fault"
	"github.com/bitmark-inc/drived/merkle"
	"github.com/bitmark-inc/drived/storage"
)

// Store - committed state and the single open transaction
type Store struct {
	sync.RWMutex
	log  *logger.L
	db   *storage.Database
	root merkle.Digest
	open bool
}

// New - attach to a database, reading the committed root
func New(db *storage.Database) (*Store, error) {
	if nil == db {
		return nil, fault.ErrDatabaseIsNotSet
	}
	s := &Store{
		log: logger.New("grove"),
		db:  db,
	}
	value, err := db.Get(rootKey)
	switch {
	case leveldb.ErrNotFound == err:
		// empty store
	case nil != err:
		return nil, err
	default:
		if err := merkle.DigestFromBytes(&s.root, value); nil != err {
			return nil, fault.ErrCorruptedSerialization
		}
	}
	s.log.Infof("root: %s", s.root)
	return s, nil
}

// RootHash - the committed root commitment
func (s *Store) RootHash() merkle.Digest {
	s.RLock()
	defer s.RUnlock()
	return s.root
}

// Begin - open the transaction
func (s *Store) Begin() (*Transaction, error) {
	s.Lock()
	defer s.Unlock()

	if s.open {
		return nil, fault.ErrTransactionAlreadyInUse
	}
	s.open = true
	return &Transaction{
		store: s,
		ov:    newOverlay(),
		aux:   make(map[string][]byte),
		root:  s.root,
	}, nil
}

func (s *Store) release() {
	s.Lock()
	s.open = false
	s.Unlock()
}

func (s *Store) commit(tx *Transaction) error {
	s.Lock()
	defer s.Unlock()
	defer func() { s.open = false }()

	if err := s.db.Begin(); nil != err {
		return err
	}
	for layer, l := range tx.ov.layers {
		for key, e := range l {
			k := elementKey(layer, []byte(key))
			if nil == e {
				s.db.Delete(k)
			} else {
				s.db.Put(k, e.Serialize())
			}
		}
	}
	for key, value := range tx.aux {
		s.db.Put(append([]byte{auxPrefix}, key...), value)
	}
	s.db.Put(rootKey, tx.root[:])
	records := s.db.Pending()

	if err := s.db.Commit(); nil != err {
		s.db.Abort()
		s.log.Errorf("commit of %d records failed: %s", records, err)
		return err
	}
	s.root = tx.root
	s.log.Debugf("committed root: %s  records: %d", s.root, records)
	return nil
}

func (s *Store) committed() reader {
	return committedReader{access: s.db}
}

// Get - committed element at path/key, nil if absent
func (s *Store) Get(path [][]byte, key []byte) (*Element, error) {
	s.RLock()
	defer s.RUnlock()
	return s.committed().get(layerOf(path), key)
}

// Query - committed entries of the layer at path selected by q
func (s *Store) Query(path [][]byte, q *Query) ([]KeyElement, error) {
	s.RLock()
	defer s.RUnlock()
	return query(s.committed(), path, q)
}

// GetAux - committed data stored outside the authenticated tree
func (s *Store) GetAux(key []byte) ([]byte, error) {
	s.RLock()
	defer s.RUnlock()
	value, err := s.db.Get(append([]byte{auxPrefix}, key...))
	if leveldb.ErrNotFound == err {
		return nil, nil
	}
	return value, err
}
