// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package grove

import (
	"bytes"
	"sort"

	"github.com/bitmark-inc/drived/util"
)

// references are followed at most this many times when proving
const maximumReferenceHops = 3

// proof entry kinds
const (
	entryHash     = 0x00
	entryRevealed = 0x01
)

// PathQuery - a query against the layer at Path
//
// a nil Query selects every key of the layer
type PathQuery struct {
	Path  [][]byte
	Query *Query
}

type proofLayer struct {
	path   [][]byte
	reveal map[string]bool
}

type proofBuilder struct {
	r      reader
	layers map[string]*proofLayer
}

func (b *proofBuilder) layer(path [][]byte) *proofLayer {
	k := string(EncodePath(path))
	l, ok := b.layers[k]
	if !ok {
		l = &proofLayer{
			path:   path,
			reveal: make(map[string]bool),
		}
		b.layers[k] = l
	}
	return l
}

func (b *proofBuilder) add(pq PathQuery, hops int) error {
	path := pq.Path

	// the chain of ancestors, stopping where the path ends
	for i := 0; i < len(path); i += 1 {
		b.layer(path[:i]).reveal[string(path[i])] = true
		e, err := b.r.get(layerOf(path[:i]), path[i])
		if nil != err {
			return err
		}
		if nil == e || !e.IsTree() {
			return nil
		}
	}

	l := b.layer(path)
	entries, err := b.r.entries(layerOf(path))
	if nil != err {
		return err
	}
	keys := make([][]byte, len(entries))
	byKey := make(map[string]Element, len(entries))
	for i, ke := range entries {
		keys[i] = ke.Key
		byKey[string(ke.Key)] = ke.Element
	}

	for _, k := range pq.Query.Select(keys) {
		l.reveal[string(k)] = true
		e := byKey[string(k)]
		if ReferenceElement == e.Type && hops < maximumReferenceHops {
			targetPath, targetKey := e.Ref.Resolve(path)
			err := b.add(PathQuery{Path: targetPath, Query: KeysQuery(targetKey)}, hops+1)
			if nil != err {
				return err
			}
		}
	}
	return nil
}

// Prove - proof of committed data for the queries
func (s *Store) Prove(queries ...PathQuery) ([]byte, error) {
	s.RLock()
	defer s.RUnlock()

	b := &proofBuilder{
		r:      s.committed(),
		layers: make(map[string]*proofLayer),
	}

	// the root layer is always present
	b.layer([][]byte{})

	for _, pq := range queries {
		if err := b.add(pq, 0); nil != err {
			return nil, err
		}
	}

	names := make([]string, 0, len(b.layers))
	for k := range b.layers {
		names = append(names, k)
	}
	sort.Strings(names)

	buffer := util.AppendVarint64(nil, uint64(len(names)))
	for _, name := range names {
		l := b.layers[name]
		entries, err := b.r.entries(layerOf(l.path))
		if nil != err {
			return nil, err
		}
		buffer = appendPath(buffer, l.path)
		buffer = util.AppendVarint64(buffer, uint64(len(entries)))
		for _, ke := range entries {
			buffer = util.AppendBytes(buffer, ke.Key)
			if l.reveal[string(ke.Key)] {
				buffer = append(buffer, entryRevealed)
				buffer = util.AppendBytes(buffer, ke.Element.Serialize())
			} else {
				h := ke.Element.Hash()
				buffer = append(buffer, entryHash)
				buffer = append(buffer, h[:]...)
			}
		}
	}
	return buffer, nil
}

// sortedKeys - ascending copy of keys
func sortedKeys(keys [][]byte) [][]byte {
	result := make([][]byte, len(keys))
	copy(result, keys)
	sort.Slice(result, func(i, j int) bool {
		return bytes.Compare(result[i], result[j]) < 0
	})
	return result
}
