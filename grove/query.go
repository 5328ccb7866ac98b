// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package grove

import (
	"bytes"
)

// Query - selection of keys within one layer
//
// with Keys set only those keys are selected, otherwise the range
// Start..End is selected; a nil bound is open
type Query struct {
	Keys           [][]byte
	Start          []byte
	StartInclusive bool
	End            []byte
	EndInclusive   bool
	Limit          int // zero for no limit
	Descending     bool
}

// AllKeys - select every key of a layer
func AllKeys() *Query {
	return &Query{}
}

// KeysQuery - select exactly these keys
func KeysQuery(keys ...[]byte) *Query {
	return &Query{Keys: keys}
}

// matches - true if key is within the query, ignoring the limit
func (q *Query) matches(key []byte) bool {
	if nil == q {
		return true
	}
	if 0 != len(q.Keys) {
		for _, k := range q.Keys {
			if bytes.Equal(k, key) {
				return true
			}
		}
		return false
	}
	if nil != q.Start {
		c := bytes.Compare(key, q.Start)
		if c < 0 || (0 == c && !q.StartInclusive) {
			return false
		}
	}
	if nil != q.End {
		c := bytes.Compare(key, q.End)
		if c > 0 || (0 == c && !q.EndInclusive) {
			return false
		}
	}
	return true
}

// Select - the keys of an ascending key list chosen by the query, in
// query order and limited
func (q *Query) Select(keys [][]byte) [][]byte {
	result := [][]byte{}
	n := len(keys)
	for i := 0; i < n; i += 1 {
		k := keys[i]
		if nil != q && q.Descending {
			k = keys[n-1-i]
		}
		if !q.matches(k) {
			continue
		}
		result = append(result, k)
		if nil != q && q.Limit > 0 && len(result) >= q.Limit {
			break
		}
	}
	return result
}

func query(r reader, path [][]byte, q *Query) ([]KeyElement, error) {
	entries, err := r.entries(layerOf(path))
	if nil != err {
		return nil, err
	}
	keys := make([][]byte, len(entries))
	byKey := make(map[string]Element, len(entries))
	for i, ke := range entries {
		keys[i] = ke.Key
		byKey[string(ke.Key)] = ke.Element
	}
	selected := q.Select(keys)
	result := make([]KeyElement, 0, len(selected))
	for _, k := range selected {
		result = append(result, KeyElement{Key: k, Element: byKey[string(k)]})
	}
	return result, nil
}
