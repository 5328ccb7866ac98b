// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package grove

import (
	"bytes"
	"sort"

	"github.com/syndtr/goleveldb/leveldb"
	ldb_util "github.com/syndtr/goleveldb/leveldb/util"

	"github.com/bitmark-inc/drived/storage"
)

// KeyElement - one entry of a layer
type KeyElement struct {
	Key     []byte
	Element Element
}

// source of layer data
type reader interface {
	get(layer layerID, key []byte) (*Element, error)
	entries(layer layerID) ([]KeyElement, error)
}

// committed data in the database
type committedReader struct {
	access storage.Access
}

func (c committedReader) get(layer layerID, key []byte) (*Element, error) {
	value, err := c.access.Get(elementKey(layer, key))
	if leveldb.ErrNotFound == err {
		return nil, nil
	}
	if nil != err {
		return nil, err
	}
	e, err := DeserializeElement(value)
	if nil != err {
		return nil, err
	}
	return &e, nil
}

func (c committedReader) entries(layer layerID) ([]KeyElement, error) {
	prefix := layerPrefix(layer)
	iter := c.access.Iterator(ldb_util.BytesPrefix(prefix))
	defer iter.Release()

	result := []KeyElement{}
	for iter.Next() {
		e, err := DeserializeElement(iter.Value())
		if nil != err {
			return nil, err
		}
		key := make([]byte, len(iter.Key())-len(prefix))
		copy(key, iter.Key()[len(prefix):])
		result = append(result, KeyElement{Key: key, Element: e})
	}
	return result, iter.Error()
}

// uncommitted changes; a nil element marks a deletion
type overlay struct {
	layers map[layerID]map[string]*Element
}

func newOverlay() *overlay {
	return &overlay{
		layers: make(map[layerID]map[string]*Element),
	}
}

func (o *overlay) set(layer layerID, key []byte, e *Element) {
	l, ok := o.layers[layer]
	if !ok {
		l = make(map[string]*Element)
		o.layers[layer] = l
	}
	l[string(key)] = e
}

func (o *overlay) lookup(layer layerID, key []byte) (*Element, bool) {
	l, ok := o.layers[layer]
	if !ok {
		return nil, false
	}
	e, ok := l[string(key)]
	return e, ok
}

// move all changes of other on top of o
func (o *overlay) merge(other *overlay) {
	for layer, l := range other.layers {
		for key, e := range l {
			o.set(layer, []byte(key), e)
		}
	}
}

// changes layered over a parent reader
type overlayReader struct {
	parent reader
	ov     *overlay
}

func (r overlayReader) get(layer layerID, key []byte) (*Element, error) {
	if e, ok := r.ov.lookup(layer, key); ok {
		return e, nil
	}
	return r.parent.get(layer, key)
}

func (r overlayReader) entries(layer layerID) ([]KeyElement, error) {
	base, err := r.parent.entries(layer)
	if nil != err {
		return nil, err
	}
	changes, ok := r.ov.layers[layer]
	if !ok || 0 == len(changes) {
		return base, nil
	}

	result := make([]KeyElement, 0, len(base)+len(changes))
	for _, ke := range base {
		if _, changed := changes[string(ke.Key)]; !changed {
			result = append(result, ke)
		}
	}
	for key, e := range changes {
		if nil != e {
			result = append(result, KeyElement{Key: []byte(key), Element: *e})
		}
	}
	sort.Slice(result, func(i, j int) bool {
		return bytes.Compare(result[i].Key, result[j].Key) < 0
	})
	return result, nil
}
