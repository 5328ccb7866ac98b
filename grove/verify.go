// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package grove

import (
	"bytes"

	"github.com/bitmark-inc/drived/fault"
	"github.com/bitmark-inc/drived/merkle"
	"github.com/bitmark-inc/drived/util"
)

type verifiedLayer struct {
	keys     [][]byte
	hashes   map[string]merkle.Digest
	revealed map[string]Element
	hash     merkle.Digest
}

// VerifiedProof - a proof whose layers all chain up to its root
type VerifiedProof struct {
	root   merkle.Digest
	layers map[string]*verifiedLayer
}

// Verify - decode a proof and recompute its root
//
// this needs no access to any store; the returned root must still be
// checked against a trusted commitment by the caller
func Verify(proof []byte) (*VerifiedProof, error) {
	r := util.NewReader(proof)
	paths := make(map[string][][]byte)
	p := &VerifiedProof{
		layers: make(map[string]*verifiedLayer),
	}

	layerCount := r.Count()
	for i := 0; i < layerCount; i += 1 {
		path := readPath(r)
		entryCount := r.Count()
		if nil != r.Err() {
			return nil, fault.ErrInvalidProof
		}

		l := &verifiedLayer{
			keys:     make([][]byte, 0, entryCount),
			hashes:   make(map[string]merkle.Digest, entryCount),
			revealed: make(map[string]Element),
		}
		leaves := make([]merkle.Digest, 0, entryCount)
		for j := 0; j < entryCount; j += 1 {
			key := r.Bytes()
			var h merkle.Digest
			switch r.Byte() {
			case entryHash:
				copy(h[:], r.Fixed(merkle.DigestLength))
			case entryRevealed:
				e, err := DeserializeElement(r.Bytes())
				if nil != err {
					return nil, fault.ErrInvalidProof
				}
				l.revealed[string(key)] = e
				h = e.Hash()
			default:
				return nil, fault.ErrInvalidProof
			}
			if nil != r.Err() {
				return nil, fault.ErrInvalidProof
			}
			if n := len(l.keys); n > 0 && bytes.Compare(l.keys[n-1], key) >= 0 {
				return nil, fault.ErrInvalidProof
			}
			l.keys = append(l.keys, key)
			l.hashes[string(key)] = h
			leaves = append(leaves, leafHash(key, h))
		}
		l.hash = merkle.Root(leaves)

		name := string(EncodePath(path))
		if _, duplicate := p.layers[name]; duplicate {
			return nil, fault.ErrInvalidProof
		}
		p.layers[name] = l
		paths[name] = path
	}
	if err := r.Finish(); nil != err {
		return nil, fault.ErrInvalidProof
	}

	rootLayer, ok := p.layers[string(EncodePath(nil))]
	if !ok {
		return nil, fault.ErrInvalidProof
	}
	p.root = rootLayer.hash

	// every other layer must be committed to by a revealed parent tree
	for name, path := range paths {
		if 0 == len(path) {
			continue
		}
		n := len(path) - 1
		parent, ok := p.layers[string(EncodePath(path[:n]))]
		if !ok {
			return nil, fault.ErrInvalidProof
		}
		e, ok := parent.revealed[string(path[n])]
		if !ok || !e.IsTree() || e.Root != p.layers[name].hash {
			return nil, fault.ErrInvalidProof
		}
	}
	return p, nil
}

// RootHash - the recomputed root commitment
func (p *VerifiedProof) RootHash() merkle.Digest {
	return p.root
}

// locate the layer at path
//
// returns absent = true when the proof shows that the path does not
// exist; returns ErrIncompleteProof when it shows neither
func (p *VerifiedProof) walk(path [][]byte) (*verifiedLayer, bool, error) {
	for i := 0; i <= len(path); i += 1 {
		l, ok := p.layers[string(EncodePath(path[:i]))]
		if !ok {
			return nil, false, fault.ErrIncompleteProof
		}
		if i == len(path) {
			return l, false, nil
		}
		key := string(path[i])
		if _, present := l.hashes[key]; !present {
			return nil, true, nil
		}
		e, ok := l.revealed[key]
		if !ok {
			return nil, false, fault.ErrIncompleteProof
		}
		if !e.IsTree() {
			return nil, true, nil
		}
	}
	return nil, false, fault.ErrCorruptedCodeExecution
}

// Get - the proven element at path/key, nil if proven absent
func (p *VerifiedProof) Get(path [][]byte, key []byte) (*Element, error) {
	l, absent, err := p.walk(path)
	if nil != err || absent {
		return nil, err
	}
	if _, present := l.hashes[string(key)]; !present {
		return nil, nil
	}
	e, ok := l.revealed[string(key)]
	if !ok {
		return nil, fault.ErrIncompleteProof
	}
	return &e, nil
}

// GetResolved - like Get but follows references to their target
func (p *VerifiedProof) GetResolved(path [][]byte, key []byte) (*Element, error) {
	for hops := 0; hops <= maximumReferenceHops; hops += 1 {
		e, err := p.Get(path, key)
		if nil != err || nil == e {
			return e, err
		}
		if ReferenceElement != e.Type {
			return e, nil
		}
		path, key = e.Ref.Resolve(path)
	}
	return nil, fault.ErrIncompleteProof
}

// Query - the proven entries of the layer at path selected by q
//
// every selected key must be revealed, so a prover cannot hide a
// matching entry
func (p *VerifiedProof) Query(path [][]byte, q *Query) ([]KeyElement, error) {
	l, absent, err := p.walk(path)
	if nil != err {
		return nil, err
	}
	if absent {
		return []KeyElement{}, nil
	}
	selected := q.Select(l.keys)
	result := make([]KeyElement, 0, len(selected))
	for _, k := range selected {
		e, ok := l.revealed[string(k)]
		if !ok {
			return nil, fault.ErrIncompleteProof
		}
		result = append(result, KeyElement{Key: k, Element: e})
	}
	return result, nil
}

// Keys - every key of a proven layer, revealed or not
func (p *VerifiedProof) Keys(path [][]byte) ([][]byte, error) {
	l, absent, err := p.walk(path)
	if nil != err {
		return nil, err
	}
	if absent {
		return [][]byte{}, nil
	}
	return sortedKeys(l.keys), nil
}
