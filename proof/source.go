// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package proof

import (
	"errors"
	"fmt"

	"github.com/bitmark-inc/drived/fault"
	"github.com/bitmark-inc/drived/grove"
	"github.com/bitmark-inc/drived/merkle"
)

// references are followed at most this many times
const maximumReferenceHops = 3

// Source - read access to a grove
//
// satisfied by *grove.Store, *grove.Transaction and *grove.VerifiedProof
type Source interface {
	Get(path [][]byte, key []byte) (*grove.Element, error)
	Query(path [][]byte, q *grove.Query) ([]grove.KeyElement, error)
}

// Recorder - a Source that remembers every read
//
// the recorded queries are exactly what a prover must reveal for a
// verifier to repeat the same reads
type Recorder struct {
	source  Source
	queries []grove.PathQuery
}

// NewRecorder - record reads made through s
func NewRecorder(s Source) *Recorder {
	return &Recorder{
		source: s,
	}
}

// Get - read one key and record it
func (r *Recorder) Get(path [][]byte, key []byte) (*grove.Element, error) {
	r.queries = append(r.queries, grove.PathQuery{
		Path:  grove.Extend(path),
		Query: grove.KeysQuery(key),
	})
	return r.source.Get(path, key)
}

// Query - read a layer and record the query
func (r *Recorder) Query(path [][]byte, q *grove.Query) ([]grove.KeyElement, error) {
	r.queries = append(r.queries, grove.PathQuery{
		Path:  grove.Extend(path),
		Query: q,
	})
	return r.source.Query(path, q)
}

// Queries - everything read so far
func (r *Recorder) Queries() []grove.PathQuery {
	return r.queries
}

// Verify - check a grove proof and decode it with read
//
// returns the recomputed root so that the caller can compare it with
// a signed commitment
func Verify[T any](proofBytes []byte, read func(Source) (T, error)) (merkle.Digest, T, error) {
	var zero T

	p, err := grove.Verify(proofBytes)
	if nil != err {
		return merkle.Digest{}, zero, err
	}

	result, err := read(p)
	if nil != err {
		// a corrupted layout inside a proof is the prover's fault
		if fault.IsErrCorrupted(err) {
			return merkle.Digest{}, zero, fmt.Errorf("%w: %v", fault.ErrInvalidProof, err)
		}
		return merkle.Digest{}, zero, err
	}
	return p.RootHash(), result, nil
}

// follow references from path/key to the element they designate
func resolve(src Source, path [][]byte, key []byte) (*grove.Element, error) {
	for hops := 0; hops <= maximumReferenceHops; hops += 1 {
		e, err := src.Get(path, key)
		if nil != err || nil == e {
			return e, err
		}
		if grove.ReferenceElement != e.Type {
			return e, nil
		}
		path, key = e.Ref.Resolve(path)
	}
	return nil, fault.ErrCorruptedReference
}

// get an item's value, nil if absent
func itemValue(src Source, path [][]byte, key []byte) ([]byte, error) {
	e, err := resolve(src, path, key)
	if nil != err || nil == e {
		return nil, err
	}
	if grove.ItemElement != e.Type {
		return nil, fault.ErrCorruptedElementType
	}
	return e.Value, nil
}

// get a sum item's value, nil if absent
func sumValue(src Source, path [][]byte, key []byte) (*int64, error) {
	e, err := src.Get(path, key)
	if nil != err || nil == e {
		return nil, err
	}
	if grove.SumItemElement != e.Type {
		return nil, fault.ErrCorruptedElementType
	}
	value := e.Sum
	return &value, nil
}

// IsIncomplete - the error means the proof lacked a required key
func IsIncomplete(err error) bool {
	return errors.Is(err, fault.ErrIncompleteProof)
}
