// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package grove

import (
	"bytes"

	"github.com/bitmark-inc/drived/merkle"
	"github.com/bitmark-inc/drived/util"
)

// storage prefixes
const (
	elementPrefix = 'E'
	rootPrefix    = 'R'
	auxPrefix     = 'A'
)

var rootKey = []byte{rootPrefix}

// layer identifier: digest of the encoded path
type layerID = merkle.Digest

func appendPath(buffer []byte, path [][]byte) []byte {
	buffer = util.AppendVarint64(buffer, uint64(len(path)))
	for _, segment := range path {
		buffer = util.AppendBytes(buffer, segment)
	}
	return buffer
}

func readPath(r *util.Reader) [][]byte {
	n := r.Count()
	path := make([][]byte, 0, n)
	for i := 0; i < n; i += 1 {
		path = append(path, r.Bytes())
	}
	return path
}

// EncodePath - canonical byte form of a path
func EncodePath(path [][]byte) []byte {
	return appendPath(nil, path)
}

func layerOf(path [][]byte) layerID {
	return merkle.NewDigest(EncodePath(path))
}

func elementKey(layer layerID, key []byte) []byte {
	b := make([]byte, 0, 1+merkle.DigestLength+len(key))
	b = append(b, elementPrefix)
	b = append(b, layer[:]...)
	return append(b, key...)
}

func layerPrefix(layer layerID) []byte {
	return elementKey(layer, nil)
}

// Extend - a new path with extra segments appended
func Extend(path [][]byte, segments ...[]byte) [][]byte {
	p := make([][]byte, 0, len(path)+len(segments))
	p = append(p, path...)
	return append(p, segments...)
}

// PathEqual - segment by segment comparison
func PathEqual(a [][]byte, b [][]byte) bool {
	if len(a) != len(b) {
		return false
	}
	for i := range a {
		if !bytes.Equal(a[i], b[i]) {
			return false
		}
	}
	return true
}

func leafHash(key []byte, elementHash merkle.Digest) merkle.Digest {
	return merkle.Sum(util.ToVarint64(uint64(len(key))), key, elementHash[:])
}
