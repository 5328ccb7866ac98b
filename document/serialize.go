// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package document

import (
	"math"
	"sort"

	"github.com/bitmark-inc/drived/fault"
	"github.com/bitmark-inc/drived/identifier"
	"github.com/bitmark-inc/drived/util"
)

// serialization format version
const formatVersion = 0

// value tags
const (
	tagNull       = 0
	tagString     = 1
	tagInteger    = 2
	tagNumber     = 3
	tagBoolean    = 4
	tagIdentifier = 5
	tagBytes      = 6
	tagArray      = 7
	tagObject     = 8
)

// Serialize - canonical byte form
//
// properties are written in name order, nested objects likewise
func (d *Document) Serialize() ([]byte, error) {
	buffer := util.AppendVarint64(nil, formatVersion)
	buffer = append(buffer, d.ID[:]...)
	buffer = append(buffer, d.Owner[:]...)
	buffer = util.AppendVarint64(buffer, d.Revision)
	buffer = util.AppendUint64(buffer, d.CreatedAt)
	buffer = util.AppendUint64(buffer, d.UpdatedAt)
	return appendObject(buffer, d.Properties)
}

func sortedNames(m map[string]interface{}) []string {
	names := make([]string, 0, len(m))
	for name := range m {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

func appendObject(buffer []byte, m map[string]interface{}) ([]byte, error) {
	buffer = util.AppendVarint64(buffer, uint64(len(m)))
	for _, name := range sortedNames(m) {
		buffer = util.AppendBytes(buffer, []byte(name))
		var err error
		buffer, err = appendValue(buffer, m[name])
		if nil != err {
			return nil, err
		}
	}
	return buffer, nil
}

func appendValue(buffer []byte, value interface{}) ([]byte, error) {
	switch v := value.(type) {
	case nil:
		return append(buffer, tagNull), nil
	case string:
		buffer = append(buffer, tagString)
		return util.AppendBytes(buffer, []byte(v)), nil
	case int64:
		buffer = append(buffer, tagInteger)
		return util.AppendUint64(buffer, uint64(v)), nil
	case float64:
		buffer = append(buffer, tagNumber)
		return util.AppendUint64(buffer, math.Float64bits(v)), nil
	case bool:
		buffer = append(buffer, tagBoolean)
		if v {
			return append(buffer, 1), nil
		}
		return append(buffer, 0), nil
	case identifier.Identifier:
		buffer = append(buffer, tagIdentifier)
		return append(buffer, v[:]...), nil
	case []byte:
		buffer = append(buffer, tagBytes)
		return util.AppendBytes(buffer, v), nil
	case []interface{}:
		buffer = append(buffer, tagArray)
		buffer = util.AppendVarint64(buffer, uint64(len(v)))
		for _, item := range v {
			var err error
			buffer, err = appendValue(buffer, item)
			if nil != err {
				return nil, err
			}
		}
		return buffer, nil
	case map[string]interface{}:
		buffer = append(buffer, tagObject)
		return appendObject(buffer, v)
	}
	return nil, fault.ErrInvalidPropertyValue
}

// Deserialize - inverse of Serialize
func Deserialize(buffer []byte) (*Document, error) {
	r := util.NewReader(buffer)
	if formatVersion != r.Varint64() {
		return nil, fault.ErrCorruptedSerialization
	}
	d := &Document{}
	copy(d.ID[:], r.Fixed(identifier.Length))
	copy(d.Owner[:], r.Fixed(identifier.Length))
	d.Revision = r.Varint64()
	d.CreatedAt = r.Uint64()
	d.UpdatedAt = r.Uint64()
	d.Properties = readObject(r, 0)
	if err := r.Finish(); nil != err {
		return nil, fault.ErrCorruptedSerialization
	}
	return d, nil
}

// bound on nesting so hostile input cannot exhaust the stack
const maximumDepth = 32

func readObject(r *util.Reader, depth int) map[string]interface{} {
	n := r.Count()
	m := make(map[string]interface{}, n)
	for i := 0; i < n && nil == r.Err(); i += 1 {
		name := string(r.Bytes())
		m[name] = readValue(r, depth)
	}
	return m
}

func readValue(r *util.Reader, depth int) interface{} {
	if depth > maximumDepth {
		r.Fail(fault.ErrCorruptedSerialization)
		return nil
	}
	switch r.Byte() {
	case tagNull:
		return nil
	case tagString:
		return string(r.Bytes())
	case tagInteger:
		return int64(r.Uint64())
	case tagNumber:
		return math.Float64frombits(r.Uint64())
	case tagBoolean:
		return 0 != r.Byte()
	case tagIdentifier:
		var id identifier.Identifier
		copy(id[:], r.Fixed(identifier.Length))
		return id
	case tagBytes:
		return r.Bytes()
	case tagArray:
		n := r.Count()
		a := make([]interface{}, 0, n)
		for i := 0; i < n && nil == r.Err(); i += 1 {
			a = append(a, readValue(r, depth+1))
		}
		return a
	case tagObject:
		return readObject(r, depth+1)
	default:
		r.Fail(fault.ErrCorruptedSerialization)
		return nil
	}
}
