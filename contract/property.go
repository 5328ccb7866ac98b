// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package contract

import (
	"encoding/hex"
	"encoding/json"
	"math"
	"strings"

	"github.com/bitmark-inc/drived/fault"
	"github.com/bitmark-inc/drived/identifier"
)

// PropertyType - declared type of a document property
type PropertyType string

// property types
const (
	StringProperty     PropertyType = "string"
	IntegerProperty    PropertyType = "integer"
	NumberProperty     PropertyType = "number"
	BooleanProperty    PropertyType = "boolean"
	IdentifierProperty PropertyType = "identifier"
	BytesProperty      PropertyType = "bytes"
	ArrayProperty      PropertyType = "array"
	ObjectProperty     PropertyType = "object"
)

// system properties usable in indexes
const (
	OwnerIDProperty   = "$ownerId"
	CreatedAtProperty = "$createdAt"
	UpdatedAtProperty = "$updatedAt"
)

var systemProperties = map[string]PropertyType{
	OwnerIDProperty:   IdentifierProperty,
	CreatedAtProperty: IntegerProperty,
	UpdatedAtProperty: IntegerProperty,
}

// Property - one declared property
type Property struct {
	Name      string
	Type      PropertyType
	Position  int
	Required  bool
	MaxLength int // strings and bytes, zero for unlimited
}

// Indexable - scalar types that can form part of an index
func (t PropertyType) Indexable() bool {
	switch t {
	case StringProperty, IntegerProperty, NumberProperty, BooleanProperty, IdentifierProperty, BytesProperty:
		return true
	}
	return false
}

func (t PropertyType) valid() bool {
	return t.Indexable() || ArrayProperty == t || ObjectProperty == t
}

// property names that would collide with the reserved keys of a
// value layer, or with the system names
func validPropertyName(name string) bool {
	if "" == name || "\x00" == name || "\x01" == name {
		return false
	}
	return !strings.HasPrefix(name, "$")
}

// ConvertJSON - turn a value decoded from JSON (with UseNumber) into
// the Go value stored for this property type
func (p *Property) ConvertJSON(value interface{}) (interface{}, error) {
	if nil == value {
		return nil, nil
	}
	return convertJSON(p.Type, p.MaxLength, value)
}

func convertJSON(t PropertyType, maxLength int, value interface{}) (interface{}, error) {
	switch t {
	case StringProperty:
		s, ok := value.(string)
		if !ok || (maxLength > 0 && len(s) > maxLength) {
			return nil, fault.ErrInvalidPropertyValue
		}
		return s, nil

	case IntegerProperty:
		n, ok := value.(json.Number)
		if !ok {
			return nil, fault.ErrInvalidPropertyValue
		}
		i, err := n.Int64()
		if nil != err {
			return nil, fault.ErrInvalidPropertyValue
		}
		return i, nil

	case NumberProperty:
		n, ok := value.(json.Number)
		if !ok {
			return nil, fault.ErrInvalidPropertyValue
		}
		f, err := n.Float64()
		if nil != err || math.IsNaN(f) {
			return nil, fault.ErrInvalidPropertyValue
		}
		return f, nil

	case BooleanProperty:
		b, ok := value.(bool)
		if !ok {
			return nil, fault.ErrInvalidPropertyValue
		}
		return b, nil

	case IdentifierProperty:
		s, ok := value.(string)
		if !ok {
			return nil, fault.ErrInvalidPropertyValue
		}
		id, err := identifier.FromString(s)
		if nil != err {
			return nil, err
		}
		return id, nil

	case BytesProperty:
		s, ok := value.(string)
		if !ok {
			return nil, fault.ErrInvalidPropertyValue
		}
		b, err := hex.DecodeString(s)
		if nil != err || (maxLength > 0 && len(b) > maxLength) {
			return nil, fault.ErrInvalidPropertyValue
		}
		return b, nil

	case ArrayProperty, ObjectProperty:
		return genericJSON(value)
	}
	return nil, fault.ErrInvalidPropertyType
}

// nested values keep their JSON shape with numbers made concrete
func genericJSON(value interface{}) (interface{}, error) {
	switch v := value.(type) {
	case nil, string, bool:
		return v, nil
	case json.Number:
		if i, err := v.Int64(); nil == err {
			return i, nil
		}
		f, err := v.Float64()
		if nil != err {
			return nil, fault.ErrInvalidPropertyValue
		}
		return f, nil
	case []interface{}:
		result := make([]interface{}, len(v))
		for i, item := range v {
			c, err := genericJSON(item)
			if nil != err {
				return nil, err
			}
			result[i] = c
		}
		return result, nil
	case map[string]interface{}:
		result := make(map[string]interface{}, len(v))
		for k, item := range v {
			c, err := genericJSON(item)
			if nil != err {
				return nil, err
			}
			result[k] = c
		}
		return result, nil
	}
	return nil, fault.ErrInvalidPropertyValue
}
