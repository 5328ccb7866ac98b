// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package document

import (
	"bytes"
	"encoding/json"
	"fmt"

	"golang.org/x/crypto/sha3"

	"github.com/bitmark-inc/drived/contract"
	"github.com/bitmark-inc/drived/fault"
	"github.com/bitmark-inc/drived/identifier"
)

// Document - one stored document
type Document struct {
	ID         identifier.Identifier
	Owner      identifier.Identifier
	Revision   uint64
	CreatedAt  uint64 // block time in milliseconds
	UpdatedAt  uint64
	Properties map[string]interface{}
}

// GenerateID - deterministic id of a new document
func GenerateID(contractID identifier.Identifier, owner identifier.Identifier, typeName string, entropy []byte) identifier.Identifier {
	h := sha3.New256()
	h.Write(contractID[:])
	h.Write(owner[:])
	h.Write([]byte(typeName))
	h.Write(entropy)
	var id identifier.Identifier
	copy(id[:], h.Sum(nil))
	return id
}

// Get - a property or system value, nil if not set
func (d *Document) Get(name string) interface{} {
	switch name {
	case contract.OwnerIDProperty:
		return d.Owner
	case contract.CreatedAtProperty:
		if 0 == d.CreatedAt {
			return nil
		}
		return int64(d.CreatedAt)
	case contract.UpdatedAtProperty:
		if 0 == d.UpdatedAt {
			return nil
		}
		return int64(d.UpdatedAt)
	}
	return d.Properties[name]
}

// Validate - every property is declared with a value of its type and
// every required property is present
func (d *Document) Validate(t *contract.DocumentType) error {
	for name, value := range d.Properties {
		p := t.Property(name)
		if nil == p {
			return fmt.Errorf("%w: %q", fault.ErrInvalidPropertyName, name)
		}
		if nil == value {
			continue
		}
		if p.Type.Indexable() {
			if _, err := contract.EncodeIndexValue(p.Type, value); nil != err {
				return fmt.Errorf("%w: %q", err, name)
			}
		}
	}
	for _, p := range t.Properties {
		if p.Required && nil == d.Properties[p.Name] {
			return fmt.Errorf("%w: %q", fault.ErrMissingRequiredProperty, p.Name)
		}
	}
	return nil
}

// Clone - copy that shares no top level maps with d
func (d *Document) Clone() *Document {
	c := *d
	c.Properties = make(map[string]interface{}, len(d.Properties))
	for k, v := range d.Properties {
		c.Properties[k] = v
	}
	return &c
}

// PropertiesFromJSON - typed property values of a JSON object
func PropertiesFromJSON(t *contract.DocumentType, buffer []byte) (map[string]interface{}, error) {
	raw := make(map[string]interface{})
	decoder := json.NewDecoder(bytes.NewReader(buffer))
	decoder.UseNumber()
	if err := decoder.Decode(&raw); nil != err {
		return nil, fmt.Errorf("%w: %s", fault.ErrInvalidPropertyValue, err)
	}

	properties := make(map[string]interface{}, len(raw))
	for name, value := range raw {
		p := t.Property(name)
		if nil == p {
			return nil, fmt.Errorf("%w: %q", fault.ErrInvalidPropertyName, name)
		}
		v, err := p.ConvertJSON(value)
		if nil != err {
			return nil, fmt.Errorf("property %q: %w", name, err)
		}
		properties[name] = v
	}
	return properties, nil
}
