// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package contract

import (
	"bytes"
	"encoding/json"
	"fmt"
	"sort"

	"github.com/bitmark-inc/drived/fault"
	"github.com/bitmark-inc/drived/identifier"
)

// TransferMode - whether documents can change owner
type TransferMode byte

// transfer modes
const (
	NotTransferable TransferMode = 0
	Transferable    TransferMode = 1
)

// DocumentType - the schema level description of one document kind
type DocumentType struct {
	Name             string
	Properties       []*Property // position order
	Indexes          []*Index
	DocumentsMutable bool
	CanBeDeleted     bool
	KeepsHistory     bool
	Transfer         TransferMode
	IndexTree        *IndexLevel

	byName map[string]*Property
}

// Contract - a loaded data contract
type Contract struct {
	ID            identifier.Identifier
	Owner         identifier.Identifier
	Version       uint32
	DocumentTypes map[string]*DocumentType
}

// Property - a declared property by name, nil if not declared
func (t *DocumentType) Property(name string) *Property {
	return t.byName[name]
}

// PropertyType - the type of a declared or system property
func (t *DocumentType) PropertyType(name string) (PropertyType, error) {
	if st, ok := systemProperties[name]; ok {
		return st, nil
	}
	p, ok := t.byName[name]
	if !ok {
		return "", fault.ErrInvalidPropertyName
	}
	return p.Type, nil
}

// Index - a declared index by name
func (t *DocumentType) Index(name string) (*Index, error) {
	for _, index := range t.Indexes {
		if name == index.Name {
			return index, nil
		}
	}
	return nil, fault.ErrIndexNotFound
}

// ContestedIndex - the contested index of this type, nil if none
func (t *DocumentType) ContestedIndex() *Index {
	for _, index := range t.Indexes {
		if index.Contested {
			return index
		}
	}
	return nil
}

// EncodeValue - canonical key of a value of the named property
func (t *DocumentType) EncodeValue(name string, value interface{}) ([]byte, error) {
	pt, err := t.PropertyType(name)
	if nil != err {
		return nil, err
	}
	return EncodeIndexValue(pt, value)
}

// DocumentType - a type of this contract by name
func (c *Contract) DocumentType(name string) (*DocumentType, error) {
	t, ok := c.DocumentTypes[name]
	if !ok {
		return nil, fault.ErrDocumentTypeNotFound
	}
	return t, nil
}

// TypeNames - document type names in order
func (c *Contract) TypeNames() []string {
	names := make([]string, 0, len(c.DocumentTypes))
	for name := range c.DocumentTypes {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// JSON form
type jsonProperty struct {
	Type      PropertyType `json:"type"`
	Position  int          `json:"position"`
	MaxLength int          `json:"maxLength,omitempty"`
}

type jsonContested struct {
	Description string `json:"description"`
}

type jsonIndex struct {
	Name       string              `json:"name"`
	Properties []map[string]string `json:"properties"`
	Unique     bool                `json:"unique,omitempty"`
	Contested  *jsonContested      `json:"contested,omitempty"`
}

type jsonDocumentType struct {
	DocumentsMutable     bool                     `json:"documentsMutable"`
	CanBeDeleted         bool                     `json:"canBeDeleted"`
	DocumentsKeepHistory bool                     `json:"documentsKeepHistory"`
	Transferable         TransferMode             `json:"transferable"`
	Properties           map[string]*jsonProperty `json:"properties"`
	Required             []string                 `json:"required,omitempty"`
	Indices              []*jsonIndex             `json:"indices,omitempty"`
}

type jsonContract struct {
	ID        identifier.Identifier        `json:"id"`
	OwnerID   identifier.Identifier        `json:"ownerId"`
	Version   uint32                       `json:"version"`
	Documents map[string]*jsonDocumentType `json:"documents"`
}

// Load - decode and validate a contract from JSON
func Load(buffer []byte) (*Contract, error) {
	var j jsonContract
	decoder := json.NewDecoder(bytes.NewReader(buffer))
	decoder.DisallowUnknownFields()
	if err := decoder.Decode(&j); nil != err {
		return nil, fmt.Errorf("%w: %s", fault.ErrInvalidContract, err)
	}
	if j.ID.IsZero() || 0 == len(j.Documents) {
		return nil, fault.ErrInvalidContract
	}

	c := &Contract{
		ID:            j.ID,
		Owner:         j.OwnerID,
		Version:       j.Version,
		DocumentTypes: make(map[string]*DocumentType, len(j.Documents)),
	}
	for name, jt := range j.Documents {
		t, err := newDocumentType(name, jt)
		if nil != err {
			return nil, fmt.Errorf("document type: %q: %w", name, err)
		}
		c.DocumentTypes[name] = t
	}
	return c, nil
}

func newDocumentType(name string, j *jsonDocumentType) (*DocumentType, error) {
	if "" == name {
		return nil, fault.ErrInvalidContract
	}
	t := &DocumentType{
		Name:             name,
		DocumentsMutable: j.DocumentsMutable,
		CanBeDeleted:     j.CanBeDeleted,
		KeepsHistory:     j.DocumentsKeepHistory,
		Transfer:         j.Transferable,
		byName:           make(map[string]*Property, len(j.Properties)),
	}

	positions := make(map[int]bool, len(j.Properties))
	for pName, jp := range j.Properties {
		if !validPropertyName(pName) {
			return nil, fmt.Errorf("%w: %q", fault.ErrInvalidPropertyName, pName)
		}
		if nil == jp || !jp.Type.valid() {
			return nil, fmt.Errorf("%w: %q", fault.ErrInvalidPropertyType, pName)
		}
		if positions[jp.Position] {
			return nil, fmt.Errorf("%w: duplicate position: %d", fault.ErrInvalidContract, jp.Position)
		}
		positions[jp.Position] = true
		p := &Property{
			Name:      pName,
			Type:      jp.Type,
			Position:  jp.Position,
			MaxLength: jp.MaxLength,
		}
		t.Properties = append(t.Properties, p)
		t.byName[pName] = p
	}
	sort.Slice(t.Properties, func(i, k int) bool {
		return t.Properties[i].Position < t.Properties[k].Position
	})

	for _, r := range j.Required {
		p, ok := t.byName[r]
		if !ok {
			return nil, fmt.Errorf("%w: required: %q", fault.ErrInvalidPropertyName, r)
		}
		p.Required = true
	}

	names := make(map[string]bool)
	for _, ji := range j.Indices {
		index, err := t.newIndex(ji)
		if nil != err {
			return nil, err
		}
		if names[index.Name] {
			return nil, fmt.Errorf("%w: %q", fault.ErrDuplicateIndexName, index.Name)
		}
		names[index.Name] = true
		t.Indexes = append(t.Indexes, index)
	}

	contested := 0
	for _, index := range t.Indexes {
		if index.Contested {
			contested += 1
		}
	}
	if contested > 1 {
		return nil, fault.ErrTooManyContestedIndexes
	}

	tree, ok := buildIndexLevels(t.Indexes)
	if !ok {
		return nil, fmt.Errorf("%w: two indexes on the same properties", fault.ErrInvalidIndexDefinition)
	}
	t.IndexTree = tree
	return t, nil
}

func (t *DocumentType) newIndex(j *jsonIndex) (*Index, error) {
	if nil == j || "" == j.Name || 0 == len(j.Properties) {
		return nil, fault.ErrInvalidIndexDefinition
	}
	index := &Index{
		Name:   j.Name,
		Unique: j.Unique,
	}
	if nil != j.Contested {
		if !j.Unique {
			return nil, fmt.Errorf("%w: contested index %q must be unique", fault.ErrInvalidIndexDefinition, j.Name)
		}
		index.Contested = true
		index.ContestDescription = j.Contested.Description
	}

	seen := make(map[string]bool)
	for _, m := range j.Properties {
		if 1 != len(m) {
			return nil, fault.ErrInvalidIndexDefinition
		}
		for name, direction := range m {
			pt, err := t.PropertyType(name)
			if nil != err {
				return nil, fmt.Errorf("index %q: %w: %q", j.Name, err, name)
			}
			if !pt.Indexable() || seen[name] {
				return nil, fmt.Errorf("%w: index %q property %q", fault.ErrInvalidIndexDefinition, j.Name, name)
			}
			seen[name] = true
			switch direction {
			case "asc":
				index.Properties = append(index.Properties, IndexProperty{Name: name, Ascending: true})
			case "desc":
				index.Properties = append(index.Properties, IndexProperty{Name: name})
			default:
				return nil, fmt.Errorf("%w: direction %q", fault.ErrInvalidIndexDefinition, direction)
			}
		}
	}
	return index, nil
}

// Serialize - canonical JSON, stored as the contract element
func (c *Contract) Serialize() []byte {
	j := jsonContract{
		ID:        c.ID,
		OwnerID:   c.Owner,
		Version:   c.Version,
		Documents: make(map[string]*jsonDocumentType, len(c.DocumentTypes)),
	}
	for name, t := range c.DocumentTypes {
		jt := &jsonDocumentType{
			DocumentsMutable:     t.DocumentsMutable,
			CanBeDeleted:         t.CanBeDeleted,
			DocumentsKeepHistory: t.KeepsHistory,
			Transferable:         t.Transfer,
			Properties:           make(map[string]*jsonProperty, len(t.Properties)),
		}
		for _, p := range t.Properties {
			jt.Properties[p.Name] = &jsonProperty{
				Type:      p.Type,
				Position:  p.Position,
				MaxLength: p.MaxLength,
			}
			if p.Required {
				jt.Required = append(jt.Required, p.Name)
			}
		}
		for _, index := range t.Indexes {
			ji := &jsonIndex{
				Name:   index.Name,
				Unique: index.Unique,
			}
			if index.Contested {
				ji.Contested = &jsonContested{Description: index.ContestDescription}
			}
			for _, p := range index.Properties {
				direction := "desc"
				if p.Ascending {
					direction = "asc"
				}
				ji.Properties = append(ji.Properties, map[string]string{p.Name: direction})
			}
			jt.Indices = append(jt.Indices, ji)
		}
		j.Documents[name] = jt
	}

	// only marshallable types are present
	buffer, err := json.Marshal(j)
	if nil != err {
		return nil
	}
	return buffer
}
