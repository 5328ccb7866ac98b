// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package contract

import (
	"sort"
)

// IndexKind - how the terminal of an index is stored
type IndexKind int

// index kinds
const (
	NonUniqueIndex IndexKind = iota
	UniqueIndex
	ContestedIndex
)

// String - name of the kind
func (k IndexKind) String() string {
	switch k {
	case NonUniqueIndex:
		return "non-unique"
	case UniqueIndex:
		return "unique"
	case ContestedIndex:
		return "contested"
	default:
		return "*unknown*"
	}
}

// IndexProperty - one property of an index and its sort direction
type IndexProperty struct {
	Name      string
	Ascending bool
}

// Index - a declared index of a document type
type Index struct {
	Name       string
	Properties []IndexProperty
	Unique     bool
	Contested  bool

	// free text shown to voters
	ContestDescription string
}

// Kind - the declared kind, before any null values are considered
func (i *Index) Kind() IndexKind {
	switch {
	case i.Contested:
		return ContestedIndex
	case i.Unique:
		return UniqueIndex
	default:
		return NonUniqueIndex
	}
}

// PropertyNames - names in index order
func (i *Index) PropertyNames() []string {
	names := make([]string, len(i.Properties))
	for j, p := range i.Properties {
		names[j] = p.Name
	}
	return names
}

// IndexLevel - one node of the tree of all indexes of a type
//
// the path from the root to a level spells a property name prefix
// shared by one or more indexes; Terminal is set when an index ends
// exactly at this level
type IndexLevel struct {
	Name     string
	Terminal *Index
	Children map[string]*IndexLevel
}

func newIndexLevel(name string) *IndexLevel {
	return &IndexLevel{
		Name:     name,
		Children: make(map[string]*IndexLevel),
	}
}

// ChildNames - sub levels in name order
func (l *IndexLevel) ChildNames() []string {
	names := make([]string, 0, len(l.Children))
	for name := range l.Children {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// HasTreeBelow - true if some index continues past this level
func (l *IndexLevel) HasTreeBelow() bool {
	return 0 != len(l.Children)
}

// build the level tree; false if two indexes end at the same level
func buildIndexLevels(indexes []*Index) (*IndexLevel, bool) {
	root := newIndexLevel("")
	for _, index := range indexes {
		level := root
		for _, p := range index.Properties {
			next, ok := level.Children[p.Name]
			if !ok {
				next = newIndexLevel(p.Name)
				level.Children[p.Name] = next
			}
			level = next
		}
		if nil != level.Terminal {
			return nil, false
		}
		level.Terminal = index
	}
	return root, true
}
