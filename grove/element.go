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

// ElementType - kind of stored element
type ElementType byte

// element kinds, the values are part of the serialization
const (
	ItemElement      ElementType = 0
	ReferenceElement ElementType = 1
	TreeElement      ElementType = 2
	SumItemElement   ElementType = 3
	SumTreeElement   ElementType = 4
)

// ReferenceType - how a reference names its target
type ReferenceType byte

// reference kinds
const (
	AbsoluteReference ReferenceType = 0
	SiblingReference  ReferenceType = 1
)

// Reference - pointer to another element
type Reference struct {
	Type ReferenceType
	Path [][]byte // only for AbsoluteReference
	Key  []byte
}

// Element - a stored value
type Element struct {
	Type  ElementType
	Value []byte        // Item
	Sum   int64         // SumItem value or SumTree aggregate
	Ref   Reference     // Reference
	Root  merkle.Digest // Tree and SumTree
	Flags []byte
}

// NewItem - plain value
func NewItem(value []byte, flags []byte) Element {
	return Element{Type: ItemElement, Value: value, Flags: flags}
}

// NewSumItem - value counted by the enclosing sum tree
func NewSumItem(value int64, flags []byte) Element {
	return Element{Type: SumItemElement, Sum: value, Flags: flags}
}

// NewReference - pointer to an element at an absolute path
func NewReference(path [][]byte, key []byte, flags []byte) Element {
	return Element{
		Type:  ReferenceElement,
		Ref:   Reference{Type: AbsoluteReference, Path: path, Key: key},
		Flags: flags,
	}
}

// NewSiblingReference - pointer to another key of the same layer
func NewSiblingReference(key []byte, flags []byte) Element {
	return Element{
		Type:  ReferenceElement,
		Ref:   Reference{Type: SiblingReference, Key: key},
		Flags: flags,
	}
}

// NewTree - empty subtree
func NewTree(flags []byte) Element {
	return Element{Type: TreeElement, Flags: flags}
}

// NewSumTree - empty subtree that totals its sum items
func NewSumTree(flags []byte) Element {
	return Element{Type: SumTreeElement, Flags: flags}
}

// IsTree - true for Tree and SumTree
func (e Element) IsTree() bool {
	return TreeElement == e.Type || SumTreeElement == e.Type
}

// Resolve - the absolute location of a reference found at path
func (r Reference) Resolve(path [][]byte) ([][]byte, []byte) {
	if SiblingReference == r.Type {
		return path, r.Key
	}
	return r.Path, r.Key
}

// Serialize - canonical byte form, also the input of the element hash
func (e Element) Serialize() []byte {
	buffer := []byte{byte(e.Type)}

	switch e.Type {
	case ItemElement:
		buffer = util.AppendBytes(buffer, e.Value)
	case ReferenceElement:
		buffer = append(buffer, byte(e.Ref.Type))
		if AbsoluteReference == e.Ref.Type {
			buffer = appendPath(buffer, e.Ref.Path)
		}
		buffer = util.AppendBytes(buffer, e.Ref.Key)
	case TreeElement:
		buffer = append(buffer, e.Root[:]...)
	case SumItemElement:
		buffer = util.AppendUint64(buffer, uint64(e.Sum))
	case SumTreeElement:
		buffer = append(buffer, e.Root[:]...)
		buffer = util.AppendUint64(buffer, uint64(e.Sum))
	}
	return util.AppendBytes(buffer, e.Flags)
}

// DeserializeElement - inverse of Serialize
func DeserializeElement(buffer []byte) (Element, error) {
	r := util.NewReader(buffer)
	e := Element{Type: ElementType(r.Byte())}

	switch e.Type {
	case ItemElement:
		e.Value = r.Bytes()
	case ReferenceElement:
		e.Ref.Type = ReferenceType(r.Byte())
		switch e.Ref.Type {
		case AbsoluteReference:
			e.Ref.Path = readPath(r)
		case SiblingReference:
		default:
			return Element{}, fault.ErrCorruptedElementType
		}
		e.Ref.Key = r.Bytes()
	case TreeElement:
		copy(e.Root[:], r.Fixed(merkle.DigestLength))
	case SumItemElement:
		e.Sum = int64(r.Uint64())
	case SumTreeElement:
		copy(e.Root[:], r.Fixed(merkle.DigestLength))
		e.Sum = int64(r.Uint64())
	default:
		return Element{}, fault.ErrCorruptedElementType
	}
	e.Flags = r.Bytes()

	if err := r.Finish(); nil != err {
		return Element{}, fault.ErrCorruptedSerialization
	}
	return e, nil
}

// Hash - digest of the serialized element
func (e Element) Hash() merkle.Digest {
	return merkle.NewDigest(e.Serialize())
}

// Equal - same serialized form
func (e Element) Equal(other Element) bool {
	return bytes.Equal(e.Serialize(), other.Serialize())
}

// per element overhead: the stored hash plus the key length byte
const elementOverhead = merkle.DigestLength + 1

// StorageSize - bytes charged for holding element e at key
//
// both the applied and the estimated cost of a batch are computed
// from this function and nothing else
func StorageSize(key []byte, e Element) uint32 {
	return uint32(len(key) + len(e.Serialize()) + elementOverhead)
}
