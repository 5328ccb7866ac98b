// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package main

import (
	"bytes"
	"fmt"
	"io"

	ldb_util "github.com/syndtr/goleveldb/leveldb/util"

	"github.com/bitmark-inc/drived/grove"
	"github.com/bitmark-inc/drived/storage"
)

// record kinds by their leading key byte
var recordTags = []struct {
	tag    string
	prefix byte
	name   string
}{
	{"V", 0x00, "database version"},
	{"E", 'E', "store elements"},
	{"R", 'R', "committed root hash"},
	{"A", 'A', "auxiliary data"},
}

func tagPrefix(tag string) ([]byte, bool) {
	for _, t := range recordTags {
		if t.tag == tag {
			return []byte{t.prefix}, true
		}
	}
	return nil, false
}

// colours
const (
	keyColour1 = "\033[1;36m"
	keyColour2 = "\033[1;31m"
	valColour1 = "\033[1;33m"
	valColour2 = "\033[1;34m"
	decColour1 = "\033[1;35m"
	decColour2 = "\033[0;32m"
	endColour  = "\033[0m"
)

type palette struct {
	key1, key2 string
	val1, val2 string
	dec1, dec2 string
	end        string
}

var colours = palette{
	key1: keyColour1,
	key2: keyColour2,
	val1: valColour1,
	val2: valColour2,
	dec1: decColour1,
	dec2: decColour2,
	end:  endColour,
}

type dumper struct {
	out       io.Writer
	count     int
	earlyStop bool
	ascii     bool
	decode    bool
	colours   palette
}

// dump - print up to count records starting at prefix
func (d dumper) dump(db *storage.Database, prefix []byte) error {
	c := d.colours

	// an exact prefix range unless scanning on from the prefix
	searchRange := ldb_util.BytesPrefix(prefix)
	if !d.earlyStop {
		searchRange = &ldb_util.Range{Start: prefix}
	}

	iter := db.Iterator(searchRange)
	defer iter.Release()

	i := 0
	for ; i < d.count && iter.Next(); i += 1 {
		key := iter.Key()
		value := iter.Value()

		fmt.Fprintf(d.out, "%d: %sKey: %s%x%s\n", i, c.key1, c.key2, key, c.end)
		if d.ascii {
			hexDump(d.out, fmt.Sprintf("%d: %sVal: %s", i, c.val1, c.val2), c.end, value)
		} else {
			fmt.Fprintf(d.out, "%d: %sVal: %s%x%s\n", i, c.val1, c.val2, value, c.end)
		}

		if d.decode && len(key) > 0 && 'E' == key[0] {
			fmt.Fprintf(d.out, "%d: %sDec: %s%s%s\n", i, c.dec1, c.dec2, describe(value), c.end)
		}
	}
	if d.earlyStop && i < d.count {
		fmt.Fprintf(d.out, "*** early stop\n")
	}
	return iter.Error()
}

// describe - one line summary of a serialized element
func describe(buffer []byte) string {
	e, err := grove.DeserializeElement(buffer)
	if nil != err {
		return fmt.Sprintf("undecodable: %s", err)
	}
	switch e.Type {
	case grove.ItemElement:
		return fmt.Sprintf("item: %d bytes flags: %x", len(e.Value), e.Flags)
	case grove.SumItemElement:
		return fmt.Sprintf("sum item: %d", e.Sum)
	case grove.ReferenceElement:
		if grove.SiblingReference == e.Ref.Type {
			return fmt.Sprintf("sibling reference: %x", e.Ref.Key)
		}
		return fmt.Sprintf("reference: %x / %x", bytes.Join(e.Ref.Path, []byte{'/'}), e.Ref.Key)
	case grove.TreeElement:
		return fmt.Sprintf("tree: root: %x", e.Root)
	case grove.SumTreeElement:
		return fmt.Sprintf("sum tree: root: %x sum: %d", e.Root, e.Sum)
	default:
		return fmt.Sprintf("element type: %d", e.Type)
	}
}

// dump hex data
func hexDump(out io.Writer, prefix string, suffix string, data []byte) {
	address := 0
	const bytesPerLine = 32
	for i := 0; i < len(data); i += bytesPerLine {
		fmt.Fprintf(out, "%s%04x  ", prefix, address)
		address += bytesPerLine
		for j := 0; j < bytesPerLine; j += 1 {
			if bytesPerLine/2 == j {
				fmt.Fprintf(out, " ")
			}
			if i+j < len(data) {
				fmt.Fprintf(out, "%02x ", data[i+j])
			} else {
				fmt.Fprintf(out, "   ")
			}
		}
		fmt.Fprintf(out, " |")
	ascii_loop:
		for j := 0; j < bytesPerLine; j += 1 {
			if i+j >= len(data) {
				break ascii_loop
			}
			ch := data[i+j]
			if ch < 32 || ch >= 127 {
				ch = '.'
			}
			fmt.Fprintf(out, "%c", ch)
		}
		fmt.Fprintf(out, "|%s\n", suffix)
	}
}
