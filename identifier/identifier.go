// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

// Package identifier - 32 byte identifiers for contracts, documents
// and identities
//
// the text form is base58 without checksum
package identifier

import (
	"bytes"
	"encoding/hex"

	"github.com/mr-tron/base58"
	"golang.org/x/crypto/sha3"

	"github.com/bitmark-inc/drived/fault"
)

// Length - number of bytes in an identifier
const Length = 32

// Identifier - 32 byte value
type Identifier [Length]byte

// FromBytes - validate length and convert
func FromBytes(buffer []byte) (Identifier, error) {
	var id Identifier
	if Length != len(buffer) {
		return id, fault.ErrIdentifierLength
	}
	copy(id[:], buffer)
	return id, nil
}

// FromString - decode base58 text
func FromString(s string) (Identifier, error) {
	buffer, err := base58.Decode(s)
	if nil != err {
		return Identifier{}, fault.ErrIdentifierLength
	}
	return FromBytes(buffer)
}

// FromSeed - deterministic identifier derived from arbitrary data
func FromSeed(seed []byte) Identifier {
	return Identifier(sha3.Sum256(seed))
}

// Bytes - a copy of the identifier bytes
func (id Identifier) Bytes() []byte {
	b := make([]byte, Length)
	copy(b, id[:])
	return b
}

// IsZero - true if unset
func (id Identifier) IsZero() bool {
	return id == Identifier{}
}

// Compare - byte order comparison
func (id Identifier) Compare(other Identifier) int {
	return bytes.Compare(id[:], other[:])
}

// String - base58 text for the fmt package
func (id Identifier) String() string {
	return base58.Encode(id[:])
}

// GoString - hex for %#v
func (id Identifier) GoString() string {
	return "<identifier:" + hex.EncodeToString(id[:]) + ">"
}

// MarshalText - base58 text for JSON
func (id Identifier) MarshalText() ([]byte, error) {
	return []byte(id.String()), nil
}

// UnmarshalText - base58 text from JSON
func (id *Identifier) UnmarshalText(s []byte) error {
	decoded, err := FromString(string(s))
	if nil != err {
		return err
	}
	*id = decoded
	return nil
}
