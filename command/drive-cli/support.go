// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package main

import (
	"bytes"
	"encoding/json"
	"fmt"
	"io"
	"strings"

	"github.com/urfave/cli"

	"github.com/bitmark-inc/drived/contract"
	"github.com/bitmark-inc/drived/identifier"
	"github.com/bitmark-inc/drived/vote"
)

func printJson(handle io.Writer, message interface{}) error {

	b, err := json.MarshalIndent(message, "", "  ")
	if nil != err {
		return err
	}

	fmt.Fprintf(handle, "%s\n", b)
	return nil
}

// identity is required: base58 or @name for a seeded identity
func checkIdentity(s string) (identifier.Identifier, error) {
	if "" == s {
		return identifier.Identifier{}, ErrRequiredIdentity
	}
	if strings.HasPrefix(s, "@") {
		return identifier.FromSeed([]byte(s[1:])), nil
	}
	return identifier.FromString(s)
}

func checkContract(m *metadata, s string) (*contract.Contract, error) {
	if "" == s {
		return nil, ErrRequiredContract
	}
	id, err := identifier.FromString(s)
	if nil != err {
		return nil, err
	}
	return m.drive.Contract(id)
}

func checkDocumentType(c *contract.Contract, name string) (*contract.DocumentType, error) {
	if "" == name {
		return nil, ErrRequiredDocumentType
	}
	return c.DocumentType(name)
}

// poll - the contested value tuple named by the poll flags
func poll(m *metadata, c *cli.Context) (*vote.Poll, error) {
	ct, err := checkContract(m, c.String("contract"))
	if nil != err {
		return nil, err
	}
	t, err := checkDocumentType(ct, c.String("type"))
	if nil != err {
		return nil, err
	}

	index := t.ContestedIndex()
	if name := c.String("index"); "" != name {
		index, err = t.Index(name)
		if nil != err {
			return nil, err
		}
	}
	if nil == index || !index.Contested {
		return nil, ErrTypeNotContested
	}

	if "" == c.String("values") {
		return nil, ErrRequiredIndexValues
	}
	raw := []interface{}{}
	decoder := json.NewDecoder(bytes.NewReader([]byte(c.String("values"))))
	decoder.UseNumber()
	if err := decoder.Decode(&raw); nil != err {
		return nil, err
	}

	names := index.PropertyNames()
	if len(raw) != len(names) {
		return nil, ErrWrongIndexValueCount
	}

	values := make([][]byte, len(names))
	for i, name := range names {
		v, err := indexValue(t, name, raw[i])
		if nil != err {
			return nil, fmt.Errorf("index value %q: %w", name, err)
		}
		values[i], err = t.EncodeValue(name, v)
		if nil != err {
			return nil, err
		}
	}

	return &vote.Poll{
		ContractID:   ct.ID,
		DocumentType: t.Name,
		IndexName:    index.Name,
		IndexValues:  values,
	}, nil
}

// a JSON value as the Go value of a declared or system property
func indexValue(t *contract.DocumentType, name string, value interface{}) (interface{}, error) {
	if p := t.Property(name); nil != p {
		return p.ConvertJSON(value)
	}
	pt, err := t.PropertyType(name)
	if nil != err {
		return nil, err
	}
	switch v := value.(type) {
	case string:
		if contract.IdentifierProperty == pt {
			return checkIdentity(v)
		}
	case json.Number:
		if contract.IntegerProperty == pt {
			return v.Int64()
		}
	}
	return value, nil
}
