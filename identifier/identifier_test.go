// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package identifier_test

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/bitmark-inc/drived/fault"
	"github.com/bitmark-inc/drived/identifier"
)

func TestFromBytes(t *testing.T) {
	_, err := identifier.FromBytes([]byte{1, 2, 3})
	assert.Equal(t, fault.ErrIdentifierLength, err, "short identifier accepted")

	seed := identifier.FromSeed([]byte("owner"))
	id, err := identifier.FromBytes(seed.Bytes())
	assert.Nil(t, err, "valid identifier rejected")
	assert.Equal(t, seed, id, "wrong identifier")
}

func TestTextRoundTrip(t *testing.T) {
	id := identifier.FromSeed([]byte("dpns"))

	decoded, err := identifier.FromString(id.String())
	assert.Nil(t, err, "decode error")
	assert.Equal(t, id, decoded, "base58 round trip differs")

	_, err = identifier.FromString("0OIl")
	assert.NotNil(t, err, "invalid base58 accepted")
}

func TestJSON(t *testing.T) {
	type holder struct {
		Owner identifier.Identifier `json:"owner"`
	}
	h := holder{Owner: identifier.FromSeed([]byte("json"))}

	b, err := json.Marshal(h)
	assert.Nil(t, err, "marshal error")

	var h2 holder
	err = json.Unmarshal(b, &h2)
	assert.Nil(t, err, "unmarshal error")
	assert.Equal(t, h, h2, "json round trip differs")
}

func TestCompare(t *testing.T) {
	a := identifier.Identifier{0x01}
	b := identifier.Identifier{0x02}
	assert.True(t, a.Compare(b) < 0, "a should sort before b")
	assert.Equal(t, 0, a.Compare(a), "equal identifiers")
	assert.True(t, identifier.Identifier{}.IsZero(), "zero identifier")
}
