// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package merkle_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/bitmark-inc/drived/merkle"
)

func TestDigestText(t *testing.T) {
	d := merkle.NewDigest([]byte("drive"))

	text, err := d.MarshalText()
	assert.Nil(t, err, "marshal error")
	assert.Equal(t, d.String(), string(text), "text and string differ")

	var d2 merkle.Digest
	err = d2.UnmarshalText(text)
	assert.Nil(t, err, "unmarshal error")
	assert.Equal(t, d, d2, "round trip digest differs")

	err = d2.UnmarshalText([]byte("abcd"))
	assert.NotNil(t, err, "short text accepted")
}

func TestSumMatchesNewDigest(t *testing.T) {
	a := []byte("contested")
	b := []byte("resource")
	assert.Equal(t, merkle.NewDigest(append(append([]byte{}, a...), b...)), merkle.Sum(a, b), "sum of parts differs")
}

func TestDigestFromBytes(t *testing.T) {
	var d merkle.Digest
	assert.NotNil(t, merkle.DigestFromBytes(&d, []byte{1, 2, 3}), "short buffer accepted")

	src := merkle.NewDigest([]byte("x"))
	assert.Nil(t, merkle.DigestFromBytes(&d, src[:]), "valid buffer rejected")
	assert.Equal(t, src, d, "wrong digest")
}

func TestRoot(t *testing.T) {
	assert.True(t, merkle.Root(nil).IsZero(), "empty root should be zero")

	l1 := merkle.NewDigest([]byte("one"))
	l2 := merkle.NewDigest([]byte("two"))
	l3 := merkle.NewDigest([]byte("three"))

	assert.Equal(t, l1, merkle.Root([]merkle.Digest{l1}), "single leaf is its own root")

	h12 := merkle.Sum(l1[:], l2[:])
	assert.Equal(t, h12, merkle.Root([]merkle.Digest{l1, l2}), "wrong two leaf root")

	// odd leaf is paired with itself
	h33 := merkle.Sum(l3[:], l3[:])
	expected := merkle.Sum(h12[:], h33[:])
	assert.Equal(t, expected, merkle.Root([]merkle.Digest{l1, l2, l3}), "wrong three leaf root")

	assert.NotEqual(t, merkle.Root([]merkle.Digest{l1, l2}), merkle.Root([]merkle.Digest{l2, l1}), "order must matter")
}
