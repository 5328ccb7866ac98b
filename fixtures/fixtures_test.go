// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package fixtures_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/bitmark-inc/drived/fixtures"
)

func TestContract(t *testing.T) {
	c := fixtures.Contract()
	assert.Equal(t, fixtures.ContractID, c.ID, "wrong id")
	assert.Equal(t, []string{fixtures.DomainType, fixtures.NoteType, fixtures.ProfileType}, c.TypeNames(), "wrong types")

	domain, err := c.DocumentType(fixtures.DomainType)
	require.Nil(t, err, "domain")
	require.NotNil(t, domain.ContestedIndex(), "contested index missing")
	assert.Equal(t, fixtures.ContestedIndex, domain.ContestedIndex().Name, "wrong contested index")

	profile, err := c.DocumentType(fixtures.ProfileType)
	require.Nil(t, err, "profile")
	assert.True(t, profile.KeepsHistory, "profile keeps history")
}
