// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package configuration_test

import (
	"errors"
	"io/ioutil"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/bitmark-inc/drived/chain"
	"github.com/bitmark-inc/drived/configuration"
	"github.com/bitmark-inc/drived/fault"
	"github.com/bitmark-inc/drived/version"
)

func writeConfig(t *testing.T, text string) (string, func()) {
	dir, err := ioutil.TempDir("", "drived-config")
	if nil != err {
		t.Fatalf("temp dir error: %s", err)
	}
	fileName := filepath.Join(dir, "drived.conf")
	if err := ioutil.WriteFile(fileName, []byte(text), 0600); nil != err {
		t.Fatalf("write error: %s", err)
	}
	return fileName, func() { os.RemoveAll(dir) }
}

func TestGetDefaults(t *testing.T) {
	fileName, cleanup := writeConfig(t, `return { data_directory = "." }`)
	defer cleanup()

	c, err := configuration.Get(fileName)
	assert.Nil(t, err, "wrong error")

	dir := filepath.Dir(fileName)
	assert.Equal(t, chain.Mainnet, c.Chain, "wrong chain")
	assert.Equal(t, uint32(version.Latest().Protocol), c.ProtocolVersion, "wrong protocol")
	assert.Equal(t, filepath.Join(dir, "data"), c.Database.Directory, "wrong database directory")
	assert.Equal(t, filepath.Join(dir, "data", "mainnet.leveldb"), c.Database.Name, "wrong database name")
	assert.Equal(t, filepath.Join(dir, "log"), c.Logging.Directory, "wrong log directory")
	assert.Equal(t, "", c.ContractsDirectory, "contracts directory set")
	assert.Nil(t, c.VotingParameters(), "voting overridden")

	_, err = os.Stat(c.Database.Directory)
	assert.Nil(t, err, "database directory not created")
}

func TestGetOverrides(t *testing.T) {
	fileName, cleanup := writeConfig(t, `
local M = {}
M.data_directory = "."
M.chain = "Local"
M.contracts_directory = "contracts"
M.database = { name = "drive.leveldb" }
M.query = { rate_limit = 5, burst = 2 }
M.voting = { contest_duration_ms = 60000 }
M.logging = { size = 1000, count = 2, levels = { DEFAULT = "info" } }
return M
`)
	defer cleanup()

	c, err := configuration.Get(fileName)
	assert.Nil(t, err, "wrong error")

	dir := filepath.Dir(fileName)
	assert.Equal(t, chain.Local, c.Chain, "chain not lower cased")
	assert.Equal(t, filepath.Join(dir, "contracts"), c.ContractsDirectory, "wrong contracts directory")
	assert.Equal(t, filepath.Join(dir, "data", "drive.leveldb"), c.Database.Name, "wrong database name")
	assert.Equal(t, float64(5), c.Query.RateLimit, "wrong rate limit")
	assert.Equal(t, 2, c.Query.Burst, "wrong burst")
	assert.Equal(t, "info", c.Logging.Levels["DEFAULT"], "wrong log level")

	v := c.VotingParameters()
	if assert.NotNil(t, v, "missing voting override") {
		assert.Equal(t, uint64(60000), v.ContestDurationMs, "wrong contest duration")
		assert.Equal(t, version.Latest().Voting.ContenderFee, v.ContenderFee, "contender fee not defaulted")
	}
}

func TestGetInvalid(t *testing.T) {
	tests := []struct {
		text string
		err  error
	}{
		{`return { data_directory = "." , chain = "nowhere" }`, fault.ErrInvalidChain},
		{`return { data_directory = "" }`, fault.ErrInvalidPath},
		{`return { data_directory = "." , protocol_version = 999 }`, fault.ErrUnknownProtocolVersion},
		{`return { data_directory = "." , query = { burst = 0 } }`, fault.ErrInvalidCount},
		{`return { data_directory = "." , database = { name = "a/b" } }`, fault.ErrInvalidPath},
		{`return 42`, fault.ErrConfigurationNotTable},
	}

	for i, item := range tests {
		fileName, cleanup := writeConfig(t, item.text)
		_, err := configuration.Get(fileName)
		cleanup()
		assert.True(t, errors.Is(err, item.err), "%d: wrong error: %v", i, err)
	}
}

func TestEnsureAbsolute(t *testing.T) {
	assert.Equal(t, "/var/lib/drived/data", configuration.EnsureAbsolute("/var/lib/drived", "data"), "relative not joined")
	assert.Equal(t, "/tmp/x", configuration.EnsureAbsolute("/var/lib/drived", "/tmp/x/"), "absolute changed")
}

func TestScriptGlobals(t *testing.T) {
	fileName, cleanup := writeConfig(t, `
return {
    data_directory = drived.config_directory,
    chain = drived.chains.testnet,
    protocol_version = drived.protocol_version,
    quorum_seed = env("DRIVED_TEST_QUORUM_SEED", "fallback"),
    contracts_directory = env("DRIVED_TEST_UNSET_VARIABLE"),
}
`)
	defer cleanup()

	os.Setenv("DRIVED_TEST_QUORUM_SEED", "from-environment")
	defer os.Unsetenv("DRIVED_TEST_QUORUM_SEED")

	c, err := configuration.Get(fileName)
	assert.Nil(t, err, "wrong error")

	assert.Equal(t, filepath.Dir(fileName), filepath.Clean(c.DataDirectory), "wrong data directory")
	assert.Equal(t, chain.Testnet, c.Chain, "wrong chain")
	assert.Equal(t, uint32(version.Latest().Protocol), c.ProtocolVersion, "wrong protocol")
	assert.Equal(t, "from-environment", c.QuorumSeed, "environment not read")
	assert.Equal(t, "", c.ContractsDirectory, "unset variable not nil")
}
