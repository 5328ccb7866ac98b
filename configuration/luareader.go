// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package configuration

import (
	"os"
	"path/filepath"

	"github.com/yuin/gluamapper"
	lua "github.com/yuin/gopher-lua"

	"github.com/bitmark-inc/drived/chain"
	"github.com/bitmark-inc/drived/fault"
	"github.com/bitmark-inc/drived/version"
)

// ParseConfigurationFile - run a Lua script and map the table it
// returns onto config
//
// the script sees these globals:
//
//   arg[0]                   the script file name
//   drived.chains            chain names, e.g. drived.chains.testnet
//   drived.protocol_version  highest supported protocol version
//   drived.config_directory  directory holding the script
//   env(name, default)       environment variable or default
func ParseConfigurationFile(fileName string, config interface{}) error {
	L := lua.NewState()
	defer L.Close()

	L.OpenLibs()

	scriptArgs := L.NewTable()
	scriptArgs.RawSetInt(0, lua.LString(fileName))
	L.SetGlobal("arg", scriptArgs)
	L.SetGlobal("drived", presets(L, fileName))
	L.SetGlobal("env", L.NewFunction(getenv))

	if err := L.DoFile(fileName); nil != err {
		return err
	}

	result, ok := L.Get(-1).(*lua.LTable)
	if !ok {
		return fault.ErrConfigurationNotTable
	}

	mapper := gluamapper.Mapper{
		Option: gluamapper.Option{
			NameFunc: func(s string) string { return s },
			TagName:  "gluamapper",
		},
	}
	return mapper.Map(result, config)
}

func presets(L *lua.LState, fileName string) *lua.LTable {
	chains := L.NewTable()
	for _, name := range []string{chain.Mainnet, chain.Testnet, chain.Local} {
		chains.RawSetString(name, lua.LString(name))
	}

	t := L.NewTable()
	t.RawSetString("chains", chains)
	t.RawSetString("protocol_version", lua.LNumber(version.Latest().Protocol))
	t.RawSetString("config_directory", lua.LString(filepath.Dir(fileName)))
	return t
}

// env("NAME", default) returns the default for an unset or empty variable
func getenv(L *lua.LState) int {
	name := L.CheckString(1)
	if value := os.Getenv(name); "" != value {
		L.Push(lua.LString(value))
		return 1
	}
	if L.GetTop() >= 2 {
		L.Push(L.Get(2))
	} else {
		L.Push(lua.LNil)
	}
	return 1
}
