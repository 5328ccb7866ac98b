// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package chain

// names of all chains
const (
	Mainnet = "mainnet"
	Testnet = "testnet"
	Local   = "local"
)

// consensus chain ids, part of every signed commit
var chainIDs = map[string]string{
	Mainnet: "drive-1",
	Testnet: "drive-testnet-37",
	Local:   "drive-local",
}

// Valid - validate a chain name
func Valid(name string) bool {
	_, ok := chainIDs[name]
	return ok
}

// ID - consensus chain id for a chain name, empty if unknown
func ID(name string) string {
	return chainIDs[name]
}

// IsTesting - true for chains whose keys and contracts are disposable
func IsTesting(name string) bool {
	return Mainnet != name
}
