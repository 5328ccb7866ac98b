// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

// Package configuration - the node settings, written as a Lua script
// returning a table
//
// a minimal local setup:
//
//   return {
//       data_directory = ".",
//       chain = drived.chains["local"],
//       contracts_directory = "contracts",
//       voting = { contest_duration_ms = tonumber(env("CONTEST_MS", 600000)) },
//   }
//
// relative paths are resolved against data_directory and the
// database and log directories are created when missing
package configuration
