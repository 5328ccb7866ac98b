// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package configuration

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/bitmark-inc/logger"

	"github.com/bitmark-inc/drived/chain"
	"github.com/bitmark-inc/drived/fault"
	"github.com/bitmark-inc/drived/version"
)

// basic defaults (directories and files are relative to the "DataDirectory" from Configuration file)
const (
	defaultDataDirectory = "" // this will error; use "." for the same directory as the config file

	defaultLevelDBDirectory   = "data"
	defaultContractsDirectory = "" // no watched contracts

	defaultLogDirectory = "log"
	defaultLogFile      = "drived.log"
	defaultLogCount     = 10          //  number of log files retained
	defaultLogSize      = 1024 * 1024 // rotate when <logfile> exceeds this size

	defaultRateLimit       = 100 // requests per second
	defaultBurst           = 20
	defaultCommitRetention = 3600 // seconds
)

// to hold log levels
type LoglevelMap map[string]string

// path expanded or calculated defaults
var (
	defaultLogLevels = LoglevelMap{
		logger.DefaultTag: "critical",
	}
)

type DatabaseType struct {
	Directory string `gluamapper:"directory" json:"directory"`
	Name      string `gluamapper:"name" json:"name"`
}

type QueryType struct {
	RateLimit       float64 `gluamapper:"rate_limit" json:"rate_limit"`
	Burst           int     `gluamapper:"burst" json:"burst"`
	CommitRetention int     `gluamapper:"commit_retention" json:"commit_retention"`
}

// VotingType - zero values keep the protocol's own parameters
type VotingType struct {
	ContestDurationMs uint64 `gluamapper:"contest_duration_ms" json:"contest_duration_ms"`
	ContenderFee      uint64 `gluamapper:"contender_fee" json:"contender_fee"`
	VoteCost          uint64 `gluamapper:"vote_cost" json:"vote_cost"`
}

type Configuration struct {
	DataDirectory      string               `gluamapper:"data_directory" json:"data_directory"`
	Chain              string               `gluamapper:"chain" json:"chain"`
	ProtocolVersion    uint32               `gluamapper:"protocol_version" json:"protocol_version"`
	Database           DatabaseType         `gluamapper:"database" json:"database"`
	ContractsDirectory string               `gluamapper:"contracts_directory" json:"contracts_directory"`
	QuorumSeed         string               `gluamapper:"quorum_seed" json:"quorum_seed"`
	Query              QueryType            `gluamapper:"query" json:"query"`
	Voting             VotingType           `gluamapper:"voting" json:"voting"`
	Logging            logger.Configuration `gluamapper:"logging" json:"logging"`
}

// Get - read decode and verify the configuration
func Get(configurationFileName string) (*Configuration, error) {

	configurationFileName, err := filepath.Abs(filepath.Clean(configurationFileName))
	if nil != err {
		return nil, err
	}

	// absolute path to the main directory
	dataDirectory, _ := filepath.Split(configurationFileName)

	options := &Configuration{

		DataDirectory:      defaultDataDirectory,
		Chain:              chain.Mainnet,
		ProtocolVersion:    uint32(version.Latest().Protocol),
		ContractsDirectory: defaultContractsDirectory,

		Database: DatabaseType{
			Directory: defaultLevelDBDirectory,
			Name:      "", // chain dependent
		},

		Query: QueryType{
			RateLimit:       defaultRateLimit,
			Burst:           defaultBurst,
			CommitRetention: defaultCommitRetention,
		},

		Logging: logger.Configuration{
			Directory: defaultLogDirectory,
			File:      defaultLogFile,
			Size:      defaultLogSize,
			Count:     defaultLogCount,
			Levels:    defaultLogLevels,
		},
	}

	if err := ParseConfigurationFile(configurationFileName, options); err != nil {
		return nil, err
	}

	// abort if the chain name is not recognised
	options.Chain = strings.ToLower(options.Chain)
	if !chain.Valid(options.Chain) {
		return nil, fmt.Errorf("chain: %q: %w", options.Chain, fault.ErrInvalidChain)
	}
	if "" == options.Database.Name {
		options.Database.Name = options.Chain + ".leveldb"
	}

	if _, err := version.Get(version.ProtocolVersion(options.ProtocolVersion)); nil != err {
		return nil, fmt.Errorf("protocol version: %d: %w", options.ProtocolVersion, err)
	}
	if options.Query.Burst <= 0 {
		return nil, fmt.Errorf("query burst: %d: %w", options.Query.Burst, fault.ErrInvalidCount)
	}

	// ensure absolute data directory
	if "" == options.DataDirectory || "~" == options.DataDirectory {
		return nil, fmt.Errorf("path: %q: %w", options.DataDirectory, fault.ErrInvalidPath)
	} else if "." == options.DataDirectory {
		options.DataDirectory = dataDirectory // same directory as the configuration file
	} else {
		options.DataDirectory = filepath.Clean(options.DataDirectory)
	}

	// this directory must exist - i.e. must be created prior to running
	if fileInfo, err := os.Stat(options.DataDirectory); nil != err {
		return nil, err
	} else if !fileInfo.IsDir() {
		return nil, fmt.Errorf("path: %q is not a directory: %w", options.DataDirectory, fault.ErrInvalidPath)
	}

	// force all relevant items to be absolute paths
	// if not, assign them to the data directory
	mustBeAbsolute := []*string{
		&options.Database.Directory,
		&options.Logging.Directory,
	}
	for _, f := range mustBeAbsolute {
		*f = EnsureAbsolute(options.DataDirectory, *f)
	}

	// optional absolute paths i.e. blank or an absolute path
	optionalAbsolute := []*string{
		&options.ContractsDirectory,
	}
	for _, f := range optionalAbsolute {
		if "" != *f {
			*f = EnsureAbsolute(options.DataDirectory, *f)
		}
	}

	// fail if any of these are not simple file names i.e. must
	// not contain path seperator, then add the correct directory
	// prefix, file item is first and corresponding directory is
	// second (or nil if no prefix can be added)
	mustNotBePaths := [][2]*string{
		{&options.Database.Name, &options.Database.Directory},
		{&options.Logging.File, nil},
	}
	for _, f := range mustNotBePaths {
		switch filepath.Dir(*f[0]) {
		case "", ".":
			if nil != f[1] {
				*f[0] = EnsureAbsolute(*f[1], *f[0])
			}
		default:
			return nil, fmt.Errorf("file: %q is not plain name: %w", *f[0], fault.ErrInvalidPath)
		}
	}

	// create directories if they do not already exist
	for _, d := range []string{
		options.Database.Directory,
		options.Logging.Directory,
	} {
		if err := os.MkdirAll(d, 0700); nil != err {
			return nil, err
		}
	}

	// done
	return options, nil
}

// VotingParameters - the configured voting overrides, nil if none
func (c *Configuration) VotingParameters() *version.VotingParameters {
	v := c.Voting
	if 0 == v.ContestDurationMs && 0 == v.ContenderFee && 0 == v.VoteCost {
		return nil
	}
	p := version.Latest().Voting
	if 0 != v.ContestDurationMs {
		p.ContestDurationMs = v.ContestDurationMs
	}
	if 0 != v.ContenderFee {
		p.ContenderFee = v.ContenderFee
	}
	if 0 != v.VoteCost {
		p.VoteCost = v.VoteCost
	}
	return &p
}

// EnsureAbsolute - the path if absolute, otherwise relative to directory
func EnsureAbsolute(directory string, filePath string) string {
	if !filepath.IsAbs(filePath) {
		filePath = filepath.Join(directory, filePath)
	}
	return filepath.Clean(filePath)
}
