// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package query_test

import (
	"fmt"
	"io/ioutil"
	"os"
	"strings"
	"testing"

	"github.com/bitmark-inc/logger"
	"github.com/stretchr/testify/require"

	"github.com/bitmark-inc/drived/chain"
	"github.com/bitmark-inc/drived/consensus/local"
	"github.com/bitmark-inc/drived/document"
	"github.com/bitmark-inc/drived/drive"
	"github.com/bitmark-inc/drived/fixtures"
	"github.com/bitmark-inc/drived/identifier"
	"github.com/bitmark-inc/drived/query"
	"github.com/bitmark-inc/drived/storage"
	"github.com/bitmark-inc/drived/version"
)

var (
	alice = identifier.FromSeed([]byte("alice"))
	bob   = identifier.FromSeed([]byte("bob"))

	quorum  = local.NewQuorum([]byte("query test quorum"))
	chainID = chain.ID(chain.Local)
)

func TestMain(m *testing.M) {
	dir, err := ioutil.TempDir("", "query-test")
	if nil != err {
		panic(err)
	}
	logging := logger.Configuration{
		Directory: dir,
		File:      "testing.log",
		Size:      1048576,
		Count:     10,
		Console:   false,
		Levels: map[string]string{
			logger.DefaultTag: "critical",
		},
	}
	if err := logger.Initialise(logging); nil != err {
		panic(fmt.Sprintf("logger initialization failed: %s", err))
	}
	rc := m.Run()
	logger.Finalise()
	_ = os.RemoveAll(dir)
	os.Exit(rc)
}

type node struct {
	t       *testing.T
	d       *drive.Drive
	commits *query.CommitLog
	info    drive.BlockInfo
}

var note = &document.Document{
	ID:    identifier.FromSeed([]byte("query/note")),
	Owner: fixtures.OwnerID,
	Properties: map[string]interface{}{
		"title": "minutes",
		"tag":   "meeting",
	},
}

// identities, the fixture contract, a note and a contest for "quantum"
func newNode(t *testing.T) *node {
	db, err := storage.OpenMemory()
	require.Nil(t, err, "open memory database")
	d, err := drive.New(db, drive.Options{
		Voting: &version.VotingParameters{
			ContestDurationMs: 60000,
			ContenderFee:      1000000,
			VoteCost:          100,
		},
	})
	require.Nil(t, err, "new drive")

	n := &node{
		t:       t,
		d:       d,
		commits: query.NewCommitLog(0),
		info: drive.BlockInfo{
			TimeMs:          1600000000000,
			ProtocolVersion: version.Latest().Protocol,
		},
	}
	n.block(func(b *drive.Block) {
		require.Nil(t, b.InitChain(), "init chain")
		for _, id := range []identifier.Identifier{fixtures.OwnerID, alice, bob} {
			identity := &drive.Identity{
				ID:        id,
				PublicKey: id.Bytes(),
			}
			require.Nil(t, b.CreateIdentity(identity, 1000000000000), "create identity")
		}
		_, err := b.ApplyContract(fixtures.Contract())
		require.Nil(t, err, "apply contract")
	})
	n.block(func(b *drive.Block) {
		for _, owner := range []identifier.Identifier{alice, bob} {
			_, err := b.AddDocument(newDomain(owner, "Quantum"), fixtures.ContractID, fixtures.DomainType, false)
			require.Nil(t, err, "contend")
		}
		_, err := b.AddDocument(note, fixtures.ContractID, fixtures.NoteType, false)
		require.Nil(t, err, "add note")
	})
	return n
}

func (n *node) block(f func(b *drive.Block)) {
	n.info.Height += 1
	n.info.TimeMs += 1000
	b, err := n.d.BeginBlock(n.info)
	require.Nil(n.t, err, "begin block")
	f(b)
	commit, err := quorum.CommitBlock(chainID, b)
	require.Nil(n.t, err, "commit")
	n.commits.Record(commit)
}

func newDomain(owner identifier.Identifier, label string) *document.Document {
	return &document.Document{
		ID:    document.GenerateID(fixtures.ContractID, owner, fixtures.DomainType, []byte(label)),
		Owner: owner,
		Properties: map[string]interface{}{
			"label":                      label,
			"normalizedLabel":            strings.ToLower(label),
			"normalizedParentDomainName": "dash",
		},
	}
}
