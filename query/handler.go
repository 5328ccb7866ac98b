// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package query

import (
	"github.com/bitmark-inc/logger"
	"github.com/golang/snappy"
	"golang.org/x/time/rate"

	"github.com/bitmark-inc/drived/drive"
	"github.com/bitmark-inc/drived/fault"
	"github.com/bitmark-inc/drived/wire"
)

// Handler - answers requests against one drive
type Handler struct {
	log     *logger.L
	drive   *drive.Drive
	commits CommitSource
	limiter *rate.Limiter
}

// New - handler allowing limit requests per second with bursts of
// burst; a zero limit disables limiting
func New(d *drive.Drive, commits CommitSource, limit float64, burst int) *Handler {
	l := rate.Inf
	if limit > 0 {
		l = rate.Limit(limit)
	}
	return &Handler{
		log:     logger.New("query"),
		drive:   d,
		commits: commits,
		limiter: rate.NewLimiter(l, burst),
	}
}

func (h *Handler) allow(name string) error {
	if !h.limiter.Allow() {
		h.log.Warnf("%s: rate limited", name)
		return fault.ErrRateLimited
	}
	h.log.Debugf("request: %s", name)
	return nil
}

// the proof of a result and the commit of the block it was read from
func (h *Handler) proved(p *drive.Proven) (*wire.Proof, *wire.ResponseMetadata, error) {
	commit, err := h.commits.Commit(p.Block.Height)
	if nil != err {
		h.log.Warnf("no commit for block: %d  error: %s", p.Block.Height, err)
		return nil, nil, err
	}
	if commit.Height != p.Block.Height || commit.StateID.AppHash != p.Root {
		h.log.Errorf("commit of block: %d  app hash: %s  does not match root: %s", commit.Height, commit.StateID.AppHash, p.Root)
		return nil, nil, fault.ErrProofMetadataMismatch
	}

	// responses may be altered by the caller, the log's commit must not
	proof := &wire.Proof{
		GroveProof:  snappy.Encode(nil, p.Proof),
		QuorumHash:  append([]byte{}, commit.QuorumHash[:]...),
		Signature:   append([]byte{}, commit.Signature...),
		Round:       commit.Round,
		BlockIdHash: append([]byte{}, commit.BlockIDHash...),
		QuorumType:  commit.QuorumType,
	}
	metadata := &wire.ResponseMetadata{
		Height:                commit.Height,
		CoreChainLockedHeight: commit.StateID.CoreHeight,
		Epoch:                 uint32(p.Block.Epoch),
		TimeMs:                commit.StateID.TimeMs,
		ProtocolVersion:       commit.StateID.ProtocolVersion,
		ChainId:               commit.ChainID,
	}
	return proof, metadata, nil
}
