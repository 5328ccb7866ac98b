// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package drive

import (
	"github.com/bitmark-inc/drived/fault"
	"github.com/bitmark-inc/drived/fee"
	"github.com/bitmark-inc/drived/util"
	"github.com/bitmark-inc/drived/version"
)

// aux key of the last committed block
var lastBlockKey = []byte("last-block")

// BlockInfo - the context every write of a block runs in
type BlockInfo struct {
	Height          uint64
	TimeMs          uint64
	CoreHeight      uint32
	Epoch           fee.Epoch
	ProtocolVersion version.ProtocolVersion
}

func (b *BlockInfo) serialize() []byte {
	buffer := util.AppendVarint64(nil, b.Height)
	buffer = util.AppendUint64(buffer, b.TimeMs)
	buffer = util.AppendVarint64(buffer, uint64(b.CoreHeight))
	buffer = util.AppendUint16(buffer, uint16(b.Epoch))
	return util.AppendVarint64(buffer, uint64(b.ProtocolVersion))
}

func deserializeBlockInfo(buffer []byte) (*BlockInfo, error) {
	r := util.NewReader(buffer)
	b := &BlockInfo{
		Height:          r.Varint64(),
		TimeMs:          r.Uint64(),
		CoreHeight:      uint32(r.Varint64()),
		Epoch:           fee.Epoch(r.Uint16()),
		ProtocolVersion: version.ProtocolVersion(r.Varint64()),
	}
	if err := r.Finish(); nil != err {
		return nil, fault.ErrCorruptedSerialization
	}
	return b, nil
}
