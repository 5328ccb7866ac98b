// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package background_test

import (
	"sync/atomic"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	"github.com/bitmark-inc/drived/background"
)

type ticker struct {
	ticks    int64
	finished int32
	args     interface{}
}

func (p *ticker) Run(args interface{}, shutdown <-chan struct{}) {
	p.args = args
	defer atomic.StoreInt32(&p.finished, 1)

	for {
		select {
		case <-shutdown:
			return
		case <-time.After(time.Millisecond):
			atomic.AddInt64(&p.ticks, 1)
		}
	}
}

func TestStopWaitsForEveryProcess(t *testing.T) {
	first := &ticker{}
	second := &ticker{}

	p := background.Start(background.Processes{first, second}, "arguments")
	time.Sleep(20 * time.Millisecond)
	p.Stop()

	for i, proc := range []*ticker{first, second} {
		assert.Equal(t, int32(1), atomic.LoadInt32(&proc.finished), "%d: still running after stop", i)
		assert.True(t, atomic.LoadInt64(&proc.ticks) > 0, "%d: never ran", i)
		assert.Equal(t, "arguments", proc.args, "%d: wrong arguments", i)
	}

	// no process runs after stop returns
	ticks := atomic.LoadInt64(&first.ticks)
	time.Sleep(5 * time.Millisecond)
	assert.Equal(t, ticks, atomic.LoadInt64(&first.ticks), "ticked after stop")
}

func TestStopTwice(t *testing.T) {
	p := background.Start(background.Processes{&ticker{}}, nil)
	p.Stop()
	p.Stop()
}

func TestStartNothing(t *testing.T) {
	p := background.Start(nil, nil)
	p.Stop()
}
