// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package cache

import (
	"io/ioutil"
	"path/filepath"
	"strings"

	"github.com/bitmark-inc/logger"
	"github.com/fsnotify/fsnotify"

	"github.com/bitmark-inc/drived/background"
	"github.com/bitmark-inc/drived/contract"
)

const contractSuffix = ".json"

// Watcher - keeps a cache in step with a directory of contract files
type Watcher struct {
	log        *logger.L
	cache      *Cache
	dir        string
	watcher    *fsnotify.Watcher
	background *background.T
}

// Watch - load every contract file in dir, then reload files as they
// are written
func (c *Cache) Watch(dir string) (*Watcher, error) {
	fw, err := fsnotify.NewWatcher()
	if nil != err {
		return nil, err
	}
	if err := fw.Add(dir); nil != err {
		fw.Close()
		return nil, err
	}

	w := &Watcher{
		log:     logger.New("contracts"),
		cache:   c,
		dir:     dir,
		watcher: fw,
	}

	names, err := filepath.Glob(filepath.Join(dir, "*"+contractSuffix))
	if nil != err {
		fw.Close()
		return nil, err
	}
	for _, name := range names {
		w.load(name)
	}
	w.log.Infof("watching: %q  loaded: %d", dir, c.Len())

	w.background = background.Start(background.Processes{w}, nil)
	return w, nil
}

// Stop - stop watching, the cache keeps its contents
func (w *Watcher) Stop() {
	w.watcher.Close()
	w.background.Stop()
}

// Run - background loop handling file events
func (w *Watcher) Run(args interface{}, shutdown <-chan struct{}) {
loop:
	for {
		select {
		case <-shutdown:
			break loop
		case event, ok := <-w.watcher.Events:
			if !ok {
				break loop
			}
			if !strings.HasSuffix(event.Name, contractSuffix) {
				continue
			}
			if 0 != event.Op&(fsnotify.Create|fsnotify.Write) {
				w.load(event.Name)
			}
		case err, ok := <-w.watcher.Errors:
			if !ok {
				break loop
			}
			w.log.Errorf("watch error: %s", err)
		}
	}
	w.log.Info("stopped")
}

// a broken file is logged and leaves any earlier version in place
func (w *Watcher) load(name string) {
	buffer, err := ioutil.ReadFile(name)
	if nil != err {
		w.log.Errorf("read: %q  error: %s", name, err)
		return
	}
	c, err := contract.Load(buffer)
	if nil != err {
		w.log.Warnf("load: %q  error: %s", name, err)
		return
	}
	w.cache.Put(c)
	w.log.Debugf("loaded: %q  id: %s", name, c.ID)
}
