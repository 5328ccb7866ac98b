// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package fault

import (
	"fmt"
	"runtime"

	"github.com/bitmark-inc/logger"
)

// channel for reports of corrupted state
var log *logger.L

// Initialise - setup the corruption log channel
func Initialise() error {
	if nil != log {
		return ErrAlreadyInitialised
	}
	log = logger.New("corrupted")
	if nil == log {
		return ErrInvalidLoggerChannel
	}
	return nil
}

// Finalise - flush any data
func Finalise() {
	if nil != log {
		log.Flush()
	}
}

// Corrupted - report err if it is of the corrupted class, then return it
//
// the report carries the caller's location; other errors pass through
// silently
func Corrupted(err error, format string, arguments ...interface{}) error {
	if !IsErrCorrupted(err) {
		return err
	}
	message := fmt.Sprintf(format, arguments...)
	if _, file, line, ok := runtime.Caller(1); ok {
		criticalf("(%q:%d) %s  error: %s", file, line, message, err)
	} else {
		criticalf("%s  error: %s", message, err)
	}
	return err
}

// before Initialise reports go to stdout
func criticalf(format string, arguments ...interface{}) {
	if nil == log {
		fmt.Printf("*** "+format+"\n", arguments...)
		return
	}
	log.Criticalf(format, arguments...)
	log.Flush()
}
