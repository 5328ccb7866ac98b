// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package background_test

import (
	"fmt"

	"github.com/bitmark-inc/drived/background"
)

type reloader struct {
	directory string
}

func (r *reloader) Run(args interface{}, shutdown <-chan struct{}) {
	fmt.Printf("watching %s for %s\n", r.directory, args)
	<-shutdown
	fmt.Printf("stopped watching %s\n", r.directory)
}

func Example() {
	p := background.Start(background.Processes{
		&reloader{directory: "contracts"},
	}, "local")
	p.Stop()

	// Output:
	// watching contracts for local
	// stopped watching contracts
}
