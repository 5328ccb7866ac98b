// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package fault

import (
	"errors"
)

func as(e error, target interface{}) bool {
	if nil == e {
		return false
	}
	return errors.As(e, target)
}
