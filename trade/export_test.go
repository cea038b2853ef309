// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package trade

import (
	"github.com/neobex/neobexd/record"
)

// LeakGuard - leave markers as an interrupted pass would
func LeakGuard(e *Engine, ids ...record.Id) {
	for _, id := range ids {
		e.markVisited(id)
	}
}
