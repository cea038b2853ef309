// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

// Package market - the operation facade
//
// Every operation is looked up by name, its argument count checked,
// then run under the market lock inside one storage transaction.  The
// transaction is committed and the buffered events are sent to the
// event bus only when the operation succeeds; any error aborts both.
//
// Arguments are raw JSON values, one per parameter.  Accounts that
// signed the call form the witness set; operations acting for an
// account require it to be a witness.
package market
