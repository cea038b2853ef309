// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

// Package trade - matching engine
//
// A pass starts from one offer and walks its wanted ids depth first,
// keeping the current chain of records as a stack of frames.  Whenever
// the record on top of the stack wants a record lower down, the frames
// between them form a closed trade circle.  The largest eligible
// circle found during the pass is settled through the ledger: each
// owner pays or receives the difference between what is given and
// what is received, the clearing account carrying the imbalance and
// keeping the processing fees.
//
// While a pass runs the ids it has visited are kept as a linked list
// in the links pool:
//
//   OILAV            -> latest visited id
//   <id> ++ VMK      -> 'V' ++ previously visited id (or just 'V')
//
// The presence of the root key is the processing guard; accounts owning
// any visited record cannot transfer or withdraw until it is released.
package trade
