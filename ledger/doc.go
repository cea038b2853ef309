// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

// Package ledger - NBX token balances and supply
//
// Balances are signed so that the clearing account can carry the
// difference of a trade cycle until its fees are collected; every
// other account is kept non-negative. A zero balance is deleted.
package ledger
