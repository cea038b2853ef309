// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

// Package book keeps offers, sales and auctions in their pools
//
// Three kinds of list are maintained alongside the records:
//
//   FNO                 token only offers, newest first
//   ECA                 auctions by ascending closing time
//   auctionId ++ FBTAK  bids of one auction by descending amount
//
// Records keep the currency they were listed in; the worth helpers
// convert to NBX for comparison only, so a rewrite never converts a
// stored amount twice.
package book
