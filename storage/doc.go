// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

// Package storage - maintain the on-disk data store
//
// maintain separate pools of a number of elements in key->value form
//
// This maintains a LevelDB database split into a series of tables.
// Each table is defined by a prefix byte that is obtained from the
// prefix tag in the struct defining the available tables.
//
// All writes are collected in a single batch and become visible to
// other readers only on Commit; reads during a transaction see the
// pending writes through a cache.
//
// Notes:
// 1. each separate pool has a single byte prefix (to spread the keys in LevelDB)
// 2. ++           = concatenation of byte data
// 3. id           = 20 byte record id, first byte is the category tag O, S or A
// 4. account      = 20 byte wallet address
// 5. amount       = big endian int64/uint64 (8 bytes)
//
// Records:
//
//   O ++ id                    - offers and bids
//                                data: packed offer
//   S ++ id                    - sales
//                                data: packed sale
//   A ++ id                    - auctions
//                                data: packed auction
//
// Links:
//
//   L ++ "ECA"                 - earliest closing auction
//                                data: auction id
//   L ++ "FNO"                 - first NBX offer
//                                data: offer id
//   L ++ id ++ "FBTAK"         - first (highest) bid of an auction
//                                data: offer id
//   L ++ "OILAV"               - last visited offer of a running trade pass
//                                data: offer id
//   L ++ id ++ "VMK"           - visited marker
//                                data: 'V' ++ previous visited offer id (omitted for the first)
//
// Ledger:
//
//   B ++ account               - token balance
//                                data: amount
//   T ++ "totalSupply"         - tokens in circulation
//                                data: amount
//
// Testing:
//   Z ++ key                   - testing data
package storage
