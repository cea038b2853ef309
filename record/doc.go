// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

// Package record - marketplace records and their packed storage form
//
// Each record is stored under its id; the packed value starts with a
// bitmap of the optional fields that follow the fixed fields.  Amounts
// are little-endian integers padded to 8 bytes, the offer expiry uses
// a 12 byte date-time slot.  Wanted ids take the tail of an offer so
// their count is the remaining length divided by the id size.
package record
