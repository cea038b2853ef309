// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package record

import (
	"encoding/hex"
	"fmt"

	"github.com/neobex/neobexd/fault"
)

// IdLength - bytes in a record id
const IdLength = 20

// Category - first byte of an id
type Category byte

// known categories
const (
	CategoryOffer   Category = 'O'
	CategorySale    Category = 'S'
	CategoryAuction Category = 'A'
)

// String - name of the category
func (c Category) String() string {
	switch c {
	case CategoryOffer:
		return "offer"
	case CategorySale:
		return "sale"
	case CategoryAuction:
		return "auction"
	default:
		return fmt.Sprintf("unknown(%d)", byte(c))
	}
}

// IsValid - one of the known categories
func (c Category) IsValid() bool {
	return CategoryOffer == c || CategorySale == c || CategoryAuction == c
}

// Id - identifier of an offer, sale or auction
type Id [IdLength]byte

var zeroId Id

// IdFromBytes - id from exactly 20 bytes
func IdFromBytes(buffer []byte) (Id, error) {
	var id Id
	if IdLength != len(buffer) {
		return id, fault.ErrIdLength
	}
	copy(id[:], buffer)
	return id, nil
}

// NewId - build an id of a category from a body of up to 19 bytes
func NewId(category Category, body []byte) Id {
	var id Id
	id[0] = byte(category)
	copy(id[1:], body)
	return id
}

// Category - the tag held in the first byte
func (id Id) Category() Category {
	return Category(id[0])
}

// IsZero - the null id
func (id Id) IsZero() bool {
	return id == zeroId
}

// Bytes - raw id bytes
func (id Id) Bytes() []byte {
	return id[:]
}

// String - hex form for %s
func (id Id) String() string {
	return hex.EncodeToString(id[:])
}

// GoString - for %#v
func (id Id) GoString() string {
	return "<" + id.Category().String() + ":" + hex.EncodeToString(id[:]) + ">"
}

// MarshalText - convert id to hex text
func (id Id) MarshalText() ([]byte, error) {
	buffer := make([]byte, hex.EncodedLen(IdLength))
	hex.Encode(buffer, id[:])
	return buffer, nil
}

// UnmarshalText - convert hex text to an id
func (id *Id) UnmarshalText(s []byte) error {
	if hex.EncodedLen(IdLength) != len(s) {
		return fault.ErrIdLength
	}
	_, err := hex.Decode(id[:], s)
	return err
}
