// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package record

import (
	"encoding/binary"

	"github.com/neobex/neobexd/currency"
	"github.com/neobex/neobexd/fault"
)

// Packed - packed records are just a byte slice
type Packed []byte

// field widths
const (
	amountLength   = 8
	dateTimeLength = 12
	bitmapLength   = 1
	auctionBitmap  = 2
)

// offer bitmap
const (
	offerIsBid = 1 << iota
	offerNextBid
	offerNextNbxOffer
	offerItemsValue
	offerValidTill
	offerMask = offerIsBid | offerNextBid | offerNextNbxOffer | offerItemsValue | offerValidTill
)

// auction bitmap (first byte)
const (
	auctionWinner = 1 << iota
	auctionNext
	auctionMask = auctionWinner | auctionNext
)

// sale bitmap
const (
	saleBuyer = 1 << iota
	saleMask  = saleBuyer
)

// Pack - turn an offer into its stored form
func (offer *Offer) Pack() (Packed, error) {
	if len(offer.WantedIds) > MaxWantedIds {
		return nil, fault.ErrTooManyWantedIds
	}

	bitmap := byte(0)
	if offer.IsBid {
		bitmap |= offerIsBid
	}
	if nil != offer.NextBid {
		bitmap |= offerNextBid
	}
	if nil != offer.NextNbxOffer {
		bitmap |= offerNextNbxOffer
	}
	if 0 != offer.ItemsNetWorth {
		bitmap |= offerItemsValue
	}
	if nil != offer.ValidTill {
		bitmap |= offerValidTill
	}

	buffer := make(Packed, 0, 128)
	buffer = append(buffer, bitmap)
	buffer = append(buffer, offer.WalletAddress[:]...)
	if nil != offer.ValidTill {
		buffer = appendPadded(buffer, *offer.ValidTill, dateTimeLength)
	}
	if 0 != offer.ItemsNetWorth {
		buffer = appendPadded(buffer, offer.ItemsNetWorth, amountLength)
	}
	buffer = appendPadded(buffer, offer.TotalAmount, amountLength)
	buffer, err := appendCurrency(buffer, offer.Currency)
	if nil != err {
		return nil, err
	}
	if nil != offer.NextBid {
		buffer = append(buffer, offer.NextBid[:]...)
	}
	if nil != offer.NextNbxOffer {
		buffer = append(buffer, offer.NextNbxOffer[:]...)
	}
	for _, id := range offer.WantedIds {
		if id.IsZero() {
			return nil, fault.ErrZeroId
		}
		buffer = append(buffer, id[:]...)
	}
	return buffer, nil
}

// Pack - turn an auction into its stored form
func (auction *Auction) Pack() (Packed, error) {
	bitmap := byte(0)
	if nil != auction.Winner {
		bitmap |= auctionWinner
	}
	if nil != auction.Next {
		bitmap |= auctionNext
	}

	buffer := make(Packed, 0, 96)
	buffer = append(buffer, bitmap, 0)
	buffer = append(buffer, auction.WalletAddress[:]...)
	buffer = appendPadded(buffer, auction.MinAmount, amountLength)
	buffer, err := appendCurrency(buffer, auction.Currency)
	if nil != err {
		return nil, err
	}
	buffer = appendPadded(buffer, auction.ClosingAt, amountLength)
	if nil != auction.Winner {
		buffer = append(buffer, auction.Winner[:]...)
	}
	if nil != auction.Next {
		buffer = append(buffer, auction.Next[:]...)
	}
	return buffer, nil
}

// Pack - turn a sale into its stored form
func (sale *Sale) Pack() (Packed, error) {
	bitmap := byte(0)
	if nil != sale.Buyer {
		bitmap |= saleBuyer
	}

	buffer := make(Packed, 0, 64)
	buffer = append(buffer, bitmap)
	buffer = append(buffer, sale.WalletAddress[:]...)
	buffer = appendPadded(buffer, sale.Amount, amountLength)
	buffer, err := appendCurrency(buffer, sale.Currency)
	if nil != err {
		return nil, err
	}
	buffer = appendPadded(buffer, sale.ValidTill, amountLength)
	if nil != sale.Buyer {
		buffer = append(buffer, sale.Buyer[:]...)
	}
	return buffer, nil
}

// append a little-endian integer zero padded to width
func appendPadded(buffer Packed, value uint64, width int) Packed {
	n := make([]byte, width)
	binary.LittleEndian.PutUint64(n, value)
	return append(buffer, n...)
}

// append the three letter currency code
func appendCurrency(buffer Packed, c currency.Currency) (Packed, error) {
	if !c.IsValid() {
		return nil, fault.ErrCurrencyNotSupported
	}
	return append(buffer, c.Bytes()...), nil
}
