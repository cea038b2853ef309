// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package record

import (
	"encoding/binary"

	"github.com/neobex/neobexd/account"
	"github.com/neobex/neobexd/currency"
	"github.com/neobex/neobexd/fault"
)

// sequential reader over a packed record
type reader struct {
	buffer Packed
	n      int
}

func (r *reader) remaining() int {
	return len(r.buffer) - r.n
}

func (r *reader) take(count int) ([]byte, error) {
	if r.remaining() < count {
		return nil, fault.ErrRecordTruncated
	}
	b := r.buffer[r.n : r.n+count]
	r.n += count
	return b, nil
}

func (r *reader) padded(width int) (uint64, error) {
	b, err := r.take(width)
	if nil != err {
		return 0, err
	}
	for _, pad := range b[amountLength:] {
		if 0 != pad {
			return 0, fault.ErrNotRecordPack
		}
	}
	return binary.LittleEndian.Uint64(b[:amountLength]), nil
}

func (r *reader) account() (account.Account, error) {
	b, err := r.take(account.AccountLength)
	if nil != err {
		return account.Account{}, err
	}
	return account.FromBytes(b)
}

func (r *reader) id() (Id, error) {
	b, err := r.take(IdLength)
	if nil != err {
		return Id{}, err
	}
	return IdFromBytes(b)
}

func (r *reader) currency() (currency.Currency, error) {
	b, err := r.take(currency.CodeLength)
	if nil != err {
		return currency.Nothing, err
	}
	return currency.FromBytes(b)
}

// UnpackOffer - decode the stored form of an offer
func UnpackOffer(id Id, record Packed) (offer *Offer, e error) {

	defer func() {
		if r := recover(); nil != r {
			offer = nil
			e = fault.ErrNotRecordPack
		}
	}()

	r := &reader{buffer: record}
	bitmap, err := r.take(bitmapLength)
	if nil != err {
		return nil, err
	}
	flags := bitmap[0]
	if 0 != flags&^offerMask {
		return nil, fault.ErrInvalidBitmap
	}

	offer = &Offer{
		Id:    id,
		IsBid: 0 != flags&offerIsBid,
	}

	if offer.WalletAddress, err = r.account(); nil != err {
		return nil, err
	}
	if 0 != flags&offerValidTill {
		validTill, err := r.padded(dateTimeLength)
		if nil != err {
			return nil, err
		}
		offer.ValidTill = &validTill
	}
	if 0 != flags&offerItemsValue {
		if offer.ItemsNetWorth, err = r.padded(amountLength); nil != err {
			return nil, err
		}
	}
	if offer.TotalAmount, err = r.padded(amountLength); nil != err {
		return nil, err
	}
	if offer.Currency, err = r.currency(); nil != err {
		return nil, err
	}
	if 0 != flags&offerNextBid {
		next, err := r.id()
		if nil != err {
			return nil, err
		}
		offer.NextBid = &next
	}
	if 0 != flags&offerNextNbxOffer {
		next, err := r.id()
		if nil != err {
			return nil, err
		}
		offer.NextNbxOffer = &next
	}

	// wanted ids fill the tail: count from the remaining length
	if 0 != r.remaining()%IdLength {
		return nil, fault.ErrWantedIdsLength
	}
	count := r.remaining() / IdLength
	if count > MaxWantedIds {
		return nil, fault.ErrTooManyWantedIds
	}
	if count > 0 {
		offer.WantedIds = make([]Id, count)
		for i := 0; i < count; i += 1 {
			if offer.WantedIds[i], err = r.id(); nil != err {
				return nil, err
			}
		}
	}
	return offer, nil
}

// UnpackAuction - decode the stored form of an auction
func UnpackAuction(id Id, record Packed) (auction *Auction, e error) {

	defer func() {
		if r := recover(); nil != r {
			auction = nil
			e = fault.ErrNotRecordPack
		}
	}()

	r := &reader{buffer: record}
	bitmap, err := r.take(auctionBitmap)
	if nil != err {
		return nil, err
	}
	flags := bitmap[0]
	if 0 != flags&^auctionMask || 0 != bitmap[1] {
		return nil, fault.ErrInvalidBitmap
	}

	auction = &Auction{
		Id: id,
	}
	if auction.WalletAddress, err = r.account(); nil != err {
		return nil, err
	}
	if auction.MinAmount, err = r.padded(amountLength); nil != err {
		return nil, err
	}
	if auction.Currency, err = r.currency(); nil != err {
		return nil, err
	}
	if auction.ClosingAt, err = r.padded(amountLength); nil != err {
		return nil, err
	}
	if 0 != flags&auctionWinner {
		winner, err := r.account()
		if nil != err {
			return nil, err
		}
		auction.Winner = &winner
	}
	if 0 != flags&auctionNext {
		next, err := r.id()
		if nil != err {
			return nil, err
		}
		auction.Next = &next
	}
	if 0 != r.remaining() {
		return nil, fault.ErrNotRecordPack
	}
	return auction, nil
}

// UnpackSale - decode the stored form of a sale
func UnpackSale(id Id, record Packed) (sale *Sale, e error) {

	defer func() {
		if r := recover(); nil != r {
			sale = nil
			e = fault.ErrNotRecordPack
		}
	}()

	r := &reader{buffer: record}
	bitmap, err := r.take(bitmapLength)
	if nil != err {
		return nil, err
	}
	flags := bitmap[0]
	if 0 != flags&^saleMask {
		return nil, fault.ErrInvalidBitmap
	}

	sale = &Sale{
		Id: id,
	}
	if sale.WalletAddress, err = r.account(); nil != err {
		return nil, err
	}
	if sale.Amount, err = r.padded(amountLength); nil != err {
		return nil, err
	}
	if sale.Currency, err = r.currency(); nil != err {
		return nil, err
	}
	if sale.ValidTill, err = r.padded(amountLength); nil != err {
		return nil, err
	}
	if 0 != flags&saleBuyer {
		buyer, err := r.account()
		if nil != err {
			return nil, err
		}
		sale.Buyer = &buyer
	}
	if 0 != r.remaining() {
		return nil, fault.ErrNotRecordPack
	}
	return sale, nil
}
