// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package book

import (
	"github.com/neobex/neobexd/fault"
	"github.com/neobex/neobexd/record"
)

// AddOffer - store a new offer or bid and link it into its list
func (b *Book) AddOffer(offer *record.Offer) error {
	if record.CategoryOffer != offer.Id.Category() {
		return fault.ErrInvalidCategory
	}
	if b.Exists(offer.Id) {
		return fault.ErrRecordExists
	}

	offer.NextBid = nil
	offer.NextNbxOffer = nil

	if offer.IsBid {
		if 1 != len(offer.WantedIds) {
			return fault.ErrWrongArgument
		}
		auction, ok := b.Auction(offer.WantedIds[0])
		if !ok {
			return fault.ErrAuctionNotFound
		}
		if nil != auction.Winner {
			return fault.ErrAuctionClosed
		}
	} else {
		err := b.checkWanted(offer, nil, offer.WantedIds)
		if nil != err {
			return err
		}
	}

	err := b.PutOffer(offer)
	if nil != err {
		return err
	}

	if offer.IsBid {
		b.BidList(offer.WantedIds[0]).Insert(offer.Id)
	} else if offer.IsNbxOffer() {
		b.nbxOffers.Insert(offer.Id)
	}
	b.log.Debugf("add offer: %s  bid: %t", offer.Id, offer.IsBid)
	return nil
}

// AddSale - store a new sale
func (b *Book) AddSale(sale *record.Sale) error {
	if record.CategorySale != sale.Id.Category() {
		return fault.ErrInvalidCategory
	}
	if b.Exists(sale.Id) {
		return fault.ErrRecordExists
	}
	sale.Buyer = nil
	err := b.PutSale(sale)
	if nil != err {
		return err
	}
	b.log.Debugf("add sale: %s", sale.Id)
	return nil
}

// AddAuction - store a new auction in closing time order
func (b *Book) AddAuction(auction *record.Auction) error {
	if record.CategoryAuction != auction.Id.Category() {
		return fault.ErrInvalidCategory
	}
	if b.Exists(auction.Id) {
		return fault.ErrRecordExists
	}
	auction.Winner = nil
	auction.Next = nil
	err := b.PutAuction(auction)
	if nil != err {
		return err
	}
	b.schedule.Insert(auction.Id)
	b.log.Debugf("add auction: %s  closing: %d", auction.Id, auction.ClosingAt)
	return nil
}

// validate ids to be added to a want list
func (b *Book) checkWanted(offer *record.Offer, existing []record.Id, wanted []record.Id) error {
	seen := make(map[record.Id]struct{}, len(existing)+len(wanted))
	for _, id := range existing {
		seen[id] = struct{}{}
	}
	for _, id := range wanted {
		if id.IsZero() {
			return fault.ErrZeroId
		}
		if !id.Category().IsValid() {
			return fault.ErrInvalidCategory
		}
		if id == offer.Id {
			return fault.ErrWrongArgument
		}
		if _, ok := seen[id]; ok {
			return fault.ErrDuplicateWantedId
		}
		seen[id] = struct{}{}
	}
	if len(seen) > record.MaxWantedIds {
		return fault.ErrTooManyWantedIds
	}
	return nil
}
