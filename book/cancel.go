// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package book

import (
	"github.com/neobex/neobexd/account"
	"github.com/neobex/neobexd/fault"
	"github.com/neobex/neobexd/record"
)

// CancelOffer - unlink and delete an offer or a bid
func (b *Book) CancelOffer(id record.Id) error {
	offer, ok := b.Offer(id)
	if !ok {
		return fault.ErrOfferNotFound
	}
	b.deleteOffer(offer)
	return nil
}

// CancelBid - unlink a bid from its auction and delete it
func (b *Book) CancelBid(id record.Id) error {
	offer, ok := b.Offer(id)
	if !ok {
		return fault.ErrBidNotFound
	}
	if !offer.IsBid {
		return fault.ErrOfferIsNotBid
	}
	b.deleteOffer(offer)
	return nil
}

// DeleteOffer - remove a settled or disqualified offer if still present
func (b *Book) DeleteOffer(id record.Id) {
	offer, ok := b.Offer(id)
	if !ok {
		return
	}
	b.deleteOffer(offer)
}

func (b *Book) deleteOffer(offer *record.Offer) {
	if auctionId, ok := offer.TargetAuction(); ok {
		b.BidList(auctionId).Remove(offer.Id)
	} else if offer.IsNbxOffer() {
		b.nbxOffers.Remove(offer.Id)
	}
	b.offers.Delete(offer.Id.Bytes())
	b.log.Debugf("delete offer: %s", offer.Id)
}

// CancelSale - delete a sale
func (b *Book) CancelSale(id record.Id) error {
	if !b.sales.Has(id.Bytes()) {
		return fault.ErrSaleNotFound
	}
	b.sales.Delete(id.Bytes())
	b.log.Debugf("delete sale: %s", id)
	return nil
}

// DeleteAuctionAndItsBids - unlink an auction, delete it and every bid
// remaining in its bid list
func (b *Book) DeleteAuctionAndItsBids(id record.Id) error {
	if !b.auctions.Has(id.Bytes()) {
		return fault.ErrAuctionNotFound
	}

	b.schedule.Remove(id)

	bids := b.BidList(id)
	n := 0
	for _, bidId := range bids.Ids() {
		b.offers.Delete(bidId.Bytes())
		n += 1
	}
	b.links.Delete(bids.RootKey())

	b.auctions.Delete(id.Bytes())
	b.log.Debugf("delete auction: %s  bids: %d", id, n)
	return nil
}

// SetSaleBuyer - mark a sale as sold
func (b *Book) SetSaleBuyer(id record.Id, buyer account.Account) {
	sale, ok := b.Sale(id)
	if !ok {
		b.corrupted(id, fault.ErrSaleNotFound)
	}
	sale.Buyer = &buyer
	if err := b.PutSale(sale); nil != err {
		b.corrupted(id, err)
	}
}

// SetAuctionWinner - record the account that won an auction
func (b *Book) SetAuctionWinner(id record.Id, winner account.Account) {
	auction, ok := b.Auction(id)
	if !ok {
		b.corrupted(id, fault.ErrAuctionNotFound)
	}
	auction.Winner = &winner
	b.mustPutAuction(auction)
}
