// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package trade

import (
	"github.com/neobex/neobexd/record"
)

// lookupTradeOpportunities - expand the offer on top of the path
func (e *Engine) lookupTradeOpportunities(p *pass, offer *record.Offer) {
	if !e.markVisited(offer.Id) {
		return
	}
	if offer.IsExpired(p.now) {
		return
	}

	wanted := make([]record.Id, len(offer.WantedIds))
	copy(wanted, offer.WantedIds)

	for _, id := range wanted {
		switch id.Category() {
		case record.CategoryOffer:
			e.followOffer(p, offer, id)
		case record.CategorySale:
			e.followSale(p, id)
		case record.CategoryAuction:
			e.followAuction(p, offer, id)
		default:
			e.prune(offer.Id, id)
		}
	}
}

func (e *Engine) followOffer(p *pass, offer *record.Offer, id record.Id) {
	wanted, ok := e.book.Offer(id)
	if !ok {
		e.prune(offer.Id, id)
		return
	}
	if wanted.IsBid || wanted.IsExpired(p.now) || e.isVisited(id) {
		return
	}

	f := offerFrame(wanted)
	if !e.isOfferReadyForTrade(p.top(), &f) {
		return
	}

	p.push(f)
	e.findTheBiggestTradeCircle(p)
	e.lookupTradeOpportunities(p, wanted)
	p.pop()
}

func (e *Engine) followSale(p *pass, id record.Id) {
	sale, ok := e.book.Sale(id)
	if !ok || nil != sale.Buyer || sale.IsExpired(p.now) {
		return
	}

	p.push(saleFrame(sale))
	e.closeDirect(p)
	e.linkNbxOffers(p)
	p.pop()
}

func (e *Engine) followAuction(p *pass, offer *record.Offer, id record.Id) {
	auction, ok := e.book.Auction(id)
	if !ok || nil != auction.Winner {
		return
	}
	if !offer.IsBid || !e.isHighestValidBid(id, offer.Id, p.now) {
		return
	}

	p.push(auctionFrame(auction, offer))
	e.closeDirect(p)
	e.linkNbxOffers(p)
	p.pop()
}

// the listing on top is paid for directly by the record that wants it
func (e *Engine) closeDirect(p *pass) {
	n := len(p.path)
	if n < 2 {
		return
	}
	buyer := &p.path[n-2]
	listing := &p.path[n-1]
	if buyer.isBid || (0 == buyer.worth && buyer.tokens >= listing.worth) {
		e.consider(p, n-2)
	}
}

// every token offer is an alternative way to pay the listing on top
//
// a visited token offer, such as the one that started the pass, may
// still close a circle but is not expanded again
func (e *Engine) linkNbxOffers(p *pass) {
	for _, id := range e.book.NbxOffers().Ids() {
		offer, ok := e.book.Offer(id)
		if !ok || offer.IsExpired(p.now) {
			continue
		}
		p.push(offerFrame(offer))
		e.findTheBiggestTradeCircle(p)
		if !e.isVisited(id) {
			e.lookupTradeOpportunities(p, offer)
		}
		p.pop()
	}
}

// findTheBiggestTradeCircle - close the path at the farthest frame the
// top offer wants
func (e *Engine) findTheBiggestTradeCircle(p *pass) {
	n := len(p.path)
	node := &p.path[n-1]
	if !node.isOffer() || node.isBid {
		return
	}

	for k := 0; k < n-1; k += 1 {
		terminus := &p.path[k]
		if record.CategoryAuction == terminus.category || terminus.isBid {
			continue
		}
		if !node.wantsId(terminus.id) {
			continue
		}
		if e.isOfferReadyForTrade(node, terminus) {
			e.consider(p, k)
		}
		return
	}
}

// consider - frames from k to the top as a candidate circle
func (e *Engine) consider(p *pass, k int) {
	size := len(p.path) - k
	if size < 2 || size <= len(p.best) {
		return
	}

	candidate := make([]frame, size)
	copy(candidate, p.path[k:])
	if !e.isCircleReadyForTrade(p, candidate) {
		return
	}

	p.best = candidate
	e.log.Debugf("candidate circle: %d links  from: %s", size, candidate[0].id)
}

// prune - drop a wanted id that no longer resolves
func (e *Engine) prune(id record.Id, wanted record.Id) {
	e.book.PruneWantedId(id, wanted)
	e.stats.PrunedIds.Increment()
}
