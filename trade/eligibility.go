// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package trade

import (
	"github.com/neobex/neobexd/account"
	"github.com/neobex/neobexd/book"
	"github.com/neobex/neobexd/record"
)

// isOfferReadyForTrade - offer gives at least what it receives or its
// owner can pay the difference
func (e *Engine) isOfferReadyForTrade(offer *frame, wanted *frame) bool {
	if offer.worth >= wanted.worth {
		return true
	}
	diff := wanted.worth - offer.worth
	if diff > offer.tokens {
		return false
	}
	return e.ledger.CanPay(offer.owner, e.ledger.Fees().WithFee(diff))
}

func (e *Engine) isHighestValidBid(auctionId record.Id, bidId record.Id, now uint64) bool {
	auction, ok := e.book.Auction(auctionId)
	if !ok || nil != auction.Winner || now < auction.ClosingAt {
		return false
	}

	bid, ok := e.book.Offer(bidId)
	if !ok || !bid.IsBid {
		return false
	}
	if target, _ := bid.TargetAuction(); target != auctionId {
		return false
	}

	fees := e.ledger.Fees()
	if !e.ledger.CanPay(bid.WalletAddress, fees.WithFee(book.TokenWorth(bid))) {
		e.book.DeleteOffer(bidId)
		e.stats.DisqualifiedBids.Increment()
		e.log.Infof("auction: %s  disqualified bid: %s  owner: %s", auctionId, bidId, bid.WalletAddress)
		return false
	}

	worth := book.TotalWorth(bid)
	if worth < book.MinimumBid(auction) {
		return false
	}

	accepted := false
	e.book.BidList(auctionId).Walk(func(id record.Id) bool {
		if id == bidId {
			accepted = true
			return false
		}
		other, ok := e.book.Offer(id)
		if !ok {
			return true
		}
		if book.TotalWorth(other) <= worth {
			accepted = true
			return false
		}

		// a larger bid that can certainly be paid wins
		if other.IsPureToken() && e.ledger.CanPay(other.WalletAddress, fees.WithFee(book.TokenWorth(other))) {
			return false
		}
		return true
	})
	return accepted
}

// isCircleReadyForTrade - every link valid and every owner able to
// pay its total share
func (e *Engine) isCircleReadyForTrade(p *pass, circle []frame) bool {
	n := len(circle)
	seen := make(map[record.Id]struct{}, n)
	owes := make(map[account.Account]uint64, n)
	fees := e.ledger.Fees()

	for i := range circle {
		f := &circle[i]
		next := &circle[(i+1)%n]

		if _, ok := seen[f.id]; ok {
			return false
		}
		seen[f.id] = struct{}{}

		if f.isBid {
			if record.CategoryAuction != next.category || 0 == len(f.wants) || f.wants[0] != next.id {
				return false
			}
			if !e.isHighestValidBid(next.id, f.id, p.now) {
				return false
			}
		} else if record.CategoryAuction == next.category {
			return false
		}

		if f.worth < next.worth {
			if !f.isOffer() {
				return false
			}
			diff := next.worth - f.worth
			if diff > f.tokens {
				return false
			}
			owes[f.owner] += fees.WithFee(diff)
		}
	}

	clearing := e.ledger.Owner()
	for owner, amount := range owes {
		if owner == clearing {
			continue
		}
		if !e.ledger.CanPay(owner, amount) {
			return false
		}
	}
	return true
}
