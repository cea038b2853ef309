// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package trade

import (
	"github.com/neobex/neobexd/book"
	"github.com/neobex/neobexd/messagebus"
)

// CloseAuctions - settle and remove every auction whose closing time
// has passed, returns the number removed
func (e *Engine) CloseAuctions(now uint64, events messagebus.Emitter) (int, error) {
	closed := 0
	fees := e.ledger.Fees()

	for {
		auctionId, ok := e.book.Auctions().Head()
		if !ok {
			break
		}
		auction, ok := e.book.Auction(auctionId)
		if !ok {
			e.log.Criticalf("auction list head: %s  not stored", auctionId)
			break
		}
		if auction.ClosingAt > now {
			break
		}

		minimum := book.MinimumBid(auction)
	bids:
		for _, bidId := range e.book.BidList(auctionId).Ids() {
			bid, ok := e.book.Offer(bidId)
			if !ok {
				continue bids
			}
			if book.TotalWorth(bid) < minimum {
				break bids
			}
			if !e.ledger.CanPay(bid.WalletAddress, fees.WithFee(book.TokenWorth(bid))) {
				e.book.DeleteOffer(bidId)
				e.stats.DisqualifiedBids.Increment()
				e.log.Infof("auction: %s  disqualified bid: %s", auctionId, bidId)
				continue bids
			}

			_, err := e.Process(bidId, now, events)
			if nil != err {
				return closed, err
			}

			if current, ok := e.book.Auction(auctionId); ok && nil != current.Winner {
				e.log.Infof("auction: %s  won by: %s", auctionId, current.Winner)
				break bids
			}
		}

		err := e.book.DeleteAuctionAndItsBids(auctionId)
		if nil != err {
			return closed, err
		}
		closed += 1
	}

	return closed, nil
}
