// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package book

import (
	"github.com/neobex/neobexd/record"
)

// successor pointers of the three lists

type bidNodes struct{ b *Book }

func (n bidNodes) Next(id record.Id) (*record.Id, bool) {
	offer, ok := n.b.Offer(id)
	if !ok {
		return nil, false
	}
	return offer.NextBid, true
}

func (n bidNodes) SetNext(id record.Id, next *record.Id) {
	offer, ok := n.b.Offer(id)
	if !ok {
		return
	}
	offer.NextBid = copyId(next)
	n.b.mustPutOffer(offer)
}

type nbxNodes struct{ b *Book }

func (n nbxNodes) Next(id record.Id) (*record.Id, bool) {
	offer, ok := n.b.Offer(id)
	if !ok {
		return nil, false
	}
	return offer.NextNbxOffer, true
}

func (n nbxNodes) SetNext(id record.Id, next *record.Id) {
	offer, ok := n.b.Offer(id)
	if !ok {
		return
	}
	offer.NextNbxOffer = copyId(next)
	n.b.mustPutOffer(offer)
}

type auctionNodes struct{ b *Book }

func (n auctionNodes) Next(id record.Id) (*record.Id, bool) {
	auction, ok := n.b.Auction(id)
	if !ok {
		return nil, false
	}
	return auction.Next, true
}

func (n auctionNodes) SetNext(id record.Id, next *record.Id) {
	auction, ok := n.b.Auction(id)
	if !ok {
		return
	}
	auction.Next = copyId(next)
	n.b.mustPutAuction(auction)
}

func copyId(id *record.Id) *record.Id {
	if nil == id {
		return nil
	}
	c := *id
	return &c
}
