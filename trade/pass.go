// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package trade

import (
	"github.com/neobex/neobexd/account"
	"github.com/neobex/neobexd/book"
	"github.com/neobex/neobexd/messagebus"
	"github.com/neobex/neobexd/record"
)

// frame - one record in the chain
//
// worth is what the owner hands over, tokens what an offer can add on top
type frame struct {
	id       record.Id
	category record.Category
	owner    account.Account
	worth    uint64
	tokens   uint64
	isBid    bool
	wants    []record.Id
}

func offerFrame(offer *record.Offer) frame {
	return frame{
		id:       offer.Id,
		category: record.CategoryOffer,
		owner:    offer.WalletAddress,
		worth:    book.ItemsWorth(offer),
		tokens:   book.TokenWorth(offer),
		isBid:    offer.IsBid,
		wants:    offer.WantedIds,
	}
}

func saleFrame(sale *record.Sale) frame {
	return frame{
		id:       sale.Id,
		category: record.CategorySale,
		owner:    sale.WalletAddress,
		worth:    book.SalePrice(sale),
	}
}

// an auction is worth what the bid reaching it puts up
func auctionFrame(auction *record.Auction, bid *record.Offer) frame {
	return frame{
		id:       auction.Id,
		category: record.CategoryAuction,
		owner:    auction.WalletAddress,
		worth:    book.TotalWorth(bid),
	}
}

func (f *frame) isOffer() bool {
	return record.CategoryOffer == f.category
}

func (f *frame) wantsId(id record.Id) bool {
	for _, w := range f.wants {
		if w == id {
			return true
		}
	}
	return false
}

// pass - state of one matching pass
type pass struct {
	now    uint64
	events messagebus.Emitter
	path   []frame
	best   []frame
}

func (p *pass) push(f frame) {
	p.path = append(p.path, f)
}

func (p *pass) pop() {
	p.path = p.path[:len(p.path)-1]
}

func (p *pass) top() *frame {
	return &p.path[len(p.path)-1]
}

// involves - account owns a frame of the path or the best circle
func (p *pass) involves(a account.Account) bool {
	for _, f := range p.path {
		if f.owner == a {
			return true
		}
	}
	for _, f := range p.best {
		if f.owner == a {
			return true
		}
	}
	return false
}
