// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package record

import (
	"github.com/neobex/neobexd/account"
	"github.com/neobex/neobexd/currency"
)

// MaxWantedIds - capacity of an offer's want list
const MaxWantedIds = 3

// Offer - a barter offer or a bid against an auction
type Offer struct {
	Id            Id                `json:"id"`
	WalletAddress account.Account   `json:"wallet"`
	ValidTill     *uint64           `json:"validTill,omitempty"`
	ItemsNetWorth uint64            `json:"itemsNetWorth"`
	TotalAmount   uint64            `json:"totalAmount"`
	Currency      currency.Currency `json:"currency"`
	WantedIds     []Id              `json:"wantedIds"`
	IsBid         bool              `json:"isBid"`
	NextBid       *Id               `json:"nextBid,omitempty"`
	NextNbxOffer  *Id               `json:"nextNbxOffer,omitempty"`
}

// IsNbxOffer - an offer funded only by tokens
//
// bids are tracked in their auction's bid list instead
func (offer *Offer) IsNbxOffer() bool {
	return !offer.IsBid && offer.TotalAmount > 0 && 0 == offer.ItemsNetWorth
}

// IsPureToken - no physical goods are included
func (offer *Offer) IsPureToken() bool {
	return 0 == offer.ItemsNetWorth
}

// TargetAuction - the auction a bid is placed against
func (offer *Offer) TargetAuction() (Id, bool) {
	if !offer.IsBid || 0 == len(offer.WantedIds) {
		return Id{}, false
	}
	return offer.WantedIds[0], true
}

// Wants - true if id is in the want list
func (offer *Offer) Wants(id Id) bool {
	for _, w := range offer.WantedIds {
		if w == id {
			return true
		}
	}
	return false
}

// IsExpired - ValidTill has passed
func (offer *Offer) IsExpired(now uint64) bool {
	return nil != offer.ValidTill && *offer.ValidTill < now
}

// Auction - goods sold to the highest valid bid after ClosingAt
type Auction struct {
	Id            Id                `json:"id"`
	WalletAddress account.Account   `json:"wallet"`
	MinAmount     uint64            `json:"minAmount"`
	Currency      currency.Currency `json:"currency"`
	ClosingAt     uint64            `json:"closingAt"`
	Winner        *account.Account  `json:"winner,omitempty"`
	Next          *Id               `json:"next,omitempty"`
}

// IsClosed - closing time is reached
func (auction *Auction) IsClosed(now uint64) bool {
	return auction.ClosingAt <= now
}

// Sale - goods sold for a fixed amount
type Sale struct {
	Id            Id                `json:"id"`
	WalletAddress account.Account   `json:"wallet"`
	Amount        uint64            `json:"amount"`
	Currency      currency.Currency `json:"currency"`
	ValidTill     uint64            `json:"validTill"`
	Buyer         *account.Account  `json:"buyer,omitempty"`
}

// IsExpired - ValidTill has passed
func (sale *Sale) IsExpired(now uint64) bool {
	return sale.ValidTill < now
}
