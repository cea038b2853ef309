// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package book

import (
	"github.com/neobex/neobexd/record"
)

// values in NBX at the current rate; records keep their own currency

// ItemsWorth - physical goods of an offer
func ItemsWorth(offer *record.Offer) uint64 {
	return offer.Currency.ToNBX(offer.ItemsNetWorth)
}

// TotalWorth - everything an offer or bid puts up
func TotalWorth(offer *record.Offer) uint64 {
	return offer.Currency.ToNBX(offer.TotalAmount)
}

// TokenWorth - the token part of an offer
func TokenWorth(offer *record.Offer) uint64 {
	items := ItemsWorth(offer)
	total := TotalWorth(offer)
	if total < items {
		return 0
	}
	return total - items
}

// SalePrice - price of a sale
func SalePrice(sale *record.Sale) uint64 {
	return sale.Currency.ToNBX(sale.Amount)
}

// MinimumBid - reserve of an auction
func MinimumBid(auction *record.Auction) uint64 {
	return auction.Currency.ToNBX(auction.MinAmount)
}
