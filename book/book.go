// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package book

import (
	"github.com/bitmark-inc/logger"

	"github.com/neobex/neobexd/account"
	"github.com/neobex/neobexd/fault"
	"github.com/neobex/neobexd/index"
	"github.com/neobex/neobexd/record"
	"github.com/neobex/neobexd/storage"
)

// root keys in the links pool
var (
	nbxOffersKey   = []byte("FNO")
	auctionListKey = []byte("ECA")
	bidListSuffix  = []byte("FBTAK")
)

// Handles - the pools a book is kept in
type Handles struct {
	Offers   storage.Handle
	Sales    storage.Handle
	Auctions storage.Handle
	Links    storage.Handle
}

// Book - offers, sales and auctions with their lists
type Book struct {
	log      *logger.L
	offers   storage.Handle
	sales    storage.Handle
	auctions storage.Handle
	links    storage.Handle

	nbxOffers *index.List
	schedule  *index.List
}

// New - create a book over a set of pools
func New(log *logger.L, handles Handles) *Book {
	b := &Book{
		log:      log,
		offers:   handles.Offers,
		sales:    handles.Sales,
		auctions: handles.Auctions,
		links:    handles.Links,
	}
	b.nbxOffers = index.New(b.links, nbxOffersKey, nbxNodes{b}, nil)
	b.schedule = index.New(b.links, auctionListKey, auctionNodes{b}, b.closesNoEarlier)
	return b
}

// Links - the pool holding list roots and processing markers
func (b *Book) Links() storage.Handle {
	return b.links
}

// NbxOffers - stack of token only offers
func (b *Book) NbxOffers() *index.List {
	return b.nbxOffers
}

// Auctions - auctions in ascending closing time
func (b *Book) Auctions() *index.List {
	return b.schedule
}

// BidList - bids of an auction in descending amount
func (b *Book) BidList(auctionId record.Id) *index.List {
	root := make([]byte, 0, record.IdLength+len(bidListSuffix))
	root = append(root, auctionId.Bytes()...)
	root = append(root, bidListSuffix...)
	return index.New(b.links, root, bidNodes{b}, b.bidsNoLarger)
}

// Exists - true if any record is stored under id
func (b *Book) Exists(id record.Id) bool {
	switch id.Category() {
	case record.CategoryOffer:
		return b.offers.Has(id.Bytes())
	case record.CategorySale:
		return b.sales.Has(id.Bytes())
	case record.CategoryAuction:
		return b.auctions.Has(id.Bytes())
	default:
		return false
	}
}

// Offer - read an offer or bid, false if absent
func (b *Book) Offer(id record.Id) (*record.Offer, bool) {
	packed := b.offers.Get(id.Bytes())
	if nil == packed {
		return nil, false
	}
	offer, err := record.UnpackOffer(id, packed)
	if nil != err {
		b.corrupted(id, err)
	}
	return offer, true
}

// Sale - read a sale, false if absent
func (b *Book) Sale(id record.Id) (*record.Sale, bool) {
	packed := b.sales.Get(id.Bytes())
	if nil == packed {
		return nil, false
	}
	sale, err := record.UnpackSale(id, packed)
	if nil != err {
		b.corrupted(id, err)
	}
	return sale, true
}

// Auction - read an auction, false if absent
func (b *Book) Auction(id record.Id) (*record.Auction, bool) {
	packed := b.auctions.Get(id.Bytes())
	if nil == packed {
		return nil, false
	}
	auction, err := record.UnpackAuction(id, packed)
	if nil != err {
		b.corrupted(id, err)
	}
	return auction, true
}

// Owner - wallet of any record, false if absent
func (b *Book) Owner(id record.Id) (account.Account, bool) {
	switch id.Category() {
	case record.CategoryOffer:
		if offer, ok := b.Offer(id); ok {
			return offer.WalletAddress, true
		}
	case record.CategorySale:
		if sale, ok := b.Sale(id); ok {
			return sale.WalletAddress, true
		}
	case record.CategoryAuction:
		if auction, ok := b.Auction(id); ok {
			return auction.WalletAddress, true
		}
	}
	return account.Account{}, false
}

// PutOffer - store an offer in place
func (b *Book) PutOffer(offer *record.Offer) error {
	packed, err := offer.Pack()
	if nil != err {
		return err
	}
	b.offers.Put(offer.Id.Bytes(), packed)
	return nil
}

// PutSale - store a sale in place
func (b *Book) PutSale(sale *record.Sale) error {
	packed, err := sale.Pack()
	if nil != err {
		return err
	}
	b.sales.Put(sale.Id.Bytes(), packed)
	return nil
}

// PutAuction - store an auction in place
func (b *Book) PutAuction(auction *record.Auction) error {
	packed, err := auction.Pack()
	if nil != err {
		return err
	}
	b.auctions.Put(auction.Id.Bytes(), packed)
	return nil
}

// rewrite of a record already validated on creation
func (b *Book) mustPutOffer(offer *record.Offer) {
	if err := b.PutOffer(offer); nil != err {
		b.corrupted(offer.Id, err)
	}
}

func (b *Book) mustPutAuction(auction *record.Auction) {
	if err := b.PutAuction(auction); nil != err {
		b.corrupted(auction.Id, err)
	}
}

func (b *Book) corrupted(id record.Id, err error) {
	b.log.Criticalf("record: %s  error: %s", id, err)
	logger.Panicf("book: record: %s  error: %s", id, err)
}

// order of bids: incoming goes after any bid of at least its amount
func (b *Book) bidsNoLarger(incoming record.Id, existing record.Id) bool {
	in, ok := b.Offer(incoming)
	if !ok {
		b.corrupted(incoming, fault.ErrBidNotFound)
	}
	ex, ok := b.Offer(existing)
	if !ok {
		b.corrupted(existing, fault.ErrBidNotFound)
	}
	return TotalWorth(ex) >= TotalWorth(in)
}

// order of auctions: incoming goes after any auction closing no later
func (b *Book) closesNoEarlier(incoming record.Id, existing record.Id) bool {
	in, ok := b.Auction(incoming)
	if !ok {
		b.corrupted(incoming, fault.ErrAuctionNotFound)
	}
	ex, ok := b.Auction(existing)
	if !ok {
		b.corrupted(existing, fault.ErrAuctionNotFound)
	}
	return ex.ClosingAt <= in.ClosingAt
}
