// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package book_test

import (
	"testing"

	"github.com/bitmark-inc/logger"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/neobex/neobexd/book"
	"github.com/neobex/neobexd/currency"
	"github.com/neobex/neobexd/fault"
	"github.com/neobex/neobexd/fixtures"
	"github.com/neobex/neobexd/record"
	"github.com/neobex/neobexd/storage"
)

func setup(t *testing.T) (*book.Book, func()) {
	fixtures.SetupTestLogger()
	err := storage.InitialiseInMemory()
	require.Nil(t, err, "storage")
	trx, err := storage.NewDBTransaction()
	require.Nil(t, err, "transaction")

	b := book.New(logger.New(fixtures.LogCategory), book.Handles{
		Offers:   storage.Pool.Offers,
		Sales:    storage.Pool.Sales,
		Auctions: storage.Pool.Auctions,
		Links:    storage.Pool.Links,
	})

	return b, func() {
		trx.Abort()
		storage.Finalise()
		fixtures.TeardownTestLogger()
	}
}

func addAuction(t *testing.T, b *book.Book, n uint32, closing uint64) record.Id {
	id := fixtures.MakeId(record.CategoryAuction, n)
	err := b.AddAuction(&record.Auction{
		Id:            id,
		WalletAddress: fixtures.Alice,
		MinAmount:     10,
		Currency:      currency.NBX,
		ClosingAt:     closing,
	})
	require.Nil(t, err, "add auction")
	return id
}

func addBid(t *testing.T, b *book.Book, n uint32, auctionId record.Id, amount uint64, c currency.Currency) record.Id {
	id := fixtures.MakeId(record.CategoryOffer, n)
	err := b.AddOffer(&record.Offer{
		Id:            id,
		WalletAddress: fixtures.Bob,
		TotalAmount:   amount,
		Currency:      c,
		WantedIds:     []record.Id{auctionId},
		IsBid:         true,
	})
	require.Nil(t, err, "add bid")
	return id
}

func TestBidListOrder(t *testing.T) {
	b, teardown := setup(t)
	defer teardown()

	auctionId := addAuction(t, b, 1, 1000)

	// USD is normalised at 5 per NBX
	b1 := addBid(t, b, 1, auctionId, 50, currency.NBX)
	b2 := addBid(t, b, 2, auctionId, 100, currency.NBX)
	b3 := addBid(t, b, 3, auctionId, 400, currency.USD)
	b4 := addBid(t, b, 4, auctionId, 50, currency.NBX)

	assert.Equal(t, []record.Id{b2, b3, b1, b4}, b.BidList(auctionId).Ids(), "wrong bid order")

	bid, ok := b.Offer(b3)
	require.True(t, ok, "bid not stored")
	assert.Equal(t, uint64(400), bid.TotalAmount, "stored amount must not be normalised")
	assert.Equal(t, uint64(80), book.TotalWorth(bid), "wrong worth")
	assert.False(t, b.NbxOffers().Contains(b1), "bid in token offer list")
}

func TestBidOrderKeptAfterRateChange(t *testing.T) {
	b, teardown := setup(t)
	defer teardown()
	defer func() { _ = currency.SetUsdToNbxRate(currency.DefaultUsdToNbxRate) }()

	auctionId := addAuction(t, b, 1, 1000)

	usd := addBid(t, b, 1, auctionId, 400, currency.USD)
	nbx := addBid(t, b, 2, auctionId, 50, currency.NBX)
	require.Equal(t, []record.Id{usd, nbx}, b.BidList(auctionId).Ids(), "initial order")

	// the USD bid is now worth 40, below the NBX bid
	err := currency.SetUsdToNbxRate(10)
	require.Nil(t, err, "set rate")

	bid, ok := b.Offer(usd)
	require.True(t, ok, "bid not stored")
	assert.Equal(t, uint64(40), book.TotalWorth(bid), "worth at new rate")
	assert.Equal(t, []record.Id{usd, nbx}, b.BidList(auctionId).Ids(), "bid list re-sorted")
}

func TestCancelSoleBidDeletesHead(t *testing.T) {
	b, teardown := setup(t)
	defer teardown()

	auctionId := addAuction(t, b, 1, 1000)
	bidId := addBid(t, b, 1, auctionId, 50, currency.NBX)

	head := b.BidList(auctionId).RootKey()
	assert.True(t, storage.Pool.Links.Has(head), "head missing")

	err := b.CancelBid(bidId)
	assert.Nil(t, err, "cancel")
	assert.False(t, storage.Pool.Links.Has(head), "head key remains")
	assert.False(t, b.Exists(bidId), "bid remains")

	assert.Equal(t, fault.ErrBidNotFound, b.CancelBid(bidId), "second cancel")
}

func TestCancelOfferRemovesBid(t *testing.T) {
	b, teardown := setup(t)
	defer teardown()

	auctionId := addAuction(t, b, 1, 1000)
	b1 := addBid(t, b, 1, auctionId, 70, currency.NBX)
	b2 := addBid(t, b, 2, auctionId, 60, currency.NBX)

	err := b.CancelOffer(b1)
	assert.Nil(t, err, "cancel")
	assert.Equal(t, []record.Id{b2}, b.BidList(auctionId).Ids(), "remaining bids")
}

func TestAuctionSchedule(t *testing.T) {
	b, teardown := setup(t)
	defer teardown()

	a1 := addAuction(t, b, 1, 300)
	a2 := addAuction(t, b, 2, 100)
	a3 := addAuction(t, b, 3, 200)
	a4 := addAuction(t, b, 4, 100)

	assert.Equal(t, []record.Id{a2, a4, a3, a1}, b.Auctions().Ids(), "wrong schedule")

	addBid(t, b, 1, a3, 20, currency.NBX)
	bid2 := addBid(t, b, 2, a3, 30, currency.NBX)

	err := b.DeleteAuctionAndItsBids(a3)
	assert.Nil(t, err, "delete")
	assert.Equal(t, []record.Id{a2, a4, a1}, b.Auctions().Ids(), "after delete")
	assert.False(t, b.Exists(bid2), "bid remains")
	assert.True(t, b.BidList(a3).IsEmpty(), "bid list remains")
	assert.Equal(t, fault.ErrAuctionNotFound, b.DeleteAuctionAndItsBids(a3), "second delete")
}

func TestBidValidation(t *testing.T) {
	b, teardown := setup(t)
	defer teardown()

	missing := fixtures.MakeId(record.CategoryAuction, 9)
	err := b.AddOffer(&record.Offer{
		Id:          fixtures.MakeId(record.CategoryOffer, 1),
		TotalAmount: 10,
		Currency:    currency.NBX,
		WantedIds:   []record.Id{missing},
		IsBid:       true,
	})
	assert.Equal(t, fault.ErrAuctionNotFound, err, "missing auction")

	auctionId := addAuction(t, b, 1, 100)
	b.SetAuctionWinner(auctionId, fixtures.Carol)
	err = b.AddOffer(&record.Offer{
		Id:          fixtures.MakeId(record.CategoryOffer, 2),
		TotalAmount: 10,
		Currency:    currency.NBX,
		WantedIds:   []record.Id{auctionId},
		IsBid:       true,
	})
	assert.Equal(t, fault.ErrAuctionClosed, err, "won auction")

	err = b.AddOffer(&record.Offer{
		Id:          fixtures.MakeId(record.CategorySale, 3),
		TotalAmount: 10,
		Currency:    currency.NBX,
	})
	assert.Equal(t, fault.ErrInvalidCategory, err, "offer with sale id")
}

func TestNbxOffers(t *testing.T) {
	b, teardown := setup(t)
	defer teardown()

	ids := make([]record.Id, 0, 3)
	for i := uint32(1); i <= 3; i += 1 {
		id := fixtures.MakeId(record.CategoryOffer, i)
		err := b.AddOffer(&record.Offer{
			Id:            id,
			WalletAddress: fixtures.Carol,
			TotalAmount:   uint64(i) * 10,
			Currency:      currency.NBX,
		})
		require.Nil(t, err, "add offer")
		ids = append(ids, id)
	}

	// goods make it a barter offer, not in the list
	barter := fixtures.MakeId(record.CategoryOffer, 4)
	err := b.AddOffer(&record.Offer{
		Id:            barter,
		WalletAddress: fixtures.Carol,
		ItemsNetWorth: 5,
		TotalAmount:   5,
		Currency:      currency.NBX,
	})
	require.Nil(t, err, "add barter")

	assert.Equal(t, []record.Id{ids[2], ids[1], ids[0]}, b.NbxOffers().Ids(), "wrong stack")

	err = b.CancelOffer(ids[1])
	assert.Nil(t, err, "cancel")
	assert.Equal(t, []record.Id{ids[2], ids[0]}, b.NbxOffers().Ids(), "after cancel")

	err = b.AddOffer(&record.Offer{Id: ids[0], TotalAmount: 1, Currency: currency.NBX})
	assert.Equal(t, fault.ErrRecordExists, err, "duplicate id")
}

func TestWantedIds(t *testing.T) {
	b, teardown := setup(t)
	defer teardown()

	id := fixtures.MakeId(record.CategoryOffer, 1)
	s1 := fixtures.MakeId(record.CategorySale, 1)
	s2 := fixtures.MakeId(record.CategorySale, 2)
	s3 := fixtures.MakeId(record.CategorySale, 3)
	s4 := fixtures.MakeId(record.CategorySale, 4)

	err := b.AddOffer(&record.Offer{
		Id:            id,
		WalletAddress: fixtures.Dave,
		ItemsNetWorth: 10,
		TotalAmount:   10,
		Currency:      currency.NBX,
		WantedIds:     []record.Id{s1},
	})
	require.Nil(t, err, "add offer")

	assert.Equal(t, fault.ErrDuplicateWantedId, b.AddWantedIds(id, []record.Id{s1}), "duplicate")
	assert.Equal(t, fault.ErrWrongArgument, b.AddWantedIds(id, []record.Id{id}), "self")
	assert.Equal(t, fault.ErrZeroId, b.AddWantedIds(id, []record.Id{{}}), "zero")

	assert.Nil(t, b.AddWantedIds(id, []record.Id{s2, s3}), "fill")
	assert.Equal(t, fault.ErrTooManyWantedIds, b.AddWantedIds(id, []record.Id{s4}), "overflow")

	assert.Nil(t, b.RemoveWantedIds(id, []record.Id{s2}), "remove")
	offer, _ := b.Offer(id)
	assert.Equal(t, []record.Id{s1, s3}, offer.WantedIds, "order after remove")

	assert.Equal(t, fault.ErrWantedIdNotFound, b.RemoveWantedIds(id, []record.Id{s4}), "absent")

	b.PruneWantedId(id, s1)
	offer, _ = b.Offer(id)
	assert.Equal(t, []record.Id{s3}, offer.WantedIds, "after prune")
}

func TestSaleLifecycle(t *testing.T) {
	b, teardown := setup(t)
	defer teardown()

	id := fixtures.MakeId(record.CategorySale, 1)
	err := b.AddSale(&record.Sale{
		Id:            id,
		WalletAddress: fixtures.Alice,
		Amount:        25,
		Currency:      currency.USD,
		ValidTill:     500,
	})
	require.Nil(t, err, "add sale")

	sale, ok := b.Sale(id)
	require.True(t, ok, "sale missing")
	assert.Equal(t, uint64(5), book.SalePrice(sale), "normalised price")

	owner, ok := b.Owner(id)
	assert.True(t, ok, "owner")
	assert.Equal(t, fixtures.Alice, owner, "wrong owner")

	b.SetSaleBuyer(id, fixtures.Bob)
	sale, _ = b.Sale(id)
	require.NotNil(t, sale.Buyer, "buyer not set")
	assert.Equal(t, fixtures.Bob, *sale.Buyer, "wrong buyer")

	assert.Nil(t, b.CancelSale(id), "cancel")
	assert.Equal(t, fault.ErrSaleNotFound, b.CancelSale(id), "second cancel")
}
