// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package trade_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/neobex/neobexd/fault"
	"github.com/neobex/neobexd/fixtures"
	"github.com/neobex/neobexd/ledger"
	"github.com/neobex/neobexd/record"
	"github.com/neobex/neobexd/storage"
	"github.com/neobex/neobexd/trade"
)

const now = 5000

func TestThreeWayBarter(t *testing.T) {
	env, teardown := setup(t, fixtures.Alice, fixtures.Bob, fixtures.Carol)
	defer teardown()

	aliceId := fixtures.MakeId(record.CategoryOffer, 1)
	bobId := fixtures.MakeId(record.CategoryOffer, 2)
	carolId := fixtures.MakeId(record.CategoryOffer, 3)

	env.addOffer(t, 1, fixtures.Alice, 100, 100, bobId)
	env.addOffer(t, 2, fixtures.Bob, 100, 100, carolId)
	env.addOffer(t, 3, fixtures.Carol, 100, 100, aliceId)

	clearing := env.ledger.BalanceOf(fixtures.Owner)

	settled, err := env.engine.Process(aliceId, now, env.events)
	require.Nil(t, err, "process")
	assert.True(t, settled, "circle not settled")

	assert.Equal(t, clearing, env.ledger.BalanceOf(fixtures.Owner), "clearing account changed")
	assert.Equal(t, int64(funding), env.ledger.BalanceOf(fixtures.Alice), "alice balance")
	assert.Equal(t, int64(funding), env.ledger.BalanceOf(fixtures.Bob), "bob balance")
	assert.Equal(t, int64(funding), env.ledger.BalanceOf(fixtures.Carol), "carol balance")

	assert.Equal(t, 3, env.count(ledger.EventTrade), "trade events")
	assert.Equal(t, 3, env.count(ledger.EventTransferAsset), "asset events")
	assert.Equal(t, 0, env.count(ledger.EventTransfer), "no token movement expected")

	for _, id := range []record.Id{aliceId, bobId, carolId} {
		assert.False(t, env.book.Exists(id), "settled offer remains")
	}
	assert.Equal(t, 0, env.guardKeys(aliceId, bobId, carolId), "guard not released")

	stats := env.engine.Statistics()
	assert.Equal(t, uint64(1), stats.Cycles.Uint64(), "cycles")
	assert.Equal(t, uint64(3), stats.SettledLinks.Uint64(), "links")
}

func TestClearingKeepsFees(t *testing.T) {
	env, teardown := setup(t, fixtures.Alice, fixtures.Bob)
	defer teardown()

	aliceId := fixtures.MakeId(record.CategoryOffer, 1)
	bobId := fixtures.MakeId(record.CategoryOffer, 2)

	// alice adds 500 tokens to her 1000 item for bob's 1500 item
	env.addOffer(t, 1, fixtures.Alice, 1000, 1600, bobId)
	env.addOffer(t, 2, fixtures.Bob, 1500, 1500, aliceId)

	clearing := env.ledger.BalanceOf(fixtures.Owner)

	settled, err := env.engine.Process(aliceId, now, env.events)
	require.Nil(t, err, "process")
	require.True(t, settled, "circle not settled")

	fee := env.ledger.Fees().Fee(500)
	assert.Equal(t, uint64(5), fee, "fee")
	assert.Equal(t, int64(funding-500), env.ledger.BalanceOf(fixtures.Alice), "alice pays the difference")
	assert.Equal(t, int64(funding+500)-int64(fee), env.ledger.BalanceOf(fixtures.Bob), "bob receives net of fee")
	assert.Equal(t, clearing+int64(fee), env.ledger.BalanceOf(fixtures.Owner), "clearing keeps the fee")
	assert.Equal(t, 2, env.count(ledger.EventTransfer), "token transfers")
}

func TestInsufficientBalanceBlocksBarter(t *testing.T) {
	env, teardown := setup(t, fixtures.Bob)
	defer teardown()

	aliceId := fixtures.MakeId(record.CategoryOffer, 1)
	bobId := fixtures.MakeId(record.CategoryOffer, 2)

	// dave has no tokens to cover the difference
	env.addOffer(t, 1, fixtures.Dave, 1000, 1600, bobId)
	env.addOffer(t, 2, fixtures.Bob, 1500, 1500, aliceId)

	settled, err := env.engine.Process(aliceId, now, env.events)
	require.Nil(t, err, "process")
	assert.False(t, settled, "unfunded circle settled")
	assert.True(t, env.book.Exists(aliceId), "offer removed")
	assert.True(t, env.book.Exists(bobId), "offer removed")
	assert.Equal(t, 0, env.guardKeys(aliceId, bobId), "guard not released")
}

func TestBiggestCircleWins(t *testing.T) {
	env, teardown := setup(t, fixtures.Alice, fixtures.Bob, fixtures.Carol)
	defer teardown()

	aliceId := fixtures.MakeId(record.CategoryOffer, 1)
	bobId := fixtures.MakeId(record.CategoryOffer, 2)
	carolId := fixtures.MakeId(record.CategoryOffer, 3)

	// bob would swap directly with alice, carol closes a longer circle
	env.addOffer(t, 1, fixtures.Alice, 100, 100, bobId)
	env.addOffer(t, 2, fixtures.Bob, 100, 100, aliceId, carolId)
	env.addOffer(t, 3, fixtures.Carol, 100, 100, aliceId)

	settled, err := env.engine.Process(aliceId, now, env.events)
	require.Nil(t, err, "process")
	require.True(t, settled, "not settled")

	assert.Equal(t, 3, env.count(ledger.EventTrade), "three links expected")
	assert.False(t, env.book.Exists(carolId), "carol not traded")
}

func TestDirectPurchase(t *testing.T) {
	env, teardown := setup(t, fixtures.Alice)
	defer teardown()

	saleId := env.addSale(t, 1, fixtures.Bob, 300, now+100)
	offerId := env.addOffer(t, 1, fixtures.Alice, 0, 400, saleId)
	require.True(t, env.book.NbxOffers().Contains(offerId), "token offer not listed")

	settled, err := env.engine.Process(offerId, now, env.events)
	require.Nil(t, err, "process")
	require.True(t, settled, "purchase not settled")

	assert.Equal(t, int64(funding-300), env.ledger.BalanceOf(fixtures.Alice), "buyer balance")
	assert.Equal(t, int64(300-3), env.ledger.BalanceOf(fixtures.Bob), "seller balance")

	sale, ok := env.book.Sale(saleId)
	require.True(t, ok, "sale removed")
	require.NotNil(t, sale.Buyer, "buyer not set")
	assert.Equal(t, fixtures.Alice, *sale.Buyer, "wrong buyer")

	assert.False(t, env.book.Exists(offerId), "offer remains")
	assert.True(t, env.book.NbxOffers().IsEmpty(), "offer still listed")
}

func TestTokenOfferClosesCircleFromItsOwnPass(t *testing.T) {
	env, teardown := setup(t, fixtures.Carol)
	defer teardown()

	// alice wants bob's sale, carol pays tokens for alice's item
	saleId := env.addSale(t, 1, fixtures.Bob, 100, now+100)
	aliceId := env.addOffer(t, 1, fixtures.Alice, 100, 100, saleId)
	carolId := env.addOffer(t, 2, fixtures.Carol, 0, 100, aliceId)
	require.True(t, env.book.NbxOffers().Contains(carolId), "token offer not listed")

	clearing := env.ledger.BalanceOf(fixtures.Owner)

	settled, err := env.engine.Process(carolId, now, env.events)
	require.Nil(t, err, "process")
	require.True(t, settled, "circle through the starting token offer not settled")

	fee := env.ledger.Fees().Fee(100)
	assert.Equal(t, int64(funding-100), env.ledger.BalanceOf(fixtures.Carol), "carol pays for the item")
	assert.Equal(t, int64(100)-int64(fee), env.ledger.BalanceOf(fixtures.Bob), "bob receives net of fee")
	assert.Equal(t, int64(0), env.ledger.BalanceOf(fixtures.Alice), "alice swaps items only")
	assert.Equal(t, clearing+int64(fee), env.ledger.BalanceOf(fixtures.Owner), "clearing keeps the fee")
	assert.Equal(t, 3, env.count(ledger.EventTrade), "trade events")

	sale, ok := env.book.Sale(saleId)
	require.True(t, ok, "sale removed")
	require.NotNil(t, sale.Buyer, "buyer not set")
	assert.Equal(t, fixtures.Alice, *sale.Buyer, "wrong buyer")

	assert.False(t, env.book.Exists(aliceId), "alice offer remains")
	assert.False(t, env.book.Exists(carolId), "carol offer remains")
	assert.True(t, env.book.NbxOffers().IsEmpty(), "token offer still listed")
	assert.Equal(t, 0, env.guardKeys(aliceId, carolId), "guard not released")
}

func TestExpiredSaleNotBought(t *testing.T) {
	env, teardown := setup(t, fixtures.Alice)
	defer teardown()

	saleId := env.addSale(t, 1, fixtures.Bob, 300, now-1)
	offerId := env.addOffer(t, 1, fixtures.Alice, 0, 400, saleId)

	settled, err := env.engine.Process(offerId, now, env.events)
	require.Nil(t, err, "process")
	assert.False(t, settled, "expired sale bought")
}

func TestDanglingWantedIdPruned(t *testing.T) {
	env, teardown := setup(t, fixtures.Alice)
	defer teardown()

	missing := fixtures.MakeId(record.CategoryOffer, 99)
	saleId := env.addSale(t, 1, fixtures.Bob, 300, now+100)
	offerId := env.addOffer(t, 1, fixtures.Alice, 50, 50, missing, saleId)

	settled, err := env.engine.Process(offerId, now, env.events)
	require.Nil(t, err, "process")
	assert.False(t, settled, "nothing to trade")

	offer, ok := env.book.Offer(offerId)
	require.True(t, ok, "offer removed")
	assert.Equal(t, []record.Id{saleId}, offer.WantedIds, "dangling id kept")
	assert.Equal(t, uint64(1), env.engine.Statistics().PrunedIds.Uint64(), "pruned count")
}

func TestHighestValidBid(t *testing.T) {
	env, teardown := setup(t, fixtures.Bob)
	defer teardown()

	auctionId := env.addAuction(t, 1, fixtures.Carol, 10, now-1)
	daveBid := env.addBid(t, 1, fixtures.Dave, 100, auctionId)
	bobBid := env.addBid(t, 2, fixtures.Bob, 80, auctionId)

	assert.False(t, env.engine.IsHighestValidBid(auctionId, daveBid, now), "unfunded bid accepted")
	assert.False(t, env.book.Exists(daveBid), "unfunded bid not cancelled")
	assert.Equal(t, uint64(1), env.engine.Statistics().DisqualifiedBids.Uint64(), "disqualified count")

	assert.True(t, env.engine.IsHighestValidBid(auctionId, bobBid, now), "funded bid rejected")
	assert.Equal(t, []record.Id{bobBid}, env.book.BidList(auctionId).Ids(), "bid list")
}

func TestLargerFundedBidWins(t *testing.T) {
	env, teardown := setup(t, fixtures.Alice, fixtures.Bob)
	defer teardown()

	auctionId := env.addAuction(t, 1, fixtures.Carol, 10, now-1)
	aliceBid := env.addBid(t, 1, fixtures.Alice, 100, auctionId)
	bobBid := env.addBid(t, 2, fixtures.Bob, 80, auctionId)

	assert.True(t, env.engine.IsHighestValidBid(auctionId, aliceBid, now), "highest bid rejected")
	assert.False(t, env.engine.IsHighestValidBid(auctionId, bobBid, now), "lower bid accepted")
	assert.True(t, env.book.Exists(bobBid), "funded bid cancelled")
}

func TestBidBeforeClosing(t *testing.T) {
	env, teardown := setup(t, fixtures.Bob)
	defer teardown()

	auctionId := env.addAuction(t, 1, fixtures.Carol, 10, now+100)
	bobBid := env.addBid(t, 1, fixtures.Bob, 80, auctionId)

	assert.False(t, env.engine.IsHighestValidBid(auctionId, bobBid, now), "open auction")

	settled, err := env.engine.Process(bobBid, now, env.events)
	require.Nil(t, err, "process")
	assert.False(t, settled, "bid settled before closing")
}

func TestBelowMinimumBid(t *testing.T) {
	env, teardown := setup(t, fixtures.Bob)
	defer teardown()

	auctionId := env.addAuction(t, 1, fixtures.Carol, 100, now-1)
	bobBid := env.addBid(t, 1, fixtures.Bob, 80, auctionId)

	assert.False(t, env.engine.IsHighestValidBid(auctionId, bobBid, now), "below minimum accepted")
	assert.True(t, env.book.Exists(bobBid), "funded bid cancelled")
}

func TestCloseAuctions(t *testing.T) {
	env, teardown := setup(t, fixtures.Bob)
	defer teardown()

	auctionId := env.addAuction(t, 1, fixtures.Carol, 10, now-1)
	later := env.addAuction(t, 2, fixtures.Carol, 10, now+100)
	daveBid := env.addBid(t, 1, fixtures.Dave, 100, auctionId)
	bobBid := env.addBid(t, 2, fixtures.Bob, 80, auctionId)
	laterBid := env.addBid(t, 3, fixtures.Bob, 50, later)

	clearing := env.ledger.BalanceOf(fixtures.Owner)

	n, err := env.engine.CloseAuctions(now, env.events)
	require.Nil(t, err, "close auctions")
	assert.Equal(t, 1, n, "closed count")

	assert.Equal(t, int64(funding-80), env.ledger.BalanceOf(fixtures.Bob), "winner balance")
	assert.Equal(t, int64(80), env.ledger.BalanceOf(fixtures.Carol), "seller balance")
	assert.Equal(t, clearing, env.ledger.BalanceOf(fixtures.Owner), "no fee below one hundred")

	for _, id := range []record.Id{auctionId, daveBid, bobBid} {
		assert.False(t, env.book.Exists(id), "closed auction records remain")
	}
	assert.False(t, storage.Pool.Links.Has(env.book.BidList(auctionId).RootKey()), "bid list head remains")
	assert.Equal(t, 2, env.count(ledger.EventTrade), "trade events")

	head, ok := env.book.Auctions().Head()
	assert.True(t, ok, "later auction removed")
	assert.Equal(t, later, head, "wrong schedule head")
	assert.True(t, env.book.Exists(laterBid), "open auction bid removed")
	assert.Equal(t, 0, env.guardKeys(daveBid, bobBid), "guard not released")
}

func TestCloseAuctionWithoutValidBid(t *testing.T) {
	env, teardown := setup(t)
	defer teardown()

	auctionId := env.addAuction(t, 1, fixtures.Carol, 10, now-1)
	daveBid := env.addBid(t, 1, fixtures.Dave, 100, auctionId)

	n, err := env.engine.CloseAuctions(now, env.events)
	require.Nil(t, err, "close auctions")
	assert.Equal(t, 1, n, "closed count")
	assert.False(t, env.book.Exists(auctionId), "auction remains")
	assert.False(t, env.book.Exists(daveBid), "bid remains")
	assert.Equal(t, 0, env.count(ledger.EventTrade), "nothing traded")
}

func TestTransferBlockedWhileLocked(t *testing.T) {
	env, teardown := setup(t, fixtures.Alice)
	defer teardown()

	bobId := fixtures.MakeId(record.CategoryOffer, 2)
	aliceId := env.addOffer(t, 1, fixtures.Alice, 100, 100, bobId)

	assert.False(t, env.engine.IsLocked(fixtures.Alice), "idle engine locked")

	// an interrupted pass leaves its guard behind
	trade.LeakGuard(env.engine, aliceId)
	assert.True(t, env.engine.IsLocked(fixtures.Alice), "owner of visited offer not locked")
	assert.False(t, env.engine.IsLocked(fixtures.Bob), "uninvolved account locked")

	err := env.ledger.Transfer(fixtures.Alice, fixtures.Bob, 10, env.events)
	assert.Equal(t, fault.ErrTradeInProgress, err, "transfer while locked")
	err = env.ledger.Withdraw(fixtures.Alice, 10, env.events)
	assert.Equal(t, fault.ErrTradeInProgress, err, "withdraw while locked")

	settled, err := env.engine.Process(aliceId, now, env.events)
	assert.Nil(t, err, "process")
	assert.False(t, settled, "pass ran while guard held")

	assert.True(t, env.engine.Recover(), "stale guard not found")
	assert.False(t, env.engine.Recover(), "guard found twice")
	assert.Equal(t, 0, env.guardKeys(aliceId), "guard not released")

	err = env.ledger.Transfer(fixtures.Alice, fixtures.Bob, 10, env.events)
	assert.Nil(t, err, "transfer after recovery")
}
