// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package trade_test

import (
	"testing"

	"github.com/bitmark-inc/logger"
	"github.com/stretchr/testify/require"

	"github.com/neobex/neobexd/account"
	"github.com/neobex/neobexd/book"
	"github.com/neobex/neobexd/currency"
	"github.com/neobex/neobexd/fixtures"
	"github.com/neobex/neobexd/ledger"
	"github.com/neobex/neobexd/messagebus"
	"github.com/neobex/neobexd/record"
	"github.com/neobex/neobexd/storage"
	"github.com/neobex/neobexd/trade"
)

const (
	icoStart = 1520208000
	funding  = 1000000
)

type testEnv struct {
	book   *book.Book
	ledger *ledger.Ledger
	engine *trade.Engine
	events *messagebus.Pending
	trx    storage.Transaction
}

// fresh in memory store with every user holding the same funds
func newEnv(t require.TestingT, funded ...account.Account) *testEnv {
	err := storage.InitialiseInMemory()
	require.Nil(t, err, "storage")
	trx, err := storage.NewDBTransaction()
	require.Nil(t, err, "transaction")

	log := logger.New(fixtures.LogCategory)
	b := book.New(log, book.Handles{
		Offers:   storage.Pool.Offers,
		Sales:    storage.Pool.Sales,
		Auctions: storage.Pool.Auctions,
		Links:    storage.Pool.Links,
	})
	l := ledger.New(
		log,
		ledger.Handles{
			Balances: storage.Pool.Balances,
			Supply:   storage.Pool.Supply,
		},
		fixtures.Owner,
		ledger.Fees{Percentage: ledger.DefaultFeePercentage, Maximum: ledger.DefaultMaximumFee},
		ledger.DefaultICO("NEO", icoStart),
	)
	e := trade.New(log, b, l)

	env := &testEnv{
		book:   b,
		ledger: l,
		engine: e,
		events: &messagebus.Pending{},
		trx:    trx,
	}

	err = l.Initialise(env.events)
	require.Nil(t, err, "initialise ledger")
	for _, a := range funded {
		err = l.Transfer(fixtures.Owner, a, funding, env.events)
		require.Nil(t, err, "fund account")
	}
	env.events.Discard()

	return env
}

func (env *testEnv) close() {
	env.trx.Abort()
	storage.Finalise()
}

func setup(t *testing.T, funded ...account.Account) (*testEnv, func()) {
	fixtures.SetupTestLogger()
	env := newEnv(t, funded...)
	return env, func() {
		env.close()
		fixtures.TeardownTestLogger()
	}
}

func (env *testEnv) addOffer(t require.TestingT, n uint32, owner account.Account, items uint64, total uint64, wanted ...record.Id) record.Id {
	id := fixtures.MakeId(record.CategoryOffer, n)
	err := env.book.AddOffer(&record.Offer{
		Id:            id,
		WalletAddress: owner,
		ItemsNetWorth: items,
		TotalAmount:   total,
		Currency:      currency.NBX,
		WantedIds:     wanted,
	})
	require.Nil(t, err, "add offer")
	return id
}

func (env *testEnv) addSale(t require.TestingT, n uint32, owner account.Account, amount uint64, validTill uint64) record.Id {
	id := fixtures.MakeId(record.CategorySale, n)
	err := env.book.AddSale(&record.Sale{
		Id:            id,
		WalletAddress: owner,
		Amount:        amount,
		Currency:      currency.NBX,
		ValidTill:     validTill,
	})
	require.Nil(t, err, "add sale")
	return id
}

func (env *testEnv) addAuction(t require.TestingT, n uint32, owner account.Account, minimum uint64, closing uint64) record.Id {
	id := fixtures.MakeId(record.CategoryAuction, n)
	err := env.book.AddAuction(&record.Auction{
		Id:            id,
		WalletAddress: owner,
		MinAmount:     minimum,
		Currency:      currency.NBX,
		ClosingAt:     closing,
	})
	require.Nil(t, err, "add auction")
	return id
}

func (env *testEnv) addBid(t require.TestingT, n uint32, owner account.Account, total uint64, auctionId record.Id) record.Id {
	id := fixtures.MakeId(record.CategoryOffer, n)
	err := env.book.AddOffer(&record.Offer{
		Id:            id,
		WalletAddress: owner,
		TotalAmount:   total,
		Currency:      currency.NBX,
		WantedIds:     []record.Id{auctionId},
		IsBid:         true,
	})
	require.Nil(t, err, "add bid")
	return id
}

// count of held events with a command
func (env *testEnv) count(command string) int {
	n := 0
	for _, m := range env.events.Messages() {
		if command == m.Command {
			n += 1
		}
	}
	return n
}

// processing keys left in the links pool for a set of ids
func (env *testEnv) guardKeys(ids ...record.Id) int {
	n := 0
	if storage.Pool.Links.Has([]byte("OILAV")) {
		n += 1
	}
	for _, id := range ids {
		if storage.Pool.Links.Has(append(id.Bytes(), "VMK"...)) {
			n += 1
		}
	}
	return n
}
