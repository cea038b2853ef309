// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package market

import (
	"github.com/neobex/neobexd/currency"
	"github.com/neobex/neobexd/fault"
	"github.com/neobex/neobexd/ledger"
	"github.com/neobex/neobexd/record"
)

type operation struct {
	count int
	run   func(*call) (interface{}, error)
}

// dispatch table
var operations map[string]operation

func init() {
	operations = map[string]operation{
		"sell":                     {5, sell},
		"auction":                  {5, auction},
		"buyOrBarter":              {7, buyOrBarter},
		"bid":                      {5, bid},
		"addWantedIdsToOffer":      {2, addWantedIdsToOffer},
		"removeWantedIdsFromOffer": {2, removeWantedIdsFromOffer},
		"cancelOffer":              {1, cancelOffer},
		"cancelBid":                {1, cancelBid},
		"cancelAuction":            {1, cancelAuction},
		"cancelSale":               {1, cancelSale},
		"balanceOf":                {1, balanceOf},
		"transfer":                 {3, transfer},
		"withdraw":                 {2, withdraw},
		"mintTokens":               {3, mintTokens},
		"updateUsdToNbxRate":       {1, updateUsdToNbxRate},
		"processAuctions":          {0, processAuctions},
		"totalSupply":              {0, totalSupply},
		"name":                     {0, name},
		"symbol":                   {0, symbol},
		"decimals":                 {0, decimals},
		"initSC":                   {0, initSC},
	}
}

// Operations - names of all operations
func Operations() []string {
	names := make([]string, 0, len(operations))
	for n := range operations {
		names = append(names, n)
	}
	return names
}

// ArgumentCount - number of arguments an operation takes
func ArgumentCount(operation string) (int, bool) {
	op, ok := operations[operation]
	return op.count, ok
}

func decodeCurrency(c *call, n int) (currency.Currency, error) {
	var cur currency.Currency
	if err := c.decode(n, &cur); nil != err {
		return currency.Nothing, err
	}
	if !cur.IsValid() {
		return currency.Nothing, fault.ErrCurrencyNotSupported
	}
	return cur, nil
}

// id, wallet, amount, currency, validTill
func sell(c *call) (interface{}, error) {
	id, err := c.id(0)
	if nil != err {
		return false, err
	}
	wallet, err := c.account(1)
	if nil != err {
		return false, err
	}
	amount, err := c.amount(2)
	if nil != err {
		return false, err
	}
	cur, err := decodeCurrency(c, 3)
	if nil != err {
		return false, err
	}
	validTill, err := c.amount(4)
	if nil != err {
		return false, err
	}

	if err := c.witness(wallet); nil != err {
		return false, err
	}
	if 0 == amount {
		return false, fault.ErrInvalidAmount
	}
	if validTill < c.now {
		return false, fault.ErrExpired
	}

	err = c.market.book.AddSale(&record.Sale{
		Id:            id,
		WalletAddress: wallet,
		Amount:        amount,
		Currency:      cur,
		ValidTill:     validTill,
	})
	if nil != err {
		return false, err
	}
	return true, nil
}

// id, wallet, minAmount, currency, closingAt
func auction(c *call) (interface{}, error) {
	id, err := c.id(0)
	if nil != err {
		return false, err
	}
	wallet, err := c.account(1)
	if nil != err {
		return false, err
	}
	minAmount, err := c.amount(2)
	if nil != err {
		return false, err
	}
	cur, err := decodeCurrency(c, 3)
	if nil != err {
		return false, err
	}
	closingAt, err := c.amount(4)
	if nil != err {
		return false, err
	}

	if err := c.witness(wallet); nil != err {
		return false, err
	}
	if closingAt <= c.now {
		return false, fault.ErrExpired
	}

	err = c.market.book.AddAuction(&record.Auction{
		Id:            id,
		WalletAddress: wallet,
		MinAmount:     minAmount,
		Currency:      cur,
		ClosingAt:     closingAt,
	})
	if nil != err {
		return false, err
	}
	return true, nil
}

// id, wallet, validTill, itemsNetWorth, totalAmount, currency, wantedIds
func buyOrBarter(c *call) (interface{}, error) {
	id, err := c.id(0)
	if nil != err {
		return false, err
	}
	wallet, err := c.account(1)
	if nil != err {
		return false, err
	}
	var validTill *uint64
	if err := c.decode(2, &validTill); nil != err {
		return false, err
	}
	items, err := c.amount(3)
	if nil != err {
		return false, err
	}
	total, err := c.amount(4)
	if nil != err {
		return false, err
	}
	cur, err := decodeCurrency(c, 5)
	if nil != err {
		return false, err
	}
	wanted, err := c.ids(6)
	if nil != err {
		return false, err
	}

	if err := c.witness(wallet); nil != err {
		return false, err
	}
	if 0 == total || total < items {
		return false, fault.ErrInvalidAmount
	}
	if nil != validTill && *validTill < c.now {
		return false, fault.ErrExpired
	}

	err = c.market.book.AddOffer(&record.Offer{
		Id:            id,
		WalletAddress: wallet,
		ValidTill:     validTill,
		ItemsNetWorth: items,
		TotalAmount:   total,
		Currency:      cur,
		WantedIds:     wanted,
	})
	if nil != err {
		return false, err
	}

	_, err = c.market.engine.Process(id, c.now, c.events)
	if nil != err {
		return false, err
	}
	return true, nil
}

// id, wallet, totalAmount, currency, auctionId
func bid(c *call) (interface{}, error) {
	id, err := c.id(0)
	if nil != err {
		return false, err
	}
	wallet, err := c.account(1)
	if nil != err {
		return false, err
	}
	total, err := c.amount(2)
	if nil != err {
		return false, err
	}
	cur, err := decodeCurrency(c, 3)
	if nil != err {
		return false, err
	}
	auctionId, err := c.id(4)
	if nil != err {
		return false, err
	}

	if err := c.witness(wallet); nil != err {
		return false, err
	}
	if 0 == total {
		return false, fault.ErrInvalidAmount
	}
	target, ok := c.market.book.Auction(auctionId)
	if !ok {
		return false, fault.ErrAuctionNotFound
	}
	if target.IsClosed(c.now) {
		return false, fault.ErrAuctionClosed
	}
	if target.WalletAddress == wallet {
		return false, fault.ErrWrongArgument
	}

	err = c.market.book.AddOffer(&record.Offer{
		Id:            id,
		WalletAddress: wallet,
		TotalAmount:   total,
		Currency:      cur,
		WantedIds:     []record.Id{auctionId},
		IsBid:         true,
	})
	if nil != err {
		return false, err
	}

	_, err = c.market.engine.Process(id, c.now, c.events)
	if nil != err {
		return false, err
	}
	return true, nil
}

// id, wantedIds
func addWantedIdsToOffer(c *call) (interface{}, error) {
	id, err := c.id(0)
	if nil != err {
		return false, err
	}
	wanted, err := c.ids(1)
	if nil != err {
		return false, err
	}
	if err := c.witnessOwner(id, fault.ErrOfferNotFound); nil != err {
		return false, err
	}

	err = c.market.book.AddWantedIds(id, wanted)
	if nil != err {
		return false, err
	}

	_, err = c.market.engine.Process(id, c.now, c.events)
	if nil != err {
		return false, err
	}
	return true, nil
}

// id, wantedIds
func removeWantedIdsFromOffer(c *call) (interface{}, error) {
	id, err := c.id(0)
	if nil != err {
		return false, err
	}
	wanted, err := c.ids(1)
	if nil != err {
		return false, err
	}
	if err := c.witnessOwner(id, fault.ErrOfferNotFound); nil != err {
		return false, err
	}

	err = c.market.book.RemoveWantedIds(id, wanted)
	if nil != err {
		return false, err
	}
	return true, nil
}

func cancelOffer(c *call) (interface{}, error) {
	return cancelWith(c, fault.ErrOfferNotFound, c.market.book.CancelOffer)
}

func cancelBid(c *call) (interface{}, error) {
	return cancelWith(c, fault.ErrBidNotFound, c.market.book.CancelBid)
}

func cancelAuction(c *call) (interface{}, error) {
	return cancelWith(c, fault.ErrAuctionNotFound, c.market.book.DeleteAuctionAndItsBids)
}

func cancelSale(c *call) (interface{}, error) {
	return cancelWith(c, fault.ErrSaleNotFound, c.market.book.CancelSale)
}

// owner witnessed removal of a record
func cancelWith(c *call, missing error, cancel func(record.Id) error) (interface{}, error) {
	id, err := c.id(0)
	if nil != err {
		return false, err
	}
	if err := c.witnessOwner(id, missing); nil != err {
		return false, err
	}
	err = cancel(id)
	if nil != err {
		return false, err
	}
	return true, nil
}

// account
func balanceOf(c *call) (interface{}, error) {
	a, err := c.account(0)
	if nil != err {
		return false, err
	}
	return c.market.ledger.BalanceOf(a), nil
}

// from, to, amount
func transfer(c *call) (interface{}, error) {
	from, err := c.account(0)
	if nil != err {
		return false, err
	}
	to, err := c.account(1)
	if nil != err {
		return false, err
	}
	amount, err := c.amount(2)
	if nil != err {
		return false, err
	}
	if err := c.witness(from); nil != err {
		return false, err
	}

	err = c.market.ledger.Transfer(from, to, amount, c.events)
	if nil != err {
		return false, err
	}
	return true, nil
}

// account, amount
func withdraw(c *call) (interface{}, error) {
	a, err := c.account(0)
	if nil != err {
		return false, err
	}
	amount, err := c.amount(1)
	if nil != err {
		return false, err
	}
	if err := c.witness(a); nil != err {
		return false, err
	}

	err = c.market.ledger.Withdraw(a, amount, c.events)
	if nil != err {
		return false, err
	}
	return true, nil
}

// sender, asset, deposit
func mintTokens(c *call) (interface{}, error) {
	sender, err := c.account(0)
	if nil != err {
		return false, err
	}
	var asset string
	if err := c.decode(1, &asset); nil != err {
		return false, err
	}
	deposit, err := c.amount(2)
	if nil != err {
		return false, err
	}
	if err := c.witnessClearing(); nil != err {
		return false, err
	}

	return c.market.ledger.Mint(sender, asset, deposit, c.now, c.events)
}

// rate
func updateUsdToNbxRate(c *call) (interface{}, error) {
	rate, err := c.amount(0)
	if nil != err {
		return false, err
	}
	if err := c.witnessClearing(); nil != err {
		return false, err
	}
	err = currency.SetUsdToNbxRate(rate)
	if nil != err {
		return false, err
	}
	c.market.log.Infof("usd to nbx rate: %d", rate)
	return true, nil
}

func processAuctions(c *call) (interface{}, error) {
	n, err := c.market.engine.CloseAuctions(c.now, c.events)
	if nil != err {
		return false, err
	}
	return n, nil
}

func totalSupply(c *call) (interface{}, error) {
	return c.market.ledger.TotalSupply(), nil
}

func name(c *call) (interface{}, error) {
	return ledger.Name, nil
}

func symbol(c *call) (interface{}, error) {
	return ledger.Symbol, nil
}

func decimals(c *call) (interface{}, error) {
	return ledger.Decimals, nil
}

func initSC(c *call) (interface{}, error) {
	if err := c.witnessClearing(); nil != err {
		return false, err
	}
	err := c.market.ledger.Initialise(c.events)
	if nil != err {
		return false, err
	}
	return true, nil
}
