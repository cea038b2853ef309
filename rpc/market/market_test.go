// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package market_test

import (
	"encoding/json"
	"testing"

	"github.com/bitmark-inc/logger"
	"github.com/golang/mock/gomock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/neobex/neobexd/account"
	"github.com/neobex/neobexd/fault"
	"github.com/neobex/neobexd/fixtures"
	"github.com/neobex/neobexd/market/mocks"
	"github.com/neobex/neobexd/record"
	"github.com/neobex/neobexd/rpc/market"
)

func rawArguments(t *testing.T, values ...interface{}) []json.RawMessage {
	arguments := make([]json.RawMessage, len(values))
	for i, v := range values {
		buffer, err := json.Marshal(v)
		require.Nil(t, err, "marshal argument: %d", i)
		arguments[i] = buffer
	}
	return arguments
}

func sign(t *testing.T, key *account.PrivateKey, operation string, arguments []json.RawMessage) market.Signature {
	message, err := market.Message(operation, arguments)
	require.Nil(t, err, "message")
	return market.Signature{
		PublicKey: key.PublicKey(),
		Signature: key.Sign(message),
	}
}

func TestMessage(t *testing.T) {
	spaced := []json.RawMessage{json.RawMessage(` { "a" : 1 } `), json.RawMessage(`2`)}
	compact := []json.RawMessage{json.RawMessage(`{"a":1}`), json.RawMessage(`2`)}

	m1, err := market.Message("sell", spaced)
	assert.Nil(t, err, "spaced")
	m2, err := market.Message("sell", compact)
	assert.Nil(t, err, "compact")
	assert.Equal(t, m1, m2, "whitespace changed the message")
	assert.Equal(t, "sell\x00{\"a\":1}\x002", string(m2), "wrong layout")

	_, err = market.Message("sell", []json.RawMessage{json.RawMessage(`{`)})
	assert.Equal(t, fault.ErrWrongArgument, err, "broken JSON")
}

func TestInvoke(t *testing.T) {
	fixtures.SetupTestLogger()
	defer fixtures.TeardownTestLogger()

	ctl := gomock.NewController(t)
	defer ctl.Finish()

	h := mocks.NewMockHandle(ctl)
	m := market.New(logger.New(fixtures.LogCategory), h)

	arguments := rawArguments(t, fixtures.Alice, fixtures.Bob, 100)
	args := market.InvokeArguments{
		Operation: "transfer",
		Arguments: arguments,
		Signatures: []market.Signature{
			sign(t, fixtures.AliceKey, "transfer", arguments),
			sign(t, fixtures.CarolKey, "transfer", arguments),
		},
	}

	h.EXPECT().Invoke("transfer", arguments, []account.Account{fixtures.Alice, fixtures.Carol}).Return(true, nil).Times(1)

	var reply market.InvokeReply
	err := m.Invoke(&args, &reply)
	assert.Nil(t, err, "wrong Invoke")
	assert.Equal(t, true, reply.Result, "wrong result")
}

func TestInvokeWithoutSignature(t *testing.T) {
	fixtures.SetupTestLogger()
	defer fixtures.TeardownTestLogger()

	ctl := gomock.NewController(t)
	defer ctl.Finish()

	h := mocks.NewMockHandle(ctl)
	m := market.New(logger.New(fixtures.LogCategory), h)

	h.EXPECT().Invoke("totalSupply", gomock.Any(), []account.Account{}).Return(uint64(5), nil).Times(1)

	var reply market.InvokeReply
	err := m.Invoke(&market.InvokeArguments{Operation: "totalSupply"}, &reply)
	assert.Nil(t, err, "wrong Invoke")
	assert.Equal(t, uint64(5), reply.Result, "wrong result")
}

func TestInvokeBadSignature(t *testing.T) {
	fixtures.SetupTestLogger()
	defer fixtures.TeardownTestLogger()

	ctl := gomock.NewController(t)
	defer ctl.Finish()

	h := mocks.NewMockHandle(ctl)
	m := market.New(logger.New(fixtures.LogCategory), h)

	arguments := rawArguments(t, fixtures.Alice, fixtures.Bob, 100)
	forged := rawArguments(t, fixtures.Alice, fixtures.Bob, 1000)
	args := market.InvokeArguments{
		Operation:  "transfer",
		Arguments:  forged,
		Signatures: []market.Signature{sign(t, fixtures.AliceKey, "transfer", arguments)},
	}

	var reply market.InvokeReply
	err := m.Invoke(&args, &reply)
	assert.Equal(t, fault.ErrInvalidSignature, err, "forged arguments")

	args.Operation = "withdraw"
	args.Arguments = arguments
	err = m.Invoke(&args, &reply)
	assert.Equal(t, fault.ErrInvalidSignature, err, "signature for another operation")

	err = m.Invoke(&market.InvokeArguments{}, &reply)
	assert.Equal(t, fault.ErrMissingParameters, err, "no operation")
}

func TestInvokeError(t *testing.T) {
	fixtures.SetupTestLogger()
	defer fixtures.TeardownTestLogger()

	ctl := gomock.NewController(t)
	defer ctl.Finish()

	h := mocks.NewMockHandle(ctl)
	m := market.New(logger.New(fixtures.LogCategory), h)

	h.EXPECT().Invoke("nothing", gomock.Any(), gomock.Any()).Return(false, fault.ErrUnknownOperation).Times(1)

	var reply market.InvokeReply
	err := m.Invoke(&market.InvokeArguments{Operation: "nothing"}, &reply)
	assert.Equal(t, fault.ErrUnknownOperation, err, "wrong error")
	assert.Nil(t, reply.Result, "result set on error")
}

func TestRead(t *testing.T) {
	fixtures.SetupTestLogger()
	defer fixtures.TeardownTestLogger()

	ctl := gomock.NewController(t)
	defer ctl.Finish()

	h := mocks.NewMockHandle(ctl)
	m := market.New(logger.New(fixtures.LogCategory), h)

	offerId := fixtures.MakeId(record.CategoryOffer, 1)
	saleId := fixtures.MakeId(record.CategorySale, 2)
	auctionId := fixtures.MakeId(record.CategoryAuction, 3)

	offer := &record.Offer{Id: offerId, WalletAddress: fixtures.Alice, TotalAmount: 10}
	sale := &record.Sale{Id: saleId, WalletAddress: fixtures.Bob}
	auction := &record.Auction{Id: auctionId, WalletAddress: fixtures.Carol}

	h.EXPECT().Offer(offerId).Return(offer, nil).Times(1)
	h.EXPECT().Sale(saleId).Return(sale, nil).Times(1)
	h.EXPECT().Auction(auctionId).Return(auction, nil).Times(1)

	var offerReply market.OfferReply
	assert.Nil(t, m.Offer(&market.IdArguments{Id: offerId}, &offerReply), "offer")
	assert.Equal(t, offer, offerReply.Offer, "wrong offer")

	var saleReply market.SaleReply
	assert.Nil(t, m.Sale(&market.IdArguments{Id: saleId}, &saleReply), "sale")
	assert.Equal(t, sale, saleReply.Sale, "wrong sale")

	var auctionReply market.AuctionReply
	assert.Nil(t, m.Auction(&market.IdArguments{Id: auctionId}, &auctionReply), "auction")
	assert.Equal(t, auction, auctionReply.Auction, "wrong auction")

	// wrong category never reaches the market
	assert.Equal(t, fault.ErrInvalidCategory, m.Offer(&market.IdArguments{Id: saleId}, &offerReply), "sale id as offer")
	assert.Equal(t, fault.ErrInvalidCategory, m.Sale(&market.IdArguments{Id: auctionId}, &saleReply), "auction id as sale")
	assert.Equal(t, fault.ErrInvalidCategory, m.Auction(&market.IdArguments{Id: offerId}, &auctionReply), "offer id as auction")
}

func TestReadNotFound(t *testing.T) {
	fixtures.SetupTestLogger()
	defer fixtures.TeardownTestLogger()

	ctl := gomock.NewController(t)
	defer ctl.Finish()

	h := mocks.NewMockHandle(ctl)
	m := market.New(logger.New(fixtures.LogCategory), h)

	offerId := fixtures.MakeId(record.CategoryOffer, 9)
	h.EXPECT().Offer(offerId).Return(nil, fault.ErrOfferNotFound).Times(1)

	var reply market.OfferReply
	err := m.Offer(&market.IdArguments{Id: offerId}, &reply)
	assert.Equal(t, fault.ErrOfferNotFound, err, "wrong error")
	assert.Nil(t, reply.Offer, "offer set on error")
}

func TestList(t *testing.T) {
	fixtures.SetupTestLogger()
	defer fixtures.TeardownTestLogger()

	ctl := gomock.NewController(t)
	defer ctl.Finish()

	h := mocks.NewMockHandle(ctl)
	m := market.New(logger.New(fixtures.LogCategory), h)

	start := fixtures.MakeId(record.CategorySale, 1)
	next := fixtures.MakeId(record.CategorySale, 3)
	records := []interface{}{
		&record.Sale{Id: start},
		&record.Sale{Id: fixtures.MakeId(record.CategorySale, 2)},
	}

	h.EXPECT().List(record.CategorySale, &start, 2).Return(records, &next, nil).Times(1)

	var reply market.ListReply
	err := m.List(&market.ListArguments{Kind: "sale", Start: &start, Count: 2}, &reply)
	assert.Nil(t, err, "wrong List")
	assert.Equal(t, records, reply.Records, "wrong records")
	assert.Equal(t, &next, reply.Next, "wrong next")

	err = m.List(&market.ListArguments{Kind: "bicycle", Count: 2}, &reply)
	assert.Equal(t, fault.ErrInvalidCategory, err, "unknown kind")

	err = m.List(&market.ListArguments{Kind: "sale", Count: 0}, &reply)
	assert.Equal(t, fault.ErrInvalidCount, err, "zero count")

	err = m.List(&market.ListArguments{Kind: "sale", Count: 101}, &reply)
	assert.Equal(t, fault.ErrInvalidCount, err, "count too large")
}
