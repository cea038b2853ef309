// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package server_test

import (
	"encoding/json"
	"net"
	"net/rpc"
	"net/rpc/jsonrpc"
	"testing"

	"github.com/bitmark-inc/logger"
	"github.com/golang/mock/gomock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/neobex/neobexd/account"
	"github.com/neobex/neobexd/counter"
	"github.com/neobex/neobexd/fault"
	"github.com/neobex/neobexd/fixtures"
	"github.com/neobex/neobexd/market/mocks"
	"github.com/neobex/neobexd/rpc/market"
	"github.com/neobex/neobexd/rpc/node"
	"github.com/neobex/neobexd/rpc/server"
	"github.com/neobex/neobexd/rpc/token"
	"github.com/neobex/neobexd/trade"
)

// connect a JSON-RPC client to a fresh server over an in-memory pipe
func connect(t *testing.T, h *mocks.MockHandle) *rpc.Client {
	c := counter.Counter(1)
	s := server.Create(logger.New(fixtures.LogCategory), "1.0", h, &c)

	serverSide, clientSide := net.Pipe()
	go s.ServeCodec(jsonrpc.NewServerCodec(serverSide))

	return jsonrpc.NewClient(clientSide)
}

func TestMarketInvoke(t *testing.T) {
	fixtures.SetupTestLogger()
	defer fixtures.TeardownTestLogger()

	ctl := gomock.NewController(t)
	defer ctl.Finish()

	h := mocks.NewMockHandle(ctl)
	client := connect(t, h)
	defer client.Close()

	amount, err := json.Marshal(250)
	require.Nil(t, err, "marshal")
	to, err := json.Marshal(fixtures.Bob)
	require.Nil(t, err, "marshal")
	from, err := json.Marshal(fixtures.Alice)
	require.Nil(t, err, "marshal")
	arguments := []json.RawMessage{from, to, amount}

	message, err := market.Message("transfer", arguments)
	require.Nil(t, err, "message")

	h.EXPECT().Invoke("transfer", gomock.Any(), []account.Account{fixtures.Alice}).Return(true, nil).Times(1)

	arg := market.InvokeArguments{
		Operation: "transfer",
		Arguments: arguments,
		Signatures: []market.Signature{{
			PublicKey: fixtures.AliceKey.PublicKey(),
			Signature: fixtures.AliceKey.Sign(message),
		}},
	}
	var reply market.InvokeReply
	err = client.Call("Market.Invoke", &arg, &reply)
	assert.Nil(t, err, "wrong Market.Invoke")
	assert.Equal(t, true, reply.Result, "wrong result")
}

func TestMarketList(t *testing.T) {
	fixtures.SetupTestLogger()
	defer fixtures.TeardownTestLogger()

	ctl := gomock.NewController(t)
	defer ctl.Finish()

	client := connect(t, mocks.NewMockHandle(ctl))
	defer client.Close()

	arg := market.ListArguments{
		Kind:  "offer",
		Count: 0,
	}
	var reply market.ListReply
	err := client.Call("Market.List", &arg, &reply)
	assert.NotNil(t, err, "wrong Market.List")
	assert.Equal(t, fault.ErrInvalidCount.Error(), err.Error(), "wrong reply")
}

func TestTokenBalance(t *testing.T) {
	fixtures.SetupTestLogger()
	defer fixtures.TeardownTestLogger()

	ctl := gomock.NewController(t)
	defer ctl.Finish()

	h := mocks.NewMockHandle(ctl)
	client := connect(t, h)
	defer client.Close()

	h.EXPECT().BalanceOf(fixtures.Carol).Return(int64(77)).Times(1)

	var reply token.BalanceReply
	err := client.Call("Token.Balance", &token.BalanceArguments{Account: fixtures.Carol}, &reply)
	assert.Nil(t, err, "wrong Token.Balance")
	assert.Equal(t, int64(77), reply.Balance, "wrong balance")
	assert.Equal(t, fixtures.Carol, reply.Account, "wrong account")
}

func TestNodeInfo(t *testing.T) {
	fixtures.SetupTestLogger()
	defer fixtures.TeardownTestLogger()

	ctl := gomock.NewController(t)
	defer ctl.Finish()

	h := mocks.NewMockHandle(ctl)
	client := connect(t, h)
	defer client.Close()

	h.EXPECT().Statistics().Return(&trade.Statistics{}).Times(1)
	h.EXPECT().TotalSupply().Return(uint64(10)).Times(1)

	var reply node.InfoReply
	err := client.Call("Node.Info", &node.InfoArguments{}, &reply)
	assert.Nil(t, err, "wrong Node.Info")
	assert.Equal(t, "1.0", reply.Version, "wrong version")
	assert.Equal(t, uint64(1), reply.RPCs, "wrong rpc count")
}
