// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package rpccalls_test

import (
	"bytes"
	"crypto/tls"
	"encoding/hex"
	"encoding/json"
	"net/rpc/jsonrpc"
	"testing"
	"time"

	"github.com/bitmark-inc/certgen"
	"github.com/bitmark-inc/logger"
	"github.com/golang/mock/gomock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/neobex/neobexd/account"
	"github.com/neobex/neobexd/command/neobex-cli/rpccalls"
	"github.com/neobex/neobexd/counter"
	"github.com/neobex/neobexd/fault"
	"github.com/neobex/neobexd/fixtures"
	"github.com/neobex/neobexd/market/mocks"
	"github.com/neobex/neobexd/record"
	"github.com/neobex/neobexd/rpc/certificate"
	"github.com/neobex/neobexd/rpc/server"
	"github.com/neobex/neobexd/trade"
)

// start a TLS JSON-RPC server on a random local port
func serve(t *testing.T, h *mocks.MockHandle) (string, string, func()) {
	cer, key, err := certgen.NewTLSCertPair("rpccalls test", time.Now().Add(time.Hour), false, nil)
	require.Nil(t, err, "certgen")

	log := logger.New(fixtures.LogCategory)
	tlsConfig, fingerprint, err := certificate.Get(log, "test", string(cer), string(key))
	require.Nil(t, err, "certificate")

	listener, err := tls.Listen("tcp", "127.0.0.1:0", tlsConfig)
	require.Nil(t, err, "listen")

	c := counter.Counter(0)
	s := server.Create(log, "2.0", h, &c)

	go func() {
		for {
			conn, err := listener.Accept()
			if nil != err {
				return
			}
			go s.ServeCodec(jsonrpc.NewServerCodec(conn))
		}
	}()

	return listener.Addr().String(), hex.EncodeToString(fingerprint[:]), func() { listener.Close() }
}

func TestInvoke(t *testing.T) {
	fixtures.SetupTestLogger()
	defer fixtures.TeardownTestLogger()

	ctl := gomock.NewController(t)
	defer ctl.Finish()

	h := mocks.NewMockHandle(ctl)
	address, fingerprint, stop := serve(t, h)
	defer stop()

	var verbose bytes.Buffer
	client, err := rpccalls.NewClient(address, fingerprint, true, &verbose)
	require.Nil(t, err, "new client")
	defer client.Close()

	from, _ := json.Marshal(fixtures.Alice)
	to, _ := json.Marshal(fixtures.Bob)
	amount, _ := json.Marshal(uint64(250))
	h.EXPECT().Invoke("transfer", []json.RawMessage{from, to, amount}, []account.Account{fixtures.Alice}).Return(true, nil).Times(1)

	result, err := client.Invoke(fixtures.AliceKey, "transfer", fixtures.Alice, fixtures.Bob, uint64(250))
	assert.Nil(t, err, "invoke")
	assert.Equal(t, true, result, "result")
	assert.Contains(t, verbose.String(), "Invoke Request", "verbose output")

	h.EXPECT().Invoke("totalSupply", []json.RawMessage{}, []account.Account{}).Return(uint64(5), nil).Times(1)
	result, err = client.Invoke(nil, "totalSupply")
	assert.Nil(t, err, "unsigned invoke")
	assert.Equal(t, float64(5), result, "JSON number")

	h.EXPECT().Invoke("cancelOffer", gomock.Any(), gomock.Any()).Return(false, fault.ErrOfferNotFound).Times(1)
	_, err = client.Invoke(fixtures.AliceKey, "cancelOffer", fixtures.MakeId(record.CategoryOffer, 1))
	require.NotNil(t, err, "server error")
	assert.Equal(t, fault.ErrOfferNotFound.Error(), err.Error(), "error text")
}

func TestFingerprintMismatch(t *testing.T) {
	fixtures.SetupTestLogger()
	defer fixtures.TeardownTestLogger()

	ctl := gomock.NewController(t)
	defer ctl.Finish()

	address, _, stop := serve(t, mocks.NewMockHandle(ctl))
	defer stop()

	_, err := rpccalls.NewClient(address, hex.EncodeToString(make([]byte, 32)), false, nil)
	assert.Equal(t, fault.ErrFingerprintMismatch, err, "wrong fingerprint")

	_, err = rpccalls.NewClient(address, "not hex", false, nil)
	assert.Equal(t, fault.ErrFingerprintMismatch, err, "bad fingerprint")
}

func TestQueries(t *testing.T) {
	fixtures.SetupTestLogger()
	defer fixtures.TeardownTestLogger()

	ctl := gomock.NewController(t)
	defer ctl.Finish()

	h := mocks.NewMockHandle(ctl)
	address, _, stop := serve(t, h)
	defer stop()

	client, err := rpccalls.NewClient(address, "", false, nil)
	require.Nil(t, err, "new client")
	defer client.Close()

	h.EXPECT().BalanceOf(fixtures.Carol).Return(int64(42)).Times(1)
	balance, err := client.GetBalance(fixtures.Carol)
	assert.Nil(t, err, "balance")
	assert.Equal(t, int64(42), balance.Balance, "balance value")

	h.EXPECT().Statistics().Return(&trade.Statistics{}).Times(1)
	h.EXPECT().TotalSupply().Return(uint64(9)).Times(2)
	info, err := client.GetInfo()
	assert.Nil(t, err, "info")
	assert.Equal(t, "2.0", info.Node.Version, "version")
	assert.Equal(t, uint64(9), info.Token.TotalSupply, "supply")

	saleId := fixtures.MakeId(record.CategorySale, 3)
	h.EXPECT().Sale(saleId).Return(&record.Sale{Id: saleId, WalletAddress: fixtures.Bob, Amount: 10}, nil).Times(1)
	sale, err := client.GetRecord(saleId)
	assert.Nil(t, err, "sale")
	assert.NotNil(t, sale, "sale reply")

	_, err = client.GetRecord(record.Id{})
	assert.Equal(t, fault.ErrInvalidCategory, err, "no category")

	h.EXPECT().List(record.CategoryAuction, gomock.Nil(), 10).Return([]interface{}{}, nil, nil).Times(1)
	list, err := client.List(&rpccalls.ListData{Kind: "auction", Count: 10})
	assert.Nil(t, err, "list")
	assert.Equal(t, 0, len(list.Records), "empty list")
	assert.Nil(t, list.Next, "no next")
}
