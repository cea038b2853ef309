// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package token_test

import (
	"testing"

	"github.com/bitmark-inc/logger"
	"github.com/golang/mock/gomock"
	"github.com/stretchr/testify/assert"

	"github.com/neobex/neobexd/account"
	"github.com/neobex/neobexd/fault"
	"github.com/neobex/neobexd/fixtures"
	"github.com/neobex/neobexd/ledger"
	"github.com/neobex/neobexd/market/mocks"
	"github.com/neobex/neobexd/rpc/token"
)

func TestBalance(t *testing.T) {
	fixtures.SetupTestLogger()
	defer fixtures.TeardownTestLogger()

	ctl := gomock.NewController(t)
	defer ctl.Finish()

	h := mocks.NewMockHandle(ctl)
	tk := token.New(logger.New(fixtures.LogCategory), h)

	h.EXPECT().BalanceOf(fixtures.Bob).Return(int64(4200)).Times(1)

	var reply token.BalanceReply
	err := tk.Balance(&token.BalanceArguments{Account: fixtures.Bob}, &reply)
	assert.Nil(t, err, "wrong Balance")
	assert.Equal(t, fixtures.Bob, reply.Account, "wrong account")
	assert.Equal(t, int64(4200), reply.Balance, "wrong balance")

	err = tk.Balance(&token.BalanceArguments{Account: account.Account{}}, &reply)
	assert.Equal(t, fault.ErrMissingParameters, err, "zero account")
}

func TestInfo(t *testing.T) {
	fixtures.SetupTestLogger()
	defer fixtures.TeardownTestLogger()

	ctl := gomock.NewController(t)
	defer ctl.Finish()

	h := mocks.NewMockHandle(ctl)
	tk := token.New(logger.New(fixtures.LogCategory), h)

	h.EXPECT().TotalSupply().Return(uint64(ledger.Factor)).Times(1)

	var reply token.InfoReply
	err := tk.Info(&token.InfoArguments{}, &reply)
	assert.Nil(t, err, "wrong Info")
	assert.Equal(t, token.InfoReply{
		Name:        "Neobex Coin",
		Symbol:      "NBX",
		Decimals:    8,
		TotalSupply: ledger.Factor,
	}, reply, "wrong info")
}
