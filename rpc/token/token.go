// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package token

import (
	"golang.org/x/time/rate"

	"github.com/bitmark-inc/logger"

	"github.com/neobex/neobexd/account"
	"github.com/neobex/neobexd/fault"
	"github.com/neobex/neobexd/ledger"
	"github.com/neobex/neobexd/market"
	"github.com/neobex/neobexd/rpc/ratelimit"
)

const (
	rateLimitToken = 200
	rateBurstToken = 100
)

// Token - type for RPC calls
type Token struct {
	Log     *logger.L
	Limiter *rate.Limiter
	Handle  market.Handle
}

// New - create the token service
func New(log *logger.L, handle market.Handle) *Token {
	return &Token{
		Log:     log,
		Limiter: rate.NewLimiter(rateLimitToken, rateBurstToken),
		Handle:  handle,
	}
}

// BalanceArguments - account to query
type BalanceArguments struct {
	Account account.Account `json:"account"`
}

// BalanceReply - balance in token units
type BalanceReply struct {
	Account account.Account `json:"account"`
	Balance int64           `json:"balance"`
}

// Balance - token balance of an account
func (token *Token) Balance(arguments *BalanceArguments, reply *BalanceReply) error {

	if err := ratelimit.Limit(token.Limiter); nil != err {
		return err
	}

	if nil == arguments || arguments.Account.IsZero() {
		return fault.ErrMissingParameters
	}

	reply.Account = arguments.Account
	reply.Balance = token.Handle.BalanceOf(arguments.Account)
	return nil
}

// InfoArguments - empty arguments for info request
type InfoArguments struct{}

// InfoReply - token metadata
type InfoReply struct {
	Name        string `json:"name"`
	Symbol      string `json:"symbol"`
	Decimals    int    `json:"decimals"`
	TotalSupply uint64 `json:"totalSupply"`
}

// Info - token metadata and supply
func (token *Token) Info(_ *InfoArguments, reply *InfoReply) error {

	if err := ratelimit.Limit(token.Limiter); nil != err {
		return err
	}

	reply.Name = ledger.Name
	reply.Symbol = ledger.Symbol
	reply.Decimals = ledger.Decimals
	reply.TotalSupply = token.Handle.TotalSupply()
	return nil
}
