// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package ledger

import (
	"math"

	"github.com/bitmark-inc/logger"

	"github.com/neobex/neobexd/account"
	"github.com/neobex/neobexd/fault"
	"github.com/neobex/neobexd/messagebus"
	"github.com/neobex/neobexd/storage"
)

// token metadata
const (
	Name     = "Neobex Coin"
	Symbol   = "NBX"
	Decimals = 8
	Factor   = 100000000
)

// event names
const (
	EventTransfer      = "transfer"
	EventRefund        = "refund"
	EventRefundAsset   = "refundAsset"
	EventTransferAsset = "transferAsset"
	EventTrade         = "trade"
)

var totalSupplyKey = []byte("totalSupply")

// Lock - reports accounts whose funds are held by a trade in progress
type Lock interface {
	IsLocked(account.Account) bool
}

// Handles - the pools a ledger is kept in
type Handles struct {
	Balances storage.Handle
	Supply   storage.Handle
}

// Ledger - balances, supply and fees
type Ledger struct {
	log      *logger.L
	balances storage.Handle
	supply   storage.Handle
	owner    account.Account
	fees     Fees
	ico      ICO
	lock     Lock
}

// New - create a ledger; owner is the clearing account
func New(log *logger.L, handles Handles, owner account.Account, fees Fees, ico ICO) *Ledger {
	return &Ledger{
		log:      log,
		balances: handles.Balances,
		supply:   handles.Supply,
		owner:    owner,
		fees:     fees,
		ico:      ico,
	}
}

// SetLock - attach the trade guard consulted by Transfer and Withdraw
func (l *Ledger) SetLock(lock Lock) {
	l.lock = lock
}

// Owner - the clearing account
func (l *Ledger) Owner() account.Account {
	return l.owner
}

// Fees - the fee schedule
func (l *Ledger) Fees() Fees {
	return l.fees
}

func (l *Ledger) isLocked(a account.Account) bool {
	return nil != l.lock && l.lock.IsLocked(a)
}

// BalanceOf - current balance, zero for unknown accounts
func (l *Ledger) BalanceOf(a account.Account) int64 {
	n, found := l.balances.GetN(a.Bytes())
	if !found {
		return 0
	}
	return int64(n)
}

// CanPay - true if the balance covers amount
func (l *Ledger) CanPay(a account.Account, amount uint64) bool {
	if amount > math.MaxInt64 {
		return false
	}
	return l.BalanceOf(a) >= int64(amount)
}

func (l *Ledger) setBalance(a account.Account, balance int64) {
	if 0 == balance {
		l.balances.Delete(a.Bytes())
		return
	}
	if balance < 0 && a != l.owner {
		l.log.Criticalf("negative balance: %d  account: %s", balance, a)
		logger.Panicf("ledger: negative balance: %d  account: %s", balance, a)
	}
	l.balances.PutN(a.Bytes(), uint64(balance))
}

// move tokens; only the clearing account may overdraw
func (l *Ledger) move(from account.Account, to account.Account, amount uint64, overdraw bool) error {
	if 0 == amount || amount > math.MaxInt64 {
		return fault.ErrInvalidAmount
	}
	if from == to {
		return nil
	}
	fromBalance := l.BalanceOf(from)
	if fromBalance < int64(amount) && !(overdraw && from == l.owner) {
		return fault.ErrInsufficientFunds
	}
	l.setBalance(from, fromBalance-int64(amount))
	l.setBalance(to, l.BalanceOf(to)+int64(amount))
	return nil
}

// Transfer - account to account payment requested by the sender
func (l *Ledger) Transfer(from account.Account, to account.Account, amount uint64, events messagebus.Emitter) error {
	if l.isLocked(from) {
		return fault.ErrTradeInProgress
	}
	err := l.move(from, to, amount, false)
	if nil != err {
		return err
	}
	l.log.Debugf("transfer: %s -> %s  amount: %d", from, to, amount)
	events.Emit(EventTransfer, from, to, amount)
	return nil
}

// Settle - payment of one trade link, bypasses the guard
func (l *Ledger) Settle(from account.Account, to account.Account, amount uint64, events messagebus.Emitter) error {
	err := l.move(from, to, amount, true)
	if nil != err {
		return err
	}
	events.Emit(EventTransfer, from, to, amount)
	return nil
}

// Withdraw - burn tokens and release the funding asset
func (l *Ledger) Withdraw(a account.Account, amount uint64, events messagebus.Emitter) error {
	if 0 == amount || amount > math.MaxInt64 {
		return fault.ErrInvalidAmount
	}
	if l.isLocked(a) {
		return fault.ErrTradeInProgress
	}
	balance := l.BalanceOf(a)
	if balance < int64(amount) {
		return fault.ErrInsufficientFunds
	}
	l.setBalance(a, balance-int64(amount))

	supply := l.TotalSupply()
	if supply < amount {
		l.log.Criticalf("supply: %d less than withdraw: %d", supply, amount)
		logger.Panicf("ledger: supply: %d less than withdraw: %d", supply, amount)
	}
	l.supply.PutN(totalSupplyKey, supply-amount)

	l.log.Infof("withdraw: %s  amount: %d", a, amount)
	events.Emit(EventRefundAsset, a, amount)
	return nil
}

// TotalSupply - tokens in circulation
func (l *Ledger) TotalSupply() uint64 {
	n, _ := l.supply.GetN(totalSupplyKey)
	return n
}

// Initialise - one time deployment of one token to the owner
func (l *Ledger) Initialise(events messagebus.Emitter) error {
	if 0 != l.TotalSupply() {
		return fault.ErrAlreadyInitialised
	}
	if l.owner.IsZero() {
		return fault.ErrClearingAccount
	}
	amount := uint64(1 * Factor)
	l.setBalance(l.owner, l.BalanceOf(l.owner)+int64(amount))
	l.supply.PutN(totalSupplyKey, amount)

	l.log.Infof("initialised: owner: %s  amount: %d", l.owner, amount)
	events.Emit(EventTransfer, nil, l.owner, amount)
	return nil
}
