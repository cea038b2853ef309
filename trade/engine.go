// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package trade

import (
	"github.com/bitmark-inc/logger"

	"github.com/neobex/neobexd/account"
	"github.com/neobex/neobexd/book"
	"github.com/neobex/neobexd/counter"
	"github.com/neobex/neobexd/ledger"
	"github.com/neobex/neobexd/messagebus"
	"github.com/neobex/neobexd/record"
	"github.com/neobex/neobexd/storage"
)

// Statistics - running totals since start
type Statistics struct {
	Passes           counter.Counter
	Cycles           counter.Counter
	SettledLinks     counter.Counter
	DisqualifiedBids counter.Counter
	PrunedIds        counter.Counter
}

// Engine - matches and settles trade circles
type Engine struct {
	log    *logger.L
	book   *book.Book
	ledger *ledger.Ledger
	links  storage.Handle

	// pass in progress, nil when idle
	current *pass

	stats Statistics
}

// New - create an engine and attach it to the ledger as its lock
func New(log *logger.L, b *book.Book, l *ledger.Ledger) *Engine {
	e := &Engine{
		log:    log,
		book:   b,
		ledger: l,
		links:  b.Links(),
	}
	l.SetLock(e)
	return e
}

// Statistics - counters for reporting
func (e *Engine) Statistics() *Statistics {
	return &e.stats
}

// Process - run one matching pass from an offer
//
// returns true if a trade circle was settled
func (e *Engine) Process(root record.Id, now uint64, events messagebus.Emitter) (bool, error) {
	if e.isProcessing() {
		e.log.Warnf("pass from: %s  skipped: guard held", root)
		return false, nil
	}

	offer, ok := e.book.Offer(root)
	if !ok {
		return false, nil
	}

	p := &pass{
		now:    now,
		events: events,
	}
	e.current = p
	defer func() {
		n := e.release()
		e.current = nil
		e.log.Debugf("pass from: %s  released: %d", root, n)
	}()

	e.stats.Passes.Increment()

	p.push(offerFrame(offer))
	e.lookupTradeOpportunities(p, offer)

	if 0 == len(p.best) {
		e.log.Debugf("pass from: %s  no trade", root)
		return false, nil
	}

	err := e.settle(p)
	if nil != err {
		e.log.Errorf("pass from: %s  settle error: %s", root, err)
		return false, err
	}
	return true, nil
}

// IsLocked - true if the account owns a record involved in a running pass
func (e *Engine) IsLocked(a account.Account) bool {
	if !e.isProcessing() {
		return false
	}
	if nil != e.current {
		if e.current.involves(a) {
			return true
		}
	}
	for _, id := range e.visitedIds() {
		if owner, ok := e.book.Owner(id); ok && owner == a {
			return true
		}
	}
	return false
}

// Recover - release a guard left behind by an interrupted pass
func (e *Engine) Recover() bool {
	if !e.isProcessing() {
		return false
	}
	n := e.release()
	e.log.Warnf("released stale guard: %d visited ids", n)
	return true
}

// IsHighestValidBid - true if the bid should win its closed auction
//
// a bid whose owner can no longer pay is cancelled
func (e *Engine) IsHighestValidBid(auctionId record.Id, bidId record.Id, now uint64) bool {
	return e.isHighestValidBid(auctionId, bidId, now)
}
