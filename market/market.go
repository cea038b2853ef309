// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package market

import (
	"encoding/json"
	"sync"
	"time"

	"github.com/bitmark-inc/logger"

	"github.com/neobex/neobexd/account"
	"github.com/neobex/neobexd/book"
	"github.com/neobex/neobexd/fault"
	"github.com/neobex/neobexd/ledger"
	"github.com/neobex/neobexd/messagebus"
	"github.com/neobex/neobexd/record"
	"github.com/neobex/neobexd/storage"
	"github.com/neobex/neobexd/trade"
)

// Handle - market access used by the RPC services
type Handle interface {
	Invoke(string, []json.RawMessage, []account.Account) (interface{}, error)
	Offer(record.Id) (*record.Offer, error)
	Sale(record.Id) (*record.Sale, error)
	Auction(record.Id) (*record.Auction, error)
	List(record.Category, *record.Id, int) ([]interface{}, *record.Id, error)
	BalanceOf(account.Account) int64
	TotalSupply() uint64
	Statistics() *trade.Statistics
}

// Setup - parameters fixed for the life of a market
type Setup struct {
	Owner  account.Account
	Fees   ledger.Fees
	ICO    ledger.ICO
	Events messagebus.Sender
	Clock  func() uint64
}

// Market - books, ledger and matching engine over the storage pools
type Market struct {
	sync.Mutex

	log    *logger.L
	book   *book.Book
	ledger *ledger.Ledger
	engine *trade.Engine
	owner  account.Account
	events messagebus.Sender
	clock  func() uint64
	pools  map[record.Category]*storage.PoolHandle
}

// limit for List
const maximumListCount = 100

// New - create a market; storage must be initialised
func New(log *logger.L, setup Setup) *Market {
	b := book.New(log, book.Handles{
		Offers:   storage.Pool.Offers,
		Sales:    storage.Pool.Sales,
		Auctions: storage.Pool.Auctions,
		Links:    storage.Pool.Links,
	})
	l := ledger.New(log, ledger.Handles{
		Balances: storage.Pool.Balances,
		Supply:   storage.Pool.Supply,
	}, setup.Owner, setup.Fees, setup.ICO)

	clock := setup.Clock
	if nil == clock {
		clock = func() uint64 {
			return uint64(time.Now().Unix())
		}
	}

	return &Market{
		log:    log,
		book:   b,
		ledger: l,
		engine: trade.New(log, b, l),
		owner:  setup.Owner,
		events: setup.Events,
		clock:  clock,
		pools: map[record.Category]*storage.PoolHandle{
			record.CategoryOffer:   storage.Pool.Offers,
			record.CategorySale:    storage.Pool.Sales,
			record.CategoryAuction: storage.Pool.Auctions,
		},
	}
}

// Invoke - run one operation atomically
//
// on failure the result is false and the error says why
func (m *Market) Invoke(operation string, arguments []json.RawMessage, witnesses []account.Account) (interface{}, error) {
	op, ok := operations[operation]
	if !ok {
		return false, fault.ErrUnknownOperation
	}
	if len(arguments) != op.count {
		return false, fault.ErrWrongArgumentCount
	}

	m.Lock()
	defer m.Unlock()

	trx, err := storage.NewDBTransaction()
	if nil != err {
		m.log.Errorf("operation: %s  transaction error: %s", operation, err)
		return false, err
	}

	c := &call{
		market:    m,
		arguments: arguments,
		witnesses: witnesses,
		now:       m.clock(),
		events:    &messagebus.Pending{},
	}

	result, err := op.run(c)
	if nil != err {
		trx.Abort()
		m.log.Debugf("operation: %s  error: %s", operation, err)
		return false, err
	}

	err = trx.Commit()
	if nil != err {
		m.log.Errorf("operation: %s  commit error: %s", operation, err)
		return false, err
	}

	n := 0
	if nil != m.events {
		n = c.events.Flush(m.events)
	}
	m.log.Debugf("operation: %s  events: %d", operation, n)
	return result, nil
}

// ProcessAuctions - sweep closed auctions, used by the background closer
func (m *Market) ProcessAuctions() (int, error) {
	result, err := m.Invoke("processAuctions", nil, nil)
	if nil != err {
		return 0, err
	}
	return result.(int), nil
}

// Recover - release a processing guard left by an interrupted run
func (m *Market) Recover() (bool, error) {
	m.Lock()
	defer m.Unlock()

	trx, err := storage.NewDBTransaction()
	if nil != err {
		return false, err
	}
	recovered := m.engine.Recover()
	err = trx.Commit()
	if nil != err {
		return false, err
	}
	return recovered, nil
}

// Offer - read an offer or bid
func (m *Market) Offer(id record.Id) (*record.Offer, error) {
	m.Lock()
	defer m.Unlock()

	offer, ok := m.book.Offer(id)
	if !ok {
		return nil, fault.ErrOfferNotFound
	}
	return offer, nil
}

// Sale - read a sale
func (m *Market) Sale(id record.Id) (*record.Sale, error) {
	m.Lock()
	defer m.Unlock()

	sale, ok := m.book.Sale(id)
	if !ok {
		return nil, fault.ErrSaleNotFound
	}
	return sale, nil
}

// Auction - read an auction
func (m *Market) Auction(id record.Id) (*record.Auction, error) {
	m.Lock()
	defer m.Unlock()

	auction, ok := m.book.Auction(id)
	if !ok {
		return nil, fault.ErrAuctionNotFound
	}
	return auction, nil
}

// List - page through the records of one category
//
// returns the id to continue from, nil at the end
func (m *Market) List(category record.Category, start *record.Id, count int) ([]interface{}, *record.Id, error) {
	pool, ok := m.pools[category]
	if !ok {
		return nil, nil, fault.ErrInvalidCategory
	}
	if count <= 0 || count > maximumListCount {
		return nil, nil, fault.ErrInvalidCount
	}

	m.Lock()
	defer m.Unlock()

	cursor := pool.NewFetchCursor()
	if nil != start {
		cursor.Seek(start.Bytes())
	}
	elements, err := cursor.Fetch(count + 1)
	if nil != err {
		return nil, nil, err
	}

	var next *record.Id
	if len(elements) > count {
		id, err := record.IdFromBytes(elements[count].Key)
		if nil != err {
			return nil, nil, err
		}
		next = &id
		elements = elements[:count]
	}

	records := make([]interface{}, 0, len(elements))
	for _, e := range elements {
		r, err := unpack(category, e)
		if nil != err {
			m.log.Errorf("list: key: %x  error: %s", e.Key, err)
			return nil, nil, err
		}
		records = append(records, r)
	}
	return records, next, nil
}

func unpack(category record.Category, e storage.Element) (interface{}, error) {
	id, err := record.IdFromBytes(e.Key)
	if nil != err {
		return nil, err
	}
	switch category {
	case record.CategoryOffer:
		return record.UnpackOffer(id, e.Value)
	case record.CategorySale:
		return record.UnpackSale(id, e.Value)
	default:
		return record.UnpackAuction(id, e.Value)
	}
}

// BalanceOf - token balance of an account
func (m *Market) BalanceOf(a account.Account) int64 {
	m.Lock()
	defer m.Unlock()
	return m.ledger.BalanceOf(a)
}

// TotalSupply - tokens in circulation
func (m *Market) TotalSupply() uint64 {
	m.Lock()
	defer m.Unlock()
	return m.ledger.TotalSupply()
}

// Statistics - matching engine counters
func (m *Market) Statistics() *trade.Statistics {
	return m.engine.Statistics()
}
