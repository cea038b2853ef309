// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package market

import (
	"bytes"
	"encoding/json"

	"golang.org/x/time/rate"

	"github.com/bitmark-inc/logger"

	"github.com/neobex/neobexd/account"
	"github.com/neobex/neobexd/fault"
	"github.com/neobex/neobexd/market"
	"github.com/neobex/neobexd/record"
	"github.com/neobex/neobexd/rpc/ratelimit"
)

const (
	rateLimitMarket = 100
	rateBurstMarket = 100
)

// limit for List
const maximumListCount = 100

// Market - type for RPC calls
type Market struct {
	Log     *logger.L
	Limiter *rate.Limiter
	Handle  market.Handle
}

// New - create the market service
func New(log *logger.L, handle market.Handle) *Market {
	return &Market{
		Log:     log,
		Limiter: rate.NewLimiter(rateLimitMarket, rateBurstMarket),
		Handle:  handle,
	}
}

// ---

// Signature - one witness of an invocation
type Signature struct {
	PublicKey account.PublicKey `json:"publicKey"`
	Signature account.Signature `json:"signature"`
}

// InvokeArguments - a market operation with its JSON arguments
type InvokeArguments struct {
	Operation  string            `json:"operation"`
	Arguments  []json.RawMessage `json:"arguments"`
	Signatures []Signature       `json:"signatures"`
}

// InvokeReply - the operation's result
type InvokeReply struct {
	Result interface{} `json:"result"`
}

// Message - the bytes signed by each witness
//
// the operation name followed by each argument in compact JSON,
// every argument preceded by a zero byte
func Message(operation string, arguments []json.RawMessage) ([]byte, error) {
	buffer := bytes.NewBufferString(operation)
	for _, a := range arguments {
		buffer.WriteByte(0)
		if err := json.Compact(buffer, a); nil != err {
			return nil, fault.ErrWrongArgument
		}
	}
	return buffer.Bytes(), nil
}

// Invoke - verify the signatures and run an operation
func (m *Market) Invoke(arguments *InvokeArguments, reply *InvokeReply) error {

	if err := ratelimit.Limit(m.Limiter); nil != err {
		return err
	}

	if nil == arguments || "" == arguments.Operation {
		return fault.ErrMissingParameters
	}

	message, err := Message(arguments.Operation, arguments.Arguments)
	if nil != err {
		return err
	}

	witnesses := make([]account.Account, 0, len(arguments.Signatures))
	for _, s := range arguments.Signatures {
		err := s.PublicKey.CheckSignature(message, s.Signature)
		if nil != err {
			m.Log.Debugf("invoke: %s  public key: %x  error: %s", arguments.Operation, []byte(s.PublicKey), err)
			return err
		}
		witnesses = append(witnesses, s.PublicKey.Account())
	}

	result, err := m.Handle.Invoke(arguments.Operation, arguments.Arguments, witnesses)
	if nil != err {
		return err
	}

	reply.Result = result
	return nil
}

// ---

// IdArguments - identify a single record
type IdArguments struct {
	Id record.Id `json:"id"`
}

// OfferReply - an offer or bid
type OfferReply struct {
	Offer *record.Offer `json:"offer"`
}

// Offer - read an offer or bid
func (m *Market) Offer(arguments *IdArguments, reply *OfferReply) error {

	if err := ratelimit.Limit(m.Limiter); nil != err {
		return err
	}

	if nil == arguments || record.CategoryOffer != arguments.Id.Category() {
		return fault.ErrInvalidCategory
	}

	offer, err := m.Handle.Offer(arguments.Id)
	if nil != err {
		return err
	}
	reply.Offer = offer
	return nil
}

// SaleReply - a direct sale
type SaleReply struct {
	Sale *record.Sale `json:"sale"`
}

// Sale - read a direct sale
func (m *Market) Sale(arguments *IdArguments, reply *SaleReply) error {

	if err := ratelimit.Limit(m.Limiter); nil != err {
		return err
	}

	if nil == arguments || record.CategorySale != arguments.Id.Category() {
		return fault.ErrInvalidCategory
	}

	sale, err := m.Handle.Sale(arguments.Id)
	if nil != err {
		return err
	}
	reply.Sale = sale
	return nil
}

// AuctionReply - an auction
type AuctionReply struct {
	Auction *record.Auction `json:"auction"`
}

// Auction - read an auction
func (m *Market) Auction(arguments *IdArguments, reply *AuctionReply) error {

	if err := ratelimit.Limit(m.Limiter); nil != err {
		return err
	}

	if nil == arguments || record.CategoryAuction != arguments.Id.Category() {
		return fault.ErrInvalidCategory
	}

	auction, err := m.Handle.Auction(arguments.Id)
	if nil != err {
		return err
	}
	reply.Auction = auction
	return nil
}

// ---

// ListArguments - page through one kind of record
type ListArguments struct {
	Kind  string     `json:"kind"`
	Start *record.Id `json:"start,omitempty"`
	Count int        `json:"count"`
}

// ListReply - one page of records
type ListReply struct {
	Records []interface{} `json:"records"`
	Next    *record.Id    `json:"next,omitempty"`
}

var kinds = map[string]record.Category{
	"offer":   record.CategoryOffer,
	"sale":    record.CategorySale,
	"auction": record.CategoryAuction,
}

// List - records in id order, Next is set if more remain
func (m *Market) List(arguments *ListArguments, reply *ListReply) error {

	if nil == arguments {
		return fault.ErrMissingParameters
	}

	if err := ratelimit.LimitN(m.Limiter, arguments.Count, maximumListCount); nil != err {
		return err
	}

	category, ok := kinds[arguments.Kind]
	if !ok {
		return fault.ErrInvalidCategory
	}

	records, next, err := m.Handle.List(category, arguments.Start, arguments.Count)
	if nil != err {
		return err
	}
	reply.Records = records
	reply.Next = next
	return nil
}
