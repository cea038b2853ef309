// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package rpccalls

import (
	"github.com/neobex/neobexd/fault"
	"github.com/neobex/neobexd/record"
	rpcmarket "github.com/neobex/neobexd/rpc/market"
)

// GetRecord - fetch an offer, sale or auction by id
func (client *Client) GetRecord(id record.Id) (interface{}, error) {

	idArgs := rpcmarket.IdArguments{
		Id: id,
	}

	client.printJson("Record Request", idArgs)

	var reply interface{}
	var err error
	switch id.Category() {
	case record.CategoryOffer:
		r := &rpcmarket.OfferReply{}
		err = client.client.Call("Market.Offer", idArgs, r)
		reply = r
	case record.CategorySale:
		r := &rpcmarket.SaleReply{}
		err = client.client.Call("Market.Sale", idArgs, r)
		reply = r
	case record.CategoryAuction:
		r := &rpcmarket.AuctionReply{}
		err = client.client.Call("Market.Auction", idArgs, r)
		reply = r
	default:
		return nil, fault.ErrInvalidCategory
	}
	if nil != err {
		return nil, err
	}

	client.printJson("Record Reply", reply)

	return reply, nil
}

// ListData - the parameters for a list request
type ListData struct {
	Kind  string
	Start *record.Id
	Count int
}

// List - a page of records of one kind
func (client *Client) List(listConfig *ListData) (*rpcmarket.ListReply, error) {

	listArgs := rpcmarket.ListArguments{
		Kind:  listConfig.Kind,
		Start: listConfig.Start,
		Count: listConfig.Count,
	}

	client.printJson("List Request", listArgs)

	reply := &rpcmarket.ListReply{}
	err := client.client.Call("Market.List", listArgs, reply)
	if nil != err {
		return nil, err
	}

	client.printJson("List Reply", reply)

	return reply, nil
}
