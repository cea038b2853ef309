// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package market

import (
	"encoding/json"

	"github.com/neobex/neobexd/account"
	"github.com/neobex/neobexd/fault"
	"github.com/neobex/neobexd/messagebus"
	"github.com/neobex/neobexd/record"
)

// call - one invocation in progress
type call struct {
	market    *Market
	arguments []json.RawMessage
	witnesses []account.Account
	now       uint64
	events    *messagebus.Pending
}

// decode argument n into v
func (c *call) decode(n int, v interface{}) error {
	err := json.Unmarshal(c.arguments[n], v)
	if nil != err {
		c.market.log.Debugf("argument: %d  decode error: %s", n, err)
		return fault.ErrWrongArgument
	}
	return nil
}

func (c *call) id(n int) (record.Id, error) {
	var id record.Id
	if err := c.decode(n, &id); nil != err {
		return id, err
	}
	if id.IsZero() {
		return id, fault.ErrZeroId
	}
	return id, nil
}

func (c *call) ids(n int) ([]record.Id, error) {
	var ids []record.Id
	if err := c.decode(n, &ids); nil != err {
		return nil, err
	}
	if 0 == len(ids) {
		return nil, fault.ErrMissingParameters
	}
	return ids, nil
}

func (c *call) account(n int) (account.Account, error) {
	var a account.Account
	if err := c.decode(n, &a); nil != err {
		return a, err
	}
	if a.IsZero() {
		return a, fault.ErrWrongArgument
	}
	return a, nil
}

func (c *call) amount(n int) (uint64, error) {
	var amount uint64
	if err := c.decode(n, &amount); nil != err {
		return 0, err
	}
	return amount, nil
}

// witness - the account must have signed the call
func (c *call) witness(a account.Account) error {
	for _, w := range c.witnesses {
		if w == a {
			return nil
		}
	}
	return fault.ErrMissingWitness
}

// witnessOwner - the record's owner must have signed the call
func (c *call) witnessOwner(id record.Id, missing error) error {
	owner, ok := c.market.book.Owner(id)
	if !ok {
		return missing
	}
	return c.witness(owner)
}

// witnessClearing - the clearing account must have signed the call
func (c *call) witnessClearing() error {
	return c.witness(c.market.owner)
}
