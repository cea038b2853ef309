// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package rpccalls

import (
	"github.com/neobex/neobexd/account"
	"github.com/neobex/neobexd/rpc/token"
)

// GetBalance - token balance of an account
func (client *Client) GetBalance(owner account.Account) (*token.BalanceReply, error) {

	balanceArgs := token.BalanceArguments{
		Account: owner,
	}

	client.printJson("Balance Request", balanceArgs)

	reply := &token.BalanceReply{}
	err := client.client.Call("Token.Balance", balanceArgs, reply)
	if nil != err {
		return nil, err
	}

	client.printJson("Balance Reply", reply)

	return reply, nil
}
