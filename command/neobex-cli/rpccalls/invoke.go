// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package rpccalls

import (
	"encoding/json"

	"github.com/neobex/neobexd/account"
	rpcmarket "github.com/neobex/neobexd/rpc/market"
)

// Invoke - sign and submit one market operation
//
// each argument is sent as its own JSON value, a nil signer sends an
// unsigned call
func (client *Client) Invoke(signer *account.PrivateKey, operation string, arguments ...interface{}) (interface{}, error) {

	raw := make([]json.RawMessage, len(arguments))
	for i, a := range arguments {
		b, err := json.Marshal(a)
		if nil != err {
			return nil, err
		}
		raw[i] = b
	}

	invokeArgs := rpcmarket.InvokeArguments{
		Operation: operation,
		Arguments: raw,
	}

	if nil != signer {
		message, err := rpcmarket.Message(operation, raw)
		if nil != err {
			return nil, err
		}
		invokeArgs.Signatures = []rpcmarket.Signature{
			{
				PublicKey: signer.PublicKey(),
				Signature: signer.Sign(message),
			},
		}
	}

	client.printJson("Invoke Request", invokeArgs)

	reply := &rpcmarket.InvokeReply{}
	err := client.client.Call("Market.Invoke", invokeArgs, reply)
	if nil != err {
		return nil, err
	}

	client.printJson("Invoke Reply", reply)

	return reply.Result, nil
}
