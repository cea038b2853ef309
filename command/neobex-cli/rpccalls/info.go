// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package rpccalls

import (
	"github.com/neobex/neobexd/rpc/node"
	"github.com/neobex/neobexd/rpc/token"
)

// InfoReply - node and token information together
type InfoReply struct {
	Node  node.InfoReply  `json:"node"`
	Token token.InfoReply `json:"token"`
}

// GetInfo - node status and token metadata
func (client *Client) GetInfo() (*InfoReply, error) {

	reply := &InfoReply{}

	err := client.client.Call("Node.Info", node.InfoArguments{}, &reply.Node)
	if nil != err {
		return nil, err
	}

	err = client.client.Call("Token.Info", token.InfoArguments{}, &reply.Token)
	if nil != err {
		return nil, err
	}

	client.printJson("Info Reply", reply)

	return reply, nil
}
