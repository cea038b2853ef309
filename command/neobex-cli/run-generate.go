// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package main

import (
	"encoding/hex"

	"github.com/urfave/cli"

	"github.com/neobex/neobexd/account"
)

type generateReply struct {
	Account    account.Account   `json:"account"`
	PublicKey  account.PublicKey `json:"publicKey"`
	PrivateKey string            `json:"privateKey"`
}

func runGenerate(c *cli.Context) error {

	m := c.App.Metadata["config"].(*metadata)

	key, err := account.NewPrivateKey(nil)
	if nil != err {
		return err
	}

	return printJson(m.w, generateReply{
		Account:    key.Account(),
		PublicKey:  key.PublicKey(),
		PrivateKey: hex.EncodeToString(key.Bytes()),
	})
}
