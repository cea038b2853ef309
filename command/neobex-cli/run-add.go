// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package main

import (
	"fmt"

	"github.com/urfave/cli"

	"github.com/neobex/neobexd/account"
)

func runAdd(c *cli.Context) error {

	m := c.App.Metadata["config"].(*metadata)

	name, err := checkName(c.GlobalString("identity"))
	if err != nil {
		return err
	}

	description, err := checkDescription(c.String("description"))
	if err != nil {
		return err
	}

	if m.verbose {
		fmt.Fprintf(m.e, "identity: %s\n", name)
		fmt.Fprintf(m.e, "description: %s\n", description)
	}

	// receive only identity
	if a := c.String("account"); "" != a {
		if err := m.config.AddReceiveOnlyIdentity(name, description, a); nil != err {
			return err
		}
		m.save = true
		acc, _ := account.FromBase58(a)
		return printJson(m.w, identityReply{Name: name, Account: acc})
	}

	key, err := makePrivateKey(c.String("key"))
	if err != nil {
		return err
	}

	password := c.GlobalString("password")
	if password == "" {
		password, err = promptNewPassword()
		if err != nil {
			return err
		}
	}

	err = m.config.AddIdentity(name, description, key, password)
	if err != nil {
		return err
	}
	if c.Bool("default") {
		m.config.DefaultIdentity = name
	}

	m.save = true

	return printJson(m.w, identityReply{
		Name:    name,
		Account: key.Account(),
	})
}
