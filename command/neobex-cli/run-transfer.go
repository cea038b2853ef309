// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package main

import (
	"fmt"

	"github.com/urfave/cli"
)

func runTransfer(c *cli.Context) error {

	m := c.App.Metadata["config"].(*metadata)

	from, err := checkRecipient(identityName(c, m.config), m.config)
	if nil != err {
		return err
	}

	to, err := checkRecipient(c.String("to"), m.config)
	if nil != err {
		return err
	}

	amount := c.Uint64("amount")
	if err := checkAmount("amount", amount); nil != err {
		return err
	}

	if m.verbose {
		fmt.Fprintf(m.e, "from: %s\n", from)
		fmt.Fprintf(m.e, "to: %s\n", to)
		fmt.Fprintf(m.e, "amount: %d\n", amount)
	}

	return invoke(c, m, nil, "transfer", from, to, amount)
}
