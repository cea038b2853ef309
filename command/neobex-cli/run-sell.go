// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package main

import (
	"fmt"

	"github.com/urfave/cli"

	"github.com/neobex/neobexd/record"
)

func runSell(c *cli.Context) error {

	m := c.App.Metadata["config"].(*metadata)

	id, err := parseId(c.String("id"), record.CategorySale)
	if nil != err {
		return err
	}

	wallet, err := checkRecipient(identityName(c, m.config), m.config)
	if nil != err {
		return err
	}

	amount := c.Uint64("amount")
	if err := checkAmount("amount", amount); nil != err {
		return err
	}

	cur, err := parseCurrency(c.String("currency"))
	if nil != err {
		return err
	}

	validTill := deadline(c.Duration("valid-for"))

	if m.verbose {
		fmt.Fprintf(m.e, "sale: %s\n", id)
		fmt.Fprintf(m.e, "amount: %d %s\n", amount, cur)
		fmt.Fprintf(m.e, "valid till: %d\n", validTill)
	}

	return invoke(c, m, &id, "sell", id, wallet, amount, cur, validTill)
}
