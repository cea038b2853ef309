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

func runOffer(c *cli.Context) error {

	m := c.App.Metadata["config"].(*metadata)

	id, err := parseId(c.String("id"), record.CategoryOffer)
	if nil != err {
		return err
	}

	wallet, err := checkRecipient(identityName(c, m.config), m.config)
	if nil != err {
		return err
	}

	items := c.Uint64("items")
	total := c.Uint64("total")
	if err := checkAmount("total", total); nil != err {
		return err
	}
	if total < items {
		return fmt.Errorf("total: %d is less than items: %d", total, items)
	}

	cur, err := parseCurrency(c.String("currency"))
	if nil != err {
		return err
	}

	wanted, err := parseIds(c.StringSlice("wanted"))
	if nil != err {
		return err
	}

	// an offer without a time limit stays open until cancelled
	var validTill *uint64
	if d := c.Duration("valid-for"); 0 != d {
		v := deadline(d)
		validTill = &v
	}

	if m.verbose {
		fmt.Fprintf(m.e, "offer: %s\n", id)
		fmt.Fprintf(m.e, "items: %d  total: %d %s\n", items, total, cur)
		fmt.Fprintf(m.e, "wanted: %v\n", wanted)
	}

	return invoke(c, m, &id, "buyOrBarter", id, wallet, validTill, items, total, cur, wanted)
}
