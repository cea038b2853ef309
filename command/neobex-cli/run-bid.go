// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package main

import (
	"fmt"

	"github.com/urfave/cli"

	"github.com/neobex/neobexd/fault"
	"github.com/neobex/neobexd/record"
)

func runBid(c *cli.Context) error {

	m := c.App.Metadata["config"].(*metadata)

	id, err := parseId(c.String("id"), record.CategoryOffer)
	if nil != err {
		return err
	}

	auctionId, err := parseExistingId(c.String("auction"))
	if nil != err {
		return err
	}
	if record.CategoryAuction != auctionId.Category() {
		return fault.ErrInvalidCategory
	}

	wallet, err := checkRecipient(identityName(c, m.config), m.config)
	if nil != err {
		return err
	}

	total := c.Uint64("total")
	if err := checkAmount("total", total); nil != err {
		return err
	}

	cur, err := parseCurrency(c.String("currency"))
	if nil != err {
		return err
	}

	if m.verbose {
		fmt.Fprintf(m.e, "bid: %s\n", id)
		fmt.Fprintf(m.e, "auction: %s\n", auctionId)
		fmt.Fprintf(m.e, "total: %d %s\n", total, cur)
	}

	return invoke(c, m, &id, "bid", id, wallet, total, cur, auctionId)
}
