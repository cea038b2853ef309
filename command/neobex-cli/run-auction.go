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

func runAuction(c *cli.Context) error {

	m := c.App.Metadata["config"].(*metadata)

	id, err := parseId(c.String("id"), record.CategoryAuction)
	if nil != err {
		return err
	}

	wallet, err := checkRecipient(identityName(c, m.config), m.config)
	if nil != err {
		return err
	}

	minimum := c.Uint64("minimum")

	cur, err := parseCurrency(c.String("currency"))
	if nil != err {
		return err
	}

	closingAt := deadline(c.Duration("closing-in"))

	if m.verbose {
		fmt.Fprintf(m.e, "auction: %s\n", id)
		fmt.Fprintf(m.e, "minimum: %d %s\n", minimum, cur)
		fmt.Fprintf(m.e, "closing at: %d\n", closingAt)
	}

	return invoke(c, m, &id, "auction", id, wallet, minimum, cur, closingAt)
}
