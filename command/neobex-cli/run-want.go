// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package main

import (
	"github.com/urfave/cli"

	"github.com/neobex/neobexd/fault"
	"github.com/neobex/neobexd/record"
)

func runWant(c *cli.Context) error {
	return editWanted(c, "addWantedIdsToOffer")
}

func runUnwant(c *cli.Context) error {
	return editWanted(c, "removeWantedIdsFromOffer")
}

func editWanted(c *cli.Context, operation string) error {

	m := c.App.Metadata["config"].(*metadata)

	id, err := parseExistingId(c.String("id"))
	if nil != err {
		return err
	}
	if record.CategoryOffer != id.Category() {
		return fault.ErrInvalidCategory
	}

	wanted, err := parseIds(c.StringSlice("wanted"))
	if nil != err {
		return err
	}

	return invoke(c, m, &id, operation, id, wanted)
}
