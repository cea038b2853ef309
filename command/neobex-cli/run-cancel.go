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

// cancel operation for an id, bids share the offer category
func cancelOperation(id record.Id, isBid bool) (string, error) {
	switch id.Category() {
	case record.CategoryOffer:
		if isBid {
			return "cancelBid", nil
		}
		return "cancelOffer", nil
	case record.CategorySale:
		return "cancelSale", nil
	case record.CategoryAuction:
		return "cancelAuction", nil
	default:
		return "", fault.ErrInvalidCategory
	}
}

func runCancel(c *cli.Context) error {

	m := c.App.Metadata["config"].(*metadata)

	id, err := parseExistingId(c.String("id"))
	if nil != err {
		return err
	}

	operation, err := cancelOperation(id, c.Bool("bid"))
	if nil != err {
		return err
	}

	return invoke(c, m, &id, operation, id)
}
