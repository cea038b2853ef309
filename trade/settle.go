// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package trade

import (
	"fmt"

	"github.com/neobex/neobexd/ledger"
	"github.com/neobex/neobexd/record"
)

// settle - pay every link of the best circle and retire its records
func (e *Engine) settle(p *pass) error {
	circle := p.best
	n := len(circle)
	clearing := e.ledger.Owner()
	fees := e.ledger.Fees()

	for i := range circle {
		f := &circle[i]
		next := &circle[(i+1)%n]

		if f.worth < next.worth {
			err := e.ledger.Settle(f.owner, clearing, next.worth-f.worth, p.events)
			if nil != err {
				return err
			}
		} else if f.worth > next.worth {
			net := fees.NetOfFee(f.worth - next.worth)
			if net > 0 {
				err := e.ledger.Settle(clearing, f.owner, net, p.events)
				if nil != err {
					return err
				}
			}
		}

		p.events.Emit(ledger.EventTransferAsset, next.owner, f.owner, next.worth)
		p.events.Emit(ledger.EventTrade, f.id, next.id, acceptance(f, next))
		e.stats.SettledLinks.Increment()
	}

	for i := range circle {
		f := &circle[i]
		buyer := &circle[(i+n-1)%n]
		switch f.category {
		case record.CategoryOffer:
			e.book.DeleteOffer(f.id)
		case record.CategorySale:
			e.book.SetSaleBuyer(f.id, buyer.owner)
		case record.CategoryAuction:
			e.book.SetAuctionWinner(f.id, buyer.owner)
		}
	}

	e.stats.Cycles.Increment()
	e.log.Infof("settled circle: %d links  from: %s", n, circle[0].id)
	return nil
}

func acceptance(f *frame, wanted *frame) string {
	kind := "Offer"
	if f.isBid {
		kind = "Bid"
	}
	return fmt.Sprintf("%s for %s is accepted. Collection/Delivery due.", kind, wanted.id)
}
