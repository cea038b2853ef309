// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package book

import (
	"github.com/neobex/neobexd/fault"
	"github.com/neobex/neobexd/record"
)

// AddWantedIds - append ids to free slots of an offer's want list
func (b *Book) AddWantedIds(id record.Id, wanted []record.Id) error {
	offer, ok := b.Offer(id)
	if !ok {
		return fault.ErrOfferNotFound
	}
	if offer.IsBid {
		return fault.ErrOfferIsBid
	}
	if 0 == len(wanted) {
		return fault.ErrMissingParameters
	}
	err := b.checkWanted(offer, offer.WantedIds, wanted)
	if nil != err {
		return err
	}
	offer.WantedIds = append(offer.WantedIds, wanted...)
	return b.PutOffer(offer)
}

// RemoveWantedIds - drop ids from an offer's want list, keeping the
// order of the rest
func (b *Book) RemoveWantedIds(id record.Id, wanted []record.Id) error {
	offer, ok := b.Offer(id)
	if !ok {
		return fault.ErrOfferNotFound
	}
	if offer.IsBid {
		return fault.ErrOfferIsBid
	}
	if 0 == len(wanted) {
		return fault.ErrMissingParameters
	}
	for _, w := range wanted {
		if !offer.Wants(w) {
			return fault.ErrWantedIdNotFound
		}
	}
	offer.WantedIds = without(offer.WantedIds, wanted...)
	return b.PutOffer(offer)
}

// PruneWantedId - remove a dangling id found during traversal
func (b *Book) PruneWantedId(id record.Id, wanted record.Id) {
	offer, ok := b.Offer(id)
	if !ok || offer.IsBid || !offer.Wants(wanted) {
		return
	}
	offer.WantedIds = without(offer.WantedIds, wanted)
	b.mustPutOffer(offer)
	b.log.Debugf("offer: %s  pruned wanted id: %s", id, wanted)
}

func without(ids []record.Id, drop ...record.Id) []record.Id {
	kept := make([]record.Id, 0, len(ids))
outer:
	for _, id := range ids {
		for _, d := range drop {
			if id == d {
				continue outer
			}
		}
		kept = append(kept, id)
	}
	if 0 == len(kept) {
		return nil
	}
	return kept
}
