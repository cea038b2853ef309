// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package ledger

import (
	"math/bits"

	"github.com/neobex/neobexd/account"
	"github.com/neobex/neobexd/fault"
	"github.com/neobex/neobexd/messagebus"
)

const secondsPerDay = 86400

// ICO - token sale parameters
type ICO struct {
	Asset           string // name of the funding asset
	Start           uint64 // unix seconds
	Days            uint64
	BonusDays       uint64
	BonusPercentage uint64
	BaseRate        uint64 // tokens per whole unit of the funding asset
	MaximumSupply   uint64 // whole tokens
}

// DefaultICO - a 45 day sale at 1000 tokens per unit, 25% bonus for
// the first 14 days
func DefaultICO(asset string, start uint64) ICO {
	return ICO{
		Asset:           asset,
		Start:           start,
		Days:            45,
		BonusDays:       14,
		BonusPercentage: 25,
		BaseRate:        1000,
		MaximumSupply:   500000,
	}
}

// Rate - tokens (in base units) per whole unit deposited at time now;
// zero outside the sale window or when supply is exhausted
func (l *Ledger) Rate(now uint64) uint64 {
	if l.TotalSupply() >= l.ico.MaximumSupply*Factor {
		return 0
	}
	if now < l.ico.Start {
		return 0
	}
	running := now - l.ico.Start
	if running > l.ico.Days*secondsPerDay {
		return 0
	}
	bonus := uint64(0)
	if running < l.ico.BonusDays*secondsPerDay {
		bonus = l.ico.BonusPercentage
	}
	return l.ico.BaseRate * Factor * (100 + bonus) / 100
}

// Mint - issue tokens for a deposit of the funding asset
//
// deposit is in base units of the asset (10^8 per whole unit).
// Returns false without error when the sale is not running; the
// deposit is then refunded.
func (l *Ledger) Mint(sender account.Account, asset string, deposit uint64, now uint64, events messagebus.Emitter) (bool, error) {
	if asset != l.ico.Asset {
		return false, fault.ErrFundingAssetMismatch
	}
	if 0 == deposit {
		return false, fault.ErrInvalidAmount
	}

	rate := l.Rate(now)
	if 0 == rate {
		l.log.Infof("mint: sale closed: refund: %s  deposit: %d", sender, deposit)
		events.Emit(EventRefund, sender, deposit)
		return false, nil
	}

	supply := l.TotalSupply()
	remaining := l.ico.MaximumSupply*Factor - supply

	minted := remaining
	hi, lo := bits.Mul64(deposit, rate)
	if hi < Factor {
		quotient, _ := bits.Div64(hi, lo, Factor)
		if quotient < remaining {
			minted = quotient
		}
	}
	if 0 == minted {
		events.Emit(EventRefund, sender, deposit)
		return false, nil
	}

	l.setBalance(sender, l.BalanceOf(sender)+int64(minted))
	l.supply.PutN(totalSupplyKey, supply+minted)

	l.log.Infof("mint: %s  deposit: %d  rate: %d  minted: %d", sender, deposit, rate, minted)
	events.Emit(EventTransfer, nil, sender, minted)
	return true, nil
}
