// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package currency

import (
	"sync/atomic"

	"github.com/neobex/neobexd/fault"
)

// DefaultUsdToNbxRate - USD per NBX until configured
const DefaultUsdToNbxRate = 5

// process-wide fiat-to-token rate
var usdToNbx = uint64(DefaultUsdToNbxRate)

// SetUsdToNbxRate - replace the fiat-to-token rate
func SetUsdToNbxRate(rate uint64) error {
	if 0 == rate {
		return fault.ErrInvalidRate
	}
	atomic.StoreUint64(&usdToNbx, rate)
	return nil
}

// UsdToNbxRate - the current fiat-to-token rate
func UsdToNbxRate() uint64 {
	return atomic.LoadUint64(&usdToNbx)
}

// ToNBX - express an amount of this currency in tokens
//
// fiat amounts use the rate current at the time of the call
func (currency Currency) ToNBX(amount uint64) uint64 {
	switch currency {
	case USD:
		return amount / UsdToNbxRate()
	default:
		return amount
	}
}
