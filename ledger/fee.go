// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package ledger

// default processing fee
const (
	DefaultFeePercentage = 1
	DefaultMaximumFee    = 5
)

// Fees - processing fee charged on the token part of a trade
type Fees struct {
	Percentage uint64
	Maximum    uint64
}

// Fee - percentage of the amount in whole hundreds, capped
func (f Fees) Fee(amount uint64) uint64 {
	fee := amount / 100 * f.Percentage
	if fee > f.Maximum {
		return f.Maximum
	}
	return fee
}

// WithFee - amount a payer needs to hold
func (f Fees) WithFee(amount uint64) uint64 {
	return amount + f.Fee(amount)
}

// NetOfFee - amount a payee receives
func (f Fees) NetOfFee(amount uint64) uint64 {
	fee := f.Fee(amount)
	if fee > amount {
		return 0
	}
	return amount - fee
}
