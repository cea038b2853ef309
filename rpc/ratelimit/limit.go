// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

// Package ratelimit - throttle RPC calls, a list request is charged
// one token per record it may return
package ratelimit

import (
	"time"

	"golang.org/x/time/rate"

	"github.com/neobex/neobexd/fault"
)

// Limit - charge a single call
func Limit(limiter *rate.Limiter) error {
	return wait(limiter, 1)
}

// LimitN - charge a call returning up to count records
//
// a count outside 1..maximumCount costs one token and is rejected
func LimitN(limiter *rate.Limiter, count int, maximumCount int) error {
	if count > 0 && count <= maximumCount {
		return wait(limiter, count)
	}
	if err := wait(limiter, 1); nil != err {
		return err
	}
	return fault.ErrInvalidCount
}

// block until n tokens are available, fail if n exceeds the burst
func wait(limiter *rate.Limiter, n int) error {
	r := limiter.ReserveN(time.Now(), n)
	if !r.OK() {
		return fault.ErrRateLimiting
	}
	time.Sleep(r.Delay())
	return nil
}
