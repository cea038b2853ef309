// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package ratelimit_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"golang.org/x/time/rate"

	"github.com/neobex/neobexd/fault"
	"github.com/neobex/neobexd/rpc/ratelimit"
)

func TestLimit(t *testing.T) {
	limiter := rate.NewLimiter(100, 10)
	assert.Nil(t, ratelimit.Limit(limiter), "single request")

	zero := rate.NewLimiter(0, 0)
	assert.Equal(t, fault.ErrRateLimiting, ratelimit.Limit(zero), "no burst")
}

func TestLimitN(t *testing.T) {
	limiter := rate.NewLimiter(100, 10)

	assert.Nil(t, ratelimit.LimitN(limiter, 5, 10), "in range")
	assert.Equal(t, fault.ErrInvalidCount, ratelimit.LimitN(limiter, 0, 10), "zero count")
	assert.Equal(t, fault.ErrInvalidCount, ratelimit.LimitN(limiter, 11, 10), "above maximum")

	small := rate.NewLimiter(100, 2)
	assert.Equal(t, fault.ErrRateLimiting, ratelimit.LimitN(small, 5, 10), "more than burst")
}
