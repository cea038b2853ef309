// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package node_test

import (
	"testing"
	"time"

	"github.com/bitmark-inc/logger"
	"github.com/golang/mock/gomock"
	"github.com/stretchr/testify/assert"
	"golang.org/x/time/rate"

	"github.com/neobex/neobexd/counter"
	"github.com/neobex/neobexd/fault"
	"github.com/neobex/neobexd/fixtures"
	"github.com/neobex/neobexd/market/mocks"
	"github.com/neobex/neobexd/rpc/node"
	"github.com/neobex/neobexd/trade"
)

func TestNodeInfo(t *testing.T) {
	fixtures.SetupTestLogger()
	defer fixtures.TeardownTestLogger()

	ctl := gomock.NewController(t)
	defer ctl.Finish()

	h := mocks.NewMockHandle(ctl)

	start := time.Now().Add(-time.Minute)
	c := counter.Counter(5)

	n := node.New(
		logger.New(fixtures.LogCategory),
		h,
		start,
		"100",
		&c,
	)

	stats := &trade.Statistics{}
	stats.Passes.Add(7)
	stats.Cycles.Add(2)
	stats.SettledLinks.Add(5)
	stats.DisqualifiedBids.Increment()
	stats.PrunedIds.Add(3)

	h.EXPECT().Statistics().Return(stats).Times(1)
	h.EXPECT().TotalSupply().Return(uint64(123456)).Times(1)

	var reply node.InfoReply
	err := n.Info(&node.InfoArguments{}, &reply)
	assert.Nil(t, err, "wrong Info")
	assert.Equal(t, "100", reply.Version, "wrong version")
	assert.Equal(t, c.Uint64(), reply.RPCs, "wrong connection count")
	assert.Equal(t, uint64(123456), reply.TotalSupply, "wrong supply")
	assert.NotEqual(t, "", reply.Uptime, "missing uptime")
	assert.Equal(t, node.TradeStatistics{
		Passes:           7,
		Cycles:           2,
		SettledLinks:     5,
		DisqualifiedBids: 1,
		PrunedIds:        3,
	}, reply.Trade, "wrong statistics")
}

func TestNodeInfoRateLimit(t *testing.T) {
	fixtures.SetupTestLogger()
	defer fixtures.TeardownTestLogger()

	ctl := gomock.NewController(t)
	defer ctl.Finish()

	h := mocks.NewMockHandle(ctl)
	c := counter.Counter(0)

	n := node.New(logger.New(fixtures.LogCategory), h, time.Now(), "1", &c)
	n.Limiter = rate.NewLimiter(0, 0)

	var reply node.InfoReply
	err := n.Info(&node.InfoArguments{}, &reply)
	assert.Equal(t, fault.ErrRateLimiting, err, "limit not applied")
}
