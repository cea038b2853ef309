// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package node

import (
	"time"

	"golang.org/x/time/rate"

	"github.com/bitmark-inc/logger"

	"github.com/neobex/neobexd/counter"
	"github.com/neobex/neobexd/market"
	"github.com/neobex/neobexd/rpc/ratelimit"
)

const (
	rateLimitNode = 200
	rateBurstNode = 100
)

// Node - type for RPC calls
type Node struct {
	Log     *logger.L
	Limiter *rate.Limiter
	Start   time.Time
	Version string
	Handle  market.Handle
	counter *counter.Counter
}

// New - create the node service
func New(log *logger.L, handle market.Handle, start time.Time, version string, counter *counter.Counter) *Node {
	return &Node{
		Log:     log,
		Limiter: rate.NewLimiter(rateLimitNode, rateBurstNode),
		Start:   start,
		Version: version,
		Handle:  handle,
		counter: counter,
	}
}

// ---

// InfoArguments - empty arguments for info request
type InfoArguments struct{}

// InfoReply - results from info request
type InfoReply struct {
	Version     string          `json:"version"`
	Uptime      string          `json:"uptime"`
	RPCs        uint64          `json:"rpcs"`
	TotalSupply uint64          `json:"totalSupply"`
	Trade       TradeStatistics `json:"trade"`
}

// TradeStatistics - matching engine counters
type TradeStatistics struct {
	Passes           uint64 `json:"passes"`
	Cycles           uint64 `json:"cycles"`
	SettledLinks     uint64 `json:"settledLinks"`
	DisqualifiedBids uint64 `json:"disqualifiedBids"`
	PrunedIds        uint64 `json:"prunedIds"`
}

// Info - return some information about this node
func (node *Node) Info(_ *InfoArguments, reply *InfoReply) error {

	if err := ratelimit.Limit(node.Limiter); nil != err {
		return err
	}

	s := node.Handle.Statistics()

	reply.Version = node.Version
	reply.Uptime = time.Since(node.Start).String()
	reply.RPCs = node.counter.Uint64()
	reply.TotalSupply = node.Handle.TotalSupply()
	reply.Trade = TradeStatistics{
		Passes:           s.Passes.Uint64(),
		Cycles:           s.Cycles.Uint64(),
		SettledLinks:     s.SettledLinks.Uint64(),
		DisqualifiedBids: s.DisqualifiedBids.Uint64(),
		PrunedIds:        s.PrunedIds.Uint64(),
	}
	return nil
}
