// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package trade

import (
	"time"

	"github.com/bitmark-inc/logger"
)

// AuctionProcessor - runs an auction sweep inside its own transaction
type AuctionProcessor interface {
	ProcessAuctions() (int, error)
}

// Closer - background process sweeping closed auctions
type Closer struct {
	log       *logger.L
	processor AuctionProcessor
	interval  time.Duration
}

// NewCloser - create a sweeper running every interval
func NewCloser(log *logger.L, processor AuctionProcessor, interval time.Duration) *Closer {
	return &Closer{
		log:       log,
		processor: processor,
		interval:  interval,
	}
}

// Run - background entry point
func (c *Closer) Run(args interface{}, shutdown <-chan struct{}) {

	log := c.log
	log.Infof("starting…  interval: %s", c.interval)

	ticker := time.NewTicker(c.interval)
	defer ticker.Stop()

loop:
	for {
		select {
		case <-shutdown:
			break loop
		case <-ticker.C:
			n, err := c.processor.ProcessAuctions()
			if nil != err {
				log.Errorf("process auctions error: %s", err)
				continue loop
			}
			if n > 0 {
				log.Infof("closed auctions: %d", n)
			}
		}
	}

	log.Info("shutting down…")
}
