// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package main

import (
	"github.com/bitmark-inc/logger"

	"github.com/neobex/neobexd/currency"
)

// reloader - re-reads the configuration file when it changes and
// applies the settings that can change while running
type reloader struct {
	log      *logger.L
	fileName string
	change   <-chan struct{}
	load     func(string) (*Configuration, error)
}

func newReloader(log *logger.L, fileName string, change <-chan struct{}) *reloader {
	return &reloader{
		log:      log,
		fileName: fileName,
		change:   change,
		load:     getConfiguration,
	}
}

// Run - background entry point
func (r *reloader) Run(args interface{}, shutdown <-chan struct{}) {
	log := r.log
	log.Info("starting…")

loop:
	for {
		select {
		case <-shutdown:
			break loop
		case <-r.change:
			r.reload()
		}
	}

	log.Info("shutting down…")
	log.Info("stopped")
}

// keep the running settings if the new file is broken
func (r *reloader) reload() {
	options, err := r.load(r.fileName)
	if nil != err {
		r.log.Errorf("reload: %q  error: %s", r.fileName, err)
		return
	}

	previous := currency.UsdToNbxRate()
	if previous == options.Market.UsdToNbxRate {
		return
	}
	if err := currency.SetUsdToNbxRate(options.Market.UsdToNbxRate); nil != err {
		r.log.Errorf("usd to nbx rate: %d  error: %s", options.Market.UsdToNbxRate, err)
		return
	}
	r.log.Infof("usd to nbx rate: %d -> %d", previous, options.Market.UsdToNbxRate)
}
