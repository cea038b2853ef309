// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package server

import (
	"net/rpc"
	"time"

	"github.com/bitmark-inc/logger"

	"github.com/neobex/neobexd/counter"
	"github.com/neobex/neobexd/market"
	rpcmarket "github.com/neobex/neobexd/rpc/market"
	"github.com/neobex/neobexd/rpc/node"
	"github.com/neobex/neobexd/rpc/token"
)

// Create - an RPC server exposing the Market, Token and Node services
//
// rpcCount is the live connection count reported by Node.Info
func Create(log *logger.L, version string, handle market.Handle, rpcCount *counter.Counter) *rpc.Server {

	started := time.Now().UTC()

	services := []interface{}{
		rpcmarket.New(log, handle),
		token.New(log, handle),
		node.New(log, handle, started, version, rpcCount),
	}

	server := rpc.NewServer()
	for _, service := range services {
		if err := server.Register(service); nil != err {
			log.Criticalf("register service: %T  error: %s", service, err)
			logger.Panicf("rpc service registration failed: %s", err)
		}
	}

	return server
}
