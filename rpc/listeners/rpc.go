// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package listeners

import (
	"crypto/tls"
	"net"
	"net/rpc"
	"net/rpc/jsonrpc"
	"strings"
	"sync"

	"github.com/bitmark-inc/logger"

	"github.com/neobex/neobexd/counter"
	"github.com/neobex/neobexd/fault"
	"github.com/neobex/neobexd/util"
)

const (
	logName            = "client_rpc"
	minConnectionCount = 1
)

// RPCConfiguration - configuration file data for RPC setup
type RPCConfiguration struct {
	MaximumConnections uint64   `gluamapper:"maximum_connections" json:"maximum_connections"`
	Listen             []string `gluamapper:"listen" json:"listen"`
	Certificate        string   `gluamapper:"certificate" json:"certificate"`
	PrivateKey         string   `gluamapper:"private_key" json:"private_key"`
}

// one listen address resolved to the network it binds
type endpoint struct {
	network string
	address string
}

type rpcListener struct {
	sync.Mutex
	log            *logger.L
	endpoints      []endpoint
	sockets        []net.Listener
	connections    *counter.Counter
	server         *rpc.Server
	maxConnections uint64
	tlsConfig      *tls.Config
}

// NewRPC - validate the configuration and create a JSON-RPC over TLS listener
//
// "*:PORT" listens on all IPv4 and IPv6 interfaces
func NewRPC(
	configuration *RPCConfiguration,
	log *logger.L,
	connections *counter.Counter,
	server *rpc.Server,
	tlsConfig *tls.Config,
	certificateFingerprint [32]byte,
) (Listener, error) {
	if configuration.MaximumConnections < minConnectionCount {
		log.Errorf("invalid %s maximum connection limit: %d", logName, configuration.MaximumConnections)
		return nil, fault.ErrMissingParameters
	}

	if 0 == len(configuration.Listen) {
		log.Errorf("missing %s listen", logName)
		return nil, fault.ErrMissingParameters
	}

	endpoints := make([]endpoint, 0, len(configuration.Listen))
	for _, listen := range configuration.Listen {
		address, v6, err := util.CanonicalIPandPort("", listen)
		if nil != err {
			log.Errorf("%s listen: %q  error: %s", logName, listen, err)
			return nil, err
		}
		e := endpoint{network: "tcp4", address: address}
		if strings.HasPrefix(strings.TrimSpace(listen), "*:") {
			e.network = "tcp"
		} else if v6 {
			e.network = "tcp6"
		}
		endpoints = append(endpoints, e)
	}

	log.Infof("%s: SHA3-256 fingerprint: %x", logName, certificateFingerprint)

	return &rpcListener{
		log:            log,
		endpoints:      endpoints,
		connections:    connections,
		server:         server,
		maxConnections: configuration.MaximumConnections,
		tlsConfig:      tlsConfig,
	}, nil
}

// Serve - start accepting on every listen address
func (r *rpcListener) Serve() error {
	r.Lock()
	defer r.Unlock()

	for _, e := range r.endpoints {
		r.log.Infof("starting RPC server: %s %s", e.network, e.address)
		socket, err := tls.Listen(e.network, e.address, r.tlsConfig)
		if nil != err {
			r.log.Errorf("rpc server listen: %s  error: %s", e.address, err)
			return err
		}
		r.sockets = append(r.sockets, socket)

		go r.accept(socket)
	}
	return nil
}

// Stop - close all listen sockets, open connections finish normally
func (r *rpcListener) Stop() {
	r.Lock()
	defer r.Unlock()

	for _, socket := range r.sockets {
		_ = socket.Close()
	}
	r.sockets = nil
}

// serve connections until the socket is closed
func (r *rpcListener) accept(socket net.Listener) {
	for {
		conn, err := socket.Accept()
		if nil != err {
			r.log.Infof("rpc accept terminated: %s", err)
			return
		}

		if r.connections.Increment() > r.maxConnections {
			r.connections.Decrement()
			r.log.Warnf("connection limit reached, rejecting: %s", conn.RemoteAddr())
			_ = conn.Close()
			continue
		}

		go func(conn net.Conn) {
			defer r.connections.Decrement()
			r.server.ServeCodec(jsonrpc.NewServerCodec(conn))
		}(conn)
	}
}
