// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package rpccalls

import (
	"crypto/tls"
	"encoding/hex"
	"io"
	"net"
	"net/rpc"
	"net/rpc/jsonrpc"

	"github.com/neobex/neobexd/fault"
	"github.com/neobex/neobexd/rpc/certificate"
)

// Client - to hold RPC connections streams
type Client struct {
	conn    net.Conn
	client  *rpc.Client
	verbose bool
	handle  io.Writer // if verbose is set output items here
}

// NewClient - create a RPC connection to a neobexd
//
// the server certificate is self signed so it is only checked
// against the optional hex SHA3-256 fingerprint
func NewClient(connect string, fingerprint string, verbose bool, handle io.Writer) (*Client, error) {

	tlsConfig := &tls.Config{
		InsecureSkipVerify: true,
	}

	conn, err := tls.Dial("tcp", connect, tlsConfig)
	if err != nil {
		return nil, err
	}

	if "" != fingerprint {
		if err := checkFingerprint(conn, fingerprint); nil != err {
			conn.Close()
			return nil, err
		}
	}

	r := &Client{
		conn:    conn,
		client:  jsonrpc.NewClient(conn),
		verbose: verbose,
		handle:  handle,
	}
	return r, nil
}

func checkFingerprint(conn *tls.Conn, fingerprint string) error {
	expected, err := hex.DecodeString(fingerprint)
	if nil != err {
		return fault.ErrFingerprintMismatch
	}
	certificates := conn.ConnectionState().PeerCertificates
	if 0 == len(certificates) {
		return fault.ErrFingerprintMismatch
	}
	actual := certificate.Fingerprint(certificates[0].Raw)
	if hex.EncodeToString(actual[:]) != hex.EncodeToString(expected) {
		return fault.ErrFingerprintMismatch
	}
	return nil
}

// Close - shutdown the neobexd connection
func (c *Client) Close() {
	c.client.Close()
	c.conn.Close()
}
