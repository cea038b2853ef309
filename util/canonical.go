// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package util

import (
	"net"
	"strconv"
	"strings"

	"github.com/neobex/neobexd/fault"
)

// CanonicalIPandPort - make the IP:Port canonical and add a prefix
//
// examples:
//   IPv4:  127.0.0.1:1234
//   IPv6:  [::1]:1234
//
// "*:PORT" is accepted as all IPv6 and IPv4 interfaces
func CanonicalIPandPort(prefix string, hostPort string) (string, bool, error) {

	hostPort = strings.TrimSpace(hostPort)
	if strings.HasPrefix(hostPort, "*:") {
		hostPort = "[::]" + hostPort[1:]
	}

	host, port, err := net.SplitHostPort(hostPort)
	if nil != err {
		return "", false, fault.ErrInvalidIpAddress
	}

	IP := net.ParseIP(strings.TrimSpace(host))
	if nil == IP {
		return "", false, fault.ErrInvalidIpAddress
	}

	numericPort, err := strconv.Atoi(strings.TrimSpace(port))
	if nil != err || numericPort < 1 || numericPort > 65535 {
		return "", false, fault.ErrInvalidPortNumber
	}

	if nil != IP.To4() {
		return prefix + IP.String() + ":" + strconv.Itoa(numericPort), false, nil
	}
	return prefix + "[" + IP.String() + "]:" + strconv.Itoa(numericPort), true, nil
}
