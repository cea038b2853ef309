// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package zmqutil

import (
	"sync"

	zmq "github.com/pebbe/zmq4"
)

// the ZAP handler is process wide, track how many sockets need it
var authentication struct {
	sync.Mutex
	users int
}

// StartAuthentication - start the ZAP handler for the first curve socket
func StartAuthentication() error {
	authentication.Lock()
	defer authentication.Unlock()

	if 0 == authentication.users {
		zmq.AuthSetVerbose(false)
		if err := zmq.AuthStart(); nil != err {
			return err
		}
	}
	authentication.users += 1
	return nil
}

// StopAuthentication - stop the ZAP handler once its last user is done
func StopAuthentication() {
	authentication.Lock()
	defer authentication.Unlock()

	if 0 == authentication.users {
		return
	}
	authentication.users -= 1
	if 0 == authentication.users {
		zmq.AuthStop()
	}
}
