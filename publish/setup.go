// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package publish

import (
	"sync"

	"github.com/bitmark-inc/logger"

	"github.com/neobex/neobexd/background"
	"github.com/neobex/neobexd/fault"
	"github.com/neobex/neobexd/messagebus"
	"github.com/neobex/neobexd/zmqutil"
)

// size of the event queue between the market and the sockets
const queueSize = 1000

// Configuration - a block of configuration data
// this is read from a Lua configuration file
//
// keys are optional, without them the sockets are not encrypted
type Configuration struct {
	Broadcast  []string `gluamapper:"broadcast" json:"broadcast"`
	PrivateKey string   `gluamapper:"private_key" json:"private_key"`
	PublicKey  string   `gluamapper:"public_key" json:"public_key"`
}

// globals for background proccess
type publishData struct {
	sync.RWMutex // to allow locking

	log *logger.L // logger

	brdc broadcaster // for broadcasting market events

	// curve authentication was started
	secure bool

	// for background
	background *background.T

	// set once during initialise
	initialised bool
}

// global data
var globalData publishData

// Initialise - start broadcasting events from the queue
func Initialise(configuration *Configuration, queue *messagebus.BroadcastQueue) error {

	globalData.Lock()
	defer globalData.Unlock()

	// no need to start if already started
	if globalData.initialised {
		return fault.ErrAlreadyInitialised
	}

	globalData.log = logger.New("publish")
	globalData.log.Info("starting…")

	var privateKey, publicKey []byte
	if "" != configuration.PrivateKey {
		var err error
		privateKey, err = zmqutil.ReadPrivateKeyFile(configuration.PrivateKey)
		if nil != err {
			globalData.log.Errorf("read private key file: %q  error: %s", configuration.PrivateKey, err)
			return err
		}
		publicKey, err = zmqutil.ReadPublicKeyFile(configuration.PublicKey)
		if nil != err {
			globalData.log.Errorf("read public key file: %q  error: %s", configuration.PublicKey, err)
			return err
		}
		if err := zmqutil.StartAuthentication(); nil != err {
			globalData.log.Errorf("zmq authentication error: %s", err)
			return err
		}
		globalData.secure = true
	}

	if err := globalData.brdc.initialise(privateKey, publicKey, configuration.Broadcast, queue); nil != err {
		if globalData.secure {
			zmqutil.StopAuthentication()
			globalData.secure = false
		}
		return err
	}

	// all data initialised
	globalData.initialised = true

	// start background processes
	globalData.log.Info("start background…")

	processes := background.Processes{
		&globalData.brdc,
	}

	globalData.background = background.Start(processes, globalData.log)

	return nil
}

// Finalise - stop all background tasks
func Finalise() error {
	globalData.Lock()
	defer globalData.Unlock()

	if !globalData.initialised {
		return fault.ErrNotInitialised
	}

	globalData.log.Info("shutting down…")
	globalData.log.Flush()

	// stop background
	globalData.background.Stop()

	if globalData.secure {
		zmqutil.StopAuthentication()
		globalData.secure = false
	}

	// finally...
	globalData.initialised = false

	globalData.log.Info("finished")
	globalData.log.Flush()

	return nil
}
