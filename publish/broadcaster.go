// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package publish

import (
	"encoding/json"

	"github.com/bitmark-inc/logger"
	zmq "github.com/pebbe/zmq4"

	"github.com/neobex/neobexd/messagebus"
	"github.com/neobex/neobexd/zmqutil"
)

const (
	broadcasterZapDomain = "broadcaster"
)

type broadcaster struct {
	log     *logger.L
	socket4 *zmq.Socket
	socket6 *zmq.Socket
	events  *messagebus.BroadcastQueue
	queue   <-chan messagebus.Message
}

// initialise the broadcaster
func (brdc *broadcaster) initialise(privateKey []byte, publicKey []byte, broadcast []string, events *messagebus.BroadcastQueue) error {

	log := logger.New("broadcaster")
	brdc.log = log

	log.Info("initialising…")

	// allocate IPv4 and IPv6 sockets
	var err error
	brdc.socket4, brdc.socket6, err = zmqutil.NewBind(log, zmq.PUB, broadcasterZapDomain, privateKey, publicKey, broadcast)
	if nil != err {
		log.Errorf("bind error: %s", err)
		return err
	}

	brdc.events = events
	brdc.queue = events.Chan(queueSize)

	return nil
}

// Run - wait for market events and send them to subscribers
func (brdc *broadcaster) Run(args interface{}, shutdown <-chan struct{}) {

	log := brdc.log

	log.Info("starting…")

loop:
	for {
		select {
		case <-shutdown:
			break loop
		case item := <-brdc.queue:
			log.Debugf("sending: %s  data: %v", item.Command, item.Parameters)
			parts, err := encode(&item)
			if nil != err {
				log.Errorf("encode: %s  error: %s", item.Command, err)
				continue loop
			}
			brdc.process(brdc.socket4, parts)
			brdc.process(brdc.socket6, parts)
		}
	}

	brdc.events.Release(brdc.queue)

	if nil != brdc.socket4 {
		_ = brdc.socket4.Close()
	}
	if nil != brdc.socket6 {
		_ = brdc.socket6.Close()
	}
	log.Info("stopped")
}

// encode - a two part message: command and the parameters as a JSON array
func encode(item *messagebus.Message) ([][]byte, error) {
	parameters := item.Parameters
	if nil == parameters {
		parameters = []interface{}{}
	}
	data, err := json.Marshal(parameters)
	if nil != err {
		return nil, err
	}
	return [][]byte{[]byte(item.Command), data}, nil
}

// send one message without blocking, a full socket drops it
func (brdc *broadcaster) process(socket *zmq.Socket, parts [][]byte) {
	if nil == socket {
		return
	}

	_, err := socket.SendBytes(parts[0], zmq.SNDMORE|zmq.DONTWAIT)
	if nil == err {
		_, err = socket.SendBytes(parts[1], zmq.DONTWAIT)
	}
	if nil != err {
		brdc.log.Warnf("send error: %s", err)
	}
}
