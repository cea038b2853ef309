// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package messagebus

import (
	"sync"
)

// Message - a named event with its parameters
type Message struct {
	Command    string        `json:"command"`
	Parameters []interface{} `json:"parameters"`
}

// Sender - anything that accepts messages
type Sender interface {
	Send(command string, parameters ...interface{})
}

// BroadcastQueue - fan out to every listener
//
// a listener whose channel is full misses the message
type BroadcastQueue struct {
	sync.RWMutex
	listeners []chan Message
}

// BusType - the set of queues
type BusType struct {
	Events *BroadcastQueue
}

// Bus - the process wide queues
var Bus = BusType{
	Events: &BroadcastQueue{},
}

// Send - deliver to all current listeners
func (queue *BroadcastQueue) Send(command string, parameters ...interface{}) {
	m := Message{
		Command:    command,
		Parameters: parameters,
	}

	queue.RLock()
	defer queue.RUnlock()

	for _, l := range queue.listeners {
		select {
		case l <- m:
		default:
		}
	}
}

// Chan - add a listener with a buffer of size
func (queue *BroadcastQueue) Chan(size int) <-chan Message {
	if size < 0 {
		size = 0
	}
	c := make(chan Message, size)

	queue.Lock()
	queue.listeners = append(queue.listeners, c)
	queue.Unlock()

	return c
}

// Release - remove a listener and close its channel
func (queue *BroadcastQueue) Release(c <-chan Message) {
	queue.Lock()
	defer queue.Unlock()

	for i, l := range queue.listeners {
		if (<-chan Message)(l) == c {
			queue.listeners = append(queue.listeners[:i], queue.listeners[i+1:]...)
			close(l)
			return
		}
	}
}

// Listeners - number of attached listeners
func (queue *BroadcastQueue) Listeners() int {
	queue.RLock()
	defer queue.RUnlock()
	return len(queue.listeners)
}
