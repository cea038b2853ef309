// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package messagebus

// Emitter - records an event
type Emitter interface {
	Emit(command string, parameters ...interface{})
}

// Pending - events of one call held until its outcome is known
type Pending struct {
	messages []Message
}

// Emit - hold an event
func (p *Pending) Emit(command string, parameters ...interface{}) {
	p.messages = append(p.messages, Message{
		Command:    command,
		Parameters: parameters,
	})
}

// Messages - the held events in order
func (p *Pending) Messages() []Message {
	return p.messages
}

// Flush - send all held events and empty the buffer
func (p *Pending) Flush(to Sender) int {
	n := len(p.messages)
	for _, m := range p.messages {
		to.Send(m.Command, m.Parameters...)
	}
	p.messages = nil
	return n
}

// Discard - drop all held events
func (p *Pending) Discard() {
	p.messages = nil
}
