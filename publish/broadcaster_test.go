// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package publish

import (
	"fmt"
	"math/rand"
	"testing"
	"time"

	zmq "github.com/pebbe/zmq4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/neobex/neobexd/background"
	"github.com/neobex/neobexd/fixtures"
	"github.com/neobex/neobexd/messagebus"
	"github.com/neobex/neobexd/record"
)

func TestEncode(t *testing.T) {
	id := fixtures.MakeId(record.CategoryOffer, 1)
	item := messagebus.Message{
		Command:    "transfer",
		Parameters: []interface{}{fixtures.Alice, id, uint64(25)},
	}

	parts, err := encode(&item)
	require.Nil(t, err, "encode")
	assert.Equal(t, "transfer", string(parts[0]), "wrong command")
	expected := fmt.Sprintf(`["%s","%s",25]`, fixtures.Alice, id)
	assert.Equal(t, expected, string(parts[1]), "wrong parameters")

	parts, err = encode(&messagebus.Message{Command: "refund"})
	require.Nil(t, err, "encode empty")
	assert.Equal(t, "[]", string(parts[1]), "empty parameters")
}

func TestBroadcast(t *testing.T) {
	fixtures.SetupTestLogger()
	defer fixtures.TeardownTestLogger()

	address := fmt.Sprintf("127.0.0.1:%d", rand.Intn(30000)+30000)
	events := &messagebus.BroadcastQueue{}

	var brdc broadcaster
	err := brdc.initialise(nil, nil, []string{address}, events)
	require.Nil(t, err, "initialise")
	assert.Nil(t, brdc.socket6, "no IPv6 address was configured")
	assert.Equal(t, 1, events.Listeners(), "queue not attached")

	processes := background.Start(background.Processes{&brdc}, nil)

	subscriber, err := zmq.NewSocket(zmq.SUB)
	require.Nil(t, err, "subscriber")
	defer subscriber.Close()
	require.Nil(t, subscriber.SetRcvtimeo(5*time.Second), "timeout")
	require.Nil(t, subscriber.SetSubscribe(""), "subscribe")
	require.Nil(t, subscriber.Connect("tcp://"+address), "connect")

	// allow the subscription to reach the publisher
	time.Sleep(200 * time.Millisecond)

	events.Send("trade", "offer", "sale")

	parts, err := subscriber.RecvMessageBytes(0)
	require.Nil(t, err, "receive")
	require.Equal(t, 2, len(parts), "wrong part count")
	assert.Equal(t, "trade", string(parts[0]), "wrong command")
	assert.Equal(t, `["offer","sale"]`, string(parts[1]), "wrong parameters")

	processes.Stop()
	assert.Equal(t, 0, events.Listeners(), "queue not released")
}

func TestBroadcastBadAddress(t *testing.T) {
	fixtures.SetupTestLogger()
	defer fixtures.TeardownTestLogger()

	events := &messagebus.BroadcastQueue{}

	var brdc broadcaster
	err := brdc.initialise(nil, nil, []string{"localhost:2139"}, events)
	assert.NotNil(t, err, "bad address accepted")
	assert.Equal(t, 0, events.Listeners(), "queue attached on error")
}
