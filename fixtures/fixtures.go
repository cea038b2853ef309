// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

// Package fixtures holds helpers shared by package tests
package fixtures

import (
	"bytes"
	"encoding/binary"
	"fmt"
	"os"

	"github.com/bitmark-inc/logger"

	"github.com/neobex/neobexd/account"
	"github.com/neobex/neobexd/record"
)

const (
	dir         = "testing"
	LogCategory = "testing"
)

// deterministic keys for test accounts
var (
	OwnerKey = makeKey(0x01)
	AliceKey = makeKey(0x0a)
	BobKey   = makeKey(0x0b)
	CarolKey = makeKey(0x0c)
	DaveKey  = makeKey(0x0d)

	Owner = OwnerKey.Account()
	Alice = AliceKey.Account()
	Bob   = BobKey.Account()
	Carol = CarolKey.Account()
	Dave  = DaveKey.Account()
)

func makeKey(fill byte) *account.PrivateKey {
	key, err := account.NewPrivateKey(bytes.NewReader(bytes.Repeat([]byte{fill}, 32)))
	if nil != err {
		panic(fmt.Sprintf("fixture key: %s", err))
	}
	return key
}

// MakeId - id of a category with a small serial number
func MakeId(category record.Category, n uint32) record.Id {
	body := make([]byte, record.IdLength-1)
	binary.BigEndian.PutUint32(body[len(body)-4:], n)
	return record.NewId(category, body)
}

// SetupTestLogger - log to a scratch directory
func SetupTestLogger() {
	removeFiles()
	_ = os.Mkdir(dir, 0700)

	logging := logger.Configuration{
		Directory: dir,
		File:      fmt.Sprintf("%s.log", LogCategory),
		Size:      1048576,
		Count:     10,
		Console:   false,
		Levels: map[string]string{
			logger.DefaultTag: "critical",
		},
	}

	// start logging
	_ = logger.Initialise(logging)
}

// TeardownTestLogger - stop logging and remove the scratch directory
func TeardownTestLogger() {
	logger.Finalise()
	removeFiles()
}

func removeFiles() {
	err := os.RemoveAll(dir)
	if nil != err {
		fmt.Println("remove dir with error: ", err)
	}
}
