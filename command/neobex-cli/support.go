// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package main

import (
	"fmt"
	"net"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/urfave/cli"

	"github.com/neobex/neobexd/account"
	"github.com/neobex/neobexd/command/neobex-cli/configuration"
	"github.com/neobex/neobexd/command/neobex-cli/rpccalls"
	"github.com/neobex/neobexd/currency"
	"github.com/neobex/neobexd/fault"
	"github.com/neobex/neobexd/record"
)

func checkName(name string) (string, error) {
	if "" == name {
		return "", fault.ErrIdentityNameNotFound
	}
	return name, nil
}

func checkConnect(connect string) (string, error) {
	connect = strings.TrimSpace(connect)
	if "" == connect {
		return "", fault.ErrMissingParameters
	}
	host, port, err := net.SplitHostPort(connect)
	if nil != err {
		return "", fault.ErrInvalidIpAddress
	}
	if "" == host {
		return "", fault.ErrInvalidIpAddress
	}
	n, err := strconv.Atoi(port)
	if nil != err || n < 1 || n > 65535 {
		return "", fault.ErrInvalidPortNumber
	}
	return connect, nil
}

func checkDescription(description string) (string, error) {
	if "" == description {
		return "", fault.ErrMissingParameters
	}
	return description, nil
}

// existing file/directory
func checkFileExists(name string) (bool, error) {
	s, err := os.Stat(name)
	if nil != err {
		return false, err
	}
	return s.IsDir(), nil
}

// identity name from the configuration or a base58 account
func checkRecipient(name string, config *configuration.Configuration) (account.Account, error) {
	if "" == name {
		return account.Account{}, fault.ErrMissingParameters
	}
	if a, err := config.Account(name); nil == err {
		return a, nil
	}
	return account.FromBase58(name)
}

// the global identity or the configured default
func identityName(c *cli.Context, config *configuration.Configuration) string {
	name := c.GlobalString("identity")
	if "" == name {
		name = config.DefaultIdentity
	}
	return name
}

// decrypt the signing key of the selected identity
func signer(c *cli.Context, m *metadata) (*account.PrivateKey, error) {
	name, err := checkName(identityName(c, m.config))
	if nil != err {
		return nil, err
	}

	password := c.GlobalString("password")
	if "" == password {
		password, err = promptPassword(name)
		if nil != err {
			return nil, err
		}
	}

	return m.config.Private(password, name)
}

func newClient(m *metadata) (*rpccalls.Client, error) {
	return rpccalls.NewClient(m.config.Connect, m.config.Fingerprint, m.verbose, m.e)
}

// newId - random id of a category
func newId(category record.Category) record.Id {
	u := uuid.New()
	return record.NewId(category, u[:])
}

// parse an id or generate one when blank
func parseId(s string, category record.Category) (record.Id, error) {
	if "" == s {
		return newId(category), nil
	}
	var id record.Id
	if err := id.UnmarshalText([]byte(s)); nil != err {
		return id, err
	}
	if category != id.Category() {
		return id, fault.ErrInvalidCategory
	}
	return id, nil
}

// parse an id that must already exist
func parseExistingId(s string) (record.Id, error) {
	var id record.Id
	if "" == s {
		return id, fault.ErrMissingParameters
	}
	err := id.UnmarshalText([]byte(s))
	return id, err
}

func parseIds(list []string) ([]record.Id, error) {
	if 0 == len(list) {
		return nil, fault.ErrMissingParameters
	}
	ids := make([]record.Id, 0, len(list))
	for _, s := range list {
		for _, item := range strings.Split(s, ",") {
			if "" == item {
				continue
			}
			id, err := parseExistingId(item)
			if nil != err {
				return nil, err
			}
			ids = append(ids, id)
		}
	}
	return ids, nil
}

func parseCurrency(s string) (currency.Currency, error) {
	return currency.FromString(s)
}

func parseKind(kind string) (record.Category, error) {
	switch strings.ToLower(kind) {
	case "offer", "o":
		return record.CategoryOffer, nil
	case "sale", "s":
		return record.CategorySale, nil
	case "auction", "a":
		return record.CategoryAuction, nil
	default:
		return 0, fault.ErrInvalidCategory
	}
}

// unix seconds d from now
func deadline(d time.Duration) uint64 {
	return uint64(time.Now().Add(d).Unix())
}

func checkAmount(name string, amount uint64) error {
	if 0 == amount {
		return fmt.Errorf("%s: %s", name, fault.ErrInvalidAmount)
	}
	return nil
}

// operationReply - printed result of an invoke
type operationReply struct {
	Operation string      `json:"operation"`
	Id        *record.Id  `json:"id,omitempty"`
	Result    interface{} `json:"result"`
}

// sign, send and print one market operation
func invoke(c *cli.Context, m *metadata, id *record.Id, operation string, arguments ...interface{}) error {
	key, err := signer(c, m)
	if nil != err {
		return err
	}

	client, err := newClient(m)
	if nil != err {
		return err
	}
	defer client.Close()

	result, err := client.Invoke(key, operation, arguments...)
	if nil != err {
		return err
	}

	return printJson(m.w, operationReply{
		Operation: operation,
		Id:        id,
		Result:    result,
	})
}
