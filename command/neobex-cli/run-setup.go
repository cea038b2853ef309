// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package main

import (
	"encoding/hex"
	"fmt"
	"os"
	"path"

	"github.com/urfave/cli"

	"github.com/neobex/neobexd/account"
	"github.com/neobex/neobexd/command/neobex-cli/configuration"
)

func runSetup(c *cli.Context) error {

	m := c.App.Metadata["config"].(*metadata)

	name, err := checkName(c.GlobalString("identity"))
	if err != nil {
		return err
	}

	connect, err := checkConnect(c.String("connect"))
	if err != nil {
		return err
	}

	description, err := checkDescription(c.String("description"))
	if err != nil {
		return err
	}

	key, err := makePrivateKey(c.String("key"))
	if err != nil {
		return err
	}

	if m.verbose {
		fmt.Fprintf(m.e, "config: %s\n", m.file)
		fmt.Fprintf(m.e, "connect: %s\n", connect)
		fmt.Fprintf(m.e, "identity: %s\n", name)
		fmt.Fprintf(m.e, "description: %s\n", description)
	}

	// Create the folder hierarchy for configuration if not existing
	configDir := path.Dir(m.file)
	d, err := checkFileExists(configDir)
	if err != nil {
		if err := os.MkdirAll(configDir, 0750); err != nil {
			return err
		}
	} else if !d {
		return fmt.Errorf("path: %q is not a directory", configDir)
	}

	config := &configuration.Configuration{
		DefaultIdentity: name,
		Connect:         connect,
		Fingerprint:     c.String("fingerprint"),
		Identities:      make(map[string]configuration.Identity),
	}

	password := c.GlobalString("password")
	if password == "" {
		password, err = promptNewPassword()
		if err != nil {
			return err
		}
	}

	err = config.AddIdentity(name, description, key, password)
	if err != nil {
		return err
	}

	m.config = config
	m.save = true

	return printJson(m.w, identityReply{
		Name:    name,
		Account: key.Account(),
	})
}

// new random key or one from a hex seed/private key
func makePrivateKey(s string) (*account.PrivateKey, error) {
	if "" == s {
		return account.NewPrivateKey(nil)
	}
	buffer, err := hex.DecodeString(s)
	if nil != err {
		return nil, err
	}
	return account.PrivateKeyFromBytes(buffer)
}

type identityReply struct {
	Name    string          `json:"name"`
	Account account.Account `json:"account"`
}
