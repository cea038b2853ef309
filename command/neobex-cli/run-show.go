// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package main

import (
	"github.com/urfave/cli"

	"github.com/neobex/neobexd/command/neobex-cli/rpccalls"
)

func runShow(c *cli.Context) error {

	m := c.App.Metadata["config"].(*metadata)

	id, err := parseExistingId(c.String("id"))
	if nil != err {
		return err
	}

	client, err := newClient(m)
	if nil != err {
		return err
	}
	defer client.Close()

	reply, err := client.GetRecord(id)
	if nil != err {
		return err
	}

	return printJson(m.w, reply)
}

func runList(c *cli.Context) error {

	m := c.App.Metadata["config"].(*metadata)

	category, err := parseKind(c.String("kind"))
	if nil != err {
		return err
	}

	listConfig := &rpccalls.ListData{
		Kind:  category.String(),
		Count: c.Int("count"),
	}
	if s := c.String("start"); "" != s {
		start, err := parseExistingId(s)
		if nil != err {
			return err
		}
		listConfig.Start = &start
	}

	client, err := newClient(m)
	if nil != err {
		return err
	}
	defer client.Close()

	reply, err := client.List(listConfig)
	if nil != err {
		return err
	}

	return printJson(m.w, reply)
}

