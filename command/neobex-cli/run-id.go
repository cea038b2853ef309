// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package main

import (
	"github.com/urfave/cli"

	"github.com/neobex/neobexd/record"
)

type idReply struct {
	Kind string    `json:"kind"`
	Id   record.Id `json:"id"`
}

func runId(c *cli.Context) error {

	m := c.App.Metadata["config"].(*metadata)

	category, err := parseKind(c.String("kind"))
	if nil != err {
		return err
	}

	return printJson(m.w, idReply{
		Kind: category.String(),
		Id:   newId(category),
	})
}
