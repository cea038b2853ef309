// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package configuration

import (
	"github.com/yuin/gluamapper"
	lua "github.com/yuin/gopher-lua"

	"github.com/neobex/neobexd/fault"
)

// fields are matched by their gluamapper tag, exactly as written
var mapper = gluamapper.Mapper{
	Option: gluamapper.Option{
		NameFunc: func(s string) string { return s },
		TagName:  "gluamapper",
	},
}

// ParseConfigurationFile - run a Lua file and map the table it
// returns onto config
//
// each variable becomes a Lua global and arg[0] is the file name
func ParseConfigurationFile(fileName string, config interface{}, variables map[string]string) error {
	L := lua.NewState()
	defer L.Close()

	L.OpenLibs()

	args := L.NewTable()
	args.RawSetInt(0, lua.LString(fileName))
	L.SetGlobal("arg", args)

	for name, value := range variables {
		L.SetGlobal(name, lua.LString(value))
	}

	if err := L.DoFile(fileName); nil != err {
		return err
	}

	result, ok := L.Get(-1).(*lua.LTable)
	if !ok {
		return fault.ErrMissingParameters
	}
	return mapper.Map(result, config)
}
