// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package configuration_test

import (
	"io/ioutil"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/neobex/neobexd/configuration"
)

type icoSection struct {
	Asset     string `gluamapper:"asset"`
	StartTime uint64 `gluamapper:"start_time"`
}

type marketSection struct {
	Owner        string     `gluamapper:"owner"`
	UsdToNbxRate uint64     `gluamapper:"usd_to_nbx_rate"`
	Ico          icoSection `gluamapper:"ico"`
}

type testConfiguration struct {
	DataDirectory string        `gluamapper:"data_directory"`
	Listen        []string      `gluamapper:"listen"`
	Market        marketSection `gluamapper:"market"`
	Untouched     string        `gluamapper:"untouched"`
}

const luaConfiguration = `
local M = {}

M.data_directory = arg[0]:match("(.*/)")
M.listen = { "127.0.0.1:2150", "[::1]:2150" }
M.market = {
    owner = owner_account,
    usd_to_nbx_rate = 250,
    ico = {
        asset = "ETH",
        start_time = 1500000000,
    },
}

return M
`

func writeFile(t *testing.T, content string) (string, func()) {
	dir, err := ioutil.TempDir("", "configuration")
	require.Nil(t, err, "temp dir")

	fileName := filepath.Join(dir, "neobexd.conf")
	err = ioutil.WriteFile(fileName, []byte(content), 0600)
	require.Nil(t, err, "write configuration")

	return fileName, func() { _ = os.RemoveAll(dir) }
}

func TestParseConfigurationFile(t *testing.T) {
	fileName, cleanup := writeFile(t, luaConfiguration)
	defer cleanup()

	options := &testConfiguration{
		Untouched: "default",
	}
	variables := map[string]string{
		"owner_account": "eZpz8BL2GrKtD9bcbsgXsGMN4yvC8wFzGS",
	}

	err := configuration.ParseConfigurationFile(fileName, options, variables)
	require.Nil(t, err, "parse")

	assert.Equal(t, filepath.Dir(fileName)+"/", options.DataDirectory, "wrong data directory")
	assert.Equal(t, []string{"127.0.0.1:2150", "[::1]:2150"}, options.Listen, "wrong listen")
	assert.Equal(t, variables["owner_account"], options.Market.Owner, "wrong owner")
	assert.Equal(t, uint64(250), options.Market.UsdToNbxRate, "wrong rate")
	assert.Equal(t, icoSection{Asset: "ETH", StartTime: 1500000000}, options.Market.Ico, "wrong ico")
	assert.Equal(t, "default", options.Untouched, "default overwritten")
}

func TestParseConfigurationFileErrors(t *testing.T) {
	options := &testConfiguration{}

	err := configuration.ParseConfigurationFile("/nonexistent/neobexd.conf", options, nil)
	assert.NotNil(t, err, "missing file")

	fileName, cleanup := writeFile(t, "return {")
	defer cleanup()
	err = configuration.ParseConfigurationFile(fileName, options, nil)
	assert.NotNil(t, err, "syntax error")

	noTable, cleanup2 := writeFile(t, "return 42")
	defer cleanup2()
	err = configuration.ParseConfigurationFile(noTable, options, nil)
	assert.NotNil(t, err, "result is not a table")
}
