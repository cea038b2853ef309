// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package util_test

import (
	"io/ioutil"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/neobex/neobexd/util"
)

func TestEnsureAbsolute(t *testing.T) {
	assert.Equal(t, "/var/neobexd/data", util.EnsureAbsolute("/var/neobexd", "data"), "relative")
	assert.Equal(t, "/tmp/rpc.crt", util.EnsureAbsolute("/var/neobexd", "/tmp/rpc.crt"), "absolute")
	assert.Equal(t, "/var/log", util.EnsureAbsolute("/var/neobexd", "../log"), "parent")
}

func TestEnsureFileExists(t *testing.T) {
	dir, err := ioutil.TempDir("", "paths")
	require.Nil(t, err, "temp dir")
	defer os.RemoveAll(dir)

	name := filepath.Join(dir, "file")
	assert.False(t, util.EnsureFileExists(name), "file does not exist yet")

	require.Nil(t, ioutil.WriteFile(name, []byte("x"), 0600), "write")
	assert.True(t, util.EnsureFileExists(name), "file exists")
}

func TestIsPlainName(t *testing.T) {
	assert.True(t, util.IsPlainName("neobexd.leveldb"), "plain")
	assert.False(t, util.IsPlainName("data/neobexd.leveldb"), "relative path")
	assert.False(t, util.IsPlainName("/neobexd.leveldb"), "absolute path")
	assert.False(t, util.IsPlainName(""), "empty")
}
