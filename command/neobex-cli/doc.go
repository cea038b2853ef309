// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

// neobex-cli - command line client for neobexd
//
// identities are kept in $XDG_CONFIG_HOME/neobex-cli/neobex-cli.json
// with the private keys encrypted by a password
package main
