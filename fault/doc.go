// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

// Package fault - every error the daemon and its clients return
//
// errors are constants grouped by class so callers compare values
// directly or test the class with the IsErr functions
package fault
