// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

// Package messagebus - queues for market events
//
// Events produced while a call runs are held in a Pending buffer and
// only sent to Bus.Events once the call's transaction has committed.
package messagebus
