// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

// Package index maintains singly linked lists of records inside the
// key value store
//
// The root id of a list is stored under a fixed key in the links
// pool. Each member record carries the id of its successor, which is
// read and rewritten through a Nodes adapter supplied by the owner of
// the records. An Order function keeps the list sorted on insert; a
// list without one behaves as a stack.
package index
