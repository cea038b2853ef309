// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package trade

import (
	"github.com/bitmark-inc/logger"

	"github.com/neobex/neobexd/fault"
	"github.com/neobex/neobexd/record"
)

// keys in the links pool
var (
	visitedRootKey = []byte("OILAV")
	visitedSuffix  = []byte("VMK")
)

const visitedTag = 'V'

func markerKey(id record.Id) []byte {
	key := make([]byte, 0, record.IdLength+len(visitedSuffix))
	key = append(key, id.Bytes()...)
	return append(key, visitedSuffix...)
}

// true while a pass holds the guard
func (e *Engine) isProcessing() bool {
	return e.links.Has(visitedRootKey)
}

func (e *Engine) isVisited(id record.Id) bool {
	return e.links.Has(markerKey(id))
}

// push id on the visited list, false if it was already there
func (e *Engine) markVisited(id record.Id) bool {
	marker := markerKey(id)
	if e.links.Has(marker) {
		return false
	}

	value := []byte{visitedTag}
	if previous := e.links.Get(visitedRootKey); nil != previous {
		value = append(value, previous...)
	}
	e.links.Put(marker, value)
	e.links.Put(visitedRootKey, id.Bytes())
	return true
}

// visitedIds - most recent first
func (e *Engine) visitedIds() []record.Id {
	ids := make([]record.Id, 0, 16)
	current := e.links.Get(visitedRootKey)
	for nil != current {
		id, err := record.IdFromBytes(current)
		if nil != err {
			e.corrupted(current, err)
		}
		ids = append(ids, id)

		value := e.links.Get(markerKey(id))
		if 0 == len(value) || visitedTag != value[0] {
			e.corrupted(current, fault.ErrInvalidMarker)
		}
		if 1 == len(value) {
			break
		}
		current = value[1:]
	}
	return ids
}

// release - delete every marker and the root key
func (e *Engine) release() int {
	ids := e.visitedIds()
	for _, id := range ids {
		e.links.Delete(markerKey(id))
	}
	e.links.Delete(visitedRootKey)
	return len(ids)
}

func (e *Engine) corrupted(key []byte, err error) {
	e.log.Criticalf("visited list key: %x  error: %s", key, err)
	logger.Panicf("trade: visited list key: %x  error: %s", key, err)
}
