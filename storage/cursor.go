// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package storage

import (
	"github.com/syndtr/goleveldb/leveldb/util"

	"github.com/neobex/neobexd/fault"
)

// FetchCursor - pages through one pool in key order
//
// reads see committed data only
type FetchCursor struct {
	pool   *PoolHandle
	bounds util.Range
}

// NewFetchCursor - a cursor at the first key of the pool
func (p *PoolHandle) NewFetchCursor() *FetchCursor {
	return &FetchCursor{
		pool: p,
		bounds: util.Range{
			Start: []byte{p.prefix},
			Limit: p.limit,
		},
	}
}

// Seek - continue from key, inclusive
func (cursor *FetchCursor) Seek(key []byte) *FetchCursor {
	cursor.bounds.Start = cursor.pool.prefixKey(key)
	return cursor
}

// Fetch - up to count elements, the cursor then points past the last one
func (cursor *FetchCursor) Fetch(count int) ([]Element, error) {
	if nil == cursor {
		return nil, fault.ErrInvalidCursor
	}
	if count <= 0 {
		return nil, fault.ErrInvalidCount
	}

	results := make([]Element, 0, count)
	err := cursor.scan(func(e Element) (bool, error) {
		results = append(results, e)
		return len(results) < count, nil
	})

	if n := len(results); n > 0 {
		cursor.bounds.Start = successor(cursor.pool.prefixKey(results[n-1].Key))
	}
	return results, err
}

// Map - run f on every remaining element, stopping at the first error
func (cursor *FetchCursor) Map(f func(key []byte, value []byte) error) error {
	if nil == cursor {
		return fault.ErrInvalidCursor
	}
	return cursor.scan(func(e Element) (bool, error) {
		if err := f(e.Key, e.Value); nil != err {
			return false, err
		}
		return true, nil
	})
}

// visit elements in order while more returns true
func (cursor *FetchCursor) scan(more func(Element) (bool, error)) error {
	if nil == cursor.pool.dataAccess {
		return nil
	}

	iter := cursor.pool.dataAccess.Iterator(&cursor.bounds)
	defer iter.Release()

	for iter.Next() {
		// iterator slices are reused, copy out without the prefix byte
		key := iter.Key()
		value := iter.Value()
		e := Element{
			Key:   append([]byte{}, key[1:]...),
			Value: append([]byte{}, value...),
		}
		ok, err := more(e)
		if nil != err {
			return err
		}
		if !ok {
			break
		}
	}
	return iter.Error()
}

// smallest key ordered after k
func successor(k []byte) []byte {
	next := make([]byte, len(k)+1)
	copy(next, k)
	return next
}
