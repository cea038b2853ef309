// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package index

import (
	"github.com/bitmark-inc/logger"

	"github.com/neobex/neobexd/record"
	"github.com/neobex/neobexd/storage"
)

// Nodes - read and rewrite the next pointer held in a member record
type Nodes interface {
	// Next - the successor of id; found is false if the record is missing
	Next(id record.Id) (next *record.Id, found bool)

	// SetNext - rewrite the successor of id; nil terminates the list
	SetNext(id record.Id, next *record.Id)
}

// Order - true when incoming must be linked after existing
//
// a nil order gives a stack: new members become the root
type Order func(incoming record.Id, existing record.Id) bool

// List - singly linked list whose root id is kept in the links pool
type List struct {
	links storage.Handle
	root  []byte
	nodes Nodes
	after Order
}

// New - a list rooted at key
func New(links storage.Handle, root []byte, nodes Nodes, after Order) *List {
	return &List{
		links: links,
		root:  root,
		nodes: nodes,
		after: after,
	}
}

// RootKey - the key of the root pointer
func (l *List) RootKey() []byte {
	return l.root
}

// Head - first member of the list
func (l *List) Head() (record.Id, bool) {
	buffer := l.links.Get(l.root)
	if nil == buffer {
		return record.Id{}, false
	}
	id, err := record.IdFromBytes(buffer)
	if nil != err {
		logger.Criticalf("list: %q  root: %x  error: %s", l.root, buffer, err)
		logger.Panicf("list: %q  root corrupted: %s", l.root, err)
	}
	return id, true
}

// IsEmpty - true if the list has no root
func (l *List) IsEmpty() bool {
	return !l.links.Has(l.root)
}

func (l *List) setHead(id *record.Id) {
	if nil == id {
		l.links.Delete(l.root)
		return
	}
	l.links.Put(l.root, id.Bytes())
}

// successor of a member that must exist
func (l *List) next(id record.Id) *record.Id {
	next, found := l.nodes.Next(id)
	if !found {
		logger.Criticalf("list: %q  missing member: %s", l.root, id)
		logger.Panicf("list: %q  missing member: %s", l.root, id)
	}
	return next
}

// Insert - link a stored record into its position
func (l *List) Insert(id record.Id) {
	head, ok := l.Head()
	if !ok {
		l.nodes.SetNext(id, nil)
		l.setHead(&id)
		return
	}

	if nil == l.after || !l.after(id, head) {
		l.nodes.SetNext(id, &head)
		l.setHead(&id)
		return
	}

	previous := head
	for {
		next := l.next(previous)
		if nil == next || !l.after(id, *next) {
			l.nodes.SetNext(id, next)
			l.nodes.SetNext(previous, &id)
			return
		}
		previous = *next
	}
}

// Remove - unlink a member, the record itself is left in place
//
// returns false if id is not a member
func (l *List) Remove(id record.Id) bool {
	head, ok := l.Head()
	if !ok {
		return false
	}

	if head == id {
		l.setHead(l.next(id))
		l.nodes.SetNext(id, nil)
		return true
	}

	previous := head
	for {
		next := l.next(previous)
		if nil == next {
			return false
		}
		if *next == id {
			l.nodes.SetNext(previous, l.next(id))
			l.nodes.SetNext(id, nil)
			return true
		}
		previous = *next
	}
}

// Walk - visit members from the root until f returns false
//
// the successor is read before f is called so f may unlink the
// current member
func (l *List) Walk(f func(id record.Id) bool) {
	id, ok := l.Head()
	if !ok {
		return
	}
	for {
		next := l.next(id)
		if !f(id) {
			return
		}
		if nil == next {
			return
		}
		id = *next
	}
}

// Contains - true if id is a member
func (l *List) Contains(id record.Id) bool {
	found := false
	l.Walk(func(member record.Id) bool {
		if member == id {
			found = true
		}
		return !found
	})
	return found
}

// Ids - all members in list order
func (l *List) Ids() []record.Id {
	ids := make([]record.Id, 0, 8)
	l.Walk(func(id record.Id) bool {
		ids = append(ids, id)
		return true
	})
	return ids
}
