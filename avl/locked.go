// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package avl

import (
	"io"
	"sync"
)

// Locked - a tree where every operation holds one exclusive lock
type Locked[T Item[T]] struct {
	sync.Mutex
	tree *Tree[T]
}

// NewLocked - create an initially empty locked tree
func NewLocked[T Item[T]]() *Locked[T] {
	return &Locked[T]{
		tree: New[T](),
	}
}

// Insert - see Tree.Insert
func (l *Locked[T]) Insert(key T) bool {
	l.Lock()
	defer l.Unlock()
	return l.tree.Insert(key)
}

// Remove - see Tree.Remove
func (l *Locked[T]) Remove(key T) bool {
	l.Lock()
	defer l.Unlock()
	return l.tree.Remove(key)
}

// Contains - see Tree.Contains
func (l *Locked[T]) Contains(key T) bool {
	l.Lock()
	defer l.Unlock()
	return l.tree.Contains(key)
}

// Count - see Tree.Count
func (l *Locked[T]) Count() int {
	l.Lock()
	defer l.Unlock()
	return l.tree.Count()
}

// Height - see Tree.Height
func (l *Locked[T]) Height() int {
	l.Lock()
	defer l.Unlock()
	return l.tree.Height()
}

// Traverse - see Tree.Traverse, the returned slice is a copy
func (l *Locked[T]) Traverse(order Order) []T {
	l.Lock()
	defer l.Unlock()
	return l.tree.Traverse(order)
}

// Check - see Tree.Check
func (l *Locked[T]) Check() error {
	l.Lock()
	defer l.Unlock()
	return l.tree.Check()
}

// Print - see Tree.Print
func (l *Locked[T]) Print(w io.Writer, showHeight bool) int {
	l.Lock()
	defer l.Unlock()
	return l.tree.Print(w, showHeight)
}

// Stats - rotation counters are atomic so no lock is taken
func (l *Locked[T]) Stats() Stats {
	return l.tree.Stats()
}

// Do - run f with the lock held, for compound operations
func (l *Locked[T]) Do(f func(tree *Tree[T])) {
	l.Lock()
	defer l.Unlock()
	f(l.tree)
}
