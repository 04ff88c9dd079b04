// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package avl

import (
	"reflect"

	"github.com/bitmark-inc/logger"
)

// Item - a key item must implement the Compare function
//
// Compare returns negative, zero or positive as the receiver is
// less than, equal to or greater than the argument; only the sign
// is significant
type Item[T any] interface {
	Compare(T) int
}

// Node - a node in the tree
type Node[T Item[T]] struct {
	left   *Node[T] // left sub-tree
	right  *Node[T] // right sub-tree
	key    T        // key part for ordering
	height int      // 0 for a leaf
}

// Tree - type to hold the root node of a tree
type Tree[T Item[T]] struct {
	root  *Node[T]
	count int
	stats stats
	log   *logger.L
}

// New - create an initially empty tree
func New[T Item[T]]() *Tree[T] {
	return &Tree[T]{
		root:  nil,
		count: 0,
	}
}

// SetLog - attach a logger channel to trace rebalancing, nil to detach
func (tree *Tree[T]) SetLog(log *logger.L) {
	tree.log = log
}

// IsEmpty - true if tree contains no data
func (tree *Tree[T]) IsEmpty() bool {
	return nil == tree.root
}

// Count - number of nodes currently in the tree
func (tree *Tree[T]) Count() int {
	return tree.count
}

// Root - return the root node of the tree
func (tree *Tree[T]) Root() *Node[T] {
	return tree.root
}

// Height - height of the whole tree, -1 if empty
func (tree *Tree[T]) Height() int {
	return tree.root.Height()
}

// Clear - drop all nodes, rotation statistics are kept
func (tree *Tree[T]) Clear() {
	tree.root = nil
	tree.count = 0
}

// Key - read the key from a node item
func (p *Node[T]) Key() T {
	return p.key
}

// Height - cached height of a sub-tree, -1 for a nil sub-tree
func (p *Node[T]) Height() int {
	if nil == p {
		return -1
	}
	return p.height
}

// Left - return the left sub-tree
func (p *Node[T]) Left() *Node[T] {
	return p.left
}

// Right - return the right sub-tree
func (p *Node[T]) Right() *Node[T] {
	return p.right
}

// BalanceFactor - left height minus right height
func (p *Node[T]) BalanceFactor() int {
	if nil == p {
		return 0
	}
	return p.left.Height() - p.right.Height()
}

// recompute the cached height from the children
func (p *Node[T]) fixHeight() {
	p.height = max(p.left.Height(), p.right.Height()) + 1
}

// an absent key is a nil value of a nillable item type
func isAbsent[T any](key T) bool {
	v := reflect.ValueOf(any(key))
	if !v.IsValid() {
		return true
	}
	switch v.Kind() {
	case reflect.Ptr, reflect.Interface, reflect.Map, reflect.Slice, reflect.Func, reflect.Chan:
		return v.IsNil()
	default:
		return false
	}
}
