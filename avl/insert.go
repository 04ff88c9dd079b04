// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package avl

// Insert - insert a new node into the tree
//
// returns false if the key was absent or already present, in which
// case the tree is unchanged
func (tree *Tree[T]) Insert(key T) bool {
	if isAbsent(key) {
		return false
	}
	added := false
	tree.root, added = tree.insert(key, tree.root)
	if added {
		tree.count += 1
	}
	return added
}

// internal routine for insert, returns the new sub-tree root
func (tree *Tree[T]) insert(key T, p *Node[T]) (*Node[T], bool) {
	if nil == p { // insert new node
		return &Node[T]{
			key:    key,
			height: 0,
		}, true
	}

	added := false
	switch c := key.Compare(p.key); {
	case c < 0:
		p.left, added = tree.insert(key, p.left)
	case c > 0:
		p.right, added = tree.insert(key, p.right)
	default:
		// already present: duplicates are ignored
		return p, false
	}

	p.fixHeight()
	return tree.balance(p), added
}
