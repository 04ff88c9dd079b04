// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package avl

// Remove - removes a specific item from the tree
//
// returns true only if a node was actually removed
func (tree *Tree[T]) Remove(key T) bool {
	if isAbsent(key) || nil == tree.root {
		return false
	}
	removed := false
	tree.root, removed = tree.remove(key, tree.root)
	if removed {
		tree.count -= 1
	}
	return removed
}

// internal delete routine, returns the new sub-tree root which is
// nil if the sub-tree became empty
func (tree *Tree[T]) remove(key T, p *Node[T]) (*Node[T], bool) {
	if nil == p { // key not in tree
		return nil, false
	}

	removed := false
	switch c := key.Compare(p.key); {
	case c < 0:
		p.left, removed = tree.remove(key, p.left)
		if !removed {
			return p, false
		}
	case c > 0:
		p.right, removed = tree.remove(key, p.right)
		if !removed {
			return p, false
		}
	default: // found: delete p
		removed = true
		switch {
		case nil == p.left && nil == p.right:
			return nil, true
		case nil == p.left:
			return p.right, true
		case nil == p.right:
			return p.left, true
		}

		// two children: take over the successor's key then delete
		// the successor from the right sub-tree
		successor := p.right.first()
		p.key = successor.key
		p.right, _ = tree.remove(successor.key, p.right)
	}

	p.fixHeight()
	return tree.balance(p), removed
}
