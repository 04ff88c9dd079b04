// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package avl

// Contains - true if the key is present in the tree
func (tree *Tree[T]) Contains(key T) bool {
	return nil != tree.Search(key)
}

// Search - find a specific item, nil if not present
func (tree *Tree[T]) Search(key T) *Node[T] {
	if isAbsent(key) {
		return nil
	}
	return search(key, tree.root)
}

func search[T Item[T]](key T, p *Node[T]) *Node[T] {
	if nil == p { // key not in tree
		return nil
	}

	switch c := key.Compare(p.key); {
	case c < 0:
		return search(key, p.left)
	case c > 0:
		return search(key, p.right)
	default:
		return p
	}
}
