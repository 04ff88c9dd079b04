// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package avl

import (
	"strings"

	"github.com/bitmark-inc/avltree/fault"
)

// Order - depth first traversal order
type Order int

const (
	Preorder  Order = iota // node, left, right
	Inorder   Order = iota // left, node, right
	Postorder Order = iota // left, right, node
)

// String - lower case name of the order
func (o Order) String() string {
	switch o {
	case Preorder:
		return "preorder"
	case Inorder:
		return "inorder"
	case Postorder:
		return "postorder"
	default:
		return "unknown"
	}
}

// ParseOrder - convert a name back to an order, case is ignored
func ParseOrder(s string) (Order, error) {
	switch strings.ToLower(s) {
	case "pre", "preorder":
		return Preorder, nil
	case "in", "inorder":
		return Inorder, nil
	case "post", "postorder":
		return Postorder, nil
	default:
		return 0, fault.ErrUnknownTraversalOrder
	}
}

// Traverse - all keys in the given order, nil for an empty tree or
// an unknown order
func (tree *Tree[T]) Traverse(order Order) []T {
	if nil == tree.root {
		return nil
	}
	keys := make([]T, 0, tree.count)
	switch order {
	case Preorder:
		return preorder(tree.root, keys)
	case Inorder:
		return inorder(tree.root, keys)
	case Postorder:
		return postorder(tree.root, keys)
	default:
		return nil
	}
}

// PreorderTraversal - keys as node, left, right
func (tree *Tree[T]) PreorderTraversal() []T {
	return tree.Traverse(Preorder)
}

// InorderTraversal - keys in ascending order
func (tree *Tree[T]) InorderTraversal() []T {
	return tree.Traverse(Inorder)
}

// PostorderTraversal - keys as left, right, node
func (tree *Tree[T]) PostorderTraversal() []T {
	return tree.Traverse(Postorder)
}

func preorder[T Item[T]](p *Node[T], keys []T) []T {
	if nil == p {
		return keys
	}
	keys = append(keys, p.key)
	keys = preorder(p.left, keys)
	return preorder(p.right, keys)
}

func inorder[T Item[T]](p *Node[T], keys []T) []T {
	if nil == p {
		return keys
	}
	keys = inorder(p.left, keys)
	keys = append(keys, p.key)
	return inorder(p.right, keys)
}

func postorder[T Item[T]](p *Node[T], keys []T) []T {
	if nil == p {
		return keys
	}
	keys = postorder(p.left, keys)
	keys = postorder(p.right, keys)
	return append(keys, p.key)
}
