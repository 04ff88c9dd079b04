// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package avl

import (
	"github.com/bitmark-inc/avltree/fault"
)

// tolerable height difference between left and right sub-trees
const maxHeightDifference = 1

// the four imbalance cases, named after the path to the tallest
// grandchild
type imbalance int

const (
	caseLL imbalance = iota
	caseLR imbalance = iota
	caseRL imbalance = iota
	caseRR imbalance = iota
)

func (c imbalance) String() string {
	switch c {
	case caseLL:
		return "LL"
	case caseLR:
		return "LR"
	case caseRL:
		return "RL"
	case caseRR:
		return "RR"
	default:
		return "??"
	}
}

// restore the AVL property at p whose children are already balanced
// and have correct heights, returns the new sub-tree root
func (tree *Tree[T]) balance(p *Node[T]) *Node[T] {
	if nil == p {
		return nil
	}

	lh := p.left.Height()
	rh := p.right.Height()
	if lh-rh <= maxHeightDifference && rh-lh <= maxHeightDifference {
		p.fixHeight()
		return p
	}

	var c imbalance
	if lh > rh {
		// on equal grandchildren the single rotation is required
		if p.left.left.Height() >= p.left.right.Height() {
			c = caseLL
		} else {
			c = caseLR
		}
	} else {
		if p.right.left.Height() > p.right.right.Height() {
			c = caseRL
		} else {
			c = caseRR
		}
	}

	if nil != tree.log {
		tree.log.Debugf("rebalance: %s at: %v  heights: %d/%d", c, p.key, lh, rh)
	}

	switch c {
	case caseLL:
		p = tree.rotateRight(p)
	case caseLR:
		p.left = tree.rotateLeft(p.left)
		p = tree.rotateRight(p)
		tree.stats.double.Increment()
	case caseRL:
		p.right = tree.rotateRight(p.right)
		p = tree.rotateLeft(p)
		tree.stats.double.Increment()
	case caseRR:
		p = tree.rotateLeft(p)
	}

	p.fixHeight()
	return p
}

// single right rotation, the left child k1 becomes the sub-tree root
//
//	     p          k1
//	    / \        /  \
//	   k1  c  =>  a    p
//	  /  \            / \
//	 a    b          b   c
func (tree *Tree[T]) rotateRight(p *Node[T]) *Node[T] {
	k1 := p.left
	if nil == k1 {
		fault.Panicf("avl: right rotation without left child at: %v", p.key)
	}
	p.left = k1.right
	k1.right = p

	// only the two nodes whose sub-trees moved change height
	p.fixHeight()
	k1.height = max(k1.left.Height(), p.height) + 1

	tree.stats.right.Increment()
	return k1
}

// single left rotation, the right child k1 becomes the sub-tree root
func (tree *Tree[T]) rotateLeft(p *Node[T]) *Node[T] {
	k1 := p.right
	if nil == k1 {
		fault.Panicf("avl: left rotation without right child at: %v", p.key)
	}
	p.right = k1.left
	k1.left = p

	p.fixHeight()
	k1.height = max(k1.right.Height(), p.height) + 1

	tree.stats.left.Increment()
	return k1
}
