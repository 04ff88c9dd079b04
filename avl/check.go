// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package avl

import (
	"fmt"

	"github.com/bitmark-inc/avltree/fault"
)

// Check - verify ordering, cached heights, balance and count
//
// returns nil for a consistent tree, otherwise the first violation
// found wrapping one of the fault invalid errors
func (tree *Tree[T]) Check() error {
	n, _, err := check(tree.root, nil, nil)
	if nil != err {
		return err
	}
	if n != tree.count {
		return fmt.Errorf("%w: count: %d  nodes: %d", fault.ErrCountMismatch, tree.count, n)
	}
	return nil
}

// internal: consistency checker, low and high are the exclusive
// bounds inherited from the ancestors; returns node count and
// recomputed height
func check[T Item[T]](p *Node[T], low *T, high *T) (int, int, error) {
	if nil == p {
		return 0, -1, nil
	}
	if nil != low && p.key.Compare(*low) <= 0 {
		return 0, 0, fmt.Errorf("%w: key: %v  not above: %v", fault.ErrOrderViolation, p.key, *low)
	}
	if nil != high && p.key.Compare(*high) >= 0 {
		return 0, 0, fmt.Errorf("%w: key: %v  not below: %v", fault.ErrOrderViolation, p.key, *high)
	}

	ln, lh, err := check(p.left, low, &p.key)
	if nil != err {
		return 0, 0, err
	}
	rn, rh, err := check(p.right, &p.key, high)
	if nil != err {
		return 0, 0, err
	}

	h := max(lh, rh) + 1
	if h != p.height {
		return 0, 0, fmt.Errorf("%w: key: %v  cached: %d  actual: %d", fault.ErrHeightMismatch, p.key, p.height, h)
	}
	if lh-rh > maxHeightDifference || rh-lh > maxHeightDifference {
		return 0, 0, fmt.Errorf("%w: key: %v  left: %d  right: %d", fault.ErrUnbalanced, p.key, lh, rh)
	}
	return ln + rn + 1, h, nil
}
