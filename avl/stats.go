// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package avl

import (
	"github.com/bitmark-inc/avltree/counter"
)

// live rotation counters
type stats struct {
	left   counter.Counter
	right  counter.Counter
	double counter.Counter
}

// Stats - snapshot of the rotations performed by a tree
//
// a double rotation (LR or RL) also counts one left and one right
// single rotation
type Stats struct {
	LeftRotations   uint64 `json:"leftRotations"`
	RightRotations  uint64 `json:"rightRotations"`
	DoubleRotations uint64 `json:"doubleRotations"`
}

// Stats - read the rotation counters
func (tree *Tree[T]) Stats() Stats {
	return Stats{
		LeftRotations:   tree.stats.left.Uint64(),
		RightRotations:  tree.stats.right.Uint64(),
		DoubleRotations: tree.stats.double.Uint64(),
	}
}

// ResetStats - zero the rotation counters, returns the values they had
func (tree *Tree[T]) ResetStats() Stats {
	return Stats{
		LeftRotations:   tree.stats.left.Reset(),
		RightRotations:  tree.stats.right.Reset(),
		DoubleRotations: tree.stats.double.Reset(),
	}
}
