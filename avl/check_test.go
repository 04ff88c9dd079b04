// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package avl

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/bitmark-inc/avltree/fault"
)

func build(keys ...Int) *Tree[Int] {
	tree := New[Int]()
	for _, k := range keys {
		tree.Insert(k)
	}
	return tree
}

func TestCheckDetectsOrder(t *testing.T) {
	tree := build(20, 10, 30)
	require.NoError(t, tree.Check(), "initial tree")

	tree.root.left.key = 25

	err := tree.Check()
	assert.True(t, errors.Is(err, fault.ErrOrderViolation), "wrong error: %v", err)
	assert.True(t, fault.IsErrInvalid(err), "not an invalid error: %v", err)
}

func TestCheckDetectsDeepOrder(t *testing.T) {
	tree := build(50, 30, 70, 20, 40)

	// 40 is right of 30 but must also stay below 50
	tree.root.left.right.key = 55

	err := tree.Check()
	assert.True(t, errors.Is(err, fault.ErrOrderViolation), "wrong error: %v", err)
}

func TestCheckDetectsHeight(t *testing.T) {
	tree := build(20, 10, 30)
	tree.root.height = 5

	err := tree.Check()
	assert.True(t, errors.Is(err, fault.ErrHeightMismatch), "wrong error: %v", err)
}

func TestCheckDetectsImbalance(t *testing.T) {
	tree := New[Int]()
	c := &Node[Int]{key: 3}
	b := &Node[Int]{key: 2, right: c, height: 1}
	tree.root = &Node[Int]{key: 1, right: b, height: 2}
	tree.count = 3

	err := tree.Check()
	assert.True(t, errors.Is(err, fault.ErrUnbalanced), "wrong error: %v", err)
}

func TestCheckDetectsCount(t *testing.T) {
	tree := build(1, 2, 3)
	tree.count = 4

	err := tree.Check()
	assert.True(t, errors.Is(err, fault.ErrCountMismatch), "wrong error: %v", err)
}

func TestBalanceCases(t *testing.T) {
	tree := New[Int]()

	// left spine 3 → 2 → 1 is the LL case
	n1 := &Node[Int]{key: 1}
	n2 := &Node[Int]{key: 2, left: n1, height: 1}
	n3 := &Node[Int]{key: 3, left: n2, height: 2}

	p := tree.balance(n3)
	assert.Equal(t, Int(2), p.key, "LL root")
	assert.Equal(t, 1, p.height, "LL height")
	assert.Equal(t, 0, p.left.height+p.right.height, "LL leaves")

	// 3 → 1 → 2 is the LR case
	n2 = &Node[Int]{key: 2}
	n1 = &Node[Int]{key: 1, right: n2, height: 1}
	n3 = &Node[Int]{key: 3, left: n1, height: 2}

	p = tree.balance(n3)
	assert.Equal(t, Int(2), p.key, "LR root")
	assert.Equal(t, Int(1), p.left.key, "LR left")
	assert.Equal(t, Int(3), p.right.key, "LR right")

	assert.Equal(t, Stats{LeftRotations: 1, RightRotations: 2, DoubleRotations: 1}, tree.Stats(), "rotations")

	assert.Nil(t, tree.balance(nil), "nil sub-tree")
}

func TestRotateWithoutPivot(t *testing.T) {
	tree := New[Int]()
	assert.Panics(t, func() {
		tree.rotateRight(&Node[Int]{key: 1})
	}, "right rotation of a leaf")
	assert.Panics(t, func() {
		tree.rotateLeft(&Node[Int]{key: 1})
	}, "left rotation of a leaf")
}

func TestIsAbsent(t *testing.T) {
	var p *Node[Int]
	var e error

	assert.True(t, isAbsent(p), "nil pointer")
	assert.True(t, isAbsent(e), "nil interface")
	assert.False(t, isAbsent(Int(0)), "zero int")
	assert.False(t, isAbsent(String("")), "empty string")
	assert.False(t, isAbsent(&Node[Int]{}), "non-nil pointer")
}
