// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package script_test

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/bitmark-inc/avltree/avl"
	"github.com/bitmark-inc/avltree/fault"
	"github.com/bitmark-inc/avltree/script"
)

func TestBindSharesTree(t *testing.T) {
	tree := avl.New[avl.Int]()
	target := script.Bind(tree, script.ParseInt)

	for _, k := range []string{"30", "10", "20"} {
		added, err := target.Insert(k)
		require.NoError(t, err, "insert: %s", k)
		assert.True(t, added, "insert: %s", k)
	}

	assert.Equal(t, 3, tree.Count(), "tree count")
	assert.Equal(t, []string{"20", "10", "30"}, target.Traverse(avl.Preorder), "preorder")
	assert.Equal(t, avl.Stats{LeftRotations: 1, RightRotations: 1, DoubleRotations: 1}, target.Stats(), "rotations")

	first, ok := target.First()
	assert.True(t, ok, "first")
	assert.Equal(t, "10", first, "first")

	removed, err := target.Remove("-5")
	assert.NoError(t, err, "remove")
	assert.False(t, removed, "absent key removed")

	_, err = target.Remove("ten")
	assert.True(t, fault.IsErrInvalid(err), "wrong error: %v", err)

	assert.NoError(t, target.Check(), "check")
	assert.Equal(t, 2, target.Print(&bytes.Buffer{}), "depth")
	assert.Equal(t, 3, target.Clear(), "cleared")
	assert.Nil(t, target.Traverse(avl.Inorder), "empty traversal")
	assert.Equal(t, -1, target.Height(), "empty height")

	_, ok = target.Last()
	assert.False(t, ok, "last of empty tree")
}

func TestParsers(t *testing.T) {
	n, err := script.ParseInt("-42")
	assert.NoError(t, err, "int")
	assert.Equal(t, avl.Int(-42), n, "int")

	_, err = script.ParseInt("")
	assert.True(t, fault.IsErrInvalid(err), "empty int")

	s, err := script.ParseString("42")
	assert.NoError(t, err, "string")
	assert.Equal(t, avl.String("42"), s, "string")
}
