// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package avl_test

import (
	"bytes"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/bitmark-inc/avltree/avl"
)

func TestLockedConcurrentInsert(t *testing.T) {
	tree := avl.NewLocked[avl.Int]()

	var wg sync.WaitGroup
	for g := int64(0); g < 8; g += 1 {
		wg.Add(1)
		go func(base int64) {
			defer wg.Done()
			// overlapping ranges so some inserts are duplicates
			for i := base * 50; i < base*50+100; i += 1 {
				tree.Insert(avl.Int(i))
			}
		}(g)
	}
	wg.Wait()

	assert.Equal(t, 450, tree.Count(), "count")
	assert.NoError(t, tree.Check(), "check")
	assert.Len(t, tree.Traverse(avl.Inorder), 450, "traversal")
}

func TestLockedConcurrentMixed(t *testing.T) {
	tree := avl.NewLocked[avl.Int]()
	for i := int64(0); i < 200; i += 1 {
		tree.Insert(avl.Int(i))
	}

	var wg sync.WaitGroup
	for g := int64(0); g < 4; g += 1 {
		wg.Add(1)
		go func(g int64) {
			defer wg.Done()
			for i := g; i < 200; i += 4 {
				if 0 == i%2 {
					tree.Remove(avl.Int(i))
				}
				tree.Contains(avl.Int(i))
			}
		}(g)
	}
	wg.Wait()

	assert.Equal(t, 100, tree.Count(), "count")
	assert.NoError(t, tree.Check(), "check")
	assert.False(t, tree.Contains(avl.Int(0)), "even key left")
	assert.True(t, tree.Contains(avl.Int(1)), "odd key removed")
}

func TestLockedDo(t *testing.T) {
	tree := avl.NewLocked[avl.String]()

	tree.Do(func(tree *avl.Tree[avl.String]) {
		if !tree.Contains("a") {
			tree.Insert("a")
		}
	})

	assert.Equal(t, 1, tree.Count(), "count")
	assert.Equal(t, 0, tree.Height(), "height")

	buffer := &bytes.Buffer{}
	assert.Equal(t, 1, tree.Print(buffer, false), "depth")
	assert.Equal(t, "|------+ a\n", buffer.String(), "drawing")
	assert.True(t, tree.Remove("a"), "remove")
}
