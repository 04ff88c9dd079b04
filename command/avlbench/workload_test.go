// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package main

import (
	"errors"
	"testing"

	"github.com/bitmark-inc/logger"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/time/rate"

	"github.com/bitmark-inc/avltree/avl"
	"github.com/bitmark-inc/avltree/fault"
)

func testOptions() *Configuration {
	return &Configuration{
		Seed:              7,
		Rounds:            3,
		Operations:        2000,
		KeyRange:          200,
		CheckInterval:     100,
		ProgressPerSecond: 1000,
	}
}

func TestWorkloadRun(t *testing.T) {
	w := newWorkload(testOptions(), logger.New("test"))

	result, err := w.run(make(chan struct{}))
	require.NoError(t, err, "run")

	assert.Equal(t, 3, result.Rounds, "rounds")
	assert.NotZero(t, result.Inserted, "inserted")
	assert.Equal(t, result.Inserted, result.Removed, "every round drains the tree")
	assert.Equal(t, 0, result.Count, "count")
	assert.Equal(t, -1, result.Height, "height")

	// per round: one check per interval, one after the operations, one after draining
	assert.Equal(t, uint64(3*(2000/100+2)), result.Checks, "checks")

	assert.NotZero(t, result.Rotations.LeftRotations, "left rotations")
	assert.NotZero(t, result.Rotations.RightRotations, "right rotations")
}

func TestWorkloadDeterministic(t *testing.T) {
	first, err := newWorkload(testOptions(), logger.New("test")).run(make(chan struct{}))
	require.NoError(t, err, "first run")

	second, err := newWorkload(testOptions(), logger.New("test")).run(make(chan struct{}))
	require.NoError(t, err, "second run")

	assert.Equal(t, first, second, "same seed gives the same summary")
}

func TestWorkloadShutdown(t *testing.T) {
	shutdown := make(chan struct{})
	close(shutdown)

	result, err := newWorkload(testOptions(), logger.New("test")).run(shutdown)
	require.NoError(t, err, "run")

	assert.Equal(t, 0, result.Rounds, "rounds")
	assert.Zero(t, result.Inserted, "inserted")
}

func TestWorkloadStepMismatch(t *testing.T) {
	w := newWorkload(testOptions(), logger.New("test"))

	// tree holds a key the map does not know about
	w.tree.Insert(avl.Int(5))

	err := w.step(avl.Int(5), true)
	assert.True(t, errors.Is(err, fault.ErrCountMismatch), "insert: %v", err)

	err = w.step(avl.Int(5), false)
	assert.True(t, errors.Is(err, fault.ErrCountMismatch), "remove: %v", err)

	require.NoError(t, w.step(avl.Int(6), true), "insert new key")
	require.NoError(t, w.step(avl.Int(6), true), "duplicate insert")
	require.NoError(t, w.step(avl.Int(6), false), "remove")
	require.NoError(t, w.step(avl.Int(6), false), "remove absent")

	assert.Equal(t, uint64(1), w.inserted.Uint64(), "inserted")
	assert.Equal(t, uint64(1), w.removed.Uint64(), "removed")
}

func TestWorkloadVerify(t *testing.T) {
	w := newWorkload(testOptions(), logger.New("test"))

	for _, k := range []avl.Int{3, 1, 2} {
		require.NoError(t, w.step(k, true), "insert: %d", k)
	}
	require.NoError(t, w.verify(), "verify")
	require.NoError(t, w.verifyOrder(), "order")

	w.present[avl.Int(9)] = struct{}{}

	err := w.verify()
	assert.True(t, errors.Is(err, fault.ErrCountMismatch), "verify: %v", err)

	err = w.verifyOrder()
	assert.True(t, errors.Is(err, fault.ErrCountMismatch), "order: %v", err)

	delete(w.present, avl.Int(3))
	err = w.verifyOrder()
	assert.True(t, errors.Is(err, fault.ErrOrderViolation), "order: %v", err)
}

func TestMaximumHeight(t *testing.T) {
	// minimum node counts for each height: 1, 2, 4, 7, 12, 20
	expected := map[int]int{
		0:  -1,
		1:  0,
		2:  1,
		4:  2,
		7:  3,
		12: 4,
		20: 5,
	}
	for n, h := range expected {
		assert.Equal(t, h, maximumHeight(n), "count: %d", n)
	}

	tree := avl.New[avl.Int]()
	for i := int64(0); i < 1023; i += 1 {
		tree.Insert(avl.Int(i))
	}
	assert.True(t, tree.Height() <= maximumHeight(tree.Count()), "sequential keys: height: %d", tree.Height())
}

func TestWorkloadProgressRate(t *testing.T) {
	w := newWorkload(testOptions(), logger.New("test"))

	w.setProgressRate(4)
	assert.Equal(t, rate.Limit(4), w.limiter.Limit(), "changed")

	w.setProgressRate(0)
	assert.Equal(t, rate.Limit(4), w.limiter.Limit(), "zero ignored")
}
