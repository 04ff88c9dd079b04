// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package main

import (
	"fmt"
	"math"
	"math/rand"
	"sort"

	"github.com/bitmark-inc/logger"
	"golang.org/x/time/rate"

	"github.com/bitmark-inc/avltree/avl"
	"github.com/bitmark-inc/avltree/counter"
	"github.com/bitmark-inc/avltree/fault"
)

// summary of a completed or interrupted run
type summary struct {
	Rounds    int       `json:"rounds"`
	Inserted  uint64    `json:"inserted"`
	Removed   uint64    `json:"removed"`
	Checks    uint64    `json:"checks"`
	Count     int       `json:"count"`
	Height    int       `json:"height"`
	Rotations avl.Stats `json:"rotations"`
}

type workload struct {
	log     *logger.L
	rng     *rand.Rand
	limiter *rate.Limiter

	tree    *avl.Locked[avl.Int]
	present map[avl.Int]struct{}

	rounds        int
	operations    int
	keyRange      int64
	checkInterval int

	inserted counter.Counter
	removed  counter.Counter
	checks   counter.Counter
}

func newWorkload(options *Configuration, log *logger.L) *workload {
	tree := avl.NewLocked[avl.Int]()
	tree.Do(func(t *avl.Tree[avl.Int]) {
		t.SetLog(log)
	})

	return &workload{
		log:           log,
		rng:           rand.New(rand.NewSource(options.Seed)),
		limiter:       rate.NewLimiter(rate.Limit(options.ProgressPerSecond), 1),
		tree:          tree,
		present:       make(map[avl.Int]struct{}),
		rounds:        options.Rounds,
		operations:    options.Operations,
		keyRange:      options.KeyRange,
		checkInterval: options.CheckInterval,
	}
}

// adjust the progress log limit while running
func (w *workload) setProgressRate(perSecond float64) {
	if perSecond <= 0 {
		return
	}
	w.limiter.SetLimit(rate.Limit(perSecond))
}

// run all rounds or until shutdown is closed
//
// each round starts from an empty tree
func (w *workload) run(shutdown <-chan struct{}) (summary, error) {

	completed := 0
rounds:
	for round := 1; round <= w.rounds; round += 1 {
		select {
		case <-shutdown:
			w.log.Infof("interrupted before round: %d", round)
			break rounds
		default:
		}

		if err := w.round(round); nil != err {
			w.log.Errorf("round: %d  error: %s", round, err)
			return w.summary(completed), fmt.Errorf("round %d: %w", round, err)
		}
		completed += 1
	}

	return w.summary(completed), nil
}

// one round of random operations followed by a full drain
func (w *workload) round(round int) error {

	w.tree.Do(func(t *avl.Tree[avl.Int]) {
		t.Clear()
	})
	w.present = make(map[avl.Int]struct{})

	for i := 1; i <= w.operations; i += 1 {
		key := avl.Int(w.rng.Int63n(w.keyRange))
		if err := w.step(key, 0 == w.rng.Intn(2)); nil != err {
			return err
		}

		if 0 == i%w.checkInterval {
			if err := w.verify(); nil != err {
				return err
			}
		}

		if w.limiter.Allow() {
			w.log.Infof("round: %d  operation: %d  count: %d  height: %d", round, i, w.tree.Count(), w.tree.Height())
		}
	}

	if err := w.verify(); nil != err {
		return err
	}
	if err := w.verifyOrder(); nil != err {
		return err
	}

	// remove everything in random order, sorted first so a seed
	// always gives the same sequence
	keys := make([]avl.Int, 0, len(w.present))
	for k := range w.present {
		keys = append(keys, k)
	}
	sort.Slice(keys, func(i, j int) bool {
		return keys[i] < keys[j]
	})
	w.rng.Shuffle(len(keys), func(i, j int) {
		keys[i], keys[j] = keys[j], keys[i]
	})
	for _, k := range keys {
		if err := w.step(k, false); nil != err {
			return err
		}
	}
	if err := w.verify(); nil != err {
		return err
	}

	w.log.Infof("round: %d  complete  rotations: %+v", round, w.tree.Stats())
	return nil
}

// apply one operation and compare the result with the map
func (w *workload) step(key avl.Int, insert bool) error {
	_, found := w.present[key]

	if insert {
		added := w.tree.Insert(key)
		if added == found {
			return fmt.Errorf("%w: insert: %d  added: %t  already present: %t", fault.ErrCountMismatch, key, added, found)
		}
		if added {
			w.present[key] = struct{}{}
			w.inserted.Increment()
		}
		return nil
	}

	removed := w.tree.Remove(key)
	if removed != found {
		return fmt.Errorf("%w: remove: %d  removed: %t  present: %t", fault.ErrCountMismatch, key, removed, found)
	}
	if removed {
		delete(w.present, key)
		w.removed.Increment()
	}
	return nil
}

// structural check plus count and height bounds
func (w *workload) verify() error {
	w.checks.Increment()

	if err := w.tree.Check(); nil != err {
		return err
	}

	n := w.tree.Count()
	if n != len(w.present) {
		return fmt.Errorf("%w: tree: %d  expected: %d", fault.ErrCountMismatch, n, len(w.present))
	}

	h := w.tree.Height()
	if h > maximumHeight(n) {
		return fmt.Errorf("%w: height: %d  count: %d", fault.ErrUnbalanced, h, n)
	}
	return nil
}

// inorder traversal must list exactly the present keys ascending
func (w *workload) verifyOrder() error {
	keys := w.tree.Traverse(avl.Inorder)
	if len(keys) != len(w.present) {
		return fmt.Errorf("%w: traversal: %d  expected: %d", fault.ErrCountMismatch, len(keys), len(w.present))
	}
	for i, k := range keys {
		if _, ok := w.present[k]; !ok {
			return fmt.Errorf("%w: unexpected key: %d", fault.ErrOrderViolation, k)
		}
		if i > 0 && keys[i-1] >= k {
			return fmt.Errorf("%w: %d before %d", fault.ErrOrderViolation, keys[i-1], k)
		}
	}
	return nil
}

func (w *workload) summary(rounds int) summary {
	return summary{
		Rounds:    rounds,
		Inserted:  w.inserted.Uint64(),
		Removed:   w.removed.Uint64(),
		Checks:    w.checks.Uint64(),
		Count:     w.tree.Count(),
		Height:    w.tree.Height(),
		Rotations: w.tree.Stats(),
	}
}

// the AVL bound is levels < 1.4405 log2(n + 2) - 0.3277, one more
// than the height of the root
func maximumHeight(n int) int {
	if 0 == n {
		return -1
	}
	return int(math.Floor(1.4405*math.Log2(float64(n)+2) - 1.3277))
}
