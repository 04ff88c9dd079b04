// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package counter_test

import (
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/bitmark-inc/avltree/counter"
)

// test incrementing and resetting a counter
func TestCounter(t *testing.T) {

	var c1 counter.Counter

	assert.True(t, c1.IsZero(), "counter is not zero at start")

	c1.Increment()
	c1.Increment()
	c1.Increment()

	assert.Equal(t, uint64(3), c1.Uint64(), "counter after incrementing")

	assert.Equal(t, uint64(10), c1.Add(7), "counter after add")

	assert.Equal(t, uint64(10), c1.Reset(), "value returned by reset")
	assert.True(t, c1.IsZero(), "counter is not zero after reset")
}

func TestCounterConcurrent(t *testing.T) {

	var c1 counter.Counter
	var wg sync.WaitGroup

	for i := 0; i < 8; i += 1 {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for j := 0; j < 1000; j += 1 {
				c1.Increment()
			}
		}()
	}
	wg.Wait()

	assert.Equal(t, uint64(8000), c1.Uint64(), "lost increments")
}
