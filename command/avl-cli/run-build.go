// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package main

import (
	"fmt"
	"strings"

	"github.com/urfave/cli"

	"github.com/bitmark-inc/avltree/avl"
	"github.com/bitmark-inc/avltree/fault"
	"github.com/bitmark-inc/avltree/script"
)

type buildResult struct {
	Count     int             `json:"count"`
	Height    int             `json:"height"`
	Inserted  int             `json:"inserted"`
	Removed   int             `json:"removed"`
	Order     string          `json:"order"`
	Keys      []string        `json:"keys"`
	Contains  map[string]bool `json:"contains,omitempty"`
	Rotations avl.Stats       `json:"rotations"`
}

func runBuild(c *cli.Context) error {

	m := c.App.Metadata["config"].(*metadata)

	insert := splitKeys(c.String("insert"))
	if 0 == len(insert) {
		return fmt.Errorf("%w: insert keys", fault.ErrMissingArgument)
	}

	order, err := avl.ParseOrder(c.String("order"))
	if nil != err {
		return fmt.Errorf("order: %q: %w", c.String("order"), err)
	}

	target, err := script.NewTarget(m.kind)
	if nil != err {
		return err
	}

	result := buildResult{
		Order: order.String(),
	}

	for _, key := range insert {
		added, err := target.Insert(key)
		if nil != err {
			return err
		}
		if added {
			result.Inserted += 1
		}
	}

	for _, key := range splitKeys(c.String("remove")) {
		removed, err := target.Remove(key)
		if nil != err {
			return err
		}
		if removed {
			result.Removed += 1
		}
	}

	if contains := splitKeys(c.String("contains")); 0 != len(contains) {
		result.Contains = make(map[string]bool)
		for _, key := range contains {
			found, err := target.Contains(key)
			if nil != err {
				return err
			}
			result.Contains[key] = found
		}
	}

	if err := target.Check(); nil != err {
		return err
	}

	result.Count = target.Count()
	result.Height = target.Height()
	result.Keys = target.Traverse(order)
	if nil == result.Keys {
		result.Keys = []string{}
	}
	result.Rotations = target.Stats()

	if c.Bool("print") {
		depth := target.Print(m.e)
		if m.verbose {
			fmt.Fprintf(m.e, "depth: %d\n", depth)
		}
	}

	return printJson(m.w, result)
}

// split a comma separated list, dropping empty items
func splitKeys(s string) []string {
	keys := make([]string, 0, 8)
	for _, k := range strings.Split(s, ",") {
		k = strings.TrimSpace(k)
		if "" != k {
			keys = append(keys, k)
		}
	}
	return keys
}
