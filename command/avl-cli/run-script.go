// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package main

import (
	"fmt"
	"io"
	"os"

	"github.com/urfave/cli"

	"github.com/bitmark-inc/avltree/fault"
	"github.com/bitmark-inc/avltree/script"
)

// the name that reads from stdin
const stdinName = "-"

func runScript(c *cli.Context) error {

	m := c.App.Metadata["config"].(*metadata)

	files := c.Args()
	if 0 == len(files) {
		return fmt.Errorf("%w: script file name", fault.ErrMissingArgument)
	}

	target, err := script.NewTarget(m.kind)
	if nil != err {
		return err
	}

	for _, name := range files {
		if m.verbose {
			fmt.Fprintf(m.e, "running: %s\n", name)
		}

		var input io.Reader
		if stdinName == name {
			input = os.Stdin
		} else {
			f, err := os.Open(name)
			if nil != err {
				return err
			}
			defer f.Close()
			input = f
		}

		// a fresh runner per file so line numbers restart
		r := script.NewRunner(target, m.w, nil)
		if err := r.Run(input); nil != err {
			return fmt.Errorf("%s: %w", name, err)
		}

		if m.verbose {
			fmt.Fprintf(m.e, "%s: %d commands  count: %d\n", name, r.Commands(), target.Count())
		}
	}
	return nil
}
