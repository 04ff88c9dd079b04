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

	"github.com/bitmark-inc/avltree/script"
)

type metadata struct {
	kind    string
	verbose bool
	e       io.Writer
	w       io.Writer
}

// set by the linker: go build -ldflags "-X main.version=M.N" ./...
var version = "zero" // do not change this value

func main() {
	app := newApp(os.Stdout, os.Stderr)

	err := app.Run(os.Args)
	if nil != err {
		fmt.Fprintf(app.ErrWriter, "terminated with error: %s\n", err)
		os.Exit(1)
	}
}

func newApp(w io.Writer, e io.Writer) *cli.App {

	app := cli.NewApp()
	app.Name = "avl-cli"
	app.Usage = "exercise an AVL balanced tree"
	app.Version = version
	app.HideVersion = true

	app.Writer = w
	app.ErrWriter = e

	app.Flags = []cli.Flag{
		cli.BoolFlag{
			Name:  "verbose, v",
			Usage: " verbose result",
		},
		cli.StringFlag{
			Name:  "keys, k",
			Value: script.IntKeys,
			Usage: " key `KIND` [int|string]",
		},
	}
	app.Commands = []cli.Command{
		{
			Name:      "run",
			Usage:     "execute script files against one tree, - reads stdin",
			ArgsUsage: "FILE...",
			Action:    runScript,
		},
		{
			Name:      "build",
			Usage:     "build a tree from key lists and display a summary",
			ArgsUsage: "\n   (* = required)",
			Flags: []cli.Flag{
				cli.StringFlag{
					Name:  "insert, i",
					Value: "",
					Usage: "*comma separated `KEYS` to insert in order",
				},
				cli.StringFlag{
					Name:  "remove, r",
					Value: "",
					Usage: " comma separated `KEYS` to remove after inserting",
				},
				cli.StringFlag{
					Name:  "contains, c",
					Value: "",
					Usage: " comma separated `KEYS` to look up",
				},
				cli.StringFlag{
					Name:  "order, o",
					Value: "inorder",
					Usage: " traversal `ORDER` [preorder|inorder|postorder]",
				},
				cli.BoolFlag{
					Name:  "print, p",
					Usage: " draw the tree on stderr",
				},
			},
			Action: runBuild,
		},
		{
			Name:  "version",
			Usage: "display avl-cli version",
			Action: func(c *cli.Context) error {
				fmt.Fprintf(c.App.Writer, "%s\n", version)
				return nil
			},
		},
	}

	app.Before = func(c *cli.Context) error {

		verbose := c.GlobalBool("verbose")
		kind := c.GlobalString("keys")

		// reject unknown kinds before any command runs
		if _, err := script.NewTarget(kind); nil != err {
			return fmt.Errorf("keys: %q: %s", kind, err)
		}

		if verbose {
			fmt.Fprintf(c.App.ErrWriter, "key kind: %s\n", kind)
		}

		c.App.Metadata["config"] = &metadata{
			kind:    kind,
			verbose: verbose,
			e:       c.App.ErrWriter,
			w:       c.App.Writer,
		}
		return nil
	}

	return app
}
