// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

// avlbench - soak test for the AVL tree
//
// Runs rounds of seeded random insert and remove operations against a
// tree, comparing every result with a plain map and checking the
// tree structure at a configured interval.  Progress is written to
// the log, limited to a configured number of lines per second.
//
// usage:
//
//   avlbench [--help] [--verbose] [--version] --config-file=FILE
//
// the configuration file is a Lua script returning a table, e.g.
//
//   return {
//       data_directory = ".",
//       seed = 42,
//       rounds = 10,
//       operations = 100000,
//       key_range = 5000,
//       check_interval = 1000,
//       progress_per_second = 2,
//       logging = {
//           directory = "log",
//           file = "avlbench.log",
//           size = 1048576,
//           count = 10,
//           levels = {
//               DEFAULT = "info",
//           },
//       },
//   }
package main
