// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

// avl-cli - exercise an AVL tree from the command line
//
// run one or more scripts against a single tree:
//
//   avl-cli --keys=int run setup.avl queries.avl
//   echo 'insert 3 1 2
//   preorder' | avl-cli run -
//
// or build a tree from comma separated lists and print a JSON summary:
//
//   avl-cli build --insert=50,30,70,20,40 --remove=30 --order=pre --print
package main
