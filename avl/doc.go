// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

// Package avl - an AVL balanced binary search tree over any item
// type providing a three-way Compare
//
// Note: an individual tree is not thread safe, so either access only
//       in a single go routine or use the Locked wrapper which holds
//       one mutex for the duration of each operation.
//
// Each node caches the height of its sub-tree (a leaf is zero, a
// missing sub-tree is -1).  Insert and Remove recurse to the target
// position, edit the structure, then rebalance every ancestor while
// the recursion unwinds; a parent always reassigns its child link
// from the value returned by the recursive call.
//
// Duplicate inserts and removal of absent items are silent no-ops,
// reported only through the boolean results.
package avl
