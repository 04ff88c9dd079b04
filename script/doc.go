// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

// Package script - drive a tree from a line oriented script
//
// one command per line, tokens separated by white space, a '#'
// starts a comment that runs to the end of the line:
//
//	insert KEY...     → insert KEY: added|duplicate
//	remove KEY...     → remove KEY: removed|absent
//	contains KEY...   → contains KEY: true|false
//	preorder          → preorder: [k1 k2 ...]
//	inorder           → inorder: [k1 k2 ...]
//	postorder         → postorder: [k1 k2 ...]
//	count             → count: N
//	height            → height: H
//	min               → min: KEY|none
//	max               → max: KEY|none
//	print             → ASCII drawing of the tree
//	check             → check: ok
//	clear             → clear: N
//
// execution stops at the first error, which is returned as a
// LineError wrapping one of the fault errors
package script
