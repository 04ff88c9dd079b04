// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package avl

import (
	"strconv"
	"strings"
)

// Int - integer key item
type Int int64

// Compare - numeric ordering
func (i Int) Compare(j Int) int {
	switch {
	case i < j:
		return -1
	case i > j:
		return 1
	default:
		return 0
	}
}

// String - decimal representation
func (i Int) String() string {
	return strconv.FormatInt(int64(i), 10)
}

// String - string key item
type String string

// Compare - byte-wise lexical ordering
func (s String) Compare(t String) int {
	return strings.Compare(string(s), string(t))
}

// String - the string itself
func (s String) String() string {
	return string(s)
}
