// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package script

import (
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/bitmark-inc/avltree/avl"
	"github.com/bitmark-inc/avltree/fault"
)

//go:generate mockgen -destination=mocks/mock_target.go -package=mocks github.com/bitmark-inc/avltree/script Target

// Target - the tree operations available to a script, keys are
// passed as the literal script tokens
type Target interface {
	Insert(key string) (bool, error)
	Remove(key string) (bool, error)
	Contains(key string) (bool, error)
	Traverse(order avl.Order) []string
	Count() int
	Height() int
	First() (string, bool)
	Last() (string, bool)
	Print(w io.Writer) int
	Check() error
	Clear() int
	Stats() avl.Stats
}

// key kinds accepted by NewTarget
const (
	IntKeys    = "int"
	StringKeys = "string"
)

// Parser - convert a script token to a tree item
type Parser[T avl.Item[T]] func(token string) (T, error)

// NewTarget - an empty tree for the named key kind
func NewTarget(kind string) (Target, error) {
	switch strings.ToLower(kind) {
	case IntKeys, "integer":
		return Bind(avl.New[avl.Int](), ParseInt), nil
	case StringKeys, "str":
		return Bind(avl.New[avl.String](), ParseString), nil
	default:
		return nil, fault.ErrUnknownKeyKind
	}
}

// ParseInt - decimal integer item
func ParseInt(token string) (avl.Int, error) {
	n, err := strconv.ParseInt(token, 10, 64)
	if nil != err {
		return 0, fmt.Errorf("%w: %q is not an int", fault.ErrIncompatibleItem, token)
	}
	return avl.Int(n), nil
}

// ParseString - any token is a string item
func ParseString(token string) (avl.String, error) {
	return avl.String(token), nil
}

// Bind - make a target from an existing tree
func Bind[T avl.Item[T]](tree *avl.Tree[T], parse Parser[T]) Target {
	return &treeTarget[T]{
		tree:  tree,
		parse: parse,
	}
}

type treeTarget[T avl.Item[T]] struct {
	tree  *avl.Tree[T]
	parse Parser[T]
}

func (t *treeTarget[T]) Insert(key string) (bool, error) {
	k, err := t.parse(key)
	if nil != err {
		return false, err
	}
	return t.tree.Insert(k), nil
}

func (t *treeTarget[T]) Remove(key string) (bool, error) {
	k, err := t.parse(key)
	if nil != err {
		return false, err
	}
	return t.tree.Remove(k), nil
}

func (t *treeTarget[T]) Contains(key string) (bool, error) {
	k, err := t.parse(key)
	if nil != err {
		return false, err
	}
	return t.tree.Contains(k), nil
}

func (t *treeTarget[T]) Traverse(order avl.Order) []string {
	keys := t.tree.Traverse(order)
	if nil == keys {
		return nil
	}
	s := make([]string, len(keys))
	for i, k := range keys {
		s[i] = fmt.Sprint(k)
	}
	return s
}

func (t *treeTarget[T]) Count() int {
	return t.tree.Count()
}

func (t *treeTarget[T]) Height() int {
	return t.tree.Height()
}

func (t *treeTarget[T]) First() (string, bool) {
	p := t.tree.First()
	if nil == p {
		return "", false
	}
	return fmt.Sprint(p.Key()), true
}

func (t *treeTarget[T]) Last() (string, bool) {
	p := t.tree.Last()
	if nil == p {
		return "", false
	}
	return fmt.Sprint(p.Key()), true
}

func (t *treeTarget[T]) Print(w io.Writer) int {
	return t.tree.Print(w, true)
}

func (t *treeTarget[T]) Check() error {
	return t.tree.Check()
}

func (t *treeTarget[T]) Stats() avl.Stats {
	return t.tree.Stats()
}

func (t *treeTarget[T]) Clear() int {
	n := t.tree.Count()
	t.tree.Clear()
	return n
}
