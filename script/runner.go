// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package script

import (
	"bufio"
	"fmt"
	"io"
	"strings"

	"github.com/bitmark-inc/logger"

	"github.com/bitmark-inc/avltree/avl"
	"github.com/bitmark-inc/avltree/counter"
	"github.com/bitmark-inc/avltree/fault"
)

// LineError - an error at a specific script line
type LineError struct {
	Line int
	Err  error
}

func (e *LineError) Error() string {
	return fmt.Sprintf("line %d: %s", e.Line, e.Err)
}

func (e *LineError) Unwrap() error {
	return e.Err
}

// Runner - executes script lines against a target
type Runner struct {
	target   Target
	w        io.Writer
	log      *logger.L
	line     int
	commands counter.Counter
}

// command handlers, keyed commands take at least one argument, the
// rest take none
type keyedCommand func(r *Runner, key string) error
type plainCommand func(r *Runner) error

var keyedCommands = map[string]keyedCommand{
	"insert":   (*Runner).insert,
	"remove":   (*Runner).remove,
	"contains": (*Runner).contains,
}

var plainCommands = map[string]plainCommand{
	"preorder":  traversal(avl.Preorder),
	"inorder":   traversal(avl.Inorder),
	"postorder": traversal(avl.Postorder),
	"count":     (*Runner).count,
	"height":    (*Runner).height,
	"min":       (*Runner).min,
	"max":       (*Runner).max,
	"print":     (*Runner).print,
	"check":     (*Runner).check,
	"clear":     (*Runner).clear,
}

// NewRunner - create a runner writing results to w, log may be nil
func NewRunner(target Target, w io.Writer, log *logger.L) *Runner {
	return &Runner{
		target: target,
		w:      w,
		log:    log,
	}
}

// Commands - number of commands executed so far
func (r *Runner) Commands() uint64 {
	return r.commands.Uint64()
}

// Run - execute every line of a script, stopping at the first error
func (r *Runner) Run(script io.Reader) error {
	scanner := bufio.NewScanner(script)
	for scanner.Scan() {
		if err := r.Execute(scanner.Text()); nil != err {
			return err
		}
	}
	if err := scanner.Err(); nil != err {
		if nil != r.log {
			r.log.Errorf("read after line: %d  error: %s", r.line, err)
		}
		return &LineError{Line: r.line, Err: fmt.Errorf("%w: %s", fault.ErrScriptReadFail, err)}
	}
	return nil
}

// Execute - execute a single script line
func (r *Runner) Execute(line string) error {
	r.line += 1

	if i := strings.IndexByte(line, '#'); i >= 0 {
		line = line[:i]
	}
	fields := strings.Fields(line)
	if 0 == len(fields) {
		return nil
	}

	name := strings.ToLower(fields[0])
	arguments := fields[1:]

	if nil != r.log {
		r.log.Debugf("line: %d  command: %s  arguments: %v", r.line, name, arguments)
	}

	err := r.dispatch(name, arguments)
	if nil != err {
		if nil != r.log {
			r.log.Warnf("line: %d  command: %s  error: %s", r.line, name, err)
		}
		return &LineError{Line: r.line, Err: err}
	}
	r.commands.Increment()
	return nil
}

func (r *Runner) dispatch(name string, arguments []string) error {
	if f, ok := keyedCommands[name]; ok {
		if 0 == len(arguments) {
			return fmt.Errorf("%w: %s needs at least one key", fault.ErrMissingArgument, name)
		}
		for _, key := range arguments {
			if err := f(r, key); nil != err {
				return err
			}
		}
		return nil
	}

	if f, ok := plainCommands[name]; ok {
		if 0 != len(arguments) {
			return fmt.Errorf("%w: %s takes no arguments", fault.ErrUnexpectedArgument, name)
		}
		return f(r)
	}

	return fmt.Errorf("%w: %q", fault.ErrUnknownCommand, name)
}

func (r *Runner) insert(key string) error {
	added, err := r.target.Insert(key)
	if nil != err {
		return err
	}
	result := "duplicate"
	if added {
		result = "added"
	}
	fmt.Fprintf(r.w, "insert %s: %s\n", key, result)
	return nil
}

func (r *Runner) remove(key string) error {
	removed, err := r.target.Remove(key)
	if nil != err {
		return err
	}
	result := "absent"
	if removed {
		result = "removed"
	}
	fmt.Fprintf(r.w, "remove %s: %s\n", key, result)
	return nil
}

func (r *Runner) contains(key string) error {
	found, err := r.target.Contains(key)
	if nil != err {
		return err
	}
	fmt.Fprintf(r.w, "contains %s: %t\n", key, found)
	return nil
}

func traversal(order avl.Order) plainCommand {
	return func(r *Runner) error {
		keys := r.target.Traverse(order)
		fmt.Fprintf(r.w, "%s: [%s]\n", order, strings.Join(keys, " "))
		return nil
	}
}

func (r *Runner) count() error {
	fmt.Fprintf(r.w, "count: %d\n", r.target.Count())
	return nil
}

func (r *Runner) height() error {
	fmt.Fprintf(r.w, "height: %d\n", r.target.Height())
	return nil
}

func (r *Runner) min() error {
	key, ok := r.target.First()
	if !ok {
		key = "none"
	}
	fmt.Fprintf(r.w, "min: %s\n", key)
	return nil
}

func (r *Runner) max() error {
	key, ok := r.target.Last()
	if !ok {
		key = "none"
	}
	fmt.Fprintf(r.w, "max: %s\n", key)
	return nil
}

func (r *Runner) print() error {
	r.target.Print(r.w)
	return nil
}

func (r *Runner) check() error {
	if err := r.target.Check(); nil != err {
		return err
	}
	fmt.Fprintf(r.w, "check: ok\n")
	return nil
}

func (r *Runner) clear() error {
	fmt.Fprintf(r.w, "clear: %d\n", r.target.Clear())
	return nil
}
