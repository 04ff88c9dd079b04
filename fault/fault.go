// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package fault

import (
	"errors"
)

// GenericError - error base
type GenericError string

// to allow for different classes of errors
type ExistsError GenericError
type InvalidError GenericError
type NotFoundError GenericError
type ProcessError GenericError

// common errors - keep in alphabetic order
var (
	ErrAlreadyInitialised    = ExistsError("already initialised")
	ErrConfigurationNotTable = InvalidError("configuration did not return a table")
	ErrCountMismatch         = InvalidError("element count does not match node count")
	ErrHeightMismatch        = InvalidError("cached height does not match subtree height")
	ErrIncompatibleItem      = InvalidError("item is incompatible with key kind")
	ErrInvalidLoggerChannel  = InvalidError("invalid logger channel")
	ErrInvalidStructPointer  = InvalidError("invalid struct pointer")
	ErrJsonMarshalFail       = ProcessError("marshal to json failed")
	ErrMissingArgument       = InvalidError("missing argument")
	ErrNotFoundConfigFile    = NotFoundError("config file is not found")
	ErrNotInitialised        = NotFoundError("not initialised")
	ErrOrderViolation        = InvalidError("keys are not in strict ascending order")
	ErrScriptReadFail        = ProcessError("read script failed")
	ErrUnbalanced            = InvalidError("subtree heights differ by more than one")
	ErrUnexpectedArgument    = InvalidError("unexpected argument")
	ErrUnknownCommand        = NotFoundError("unknown command")
	ErrUnknownKeyKind        = NotFoundError("unknown key kind")
	ErrUnknownTraversalOrder = NotFoundError("unknown traversal order")
)

// Error - the error interface base method
func (e GenericError) Error() string { return string(e) }

// the error interface methods
func (e ExistsError) Error() string   { return string(e) }
func (e InvalidError) Error() string  { return string(e) }
func (e NotFoundError) Error() string { return string(e) }
func (e ProcessError) Error() string  { return string(e) }

// determine the class of an error, looking through any wrapping
func IsErrExists(e error) bool   { var x ExistsError; return errors.As(e, &x) }
func IsErrInvalid(e error) bool  { var x InvalidError; return errors.As(e, &x) }
func IsErrNotFound(e error) bool { var x NotFoundError; return errors.As(e, &x) }
func IsErrProcess(e error) bool  { var x ProcessError; return errors.As(e, &x) }
