// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package fault

import (
	"fmt"
	"runtime"

	"github.com/bitmark-inc/logger"
)

// PanicTag - logger channel used for the last messages before a panic
const PanicTag = "PANIC"

// hold a logger channel
var log *logger.L

// Initialise - setup a log channel for last attempt to log something
//
// the logger itself must already be initialised by the program
func Initialise() error {
	if nil != log {
		return ErrAlreadyInitialised
	}
	log = logger.New(PanicTag)
	if nil == log {
		return ErrInvalidLoggerChannel
	}
	return nil
}

// Finalise - flush any data and detach the channel
func Finalise() {
	if nil != log {
		log.Flush()
		log = nil
	}
}

// Criticalf - log a formatted string with the caller's position
func Criticalf(format string, arguments ...interface{}) {
	internalCriticalf(1, format, arguments...)
}

// Panicf - log a formatted message with the caller's position, then panic
func Panicf(format string, arguments ...interface{}) {
	internalCriticalf(1, format, arguments...)
	panic(fmt.Sprintf(format, arguments...))
}

// PanicIfError - conditional panic
func PanicIfError(message string, err error) {
	if nil == err {
		return
	}
	s := fmt.Sprintf("%s failed with error: %v", message, err)
	internalCriticalf(1, "%s", s)
	panic(s)
}

// prefix with caller position and send to the channel, or to stdout
// if no channel was set up
func internalCriticalf(skip int, format string, arguments ...interface{}) {
	if _, file, line, ok := runtime.Caller(skip + 1); ok {
		a := make([]interface{}, 2, 2+len(arguments))
		a[0] = file
		a[1] = line
		arguments = append(a, arguments...)
		format = "(%q:%d) " + format
	}
	if nil == log {
		fmt.Printf("*** "+format+"\n", arguments...)
		return
	}
	log.Criticalf(format, arguments...)
	log.Flush()
}
