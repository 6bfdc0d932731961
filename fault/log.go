// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2026 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package fault

import (
	"fmt"
	"runtime"
	"sync"
	"time"

	"github.com/bitmark-inc/logger"
)

// hold a logger channel
var (
	m   sync.Mutex
	log *logger.L
)

// Initialise - setup a log channel for last attempt to log something
//
// must be called after logger.Initialise
func Initialise() error {
	m.Lock()
	defer m.Unlock()

	if nil != log {
		return ErrAlreadyInitialised
	}
	log = logger.New("PANIC")
	if nil == log {
		return ErrInvalidLoggerChannel
	}
	return nil
}

// Finalise - flush any data and detach from the logger
func Finalise() {
	m.Lock()
	defer m.Unlock()

	if nil != log {
		log.Flush()
		log = nil
	}
}

// Criticalf - log a formatted string with arguments like fmt.Sprintf()
func Criticalf(format string, arguments ...interface{}) {
	if _, file, line, ok := runtime.Caller(1); ok {
		a := make([]interface{}, 2, 2+len(arguments))
		a[0] = file
		a[1] = line
		a = append(a, arguments...)
		internalCriticalf("(%q:%d) "+format, a...)
	} else {
		internalCriticalf(format, arguments...)
	}
}

// Panicf - panic with a formatted message after logging it
func Panicf(format string, arguments ...interface{}) {
	if _, file, line, ok := runtime.Caller(1); ok {
		a := make([]interface{}, 2, 2+len(arguments))
		a[0] = file
		a[1] = line
		a = append(a, arguments...)
		internalCriticalf("(%q:%d) "+format, a...)
	} else {
		internalCriticalf(format, arguments...)
	}
	Panic(fmt.Sprintf(format, arguments...))
}

// Panic - final panic
func Panic(message string) {
	internalCriticalf("%s", message)
	if hasLog() {
		time.Sleep(100 * time.Millisecond) // to allow logging output
	}
	panic(message)
}

// PanicWithError - final panic, the panic value wraps err
func PanicWithError(message string, err error) {
	e := fmt.Errorf("%s failed with error: %w", message, err)
	internalCriticalf("%s", e)
	if hasLog() {
		time.Sleep(100 * time.Millisecond) // to allow logging output
	}
	panic(e)
}

// PanicIfError - conditional panic
func PanicIfError(message string, err error) {
	if nil == err {
		return
	}
	PanicWithError(message, err)
}

func hasLog() bool {
	m.Lock()
	defer m.Unlock()
	return nil != log
}

// internal routines to handle uninitialised logger channel
func internalCriticalf(format string, arguments ...interface{}) {
	m.Lock()
	defer m.Unlock()

	if nil == log {
		fmt.Printf("*** "+format+"\n", arguments...)
	} else {
		log.Criticalf(format, arguments...)
		log.Flush() // make sure log file is saved
	}
}
