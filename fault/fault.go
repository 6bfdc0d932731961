// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2026 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package fault

import (
	"errors"
)

// error base
type GenericError string

// to allow for different classes of errors
type ExistsError GenericError
type InvalidError GenericError
type LengthError GenericError
type NotFoundError GenericError
type ProcessError GenericError

// common errors - keep in alphabetic order
var (
	ErrAlreadyInitialised    = ExistsError("already initialised")
	ErrIndexOutOfBounds      = InvalidError("index out of bounds")
	ErrInvalidCount          = InvalidError("count is invalid")
	ErrInvalidFormat         = InvalidError("output format is invalid")
	ErrInvalidLoggerChannel  = InvalidError("invalid logger channel")
	ErrInvalidRange          = InvalidError("range is invalid")
	ErrInvalidStructPointer  = InvalidError("invalid struct pointer")
	ErrInvalidWeight         = InvalidError("operation weights are invalid")
	ErrInvariantViolation    = ProcessError("tree invariant violation")
	ErrListEmpty             = LengthError("list empty")
	ErrMismatch              = ProcessError("list differs from reference")
	ErrNotFoundConfigFile    = NotFoundError("config file is not found")
	ErrNotFoundScriptFile    = NotFoundError("script file is not found")
	ErrRequiredScriptFile    = InvalidError("script file is required")
	ErrScriptFileRemoved     = ProcessError("script file was removed")
	ErrUnsupportedOperation  = InvalidError("unsupported operation")
	ErrWatcherNotInitialised = ProcessError("watcher not initialised")
)

// the error interface base method
func (e GenericError) Error() string { return string(e) }

// the error interface methods
func (e ExistsError) Error() string   { return string(e) }
func (e InvalidError) Error() string  { return string(e) }
func (e LengthError) Error() string   { return string(e) }
func (e NotFoundError) Error() string { return string(e) }
func (e ProcessError) Error() string  { return string(e) }

// determine the class of an error, wrapped errors are unwrapped
func IsErrExists(e error) bool   { var t ExistsError; return errors.As(e, &t) }
func IsErrInvalid(e error) bool  { var t InvalidError; return errors.As(e, &t) }
func IsErrLength(e error) bool   { var t LengthError; return errors.As(e, &t) }
func IsErrNotFound(e error) bool { var t NotFoundError; return errors.As(e, &t) }
func IsErrProcess(e error) bool  { var t ProcessError; return errors.As(e, &t) }
