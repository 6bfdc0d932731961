// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2026 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package fault_test

import (
	"errors"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/bitmark-inc/avllist/fault"
)

var (
	ErrExistsOne   = fault.ExistsError("exists one ")
	ErrExistsTwo   = fault.ExistsError("exists two")
	ErrInvalidOne  = fault.InvalidError("invalid one")
	ErrInvalidTwo  = fault.InvalidError("invalid two")
	ErrLengthOne   = fault.LengthError("length one")
	ErrLengthTwo   = fault.LengthError("length two")
	ErrNotFoundOne = fault.NotFoundError("not found one")
	ErrNotFoundTwo = fault.NotFoundError("not found two")
	ErrProcessOne  = fault.ProcessError("process one")
	ErrProcessTwo  = fault.ProcessError("process two")
)

// test that various errors can be subclassed, also when wrapped
func TestClasses(t *testing.T) {
	errorList := []struct {
		err      error
		exists   bool
		invalid  bool
		length   bool
		notFound bool
		process  bool
	}{
		{ErrExistsOne, true, false, false, false, false},
		{ErrExistsTwo, true, false, false, false, false},
		{ErrInvalidOne, false, true, false, false, false},
		{ErrInvalidTwo, false, true, false, false, false},
		{ErrLengthOne, false, false, true, false, false},
		{ErrLengthTwo, false, false, true, false, false},
		{ErrNotFoundOne, false, false, false, true, false},
		{ErrNotFoundTwo, false, false, false, true, false},
		{ErrProcessOne, false, false, false, false, true},
		{ErrProcessTwo, false, false, false, false, true},
		{fmt.Errorf("%w: index: 7", fault.ErrIndexOutOfBounds), false, true, false, false, false},
		{fmt.Errorf("%w: depth: 3", fault.ErrInvariantViolation), false, false, false, false, true},
		{fault.ErrListEmpty, false, false, true, false, false},
		{errors.New("plain"), false, false, false, false, false},
	}

	for i, e := range errorList {
		err := e.err
		if fault.IsErrExists(err) != e.exists {
			t.Errorf("%d: expected 'exists' == %v for err = %v", i, e.exists, err)
		}
		if fault.IsErrInvalid(err) != e.invalid {
			t.Errorf("%d: expected 'invalid' == %v for err = %v", i, e.invalid, err)
		}
		if fault.IsErrLength(err) != e.length {
			t.Errorf("%d: expected 'length' == %v for err = %v", i, e.length, err)
		}
		if fault.IsErrNotFound(err) != e.notFound {
			t.Errorf("%d: expected 'not found' == %v for err = %v", i, e.notFound, err)
		}
		if fault.IsErrProcess(err) != e.process {
			t.Errorf("%d: expected 'process' == %v for err = %v", i, e.process, err)
		}
	}
}

func TestWrappedIdentity(t *testing.T) {
	err := fmt.Errorf("%w: index: %d  valid range: [0, %d)", fault.ErrIndexOutOfBounds, 5, 3)
	assert.True(t, errors.Is(err, fault.ErrIndexOutOfBounds), "wrapped error lost identity")
	assert.False(t, errors.Is(err, fault.ErrListEmpty), "wrong identity")
	assert.Equal(t, "index out of bounds: index: 5  valid range: [0, 3)", err.Error())
}

func TestPanicWithError(t *testing.T) {
	defer func() {
		r := recover()
		if assert.NotNil(t, r, "did not panic") {
			err, ok := r.(error)
			if assert.True(t, ok, "panic value is not an error: %v", r) {
				assert.True(t, errors.Is(err, fault.ErrInvalidCount))
			}
		}
	}()
	fault.PanicIfError("nothing", nil)
	fault.PanicIfError("count", fault.ErrInvalidCount)
}

func TestPanicf(t *testing.T) {
	assert.PanicsWithValue(t, "balance: 3", func() {
		fault.Panicf("balance: %d", 3)
	})
}
