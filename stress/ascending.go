// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2026 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package stress

import (
	"fmt"
	"time"

	"github.com/bitmark-inc/logger"

	"github.com/bitmark-inc/avllist/avl"
	"github.com/bitmark-inc/avllist/fault"
)

// Benchmark - result of AscendingFront
type Benchmark struct {
	Count   int           `json:"count" yaml:"count"`
	Height  int           `json:"height" yaml:"height"`
	Elapsed time.Duration `json:"-" yaml:"-"`
}

// AscendingFront - insert count-1 down to 0, always at the front, then
// verify that iteration returns 0 up to count-1
//
// the worst case for an unbalanced tree; here it must stay O(n log n)
func AscendingFront(count int, log *logger.L) (Benchmark, error) {
	if count <= 0 {
		return Benchmark{}, fault.ErrInvalidCount
	}

	start := time.Now()
	list := avl.New[int]()
	for i := count - 1; i >= 0; i -= 1 {
		if err := list.Insert(0, i); nil != err {
			return Benchmark{}, err
		}
	}

	expected := 0
	for it := list.Iterator(); it.HasNext(); expected += 1 {
		v, _ := it.Next()
		if v != expected {
			return Benchmark{}, fmt.Errorf("%w: iteration: %d  expected: %d", fault.ErrMismatch, v, expected)
		}
	}
	if expected != count {
		return Benchmark{}, fmt.Errorf("%w: iterated: %d  expected: %d", fault.ErrMismatch, expected, count)
	}
	if err := list.CheckStructure(); nil != err {
		return Benchmark{}, fmt.Errorf("%w: %s", fault.ErrMismatch, err)
	}

	b := Benchmark{
		Count:   count,
		Height:  list.Height(),
		Elapsed: time.Since(start),
	}
	if nil != log {
		log.Infof("ascending front: %d items  height: %d  elapsed: %s", b.Count, b.Height, b.Elapsed)
	}
	return b, nil
}
