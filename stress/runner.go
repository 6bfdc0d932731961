// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2026 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package stress

import (
	"fmt"
	"math/rand"
	"time"

	"github.com/bitmark-inc/logger"

	"github.com/bitmark-inc/avllist/avl"
	"github.com/bitmark-inc/avllist/fault"
)

// Runner - holds the list under test and the reference slice
type Runner struct {
	config    Configuration
	observer  Observer
	log       *logger.L
	rand      *rand.Rand
	list      *avl.List[int]
	reference []int
}

// NewRunner - create a runner, the configuration is validated here
func NewRunner(config Configuration, observer Observer, log *logger.L) (*Runner, error) {
	if err := config.Validate(); nil != err {
		return nil, err
	}
	if nil == log {
		return nil, fault.ErrInvalidLoggerChannel
	}
	return &Runner{
		config:    config,
		observer:  observer,
		log:       log,
		rand:      rand.New(rand.NewSource(config.Seed)),
		list:      avl.New[int](),
		reference: make([]int, 0, config.InitialSize),
	}, nil
}

// Run - execute the configured number of operations
//
// returns fault.ErrMismatch (wrapped with detail) at the first
// difference between list and reference
func (r *Runner) Run() (Result, error) {
	start := time.Now()
	result := Result{}

	r.log.Infof("start: seed: %d  operations: %d  initial size: %d", r.config.Seed, r.config.Operations, r.config.InitialSize)

	for i := 0; i < r.config.InitialSize; i += 1 {
		v := r.rand.Int()
		r.list.Push(v)
		r.reference = append(r.reference, v)
	}
	if err := r.check(0, &result); nil != err {
		return r.finish(start, result, err)
	}

	for step := 1; step <= r.config.Operations; step += 1 {
		op, index, err := r.apply()
		if nil != err {
			return r.finish(start, result, r.fail(step, err.Error()))
		}
		switch op {
		case OpInsert:
			result.Inserts += 1
		case OpRemove:
			result.Removes += 1
		case OpSet:
			result.Sets += 1
		}
		result.Operations += 1

		if nil != r.observer {
			r.observer.Operation(step, op, index, len(r.reference))
		}

		if err := r.compare(step); nil != err {
			return r.finish(start, result, err)
		}
		if h := r.list.Height(); h > result.MaxHeight {
			result.MaxHeight = h
		}
		if r.config.CheckEvery > 0 && 0 == step%r.config.CheckEvery {
			if err := r.check(step, &result); nil != err {
				return r.finish(start, result, err)
			}
		}
	}

	if err := r.check(r.config.Operations, &result); nil != err {
		return r.finish(start, result, err)
	}

	actual := r.list.ToArray()
	if len(actual) != len(r.reference) {
		return r.finish(start, result, r.fail(r.config.Operations, fmt.Sprintf("final length: %d  expected: %d", len(actual), len(r.reference))))
	}
	for i, v := range actual {
		if v != r.reference[i] {
			return r.finish(start, result, r.fail(r.config.Operations, fmt.Sprintf("final index: %d  value: %d  expected: %d", i, v, r.reference[i])))
		}
	}

	return r.finish(start, result, nil)
}

// perform one random operation on both list and reference
func (r *Runner) apply() (Op, int, error) {
	n := len(r.reference)
	op := r.choose()
	if 0 == n {
		op = OpInsert
	}

	switch op {
	case OpRemove:
		i := r.rand.Intn(n)
		v, err := r.list.Remove(i)
		if nil != err {
			return op, i, err
		}
		if v != r.reference[i] {
			return op, i, fmt.Errorf("remove at: %d returned: %d  expected: %d", i, v, r.reference[i])
		}
		r.reference = append(r.reference[:i], r.reference[i+1:]...)
		return op, i, nil

	case OpSet:
		i := r.rand.Intn(n)
		v := r.rand.Int()
		if err := r.list.Set(i, v); nil != err {
			return op, i, err
		}
		r.reference[i] = v
		return op, i, nil

	default:
		i := r.rand.Intn(n + 1)
		v := r.rand.Int()
		if err := r.list.Insert(i, v); nil != err {
			return OpInsert, i, err
		}
		r.reference = append(r.reference, 0)
		copy(r.reference[i+1:], r.reference[i:])
		r.reference[i] = v
		return OpInsert, i, nil
	}
}

// weighted choice of the next operation
func (r *Runner) choose() Op {
	total := r.config.InsertWeight + r.config.RemoveWeight + r.config.SetWeight
	w := r.rand.Intn(total)
	if w < r.config.InsertWeight {
		return OpInsert
	}
	if w < r.config.InsertWeight+r.config.RemoveWeight {
		return OpRemove
	}
	return OpSet
}

// compare length and a few random positions
func (r *Runner) compare(step int) error {
	n := len(r.reference)
	if r.list.Length() != n {
		return r.fail(step, fmt.Sprintf("length: %d  expected: %d", r.list.Length(), n))
	}
	if 0 == n {
		return nil
	}
	for s := 0; s < r.config.Samples; s += 1 {
		i := r.rand.Intn(n)
		v, err := r.list.Get(i)
		if nil != err {
			return r.fail(step, err.Error())
		}
		if v != r.reference[i] {
			return r.fail(step, fmt.Sprintf("index: %d  value: %d  expected: %d", i, v, r.reference[i]))
		}
	}
	return nil
}

func (r *Runner) check(step int, result *Result) error {
	result.Checks += 1
	if err := r.list.CheckStructure(); nil != err {
		return r.fail(step, err.Error())
	}
	return nil
}

func (r *Runner) fail(step int, detail string) error {
	r.log.Errorf("step: %d  %s", step, detail)
	if nil != r.observer {
		r.observer.Mismatch(step, detail)
	}
	return fmt.Errorf("%w: step: %d  %s", fault.ErrMismatch, step, detail)
}

func (r *Runner) finish(start time.Time, result Result, err error) (Result, error) {
	result.FinalLength = r.list.Length()
	result.Elapsed = time.Since(start)
	if nil == err {
		r.log.Infof("passed: %d operations in %s", result.Operations, result.Elapsed)
		if nil != r.observer {
			r.observer.Finished(result)
		}
	}
	return result, err
}
