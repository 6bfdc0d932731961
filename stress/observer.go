// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2026 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package stress

import (
	"github.com/bitmark-inc/logger"
)

//go:generate mockgen -source=observer.go -destination=mocks/mock_observer.go -package=mocks

// Observer - receives progress from a Runner
type Observer interface {
	Operation(step int, op Op, index int, length int)
	Mismatch(step int, detail string)
	Finished(result Result)
}

// LogObserver - an observer that writes to a logger channel
type LogObserver struct {
	log      *logger.L
	interval int
}

// NewLogObserver - log every interval operations at debug level, zero
// to log only mismatches and the final result
func NewLogObserver(log *logger.L, interval int) *LogObserver {
	return &LogObserver{
		log:      log,
		interval: interval,
	}
}

// Operation - periodic progress
func (o *LogObserver) Operation(step int, op Op, index int, length int) {
	if o.interval <= 0 || 0 != step%o.interval {
		return
	}
	o.log.Debugf("step: %d  %s at: %d  length: %d", step, op, index, length)
}

// Mismatch - a difference between list and reference
func (o *LogObserver) Mismatch(step int, detail string) {
	o.log.Errorf("step: %d  mismatch: %s", step, detail)
}

// Finished - the final summary
func (o *LogObserver) Finished(result Result) {
	o.log.Infof("finished: %d operations  length: %d  max height: %d  elapsed: %s",
		result.Operations, result.FinalLength, result.MaxHeight, result.Elapsed)
}
