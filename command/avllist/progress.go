// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2026 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package main

import (
	"fmt"
	"io"
	"os"

	"github.com/mattn/go-isatty"

	"github.com/bitmark-inc/avllist/stress"
)

// progressObserver - log through the wrapped observer and, when
// stderr is a terminal, keep a progress line updated
type progressObserver struct {
	stress.Observer
	w        io.Writer
	total    int
	interval int
	terminal bool
}

func newProgressObserver(w io.Writer, observer stress.Observer, total int, interval int) *progressObserver {
	fd := os.Stderr.Fd()
	return &progressObserver{
		Observer: observer,
		w:        w,
		total:    total,
		interval: interval,
		terminal: isatty.IsTerminal(fd) || isatty.IsCygwinTerminal(fd),
	}
}

func (p *progressObserver) Operation(step int, op stress.Op, index int, length int) {
	p.Observer.Operation(step, op, index, length)
	if p.terminal && 0 == step%p.interval {
		fmt.Fprintf(p.w, "\rstep: %d/%d  length: %d", step, p.total, length)
	}
}

// finish the progress line
func (p *progressObserver) done() {
	if p.terminal && p.total >= p.interval {
		fmt.Fprintf(p.w, "\n")
	}
}
