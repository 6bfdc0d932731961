// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2026 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package main

import (
	"github.com/urfave/cli"

	"github.com/bitmark-inc/avllist/stress"
)

type benchReport struct {
	Benchmark stress.Benchmark `json:"benchmark" yaml:"benchmark"`
	Elapsed   string           `json:"elapsed" yaml:"elapsed"`
}

func runBench(c *cli.Context) error {

	m := c.App.Metadata["config"].(*metadata)

	count := m.config.BenchCount
	if c.IsSet("count") {
		count = c.Int("count")
	}

	b, err := stress.AscendingFront(count, m.log)
	if nil != err {
		return err
	}

	return printReport(m.w, m.format, benchReport{
		Benchmark: b,
		Elapsed:   b.Elapsed.String(),
	})
}
