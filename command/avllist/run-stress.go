// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2026 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package main

import (
	"github.com/bitmark-inc/logger"
	"github.com/urfave/cli"

	"github.com/bitmark-inc/avllist/stress"
)

const (
	stressLoggerPrefix = "stress"
	progressInterval   = 1000
)

type stressReport struct {
	Configuration stress.Configuration `json:"configuration" yaml:"configuration"`
	Result        stress.Result        `json:"result" yaml:"result"`
	Elapsed       string               `json:"elapsed" yaml:"elapsed"`
}

func runStress(c *cli.Context) error {

	m := c.App.Metadata["config"].(*metadata)

	config := m.config.Stress
	if c.IsSet("seed") {
		config.Seed = c.Int64("seed")
	}
	if c.IsSet("operations") {
		config.Operations = c.Int("operations")
	}
	if c.IsSet("initial-size") {
		config.InitialSize = c.Int("initial-size")
	}
	if c.IsSet("samples") {
		config.Samples = c.Int("samples")
	}

	log := logger.New(stressLoggerPrefix)
	observer := newProgressObserver(m.e, stress.NewLogObserver(log, progressInterval), config.Operations, progressInterval)

	runner, err := stress.NewRunner(config, observer, log)
	if nil != err {
		return err
	}

	result, err := runner.Run()
	observer.done()
	if nil != err {
		return err
	}

	return printReport(m.w, m.format, stressReport{
		Configuration: config,
		Result:        result,
		Elapsed:       result.Elapsed.String(),
	})
}
