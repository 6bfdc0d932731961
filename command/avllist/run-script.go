// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2026 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package main

import (
	"os"
	"os/signal"
	"syscall"

	"github.com/bitmark-inc/logger"
	"github.com/urfave/cli"

	"github.com/bitmark-inc/avllist/fault"
	"github.com/bitmark-inc/avllist/script"
)

const (
	scriptLoggerPrefix = "script"
)

func runScript(c *cli.Context) error {

	m := c.App.Metadata["config"].(*metadata)

	fileName := c.Args().First()
	if "" == fileName {
		return fault.ErrRequiredScriptFile
	}

	log := logger.New(scriptLoggerPrefix)

	if !c.Bool("watch") {
		return script.RunFile(fileName, m.w, log)
	}

	channels := newWatcherChannel()
	watcher, err := newFileWatcher(fileName, logger.New(fileWatcherLoggerPrefix), channels)
	if nil != err {
		return err
	}
	if err := watcher.Start(); nil != err {
		return err
	}
	defer watcher.Stop()

	sig := make(chan os.Signal, 1)
	signal.Notify(sig, syscall.SIGINT, syscall.SIGTERM)
	defer signal.Stop(sig)

	return watchLoop(fileName, m, log, channels, sig)
}

// run once, then again on every change until the file is removed or a
// signal arrives; script errors are reported but do not stop the loop
func watchLoop(fileName string, m *metadata, log *logger.L, channels watcherChannel, sig <-chan os.Signal) error {
	runOnce := func() {
		if err := script.RunFile(fileName, m.w, log); nil != err {
			m.log.Warnf("script: %q  error: %s", fileName, err)
			if m.verbose {
				_, _ = m.e.Write([]byte("error: " + err.Error() + "\n"))
			}
		}
	}

	runOnce()
	for {
		select {
		case <-channels.change:
			runOnce()
		case <-channels.remove:
			return fault.ErrScriptFileRemoved
		case s := <-sig:
			log.Infof("received signal: %v", s)
			return nil
		}
	}
}
