// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2026 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package main

import (
	"os"
	"path/filepath"

	"github.com/bitmark-inc/logger"
	"github.com/fsnotify/fsnotify"

	"github.com/bitmark-inc/avllist/fault"
)

const (
	fileWatcherLoggerPrefix = "watcher"
)

// FileWatcher - signals writes to and removal of a single file
type FileWatcher interface {
	Start() error
	Stop() error
}

type fileWatcherData struct {
	log      *logger.L
	channels watcherChannel
	watcher  *fsnotify.Watcher
	filePath string
	stop     chan struct{}
}

type watcherChannel struct {
	change chan struct{}
	remove chan struct{}
}

func newWatcherChannel() watcherChannel {
	return watcherChannel{
		change: make(chan struct{}, 1),
		remove: make(chan struct{}, 1),
	}
}

func newFileWatcher(targetFile string, log *logger.L, channels watcherChannel) (FileWatcher, error) {
	filePath, err := filepath.Abs(filepath.Clean(targetFile))
	if nil != err {
		log.Errorf("parse file %s error: %s", targetFile, err)
		return nil, err
	}

	if _, err := os.Stat(filePath); os.IsNotExist(err) {
		return nil, fault.ErrNotFoundScriptFile
	}

	watcher, err := fsnotify.NewWatcher()
	if nil != err {
		log.Errorf("new watcher with error: %s", err)
		return nil, err
	}

	return &fileWatcherData{
		log:      log,
		watcher:  watcher,
		channels: channels,
		filePath: filePath,
		stop:     make(chan struct{}),
	}, nil
}

// Start - watch the directory, so editors that replace the file are
// still seen, and filter for the target file
func (w *fileWatcherData) Start() error {
	if nil == w.watcher {
		return fault.ErrWatcherNotInitialised
	}

	err := w.watcher.Add(filepath.Dir(w.filePath))
	if nil != err {
		w.log.Errorf("watcher add error: %s, abort", err)
		return err
	}

	go func() {
		for {
			select {
			case <-w.stop:
				return

			case err, ok := <-w.watcher.Errors:
				if !ok {
					return
				}
				w.log.Warnf("watcher error: %s", err)

			case event, ok := <-w.watcher.Events:
				if !ok {
					return
				}
				w.log.Debugf("file event: %v", event)

				if filepath.Base(event.Name) != filepath.Base(w.filePath) {
					continue
				}

				if watcherEventFileRemove(event) {
					w.log.Warnf("file %s removed, stop", w.filePath)
					w.sendEvent(w.channels.remove, "remove")
					return
				}

				if watcherEventFileChange(event) {
					w.log.Info("sending file change event…")
					w.sendEvent(w.channels.change, "change")
				}
			}
		}
	}()

	return nil
}

// Stop - end the watch
func (w *fileWatcherData) Stop() error {
	close(w.stop)
	return w.watcher.Close()
}

func (w *fileWatcherData) isChannelFull(ch chan<- struct{}) bool {
	return len(ch) == cap(ch)
}

func (w *fileWatcherData) sendEvent(ch chan<- struct{}, name string) {
	if !w.isChannelFull(ch) {
		ch <- struct{}{}
	} else {
		w.log.Debugf("event channel %s full, discard event", name)
	}
}

func watcherEventFileRemove(event fsnotify.Event) bool {
	return event.Op&fsnotify.Remove == fsnotify.Remove ||
		event.Op&fsnotify.Rename == fsnotify.Rename
}

func watcherEventFileChange(event fsnotify.Event) bool {
	return event.Op&fsnotify.Write == fsnotify.Write ||
		event.Op&fsnotify.Create == fsnotify.Create
}
