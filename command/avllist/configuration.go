// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2026 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package main

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/bitmark-inc/logger"

	"github.com/bitmark-inc/avllist/configuration"
	"github.com/bitmark-inc/avllist/stress"
)

// basic defaults (directories and files are relative to the "DataDirectory" from Configuration file)
const (
	defaultDataDirectory = "." // same directory as the config file, or current directory
	defaultBenchCount    = 100000

	defaultLogDirectory = "log"
	defaultLogFile      = "avllist.log"
	defaultLogCount     = 10          //  number of log files retained
	defaultLogSize      = 1024 * 1024 // rotate when <logfile> exceeds this size
)

// to hold log levels
type LoglevelMap map[string]string

// path expanded or calculated defaults
var (
	defaultLogLevels = LoglevelMap{
		"main":            "info",
		logger.DefaultTag: "critical",
	}
)

type Configuration struct {
	DataDirectory string               `gluamapper:"data_directory" json:"data_directory"`
	BenchCount    int                  `gluamapper:"bench_count" json:"bench_count"`
	Stress        stress.Configuration `gluamapper:"stress" json:"stress"`
	Logging       logger.Configuration `gluamapper:"logging" json:"logging"`
}

// will read decode and verify the configuration, a blank file name
// gives the defaults relative to the current directory
func getConfiguration(configurationFileName string) (*Configuration, error) {

	baseDirectory, err := os.Getwd()
	if nil != err {
		return nil, err
	}

	// copy so that values from a file do not change the defaults
	levels := make(map[string]string, len(defaultLogLevels))
	for k, v := range defaultLogLevels {
		levels[k] = v
	}

	options := &Configuration{
		DataDirectory: defaultDataDirectory,
		BenchCount:    defaultBenchCount,
		Stress:        stress.DefaultConfiguration(),

		Logging: logger.Configuration{
			Directory: defaultLogDirectory,
			File:      defaultLogFile,
			Size:      defaultLogSize,
			Count:     defaultLogCount,
			Console:   false,
			Levels:    levels,
		},
	}

	if "" != configurationFileName {
		configurationFileName, err = filepath.Abs(filepath.Clean(configurationFileName))
		if nil != err {
			return nil, err
		}

		// absolute path to the main directory
		baseDirectory, _ = filepath.Split(configurationFileName)

		if err := configuration.ParseConfigurationFile(configurationFileName, options); err != nil {
			return nil, err
		}
	}

	if err := options.Stress.Validate(); nil != err {
		return nil, err
	}
	if options.BenchCount <= 0 {
		options.BenchCount = defaultBenchCount
	}

	// ensure absolute data directory
	if "" == options.DataDirectory || "~" == options.DataDirectory {
		return nil, fmt.Errorf("Path: %q is not a valid directory", options.DataDirectory)
	}
	options.DataDirectory = ensureAbsolute(baseDirectory, options.DataDirectory)

	// this directory must exist - i.e. must be created prior to running
	if fileInfo, err := os.Stat(options.DataDirectory); nil != err {
		return nil, err
	} else if !fileInfo.IsDir() {
		return nil, fmt.Errorf("Path: %q is not a directory", options.DataDirectory)
	}

	// log file must be a plain name inside the log directory
	switch filepath.Dir(options.Logging.File) {
	case "", ".":
	default:
		return nil, fmt.Errorf("Files: %q is not plain name", options.Logging.File)
	}

	// make absolute and create directories if they do not already exist
	options.Logging.Directory = ensureAbsolute(options.DataDirectory, options.Logging.Directory)
	if err := os.MkdirAll(options.Logging.Directory, 0700); nil != err {
		return nil, err
	}

	// done
	return options, nil
}

// make a path absolute by prefixing directory if necessary
func ensureAbsolute(directory string, filePath string) string {
	if !filepath.IsAbs(filePath) {
		filePath = filepath.Join(directory, filePath)
	}
	return filepath.Clean(filePath)
}
