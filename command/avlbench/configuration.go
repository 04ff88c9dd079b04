// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package main

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/bitmark-inc/logger"

	"github.com/bitmark-inc/avltree/configuration"
)

// basic defaults (directories and files are relative to the "DataDirectory" from Configuration file)
const (
	defaultDataDirectory = "." // same directory as the config file

	defaultSeed              = 1
	defaultRounds            = 10
	defaultOperations        = 10000
	defaultKeyRange          = 1000
	defaultCheckInterval     = 1000
	defaultProgressPerSecond = 1

	defaultLogDirectory = "log"
	defaultLogFile      = "avlbench.log"
	defaultLogCount     = 10          //  number of log files retained
	defaultLogSize      = 1024 * 1024 // rotate when <logfile> exceeds this size
)

// to hold log levels
type LoglevelMap map[string]string

// path expanded or calculated defaults
var (
	defaultLogLevels = LoglevelMap{
		logger.DefaultTag: "info",
	}
)

// Configuration - the decoded Lua configuration table
type Configuration struct {
	DataDirectory     string               `gluamapper:"data_directory" json:"data_directory"`
	Seed              int64                `gluamapper:"seed" json:"seed"`
	Rounds            int                  `gluamapper:"rounds" json:"rounds"`
	Operations        int                  `gluamapper:"operations" json:"operations"`
	KeyRange          int64                `gluamapper:"key_range" json:"key_range"`
	CheckInterval     int                  `gluamapper:"check_interval" json:"check_interval"`
	ProgressPerSecond float64              `gluamapper:"progress_per_second" json:"progress_per_second"`
	Logging           logger.Configuration `gluamapper:"logging" json:"logging"`
}

// will read decode and verify the configuration
func getConfiguration(configurationFileName string) (*Configuration, error) {

	configurationFileName, err := filepath.Abs(filepath.Clean(configurationFileName))
	if nil != err {
		return nil, err
	}

	// absolute path to the main directory
	dataDirectory, _ := filepath.Split(configurationFileName)

	// a fresh map each time as the Lua levels table is merged into it
	levels := make(map[string]string, len(defaultLogLevels))
	for k, v := range defaultLogLevels {
		levels[k] = v
	}

	options := &Configuration{
		DataDirectory:     defaultDataDirectory,
		Seed:              defaultSeed,
		Rounds:            defaultRounds,
		Operations:        defaultOperations,
		KeyRange:          defaultKeyRange,
		CheckInterval:     defaultCheckInterval,
		ProgressPerSecond: defaultProgressPerSecond,

		Logging: logger.Configuration{
			Directory: defaultLogDirectory,
			File:      defaultLogFile,
			Size:      defaultLogSize,
			Count:     defaultLogCount,
			Levels:    levels,
		},
	}

	if err := configuration.ParseConfigurationFile(configurationFileName, options); err != nil {
		return nil, err
	}

	// zero or negative values fall back to the defaults
	if options.Rounds <= 0 {
		options.Rounds = defaultRounds
	}
	if options.Operations <= 0 {
		options.Operations = defaultOperations
	}
	if options.KeyRange <= 0 {
		options.KeyRange = defaultKeyRange
	}
	if options.CheckInterval <= 0 {
		options.CheckInterval = defaultCheckInterval
	}
	if options.ProgressPerSecond <= 0 {
		options.ProgressPerSecond = defaultProgressPerSecond
	}

	// ensure absolute data directory
	if "" == options.DataDirectory || "~" == options.DataDirectory {
		return nil, fmt.Errorf("path: %q is not a valid directory", options.DataDirectory)
	} else if "." == options.DataDirectory {
		options.DataDirectory = dataDirectory // same directory as the configuration file
	}
	options.DataDirectory = filepath.Clean(options.DataDirectory)

	// this directory must exist - i.e. must be created prior to running
	if fileInfo, err := os.Stat(options.DataDirectory); nil != err {
		return nil, err
	} else if !fileInfo.IsDir() {
		return nil, fmt.Errorf("path: %q is not a directory", options.DataDirectory)
	}

	// the log file must be a simple name inside the log directory
	switch filepath.Dir(options.Logging.File) {
	case "", ".":
	default:
		return nil, fmt.Errorf("files: %q is not plain name", options.Logging.File)
	}

	// make absolute and create directories if they do not already exist
	for _, d := range []*string{
		&options.Logging.Directory,
	} {
		*d = configuration.EnsureAbsolute(options.DataDirectory, *d)
		if err := os.MkdirAll(*d, 0700); nil != err {
			return nil, err
		}
	}

	// done
	return options, nil
}
