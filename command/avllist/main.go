// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2026 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package main

import (
	"fmt"
	"io"
	"os"

	"github.com/bitmark-inc/exitwithstatus"
	"github.com/bitmark-inc/logger"
	"github.com/urfave/cli"

	"github.com/bitmark-inc/avllist/fault"
)

type metadata struct {
	file    string
	config  *Configuration
	format  string
	verbose bool
	log     *logger.L
	e       io.Writer
	w       io.Writer
}

// set by the linker: go build -ldflags "-X main.version=M.N" ./...
var version = "zero" // do not change this value

func main() {
	// ensure exit handler is first
	defer exitwithstatus.Handler()

	app := cli.NewApp()
	app.Name = "avllist"
	app.Usage = "exercise the avl positional list"
	app.Version = version
	app.HideVersion = true

	app.Writer = os.Stdout
	app.ErrWriter = os.Stderr

	app.Flags = []cli.Flag{
		cli.BoolFlag{
			Name:  "verbose, v",
			Usage: " verbose result",
		},
		cli.StringFlag{
			Name:  "config-file, c",
			Value: "",
			Usage: " Lua configuration `FILE`",
		},
		cli.StringFlag{
			Name:  "format, f",
			Value: "json",
			Usage: " report `FORMAT` [json|yaml]",
		},
	}
	app.Commands = []cli.Command{
		{
			Name:      "stress",
			Usage:     "random differential test against a plain slice",
			ArgsUsage: "\n   (values default from configuration)",
			Flags: []cli.Flag{
				cli.Int64Flag{
					Name:  "seed, s",
					Usage: " random `SEED`",
				},
				cli.IntFlag{
					Name:  "operations, n",
					Usage: " number of `COUNT` operations",
				},
				cli.IntFlag{
					Name:  "initial-size, i",
					Usage: " `COUNT` of items before starting",
				},
				cli.IntFlag{
					Name:  "samples",
					Usage: " `COUNT` of random indexes compared after each operation",
				},
			},
			Action: runStress,
		},
		{
			Name:      "bench",
			Usage:     "insert ascending values at the front, then iterate",
			ArgsUsage: " ",
			Flags: []cli.Flag{
				cli.IntFlag{
					Name:  "count, n",
					Usage: " number of `COUNT` items",
				},
			},
			Action: runBench,
		},
		{
			Name:      "script",
			Usage:     "run a Lua script with the list module",
			ArgsUsage: "FILE",
			Flags: []cli.Flag{
				cli.BoolFlag{
					Name:  "watch, w",
					Usage: " run again whenever the file is written",
				},
			},
			Action: runScript,
		},
		{
			Name:      "print",
			Usage:     "push values and draw the tree",
			ArgsUsage: "VALUE...",
			Flags: []cli.Flag{
				cli.BoolFlag{
					Name:  "data, d",
					Usage: " show balance, height and size of each node",
				},
			},
			Action: runPrint,
		},
		{
			Name:      "version",
			Usage:     "display avllist version",
			ArgsUsage: " ",
			Action: func(c *cli.Context) error {
				fmt.Fprintf(c.App.Writer, "%s\n", version)
				return nil
			},
		},
	}

	// read the configuration and start logging
	app.Before = func(c *cli.Context) error {

		e := c.App.ErrWriter
		w := c.App.Writer
		verbose := c.GlobalBool("verbose")

		command := c.Args().Get(0)
		if "version" == command || "" == command || "help" == command || "h" == command {
			return nil
		}

		format := c.GlobalString("format")
		switch format {
		case "json", "yaml":
		default:
			return fmt.Errorf("%w: %q", fault.ErrInvalidFormat, format)
		}

		file := c.GlobalString("config-file")
		if verbose && "" != file {
			fmt.Fprintf(e, "reading config file: %s\n", file)
		}

		configuration, err := getConfiguration(file)
		if nil != err {
			return err
		}

		if err := logger.Initialise(configuration.Logging); nil != err {
			return err
		}
		if err := fault.Initialise(); nil != err {
			return err
		}

		log := logger.New("main")
		log.Infof("version: %s  command: %s", version, command)
		log.Debugf("configuration: %+v", configuration)

		c.App.Metadata["config"] = &metadata{
			file:    file,
			config:  configuration,
			format:  format,
			verbose: verbose,
			log:     log,
			e:       e,
			w:       w,
		}
		return nil
	}

	app.After = func(c *cli.Context) error {
		if _, ok := c.App.Metadata["config"].(*metadata); ok {
			fault.Finalise()
			logger.Finalise()
		}
		return nil
	}

	err := app.Run(os.Args)
	if nil != err {
		exitwithstatus.Message("%s: terminated with error: %s", app.Name, err)
	}
}
