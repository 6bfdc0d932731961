// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2026 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

// read lines from stdin into a list and print selected ranges
//
//   avldump --range=-3: < file       # last three lines
//   avldump --range=0:2 --range=5:6  # lines 0, 1 and 5
//   avldump --tree                   # draw the balanced tree
package main

import (
	"bufio"
	"fmt"
	"io"
	"os"

	"github.com/bitmark-inc/exitwithstatus"
	"github.com/bitmark-inc/getoptions"

	"github.com/bitmark-inc/avllist/avl"
)

// set by the linker: go build -ldflags "-X main.version=M.N" ./...
var version = "zero" // do not change this value

func main() {
	// ensure exit handler is first
	defer exitwithstatus.Handler()

	flags := []getoptions.Option{
		{Long: "help", HasArg: getoptions.NO_ARGUMENT, Short: 'h'},
		{Long: "version", HasArg: getoptions.NO_ARGUMENT, Short: 'V'},
		{Long: "tree", HasArg: getoptions.NO_ARGUMENT, Short: 't'},
		{Long: "data", HasArg: getoptions.NO_ARGUMENT, Short: 'd'},
		{Long: "reverse", HasArg: getoptions.NO_ARGUMENT, Short: 'R'},
		{Long: "range", HasArg: getoptions.REQUIRED_ARGUMENT, Short: 'r'},
	}

	program, options, arguments, err := getoptions.GetOS(flags)
	if nil != err {
		exitwithstatus.Message("%s: getoptions error: %s", program, err)
	}

	if len(options["version"]) > 0 {
		exitwithstatus.Message("%s: version: %s", program, version)
	}

	if len(options["help"]) > 0 || len(arguments) > 0 {
		exitwithstatus.Message("usage: %s [--help] [--tree [--data]] [--reverse] [--range=START:END]... < FILE", program)
	}

	ranges := make([]span, 0, len(options["range"]))
	for _, r := range options["range"] {
		s, err := parseSpan(r)
		if nil != err {
			exitwithstatus.Message("%s: range: %q  error: %s", program, r, err)
		}
		ranges = append(ranges, s)
	}

	list, err := readLines(os.Stdin)
	if nil != err {
		exitwithstatus.Message("%s: read error: %s", program, err)
	}

	w := bufio.NewWriter(os.Stdout)
	defer w.Flush()

	if len(options["tree"]) > 0 {
		depth := list.Print(w, len(options["data"]) > 0)
		fmt.Fprintf(w, "items: %d  depth: %d\n", list.Length(), depth)
		return
	}

	if err := dump(w, list, ranges, len(options["reverse"]) > 0); nil != err {
		w.Flush()
		exitwithstatus.Message("%s: error: %s", program, err)
	}
}

// one line per list item
func readLines(r io.Reader) (*avl.List[string], error) {
	list := avl.New[string]()
	scanner := bufio.NewScanner(r)
	for scanner.Scan() {
		list.Push(scanner.Text())
	}
	return list, scanner.Err()
}

// print each range in turn, no ranges prints everything
func dump(w io.Writer, list *avl.List[string], ranges []span, reverse bool) error {
	if 0 == len(ranges) {
		ranges = []span{{start: 0, end: list.Length()}}
	}
	for _, s := range ranges {
		part := s.apply(list)
		if reverse {
			for !part.IsEmpty() {
				line, err := part.Pop()
				if nil != err {
					return err
				}
				fmt.Fprintln(w, line)
			}
			continue
		}
		part.ForEach(func(line string, _ int) {
			fmt.Fprintln(w, line)
		})
	}
	return nil
}
