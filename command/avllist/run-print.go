// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2026 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package main

import (
	"fmt"

	"github.com/urfave/cli"

	"github.com/bitmark-inc/avllist/avl"
)

func runPrint(c *cli.Context) error {

	m := c.App.Metadata["config"].(*metadata)

	list := avl.New[string]()
	for _, value := range c.Args() {
		list.Push(value)
	}
	if err := list.CheckStructure(); nil != err {
		return err
	}

	depth := list.Print(m.w, c.Bool("data"))
	if m.verbose {
		fmt.Fprintf(m.e, "items: %d  depth: %d\n", list.Length(), depth)
	}
	return nil
}
