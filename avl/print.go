// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2026 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package avl

import (
	"fmt"
	"io"
)

// to control the print routine
type branch int

const (
	root  branch = iota
	left  branch = iota
	right branch = iota
)

// Print - display an ASCII graphic representation of the tree, the
// right sub-tree is drawn above its parent
//
// returns the maximum depth of the tree
func (list *List[E]) Print(w io.Writer, printData bool) int {
	return printTree(w, list.root, "", root, printData)
}

// internal print - returns the maximum depth of the tree
func printTree[E any](w io.Writer, tree *node[E], prefix string, br branch, printData bool) int {
	if nil == tree {
		return 0
	}
	rd := 0
	ld := 0
	if nil != tree.right {
		t := "       "
		if left == br {
			t = "|      "
		}
		rd = printTree(w, tree.right, prefix+t, right, printData)
	}
	switch br {
	case root:
		fmt.Fprintf(w, "%s|------+ ", prefix)
	case left:
		fmt.Fprintf(w, "%s\\------+ ", prefix)
	case right:
		fmt.Fprintf(w, "%s/------+ ", prefix)
	}
	if printData {
		fmt.Fprintf(w, "%v %+2d/[h:%d,n:%d]\n", tree.value, tree.balanceFactor(), tree.height, tree.size)
	} else {
		fmt.Fprintf(w, "%v\n", tree.value)
	}
	if nil != tree.left {
		t := "       "
		if right == br {
			t = "|      "
		}
		ld = printTree(w, tree.left, prefix+t, left, printData)
	}
	if rd > ld {
		return 1 + rd
	}
	return 1 + ld
}
