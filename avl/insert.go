// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2026 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package avl

import (
	"fmt"

	"github.com/bitmark-inc/avllist/fault"
)

// Insert - insert a value so that it ends up at index, all items from
// index onwards move one position to the right
//
// index == Length() appends
func (list *List[E]) Insert(index int, value E) error {
	if index < 0 || index > list.Length() {
		return fmt.Errorf("%w: index: %d  valid range: [0, %d]", fault.ErrIndexOutOfBounds, index, list.Length())
	}
	list.root = list.root.insertAt(index, value)
	return nil
}

// Push - append a value to the end of the list
func (list *List[E]) Push(value E) {
	list.root = list.root.insertAt(list.Length(), value)
}

// internal routine for insert, returns the possibly rotated sub-tree
func (p *node[E]) insertAt(index int, value E) *node[E] {
	if nil == p { // insert new node
		if 0 != index {
			fault.PanicWithError(fmt.Sprintf("avl: insert index: %d into empty sub-tree", index), fault.ErrIndexOutOfBounds)
		}
		return newNode(value)
	}

	nl := p.left.getSize()
	if index <= nl {
		p.left = p.left.insertAt(index, value)
	} else {
		p.right = p.right.insertAt(index-nl-1, value)
	}
	p.recalculate()
	return p.balance()
}
