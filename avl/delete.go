// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2026 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package avl

import (
	"github.com/bitmark-inc/avllist/fault"
)

// Remove - removes the item at index and returns its value, all
// following items move one position to the left
func (list *List[E]) Remove(index int) (E, error) {
	if index < 0 || index >= list.Length() {
		var zero E
		return zero, outOfBounds(index, list.Length())
	}
	root, value := list.root.removeAt(index)
	list.root = root
	return value, nil
}

// Shift - remove and return the first item
func (list *List[E]) Shift() (E, error) {
	if list.IsEmpty() {
		var zero E
		return zero, fault.ErrListEmpty
	}
	return list.Remove(0)
}

// Pop - remove and return the last item
func (list *List[E]) Pop() (E, error) {
	if list.IsEmpty() {
		var zero E
		return zero, fault.ErrListEmpty
	}
	return list.Remove(list.Length() - 1)
}

// internal delete routine, returns the new sub-tree and the removed value
func (p *node[E]) removeAt(index int) (*node[E], E) {
	if nil == p {
		fault.Panicf("avl: remove index: %d from empty sub-tree", index)
	}

	value := p.value
	nl := p.left.getSize()

	switch {
	case index < nl:
		p.left, value = p.left.removeAt(index)
	case index > nl:
		p.right, value = p.right.removeAt(index - nl - 1)
	default: // found: delete p
		if nil == p.left {
			return p.right, value
		}
		if nil == p.right {
			return p.left, value
		}
		// two children: take over the successor's value, then
		// remove the successor, which has no left child
		p.value = p.right.first().value
		p.right, _ = p.right.removeAt(0)
	}
	p.recalculate()
	return p.balance(), value
}
