// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2026 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package avl

import (
	"fmt"

	"github.com/bitmark-inc/avllist/fault"
)

// Get - value at a specific index
func (list *List[E]) Get(index int) (E, error) {
	if index < 0 || index >= list.Length() {
		var zero E
		return zero, outOfBounds(index, list.Length())
	}
	return list.root.getNodeAt(index).value, nil
}

// Set - replace the value at a specific index
func (list *List[E]) Set(index int, value E) error {
	if index < 0 || index >= list.Length() {
		return outOfBounds(index, list.Length())
	}
	list.root.getNodeAt(index).value = value
	return nil
}

// index is outside [0, limit)
func outOfBounds(index int, limit int) error {
	return fmt.Errorf("%w: index: %d  valid range: [0, %d)", fault.ErrIndexOutOfBounds, index, limit)
}

// caller guarantees: 0 <= index < p.size
func (p *node[E]) getNodeAt(index int) *node[E] {
	if nil == p {
		fault.Panicf("avl: get index: %d from empty sub-tree", index)
	}

	nl := p.left.getSize()

	if index < nl {
		return p.left.getNodeAt(index)
	}
	if index > nl {
		// subtract left nodes + 1 (for this node)
		return p.right.getNodeAt(index - nl - 1)
	}
	return p
}

// internal: lowest node in a sub-tree
func (p *node[E]) first() *node[E] {
	if nil == p {
		return nil
	}
	for nil != p.left {
		p = p.left
	}
	return p
}
