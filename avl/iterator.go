// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2026 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package avl

// Iterator - single pass in-order traversal of a list
//
// the stack holds the nodes whose values are still to be returned,
// each one the left ancestor of the one above it
type Iterator[E any] struct {
	stack []*node[E]
}

// Iterator - new iterator positioned before the first item
func (list *List[E]) Iterator() *Iterator[E] {
	it := &Iterator[E]{
		stack: make([]*node[E], 0, list.root.getHeight()),
	}
	it.pushLeft(list.root)
	return it
}

// walk down the left edge of a sub-tree
func (it *Iterator[E]) pushLeft(p *node[E]) {
	for nil != p {
		it.stack = append(it.stack, p)
		p = p.left
	}
}

// HasNext - true if Next will return a value
func (it *Iterator[E]) HasNext() bool {
	return 0 != len(it.stack)
}

// Next - return the next value, false if there are no more
func (it *Iterator[E]) Next() (E, bool) {
	n := len(it.stack)
	if 0 == n {
		var zero E
		return zero, false
	}
	p := it.stack[n-1]
	it.stack[n-1] = nil
	it.stack = it.stack[:n-1]
	it.pushLeft(p.right)
	return p.value, true
}

// ForEach - call fn for every value in order
func (list *List[E]) ForEach(fn func(value E, index int)) {
	index := 0
	for it := list.Iterator(); it.HasNext(); index += 1 {
		value, _ := it.Next()
		fn(value, index)
	}
}

// ToArray - all values in order
func (list *List[E]) ToArray() []E {
	values := make([]E, 0, list.Length())
	for it := list.Iterator(); it.HasNext(); {
		value, _ := it.Next()
		values = append(values, value)
	}
	return values
}
