// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2026 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package avl

// List - type to hold the root node of a tree
type List[E any] struct {
	root *node[E]
}

// a node in the tree, a nil pointer is the empty sub-tree
type node[E any] struct {
	left   *node[E] // left sub-tree
	right  *node[E] // right sub-tree
	value  E        // value part for data storage
	height int      // height of this sub-tree, a single node is 1
	size   int      // number of nodes in this sub-tree
}

// New - create an initially empty list
func New[E any]() *List[E] {
	return &List[E]{
		root: nil,
	}
}

// From - create a list holding a copy of the values in the same order
func From[E any](values []E) *List[E] {
	return &List[E]{
		root: build(values),
	}
}

// build a balanced sub-tree directly from a slice, the middle value
// becomes the root so the two sides differ in size by at most one
func build[E any](values []E) *node[E] {
	if 0 == len(values) {
		return nil
	}
	mid := len(values) / 2
	p := newNode(values[mid])
	p.left = build(values[:mid])
	p.right = build(values[mid+1:])
	p.recalculate()
	return p
}

// allocate a new single node
func newNode[E any](value E) *node[E] {
	return &node[E]{
		value:  value,
		height: 1,
		size:   1,
	}
}

// IsEmpty - true if list contains no data
func (list *List[E]) IsEmpty() bool {
	return nil == list.root
}

// Length - number of items currently in the list
func (list *List[E]) Length() int {
	return list.root.getSize()
}

// Height - height of the underlying tree, zero for an empty list
func (list *List[E]) Height() int {
	return list.root.getHeight()
}

// Clear - remove all items
func (list *List[E]) Clear() {
	list.root = nil
}

func (p *node[E]) getHeight() int {
	if nil == p {
		return 0
	}
	return p.height
}

func (p *node[E]) getSize() int {
	if nil == p {
		return 0
	}
	return p.size
}

// recompute cached height and size from the children
func (p *node[E]) recalculate() {
	lh := p.left.getHeight()
	rh := p.right.getHeight()
	if lh > rh {
		p.height = lh + 1
	} else {
		p.height = rh + 1
	}
	p.size = p.left.getSize() + p.right.getSize() + 1
}
