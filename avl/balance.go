// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2026 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package avl

import (
	"github.com/bitmark-inc/avllist/fault"
)

// right height - left height: -1, 0, +1 in a balanced tree
func (p *node[E]) balanceFactor() int {
	return p.right.getHeight() - p.left.getHeight()
}

// restore the AVL condition at p after one of its sub-trees changed
// height by at most one, returns the new root of the sub-tree
func (p *node[E]) balance() *node[E] {
	bal := p.balanceFactor()
	switch bal {
	case -2: // left heavy
		if +1 == p.left.balanceFactor() {
			// double LR rotation
			p.left = p.left.rotateLeft()
		}
		return p.rotateRight()

	case +2: // right heavy
		if -1 == p.right.balanceFactor() {
			// double RL rotation
			p.right = p.right.rotateRight()
		}
		return p.rotateLeft()

	case -1, 0, +1:
		return p

	default:
		fault.Panicf("avl: balance factor: %d out of range at node of size: %d", bal, p.size)
	}
	return p
}

/*
	rotateLeft:

	    p              q
	   / \            / \
	  a   q    =>    p   c
	     / \        / \
	    b   c      a   b
*/
func (p *node[E]) rotateLeft() *node[E] {
	q := p.right
	p.right = q.left
	q.left = p

	// p is now the child so must be updated first
	p.recalculate()
	q.recalculate()
	return q
}

/*
	rotateRight:

	      p          q
	     / \        / \
	    q   c  =>  a   p
	   / \            / \
	  a   b          b   c
*/
func (p *node[E]) rotateRight() *node[E] {
	q := p.left
	p.left = q.right
	q.right = p

	p.recalculate()
	q.recalculate()
	return q
}
