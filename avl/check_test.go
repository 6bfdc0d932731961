// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2026 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package avl

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/bitmark-inc/avllist/fault"
)

// in-order values straight from the nodes
func inOrder[E any](p *node[E], values []E) []E {
	if nil == p {
		return values
	}
	values = inOrder(p.left, values)
	values = append(values, p.value)
	return inOrder(p.right, values)
}

func TestCheckDetectsBadSize(t *testing.T) {
	list := From([]int{1, 2, 3, 4, 5, 6, 7})
	assert.NoError(t, list.CheckStructure())

	list.root.left.size += 1
	err := list.CheckStructure()
	assert.True(t, errors.Is(err, fault.ErrInvariantViolation), "error: %v", err)
	assert.True(t, fault.IsErrProcess(err))
}

func TestCheckDetectsBadHeight(t *testing.T) {
	list := From([]int{1, 2, 3})
	list.root.height = 7
	assert.True(t, errors.Is(list.CheckStructure(), fault.ErrInvariantViolation))
}

func TestCheckDetectsImbalance(t *testing.T) {
	// a chain with consistent cached values but no rebalancing
	a := newNode(1)
	b := newNode(2)
	c := newNode(3)
	b.right = c
	b.recalculate()
	a.right = b
	a.recalculate()

	list := &List[int]{root: a}
	err := list.CheckStructure()
	assert.True(t, errors.Is(err, fault.ErrInvariantViolation), "error: %v", err)
}

func TestRotationsKeepOrder(t *testing.T) {
	list := From([]int{1, 2, 3, 4, 5, 6, 7})
	before := inOrder(list.root, nil)

	list.root = list.root.rotateLeft()
	assert.Equal(t, before, inOrder(list.root, nil))
	assert.Equal(t, 7, list.root.size)
	assert.Equal(t, 6, list.root.value)

	list.root = list.root.rotateRight()
	assert.Equal(t, before, inOrder(list.root, nil))
	assert.NoError(t, list.CheckStructure())
}

func TestDoubleRotation(t *testing.T) {
	// left-right case: 3 <- 1 -> 2
	list := New[int]()
	list.Push(3)
	assert.NoError(t, list.Insert(0, 1))
	assert.NoError(t, list.Insert(1, 2))
	assert.Equal(t, 2, list.root.value)
	assert.Equal(t, 2, list.root.height)
	assert.Equal(t, []int{1, 2, 3}, list.ToArray())

	// right-left case
	list = New[int]()
	list.Push(1)
	list.Push(3)
	assert.NoError(t, list.Insert(1, 2))
	assert.Equal(t, 2, list.root.value)
	assert.Equal(t, []int{1, 2, 3}, list.ToArray())
}

func TestBalanceOutOfRangePanics(t *testing.T) {
	a := newNode(1)
	a.right = newNode(2)
	a.right.height = 4
	assert.Panics(t, func() {
		a.balance()
	})
}

func TestRemoveTwoChildrenUsesSuccessor(t *testing.T) {
	list := From([]int{1, 2, 3})
	top := list.root
	assert.Equal(t, 2, top.value)

	v, err := list.Remove(1)
	assert.NoError(t, err)
	assert.Equal(t, 2, v)

	// same node now holds the successor value
	assert.Same(t, top, list.root)
	assert.Equal(t, 3, list.root.value)
	assert.Equal(t, []int{1, 3}, list.ToArray())
	assert.NoError(t, list.CheckStructure())
}
