// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2026 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package avl

// Slice - new list with a copy of the items [start, end)
//
// a negative index counts back from the end, indexes are then clamped
// to [0, Length()]; an empty list results if end <= start
func (list *List[E]) Slice(start int, end int) *List[E] {
	length := list.Length()
	start = relativeIndex(start, length)
	end = relativeIndex(end, length)

	result := New[E]()
	for i := start; i < end; i += 1 {
		result.Push(list.root.getNodeAt(i).value)
	}
	return result
}

// SliceFrom - new list with a copy of the items from start to the end
func (list *List[E]) SliceFrom(start int) *List[E] {
	return list.Slice(start, list.Length())
}

// Clone - new list with a copy of all items
func (list *List[E]) Clone() *List[E] {
	return list.Slice(0, list.Length())
}

// Splice - remove count items at start, insert values in their place
// and return the removed items as a new list
//
// start is interpreted as for Slice, count is clamped to the number
// of items available from start
func (list *List[E]) Splice(start int, count int, values ...E) *List[E] {
	length := list.Length()
	start = relativeIndex(start, length)
	if count < 0 {
		count = 0
	} else if count > length-start {
		count = length - start
	}

	removed := New[E]()
	for i := 0; i < count; i += 1 {
		root, value := list.root.removeAt(start)
		list.root = root
		removed.Push(value)
	}
	for i, value := range values {
		list.root = list.root.insertAt(start+i, value)
	}
	return removed
}

// convert a possibly negative index to one in [0, length]
func relativeIndex(index int, length int) int {
	if index < 0 {
		index += length
		if index < 0 {
			return 0
		}
		return index
	}
	if index > length {
		return length
	}
	return index
}
