// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2026 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

// Package avl - an AVL balanced tree used as a positional list
//
// The tree is not ordered by key; each node caches the size of its
// sub-tree and the in-order position of a node is its index in the
// list.  This gives O(log n) Get, Set, Insert and Remove by index.
//
// Note: a list is not thread safe, so either access only in a single
//       go routine or use mutex/rwmutex to restrict access.
//
// Iterators hold direct references into the tree as it was when they
// were created.  Modifying the list while an iterator is in use gives
// unspecified (but not panicking) results.
//
// Slice, SliceFrom, Clone and Splice always return a new list that
// shares no nodes with the original; only the stored values are
// copied (shallow copy).
package avl
