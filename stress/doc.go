// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2026 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

// Package stress - randomized differential testing of avl.List
//
// A Runner applies the same pseudo-random sequence of insert, remove
// and set operations to an avl.List and to a plain slice and stops at
// the first difference.  The sequence is fully determined by the seed
// so a failing run can be repeated exactly.
package stress
