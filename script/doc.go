// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2026 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

// Package script - run Lua scripts that manipulate avl lists
//
// the "list" module is preloaded, so a script does:
//
//	local list = require("list")
//	local l = list.new("a", "b")
//	l:push("c")
//	print(l:get(0), l:length())
//
// indexes are zero based, the same as the Go API.  Index and empty
// list errors are raised as Lua errors so can be caught with pcall.
package script
