// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2026 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

// Exercise the avl positional list
//
// e.g. a differential run of 50000 random operations with seed 42:
//
//   avllist stress --seed=42 --operations=50000
//
// or run a Lua script each time it is saved:
//
//   avllist --config-file=avllist.conf script --watch test.lua
package main
