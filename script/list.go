// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2026 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package script

import (
	"fmt"

	lua "github.com/yuin/gopher-lua"

	"github.com/bitmark-inc/avllist/avl"
)

const (
	moduleName   = "list"
	listTypeName = "avl.list"
)

// the type stored in the Lua userdata
type valueList = avl.List[lua.LValue]

var moduleFunctions = map[string]lua.LGFunction{
	"new":  listNew,
	"from": listFrom,
}

var listMethods = map[string]lua.LGFunction{
	"length":  listLength,
	"get":     listGet,
	"set":     listSet,
	"push":    listPush,
	"insert":  listInsert,
	"remove":  listRemove,
	"shift":   listShift,
	"pop":     listPop,
	"clear":   listClear,
	"slice":   listSlice,
	"splice":  listSplice,
	"totable": listToTable,
	"each":    listEach,
	"check":   listCheck,
	"height":  listHeight,
}

// Open - make the "list" module available to require
func Open(L *lua.LState) {
	L.PreloadModule(moduleName, loader)
}

func loader(L *lua.LState) int {
	mt := L.NewTypeMetatable(listTypeName)
	L.SetField(mt, "__index", L.SetFuncs(L.NewTable(), listMethods))
	L.SetField(mt, "__len", L.NewFunction(listLength))
	L.SetField(mt, "__tostring", L.NewFunction(listToString))

	module := L.SetFuncs(L.NewTable(), moduleFunctions)
	L.Push(module)
	return 1
}

// wrap a list as userdata with the list metatable
func pushList(L *lua.LState, list *valueList) {
	ud := L.NewUserData()
	ud.Value = list
	L.SetMetatable(ud, L.GetTypeMetatable(listTypeName))
	L.Push(ud)
}

func checkList(L *lua.LState, n int) *valueList {
	ud := L.CheckUserData(n)
	if list, ok := ud.Value.(*valueList); ok {
		return list
	}
	L.ArgError(n, "list expected")
	return nil
}

// raise a Lua error for a failed list operation
func raise(L *lua.LState, err error) {
	if nil != err {
		L.RaiseError("%s", err)
	}
}

// list.new(v1, v2, ...)
func listNew(L *lua.LState) int {
	top := L.GetTop()
	values := make([]lua.LValue, 0, top)
	for i := 1; i <= top; i += 1 {
		values = append(values, L.Get(i))
	}
	pushList(L, avl.From(values))
	return 1
}

// list.from({v1, v2, ...})
func listFrom(L *lua.LState) int {
	t := L.CheckTable(1)
	n := t.Len()
	values := make([]lua.LValue, 0, n)
	for i := 1; i <= n; i += 1 {
		values = append(values, t.RawGetInt(i))
	}
	pushList(L, avl.From(values))
	return 1
}

func listLength(L *lua.LState) int {
	L.Push(lua.LNumber(checkList(L, 1).Length()))
	return 1
}

func listHeight(L *lua.LState) int {
	L.Push(lua.LNumber(checkList(L, 1).Height()))
	return 1
}

func listGet(L *lua.LState) int {
	v, err := checkList(L, 1).Get(L.CheckInt(2))
	raise(L, err)
	L.Push(v)
	return 1
}

func listSet(L *lua.LState) int {
	raise(L, checkList(L, 1).Set(L.CheckInt(2), L.CheckAny(3)))
	return 0
}

// l:push(v1, v2, ...)
func listPush(L *lua.LState) int {
	list := checkList(L, 1)
	for i := 2; i <= L.GetTop(); i += 1 {
		list.Push(L.Get(i))
	}
	return 0
}

func listInsert(L *lua.LState) int {
	raise(L, checkList(L, 1).Insert(L.CheckInt(2), L.CheckAny(3)))
	return 0
}

func listRemove(L *lua.LState) int {
	v, err := checkList(L, 1).Remove(L.CheckInt(2))
	raise(L, err)
	L.Push(v)
	return 1
}

func listShift(L *lua.LState) int {
	v, err := checkList(L, 1).Shift()
	raise(L, err)
	L.Push(v)
	return 1
}

func listPop(L *lua.LState) int {
	v, err := checkList(L, 1).Pop()
	raise(L, err)
	L.Push(v)
	return 1
}

func listClear(L *lua.LState) int {
	checkList(L, 1).Clear()
	return 0
}

// l:slice([start [, end]])
func listSlice(L *lua.LState) int {
	list := checkList(L, 1)
	start := L.OptInt(2, 0)
	end := L.OptInt(3, list.Length())
	pushList(L, list.Slice(start, end))
	return 1
}

// l:splice(start, count, v1, v2, ...)
func listSplice(L *lua.LState) int {
	list := checkList(L, 1)
	start := L.CheckInt(2)
	count := L.CheckInt(3)
	values := make([]lua.LValue, 0, L.GetTop())
	for i := 4; i <= L.GetTop(); i += 1 {
		values = append(values, L.Get(i))
	}
	pushList(L, list.Splice(start, count, values...))
	return 1
}

func listToTable(L *lua.LState) int {
	list := checkList(L, 1)
	t := L.CreateTable(list.Length(), 0)
	list.ForEach(func(value lua.LValue, index int) {
		t.RawSetInt(index+1, value)
	})
	L.Push(t)
	return 1
}

// l:each(function(value, index) ... end)
func listEach(L *lua.LState) int {
	list := checkList(L, 1)
	fn := L.CheckFunction(2)

	var failed error
	list.ForEach(func(value lua.LValue, index int) {
		if nil != failed {
			return
		}
		failed = L.CallByParam(lua.P{
			Fn:      fn,
			NRet:    0,
			Protect: true,
		}, value, lua.LNumber(index))
	})
	raise(L, failed)
	return 0
}

func listCheck(L *lua.LState) int {
	raise(L, checkList(L, 1).CheckStructure())
	L.Push(lua.LTrue)
	return 1
}

func listToString(L *lua.LState) int {
	L.Push(lua.LString(fmt.Sprintf("list: %d items", checkList(L, 1).Length())))
	return 1
}
