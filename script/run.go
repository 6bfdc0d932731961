// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2026 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package script

import (
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/bitmark-inc/logger"
	lua "github.com/yuin/gopher-lua"

	"github.com/bitmark-inc/avllist/fault"
)

// RunFile - execute a Lua script file, print output goes to w and to
// the log
func RunFile(fileName string, w io.Writer, log *logger.L) error {
	if "" == fileName {
		return fault.ErrRequiredScriptFile
	}
	if _, err := os.Stat(fileName); nil != err {
		if os.IsNotExist(err) {
			return fault.ErrNotFoundScriptFile
		}
		return err
	}

	log.Infof("run: %q", fileName)
	return run(w, log, fileName, func(L *lua.LState) error {
		return L.DoFile(fileName)
	})
}

// RunString - execute Lua source
func RunString(source string, w io.Writer, log *logger.L) error {
	return run(w, log, "", func(L *lua.LState) error {
		return L.DoString(source)
	})
}

func run(w io.Writer, log *logger.L, fileName string, execute func(*lua.LState) error) error {
	L := lua.NewState()
	defer L.Close()

	L.OpenLibs()
	Open(L)

	arg := &lua.LTable{}
	arg.Insert(0, lua.LString(fileName))
	L.SetGlobal("arg", arg)

	L.SetGlobal("print", L.NewFunction(func(L *lua.LState) int {
		top := L.GetTop()
		s := make([]string, 0, top)
		for i := 1; i <= top; i += 1 {
			s = append(s, L.ToStringMeta(L.Get(i)).String())
		}
		line := strings.Join(s, "\t")
		log.Infof("print: %s", line)
		fmt.Fprintln(w, line)
		return 0
	}))

	if err := execute(L); nil != err {
		log.Errorf("script error: %s", err)
		return err
	}
	return nil
}
