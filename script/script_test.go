// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2026 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package script_test

import (
	"bytes"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/bitmark-inc/logger"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/bitmark-inc/avllist/fault"
	"github.com/bitmark-inc/avllist/script"
)

func runScript(t *testing.T, source string) string {
	t.Helper()
	var b bytes.Buffer
	err := script.RunString(source, &b, logger.New(category))
	require.NoError(t, err)
	return b.String()
}

func TestMonths(t *testing.T) {
	out := runScript(t, `
local list = require("list")
local l = list.new()
for _, m in ipairs({"January", "February", "March", "April", "May", "June"}) do
  l:push(m)
end
assert(l:length() == 6)
assert(#l == 6)
assert(l:check())
print(l:get(0), l:get(5))
`)
	assert.Equal(t, "January\tJune\n", out)
}

func TestShiftPop(t *testing.T) {
	out := runScript(t, `
local list = require("list")
local l = list.from({3,1,4,1,5,9,2,6,5,3,5,8,9,7,9,3,2,3,8,4,6,2,6,4,3,3,8,3})
local ops = "sppsspspppssp"
local r = {}
for i = 1, #ops do
  if ops:sub(i, i) == "s" then
    r[#r+1] = l:shift()
  else
    r[#r+1] = l:pop()
  end
end
print(table.concat(r, ","))
print(l:length())
`)
	assert.Equal(t, "3,3,8,1,4,3,1,3,4,6,5,9,2\n15\n", out)
}

func TestSliceSpliceEach(t *testing.T) {
	out := runScript(t, `
local list = require("list")
local e = list.from({2,7,1,8,2,8,1,8,2,8,4,5,9,0,4,5,2,3,5,3,6,0})
print(table.concat(e:slice(-3, -1):totable(), ","))
print(e:slice(1, 1):length())
print(e:slice():length())

local l = list.new("a", "b", "c", "d")
local removed = l:splice(1, 2, "X")
print(table.concat(removed:totable(), ","), table.concat(l:totable(), ","))

local seen = {}
l:each(function(v, i) seen[#seen+1] = i .. "=" .. v end)
print(table.concat(seen, " "))
print(tostring(l))
`)
	assert.Equal(t, "3,6\n0\n22\nb,c\ta,X,d\n0=a 1=X 2=d\nlist: 3 items\n", out)
}

func TestIndexErrorsRaised(t *testing.T) {
	out := runScript(t, `
local list = require("list")
local l = list.new(1, 2, 3)
local ok, err = pcall(function() return l:get(3) end)
print(ok, string.find(err, "index out of bounds", 1, true) ~= nil)
ok, err = pcall(function() return list.new():shift() end)
print(ok, string.find(err, "list empty", 1, true) ~= nil)
ok, err = pcall(function() l:insert(5, 0) end)
print(ok)
print(table.concat(l:totable(), ","))
`)
	assert.Equal(t, "false\ttrue\nfalse\ttrue\nfalse\n1,2,3\n", out)
}

func TestEachError(t *testing.T) {
	var b bytes.Buffer
	err := script.RunString(`
local list = require("list")
list.new(1, 2):each(function(v) error("stop at " .. v) end)
`, &b, logger.New(category))
	require.Error(t, err)
	assert.True(t, strings.Contains(err.Error(), "stop at 1"), "error: %s", err)
}

func TestRunFile(t *testing.T) {
	fileName := filepath.Join(t.TempDir(), "test.lua")
	require.NoError(t, os.WriteFile(fileName, []byte(`
local l = require("list").new()
for i = 9, 0, -1 do l:insert(0, i) end
print(table.concat(l:totable(), ""), l:height())
`), 0600))

	var b bytes.Buffer
	require.NoError(t, script.RunFile(fileName, &b, logger.New(category)))
	assert.Equal(t, "0123456789\t4\n", b.String())

	err := script.RunFile(filepath.Join(t.TempDir(), "missing.lua"), &b, logger.New(category))
	assert.Equal(t, fault.ErrNotFoundScriptFile, err)
	assert.Equal(t, fault.ErrRequiredScriptFile, script.RunFile("", &b, logger.New(category)))
}
