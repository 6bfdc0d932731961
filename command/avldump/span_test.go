// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2026 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package main

import (
	"bytes"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/bitmark-inc/avllist/fault"
)

func TestParseSpan(t *testing.T) {
	spanList := []struct {
		text     string
		expected span
	}{
		{"2:5", span{start: 2, end: 5}},
		{"-3:", span{start: -3, openEnd: true}},
		{":4", span{start: 0, end: 4}},
		{"7", span{start: 7, openEnd: true}},
		{"-3:-1", span{start: -3, end: -1}},
	}
	for i, item := range spanList {
		s, err := parseSpan(item.text)
		require.NoError(t, err, "%d: %q", i, item.text)
		assert.Equal(t, item.expected, s, "%d: %q", i, item.text)
	}

	for _, bad := range []string{"", "x:1", "1:y", "a"} {
		_, err := parseSpan(bad)
		assert.Equal(t, fault.ErrInvalidRange, err, "text: %q", bad)
	}
}

const input = "zero\none\ntwo\nthree\nfour\nfive\n"

func TestDump(t *testing.T) {
	list, err := readLines(strings.NewReader(input))
	require.NoError(t, err)
	assert.Equal(t, 6, list.Length())

	var b bytes.Buffer
	require.NoError(t, dump(&b, list, nil, false))
	assert.Equal(t, input, b.String())

	b.Reset()
	require.NoError(t, dump(&b, list, []span{{start: -2, openEnd: true}, {start: 0, end: 1}}, false))
	assert.Equal(t, "four\nfive\nzero\n", b.String())

	b.Reset()
	require.NoError(t, dump(&b, list, []span{{start: 1, end: 4}}, true))
	assert.Equal(t, "three\ntwo\none\n", b.String())

	// source list is not changed by reverse printing
	assert.Equal(t, 6, list.Length())
}
