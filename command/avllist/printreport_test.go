// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2026 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package main

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/bitmark-inc/avllist/fault"
	"github.com/bitmark-inc/avllist/stress"
)

func TestPrintReport(t *testing.T) {
	report := benchReport{
		Benchmark: stress.Benchmark{Count: 10, Height: 4},
		Elapsed:   "1ms",
	}

	var b bytes.Buffer
	require.NoError(t, printReport(&b, "json", report))
	assert.Equal(t, "{\n  \"benchmark\": {\n    \"count\": 10,\n    \"height\": 4\n  },\n  \"elapsed\": \"1ms\"\n}\n", b.String())

	b.Reset()
	require.NoError(t, printReport(&b, "yaml", report))
	assert.Equal(t, "benchmark:\n  count: 10\n  height: 4\nelapsed: 1ms\n", b.String())

	assert.Equal(t, fault.ErrInvalidFormat, printReport(&b, "xml", report))
}
