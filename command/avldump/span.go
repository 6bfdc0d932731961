// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2026 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package main

import (
	"strconv"
	"strings"

	"github.com/bitmark-inc/avllist/avl"
	"github.com/bitmark-inc/avllist/fault"
)

// a START:END pair, either end may be omitted
type span struct {
	start   int
	end     int
	openEnd bool
}

// "2:5", "-3:", ":4" or a single "N" meaning N:
func parseSpan(s string) (span, error) {
	startText, endText, found := strings.Cut(s, ":")
	result := span{
		openEnd: !found || "" == endText,
	}

	if "" != startText {
		n, err := strconv.Atoi(startText)
		if nil != err {
			return span{}, fault.ErrInvalidRange
		}
		result.start = n
	} else if !found {
		return span{}, fault.ErrInvalidRange
	}

	if !result.openEnd {
		n, err := strconv.Atoi(endText)
		if nil != err {
			return span{}, fault.ErrInvalidRange
		}
		result.end = n
	}
	return result, nil
}

// copy of the items selected by the span
func (s span) apply(list *avl.List[string]) *avl.List[string] {
	if s.openEnd {
		return list.SliceFrom(s.start)
	}
	return list.Slice(s.start, s.end)
}
