// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2026 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package avl

import (
	"fmt"

	"github.com/bitmark-inc/avllist/fault"
)

// CheckStructure - verify the cached heights and sizes and the AVL
// balance of every node
//
// only for testing, a failure here is a bug in this package
func (list *List[E]) CheckStructure() error {
	return list.root.checkStructure(0)
}

// internal: consistency checker, depth is for error messages only
func (p *node[E]) checkStructure(depth int) error {
	if nil == p {
		return nil
	}
	if err := p.left.checkStructure(depth + 1); nil != err {
		return err
	}
	if err := p.right.checkStructure(depth + 1); nil != err {
		return err
	}

	lh := p.left.getHeight()
	rh := p.right.getHeight()
	height := lh + 1
	if rh > lh {
		height = rh + 1
	}
	if p.height != height {
		return fmt.Errorf("%w: depth: %d  height: %d  expected: %d", fault.ErrInvariantViolation, depth, p.height, height)
	}

	size := p.left.getSize() + p.right.getSize() + 1
	if p.size != size {
		return fmt.Errorf("%w: depth: %d  size: %d  expected: %d", fault.ErrInvariantViolation, depth, p.size, size)
	}

	if bal := rh - lh; bal < -1 || bal > 1 {
		return fmt.Errorf("%w: depth: %d  balance: %+d", fault.ErrInvariantViolation, depth, bal)
	}
	return nil
}
