// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2026 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package stress_test

import (
	"testing"

	"github.com/bitmark-inc/logger"
	"github.com/golang/mock/gomock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/bitmark-inc/avllist/fault"
	"github.com/bitmark-inc/avllist/stress"
	"github.com/bitmark-inc/avllist/stress/mocks"
)

func TestValidate(t *testing.T) {
	assert.NoError(t, stress.DefaultConfiguration().Validate())

	c := stress.DefaultConfiguration()
	c.Operations = -1
	assert.Equal(t, fault.ErrInvalidCount, c.Validate())

	c = stress.DefaultConfiguration()
	c.Samples = -2
	assert.Equal(t, fault.ErrInvalidCount, c.Validate())

	c = stress.DefaultConfiguration()
	c.RemoveWeight = -1
	assert.Equal(t, fault.ErrInvalidWeight, c.Validate())

	c = stress.DefaultConfiguration()
	c.InsertWeight = 0
	assert.Equal(t, fault.ErrInvalidWeight, c.Validate())
}

func TestNewRunnerRejectsBadConfiguration(t *testing.T) {
	c := stress.DefaultConfiguration()
	c.CheckEvery = -1
	_, err := stress.NewRunner(c, nil, logger.New(category))
	assert.True(t, fault.IsErrInvalid(err))

	_, err = stress.NewRunner(stress.DefaultConfiguration(), nil, nil)
	assert.Equal(t, fault.ErrInvalidLoggerChannel, err)
}

func TestRunDefault(t *testing.T) {
	c := stress.DefaultConfiguration()
	c.Samples = 3
	r, err := stress.NewRunner(c, nil, logger.New(category))
	require.NoError(t, err)

	result, err := r.Run()
	require.NoError(t, err)
	assert.Equal(t, c.Operations, result.Operations)
	assert.Equal(t, result.Operations, result.Inserts+result.Removes+result.Sets)
	assert.Equal(t, result.Inserts-result.Removes, result.FinalLength)
	assert.True(t, result.Inserts > result.Removes, "inserts: %d  removes: %d", result.Inserts, result.Removes)

	// one check before, one per CheckEvery and one at the end
	assert.Equal(t, 1+c.Operations/c.CheckEvery+1, result.Checks)
}

func TestRunIsRepeatable(t *testing.T) {
	c := stress.DefaultConfiguration()
	c.Seed = 8133
	c.Operations = 2000
	c.InitialSize = 100

	r1, err := stress.NewRunner(c, nil, logger.New(category))
	require.NoError(t, err)
	result1, err := r1.Run()
	require.NoError(t, err)

	r2, err := stress.NewRunner(c, nil, logger.New(category))
	require.NoError(t, err)
	result2, err := r2.Run()
	require.NoError(t, err)

	result1.Elapsed = 0
	result2.Elapsed = 0
	assert.Equal(t, result1, result2)
	assert.Equal(t, 100+result1.Inserts-result1.Removes, result1.FinalLength)
}

func TestRunObserver(t *testing.T) {
	ctl := gomock.NewController(t)
	defer ctl.Finish()
	m := mocks.NewMockObserver(ctl)

	c := stress.DefaultConfiguration()
	c.Operations = 50

	m.EXPECT().Operation(gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any()).Times(50)
	m.EXPECT().Mismatch(gomock.Any(), gomock.Any()).Times(0)
	m.EXPECT().Finished(gomock.Any()).Do(func(result stress.Result) {
		assert.Equal(t, 50, result.Operations)
	}).Times(1)

	r, err := stress.NewRunner(c, m, logger.New(category))
	require.NoError(t, err)
	_, err = r.Run()
	assert.NoError(t, err)
}

// first operation on an empty list is always an insert
func TestRunFirstInsert(t *testing.T) {
	ctl := gomock.NewController(t)
	defer ctl.Finish()
	m := mocks.NewMockObserver(ctl)

	c := stress.DefaultConfiguration()
	c.Operations = 1
	c.InsertWeight = 1
	c.RemoveWeight = 100
	c.SetWeight = 100

	m.EXPECT().Operation(1, stress.OpInsert, 0, 1).Times(1)
	m.EXPECT().Finished(gomock.Any()).Times(1)

	r, err := stress.NewRunner(c, m, logger.New(category))
	require.NoError(t, err)
	result, err := r.Run()
	require.NoError(t, err)
	assert.Equal(t, 1, result.FinalLength)
}

func TestAscendingFront(t *testing.T) {
	b, err := stress.AscendingFront(20000, logger.New(category))
	require.NoError(t, err)
	assert.Equal(t, 20000, b.Count)
	assert.LessOrEqual(t, b.Height, 21)

	_, err = stress.AscendingFront(0, nil)
	assert.Equal(t, fault.ErrInvalidCount, err)
}

func TestOpString(t *testing.T) {
	assert.Equal(t, "insert", stress.OpInsert.String())
	assert.Equal(t, "remove", stress.OpRemove.String())
	assert.Equal(t, "set", stress.OpSet.String())
	assert.Equal(t, "unknown", stress.Op(9).String())
}
