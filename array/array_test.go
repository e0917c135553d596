// Copyright 2026 The ArrGo Authors. All rights reserved.
// Use of this source code is governed by an Apache 2.0
// license that can be found in the LICENSE file.

package array_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/arrgo-ml/arrgo/array"
	"github.com/arrgo-ml/arrgo/backend/cpu"
)

// End-to-end scenarios through the public API with the real CPU backend.

func TestWorkflowStatistics(t *testing.T) {
	b := cpu.New()

	a, err := array.FromNested[float64]([][]float64{
		{3, 1, 4},
		{1, 5, 9},
	}, b)
	require.NoError(t, err)
	assert.Equal(t, array.Shape{2, 3}, a.Shape())

	assert.Equal(t, 23.0, a.Sum())

	mean, err := a.Mean()
	require.NoError(t, err)
	assert.InDelta(t, 23.0/6.0, mean, 1e-12)

	med, err := a.Median()
	require.NoError(t, err)
	assert.Equal(t, 3.5, med)

	p, err := a.Percentile(50)
	require.NoError(t, err)
	assert.Equal(t, 3.5, p)
}

func TestWorkflowViewsAndOps(t *testing.T) {
	b := cpu.New()

	a, err := array.Arange[int64](1, 7, 1, b)
	require.NoError(t, err)

	grid, err := a.Reshape(2, 3)
	require.NoError(t, err)

	v, err := grid.At(1, 2)
	require.NoError(t, err)
	assert.Equal(t, int64(6), v)

	row, err := grid.View(0)
	require.NoError(t, err)
	require.NoError(t, row.SetAt(10, 0))

	v, err = grid.At(0, 0)
	require.NoError(t, err)
	assert.Equal(t, int64(10), v, "view writes must reach the parent")

	// Arithmetic chains produce fresh arrays.
	doubled := grid.MulScalar(2)
	sum, err := grid.Add(doubled)
	require.NoError(t, err)
	got, err := sum.At(1, 2)
	require.NoError(t, err)
	assert.Equal(t, int64(18), got)

	tr, err := grid.Transpose()
	require.NoError(t, err)
	assert.Equal(t, array.Shape{3, 2}, tr.Shape())
}

func TestWorkflowComparisonMask(t *testing.T) {
	b := cpu.New()

	a, err := array.FromSlice([]float64{1, 5, 2, 8}, array.Shape{4}, b)
	require.NoError(t, err)

	mask := a.GreaterScalar(3)
	assert.Equal(t, array.Bool, mask.DType())
	assert.Equal(t, []bool{false, true, false, true}, mask.Data())

	inverted := mask.Not()
	assert.Equal(t, []bool{true, false, true, false}, inverted.Data())

	// The mask's truthy count via Sum.
	assert.Equal(t, 2.0, mask.Sum())
}
