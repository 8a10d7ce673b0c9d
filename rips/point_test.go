package rips

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestNewPointStoreBasics(t *testing.T) {
	ps, err := NewPointStore([][]float64{{0, 0}, {3, 4}})
	require.NoError(t, err)
	require.Equal(t, 2, ps.N())
	require.Equal(t, 2, ps.D())
	require.Equal(t, 25.0, ps.Distance2(0, 1))
}

func TestNewPointStorePadsRaggedRows(t *testing.T) {
	ps, err := NewPointStore([][]float64{{1, 2, 3}, {4}})
	require.NoError(t, err)
	require.Equal(t, 3, ps.D())
	require.Equal(t, []float64{4, 0, 0}, ps.At(1))
}

func TestNewPointStoreCapacityErrors(t *testing.T) {
	_, err := NewPointStore(make([][]float64, NMax+1))
	require.ErrorIs(t, err, ErrCapacity)

	tooWide := make([]float64, DMax+1)
	_, err = NewPointStore([][]float64{tooWide})
	require.ErrorIs(t, err, ErrCapacity)
}

func TestDistance2Symmetric(t *testing.T) {
	ps, err := NewPointStore([][]float64{{1, 1}, {4, 5}})
	require.NoError(t, err)
	require.Equal(t, ps.Distance2(0, 1), ps.Distance2(1, 0))
}
