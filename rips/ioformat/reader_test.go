package ioformat

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestReadPointsBasic(t *testing.T) {
	input := "0,0\n1,0\n0,1\n"
	pts, err := readPoints(strings.NewReader(input), ",")
	require.NoError(t, err)
	require.Equal(t, 3, pts.N())
	require.Equal(t, 2, pts.D())
}

func TestReadPointsDefaultSeparator(t *testing.T) {
	input := "0,0,0\n1,1,1\n"
	pts, err := readPoints(strings.NewReader(input), "")
	require.NoError(t, err)
	require.Equal(t, 2, pts.N())
}

func TestReadPointsPadsShortRows(t *testing.T) {
	input := "1,2,3\n4,5\n"
	pts, err := readPoints(strings.NewReader(input), ",")
	require.NoError(t, err)
	require.Equal(t, 3, pts.D())
	require.Equal(t, []float64{4, 5, 0}, pts.At(1))
}

func TestReadPointsIgnoresBlankLines(t *testing.T) {
	input := "1,2\n\n3,4\n\n"
	pts, err := readPoints(strings.NewReader(input), ",")
	require.NoError(t, err)
	require.Equal(t, 2, pts.N())
}

func TestReadPointsMalformedNumberIsFatal(t *testing.T) {
	input := "1,x\n"
	_, err := readPoints(strings.NewReader(input), ",")
	require.Error(t, err)
}

func TestReadPointsWrongSeparatorIsFatal(t *testing.T) {
	input := "1;2;3\n"
	_, err := readPoints(strings.NewReader(input), ",")
	require.Error(t, err)
}
