package ioformat

import (
	"math"
	"strings"
	"testing"

	"github.com/go-rips/rips"
	"github.com/stretchr/testify/require"
)

func TestEncodeBarcodeCSV(t *testing.T) {
	intervals := []rips.BarcodeInterval{
		{Dim: 0, Birth: 0, Death: 1.5},
		{Dim: 0, Birth: 0, Death: math.Inf(1)},
		{Dim: 1, Birth: 0.5, Death: 2},
	}

	var buf strings.Builder
	require.NoError(t, EncodeBarcodeCSV(&buf, intervals))

	want := "homology dimension,start,end\n" +
		"0,0,1.5\n" +
		"0,0,inf\n" +
		"1,0.5,2\n"
	require.Equal(t, want, buf.String())
}

func TestEncodeBarcodeCSVDeterministic(t *testing.T) {
	intervals := []rips.BarcodeInterval{
		{Dim: 0, Birth: 0, Death: 1},
		{Dim: 1, Birth: 0.25, Death: math.Inf(1)},
	}

	var a, b strings.Builder
	require.NoError(t, EncodeBarcodeCSV(&a, intervals))
	require.NoError(t, EncodeBarcodeCSV(&b, intervals))
	require.Equal(t, a.String(), b.String())
}
