package main

import (
	"encoding/csv"
	"io"
	"os"
	"path/filepath"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/require"
)

func writePointsFile(t *testing.T, contents string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "points.csv")
	require.NoError(t, os.WriteFile(path, []byte(contents), 0o644))
	return path
}

func TestInteractiveModeRuns(t *testing.T) {
	path := writePointsFile(t, "0,0\n1,0\n0,1\n")
	require.NoError(t, runInteractive(path, "", false, nil))
}

func TestInteractiveModeWithProgressReportsNonZero(t *testing.T) {
	path := writePointsFile(t, "0,0\n1,0\n0,1\n1,1\n")

	r, w, err := os.Pipe()
	require.NoError(t, err)
	stdout := os.Stdout
	os.Stdout = w
	runErr := runInteractive(path, "", true, nil)
	os.Stdout = stdout
	require.NoError(t, w.Close())
	out, err := io.ReadAll(r)
	require.NoError(t, err)

	require.NoError(t, runErr)
	require.Contains(t, string(out), "(build finished)")
	require.NotContains(t, string(out), "progress: 0 simplices consumed")
}

func TestBarcodeModeWritesCSV(t *testing.T) {
	path := writePointsFile(t, "0,0\n10,0\n")
	out := filepath.Join(t.TempDir(), "out.csv")

	require.NoError(t, runBarcode(path, "", "6", out, 0, nil))

	data, err := os.ReadFile(out)
	require.NoError(t, err)
	require.Contains(t, string(data), "homology dimension,start,end")
}

func TestBarcodeModeCSVRowsMatchExpected(t *testing.T) {
	path := writePointsFile(t, "0,0\n10,0\n")
	out := filepath.Join(t.TempDir(), "out.csv")

	require.NoError(t, runBarcode(path, "", "10", out, 0, nil))

	f, err := os.Open(out)
	require.NoError(t, err)
	defer f.Close()

	rows, err := csv.NewReader(f).ReadAll()
	require.NoError(t, err)

	want := [][]string{
		{"homology dimension", "start", "end"},
		{"0", "0", "5"},
		{"0", "0", "inf"},
	}
	if diff := cmp.Diff(want, rows); diff != "" {
		t.Fatalf("barcode CSV rows mismatch (-want +got):\n%s", diff)
	}
}

func TestBarcodeModeBadEpsIsArgumentError(t *testing.T) {
	path := writePointsFile(t, "0,0\n1,0\n")
	out := filepath.Join(t.TempDir(), "out.csv")

	err := runBarcode(path, "", "not-a-number", out, 0, nil)
	require.Error(t, err)
}

func TestRootCommandDispatchesBarcode(t *testing.T) {
	path := writePointsFile(t, "0,0\n10,0\n")
	out := filepath.Join(t.TempDir(), "out.csv")

	cmd := newRootCmd()
	cmd.SetArgs([]string{path, "barcode", "6", out})
	require.NoError(t, cmd.Execute())

	_, err := os.Stat(out)
	require.NoError(t, err)
}

func TestRootCommandRejectsBadUsage(t *testing.T) {
	path := writePointsFile(t, "0,0\n")

	cmd := newRootCmd()
	cmd.SetArgs([]string{path, "barcode", "only-one-arg"})
	require.Error(t, cmd.Execute())
}
