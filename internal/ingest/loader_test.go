package ingest

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParse(t *testing.T) {
	t.Parallel()

	t.Run("well-formed file", func(t *testing.T) {
		t.Parallel()
		tr, err := Parse(strings.NewReader("time,x,y\n1,0.5,-2.5\n2,1.0,-2.0\n3,1.5,-1.5\n"))
		require.NoError(t, err)
		require.Len(t, tr, 3)

		assert.InDelta(t, 1.0, tr[0].Timestamp, 1e-9)
		assert.InDelta(t, 0.5, tr[0].X, 1e-9)
		assert.InDelta(t, -2.5, tr[0].Y, 1e-9)
		assert.InDelta(t, 1.5, tr[2].X, 1e-9)
	})

	t.Run("columns may appear in any order", func(t *testing.T) {
		t.Parallel()
		tr, err := Parse(strings.NewReader("y,time,x\n-2.5,1,0.5\n"))
		require.NoError(t, err)
		require.Len(t, tr, 1)
		assert.InDelta(t, 0.5, tr[0].X, 1e-9)
		assert.InDelta(t, -2.5, tr[0].Y, 1e-9)
	})

	t.Run("extra columns are ignored", func(t *testing.T) {
		t.Parallel()
		tr, err := Parse(strings.NewReader("time,x,y,player\n1,0,0,martinez\n"))
		require.NoError(t, err)
		require.Len(t, tr, 1)
	})

	t.Run("header matching is case-insensitive", func(t *testing.T) {
		t.Parallel()
		tr, err := Parse(strings.NewReader("Time,X,Y\n1,2,3\n"))
		require.NoError(t, err)
		require.Len(t, tr, 1)
	})

	t.Run("header only yields an empty trajectory", func(t *testing.T) {
		t.Parallel()
		tr, err := Parse(strings.NewReader("time,x,y\n"))
		require.NoError(t, err)
		assert.Empty(t, tr)
	})
}

func TestParseErrors(t *testing.T) {
	t.Parallel()

	t.Run("empty file", func(t *testing.T) {
		t.Parallel()
		_, err := Parse(strings.NewReader(""))
		var formatErr *InputFormatError
		require.ErrorAs(t, err, &formatErr)
		assert.Contains(t, formatErr.Error(), "header")
	})

	t.Run("missing required column", func(t *testing.T) {
		t.Parallel()
		_, err := Parse(strings.NewReader("time,x\n1,2\n"))
		var formatErr *InputFormatError
		require.ErrorAs(t, err, &formatErr)
		assert.Equal(t, 1, formatErr.Row)
		assert.Equal(t, "y", formatErr.Column)
	})

	t.Run("non-numeric value names row and column", func(t *testing.T) {
		t.Parallel()
		_, err := Parse(strings.NewReader("time,x,y\n1,0,0\n2,abc,0\n"))
		var formatErr *InputFormatError
		require.ErrorAs(t, err, &formatErr)
		assert.Equal(t, 3, formatErr.Row)
		assert.Equal(t, "x", formatErr.Column)
		assert.Contains(t, formatErr.Error(), "row 3")
	})

	t.Run("NaN value is rejected, not propagated", func(t *testing.T) {
		t.Parallel()
		_, err := Parse(strings.NewReader("time,x,y\n1,NaN,0\n2,0,0\n"))
		var formatErr *InputFormatError
		require.ErrorAs(t, err, &formatErr)
		assert.Equal(t, 2, formatErr.Row)
		assert.Equal(t, "x", formatErr.Column)
		assert.Contains(t, formatErr.Error(), "non-finite")
	})

	t.Run("infinite value is rejected", func(t *testing.T) {
		t.Parallel()
		_, err := Parse(strings.NewReader("time,x,y\n+Inf,0,0\n"))
		var formatErr *InputFormatError
		require.ErrorAs(t, err, &formatErr)
		assert.Equal(t, 2, formatErr.Row)
		assert.Equal(t, "time", formatErr.Column)
	})

	t.Run("short row reports the missing column", func(t *testing.T) {
		t.Parallel()
		_, err := Parse(strings.NewReader("time,x,y\n1,0\n"))
		var formatErr *InputFormatError
		require.ErrorAs(t, err, &formatErr)
		assert.Equal(t, 2, formatErr.Row)
		assert.Equal(t, "y", formatErr.Column)
	})
}

func TestLoadCSV(t *testing.T) {
	t.Parallel()

	t.Run("reads from disk", func(t *testing.T) {
		t.Parallel()
		dir := t.TempDir()
		path := filepath.Join(dir, "tracking.csv")
		require.NoError(t, os.WriteFile(path, []byte("time,x,y\n1,0,0\n2,3,4\n"), 0o644))

		tr, err := LoadCSV(path)
		require.NoError(t, err)
		assert.Len(t, tr, 2)
	})

	t.Run("missing file", func(t *testing.T) {
		t.Parallel()
		_, err := LoadCSV(filepath.Join(t.TempDir(), "nope.csv"))
		assert.Error(t, err)
	})
}
