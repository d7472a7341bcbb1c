package data

import (
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/apache/arrow/go/v17/arrow/memory"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const mushrooms = `p,x,s,n
e,x,s,y
e,b,s,w
p,x,y,w
e,x,s,g
`

func TestReadColumns(t *testing.T) {
	mem := memory.NewCheckedAllocator(memory.NewGoAllocator())
	defer mem.AssertSize(t, 0)

	ds, err := ReadColumns(strings.NewReader(mushrooms), 0, 0, WithAllocator(mem))
	require.NoError(t, err)

	assert.Equal(t, 5, ds.Rows())
	assert.Equal(t, []string{"p", "e", "e", "p", "e"}, ds.Target)
	assert.Equal(t, "col0", ds.TargetName)
	assert.Equal(t, []string{"col1", "col2", "col3"}, ds.Names)
	require.Len(t, ds.Features, 3)
	assert.Equal(t, []string{"x", "x", "b", "x", "x"}, ds.Features[0])
	assert.Equal(t, []string{"s", "s", "s", "y", "s"}, ds.Features[1])
	assert.Equal(t, []string{"n", "y", "w", "w", "g"}, ds.Features[2])
}

func TestReadColumnsTargetIndex(t *testing.T) {
	ds, err := ReadColumns(strings.NewReader(mushrooms), 2, 0)
	require.NoError(t, err)

	assert.Equal(t, []string{"s", "s", "s", "y", "s"}, ds.Target)
	assert.Equal(t, []string{"col0", "col1", "col3"}, ds.Names)
	assert.Equal(t, []string{"p", "e", "e", "p", "e"}, ds.Features[0])
}

func TestReadColumnsRowLimit(t *testing.T) {
	tests := []struct {
		name  string
		limit int
		rows  int
	}{
		{"all rows when zero", 0, 5},
		{"all rows when negative", -3, 5},
		{"single row", 1, 1},
		{"first three", 3, 3},
		{"limit past end", 100, 5},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			mem := memory.NewCheckedAllocator(memory.NewGoAllocator())
			defer mem.AssertSize(t, 0)

			ds, err := ReadColumns(strings.NewReader(mushrooms), 0, tt.limit, WithAllocator(mem))
			require.NoError(t, err)
			assert.Equal(t, tt.rows, ds.Rows())
			for _, col := range ds.Features {
				assert.Len(t, col, tt.rows)
			}
		})
	}
}

func TestReadColumnsHeader(t *testing.T) {
	in := "class,cap,odor\ne,x,n\np,b,f\n"
	ds, err := ReadColumns(strings.NewReader(in), 0, 0, WithHeader())
	require.NoError(t, err)

	assert.Equal(t, "class", ds.TargetName)
	assert.Equal(t, []string{"cap", "odor"}, ds.Names)
	assert.Equal(t, []string{"e", "p"}, ds.Target)
	assert.Equal(t, 2, ds.Rows())
}

func TestReadColumnsQuotedAndComma(t *testing.T) {
	in := "a;\"x;y\"\nb;z\n"
	ds, err := ReadColumns(strings.NewReader(in), 1, 0, WithComma(';'))
	require.NoError(t, err)

	assert.Equal(t, []string{"x;y", "z"}, ds.Target)
	assert.Equal(t, [][]string{{"a", "b"}}, ds.Features)
}

func TestReadColumnsErrors(t *testing.T) {
	_, err := ReadColumns(strings.NewReader(""), 0, 0)
	assert.ErrorIs(t, err, ErrEmptyInput)

	_, err = ReadColumns(strings.NewReader(mushrooms), 4, 0)
	assert.ErrorIs(t, err, ErrTargetIndex)

	_, err = ReadColumns(strings.NewReader(mushrooms), -1, 0)
	assert.ErrorIs(t, err, ErrTargetIndex)

	_, err = ReadColumns(strings.NewReader("a,b\nc\n"), 0, 0)
	assert.Error(t, err)
}

func TestReadFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "data.csv")
	require.NoError(t, os.WriteFile(path, []byte(mushrooms), 0o644))

	ds, err := ReadFile(path, 0, 2)
	require.NoError(t, err)
	assert.Equal(t, 2, ds.Rows())

	_, err = ReadFile(filepath.Join(t.TempDir(), "missing.csv"), 0, 0)
	assert.True(t, errors.Is(err, os.ErrNotExist))
}

func TestNewDataset(t *testing.T) {
	cols := [][]string{{"a", "b"}, {"1", "2"}, {"x", "y"}}
	ds, err := NewDataset(cols, []string{"f", "g", "h"}, 1)
	require.NoError(t, err)
	assert.Equal(t, "g", ds.TargetName)
	assert.Equal(t, []string{"f", "h"}, ds.Names)
	assert.Equal(t, [][]string{{"a", "b"}, {"x", "y"}}, ds.Features)
}

func TestNewDatasetRagged(t *testing.T) {
	_, err := NewDataset([][]string{{"a", "b"}, {"1"}}, nil, 1)
	assert.ErrorIs(t, err, ErrRaggedColumns)
	assert.Contains(t, err.Error(), "2 rows")

	_, err = NewDataset([][]string{{"a"}}, []string{"x", "y"}, 0)
	assert.Error(t, err)

	_, err = NewDataset(nil, nil, 0)
	assert.ErrorIs(t, err, ErrTargetIndex)
}
