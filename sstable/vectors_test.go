package sstable

import (
	"bytes"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestWriteVectors(t *testing.T) {
	var buf bytes.Buffer
	err := WriteVectors(&buf, []string{"a", "b"}, [][]float32{{1, -0.5}, {0.25, 3}})
	require.NoError(t, err)
	assert.Equal(t, "2 2\na 1 -0.5\nb 0.25 3\n", buf.String())
}

func TestWriteVectorsShapeMismatch(t *testing.T) {
	var buf bytes.Buffer
	assert.Error(t, WriteVectors(&buf, []string{"a"}, nil))
	assert.Error(t, WriteVectors(&buf, []string{"a", "b"}, [][]float32{{1, 2}, {3}}))
}

func TestSaveLoadVectors(t *testing.T) {
	fn := filepath.Join(t.TempDir(), "vectors.txt")
	texts := []string{"the", "cat", "sat"}
	vectors := [][]float32{
		{0.1, -0.0023, 1e-7},
		{12345.678, 0, -1},
		{0.33333334, 2.5e-5, 7},
	}
	require.NoError(t, SaveVectors(fn, texts, vectors))

	got, m, err := LoadVectors(fn)
	require.NoError(t, err)
	assert.Equal(t, texts, got)

	r, c := m.Shape()
	assert.Equal(t, uint32(3), r)
	assert.Equal(t, uint32(3), c)
	for i := range vectors {
		assert.Equal(t, vectors[i], m.Row(uint32(i)))
	}
}

func TestReadVectorsMalformed(t *testing.T) {
	cases := map[string]string{
		"empty":         "",
		"header":        "two 3\n",
		"short header":  "2\n",
		"zero size":     "0 3\n",
		"zero dim":      "2 0\n",
		"missing line":  "2 2\na 1 2\n",
		"short line":    "2 2\na 1 2\nb 1\n",
		"bad float":     "1 2\na 1 x\n",
		"duplicate":     "2 1\na 1\na 2\n",
		"missing words": "1 1\n\n",
	}
	for name, data := range cases {
		_, _, err := ReadVectors(strings.NewReader(data))
		assert.ErrorIs(t, err, ErrMalformedFile, name)
	}
}

func TestReadVectorsExtraValues(t *testing.T) {
	texts, m, err := ReadVectors(strings.NewReader("1 2\na 1 2 3\n"))
	require.NoError(t, err)
	assert.Equal(t, []string{"a"}, texts)
	assert.Equal(t, []float32{1, 2}, m.Row(0))
}

func TestLoadVectorsMissingFile(t *testing.T) {
	_, _, err := LoadVectors(filepath.Join(t.TempDir(), "nope.txt"))
	assert.ErrorIs(t, err, ErrMalformedFile)
}
