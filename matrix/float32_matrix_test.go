package matrix

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestFloat32MatrixShape(t *testing.T) {
	m := NewFloat32Matrix(uint32(2), uint32(3))

	r, c := m.Shape()

	assert.Equal(t, uint32(2), r)
	assert.Equal(t, uint32(3), c)
	assert.Len(t, m.Data(), 6)
}

func TestFloat32MatrixGet(t *testing.T) {
	m := NewFloat32Matrix(uint32(2), uint32(3))

	val := float32(0.0)
	for r := 0; r < 2; r += 1 {
		for c := 0; c < 3; c += 1 {
			m.Set(uint32(r), uint32(c), val)
			val += float32(1.0)
		}
	}

	assert.Equal(t, float32(0), m.Get(0, 0))
	assert.Equal(t, float32(1), m.Get(0, 1))
	assert.Equal(t, float32(2), m.Get(0, 2))
	assert.Equal(t, float32(3), m.Get(1, 0))
	assert.Equal(t, float32(4), m.Get(1, 1))
	assert.Equal(t, float32(5), m.Get(1, 2))
}

func TestFloat32MatrixRowAliases(t *testing.T) {
	m := NewFloat32Matrix(uint32(3), uint32(2))

	row := m.Row(1)
	assert.Equal(t, []float32{0, 0}, row)

	row[0] = 7
	row[1] = 8
	assert.Equal(t, float32(7), m.Get(1, 0))
	assert.Equal(t, float32(8), m.Get(1, 1))
	assert.Equal(t, float32(0), m.Get(2, 0))

	// appending to a row must not spill into the next one
	_ = append(row, 9)
	assert.Equal(t, float32(0), m.Get(2, 0))
}

func TestFloat32MatrixClone(t *testing.T) {
	m := NewFloat32Matrix(uint32(1), uint32(2))
	m.Set(0, 1, 3)

	c := m.Clone()
	c.Set(0, 1, 4)

	assert.Equal(t, float32(3), m.Get(0, 1))
	assert.Equal(t, float32(4), c.Get(0, 1))
}

func TestFloat32MatrixPanics(t *testing.T) {
	assert.PanicsWithValue(t, ErrBadShape, func() { NewFloat32Matrix(0, 3) })

	m := NewFloat32Matrix(uint32(2), uint32(2))
	assert.PanicsWithValue(t, ErrIndexOutOfRange, func() { m.Get(2, 0) })
	assert.PanicsWithValue(t, ErrIndexOutOfRange, func() { m.Set(0, 2, 1) })
	assert.PanicsWithValue(t, ErrIndexOutOfRange, func() { m.Row(2) })
}
