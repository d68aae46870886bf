package matrix

// Float32Matrix is a dense row major float32 matrix. Rows returned by
// Row alias the underlying storage, so writes through them are visible
// to every holder of the matrix. No locking is done here; callers that
// share a matrix between goroutines own the synchronization policy.
type Float32Matrix struct {
	nrow uint32
	ncol uint32
	data []float32
}

// NewFloat32Matrix creates a new zero filled Float32Matrix with r rows
// and c columns. It panics with ErrBadShape if either dimension is zero.
func NewFloat32Matrix(r, c uint32) *Float32Matrix {
	if r == 0 || c == 0 {
		panic(ErrBadShape)
	}
	return &Float32Matrix{
		nrow: r,
		ncol: c,
		data: make([]float32, r*c),
	}
}

// get the shape of the matrix
func (m *Float32Matrix) Shape() (uint32, uint32) {
	return m.nrow, m.ncol
}

// get the [r, c]-th element of the matrix
func (m *Float32Matrix) Get(r, c uint32) float32 {
	if r >= m.nrow || c >= m.ncol {
		panic(ErrIndexOutOfRange)
	}
	return m.data[r*m.ncol+c]
}

// set val to the [r, c]-th element of the matrix
func (m *Float32Matrix) Set(r, c uint32, val float32) {
	if r >= m.nrow || c >= m.ncol {
		panic(ErrIndexOutOfRange)
	}
	m.data[r*m.ncol+c] = val
}

// Row returns the r-th row as a slice sharing the matrix storage.
func (m *Float32Matrix) Row(r uint32) []float32 {
	if r >= m.nrow {
		panic(ErrIndexOutOfRange)
	}
	return m.data[r*m.ncol : (r+1)*m.ncol : (r+1)*m.ncol]
}

// Data exposes the row major backing slice.
func (m *Float32Matrix) Data() []float32 {
	return m.data
}

// Clone returns a deep copy of the matrix.
func (m *Float32Matrix) Clone() *Float32Matrix {
	c := &Float32Matrix{
		nrow: m.nrow,
		ncol: m.ncol,
		data: make([]float32, len(m.data)),
	}
	copy(c.data, m.data)
	return c
}
