package matrix

import "errors"

// Sentinel errors for matrix construction and operations.
var (
	// ErrBadDimensions indicates a non-positive row or column count.
	ErrBadDimensions = errors.New("matrix: dimensions must be positive")

	// ErrRaggedRows indicates input rows of differing lengths.
	ErrRaggedRows = errors.New("matrix: all rows must have the same length")

	// ErrDimensionMismatch indicates incompatible operand shapes.
	ErrDimensionMismatch = errors.New("matrix: dimension mismatch")
)

// Dense is a row-major dense float64 matrix.
type Dense struct {
	rows, cols int
	data       []float64
}

// NewDense returns a zero-filled rows×cols matrix.
// Returns ErrBadDimensions for non-positive dimensions.
func NewDense(rows, cols int) (*Dense, error) {
	if rows <= 0 || cols <= 0 {
		return nil, ErrBadDimensions
	}

	return &Dense{rows: rows, cols: cols, data: make([]float64, rows*cols)}, nil
}

// NewDenseFromRows copies a [][]float64 into a Dense.
// Returns ErrBadDimensions for empty input and ErrRaggedRows when rows
// differ in length.
func NewDenseFromRows(rows [][]float64) (*Dense, error) {
	if len(rows) == 0 || len(rows[0]) == 0 {
		return nil, ErrBadDimensions
	}
	cols := len(rows[0])
	m, err := NewDense(len(rows), cols)
	if err != nil {
		return nil, err
	}
	for i, r := range rows {
		if len(r) != cols {
			return nil, ErrRaggedRows
		}
		copy(m.data[i*cols:(i+1)*cols], r)
	}

	return m, nil
}

// Rows returns the row count.
func (m *Dense) Rows() int { return m.rows }

// Cols returns the column count.
func (m *Dense) Cols() int { return m.cols }

// At returns the element at (i, j). Indices are not bounds-checked.
func (m *Dense) At(i, j int) float64 { return m.data[i*m.cols+j] }

// Set writes the element at (i, j). Indices are not bounds-checked.
func (m *Dense) Set(i, j int, v float64) { m.data[i*m.cols+j] = v }

// Clone returns a deep copy of m.
func (m *Dense) Clone() *Dense {
	out := &Dense{rows: m.rows, cols: m.cols, data: make([]float64, len(m.data))}
	copy(out.data, m.data)

	return out
}
