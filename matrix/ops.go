package matrix

// MulVec returns the matrix–vector product m·x.
// Returns ErrDimensionMismatch unless len(x) == m.Cols().
//
// Complexity: O(rows · cols)
func (m *Dense) MulVec(x []float64) ([]float64, error) {
	if len(x) != m.cols {
		return nil, ErrDimensionMismatch
	}
	out := make([]float64, m.rows)
	for i := 0; i < m.rows; i++ {
		row := m.data[i*m.cols : (i+1)*m.cols]
		var sum float64
		for j, v := range row {
			sum += v * x[j]
		}
		out[i] = sum
	}

	return out, nil
}

// Mul returns the matrix product m·o.
// Returns ErrDimensionMismatch unless m.Cols() == o.Rows().
//
// Complexity: O(rows · cols · o.cols)
func (m *Dense) Mul(o *Dense) (*Dense, error) {
	if m.cols != o.rows {
		return nil, ErrDimensionMismatch
	}
	out, _ := NewDense(m.rows, o.cols)
	for i := 0; i < m.rows; i++ {
		for k := 0; k < m.cols; k++ {
			v := m.data[i*m.cols+k]
			if v == 0 {
				continue
			}
			for j := 0; j < o.cols; j++ {
				out.data[i*out.cols+j] += v * o.data[k*o.cols+j]
			}
		}
	}

	return out, nil
}

// Transpose returns a new matrix with rows and columns swapped.
func (m *Dense) Transpose() *Dense {
	out, _ := NewDense(m.cols, m.rows)
	for i := 0; i < m.rows; i++ {
		for j := 0; j < m.cols; j++ {
			out.data[j*out.cols+i] = m.data[i*m.cols+j]
		}
	}

	return out
}

// Apply returns a new matrix with fn applied to every element.
func (m *Dense) Apply(fn func(float64) float64) *Dense {
	out := m.Clone()
	for i, v := range out.data {
		out.data[i] = fn(v)
	}

	return out
}

// Scale returns a new matrix with every element multiplied by a.
func (m *Dense) Scale(a float64) *Dense {
	return m.Apply(func(v float64) float64 { return a * v })
}

// Add returns the elementwise sum m + o.
// Returns ErrDimensionMismatch unless shapes match.
func (m *Dense) Add(o *Dense) (*Dense, error) {
	if m.rows != o.rows || m.cols != o.cols {
		return nil, ErrDimensionMismatch
	}
	out := m.Clone()
	for i, v := range o.data {
		out.data[i] += v
	}

	return out, nil
}

// ArgMax returns the index of the largest element of xs, or -1 for an
// empty slice. Ties resolve to the first maximum.
func ArgMax(xs []float64) int {
	if len(xs) == 0 {
		return -1
	}
	best := 0
	for i, v := range xs {
		if v > xs[best] {
			best = i
		}
	}

	return best
}
