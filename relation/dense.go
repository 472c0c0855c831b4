package relation

import "fmt"

// dense is a row-major matrix backed by a single buffer.
type dense struct {
	rows, cols int
	data       []float64
}

func newDense(rows, cols int) *dense {
	return &dense{
		rows: rows,
		cols: cols,
		data: make([]float64, rows*cols),
	}
}

func (m *dense) at(i, j int) float64 {
	return m.data[i*m.cols+j]
}

func (m *dense) set(i, j int, v float64) {
	m.data[i*m.cols+j] = v
}

func (m *dense) row(i int) []float64 {
	out := make([]float64, m.cols)
	copy(out, m.data[i*m.cols:(i+1)*m.cols])
	return out
}

// fill sets every entry to fn(i, j).
func (m *dense) fill(fn func(i, j int) float64) {
	for i := 0; i < m.rows; i++ {
		for j := 0; j < m.cols; j++ {
			m.data[i*m.cols+j] = fn(i, j)
		}
	}
}

// denseFrom copies a nested slice into a new dense matrix. Every row must be
// cols long.
func denseFrom(rows, cols int, src [][]float64) (*dense, error) {
	if len(src) != rows {
		return nil, fmt.Errorf("got %d rows, want %d: %w", len(src), rows, ErrShapeMismatch)
	}

	m := newDense(rows, cols)

	for i, r := range src {
		if len(r) != cols {
			return nil, fmt.Errorf("row %d has %d columns, want %d: %w", i, len(r), cols, ErrShapeMismatch)
		}
		copy(m.data[i*cols:], r)
	}

	return m, nil
}
