package core

import (
	"errors"
	"fmt"
	"strings"
)

// ErrSingularMatrix is returned when inverting a matrix whose determinant is zero
var ErrSingularMatrix = errors.New("matrix is not invertible")

// Matrix is a square, row-major matrix of float64
type Matrix struct {
	size int
	data []float64
}

// NewMatrix creates a square matrix from its rows
func NewMatrix(rows [][]float64) Matrix {
	size := len(rows)
	m := ZeroMatrix(size)
	for r, row := range rows {
		if len(row) != size {
			panic(fmt.Sprintf("core: row %d has %d columns, want %d", r, len(row), size))
		}
		copy(m.data[r*size:(r+1)*size], row)
	}
	return m
}

// ZeroMatrix creates a size x size matrix of zeros
func ZeroMatrix(size int) Matrix {
	return Matrix{size: size, data: make([]float64, size*size)}
}

// Identity returns the size x size identity matrix
func Identity(size int) Matrix {
	m := ZeroMatrix(size)
	for i := 0; i < size; i++ {
		m.data[i*size+i] = 1
	}
	return m
}

// Identity4 returns the 4x4 identity matrix
func Identity4() Matrix {
	return Identity(4)
}

// Size returns the number of rows (and columns)
func (m Matrix) Size() int {
	return m.size
}

// At returns the element at row, col
func (m Matrix) At(row, col int) float64 {
	return m.data[row*m.size+col]
}

// Set sets the element at row, col. The matrix shares storage with its
// copies, so Set is meant for building fresh matrices only.
func (m Matrix) Set(row, col int, value float64) {
	m.data[row*m.size+col] = value
}

// Equals reports whether both matrices have the same size and every
// element is within Epsilon
func (m Matrix) Equals(other Matrix) bool {
	if m.size != other.size {
		return false
	}
	for i := range m.data {
		if !FloatEqual(m.data[i], other.data[i]) {
			return false
		}
	}
	return true
}

// Multiply returns the matrix product m * other
func (m Matrix) Multiply(other Matrix) Matrix {
	n := m.size
	result := ZeroMatrix(n)
	for row := 0; row < n; row++ {
		for col := 0; col < n; col++ {
			var sum float64
			for i := 0; i < n; i++ {
				sum += m.data[row*n+i] * other.data[i*n+col]
			}
			result.data[row*n+col] = sum
		}
	}
	return result
}

// MultiplyTuple applies a 4x4 matrix to a tuple
func (m Matrix) MultiplyTuple(t Tuple) Tuple {
	d := m.data
	return Tuple{
		X: d[0]*t.X + d[1]*t.Y + d[2]*t.Z + d[3]*t.W,
		Y: d[4]*t.X + d[5]*t.Y + d[6]*t.Z + d[7]*t.W,
		Z: d[8]*t.X + d[9]*t.Y + d[10]*t.Z + d[11]*t.W,
		W: d[12]*t.X + d[13]*t.Y + d[14]*t.Z + d[15]*t.W,
	}
}

// Transpose swaps rows and columns
func (m Matrix) Transpose() Matrix {
	n := m.size
	result := ZeroMatrix(n)
	for row := 0; row < n; row++ {
		for col := 0; col < n; col++ {
			result.data[col*n+row] = m.data[row*n+col]
		}
	}
	return result
}

// Determinant computes the determinant by cofactor expansion along row 0
func (m Matrix) Determinant() float64 {
	switch m.size {
	case 1:
		return m.data[0]
	case 2:
		return m.data[0]*m.data[3] - m.data[1]*m.data[2]
	}
	var det float64
	for col := 0; col < m.size; col++ {
		det += m.data[col] * m.Cofactor(0, col)
	}
	return det
}

// Submatrix returns a copy with the given row and column removed
func (m Matrix) Submatrix(row, col int) Matrix {
	n := m.size
	result := ZeroMatrix(n - 1)
	i := 0
	for r := 0; r < n; r++ {
		if r == row {
			continue
		}
		for c := 0; c < n; c++ {
			if c == col {
				continue
			}
			result.data[i] = m.data[r*n+c]
			i++
		}
	}
	return result
}

// Minor is the determinant of the submatrix at row, col
func (m Matrix) Minor(row, col int) float64 {
	return m.Submatrix(row, col).Determinant()
}

// Cofactor is the minor, negated when row+col is odd
func (m Matrix) Cofactor(row, col int) float64 {
	minor := m.Minor(row, col)
	if (row+col)%2 == 1 {
		return -minor
	}
	return minor
}

// IsInvertible reports whether the determinant is non-zero
func (m Matrix) IsInvertible() bool {
	return m.Determinant() != 0
}

// Inverse computes the inverse via the adjugate: inverse[col][row] =
// cofactor(row, col) / determinant. A singular matrix produces Inf/NaN
// elements; use TryInverse where the input is not known to be valid.
func (m Matrix) Inverse() Matrix {
	return m.inverse(m.Determinant())
}

// TryInverse is Inverse with a singularity check
func (m Matrix) TryInverse() (Matrix, error) {
	det := m.Determinant()
	if det == 0 {
		return Matrix{}, ErrSingularMatrix
	}
	return m.inverse(det), nil
}

func (m Matrix) inverse(det float64) Matrix {
	n := m.size
	result := ZeroMatrix(n)
	for row := 0; row < n; row++ {
		for col := 0; col < n; col++ {
			result.data[col*n+row] = m.Cofactor(row, col) / det
		}
	}
	return result
}

func (m Matrix) String() string {
	var sb strings.Builder
	for row := 0; row < m.size; row++ {
		sb.WriteString("|")
		for col := 0; col < m.size; col++ {
			fmt.Fprintf(&sb, " %9.5f |", m.At(row, col))
		}
		sb.WriteString("\n")
	}
	return sb.String()
}
