package nd

import (
	"github.com/pkg/errors"
)

// ErrShapeMismatch reports structurally incompatible array shapes, such as
// ragged nested containers or record fields whose shapes disagree.
var ErrShapeMismatch = errors.New("shape mismatch")

// Array is a dense, row-major n-dimensional array of float64 values.
// A nil shape denotes a scalar (rank 0, one element).
type Array struct {
	shape []int
	data  []float64
}

// New creates an Array with the given shape wrapping data.
// The data slice is used directly, not copied.
func New(shape []int, data []float64) (*Array, error) {
	n := numElements(shape)
	if len(data) != n {
		return nil, errors.Wrapf(ErrShapeMismatch, "shape %v needs %d elements, got %d", shape, n, len(data))
	}
	for _, s := range shape {
		if s < 0 {
			return nil, errors.Wrapf(ErrShapeMismatch, "negative dimension in shape %v", shape)
		}
	}
	return &Array{shape: shape, data: data}, nil
}

// Zeros creates a zero-filled Array with the given shape.
func Zeros(shape []int) *Array {
	return &Array{shape: append([]int(nil), shape...), data: make([]float64, numElements(shape))}
}

// Scalar creates a rank-0 Array holding a single value.
func Scalar(v float64) *Array {
	return &Array{data: []float64{v}}
}

// Rank returns the number of axes.
func (a *Array) Rank() int {
	return len(a.shape)
}

// Shape returns a copy of the array's shape.
func (a *Array) Shape() []int {
	return append([]int(nil), a.shape...)
}

// Size returns the length of the given axis.
func (a *Array) Size(axis int) int {
	return a.shape[axis]
}

// Len returns the total number of elements.
func (a *Array) Len() int {
	return len(a.data)
}

// At returns the element at the given index. The number of indices must
// equal the rank; out-of-range indices panic, like slice indexing.
func (a *Array) At(idx ...int) float64 {
	if len(idx) != len(a.shape) {
		panic(errors.Errorf("nd: %d indices for rank-%d array", len(idx), len(a.shape)))
	}
	off := 0
	for k, i := range idx {
		if i < 0 || i >= a.shape[k] {
			panic(errors.Errorf("nd: index %d out of range for axis %d (size %d)", i, k, a.shape[k]))
		}
		off = off*a.shape[k] + i
	}
	return a.data[off]
}

// Values returns a copy of the underlying row-major data.
func (a *Array) Values() []float64 {
	return append([]float64(nil), a.data...)
}

// Take selects the given positions along one axis, preserving the axis even
// when a single position is taken. Positions must be in range and axis must
// be a valid axis; Take panics otherwise since callers are expected to have
// resolved positions against known coordinates.
func (a *Array) Take(axis int, positions []int) *Array {
	if axis < 0 || axis >= len(a.shape) {
		panic(errors.Errorf("nd: axis %d out of range for rank-%d array", axis, len(a.shape)))
	}
	outer, inner := a.split(axis)
	n := a.shape[axis]

	shape := a.Shape()
	shape[axis] = len(positions)
	out := make([]float64, outer*len(positions)*inner)

	dst := 0
	for o := 0; o < outer; o++ {
		base := o * n * inner
		for _, p := range positions {
			if p < 0 || p >= n {
				panic(errors.Errorf("nd: position %d out of range for axis %d (size %d)", p, axis, n))
			}
			copy(out[dst:dst+inner], a.data[base+p*inner:base+(p+1)*inner])
			dst += inner
		}
	}
	return &Array{shape: shape, data: out}
}

// Concat concatenates a and b along the given axis. The arrays must have
// equal rank and agree on every axis except the concatenation axis.
func Concat(a, b *Array, axis int) (*Array, error) {
	if len(a.shape) != len(b.shape) {
		return nil, errors.Wrapf(ErrShapeMismatch, "rank %d vs %d", len(a.shape), len(b.shape))
	}
	if axis < 0 || axis >= len(a.shape) {
		return nil, errors.Wrapf(ErrShapeMismatch, "axis %d out of range for rank %d", axis, len(a.shape))
	}
	for k := range a.shape {
		if k != axis && a.shape[k] != b.shape[k] {
			return nil, errors.Wrapf(ErrShapeMismatch, "axis %d: length %d vs %d", k, a.shape[k], b.shape[k])
		}
	}

	outer, inner := a.split(axis)
	na, nb := a.shape[axis], b.shape[axis]

	shape := a.Shape()
	shape[axis] = na + nb
	out := make([]float64, outer*(na+nb)*inner)

	dst := 0
	for o := 0; o < outer; o++ {
		copy(out[dst:dst+na*inner], a.data[o*na*inner:(o+1)*na*inner])
		dst += na * inner
		copy(out[dst:dst+nb*inner], b.data[o*nb*inner:(o+1)*nb*inner])
		dst += nb * inner
	}
	return &Array{shape: shape, data: out}, nil
}

// Equal reports whether two arrays have identical shapes and elements.
func Equal(a, b *Array) bool {
	if len(a.shape) != len(b.shape) {
		return false
	}
	for k := range a.shape {
		if a.shape[k] != b.shape[k] {
			return false
		}
	}
	for i := range a.data {
		if a.data[i] != b.data[i] {
			return false
		}
	}
	return true
}

// split returns the product of the axes before and after the given axis.
func (a *Array) split(axis int) (outer, inner int) {
	outer, inner = 1, 1
	for k := 0; k < axis; k++ {
		outer *= a.shape[k]
	}
	for k := axis + 1; k < len(a.shape); k++ {
		inner *= a.shape[k]
	}
	return outer, inner
}

func numElements(shape []int) int {
	n := 1
	for _, s := range shape {
		n *= s
	}
	return n
}
