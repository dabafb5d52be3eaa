package inference

import (
	"github.com/pkg/errors"

	"github.com/robert-malhotra/go-inference/internal/nd"
)

// DataArray is a named variable: a dense multi-dimensional array whose axes
// carry dimension names. DataArrays are immutable once constructed.
type DataArray struct {
	name   string
	dims   []string
	values *nd.Array
}

// NewDataArray assembles values into a DataArray. The values may be an
// arbitrarily nested container of numeric scalars; each nesting level
// contributes one axis, named by the corresponding entry of dims. The number
// of dims must equal the assembled rank.
func NewDataArray(name string, values any, dims ...string) (*DataArray, error) {
	arr, err := nd.FromNested(values)
	if err != nil {
		return nil, errors.Wrapf(err, "variable %q", name)
	}
	return newDataArray(name, arr, dims)
}

// newDataArray wraps an already-assembled array, validating dims.
func newDataArray(name string, arr *nd.Array, dims []string) (*DataArray, error) {
	if name == "" {
		return nil, errors.New("variable name must not be empty")
	}
	if len(dims) != arr.Rank() {
		return nil, errors.Wrapf(ErrShapeMismatch, "variable %q: %d dimension names for rank-%d values", name, len(dims), arr.Rank())
	}
	seen := make(map[string]bool, len(dims))
	for _, d := range dims {
		if d == "" {
			return nil, errors.Errorf("variable %q: empty dimension name", name)
		}
		if seen[d] {
			return nil, errors.Wrapf(ErrDimensionMismatch, "variable %q: dimension %q repeated", name, d)
		}
		seen[d] = true
	}
	return &DataArray{name: name, dims: append([]string(nil), dims...), values: arr}, nil
}

// Name returns the variable name.
func (a *DataArray) Name() string {
	return a.name
}

// Dims returns the dimension names in axis order.
func (a *DataArray) Dims() []string {
	return append([]string(nil), a.dims...)
}

// Shape returns the axis lengths.
func (a *DataArray) Shape() []int {
	return a.values.Shape()
}

// Rank returns the number of axes.
func (a *DataArray) Rank() int {
	return len(a.dims)
}

// HasDim returns true if the variable has an axis with the given name.
func (a *DataArray) HasDim(dim string) bool {
	_, ok := a.axis(dim)
	return ok
}

// DimLen returns the length of the named axis, or 0 if the variable does not
// have it.
func (a *DataArray) DimLen(dim string) int {
	k, ok := a.axis(dim)
	if !ok {
		return 0
	}
	return a.values.Size(k)
}

// At returns the element at the given index, one index per axis.
func (a *DataArray) At(idx ...int) float64 {
	return a.values.At(idx...)
}

// Values returns a copy of the variable's elements in row-major order.
func (a *DataArray) Values() []float64 {
	return a.values.Values()
}

// axis returns the axis position of a dimension name.
func (a *DataArray) axis(dim string) (int, bool) {
	for k, d := range a.dims {
		if d == dim {
			return k, true
		}
	}
	return 0, false
}

// take selects positions along a named axis, preserving the axis. The caller
// guarantees the dimension exists and positions are in range.
func (a *DataArray) take(dim string, positions []int) *DataArray {
	k, _ := a.axis(dim)
	return &DataArray{name: a.name, dims: a.dims, values: a.values.Take(k, positions)}
}
