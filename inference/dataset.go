package inference

import (
	"github.com/pkg/errors"

	"github.com/robert-malhotra/go-inference/internal/nd"
)

// Dataset is an immutable collection of named variables sharing a pool of
// named, coordinate-indexed dimensions. Different variables may use
// different subsets of the dataset's dimensions, but a dimension name has a
// single length dataset-wide.
type Dataset struct {
	vars     map[string]*DataArray
	varNames []string // insertion order
	coords   map[string]*coord
	dims     []string // first-appearance order
}

// coord is one dimension's coordinate index: the labels along the axis and a
// reverse lookup from label to position.
type coord struct {
	values []any
	index  map[any]int
}

func newCoord(values []any) (*coord, error) {
	c := &coord{values: values, index: make(map[any]int, len(values))}
	for i, v := range values {
		nv, err := normalizeCoordValue(v)
		if err != nil {
			return nil, err
		}
		c.values[i] = nv
		if _, dup := c.index[nv]; !dup {
			c.index[nv] = i
		}
	}
	return c, nil
}

// defaultCoord labels positions 0..n-1.
func defaultCoord(n int) *coord {
	values := make([]any, n)
	index := make(map[any]int, n)
	for i := 0; i < n; i++ {
		values[i] = int64(i)
		index[int64(i)] = i
	}
	return &coord{values: values, index: index}
}

// normalizeCoordValue maps coordinate labels to a canonical comparable form:
// all integer widths to int64, floats to float64, strings unchanged.
func normalizeCoordValue(v any) (any, error) {
	switch x := v.(type) {
	case int:
		return int64(x), nil
	case int8:
		return int64(x), nil
	case int16:
		return int64(x), nil
	case int32:
		return int64(x), nil
	case int64:
		return x, nil
	case uint:
		return int64(x), nil
	case uint8:
		return int64(x), nil
	case uint16:
		return int64(x), nil
	case uint32:
		return int64(x), nil
	case uint64:
		return int64(x), nil
	case float32:
		return float64(x), nil
	case float64:
		return x, nil
	case string:
		return x, nil
	default:
		return nil, errors.Errorf("unsupported coordinate value type %T", v)
	}
}

// NewDataset builds a Dataset from variables. A dimension name used by more
// than one variable must have the same length everywhere. Coordinates may be
// assigned per dimension with WithCoords; dimensions without explicit
// coordinates get integer coordinates 0..n-1.
func NewDataset(arrays []*DataArray, opts ...DatasetOption) (*Dataset, error) {
	o := defaultDatasetOptions()
	for _, opt := range opts {
		opt(o)
	}

	d := &Dataset{
		vars:   make(map[string]*DataArray, len(arrays)),
		coords: make(map[string]*coord),
	}
	dimLen := make(map[string]int)
	for _, a := range arrays {
		if a == nil {
			return nil, errors.New("nil variable")
		}
		if _, dup := d.vars[a.name]; dup {
			return nil, errors.Wrapf(ErrDuplicateVariable, "%q", a.name)
		}
		d.vars[a.name] = a
		d.varNames = append(d.varNames, a.name)
		shape := a.values.Shape()
		for k, dim := range a.dims {
			if n, seen := dimLen[dim]; seen {
				if n != shape[k] {
					return nil, errors.Wrapf(ErrDimensionMismatch, "dimension %q: length %d on variable %q, %d elsewhere", dim, shape[k], a.name, n)
				}
				continue
			}
			dimLen[dim] = shape[k]
			d.dims = append(d.dims, dim)
		}
	}

	for dim, values := range o.coords {
		n, ok := dimLen[dim]
		if !ok {
			return nil, errors.Wrapf(ErrUnknownDimension, "coordinates for %q", dim)
		}
		if len(values) != n {
			return nil, errors.Wrapf(ErrDimensionMismatch, "dimension %q: %d coordinates for length %d", dim, len(values), n)
		}
		c, err := newCoord(append([]any(nil), values...))
		if err != nil {
			return nil, errors.Wrapf(err, "dimension %q", dim)
		}
		d.coords[dim] = c
	}
	for _, dim := range d.dims {
		if _, ok := d.coords[dim]; !ok {
			d.coords[dim] = defaultCoord(dimLen[dim])
		}
	}
	return d, nil
}

// Dims returns the dataset's dimension names in first-appearance order.
func (d *Dataset) Dims() []string {
	return append([]string(nil), d.dims...)
}

// HasDim returns true if any variable uses the dimension.
func (d *Dataset) HasDim(dim string) bool {
	_, ok := d.coords[dim]
	return ok
}

// DimLen returns the length of a dimension, or 0 if the dataset does not
// have it.
func (d *Dataset) DimLen(dim string) int {
	c, ok := d.coords[dim]
	if !ok {
		return 0
	}
	return len(c.values)
}

// Coords returns a copy of a dimension's coordinate labels, or nil if the
// dataset does not have the dimension.
func (d *Dataset) Coords(dim string) []any {
	c, ok := d.coords[dim]
	if !ok {
		return nil
	}
	return append([]any(nil), c.values...)
}

// Vars returns the variable names in insertion order.
func (d *Dataset) Vars() []string {
	return append([]string(nil), d.varNames...)
}

// Var returns a variable by name.
func (d *Dataset) Var(name string) (*DataArray, bool) {
	a, ok := d.vars[name]
	return a, ok
}

// NumVars returns the number of variables.
func (d *Dataset) NumVars() int {
	return len(d.varNames)
}

// concat concatenates two datasets along a named dimension. The operands
// must hold the same variables with identical dimension lists and agree on
// every dimension length except the concatenation dimension. Variables that
// do not carry the dimension must be value-equal on both sides; the
// receiver's copy passes through. The concatenated dimension's coordinates
// are renumbered 0..n-1. If no variable carries the dimension, the receiver
// is returned unchanged.
func (d *Dataset) concat(other *Dataset, dim string) (*Dataset, error) {
	if len(d.varNames) != len(other.varNames) {
		return nil, errors.Wrapf(ErrDimensionMismatch, "variable sets differ: %d vs %d variables", len(d.varNames), len(other.varNames))
	}

	extended := false
	vars := make(map[string]*DataArray, len(d.vars))
	for _, name := range d.varNames {
		a := d.vars[name]
		b, ok := other.vars[name]
		if !ok {
			return nil, errors.Wrapf(ErrDimensionMismatch, "variable %q missing from operand", name)
		}
		if !sameDims(a.dims, b.dims) {
			return nil, errors.Wrapf(ErrDimensionMismatch, "variable %q: dimensions %v vs %v", name, a.dims, b.dims)
		}
		k, has := a.axis(dim)
		if !has {
			if !nd.Equal(a.values, b.values) {
				return nil, errors.Wrapf(ErrDimensionMismatch, "variable %q lacks dimension %q and differs between operands", name, dim)
			}
			vars[name] = a
			continue
		}
		joined, err := nd.Concat(a.values, b.values, k)
		if err != nil {
			return nil, errors.Wrapf(ErrDimensionMismatch, "variable %q: %s", name, err)
		}
		vars[name] = &DataArray{name: name, dims: a.dims, values: joined}
		extended = true
	}
	if !extended {
		return d, nil
	}

	coords := make(map[string]*coord, len(d.coords))
	for cd, c := range d.coords {
		coords[cd] = c
	}
	coords[dim] = defaultCoord(d.DimLen(dim) + other.DimLen(dim))
	return &Dataset{vars: vars, varNames: d.varNames, coords: coords, dims: d.dims}, nil
}

func sameDims(a, b []string) bool {
	if len(a) != len(b) {
		return false
	}
	for i := range a {
		if a[i] != b[i] {
			return false
		}
	}
	return true
}
