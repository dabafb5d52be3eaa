package inference

import (
	"reflect"

	"github.com/pkg/errors"
)

// Sel is a coordinate selection request: for each named dimension, one of a
// single coordinate value, a slice of coordinate values, or a Range.
type Sel map[string]any

// Range selects the closed interval of coordinates from Start through Stop,
// in the dimension's coordinate order. Both endpoints must exist in the
// dimension's domain.
type Range struct {
	Start any
	Stop  any
}

// Select applies the request to the dataset and returns a new Dataset.
//
// Every dimension named in the request must exist on the dataset
// (ErrUnknownDimension otherwise), and every requested coordinate must exist
// in its dimension's domain (ErrOutOfRange otherwise). Selecting a single
// coordinate keeps the dimension as a length-1 axis rather than dropping it,
// so variable ranks are stable under selection. Variables that do not use a
// requested dimension pass through unchanged; an empty request returns the
// receiver itself.
func (d *Dataset) Select(req Sel) (*Dataset, error) {
	if len(req) == 0 {
		return d, nil
	}

	positions := make(map[string][]int, len(req))
	for dim, constraint := range req {
		c, ok := d.coords[dim]
		if !ok {
			return nil, errors.Wrapf(ErrUnknownDimension, "%q", dim)
		}
		pos, err := c.positions(dim, constraint)
		if err != nil {
			return nil, err
		}
		positions[dim] = pos
	}

	vars := make(map[string]*DataArray, len(d.vars))
	for _, name := range d.varNames {
		a := d.vars[name]
		for _, dim := range d.dims {
			pos, requested := positions[dim]
			if requested && a.HasDim(dim) {
				a = a.take(dim, pos)
			}
		}
		vars[name] = a
	}

	coords := make(map[string]*coord, len(d.coords))
	for dim, c := range d.coords {
		pos, requested := positions[dim]
		if !requested {
			coords[dim] = c
			continue
		}
		values := make([]any, len(pos))
		for i, p := range pos {
			values[i] = c.values[p]
		}
		selected, err := newCoord(values)
		if err != nil {
			return nil, errors.Wrapf(err, "dimension %q", dim)
		}
		coords[dim] = selected
	}
	return &Dataset{vars: vars, varNames: d.varNames, coords: coords, dims: d.dims}, nil
}

// positions resolves a constraint against the coordinate index.
func (c *coord) positions(dim string, constraint any) ([]int, error) {
	switch x := constraint.(type) {
	case Range:
		start, err := c.lookup(dim, x.Start)
		if err != nil {
			return nil, err
		}
		stop, err := c.lookup(dim, x.Stop)
		if err != nil {
			return nil, err
		}
		if start > stop {
			return nil, errors.Wrapf(ErrOutOfRange, "dimension %q: range %v..%v is reversed", dim, x.Start, x.Stop)
		}
		pos := make([]int, 0, stop-start+1)
		for p := start; p <= stop; p++ {
			pos = append(pos, p)
		}
		return pos, nil
	case nil:
		return nil, errors.Errorf("dimension %q: nil constraint", dim)
	}

	rv := reflect.ValueOf(constraint)
	if rv.Kind() == reflect.Slice || rv.Kind() == reflect.Array {
		pos := make([]int, rv.Len())
		for i := 0; i < rv.Len(); i++ {
			p, err := c.lookup(dim, rv.Index(i).Interface())
			if err != nil {
				return nil, err
			}
			pos[i] = p
		}
		return pos, nil
	}

	// Single coordinate value: kept as a length-1 axis.
	p, err := c.lookup(dim, constraint)
	if err != nil {
		return nil, err
	}
	return []int{p}, nil
}

// lookup finds the position of one coordinate value.
func (c *coord) lookup(dim string, value any) (int, error) {
	nv, err := normalizeCoordValue(value)
	if err != nil {
		return 0, errors.Wrapf(err, "dimension %q", dim)
	}
	p, ok := c.index[nv]
	if !ok {
		return 0, errors.Wrapf(ErrOutOfRange, "dimension %q has no coordinate %v", dim, value)
	}
	return p, nil
}
