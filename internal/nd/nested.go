package nd

import (
	"reflect"
	"sort"

	"github.com/pkg/errors"
)

// FromNested flattens a nested Go container of numeric scalars into a single
// dense Array. Each nesting level of slices or arrays contributes one
// leading axis; a bare numeric value produces a scalar Array. FromNested is
// idempotent on an *Array: the same value is returned unchanged.
//
// Siblings at the same nesting level must have identical shapes; ragged
// input fails with ErrShapeMismatch.
func FromNested(v any) (*Array, error) {
	if a, ok := v.(*Array); ok {
		return a, nil
	}
	var data []float64
	shape, err := flatten(reflect.ValueOf(v), &data)
	if err != nil {
		return nil, err
	}
	return &Array{shape: shape, data: data}, nil
}

// FromRecords flattens a nested container of records (maps from field name
// to numeric scalar or nested numeric container) into one Array per field.
// Every record must carry the same field set, and a field's value must have
// the same shape in every record. Each field's Array gains the container
// shape as leading axes. Field names are returned sorted, since Go maps
// carry no order.
func FromRecords(v any) (map[string]*Array, []string, error) {
	var recs []reflect.Value
	shape, err := collectRecords(reflect.ValueOf(v), &recs)
	if err != nil {
		return nil, nil, err
	}
	if len(recs) == 0 {
		return nil, nil, errors.Wrap(ErrShapeMismatch, "no records to assemble")
	}

	names := recordFields(recs[0])
	fieldSet := make(map[string]bool, len(names))
	for _, name := range names {
		fieldSet[name] = true
	}

	fields := make(map[string]*Array, len(names))
	for _, name := range names {
		var data []float64
		var fieldShape []int
		for i, rec := range recs {
			fv := rec.MapIndex(reflect.ValueOf(name))
			if !fv.IsValid() {
				return nil, nil, errors.Wrapf(ErrShapeMismatch, "field %q missing from record %d", name, i)
			}
			s, err := flatten(fv, &data)
			if err != nil {
				return nil, nil, errors.Wrapf(err, "field %q, record %d", name, i)
			}
			if i == 0 {
				fieldShape = s
			} else if !sameShape(s, fieldShape) {
				return nil, nil, errors.Wrapf(ErrShapeMismatch, "field %q: shape %v in record %d, %v in record 0", name, s, i, fieldShape)
			}
		}
		fields[name] = &Array{shape: append(append([]int(nil), shape...), fieldShape...), data: data}
	}

	// Records after the first may not introduce fields of their own.
	for i, rec := range recs[1:] {
		for _, key := range rec.MapKeys() {
			if !fieldSet[key.String()] {
				return nil, nil, errors.Wrapf(ErrShapeMismatch, "field %q in record %d absent from record 0", key.String(), i+1)
			}
		}
	}
	return fields, names, nil
}

// flatten appends the row-major elements of rv to out and returns rv's shape.
func flatten(rv reflect.Value, out *[]float64) ([]int, error) {
	rv = indirect(rv)
	if !rv.IsValid() {
		return nil, errors.New("nil value in container")
	}
	if f, ok := asFloat(rv); ok {
		*out = append(*out, f)
		return nil, nil
	}
	switch rv.Kind() {
	case reflect.Slice, reflect.Array:
		n := rv.Len()
		var inner []int
		for i := 0; i < n; i++ {
			s, err := flatten(rv.Index(i), out)
			if err != nil {
				return nil, err
			}
			if i == 0 {
				inner = s
			} else if !sameShape(s, inner) {
				return nil, errors.Wrapf(ErrShapeMismatch, "ragged container: element %d has shape %v, element 0 has %v", i, s, inner)
			}
		}
		return append([]int{n}, inner...), nil
	default:
		return nil, errors.Errorf("unsupported element type %s", rv.Type())
	}
}

// collectRecords walks nested slices until it reaches map-typed records,
// returning the container shape and appending records in row-major order.
func collectRecords(rv reflect.Value, recs *[]reflect.Value) ([]int, error) {
	rv = indirect(rv)
	if !rv.IsValid() {
		return nil, errors.New("nil value in container")
	}
	switch rv.Kind() {
	case reflect.Map:
		if rv.Type().Key().Kind() != reflect.String {
			return nil, errors.Errorf("record keys must be strings, got %s", rv.Type().Key())
		}
		*recs = append(*recs, rv)
		return nil, nil
	case reflect.Slice, reflect.Array:
		n := rv.Len()
		var inner []int
		for i := 0; i < n; i++ {
			s, err := collectRecords(rv.Index(i), recs)
			if err != nil {
				return nil, err
			}
			if i == 0 {
				inner = s
			} else if !sameShape(s, inner) {
				return nil, errors.Wrapf(ErrShapeMismatch, "ragged record container at element %d", i)
			}
		}
		return append([]int{n}, inner...), nil
	default:
		return nil, errors.Errorf("unsupported record container type %s", rv.Type())
	}
}

func recordFields(rec reflect.Value) []string {
	names := make([]string, 0, rec.Len())
	for _, key := range rec.MapKeys() {
		names = append(names, key.String())
	}
	sort.Strings(names)
	return names
}

// asFloat coerces any numeric kind to float64.
func asFloat(rv reflect.Value) (float64, bool) {
	switch rv.Kind() {
	case reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64:
		return float64(rv.Int()), true
	case reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64:
		return float64(rv.Uint()), true
	case reflect.Float32, reflect.Float64:
		return rv.Float(), true
	}
	return 0, false
}

// indirect unwraps interfaces and pointers.
func indirect(rv reflect.Value) reflect.Value {
	for rv.IsValid() && (rv.Kind() == reflect.Interface || rv.Kind() == reflect.Ptr) {
		if rv.IsNil() {
			return reflect.Value{}
		}
		rv = rv.Elem()
	}
	return rv
}

func sameShape(a, b []int) bool {
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
