package inference

import (
	"fmt"
	"sort"

	"github.com/pkg/errors"

	"github.com/robert-malhotra/go-inference/internal/nd"
)

// DatasetFromValues assembles raw per-variable sample values into a Dataset.
// Each value may be an arbitrarily nested container of numeric scalars; the
// nesting becomes the variable's axes. Leading axes are named by the default
// sampling dims (chain, draw — see WithDefaultDims) and remaining axes get
// auto-generated names ("<variable>_dim_0", ...); WithDims overrides the
// whole list per variable. Variables are added in name order, since a Go map
// carries no order of its own.
func DatasetFromValues(vars map[string]any, opts ...DatasetOption) (*Dataset, error) {
	o := defaultDatasetOptions()
	for _, opt := range opts {
		opt(o)
	}

	names := make([]string, 0, len(vars))
	for name := range vars {
		names = append(names, name)
	}
	sort.Strings(names)

	arrays := make([]*DataArray, 0, len(names))
	for _, name := range names {
		arr, err := nd.FromNested(vars[name])
		if err != nil {
			return nil, errors.Wrapf(err, "variable %q", name)
		}
		dims, err := resolveDims(name, arr.Rank(), o)
		if err != nil {
			return nil, err
		}
		a, err := newDataArray(name, arr, dims)
		if err != nil {
			return nil, err
		}
		arrays = append(arrays, a)
	}
	return NewDataset(arrays, opts...)
}

// DatasetFromRecords assembles a nested container of per-draw records (maps
// from variable name to numeric scalar or nested numeric container) into a
// Dataset. The container nesting becomes each variable's leading axes, named
// like DatasetFromValues names them. Records must all carry the same
// variables with structurally identical values; a disagreement fails with
// ErrShapeMismatch naming the variable.
func DatasetFromRecords(records any, opts ...DatasetOption) (*Dataset, error) {
	o := defaultDatasetOptions()
	for _, opt := range opts {
		opt(o)
	}

	fields, names, err := nd.FromRecords(records)
	if err != nil {
		return nil, errors.Wrap(err, "assembling records")
	}

	arrays := make([]*DataArray, 0, len(names))
	for _, name := range names {
		arr := fields[name]
		dims, err := resolveDims(name, arr.Rank(), o)
		if err != nil {
			return nil, err
		}
		a, err := newDataArray(name, arr, dims)
		if err != nil {
			return nil, err
		}
		arrays = append(arrays, a)
	}
	return NewDataset(arrays, opts...)
}

// resolveDims produces the dimension-name list for an assembled variable of
// the given rank.
func resolveDims(name string, rank int, o *datasetOptions) ([]string, error) {
	if dims, ok := o.dims[name]; ok {
		if len(dims) != rank {
			return nil, errors.Wrapf(ErrShapeMismatch, "variable %q: %d dimension names for rank %d", name, len(dims), rank)
		}
		return dims, nil
	}
	lead := o.sampleDims()
	if rank < len(lead) {
		return nil, errors.Wrapf(ErrShapeMismatch, "variable %q: rank %d is smaller than the %d default dims %v", name, rank, len(lead), lead)
	}
	dims := append([]string(nil), lead...)
	for k := len(lead); k < rank; k++ {
		dims = append(dims, fmt.Sprintf("%s_dim_%d", name, k-len(lead)))
	}
	return dims, nil
}
