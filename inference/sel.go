package inference

import (
	"fmt"
	"sort"

	"github.com/pkg/errors"
)

// MissingDimensionWarning is the non-fatal diagnostic emitted when a
// container-wide selection names a dimension some group does not have. The
// group is left unchanged and selection proceeds for the remaining groups.
type MissingDimensionWarning struct {
	Group string
	Dim   string
}

func (w MissingDimensionWarning) String() string {
	return fmt.Sprintf("group %q has no dimension %q; selection left it unchanged", w.Group, w.Dim)
}

// Sel applies the selection request to every group. Groups exposing all
// requested dimensions are selected through their own coordinates; a group
// missing any requested dimension passes through unchanged (shared, not
// copied) and a MissingDimensionWarning is surfaced through the configured
// sink. A requested coordinate absent from a dimension a group does have
// fails the whole call with ErrOutOfRange; no partial result escapes and no
// warnings are emitted on failure.
func (id *InferenceData) Sel(req Sel, opts ...SelOption) (*InferenceData, error) {
	o := defaultSelOptions()
	for _, opt := range opts {
		opt(o)
	}

	dims := make([]string, 0, len(req))
	for dim := range req {
		dims = append(dims, dim)
	}
	sort.Strings(dims)

	m := id.groups
	var warns []MissingDimensionWarning
	for _, name := range id.names {
		ds, _ := id.groups.Get(name)
		applicable := true
		for _, dim := range dims {
			if !ds.HasDim(dim) {
				warns = append(warns, MissingDimensionWarning{Group: name, Dim: dim})
				applicable = false
			}
		}
		if !applicable {
			continue
		}
		selected, err := ds.Select(req)
		if err != nil {
			return nil, errors.Wrapf(err, "selecting group %q", name)
		}
		if selected != ds {
			m = m.Set(name, selected)
		}
	}

	for _, w := range warns {
		o.warn(w)
	}
	return &InferenceData{groups: m, names: id.names}, nil
}

// SelGroup applies the selection request to one named group and returns the
// selected Dataset. Unlike Sel there is no warn-and-skip: a requested
// dimension the group does not have fails with ErrUnknownDimension.
func (id *InferenceData) SelGroup(name string, req Sel) (*Dataset, error) {
	ds, err := id.Get(name)
	if err != nil {
		return nil, err
	}
	selected, err := ds.Select(req)
	if err != nil {
		return nil, errors.Wrapf(err, "selecting group %q", name)
	}
	return selected, nil
}
