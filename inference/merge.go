package inference

import (
	"github.com/benbjohnson/immutable"
	"github.com/pkg/errors"
)

// MergeOption configures a Merge call.
type MergeOption func(*mergeOptions)

type mergeOptions struct {
	dim string
}

func defaultMergeOptions() *mergeOptions {
	return &mergeOptions{dim: DimChain}
}

// MergeAlong sets the dimension along which shared groups are concatenated.
// The default is the chain dimension.
func MergeAlong(dim string) MergeOption {
	return func(o *mergeOptions) {
		if dim != "" {
			o.dim = dim
		}
	}
}

// Merge combines two containers, typically independent sampling runs of the
// same model. A group present in exactly one operand passes through
// unchanged. A group present in both is concatenated along the merge
// dimension; the two datasets must agree on every other dimension, and
// variables lacking the merge dimension (constant data) must be identical.
// The concatenated dimension's coordinates are renumbered from zero.
func (id *InferenceData) Merge(other *InferenceData, opts ...MergeOption) (*InferenceData, error) {
	o := defaultMergeOptions()
	for _, opt := range opts {
		opt(o)
	}

	m := id.groups
	names := append([]string(nil), id.names...)
	for _, name := range other.names {
		ods, _ := other.groups.Get(name)
		cur, shared := m.Get(name)
		if !shared {
			m = m.Set(name, ods)
			names = append(names, name)
			continue
		}
		merged, err := cur.concat(ods, o.dim)
		if err != nil {
			return nil, errors.Wrapf(err, "merging group %q", name)
		}
		m = m.Set(name, merged)
	}
	sortGroups(names)
	return &InferenceData{groups: m, names: names}, nil
}

// Rename returns a new container with groups re-keyed per the mapping. Names
// absent from the mapping keep their key. Two groups mapping to the same
// final name fail with ErrDuplicateGroup. Datasets are shared, not copied.
func (id *InferenceData) Rename(mapping map[string]string) (*InferenceData, error) {
	m := immutable.NewMap[string, *Dataset](nil)
	names := make([]string, 0, len(id.names))
	for _, name := range id.names {
		to := name
		if renamed, ok := mapping[name]; ok {
			to = renamed
		}
		if to == "" {
			return nil, errors.Errorf("rename: group %q mapped to empty name", name)
		}
		if _, dup := m.Get(to); dup {
			return nil, errors.Wrapf(ErrDuplicateGroup, "rename: %q", to)
		}
		ds, _ := id.groups.Get(name)
		m = m.Set(to, ds)
		names = append(names, to)
	}
	sortGroups(names)
	return &InferenceData{groups: m, names: names}, nil
}
