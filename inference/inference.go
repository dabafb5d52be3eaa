package inference

import (
	"github.com/benbjohnson/immutable"
	"github.com/pkg/errors"
)

// Group is one named dataset in a construction call. Assignments are passed
// as an ordered sequence rather than a map so that names outside the known
// vocabulary keep a deterministic relative order.
type Group struct {
	Name string
	Data *Dataset
}

// InferenceData bundles related datasets into one immutable value. Group
// names are held in canonical order regardless of the order they were
// supplied in. All operations return new containers; datasets unaffected by
// an operation are shared between the old and new value, never copied.
type InferenceData struct {
	groups *immutable.Map[string, *Dataset]
	names  []string // canonical order; never mutated after construction
}

// New constructs a container from group assignments. A repeated name fails
// with ErrDuplicateGroup. A container with zero groups is valid.
func New(groups ...Group) (*InferenceData, error) {
	m := immutable.NewMap[string, *Dataset](nil)
	names := make([]string, 0, len(groups))
	for _, g := range groups {
		if g.Name == "" {
			return nil, errors.New("group name must not be empty")
		}
		if g.Data == nil {
			return nil, errors.Errorf("group %q: nil dataset", g.Name)
		}
		if _, dup := m.Get(g.Name); dup {
			return nil, errors.Wrapf(ErrDuplicateGroup, "%q", g.Name)
		}
		m = m.Set(g.Name, g.Data)
		names = append(names, g.Name)
	}
	sortGroups(names)
	return &InferenceData{groups: m, names: names}, nil
}

// Get returns the dataset for a group, or ErrUnknownGroup if absent.
func (id *InferenceData) Get(name string) (*Dataset, error) {
	ds, ok := id.groups.Get(name)
	if !ok {
		return nil, errors.Wrapf(ErrUnknownGroup, "%q", name)
	}
	return ds, nil
}

// Has returns true if the container holds the group.
func (id *InferenceData) Has(name string) bool {
	_, ok := id.groups.Get(name)
	return ok
}

// Names returns the group names in canonical order.
func (id *InferenceData) Names() []string {
	return append([]string(nil), id.names...)
}

// Len returns the number of groups.
func (id *InferenceData) Len() int {
	return id.groups.Len()
}

// IsEmpty returns true if the container holds no groups.
func (id *InferenceData) IsEmpty() bool {
	return id.groups.Len() == 0
}

// Each calls fn for every group in canonical order. Iteration stops early if
// fn returns false.
func (id *InferenceData) Each(fn func(name string, ds *Dataset) bool) {
	for _, name := range id.names {
		ds, _ := id.groups.Get(name)
		if !fn(name, ds) {
			return
		}
	}
}

// WithGroup returns a new container with the group inserted, or replaced if
// the name is already present. The receiver is unchanged, and every other
// group is shared between the two containers.
func (id *InferenceData) WithGroup(name string, ds *Dataset) (*InferenceData, error) {
	if name == "" {
		return nil, errors.New("group name must not be empty")
	}
	if ds == nil {
		return nil, errors.Errorf("group %q: nil dataset", name)
	}
	m := id.groups.Set(name, ds)
	names := id.names
	if !id.Has(name) {
		names = append(append([]string(nil), id.names...), name)
		sortGroups(names)
	}
	return &InferenceData{groups: m, names: names}, nil
}
