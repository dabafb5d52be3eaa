// Package inference provides an immutable container bundling related
// dimension-labeled datasets (posterior samples, prior samples, observed
// data, log-likelihood, ...) into one value, with coordinate-based selection
// applied uniformly across all groups.
package inference

import (
	"github.com/pkg/errors"

	"github.com/robert-malhotra/go-inference/internal/nd"
)

// Common errors
var (
	// ErrDuplicateGroup reports a group name supplied more than once to a
	// single construction, or a rename that maps two groups to one name.
	ErrDuplicateGroup = errors.New("duplicate group name")

	// ErrUnknownGroup reports a lookup of a group the container does not hold.
	ErrUnknownGroup = errors.New("unknown group")

	// ErrDuplicateVariable reports a variable name repeated within a dataset.
	ErrDuplicateVariable = errors.New("duplicate variable name")

	// ErrUnknownDimension reports a reference to a dimension a dataset does
	// not have, such as a coordinate assignment or a direct selection on it.
	ErrUnknownDimension = errors.New("unknown dimension")

	// ErrDimensionMismatch reports dimensions that disagree between operands:
	// a shared dimension with two lengths, or merge operands whose variables
	// differ anywhere but the concatenation axis.
	ErrDimensionMismatch = errors.New("dimension mismatch")

	// ErrOutOfRange reports a selection naming a coordinate value absent
	// from the dimension's domain.
	ErrOutOfRange = errors.New("coordinate out of range")

	// ErrShapeMismatch reports structurally incompatible raw values during
	// array assembly (ragged nesting, disagreeing record fields).
	ErrShapeMismatch = nd.ErrShapeMismatch
)
