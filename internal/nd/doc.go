// Package nd provides dense n-dimensional arrays and the assembly of such
// arrays from nested Go containers.
//
// An [Array] stores float64 elements in row-major order together with its
// shape. Rank-0 arrays (scalars) are valid: they have an empty shape and
// exactly one element.
//
// # Index Math
//
// All operations reduce to the same row-major decomposition: for an axis k,
// the array is a block of outer = shape[0]*…*shape[k-1] slabs, each holding
// shape[k] runs of inner = shape[k+1]*…*shape[n-1] contiguous elements.
// [Array.Take] and [Concat] copy whole inner runs and never inspect
// individual elements.
//
// # Assembly
//
// [FromNested] flattens arbitrarily nested Go slices of numeric scalars into
// a single Array; each nesting level contributes one leading axis. All
// numeric widths are coerced to float64. Ragged nesting fails with
// [ErrShapeMismatch].
//
// [FromRecords] flattens a nested container of field→value records into one
// Array per field, each gaining the container shape as leading axes. Fields
// must appear in every record with structurally identical values.
package nd
