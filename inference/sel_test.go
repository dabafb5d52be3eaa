package inference

import (
	"bytes"
	"strings"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/robert-malhotra/go-inference/logger"
)

// heterogeneous builds the spec's reference container: a posterior with a
// theta dimension and a log-likelihood with an obs dimension.
func heterogeneous(t *testing.T) *InferenceData {
	t.Helper()
	post, err := DatasetFromValues(
		map[string]any{"theta": cube(4, 10, 3)},
		WithDims("theta", "chain", "draw", "theta_dim"),
	)
	require.NoError(t, err)

	ll, err := DatasetFromValues(
		map[string]any{"y": cube(4, 10, 10)},
		WithDims("y", "chain", "draw", "obs"),
	)
	require.NoError(t, err)

	id, err := New(
		Group{Name: "log_likelihood", Data: ll},
		Group{Name: "posterior", Data: post},
	)
	require.NoError(t, err)
	return id
}

func TestSelAcrossAllGroups(t *testing.T) {
	id := heterogeneous(t)

	got, err := id.Sel(Sel{"chain": 1}, WithLogger(logger.NopLogger))
	require.NoError(t, err)

	for _, name := range got.Names() {
		ds, err := got.Get(name)
		require.NoError(t, err)
		require.Equal(t, 1, ds.DimLen("chain"), "group %s", name)
		require.Equal(t, 10, ds.DimLen("draw"), "group %s", name)
	}
	post, err := got.Get("posterior")
	require.NoError(t, err)
	require.Equal(t, 3, post.DimLen("theta_dim"))
}

func TestSelWarnsAndSkipsGroupMissingDimension(t *testing.T) {
	id := heterogeneous(t)

	var warns []MissingDimensionWarning
	got, err := id.Sel(Sel{"obs": 1}, WithWarningHandler(func(w MissingDimensionWarning) {
		warns = append(warns, w)
	}))
	require.NoError(t, err)

	require.Equal(t, []MissingDimensionWarning{{Group: "posterior", Dim: "obs"}}, warns)

	// posterior untouched, shared with the original container.
	origPost, err := id.Get("posterior")
	require.NoError(t, err)
	gotPost, err := got.Get("posterior")
	require.NoError(t, err)
	require.Same(t, origPost, gotPost)

	// log_likelihood sliced.
	ll, err := got.Get("log_likelihood")
	require.NoError(t, err)
	require.Equal(t, 1, ll.DimLen("obs"))
	require.Equal(t, 4, ll.DimLen("chain"))
}

func TestSelOutOfRangeFailsWholeCall(t *testing.T) {
	id := heterogeneous(t)

	var warned bool
	_, err := id.Sel(Sel{"chain": 42}, WithWarningHandler(func(MissingDimensionWarning) {
		warned = true
	}))
	require.ErrorIs(t, err, ErrOutOfRange)
	require.False(t, warned, "no warnings should escape a failed selection")

	// The receiver is untouched by the failed call.
	post, err := id.Get("posterior")
	require.NoError(t, err)
	require.Equal(t, 4, post.DimLen("chain"))
}

func TestSelDoesNotMutateReceiver(t *testing.T) {
	id := heterogeneous(t)
	before := id.Names()

	_, err := id.Sel(Sel{"chain": []int{0, 2}}, WithLogger(logger.NopLogger))
	require.NoError(t, err)

	require.Equal(t, before, id.Names())
	post, err := id.Get("posterior")
	require.NoError(t, err)
	require.Equal(t, 4, post.DimLen("chain"))
}

func TestSelWarningGoesToLogger(t *testing.T) {
	id := heterogeneous(t)

	var buf bytes.Buffer
	_, err := id.Sel(Sel{"obs": 0}, WithLogger(logger.NewStandardLogger(&buf)))
	require.NoError(t, err)

	out := buf.String()
	if !strings.Contains(out, "posterior") || !strings.Contains(out, "obs") {
		t.Errorf("warning missing group or dimension:\n%s", out)
	}
}

func TestSelGroup(t *testing.T) {
	id := heterogeneous(t)

	ds, err := id.SelGroup("log_likelihood", Sel{"obs": []int{0, 1}})
	require.NoError(t, err)
	require.Equal(t, 2, ds.DimLen("obs"))

	_, err = id.SelGroup("missing", Sel{"chain": 0})
	require.ErrorIs(t, err, ErrUnknownGroup)

	// Single-group mode has no warn-and-skip: a missing dimension is an error.
	_, err = id.SelGroup("posterior", Sel{"obs": 0})
	require.ErrorIs(t, err, ErrUnknownDimension)
}

func TestSelEmptyContainer(t *testing.T) {
	id, err := New()
	require.NoError(t, err)

	got, err := id.Sel(Sel{"chain": 0}, WithLogger(logger.NopLogger))
	require.NoError(t, err)
	require.True(t, got.IsEmpty())
}
