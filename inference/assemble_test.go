package inference

import (
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/require"
)

func TestDatasetFromValuesDefaults(t *testing.T) {
	ds, err := DatasetFromValues(map[string]any{
		"mu":    grid(3, 2),
		"theta": cube(3, 2, 4),
	})
	require.NoError(t, err)

	mu, ok := ds.Var("mu")
	require.True(t, ok)
	require.Equal(t, []string{"chain", "draw"}, mu.Dims())
	require.Equal(t, []int{3, 2}, mu.Shape())

	theta, ok := ds.Var("theta")
	require.True(t, ok)
	require.Equal(t, []string{"chain", "draw", "theta_dim_0"}, theta.Dims())

	// Variables arrive in name order.
	require.Equal(t, []string{"mu", "theta"}, ds.Vars())
}

func TestDatasetFromValuesExplicitDims(t *testing.T) {
	ds, err := DatasetFromValues(
		map[string]any{"theta": cube(2, 3, 4)},
		WithDims("theta", "chain", "draw", "school"),
		WithCoords("school", "A", "B", "C", "D"),
	)
	require.NoError(t, err)

	theta, _ := ds.Var("theta")
	require.Equal(t, []string{"chain", "draw", "school"}, theta.Dims())
	require.Equal(t, []any{"A", "B", "C", "D"}, ds.Coords("school"))
}

func TestDatasetFromValuesDimCountMismatch(t *testing.T) {
	_, err := DatasetFromValues(
		map[string]any{"theta": cube(2, 3, 4)},
		WithDims("theta", "chain", "draw"),
	)
	require.ErrorIs(t, err, ErrShapeMismatch)
}

func TestDatasetFromValuesRankBelowDefaults(t *testing.T) {
	_, err := DatasetFromValues(map[string]any{"y": []float64{1, 2, 3}})
	require.ErrorIs(t, err, ErrShapeMismatch)
}

func TestDatasetFromValuesConstantData(t *testing.T) {
	ds, err := DatasetFromValues(map[string]any{"y": []float64{1, 2, 3}}, WithDefaultDims())
	require.NoError(t, err)

	y, _ := ds.Var("y")
	require.Equal(t, []string{"y_dim_0"}, y.Dims())
	require.Equal(t, []int{3}, y.Shape())
}

func TestDatasetFromValuesCustomDefaultDims(t *testing.T) {
	ds, err := DatasetFromValues(map[string]any{"mu": grid(4, 5)}, WithDefaultDims("walker", "step"))
	require.NoError(t, err)

	mu, _ := ds.Var("mu")
	require.Equal(t, []string{"walker", "step"}, mu.Dims())
}

func TestDatasetFromValuesRagged(t *testing.T) {
	_, err := DatasetFromValues(map[string]any{"mu": [][]float64{{1, 2}, {3}}})
	require.ErrorIs(t, err, ErrShapeMismatch)
}

func TestDatasetFromRecords(t *testing.T) {
	// Two chains of three draws; each draw records a scalar and a vector.
	recs := make([][]map[string]any, 2)
	v := 0.0
	for i := range recs {
		recs[i] = make([]map[string]any, 3)
		for j := range recs[i] {
			recs[i][j] = map[string]any{
				"mu":    v,
				"theta": []float64{v, v + 0.5},
			}
			v++
		}
	}

	ds, err := DatasetFromRecords(recs)
	require.NoError(t, err)

	mu, ok := ds.Var("mu")
	require.True(t, ok)
	require.Equal(t, []string{"chain", "draw"}, mu.Dims())
	if diff := cmp.Diff([]float64{0, 1, 2, 3, 4, 5}, mu.Values()); diff != "" {
		t.Errorf("mu values mismatch (-want +got):\n%s", diff)
	}

	theta, ok := ds.Var("theta")
	require.True(t, ok)
	require.Equal(t, []string{"chain", "draw", "theta_dim_0"}, theta.Dims())
	require.Equal(t, []int{2, 3, 2}, theta.Shape())
	require.Equal(t, 4.5, theta.At(1, 1, 1))
}

func TestDatasetFromRecordsShapeMismatch(t *testing.T) {
	recs := []map[string]any{
		{"theta": []float64{1, 2}},
		{"theta": []float64{1, 2, 3}},
	}
	_, err := DatasetFromRecords(recs, WithDefaultDims("draw"))
	require.ErrorIs(t, err, ErrShapeMismatch)
}

func TestDatasetFromRecordsSelectsLikeValues(t *testing.T) {
	recs := [][]map[string]any{
		{{"mu": 1.0}, {"mu": 2.0}},
		{{"mu": 3.0}, {"mu": 4.0}},
	}
	ds, err := DatasetFromRecords(recs)
	require.NoError(t, err)

	got, err := ds.Select(Sel{"draw": 1})
	require.NoError(t, err)
	mu, _ := got.Var("mu")
	if diff := cmp.Diff([]float64{2, 4}, mu.Values()); diff != "" {
		t.Errorf("values mismatch (-want +got):\n%s", diff)
	}
}
