package inference

import "sort"

// Canonical group names, in canonical order. Containers always iterate known
// groups in this order; names outside the vocabulary sort after all known
// names and keep their relative order of first appearance.
const (
	GroupPosterior               = "posterior"
	GroupPosteriorPredictive     = "posterior_predictive"
	GroupPredictions             = "predictions"
	GroupLogLikelihood           = "log_likelihood"
	GroupSampleStats             = "sample_stats"
	GroupPrior                   = "prior"
	GroupPriorPredictive         = "prior_predictive"
	GroupSampleStatsPrior        = "sample_stats_prior"
	GroupObservedData            = "observed_data"
	GroupConstantData            = "constant_data"
	GroupPredictionsConstantData = "predictions_constant_data"
)

var knownGroups = []string{
	GroupPosterior,
	GroupPosteriorPredictive,
	GroupPredictions,
	GroupLogLikelihood,
	GroupSampleStats,
	GroupPrior,
	GroupPriorPredictive,
	GroupSampleStatsPrior,
	GroupObservedData,
	GroupConstantData,
	GroupPredictionsConstantData,
}

var groupRank = func() map[string]int {
	m := make(map[string]int, len(knownGroups))
	for i, name := range knownGroups {
		m[name] = i
	}
	return m
}()

// KnownGroups returns the canonical group vocabulary in canonical order.
func KnownGroups() []string {
	return append([]string(nil), knownGroups...)
}

// sortGroups sorts names in place: known names first by vocabulary rank,
// then unknown names in their existing relative order.
func sortGroups(names []string) {
	sort.SliceStable(names, func(i, j int) bool {
		ri, iKnown := groupRank[names[i]]
		rj, jKnown := groupRank[names[j]]
		switch {
		case iKnown && jKnown:
			return ri < rj
		case iKnown != jKnown:
			return iKnown
		default:
			return false
		}
	})
}
