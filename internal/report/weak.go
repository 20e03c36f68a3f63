package report

import (
	"sort"

	"github.com/verte-zerg/speakscore/internal/model"
)

// WeakestComponents returns up to n of the lowest-scoring measured
// components. Ties keep component order; placeholder components are skipped.
func WeakestComponents(scores model.ComponentScores, n int) []model.Component {
	candidates := make([]model.Component, 0, len(model.Components))
	for _, c := range model.Components {
		if !c.Placeholder() {
			candidates = append(candidates, c)
		}
	}
	sort.SliceStable(candidates, func(i, j int) bool {
		return scores.Get(candidates[i]) < scores.Get(candidates[j])
	})
	if n <= 0 || n > len(candidates) {
		n = len(candidates)
	}
	return candidates[:n]
}
