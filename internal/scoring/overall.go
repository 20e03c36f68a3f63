package scoring

import "github.com/verte-zerg/speakscore/internal/model"

// Overall returns the weighted mean of the scores that are present, normalized
// by the weight actually used. Components without a weight are ignored.
func Overall(scores map[model.Component]float64, weights model.Weights) float64 {
	var weightedSum, totalWeight float64
	for _, c := range model.Components {
		weight, ok := weights[c]
		if !ok {
			continue
		}
		v, ok := scores[c]
		if !ok {
			continue
		}
		weightedSum += v * weight
		totalWeight += weight
	}
	if totalWeight <= 0 {
		return 0
	}
	return finalize(weightedSum / totalWeight)
}
