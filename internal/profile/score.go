package profile

// Score computes the weighted average of the profile's ratings over the
// query terms that are actually present. Score and weight are only ever
// accumulated together: a dimension the query omits contributes to neither
// sum, and a use case the profile does not declare contributes nothing
// rather than a zero score. A query with no effective terms scores 0.
func (p *Profile) Score(q Query) float64 {
	var score, weight float64

	for _, d := range Dimensions() {
		w, ok := q.DimensionWeight(d)
		if !ok {
			continue
		}
		score += p.Characteristics[d] * w
		weight += w
	}

	if q.UseCase != "" {
		if ucScore, ok := p.UseCaseScore(q.UseCase); ok {
			w := q.useCaseWeight()
			score += ucScore * w
			weight += w
		}
	}

	if weight <= 0 {
		return 0
	}
	return score / weight
}
