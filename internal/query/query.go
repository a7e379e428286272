// Package query turns untyped requirement objects, as produced by the
// oracle or supplied on the command line, into typed profile queries.
package query

import (
	"fmt"
	"strings"

	"github.com/go-viper/mapstructure/v2"

	"polygen/internal/profile"
)

// Decode converts a raw requirement object into a profile.Query. Keys the
// query shape does not recognize are ignored; a requirement object the
// scorer cannot use simply scores nothing, it does not fail the pipeline.
func Decode(raw map[string]any) (profile.Query, error) {
	var q profile.Query
	if err := mapstructure.Decode(raw, &q); err != nil {
		return profile.Query{}, fmt.Errorf("decoding requirement object: %w", err)
	}
	return q, nil
}

// FromWeights builds a query from explicit dimension weights, e.g. parsed
// from repeated --weight flags. Unknown dimension names are rejected so flag
// typos surface immediately instead of silently scoring nothing.
func FromWeights(weights map[string]float64, useCase string, useCaseWeight *float64) (profile.Query, error) {
	q := profile.Query{
		UseCase:       useCase,
		UseCaseWeight: useCaseWeight,
	}
	for name, w := range weights {
		term := &profile.Weighted{Weight: w}
		switch profile.Dimension(name) {
		case profile.Performance:
			q.Performance = term
		case profile.Memory:
			q.Memory = term
		case profile.StartupTime:
			q.StartupTime = term
		case profile.Ecosystem:
			q.Ecosystem = term
		case profile.Concurrency:
			q.Concurrency = term
		default:
			return profile.Query{}, fmt.Errorf("unknown dimension %q (valid: %s)", name, validDimensions())
		}
	}
	return q, nil
}

func validDimensions() string {
	dims := profile.Dimensions()
	names := make([]string, len(dims))
	for i, d := range dims {
		names[i] = string(d)
	}
	return strings.Join(names, ", ")
}
