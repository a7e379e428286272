package profile

// Weighted is a single requirement term: a non-negative multiplier attached
// to one characteristic dimension.
type Weighted struct {
	Weight float64 `json:"weight" yaml:"weight" mapstructure:"weight"`
}

// Query is a caller-supplied weighted requirement vector. A nil dimension
// field means "this dimension does not matter" and the dimension is skipped
// entirely; it does not dilute the weighted average. UseCaseWeight is nil
// when omitted, which defaults to 1 if a UseCase is named. An explicit zero
// weight contributes nothing, same as omitting the term.
type Query struct {
	Performance *Weighted `json:"performance,omitempty" mapstructure:"performance"`
	Memory      *Weighted `json:"memory,omitempty" mapstructure:"memory"`
	StartupTime *Weighted `json:"startupTime,omitempty" mapstructure:"startupTime"`
	Ecosystem   *Weighted `json:"ecosystem,omitempty" mapstructure:"ecosystem"`
	Concurrency *Weighted `json:"concurrency,omitempty" mapstructure:"concurrency"`

	UseCase       string   `json:"useCase,omitempty" mapstructure:"useCase"`
	UseCaseWeight *float64 `json:"useCaseWeight,omitempty" mapstructure:"useCaseWeight"`
}

// DimensionWeight returns the weight for a dimension and whether the query
// includes that dimension at all.
func (q Query) DimensionWeight(d Dimension) (float64, bool) {
	var w *Weighted
	switch d {
	case Performance:
		w = q.Performance
	case Memory:
		w = q.Memory
	case StartupTime:
		w = q.StartupTime
	case Ecosystem:
		w = q.Ecosystem
	case Concurrency:
		w = q.Concurrency
	}
	if w == nil {
		return 0, false
	}
	return w.Weight, true
}

// useCaseWeight resolves the effective use-case weight: 1 when omitted.
func (q Query) useCaseWeight() float64 {
	if q.UseCaseWeight == nil {
		return 1
	}
	return *q.UseCaseWeight
}
