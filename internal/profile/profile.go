// Package profile provides the language-profile catalog and the weighted
// suitability scorer used to rank implementation languages against a
// requirement query.
package profile

// Dimension is one of the fixed characteristic axes every profile rates.
type Dimension string

const (
	Performance Dimension = "performance"
	Memory      Dimension = "memory"
	StartupTime Dimension = "startupTime"
	Ecosystem   Dimension = "ecosystem"
	Concurrency Dimension = "concurrency"
)

// DefaultRating is the neutral midpoint on the 1-10 scale. Dimensions not
// supplied at construction time are filled with it, never left absent.
const DefaultRating = 5

// Dimensions returns the fixed dimension set in canonical order.
func Dimensions() []Dimension {
	return []Dimension{Performance, Memory, StartupTime, Ecosystem, Concurrency}
}

// UseCase is a named affinity with a 1-10 score. Order of use cases on a
// profile is preserved; lookup by name returns the first match.
type UseCase struct {
	Name  string  `json:"name" yaml:"name"`
	Score float64 `json:"score" yaml:"score"`
}

// Library is an informational note about a library available for the
// language. Not consumed by scoring.
type Library struct {
	Purpose  string  `json:"purpose" yaml:"purpose"`
	Maturity float64 `json:"maturity" yaml:"maturity"`
}

// Profile describes one implementation language. Profiles are assembled with
// New plus the fluent Add* methods and treated as immutable once registered.
type Profile struct {
	Name            string
	Characteristics map[Dimension]float64
	UseCases        []UseCase
	Libraries       map[string]Library
}

// New creates a profile with every characteristic defaulted to DefaultRating.
// overrides may supply a subset of dimensions; each key overrides only its
// own dimension and the rest keep the default. A nil overrides map is fine.
func New(name string, overrides map[Dimension]float64) *Profile {
	chars := make(map[Dimension]float64, len(Dimensions()))
	for _, d := range Dimensions() {
		chars[d] = DefaultRating
	}
	for d, v := range overrides {
		if _, ok := chars[d]; ok {
			chars[d] = v
		}
	}
	return &Profile{
		Name:            name,
		Characteristics: chars,
		Libraries:       map[string]Library{},
	}
}

// AddUseCase appends a use-case affinity and returns the profile for
// chaining. No deduplication and no range validation; callers are expected
// to stay within the 1-10 convention.
func (p *Profile) AddUseCase(name string, score float64) *Profile {
	p.UseCases = append(p.UseCases, UseCase{Name: name, Score: score})
	return p
}

// AddLibrary records a library note and returns the profile for chaining.
// Re-adding a name overwrites the previous entry.
func (p *Profile) AddLibrary(name, purpose string, maturity float64) *Profile {
	p.Libraries[name] = Library{Purpose: purpose, Maturity: maturity}
	return p
}

// UseCaseScore returns the score of the first use case with the given name.
func (p *Profile) UseCaseScore(name string) (float64, bool) {
	for _, uc := range p.UseCases {
		if uc.Name == name {
			return uc.Score, true
		}
	}
	return 0, false
}

// Portable is a serialization-friendly snapshot of a profile.
type Portable struct {
	Name            string             `json:"name" yaml:"name"`
	Characteristics map[string]float64 `json:"characteristics" yaml:"characteristics"`
	UseCases        []UseCase          `json:"useCases" yaml:"useCases"`
	Libraries       map[string]Library `json:"libraries" yaml:"libraries"`
}

// Portable returns a pure snapshot of the profile suitable for display or
// persistence. The snapshot shares nothing with the profile; mutating it
// does not affect the registry.
func (p *Profile) Portable() Portable {
	chars := make(map[string]float64, len(p.Characteristics))
	for d, v := range p.Characteristics {
		chars[string(d)] = v
	}
	useCases := make([]UseCase, len(p.UseCases))
	copy(useCases, p.UseCases)
	libs := make(map[string]Library, len(p.Libraries))
	for name, lib := range p.Libraries {
		libs[name] = lib
	}
	return Portable{
		Name:            p.Name,
		Characteristics: chars,
		UseCases:        useCases,
		Libraries:       libs,
	}
}
