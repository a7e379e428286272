package profile

// NoMatchScore is the sentinel returned by FindBest when the registry holds
// no profiles. It sits below any attainable score so the first registered
// profile always beats it.
const NoMatchScore = -1

// Result is the outcome of ranking a registry against a query. Language is
// empty and Profile nil only when the registry was empty.
type Result struct {
	Language string
	Score    float64
	Profile  *Profile
}

// Registry holds profiles in registration order. Iteration order is fixed
// and deterministic so ranking ties always resolve the same way.
type Registry struct {
	names    []string
	profiles map[string]*Profile
}

// NewRegistry creates an empty registry.
func NewRegistry() *Registry {
	return &Registry{profiles: map[string]*Profile{}}
}

// Register adds a profile. Registering the same name again replaces the
// profile but keeps its original position in the ranking order.
func (r *Registry) Register(p *Profile) {
	if _, exists := r.profiles[p.Name]; !exists {
		r.names = append(r.names, p.Name)
	}
	r.profiles[p.Name] = p
}

// Get returns the profile registered under name.
func (r *Registry) Get(name string) (*Profile, bool) {
	p, ok := r.profiles[name]
	return p, ok
}

// Names returns the registered names in registration order.
func (r *Registry) Names() []string {
	names := make([]string, len(r.names))
	copy(names, r.names)
	return names
}

// Len returns the number of registered profiles.
func (r *Registry) Len() int {
	return len(r.names)
}

// FindBest scores every profile against the query and returns the winner.
// Comparison is strictly-greater, so ties keep the earlier-registered
// profile. An empty registry yields the NoMatchScore sentinel instead of an
// error.
func (r *Registry) FindBest(q Query) Result {
	best := Result{Score: NoMatchScore}
	for _, name := range r.names {
		p := r.profiles[name]
		if s := p.Score(q); s > best.Score {
			best = Result{Language: name, Score: s, Profile: p}
		}
	}
	return best
}

// Builtin constructs the registry of stock language profiles. The ratings
// and use-case scores are fixed values that existing configuration and
// callers depend on.
func Builtin() *Registry {
	r := NewRegistry()

	r.Register(New("javascript", map[Dimension]float64{
		Performance: 6,
		Memory:      5,
		StartupTime: 7,
		Ecosystem:   9,
		Concurrency: 6,
	}).
		AddUseCase("web", 9).
		AddUseCase("api", 8).
		AddUseCase("scripting", 9).
		AddUseCase("data", 6).
		AddLibrary("express", "web framework", 9).
		AddLibrary("axios", "http client", 8))

	r.Register(New("python", map[Dimension]float64{
		Performance: 5,
		Memory:      6,
		StartupTime: 6,
		Ecosystem:   9,
		Concurrency: 5,
	}).
		AddUseCase("data", 9).
		AddUseCase("ml", 10).
		AddUseCase("scripting", 9).
		AddUseCase("web", 6).
		AddLibrary("fastapi", "web framework", 8).
		AddLibrary("pandas", "data analysis", 9))

	r.Register(New("go", map[Dimension]float64{
		Performance: 8,
		Memory:      8,
		StartupTime: 9,
		Ecosystem:   7,
		Concurrency: 10,
	}).
		AddUseCase("performance", 9).
		AddUseCase("concurrency", 10).
		AddUseCase("api", 8).
		AddUseCase("system", 8).
		AddLibrary("gin", "web framework", 8).
		AddLibrary("cobra", "cli framework", 9))

	r.Register(New("rust", map[Dimension]float64{
		Performance: 10,
		Memory:      9,
		StartupTime: 7,
		Ecosystem:   6,
		Concurrency: 9,
	}).
		AddUseCase("system", 10).
		AddUseCase("performance", 10).
		AddUseCase("concurrency", 9).
		AddUseCase("embedded", 9).
		AddLibrary("tokio", "async runtime", 9).
		AddLibrary("actix-web", "web framework", 8))

	return r
}
