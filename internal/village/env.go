package village

import "github.com/depilcher/WWVillage/internal/rng"

// Env is the run-scoped state every behavior shares: one generator, one
// clock, one rule set and an optional event sink.
type Env struct {
	Rand   rng.Generator
	Clock  *Clock
	Rules  Rules
	Events EventSink
}

// NewEnv creates an Env with a fresh clock and no event sink.
func NewEnv(gen rng.Generator, rules Rules) *Env {
	return &Env{
		Rand:  gen,
		Clock: &Clock{},
		Rules: rules,
	}
}

func (e *Env) emit(ev Event) {
	if e.Events == nil {
		return
	}
	ev.Turn = e.Clock.Current()
	e.Events(ev)
}
