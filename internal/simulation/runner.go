package simulation

import (
	"testing"

	"github.com/depilcher/WWVillage/internal/rng"
	"github.com/depilcher/WWVillage/internal/village"
)

// Runner executes scenarios against the real engine.
type Runner struct {
	t *testing.T
}

// NewRunner creates a runner bound to t. Failures inside a run are reported
// through t.
func NewRunner(t *testing.T) *Runner {
	t.Helper()
	return &Runner{t: t}
}

// Run executes scenario to termination and returns its history.
func (r *Runner) Run(scenario Scenario) (result SimulationResult) {
	r.t.Helper()

	rules := village.DefaultRules()
	if scenario.Rules != nil {
		rules = *scenario.Rules
	}
	if err := rules.Validate(); err != nil {
		r.t.Fatalf("%s: %v", scenario.Name, err)
	}
	if err := scenario.Setup.Validate(); err != nil {
		r.t.Fatalf("%s: %v", scenario.Name, err)
	}

	var gen rng.Generator = rng.NewSource(scenario.Seed)
	var seq *rng.Sequence
	if scenario.Script != nil {
		seq = rng.NewSequence(scenario.Script...)
		gen = seq
	}

	defer func() {
		if p := recover(); p != nil {
			r.t.Fatalf("%s: run panicked after %d turns: %v", scenario.Name, len(result.Turns), p)
		}
	}()

	env := village.NewEnv(gen, rules)
	var pending []village.Event
	env.Events = func(ev village.Event) { pending = append(pending, ev) }

	runner := village.New(scenario.Setup, env)
	pop := runner.Population()

	result = SimulationResult{
		Name:    scenario.Name,
		Rules:   rules,
		Initial: r.snapshot(scenario.Name, pop),
	}

	for {
		turn := runner.Turn()
		if scenario.BeforeTurn != nil && runner.State() == village.StateRunning {
			scenario.BeforeTurn(turn, pop)
		}
		if !runner.Step() {
			break
		}
		result.Turns = append(result.Turns, TurnSnapshot{
			Index:  turn,
			Census: pop.Census(),
			Agents: r.snapshot(scenario.Name, pop),
			Events: pending,
		})
		pending = nil
	}

	final, err := runner.Result()
	if err != nil {
		r.t.Fatalf("%s: %v", scenario.Name, err)
	}
	result.Final = final
	if seq != nil {
		result.Rolls = seq.Calls()
	}
	return result
}

func (r *Runner) snapshot(name string, pop *village.Population) []village.AgentStatus {
	r.t.Helper()
	agents, err := pop.Snapshot()
	if err != nil {
		r.t.Fatalf("%s: snapshot: %v", name, err)
	}
	return agents
}
