package simulation

import (
	"github.com/depilcher/WWVillage/internal/village"
)

// Scenario defines one simulated run.
type Scenario struct {
	Name  string
	Setup village.Setup

	// Seed feeds rng.NewSource. Ignored when Script is set.
	Seed int64

	// Script, when non-nil, replaces the seeded source with an
	// rng.Sequence replaying these values. The run fails the test if the
	// script runs out.
	Script []int

	// Rules overrides village.DefaultRules when non-nil.
	Rules *village.Rules

	// BeforeTurn, when non-nil, is called before every Step while the run
	// is still going, including the Step that ends it.
	BeforeTurn func(turn int, pop *village.Population)
}

// TurnSnapshot is the state of the village after one turn.
type TurnSnapshot struct {
	Index  int
	Census village.Census
	Agents []village.AgentStatus // ordered by ID
	Events []village.Event
}

// SimulationResult captures the initial state, every turn and the final
// result of a run.
type SimulationResult struct {
	Name    string
	Rules   village.Rules
	Initial []village.AgentStatus
	Turns   []TurnSnapshot
	Final   village.Result
	Rolls   int // generator draws, only counted for scripted runs
}

// Last returns the final snapshot, or the initial state as a snapshot when
// no turn ran.
func (r SimulationResult) Last() TurnSnapshot {
	if len(r.Turns) == 0 {
		return TurnSnapshot{Index: -1, Agents: r.Initial}
	}
	return r.Turns[len(r.Turns)-1]
}

// Events returns every event of the run in order.
func (r SimulationResult) Events() []village.Event {
	var all []village.Event
	for _, ts := range r.Turns {
		all = append(all, ts.Events...)
	}
	return all
}
