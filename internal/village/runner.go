package village

import (
	"fmt"
	"log/slog"
)

// DefaultMaxPopulation caps the total starting population when a Setup
// does not set its own ceiling.
const DefaultMaxPopulation = 10000

// Setup is the starting population and turn limit of a run.
type Setup struct {
	Humans     int `json:"humans" yaml:"humans"`
	Vampires   int `json:"vampires" yaml:"vampires"`
	Werewolves int `json:"werewolves" yaml:"werewolves"`
	Turns      int `json:"turns" yaml:"turns"`

	// MaxPopulation bounds Humans+Vampires+Werewolves. Zero means
	// DefaultMaxPopulation.
	MaxPopulation int `json:"max_population,omitempty" yaml:"max_population,omitempty"`
}

// Validate rejects negative counts and populations above the ceiling. The
// engine itself assumes a validated setup; callers collecting input run
// this first.
func (s Setup) Validate() error {
	fields := []struct {
		name  string
		value int
	}{
		{"humans", s.Humans},
		{"vampires", s.Vampires},
		{"werewolves", s.Werewolves},
		{"turns", s.Turns},
	}
	for _, f := range fields {
		if f.value < 0 {
			return fmt.Errorf("%w: %s must be non-negative, got %d", ErrInvalidSetup, f.name, f.value)
		}
	}

	limit := s.MaxPopulation
	switch {
	case limit < 0:
		return fmt.Errorf("%w: max population must be non-negative, got %d", ErrInvalidSetup, limit)
	case limit == 0:
		limit = DefaultMaxPopulation
	}

	// total never exceeds limit, so limit-total cannot overflow.
	total := 0
	for _, n := range []int{s.Humans, s.Vampires, s.Werewolves} {
		if n > limit-total {
			return fmt.Errorf("%w: population exceeds the maximum of %d", ErrInvalidSetup, limit)
		}
		total += n
	}
	return nil
}

// State is the runner's lifecycle state.
type State int

const (
	StateRunning State = iota
	StateTerminated
)

func (s State) String() string {
	if s == StateTerminated {
		return "terminated"
	}
	return "running"
}

// Reason explains why a run terminated.
type Reason string

const (
	ReasonNone          Reason = ""
	ReasonTurnLimit     Reason = "turn-limit"
	ReasonAllDead       Reason = "all-dead"
	ReasonAllVampires   Reason = "all-vampires"
	ReasonAllWerewolves Reason = "all-werewolves"
)

// AgentStatus is the reportable state of one agent.
type AgentStatus struct {
	ID                 int
	Kind               Kind
	Hunger             int
	Health             int
	KilledBy           KillCause
	ConvertedFromHuman bool
}

// Result is what a finished run exposes to reporting.
type Result struct {
	Turns  int
	Reason Reason
	Agents []AgentStatus
}

// Runner drives turns until the turn limit or an early-termination
// condition. Once terminated it stays terminated.
type Runner struct {
	env    *Env
	pop    *Population
	turns  int
	state  State
	reason Reason
	logger *slog.Logger
}

// Option configures a Runner.
type Option func(*Runner)

// WithLogger sets the logger used for turn and termination records.
func WithLogger(l *slog.Logger) Option {
	return func(r *Runner) {
		if l != nil {
			r.logger = l
		}
	}
}

// New resets env's clock, builds the population described by s and returns
// a runner for it.
func New(s Setup, env *Env, opts ...Option) *Runner {
	env.Clock.Reset()
	pop := NewPopulation(env, s.Humans, s.Vampires, s.Werewolves)
	return NewRunner(pop, s.Turns, opts...)
}

// NewRunner creates a runner over an existing population.
func NewRunner(pop *Population, turns int, opts ...Option) *Runner {
	r := &Runner{
		env:    pop.Env(),
		pop:    pop,
		turns:  turns,
		state:  StateRunning,
		logger: slog.New(slog.DiscardHandler),
	}
	for _, opt := range opts {
		opt(r)
	}
	return r
}

// Population returns the population being simulated.
func (r *Runner) Population() *Population {
	return r.pop
}

// State returns the current lifecycle state.
func (r *Runner) State() State {
	return r.state
}

// Reason returns why the run terminated, or ReasonNone while running.
func (r *Runner) Reason() Reason {
	return r.reason
}

// Turn returns the number of turns completed so far.
func (r *Runner) Turn() int {
	return r.env.Clock.Current()
}

// Step checks the termination conditions and, if none holds, resolves one
// turn and advances the clock. It returns false once the run is terminated.
func (r *Runner) Step() bool {
	if r.state == StateTerminated {
		return false
	}

	if reason := r.terminationReason(); reason != ReasonNone {
		r.state = StateTerminated
		r.reason = reason
		r.logger.Info("simulation terminated",
			"turns", r.Turn(),
			"reason", string(reason),
		)
		return false
	}

	r.pop.DoTurn()
	r.env.Clock.Advance()

	c := r.pop.Census()
	r.logger.Debug("turn resolved",
		"turn", r.Turn()-1,
		"living", c.Living(),
		"humans", c.Humans,
		"vampires", c.Vampires,
		"werewolves", c.Werewolves,
	)
	return true
}

// Run steps until terminated.
func (r *Runner) Run() {
	for r.Step() {
	}
}

func (r *Runner) terminationReason() Reason {
	switch {
	case r.Turn() >= r.turns:
		return ReasonTurnLimit
	case r.pop.AllDead():
		return ReasonAllDead
	case r.pop.AllOfKind(KindVampire):
		return ReasonAllVampires
	case r.pop.AllOfKind(KindWerewolf):
		return ReasonAllWerewolves
	default:
		return ReasonNone
	}
}

// Result returns the turns completed, the termination reason and every
// agent's status ordered by ID.
func (r *Runner) Result() (Result, error) {
	agents, err := r.pop.Snapshot()
	if err != nil {
		return Result{}, fmt.Errorf("snapshot population: %w", err)
	}
	return Result{
		Turns:  r.Turn(),
		Reason: r.reason,
		Agents: agents,
	}, nil
}
