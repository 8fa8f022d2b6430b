package village

// Agent is one villager. Its kind is whatever its bound Behavior is.
type Agent struct {
	id                 int
	hunger             int
	health             int
	killedBy           KillCause
	behavior           Behavior
	convertedFromHuman bool
}

// NewAgent creates a living agent with no hunger and full health.
func NewAgent(id int, b Behavior) *Agent {
	return &Agent{
		id:       id,
		hunger:   HungerMin,
		health:   HealthMax,
		killedBy: KilledByNone,
		behavior: b,
	}
}

// ID returns the agent's stable identifier within its population.
func (a *Agent) ID() int {
	return a.id
}

// DoTurn runs the bound behavior's turn. Dead agents do nothing.
func (a *Agent) DoTurn() {
	if !a.Alive() {
		return
	}
	a.behavior.DoTurn(a)
}

// Behavior returns the currently bound behavior.
func (a *Agent) Behavior() Behavior {
	return a.behavior
}

// SetBehavior rebinds the agent, which is how conversion happens. Leaving the
// human kind latches ConvertedFromHuman for good.
func (a *Agent) SetBehavior(b Behavior) {
	if a.Kind() == KindHuman && kindOf(b) != KindHuman {
		a.convertedFromHuman = true
	}
	a.behavior = b
}

// Hunger returns the current hunger in [HungerMin, HungerMax].
func (a *Agent) Hunger() int {
	return a.hunger
}

// SetHunger sets hunger, clamped to [HungerMin, HungerMax].
func (a *Agent) SetHunger(v int) {
	a.hunger = clamp(v, HungerMin, HungerMax)
}

// Health returns the current health in [HealthMin, HealthMax].
func (a *Agent) Health() int {
	return a.health
}

// SetHealth sets health, clamped to [HealthMin, HealthMax]. Reaching zero
// does not kill by itself; the rule that caused the damage calls Kill.
func (a *Agent) SetHealth(v int) {
	a.health = clamp(v, HealthMin, HealthMax)
}

// KilledBy returns the cause of death, or KilledByNone.
func (a *Agent) KilledBy() KillCause {
	return a.killedBy
}

// Alive reports whether the agent still takes turns.
func (a *Agent) Alive() bool {
	return a.killedBy == KilledByNone
}

// Kill records the cause of death and zeroes health unconditionally.
func (a *Agent) Kill(cause KillCause) {
	a.killedBy = cause
	a.health = HealthMin
}

// Kind returns the true kind, derived from the bound behavior's type.
func (a *Agent) Kind() Kind {
	return kindOf(a.behavior)
}

// ApparentKind returns the kind the agent looks like to other agents.
func (a *Agent) ApparentKind() Kind {
	return a.behavior.ApparentKind(a)
}

// ConvertedFromHuman reports whether the agent ever stopped being human.
func (a *Agent) ConvertedFromHuman() bool {
	return a.convertedFromHuman
}

// Status returns a read-only copy of the agent's state.
func (a *Agent) Status() AgentStatus {
	return AgentStatus{
		ID:                 a.id,
		Kind:               a.Kind(),
		Hunger:             a.hunger,
		Health:             a.health,
		KilledBy:           a.killedBy,
		ConvertedFromHuman: a.convertedFromHuman,
	}
}

func kindOf(b Behavior) Kind {
	switch b.(type) {
	case *Human:
		return KindHuman
	case *Vampire:
		return KindVampire
	case *Werewolf:
		return KindWerewolf
	default:
		return KindUnknown
	}
}

func clamp(v, lo, hi int) int {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}
