package village

import "github.com/depilcher/WWVillage/internal/rng"

// Behavior is one kind's rule set. Behaviors hold no per-agent state; the
// agent they act for is passed in on every call.
type Behavior interface {
	// DoTurn applies one turn of the rule set for self.
	DoTurn(self *Agent)

	// ApparentKind is the kind self looks like to other agents right now.
	ApparentKind(self *Agent) Kind
}

// VictimPool exposes the living agents to attacking behaviors.
type VictimPool interface {
	Living() []*Agent
}

// selectVictim picks uniformly among the living agents that satisfy
// eligible, preserving pool order. It returns nil without touching the
// generator when nobody is eligible.
func selectVictim(gen rng.Generator, pool VictimPool, eligible func(*Agent) bool) *Agent {
	var candidates []*Agent
	for _, a := range pool.Living() {
		if eligible(a) {
			candidates = append(candidates, a)
		}
	}
	if len(candidates) == 0 {
		return nil
	}
	return candidates[gen.Generate(0, len(candidates)-1)]
}

func appearsHuman(a *Agent) bool {
	return a.ApparentKind() == KindHuman
}

func notWerewolf(a *Agent) bool {
	return a.Kind() != KindWerewolf
}

// wound takes dmg health from victim and reports whether it hit zero.
func wound(env *Env, actor, victim *Agent, dmg int, cause KillCause) bool {
	victim.SetHealth(victim.Health() - dmg)
	env.emit(Event{Kind: EventWounded, Actor: actor.ID(), Victim: victim.ID(), Amount: dmg, Cause: cause})
	return victim.Health() == HealthMin
}

func heal(env *Env, a *Agent, amount int) {
	a.SetHealth(a.Health() + amount)
	env.emit(Event{Kind: EventHealed, Actor: a.ID(), Victim: a.ID(), Amount: amount})
}

func kill(env *Env, actor, victim *Agent, cause KillCause) {
	victim.Kill(cause)
	env.emit(Event{Kind: EventKilled, Actor: actor.ID(), Victim: victim.ID(), Cause: cause})
}

func convert(env *Env, actor, victim *Agent, b Behavior) {
	victim.SetBehavior(b)
	env.emit(Event{Kind: EventConverted, Actor: actor.ID(), Victim: victim.ID(), Into: kindOf(b)})
}
