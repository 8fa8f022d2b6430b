package village

import "fmt"

// Population owns every agent of a run, living or dead. It is the
// VictimPool handed to attacking behaviors.
type Population struct {
	env    *Env
	agents []*Agent
}

// Census counts living agents by true kind, plus the dead.
type Census struct {
	Humans     int
	Vampires   int
	Werewolves int
	Dead       int
}

// Living returns the number of living agents.
func (c Census) Living() int {
	return c.Humans + c.Vampires + c.Werewolves
}

// NewPopulation creates humans, then vampires, then werewolves, with IDs
// assigned from 1 in that order. Negative counts create nobody.
func NewPopulation(env *Env, humans, vampires, werewolves int) *Population {
	p := &Population{env: env}
	p.agents = make([]*Agent, 0, max(0, humans)+max(0, vampires)+max(0, werewolves))

	for i := 0; i < humans; i++ {
		p.add(NewHuman(env))
	}
	for i := 0; i < vampires; i++ {
		p.add(NewVampire(env, p))
	}
	for i := 0; i < werewolves; i++ {
		p.add(NewWerewolf(env, p))
	}

	return p
}

func (p *Population) add(b Behavior) *Agent {
	a := NewAgent(len(p.agents)+1, b)
	p.agents = append(p.agents, a)
	return a
}

// Env returns the run environment the population was built with.
func (p *Population) Env() *Env {
	return p.env
}

// Len returns the population size, dead included. It never changes.
func (p *Population) Len() int {
	return len(p.agents)
}

// Agents returns every agent in the current turn order.
func (p *Population) Agents() []*Agent {
	out := make([]*Agent, len(p.agents))
	copy(out, p.agents)
	return out
}

// Living returns the living agents in the current turn order. The result
// reflects every change already made in the turn in progress.
func (p *Population) Living() []*Agent {
	var living []*Agent
	for _, a := range p.agents {
		if a.Alive() {
			living = append(living, a)
		}
	}
	return living
}

// DoTurn reshuffles the turn order and lets every agent act in it, one
// after another, each seeing what the previous ones did.
func (p *Population) DoTurn() {
	p.shuffle()
	for _, a := range p.agents {
		a.DoTurn()
	}
}

// shuffle is a Fisher-Yates permutation drawn from the run generator.
func (p *Population) shuffle() {
	for i := len(p.agents) - 1; i > 0; i-- {
		j := p.env.Rand.Generate(0, i)
		p.agents[i], p.agents[j] = p.agents[j], p.agents[i]
	}
}

// AllDead reports whether nobody is left alive.
func (p *Population) AllDead() bool {
	for _, a := range p.agents {
		if a.Alive() {
			return false
		}
	}
	return true
}

// AllOfKind reports whether every living agent's true kind is k. It is
// vacuously true when nobody is alive.
func (p *Population) AllOfKind(k Kind) bool {
	for _, a := range p.agents {
		if a.Alive() && a.Kind() != k {
			return false
		}
	}
	return true
}

// Census counts the population.
func (p *Population) Census() Census {
	var c Census
	for _, a := range p.agents {
		if !a.Alive() {
			c.Dead++
			continue
		}
		switch a.Kind() {
		case KindHuman:
			c.Humans++
		case KindVampire:
			c.Vampires++
		case KindWerewolf:
			c.Werewolves++
		}
	}
	return c
}

// Snapshot returns every agent's status ordered by ID. It fails if any
// agent is bound to a behavior outside the known kinds.
func (p *Population) Snapshot() ([]AgentStatus, error) {
	out := make([]AgentStatus, len(p.agents))
	for _, a := range p.agents {
		s := a.Status()
		if s.Kind == KindUnknown {
			return nil, fmt.Errorf("agent %d bound to %T: %w", a.ID(), a.Behavior(), ErrUnclassifiedBehavior)
		}
		out[a.ID()-1] = s
	}
	return out, nil
}
