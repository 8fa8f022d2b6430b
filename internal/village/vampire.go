package village

// Outcomes of a vampire's attempt on a true human.
const (
	outcomeConvert = iota
	outcomeKill
	outcomeDrain
)

// Vampire attacks one living agent that looks human every turn.
type Vampire struct {
	env  *Env
	pool VictimPool
}

// NewVampire creates a vampire behavior hunting in pool.
func NewVampire(env *Env, pool VictimPool) *Vampire {
	return &Vampire{env: env, pool: pool}
}

// DoTurn picks a victim that looks human. A werewolf in human form only
// takes damage; a true human is converted, killed or drained.
func (v *Vampire) DoTurn(self *Agent) {
	victim := selectVictim(v.env.Rand, v.pool, appearsHuman)
	if victim == nil {
		return
	}

	if victim.Kind() == KindWerewolf {
		v.biteWerewolf(self, victim)
		return
	}

	switch v.env.Rand.Generate(outcomeConvert, outcomeDrain) {
	case outcomeConvert:
		v.convert(self, victim)
	case outcomeKill:
		v.kill(self, victim)
	case outcomeDrain:
		v.drain(self, victim)
	}
}

// ApparentKind is always vampire.
func (v *Vampire) ApparentKind(*Agent) Kind {
	return KindVampire
}

func (v *Vampire) convert(self, victim *Agent) {
	convert(v.env, self, victim, NewVampire(v.env, v.pool))
	self.SetHunger(self.Hunger() / 2)
	heal(v.env, self, v.env.Rules.ConversionHeal)
}

func (v *Vampire) kill(self, victim *Agent) {
	kill(v.env, self, victim, KilledByVampire)
	heal(v.env, self, v.env.Rules.KillHeal)
}

// drain takes a random bite without converting. A bite that empties the
// victim pays the kill reward instead of the drain reward.
func (v *Vampire) drain(self, victim *Agent) {
	dmg := v.env.Rules.VampireDrainDamage.roll(v.env.Rand)
	if wound(v.env, self, victim, dmg, KilledByVampire) {
		v.kill(self, victim)
		return
	}
	heal(v.env, self, dmg/v.env.Rules.DrainRatio)
}

func (v *Vampire) biteWerewolf(self, victim *Agent) {
	dmg := v.env.Rules.VampireWerewolfDamage.roll(v.env.Rand)
	if wound(v.env, self, victim, dmg, KilledByVampire) {
		kill(v.env, self, victim, KilledByVampire)
	}
}
