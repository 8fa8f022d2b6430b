package village

// Werewolf passes for human and regenerates until the full moon, when it
// heals faster and feeds on one non-werewolf.
type Werewolf struct {
	env  *Env
	pool VictimPool
}

// NewWerewolf creates a werewolf behavior hunting in pool.
func NewWerewolf(env *Env, pool VictimPool) *Werewolf {
	return &Werewolf{env: env, pool: pool}
}

// FullMoon reports whether the turn in progress is a full-moon turn.
func (w *Werewolf) FullMoon() bool {
	return w.env.Rules.IsFullMoon(w.env.Clock.Current())
}

// DoTurn heals, and on a full moon also attacks one non-werewolf.
func (w *Werewolf) DoTurn(self *Agent) {
	if !w.FullMoon() {
		heal(w.env, self, w.env.Rules.WerewolfHeal)
		return
	}

	heal(w.env, self, w.env.Rules.WerewolfMoonHeal)

	victim := selectVictim(w.env.Rand, w.pool, notWerewolf)
	if victim == nil {
		return
	}

	if victim.Kind() == KindHuman {
		w.feedOnHuman(self, victim)
	} else {
		w.feedOnVampire(self, victim)
	}
}

// ApparentKind is werewolf on the full moon and human otherwise.
func (w *Werewolf) ApparentKind(*Agent) Kind {
	if w.FullMoon() {
		return KindWerewolf
	}
	return KindHuman
}

// feedOnHuman infects a human who survives the bite.
func (w *Werewolf) feedOnHuman(self, victim *Agent) {
	dmg := w.env.Rules.WerewolfHumanDamage.roll(w.env.Rand)
	if wound(w.env, self, victim, dmg, KilledByWerewolf) {
		kill(w.env, self, victim, KilledByWerewolf)
		return
	}
	convert(w.env, self, victim, NewWerewolf(w.env, w.pool))
}

func (w *Werewolf) feedOnVampire(self, victim *Agent) {
	dmg := w.env.Rules.WerewolfVampireDamage.roll(w.env.Rand)
	if wound(w.env, self, victim, dmg, KilledByWerewolf) {
		kill(w.env, self, victim, KilledByWerewolf)
	}
}
