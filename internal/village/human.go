package village

// Human gets hungrier every turn and starves once hunger tops out.
type Human struct {
	env *Env
}

// NewHuman creates the human behavior.
func NewHuman(env *Env) *Human {
	return &Human{env: env}
}

// DoTurn raises hunger, or applies starvation damage once hunger is maxed.
func (h *Human) DoTurn(self *Agent) {
	if self.Hunger() < HungerMax {
		self.SetHunger(self.Hunger() + h.env.Rules.HungerPerTurn)
	} else {
		wound(h.env, self, self, h.env.Rules.StarvationDamage, KilledByStarvation)
	}

	if self.Health() == HealthMin {
		kill(h.env, self, self, KilledByStarvation)
	}
}

// ApparentKind is always human.
func (h *Human) ApparentKind(*Agent) Kind {
	return KindHuman
}
