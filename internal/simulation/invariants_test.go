package simulation_test

import (
	"fmt"
	"testing"

	"github.com/depilcher/WWVillage/internal/simulation"
	"github.com/depilcher/WWVillage/internal/village"
)

// TestInvariantsAcrossSeeds runs mixed villages under many seeds and checks
// every history-wide invariant.
func TestInvariantsAcrossSeeds(t *testing.T) {
	setups := []village.Setup{
		{Humans: 10, Vampires: 2, Werewolves: 2, Turns: 60},
		{Humans: 30, Vampires: 1, Werewolves: 1, Turns: 100},
		{Humans: 3, Vampires: 5, Werewolves: 5, Turns: 40},
		{Humans: 50, Vampires: 0, Werewolves: 3, Turns: 50},
		{Humans: 0, Vampires: 4, Werewolves: 4, Turns: 80},
	}

	for _, setup := range setups {
		for seed := int64(1); seed <= 8; seed++ {
			name := fmt.Sprintf("h%d-v%d-w%d/seed-%d", setup.Humans, setup.Vampires, setup.Werewolves, seed)
			t.Run(name, func(t *testing.T) {
				r := simulation.NewRunner(t)
				result := r.Run(simulation.Scenario{Name: name, Setup: setup, Seed: seed})
				simulation.AssertInvariants(t, result, setup.Turns)
			})
		}
	}
}

// TestSameSeedSameHistory checks that a run is a pure function of its seed.
func TestSameSeedSameHistory(t *testing.T) {
	scenario := simulation.Scenario{
		Name:  "replay",
		Setup: village.Setup{Humans: 15, Vampires: 3, Werewolves: 3, Turns: 70},
		Seed:  2024,
	}

	a := simulation.NewRunner(t).Run(scenario)
	b := simulation.NewRunner(t).Run(scenario)
	simulation.AssertSameOutcome(t, a, b)
}

// TestCustomRulesKeepInvariants runs a harsher rule set.
func TestCustomRulesKeepInvariants(t *testing.T) {
	rules := village.DefaultRules()
	rules.FullMoonCycle = 2
	rules.StarvationDamage = 20
	rules.WerewolfHumanDamage = village.Range{Min: 60, Max: 99}
	rules.KillHeal = 0

	setup := village.Setup{Humans: 12, Vampires: 2, Werewolves: 2, Turns: 40}
	for seed := int64(1); seed <= 5; seed++ {
		name := fmt.Sprintf("harsh/seed-%d", seed)
		t.Run(name, func(t *testing.T) {
			result := simulation.NewRunner(t).Run(simulation.Scenario{
				Name:  name,
				Setup: setup,
				Seed:  seed,
				Rules: &rules,
			})
			simulation.AssertInvariants(t, result, setup.Turns)
		})
	}
}
