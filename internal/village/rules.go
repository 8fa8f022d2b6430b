package village

import (
	"fmt"

	"github.com/depilcher/WWVillage/internal/rng"
)

// Agent attribute bounds. Setters clamp to these silently.
const (
	HungerMin = 0
	HungerMax = 9
	HealthMin = 0
	HealthMax = 99
)

// Range is an inclusive roll range.
type Range struct {
	Min int `json:"min" yaml:"min"`
	Max int `json:"max" yaml:"max"`
}

func (r Range) roll(g rng.Generator) int {
	return g.Generate(r.Min, r.Max)
}

func (r Range) String() string {
	return fmt.Sprintf("[%d, %d]", r.Min, r.Max)
}

// Rules holds every tunable number used by the behaviors.
type Rules struct {
	// HungerPerTurn is added to a human's hunger each turn until HungerMax.
	HungerPerTurn int `json:"hunger_per_turn" yaml:"hunger_per_turn"`

	// StarvationDamage is the health a human at HungerMax loses per turn.
	StarvationDamage int `json:"starvation_damage" yaml:"starvation_damage"`

	// FullMoonCycle is the length of the lunar cycle in turns. The full
	// moon falls on the last turn of each cycle.
	FullMoonCycle int `json:"full_moon_cycle" yaml:"full_moon_cycle"`

	// WerewolfHeal and WerewolfMoonHeal are the werewolf's per-turn regeneration
	// outside and during the full moon.
	WerewolfHeal     int `json:"werewolf_heal" yaml:"werewolf_heal"`
	WerewolfMoonHeal int `json:"werewolf_moon_heal" yaml:"werewolf_moon_heal"`

	// WerewolfHumanDamage is dealt to a human victim on the full moon.
	WerewolfHumanDamage Range `json:"werewolf_human_damage" yaml:"werewolf_human_damage"`

	// WerewolfVampireDamage is dealt to a vampire victim on the full moon.
	WerewolfVampireDamage Range `json:"werewolf_vampire_damage" yaml:"werewolf_vampire_damage"`

	// VampireWerewolfDamage is dealt when a vampire bites a werewolf that
	// looked human.
	VampireWerewolfDamage Range `json:"vampire_werewolf_damage" yaml:"vampire_werewolf_damage"`

	// VampireDrainDamage is taken from a human on a failed conversion.
	VampireDrainDamage Range `json:"vampire_drain_damage" yaml:"vampire_drain_damage"`

	// DrainRatio is how much drained health buys one point for the vampire.
	DrainRatio int `json:"drain_ratio" yaml:"drain_ratio"`

	ConversionHeal int `json:"conversion_heal" yaml:"conversion_heal"`
	KillHeal       int `json:"kill_heal" yaml:"kill_heal"`
}

// DefaultRules returns the standard village rules.
func DefaultRules() Rules {
	return Rules{
		HungerPerTurn:         1,
		StarvationDamage:      5,
		FullMoonCycle:         7,
		WerewolfHeal:          5,
		WerewolfMoonHeal:      10,
		WerewolfHumanDamage:   Range{Min: 30, Max: 80},
		WerewolfVampireDamage: Range{Min: 10, Max: 30},
		VampireWerewolfDamage: Range{Min: 5, Max: 40},
		VampireDrainDamage:    Range{Min: 0, Max: 25},
		DrainRatio:            5,
		ConversionHeal:        10,
		KillHeal:              50,
	}
}

// IsFullMoon reports whether turn is a full-moon turn. With the default
// cycle of 7 that is turns 6, 13, 20, ...
func (r Rules) IsFullMoon(turn int) bool {
	return turn%r.FullMoonCycle == r.FullMoonCycle-1
}

// Validate checks that every amount is usable by the behaviors.
func (r Rules) Validate() error {
	if r.FullMoonCycle < 1 {
		return fmt.Errorf("%w: full_moon_cycle must be at least 1, got %d", ErrInvalidRules, r.FullMoonCycle)
	}
	if r.DrainRatio < 1 {
		return fmt.Errorf("%w: drain_ratio must be at least 1, got %d", ErrInvalidRules, r.DrainRatio)
	}

	amounts := map[string]int{
		"hunger_per_turn":    r.HungerPerTurn,
		"starvation_damage":  r.StarvationDamage,
		"werewolf_heal":      r.WerewolfHeal,
		"werewolf_moon_heal": r.WerewolfMoonHeal,
		"conversion_heal":    r.ConversionHeal,
		"kill_heal":          r.KillHeal,
	}
	for name, v := range amounts {
		if v < 0 {
			return fmt.Errorf("%w: %s must be non-negative, got %d", ErrInvalidRules, name, v)
		}
	}

	ranges := map[string]Range{
		"werewolf_human_damage":   r.WerewolfHumanDamage,
		"werewolf_vampire_damage": r.WerewolfVampireDamage,
		"vampire_werewolf_damage": r.VampireWerewolfDamage,
		"vampire_drain_damage":    r.VampireDrainDamage,
	}
	for name, rg := range ranges {
		if rg.Min < 0 || rg.Min > rg.Max {
			return fmt.Errorf("%w: %s must satisfy 0 <= min <= max, got %s", ErrInvalidRules, name, rg)
		}
	}

	return nil
}
