package simulation

import (
	"reflect"
	"testing"

	"github.com/depilcher/WWVillage/internal/village"
)

// AssertAttributesInBounds asserts hunger stays in [0,9] and health in
// [0,99] for every agent after every turn.
func AssertAttributesInBounds(t *testing.T, result SimulationResult) {
	t.Helper()
	for _, ts := range result.Turns {
		for _, a := range ts.Agents {
			if a.Hunger < village.HungerMin || a.Hunger > village.HungerMax {
				t.Errorf("AssertAttributesInBounds: turn %d: agent %d hunger %d", ts.Index, a.ID, a.Hunger)
			}
			if a.Health < village.HealthMin || a.Health > village.HealthMax {
				t.Errorf("AssertAttributesInBounds: turn %d: agent %d health %d", ts.Index, a.ID, a.Health)
			}
		}
	}
}

// AssertDeathConsistent asserts that an agent has zero health exactly when
// it is dead.
func AssertDeathConsistent(t *testing.T, result SimulationResult) {
	t.Helper()
	for _, ts := range result.Turns {
		for _, a := range ts.Agents {
			dead := a.KilledBy != village.KilledByNone
			if dead && a.Health != 0 {
				t.Errorf("AssertDeathConsistent: turn %d: agent %d killed by %v with health %d", ts.Index, a.ID, a.KilledBy, a.Health)
			}
			if !dead && a.Health == 0 {
				t.Errorf("AssertDeathConsistent: turn %d: agent %d alive with no health", ts.Index, a.ID)
			}
		}
	}
}

// AssertDeadStayInert asserts that once an agent dies its recorded status
// never changes again.
func AssertDeadStayInert(t *testing.T, result SimulationResult) {
	t.Helper()
	deadAt := make(map[int]village.AgentStatus)
	for _, ts := range result.Turns {
		for _, a := range ts.Agents {
			if prev, ok := deadAt[a.ID]; ok {
				if a != prev {
					t.Errorf("AssertDeadStayInert: turn %d: dead agent %d changed from %+v to %+v", ts.Index, a.ID, prev, a)
				}
				continue
			}
			if a.KilledBy != village.KilledByNone {
				deadAt[a.ID] = a
			}
		}
	}
}

// AssertPopulationConstant asserts that nobody is ever added or removed.
func AssertPopulationConstant(t *testing.T, result SimulationResult) {
	t.Helper()
	want := len(result.Initial)
	for _, ts := range result.Turns {
		c := ts.Census
		if len(ts.Agents) != want || c.Living()+c.Dead != want {
			t.Errorf("AssertPopulationConstant: turn %d: %d agents (census %+v), want %d", ts.Index, len(ts.Agents), c, want)
		}
	}
}

// AssertConversionLatched asserts that the converted-from-human flag is
// only ever set on non-humans and is never cleared.
func AssertConversionLatched(t *testing.T, result SimulationResult) {
	t.Helper()
	flagged := make(map[int]bool)
	for _, ts := range result.Turns {
		for _, a := range ts.Agents {
			if flagged[a.ID] && !a.ConvertedFromHuman {
				t.Errorf("AssertConversionLatched: turn %d: agent %d lost its conversion flag", ts.Index, a.ID)
			}
			if a.ConvertedFromHuman && a.Kind == village.KindHuman {
				t.Errorf("AssertConversionLatched: turn %d: agent %d is flagged but still human", ts.Index, a.ID)
			}
			if a.ConvertedFromHuman {
				flagged[a.ID] = true
			}
		}
	}
}

// AssertOnlyHumansConverted asserts that every conversion targets an agent
// that started the run human, and that no agent changes kind twice.
func AssertOnlyHumansConverted(t *testing.T, result SimulationResult) {
	t.Helper()
	initial := make(map[int]village.Kind, len(result.Initial))
	for _, a := range result.Initial {
		initial[a.ID] = a.Kind
	}
	converted := make(map[int]bool)
	for _, ev := range result.Events() {
		if ev.Kind != village.EventConverted {
			continue
		}
		if initial[ev.Victim] != village.KindHuman {
			t.Errorf("AssertOnlyHumansConverted: turn %d: agent %d started as %v", ev.Turn, ev.Victim, initial[ev.Victim])
		}
		if converted[ev.Victim] {
			t.Errorf("AssertOnlyHumansConverted: turn %d: agent %d converted twice", ev.Turn, ev.Victim)
		}
		converted[ev.Victim] = true
	}
}

// AssertWerewolvesFeedOnlyUnderFullMoon asserts that every werewolf attack
// happens on a full-moon turn.
func AssertWerewolvesFeedOnlyUnderFullMoon(t *testing.T, result SimulationResult) {
	t.Helper()
	for _, ev := range result.Events() {
		if ev.Kind != village.EventWounded || ev.Cause != village.KilledByWerewolf {
			continue
		}
		if !result.Rules.IsFullMoon(ev.Turn) {
			t.Errorf("AssertWerewolvesFeedOnlyUnderFullMoon: agent %d bit agent %d on turn %d", ev.Actor, ev.Victim, ev.Turn)
		}
	}
}

// AssertTerminatedBy asserts the run's termination reason.
func AssertTerminatedBy(t *testing.T, result SimulationResult, want village.Reason) {
	t.Helper()
	if result.Final.Reason != want {
		t.Errorf("AssertTerminatedBy: %s ended with %q after %d turns, want %q", result.Name, result.Final.Reason, result.Final.Turns, want)
	}
}

// AssertTerminationJustified asserts that the final state actually meets
// the recorded termination condition, and that no early condition held
// before the last turn.
func AssertTerminationJustified(t *testing.T, result SimulationResult, turnLimit int) {
	t.Helper()
	living := func(agents []village.AgentStatus) map[village.Kind]int {
		m := make(map[village.Kind]int)
		for _, a := range agents {
			if a.KilledBy == village.KilledByNone {
				m[a.Kind]++
			}
		}
		return m
	}
	total := func(m map[village.Kind]int) int {
		n := 0
		for _, v := range m {
			n += v
		}
		return n
	}

	final := living(result.Last().Agents)
	switch result.Final.Reason {
	case village.ReasonTurnLimit:
		if result.Final.Turns != turnLimit {
			t.Errorf("AssertTerminationJustified: turn limit %d but %d turns ran", turnLimit, result.Final.Turns)
		}
	case village.ReasonAllDead:
		if total(final) != 0 {
			t.Errorf("AssertTerminationJustified: all-dead with %v alive", final)
		}
	case village.ReasonAllVampires:
		if total(final) != final[village.KindVampire] {
			t.Errorf("AssertTerminationJustified: all-vampires with %v alive", final)
		}
	case village.ReasonAllWerewolves:
		if total(final) != final[village.KindWerewolf] {
			t.Errorf("AssertTerminationJustified: all-werewolves with %v alive", final)
		}
	default:
		t.Errorf("AssertTerminationJustified: unexpected reason %q", result.Final.Reason)
	}

	if result.Final.Turns != len(result.Turns) {
		t.Errorf("AssertTerminationJustified: %d turns reported, %d recorded", result.Final.Turns, len(result.Turns))
	}

	for i := 0; i < len(result.Turns)-1; i++ {
		m := living(result.Turns[i].Agents)
		n := total(m)
		if n == 0 || n == m[village.KindVampire] || n == m[village.KindWerewolf] {
			t.Errorf("AssertTerminationJustified: run continued past turn %d with %v alive", result.Turns[i].Index, m)
		}
	}
}

// AssertSameOutcome asserts two runs produced identical histories.
func AssertSameOutcome(t *testing.T, a, b SimulationResult) {
	t.Helper()
	if !reflect.DeepEqual(a.Final, b.Final) {
		t.Errorf("AssertSameOutcome: final results differ:\n%+v\n%+v", a.Final, b.Final)
	}
	if !reflect.DeepEqual(a.Turns, b.Turns) {
		t.Error("AssertSameOutcome: turn histories differ")
	}
}

// AssertInvariants runs every history-wide assertion.
func AssertInvariants(t *testing.T, result SimulationResult, turnLimit int) {
	t.Helper()
	AssertAttributesInBounds(t, result)
	AssertDeathConsistent(t, result)
	AssertDeadStayInert(t, result)
	AssertPopulationConstant(t, result)
	AssertConversionLatched(t, result)
	AssertOnlyHumansConverted(t, result)
	AssertWerewolvesFeedOnlyUnderFullMoon(t, result)
	AssertTerminationJustified(t, result, turnLimit)
}
