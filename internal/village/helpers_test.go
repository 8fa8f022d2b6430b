package village

import (
	"testing"

	"github.com/depilcher/WWVillage/internal/rng"
)

// scripted returns an env whose generator replays values, and an empty
// population to add agents to.
func scripted(values ...int) (*Env, *Population, *rng.Sequence) {
	seq := rng.NewSequence(values...)
	env := NewEnv(seq, DefaultRules())
	return env, NewPopulation(env, 0, 0, 0), seq
}

// atTurn moves the clock to turn.
func atTurn(env *Env, turn int) {
	env.Clock.Reset()
	for i := 0; i < turn; i++ {
		env.Clock.Advance()
	}
}

func assertExhausted(t *testing.T, seq *rng.Sequence) {
	t.Helper()
	if seq.Remaining() != 0 {
		t.Errorf("%d scripted rolls left unused after %d calls", seq.Remaining(), seq.Calls())
	}
}

// stubBehavior is a behavior outside the closed kind set.
type stubBehavior struct {
	turns int
}

func (s *stubBehavior) DoTurn(*Agent)            { s.turns++ }
func (s *stubBehavior) ApparentKind(*Agent) Kind { return KindHuman }
