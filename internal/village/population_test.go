package village

import (
	"errors"
	"sort"
	"testing"

	"github.com/depilcher/WWVillage/internal/rng"
)

func TestNewPopulation_AssignsIDsByKind(t *testing.T) {
	env := NewEnv(rng.NewSequence(), DefaultRules())
	pop := NewPopulation(env, 2, 1, 2)

	want := []Kind{KindHuman, KindHuman, KindVampire, KindWerewolf, KindWerewolf}
	agents := pop.Agents()
	if len(agents) != len(want) {
		t.Fatalf("Len = %d, want %d", len(agents), len(want))
	}
	for i, a := range agents {
		if a.ID() != i+1 {
			t.Errorf("agent %d has ID %d", i, a.ID())
		}
		if a.Kind() != want[i] {
			t.Errorf("agent %d kind = %v, want %v", a.ID(), a.Kind(), want[i])
		}
		if a.Hunger() != HungerMin || a.Health() != HealthMax || !a.Alive() {
			t.Errorf("agent %d not fresh: %+v", a.ID(), a.Status())
		}
	}
}

func TestNewPopulation_NegativeCountsCreateNobody(t *testing.T) {
	env := NewEnv(rng.NewSequence(), DefaultRules())
	pop := NewPopulation(env, -3, 1, -1)
	if pop.Len() != 1 {
		t.Errorf("Len = %d, want 1", pop.Len())
	}
}

func TestPopulation_AgentsReturnsCopy(t *testing.T) {
	env := NewEnv(rng.NewSequence(), DefaultRules())
	pop := NewPopulation(env, 2, 0, 0)

	agents := pop.Agents()
	agents[0] = nil
	if pop.Agents()[0] == nil {
		t.Error("mutating the returned slice changed the population")
	}
}

func TestPopulation_LivingAndTerminationPredicates(t *testing.T) {
	tests := []struct {
		name          string
		setup         func(*Env, *Population)
		wantLiving    int
		wantAllDead   bool
		wantVampires  bool
		wantWerewolfs bool
	}{
		{
			name:          "empty population",
			setup:         func(*Env, *Population) {},
			wantAllDead:   true,
			wantVampires:  true,
			wantWerewolfs: true,
		},
		{
			name: "mixed",
			setup: func(env *Env, p *Population) {
				p.add(NewHuman(env))
				p.add(NewVampire(env, p))
			},
			wantLiving: 2,
		},
		{
			name: "only vampires alive",
			setup: func(env *Env, p *Population) {
				p.add(NewHuman(env)).Kill(KilledByVampire)
				p.add(NewVampire(env, p))
				p.add(NewVampire(env, p))
			},
			wantLiving:   2,
			wantVampires: true,
		},
		{
			name: "only werewolves alive",
			setup: func(env *Env, p *Population) {
				p.add(NewWerewolf(env, p))
				p.add(NewVampire(env, p)).Kill(KilledByWerewolf)
			},
			wantLiving:    1,
			wantWerewolfs: true,
		},
		{
			name: "everybody dead",
			setup: func(env *Env, p *Population) {
				p.add(NewHuman(env)).Kill(KilledByStarvation)
				p.add(NewWerewolf(env, p)).Kill(KilledByVampire)
			},
			wantAllDead:   true,
			wantVampires:  true,
			wantWerewolfs: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			env, pop, _ := scripted()
			tt.setup(env, pop)

			if got := len(pop.Living()); got != tt.wantLiving {
				t.Errorf("len(Living()) = %d, want %d", got, tt.wantLiving)
			}
			if got := pop.AllDead(); got != tt.wantAllDead {
				t.Errorf("AllDead() = %v, want %v", got, tt.wantAllDead)
			}
			if got := pop.AllOfKind(KindVampire); got != tt.wantVampires {
				t.Errorf("AllOfKind(vampire) = %v, want %v", got, tt.wantVampires)
			}
			if got := pop.AllOfKind(KindWerewolf); got != tt.wantWerewolfs {
				t.Errorf("AllOfKind(werewolf) = %v, want %v", got, tt.wantWerewolfs)
			}
		})
	}
}

func TestPopulation_DoTurnShufflesAndActs(t *testing.T) {
	// Fisher-Yates over three agents draws from [0,2] then [0,1].
	env, pop, seq := scripted(0, 0)
	for i := 0; i < 3; i++ {
		pop.add(NewHuman(env))
	}

	pop.DoTurn()

	var ids []int
	for _, a := range pop.Agents() {
		ids = append(ids, a.ID())
		if a.Hunger() != 1 {
			t.Errorf("agent %d hunger = %d, want 1", a.ID(), a.Hunger())
		}
	}
	// i=2,j=0 -> [3 2 1]; i=1,j=0 -> [2 3 1]
	want := []int{2, 3, 1}
	for i := range want {
		if ids[i] != want[i] {
			t.Fatalf("turn order = %v, want %v", ids, want)
		}
	}
	assertExhausted(t, seq)
}

func TestPopulation_DoTurnKeepsEveryAgent(t *testing.T) {
	env := NewEnv(rng.NewSource(7), DefaultRules())
	pop := NewPopulation(env, 6, 3, 3)

	for turn := 0; turn < 10; turn++ {
		pop.DoTurn()
		env.Clock.Advance()

		var ids []int
		for _, a := range pop.Agents() {
			ids = append(ids, a.ID())
		}
		sort.Ints(ids)
		for i, id := range ids {
			if id != i+1 {
				t.Fatalf("turn %d: population is not a permutation of 1..12: %v", turn, ids)
			}
		}
	}
}

func TestPopulation_LaterAgentsSeeEarlierResults(t *testing.T) {
	tests := []struct {
		name       string
		script     []int
		wantHunger int
	}{
		// shuffle swaps, so the vampire goes first and the human never eats
		{"vampire first", []int{0, 0, outcomeKill}, 0},
		{"human first", []int{1, 0, outcomeKill}, 1},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			env, pop, seq := scripted(tt.script...)
			h := pop.add(NewHuman(env))
			pop.add(NewVampire(env, pop))

			pop.DoTurn()

			if h.Alive() {
				t.Fatal("human should be killed")
			}
			if h.Hunger() != tt.wantHunger {
				t.Errorf("human hunger = %d, want %d", h.Hunger(), tt.wantHunger)
			}
			assertExhausted(t, seq)
		})
	}
}

func TestPopulation_DeadAgentsStayInert(t *testing.T) {
	env, pop, seq := scripted(1, 0)
	dead := pop.add(NewHuman(env))
	dead.SetHunger(4)
	dead.Kill(KilledByStarvation)
	pop.add(NewHuman(env))
	pop.add(NewHuman(env))

	pop.DoTurn()

	if dead.Hunger() != 4 || dead.Health() != 0 || dead.KilledBy() != KilledByStarvation {
		t.Errorf("dead agent changed: %+v", dead.Status())
	}
	assertExhausted(t, seq)
}

func TestPopulation_Census(t *testing.T) {
	env, pop, _ := scripted()
	pop.add(NewHuman(env))
	pop.add(NewHuman(env)).Kill(KilledByWerewolf)
	pop.add(NewVampire(env, pop))
	pop.add(NewWerewolf(env, pop))
	pop.add(NewWerewolf(env, pop))

	got := pop.Census()
	want := Census{Humans: 1, Vampires: 1, Werewolves: 2, Dead: 1}
	if got != want {
		t.Errorf("Census() = %+v, want %+v", got, want)
	}
	if got.Living() != 4 {
		t.Errorf("Living() = %d, want 4", got.Living())
	}
}

func TestPopulation_SnapshotOrderedByID(t *testing.T) {
	env := NewEnv(rng.NewSequence(2, 0), DefaultRules())
	pop := NewPopulation(env, 1, 1, 1)
	pop.shuffle()

	got, err := pop.Snapshot()
	if err != nil {
		t.Fatalf("Snapshot() error: %v", err)
	}
	if pop.Agents()[0].ID() != 2 {
		t.Fatalf("shuffle did not reorder agents")
	}
	for i, s := range got {
		if s.ID != i+1 {
			t.Errorf("snapshot[%d].ID = %d", i, s.ID)
		}
	}
	if got[0].Kind != KindHuman || got[1].Kind != KindVampire || got[2].Kind != KindWerewolf {
		t.Errorf("snapshot kinds = %v %v %v", got[0].Kind, got[1].Kind, got[2].Kind)
	}
}

func TestPopulation_SnapshotRejectsUnknownBehavior(t *testing.T) {
	env, pop, _ := scripted()
	pop.add(NewHuman(env))
	pop.add(&stubBehavior{})

	_, err := pop.Snapshot()
	if !errors.Is(err, ErrUnclassifiedBehavior) {
		t.Errorf("Snapshot() error = %v, want ErrUnclassifiedBehavior", err)
	}
}
