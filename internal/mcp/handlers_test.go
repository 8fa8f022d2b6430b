package mcp

import (
	"bytes"
	"context"
	"errors"
	"log/slog"
	"math"
	"reflect"
	"strings"
	"testing"

	sdk "github.com/modelcontextprotocol/go-sdk/mcp"
	"gopkg.in/yaml.v3"

	"github.com/depilcher/WWVillage/internal/config"
	"github.com/depilcher/WWVillage/internal/ratelimit"
	"github.com/depilcher/WWVillage/internal/village"
)

func intp(v int) *int { return &v }

func setupTestServer(t *testing.T) (*Server, *bytes.Buffer) {
	t.Helper()
	var logs bytes.Buffer
	s := NewServer(&Config{
		Name:    "village-test",
		Version: "test",
		Logger:  slog.New(slog.NewTextHandler(&logs, nil)),
	})
	return s, &logs
}

func TestHandleSimulate(t *testing.T) {
	s, logs := setupTestServer(t)
	ctx := context.Background()

	_, out, err := s.handleSimulate(ctx, nil, SimulateInput{
		Humans:     intp(8),
		Vampires:   intp(2),
		Werewolves: intp(2),
		Turns:      intp(30),
		Seed:       42,
	})
	if err != nil {
		t.Fatalf("handleSimulate: %v", err)
	}

	rep := out.Report
	if rep.Seed != 42 {
		t.Errorf("Seed = %d, want 42", rep.Seed)
	}
	if len(rep.Citizens) != 12 {
		t.Errorf("got %d citizens, want 12", len(rep.Citizens))
	}
	if rep.Turns > 30 || rep.Reason == "" {
		t.Errorf("turns = %d, reason = %q", rep.Turns, rep.Reason)
	}
	c := rep.Counts
	if c.Humans+c.Vampires+c.Werewolves+c.Dead != 12 {
		t.Errorf("counts %+v do not add up to 12", c)
	}
	if !strings.Contains(out.Message, "Ran ") {
		t.Errorf("Message = %q", out.Message)
	}
	if !strings.Contains(logs.String(), "call=village_simulate") || !strings.Contains(logs.String(), "seed=42") {
		t.Errorf("audit log missing call record: %s", logs.String())
	}
}

func TestHandleSimulate_Deterministic(t *testing.T) {
	s, _ := setupTestServer(t)
	in := SimulateInput{Humans: intp(10), Vampires: intp(3), Werewolves: intp(3), Turns: intp(40), Seed: 7}

	_, a, err := s.handleSimulate(context.Background(), nil, in)
	if err != nil {
		t.Fatal(err)
	}
	_, b, err := s.handleSimulate(context.Background(), nil, in)
	if err != nil {
		t.Fatal(err)
	}
	if !reflect.DeepEqual(a.Report, b.Report) {
		t.Error("same seed produced different reports")
	}
}

func TestHandleSimulate_UsesConfiguredDefaults(t *testing.T) {
	vc := config.Default()
	vc.Simulation = config.SimulationConfig{Humans: 3, Turns: 5}
	s := NewServer(&Config{Name: "village-test", Version: "test", Village: vc})

	_, out, err := s.handleSimulate(context.Background(), nil, SimulateInput{Seed: 1})
	if err != nil {
		t.Fatal(err)
	}
	if len(out.Report.Citizens) != 3 || out.Report.Turns != 5 {
		t.Errorf("report = %d citizens over %d turns, want 3 over 5", len(out.Report.Citizens), out.Report.Turns)
	}
	if out.Report.Reason != string(village.ReasonTurnLimit) {
		t.Errorf("Reason = %q", out.Report.Reason)
	}
}

func TestHandleSimulate_DrawsSeed(t *testing.T) {
	s, _ := setupTestServer(t)
	s.newSeed = func() (int64, error) { return 9001, nil }

	_, out, err := s.handleSimulate(context.Background(), nil, SimulateInput{Turns: intp(1)})
	if err != nil {
		t.Fatal(err)
	}
	if out.Report.Seed != 9001 {
		t.Errorf("Seed = %d, want drawn seed 9001", out.Report.Seed)
	}

	s.newSeed = func() (int64, error) { return 0, errors.New("no entropy") }
	if _, _, err := s.handleSimulate(context.Background(), nil, SimulateInput{}); err == nil {
		t.Error("expected seed error")
	}
}

func TestHandleSimulate_RejectsNegativeCounts(t *testing.T) {
	tests := []struct {
		name string
		in   SimulateInput
	}{
		{"humans", SimulateInput{Humans: intp(-1)}},
		{"vampires", SimulateInput{Vampires: intp(-2)}},
		{"werewolves", SimulateInput{Werewolves: intp(-3)}},
		{"turns", SimulateInput{Turns: intp(-4)}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			s, _ := setupTestServer(t)
			_, _, err := s.handleSimulate(context.Background(), nil, tt.in)
			if !errors.Is(err, village.ErrInvalidSetup) {
				t.Errorf("error = %v, want ErrInvalidSetup", err)
			}
		})
	}
}

func TestHandleSimulate_RejectsOversizedPopulation(t *testing.T) {
	tests := []struct {
		name string
		in   SimulateInput
	}{
		{"sum overflows", SimulateInput{Humans: intp(math.MaxInt), Vampires: intp(1), Werewolves: intp(0), Turns: intp(1), Seed: 1}},
		{"single count", SimulateInput{Werewolves: intp(math.MaxInt), Turns: intp(1), Seed: 1}},
		{"over configured ceiling", SimulateInput{Humans: intp(6), Vampires: intp(0), Werewolves: intp(0), Turns: intp(1), Seed: 1}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			vc := config.Default()
			vc.Simulation.MaxPopulation = 5
			s := NewServer(&Config{Name: "village-test", Version: "test", Village: vc})

			_, _, err := s.handleSimulate(context.Background(), nil, tt.in)
			if !errors.Is(err, village.ErrInvalidSetup) {
				t.Errorf("error = %v, want ErrInvalidSetup", err)
			}
		})
	}
}

func TestHandleSimulate_Cancelled(t *testing.T) {
	s, _ := setupTestServer(t)
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	_, _, err := s.handleSimulate(ctx, nil, SimulateInput{Humans: intp(2), Turns: intp(10), Seed: 3})
	if !errors.Is(err, context.Canceled) {
		t.Errorf("error = %v, want context.Canceled", err)
	}
}

func TestHandleSimulate_RateLimited(t *testing.T) {
	s, _ := setupTestServer(t)
	s.limiters = ratelimit.Tools{toolSimulate: ratelimit.NewLimiter(ratelimit.Policy{PerMinute: 1, Burst: 1})}

	in := SimulateInput{Turns: intp(1), Seed: 1}
	if _, _, err := s.handleSimulate(context.Background(), nil, in); err != nil {
		t.Fatalf("first call: %v", err)
	}
	if _, _, err := s.handleSimulate(context.Background(), nil, in); !errors.Is(err, ratelimit.ErrLimited) {
		t.Errorf("second call error = %v, want ErrLimited", err)
	}
}

func TestHandleRulesResource(t *testing.T) {
	s, _ := setupTestServer(t)

	res, err := s.handleRulesResource(context.Background(), &sdk.ReadResourceRequest{
		Params: &sdk.ReadResourceParams{URI: rulesURI},
	})
	if err != nil {
		t.Fatalf("handleRulesResource: %v", err)
	}
	if len(res.Contents) != 1 {
		t.Fatalf("got %d contents, want 1", len(res.Contents))
	}
	content := res.Contents[0]
	if content.URI != rulesURI || content.MIMEType != "application/yaml" {
		t.Errorf("content = %s %s", content.URI, content.MIMEType)
	}

	var rules village.Rules
	if err := yaml.Unmarshal([]byte(content.Text), &rules); err != nil {
		t.Fatalf("rules are not YAML: %v", err)
	}
	if rules != village.DefaultRules() {
		t.Errorf("rules = %+v, want defaults", rules)
	}
}
