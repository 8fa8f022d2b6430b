package mcp

import (
	"context"
	"fmt"
	"time"

	sdk "github.com/modelcontextprotocol/go-sdk/mcp"
	"gopkg.in/yaml.v3"

	"github.com/depilcher/WWVillage/internal/report"
	"github.com/depilcher/WWVillage/internal/rng"
	"github.com/depilcher/WWVillage/internal/village"
)

const (
	toolSimulate = "village_simulate"
	rulesURI     = "village://rules"
)

func (s *Server) registerTools() {
	sdk.AddTool(s.server, &sdk.Tool{
		Name:        toolSimulate,
		Description: "Run a village simulation of humans, vampires and werewolves and return the end-of-run report",
	}, s.handleSimulate)
}

func (s *Server) registerResources() {
	s.server.AddResource(&sdk.Resource{
		URI:         rulesURI,
		Name:        "village-rules",
		Description: "The rule numbers every simulation on this server uses: hunger, healing, damage ranges and the lunar cycle.",
		MIMEType:    "application/yaml",
	}, s.handleRulesResource)
}

// setup merges the request over the configured defaults.
func (s *Server) setup(in SimulateInput) village.Setup {
	setup := s.cfg.Simulation.Setup()
	if in.Humans != nil {
		setup.Humans = *in.Humans
	}
	if in.Vampires != nil {
		setup.Vampires = *in.Vampires
	}
	if in.Werewolves != nil {
		setup.Werewolves = *in.Werewolves
	}
	if in.Turns != nil {
		setup.Turns = *in.Turns
	}
	return setup
}

func (s *Server) handleSimulate(ctx context.Context, req *sdk.CallToolRequest, in SimulateInput) (_ *sdk.CallToolResult, _ SimulateOutput, retErr error) {
	start := time.Now()
	setup := s.setup(in)
	seed := in.Seed
	defer func() {
		s.audit(toolSimulate, start, retErr,
			"humans", setup.Humans, "vampires", setup.Vampires,
			"werewolves", setup.Werewolves, "turns", setup.Turns, "seed", seed)
	}()

	if err := s.limiters.Check(toolSimulate); err != nil {
		return nil, SimulateOutput{}, err
	}
	if err := setup.Validate(); err != nil {
		return nil, SimulateOutput{}, err
	}

	if seed == 0 {
		var err error
		if seed, err = s.newSeed(); err != nil {
			return nil, SimulateOutput{}, fmt.Errorf("drawing seed: %w", err)
		}
	}

	env := village.NewEnv(rng.NewSource(seed), s.cfg.Rules)
	runner := village.New(setup, env)
	for runner.Step() {
		if err := ctx.Err(); err != nil {
			return nil, SimulateOutput{}, fmt.Errorf("simulation cancelled after %d turns: %w", runner.Turn(), err)
		}
	}

	res, err := runner.Result()
	if err != nil {
		return nil, SimulateOutput{}, err
	}

	rep := report.Build(res, seed)
	return nil, SimulateOutput{
		Report: rep,
		Message: fmt.Sprintf("Ran %d turns (%s): %d humans, %d vampires, %d werewolves alive, %d dead",
			rep.Turns, rep.Reason, rep.Counts.Humans, rep.Counts.Vampires, rep.Counts.Werewolves, rep.Counts.Dead),
	}, nil
}

func (s *Server) handleRulesResource(ctx context.Context, req *sdk.ReadResourceRequest) (_ *sdk.ReadResourceResult, retErr error) {
	start := time.Now()
	defer func() { s.audit(rulesURI, start, retErr) }()

	if err := s.limiters.Check(rulesURI); err != nil {
		return nil, err
	}

	data, err := yaml.Marshal(s.cfg.Rules)
	if err != nil {
		return nil, fmt.Errorf("encoding rules: %w", err)
	}

	return &sdk.ReadResourceResult{
		Contents: []*sdk.ResourceContents{{
			URI:      rulesURI,
			MIMEType: "application/yaml",
			Text:     string(data),
		}},
	}, nil
}
