package main

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/depilcher/WWVillage/internal/config"
	"github.com/depilcher/WWVillage/internal/logging"
	"github.com/depilcher/WWVillage/internal/report"
	"github.com/depilcher/WWVillage/internal/rng"
	"github.com/depilcher/WWVillage/internal/village"
)

// simulate runs one village to termination and builds its report. A zero
// seed draws a fresh one.
func simulate(ctx context.Context, cfg *config.VillageConfig, setup village.Setup, seed int64, logger *slog.Logger) (report.Report, error) {
	if err := setup.Validate(); err != nil {
		return report.Report{}, err
	}
	if seed == 0 {
		var err error
		if seed, err = rng.NewSeed(); err != nil {
			return report.Report{}, err
		}
	}

	env := village.NewEnv(rng.NewSource(seed), cfg.Rules)

	events, err := logging.NewEventLogger(cfg.Logging.ResolvedTraceDir(), cfg.Logging.Level)
	if err != nil {
		logger.Warn("event trace disabled", "error", err)
	}
	defer events.Close()
	env.Events = events.WithRun(seed).Mirror(logger).Sink()

	logger.Info("simulation starting",
		"seed", seed,
		"humans", setup.Humans,
		"vampires", setup.Vampires,
		"werewolves", setup.Werewolves,
		"turns", setup.Turns,
	)

	runner := village.New(setup, env, village.WithLogger(logger))
	for runner.Step() {
		if err := ctx.Err(); err != nil {
			return report.Report{}, fmt.Errorf("simulation interrupted after %d turns: %w", runner.Turn(), err)
		}
	}

	res, err := runner.Result()
	if err != nil {
		return report.Report{}, err
	}
	return report.Build(res, seed), nil
}
