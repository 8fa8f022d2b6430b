// Package config loads the village configuration from defaults, a YAML file
// and VILLAGE_* environment variables, in that order.
package config

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/caarlos0/env/v11"
	"github.com/depilcher/WWVillage/internal/logging"
	"github.com/depilcher/WWVillage/internal/village"
	"gopkg.in/yaml.v3"
)

// EnvPrefix prefixes every environment override.
const EnvPrefix = "VILLAGE_"

// VillageConfig contains every village setting.
type VillageConfig struct {
	// Simulation is the starting population, turn limit and seed.
	Simulation SimulationConfig `json:"simulation" yaml:"simulation"`

	// Rules tunes the behaviors. Omitted fields keep their defaults.
	Rules village.Rules `json:"rules" yaml:"rules"`

	Logging LoggingConfig `json:"logging" yaml:"logging"`
}

// SimulationConfig describes one run.
type SimulationConfig struct {
	Humans     int `json:"humans" yaml:"humans" env:"HUMANS"`
	Vampires   int `json:"vampires" yaml:"vampires" env:"VAMPIRES"`
	Werewolves int `json:"werewolves" yaml:"werewolves" env:"WEREWOLVES"`
	Turns      int `json:"turns" yaml:"turns" env:"TURNS"`

	// Seed fixes the random sequence. Zero draws a fresh seed per run.
	Seed int64 `json:"seed" yaml:"seed" env:"SEED"`

	// MaxPopulation caps humans+vampires+werewolves for every run,
	// including MCP requests.
	MaxPopulation int `json:"max_population" yaml:"max_population" env:"MAX_POPULATION"`
}

// Setup converts the section to the engine's run setup.
func (s SimulationConfig) Setup() village.Setup {
	return village.Setup{
		Humans:     s.Humans,
		Vampires:   s.Vampires,
		Werewolves: s.Werewolves,
		Turns:      s.Turns,

		MaxPopulation: s.MaxPopulation,
	}
}

// LoggingConfig configures operational logging and event tracing.
type LoggingConfig struct {
	// Level is "info" (default), "debug" or "trace". Debug and trace also
	// write every simulation event to TraceDir/events.jsonl.
	Level string `json:"level" yaml:"level" env:"LOG_LEVEL"`

	// TraceDir holds events.jsonl. Empty means ~/.village/trace.
	TraceDir string `json:"trace_dir,omitempty" yaml:"trace_dir,omitempty" env:"TRACE_DIR"`
}

// ResolvedTraceDir returns TraceDir, or the default under the home directory.
func (l LoggingConfig) ResolvedTraceDir() string {
	if l.TraceDir != "" {
		return l.TraceDir
	}
	home, err := os.UserHomeDir()
	if err != nil {
		return filepath.Join(".village", "trace")
	}
	return filepath.Join(home, ".village", "trace")
}

// Default returns the configuration used when nothing else is set.
func Default() *VillageConfig {
	return &VillageConfig{
		Simulation: SimulationConfig{
			Humans:     10,
			Vampires:   2,
			Werewolves: 2,
			Turns:      50,

			MaxPopulation: village.DefaultMaxPopulation,
		},
		Rules: village.DefaultRules(),
		Logging: LoggingConfig{
			Level: "info",
		},
	}
}

// DefaultPath returns ~/.village/config.yaml.
func DefaultPath() (string, error) {
	home, err := os.UserHomeDir()
	if err != nil {
		return "", fmt.Errorf("locating home directory: %w", err)
	}
	return filepath.Join(home, ".village", "config.yaml"), nil
}

// Load builds the effective configuration. An explicit path must exist;
// with an empty path the default file is used only if present. Environment
// overrides are applied last.
func Load(path string) (*VillageConfig, error) {
	cfg := Default()

	if path == "" {
		if p, err := DefaultPath(); err == nil {
			if _, statErr := os.Stat(p); statErr == nil {
				path = p
			}
		}
	}

	if path != "" {
		fileCfg, err := LoadFromFile(path)
		if err != nil {
			return nil, fmt.Errorf("loading config file: %w", err)
		}
		cfg = fileCfg
	}

	if err := ApplyEnv(cfg); err != nil {
		return nil, err
	}
	return cfg, nil
}

// LoadFromFile reads a YAML file over the defaults.
func LoadFromFile(path string) (*VillageConfig, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading config file: %w", err)
	}

	cfg := Default()
	if err := yaml.Unmarshal(data, cfg); err != nil {
		return nil, fmt.Errorf("parsing config file: %w", err)
	}
	return cfg, nil
}

// ApplyEnv overrides cfg with any VILLAGE_* variables that are set.
func ApplyEnv(cfg *VillageConfig) error {
	if err := env.ParseWithOptions(cfg, env.Options{Prefix: EnvPrefix}); err != nil {
		return fmt.Errorf("parse env: %w", err)
	}
	return nil
}

// Validate rejects settings the engine cannot run with.
func (c *VillageConfig) Validate() error {
	if err := c.Simulation.Setup().Validate(); err != nil {
		return err
	}
	if err := c.Rules.Validate(); err != nil {
		return err
	}
	if !logging.ValidLevel(c.Logging.Level) {
		return fmt.Errorf("invalid log level: %s (valid: info, debug, trace, or empty for default)", c.Logging.Level)
	}
	return nil
}

// Marshal renders the configuration as YAML.
func (c *VillageConfig) Marshal() ([]byte, error) {
	data, err := yaml.Marshal(c)
	if err != nil {
		return nil, fmt.Errorf("encoding config: %w", err)
	}
	return data, nil
}

// Write stores the configuration at path, creating its directory.
func (c *VillageConfig) Write(path string) error {
	data, err := c.Marshal()
	if err != nil {
		return err
	}
	if err := os.MkdirAll(filepath.Dir(path), 0o700); err != nil {
		return fmt.Errorf("creating config dir: %w", err)
	}
	if err := os.WriteFile(path, data, 0o600); err != nil {
		return fmt.Errorf("writing config file: %w", err)
	}
	return nil
}
