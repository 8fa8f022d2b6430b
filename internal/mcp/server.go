// Package mcp serves the village simulation over the Model Context Protocol.
package mcp

import (
	"context"
	"log/slog"
	"os"

	sdk "github.com/modelcontextprotocol/go-sdk/mcp"

	"github.com/depilcher/WWVillage/internal/config"
	"github.com/depilcher/WWVillage/internal/ratelimit"
	"github.com/depilcher/WWVillage/internal/rng"
)

// Server wraps the MCP SDK server with the village tools and resources.
type Server struct {
	server   *sdk.Server
	cfg      *config.VillageConfig
	limiters ratelimit.Tools
	logger   *slog.Logger
	newSeed  func() (int64, error)
}

// Config holds server configuration.
type Config struct {
	Name    string // server name reported to clients
	Version string

	// Village supplies the default setup and the rules every run uses.
	// Nil means config.Default().
	Village *config.VillageConfig

	// Logger receives call audit records. Nil discards them.
	Logger *slog.Logger
}

// NewServer creates a server with the village tools registered.
func NewServer(cfg *Config) *Server {
	vc := cfg.Village
	if vc == nil {
		vc = config.Default()
	}
	logger := cfg.Logger
	if logger == nil {
		logger = slog.New(slog.DiscardHandler)
	}

	s := &Server{
		server: sdk.NewServer(&sdk.Implementation{
			Name:    cfg.Name,
			Version: cfg.Version,
		}, nil),
		cfg:      vc,
		limiters: ratelimit.NewTools(),
		logger:   logger,
		newSeed:  rng.NewSeed,
	}

	s.registerTools()
	s.registerResources()

	return s
}

// Run serves over stdio until the client disconnects, ctx is cancelled or
// the process is interrupted.
func (s *Server) Run(ctx context.Context) error {
	ctx, cancel := context.WithCancel(ctx)
	defer cancel()

	sigChan := make(chan os.Signal, 1)
	notifySignals(sigChan)
	go func() {
		select {
		case <-sigChan:
			cancel()
		case <-ctx.Done():
		}
	}()

	s.logger.Info("mcp server starting", "transport", "stdio")
	return s.server.Run(ctx, &sdk.StdioTransport{})
}
