package mcp

import (
	"time"
)

// audit records one tool or resource call with its duration.
func (s *Server) audit(name string, start time.Time, err error, attrs ...any) {
	args := append([]any{
		"call", name,
		"duration_ms", time.Since(start).Milliseconds(),
	}, attrs...)

	if err != nil {
		s.logger.Warn("mcp call failed", append(args, "error", err.Error())...)
		return
	}
	s.logger.Info("mcp call", args...)
}
