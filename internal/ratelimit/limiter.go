// Package ratelimit throttles MCP requests with one token bucket per tool.
package ratelimit

import (
	"errors"
	"fmt"
	"sync"
	"time"
)

// ErrLimited is wrapped by every rate limit rejection.
var ErrLimited = errors.New("rate limit exceeded")

// Policy is a sustained rate plus a burst allowance.
type Policy struct {
	PerMinute float64
	Burst     int
}

func (p Policy) perSecond() float64 {
	return p.PerMinute / 60
}

// Limiter is a single token bucket that starts full.
// It is safe for concurrent use.
type Limiter struct {
	mu     sync.Mutex
	policy Policy
	tokens float64
	last   time.Time
	now    func() time.Time
}

// NewLimiter creates a full bucket for p.
func NewLimiter(p Policy) *Limiter {
	return &Limiter{
		policy: p,
		tokens: float64(p.Burst),
		now:    time.Now,
	}
}

// Allow takes a token if one is available.
func (l *Limiter) Allow() bool {
	l.mu.Lock()
	defer l.mu.Unlock()

	now := l.now()
	if l.last.IsZero() {
		l.last = now
	}

	if elapsed := now.Sub(l.last).Seconds(); elapsed > 0 {
		l.tokens = min(float64(l.policy.Burst), l.tokens+elapsed*l.policy.perSecond())
		l.last = now
	}

	if l.tokens < 1 {
		return false
	}
	l.tokens--
	return true
}

// Tools maps MCP tool and resource names to their limiters. Names without
// an entry are never limited.
type Tools map[string]*Limiter

// Default policies for the MCP surface.
var (
	SimulatePolicy = Policy{PerMinute: 20, Burst: 5}
	RulesPolicy    = Policy{PerMinute: 60, Burst: 10}
)

// NewTools returns the limiters used by the MCP server.
func NewTools() Tools {
	return Tools{
		"village_simulate": NewLimiter(SimulatePolicy),
		"village://rules":  NewLimiter(RulesPolicy),
	}
}

// Check consumes a token for name and returns an error wrapping ErrLimited
// when none is left.
func (t Tools) Check(name string) error {
	l, ok := t[name]
	if !ok {
		return nil
	}
	if !l.Allow() {
		return fmt.Errorf("%w for %s, please try again shortly", ErrLimited, name)
	}
	return nil
}
