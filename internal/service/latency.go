package service

import (
	"context"
	"time"

	"github.com/spec-kit/greentouch-site/internal/config"
)

// Operation classifies store calls for latency simulation.
type Operation string

const (
	OpList   Operation = "list"
	OpCreate Operation = "create"
	OpUpdate Operation = "update"
	OpDelete Operation = "delete"
	OpStats  Operation = "stats"
	OpLogin  Operation = "login"
)

var defaultDelays = map[Operation]time.Duration{
	OpList:   500 * time.Millisecond,
	OpCreate: 800 * time.Millisecond,
	OpUpdate: 300 * time.Millisecond,
	OpDelete: 300 * time.Millisecond,
	OpStats:  300 * time.Millisecond,
	OpLogin:  time.Second,
}

// Latency delays store calls so clients see realistic response times.
type Latency struct {
	delays map[Operation]time.Duration
}

// NewLatency scales the default delays; a disabled config yields no delay.
func NewLatency(cfg config.LatencyConfig) *Latency {
	if !cfg.Enabled || cfg.Scale <= 0 {
		return NoLatency()
	}
	delays := make(map[Operation]time.Duration, len(defaultDelays))
	for op, d := range defaultDelays {
		delays[op] = time.Duration(float64(d) * cfg.Scale)
	}
	return &Latency{delays: delays}
}

// NoLatency returns a Latency that never waits.
func NoLatency() *Latency {
	return &Latency{}
}

// FixedLatency applies the same delay to every operation.
func FixedLatency(d time.Duration) *Latency {
	delays := make(map[Operation]time.Duration, len(defaultDelays))
	for op := range defaultDelays {
		delays[op] = d
	}
	return &Latency{delays: delays}
}

// Delay returns the configured delay for op.
func (l *Latency) Delay(op Operation) time.Duration {
	if l == nil {
		return 0
	}
	return l.delays[op]
}

// Wait blocks for the operation's delay. It returns ctx.Err() if the context
// ends first, in which case the caller must not touch the store.
func (l *Latency) Wait(ctx context.Context, op Operation) error {
	d := l.Delay(op)
	if d <= 0 {
		return ctx.Err()
	}
	timer := time.NewTimer(d)
	defer timer.Stop()

	select {
	case <-ctx.Done():
		return ctx.Err()
	case <-timer.C:
		return nil
	}
}
