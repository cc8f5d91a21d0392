package session

import (
	"errors"
	"time"
)

// Default timing thresholds.
const (
	DefaultMinThinkTime  = 2 * time.Second
	DefaultIdleThreshold = 8 * time.Second
	DefaultTickInterval  = 1 * time.Second
)

// Intro slider ranges.
const (
	ConfidenceMin     = 0
	ConfidenceMax     = 5
	ConfidenceDefault = 3

	EstimateMin     = 5
	EstimateMax     = 30
	EstimateDefault = 15
)

// Config holds the timing heuristics the helper pet uses.
type Config struct {
	// MinThinkTime is how long a question must be on screen before an
	// answer is accepted.
	MinThinkTime time.Duration

	// IdleThreshold is how long the learner may go without interacting
	// before the pet offers help.
	IdleThreshold time.Duration

	// TickInterval is the period of the idle check.
	TickInterval time.Duration
}

// DefaultConfig returns the standard thresholds.
func DefaultConfig() Config {
	return Config{
		MinThinkTime:  DefaultMinThinkTime,
		IdleThreshold: DefaultIdleThreshold,
		TickInterval:  DefaultTickInterval,
	}
}

// Validate rejects non-positive durations.
func (c Config) Validate() error {
	if c.MinThinkTime < 0 {
		return errors.New("min think time must not be negative")
	}
	if c.IdleThreshold <= 0 {
		return errors.New("idle threshold must be positive")
	}
	if c.TickInterval <= 0 {
		return errors.New("tick interval must be positive")
	}
	return nil
}
