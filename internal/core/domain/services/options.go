package services

import (
	"io"
	"log/slog"
	"time"

	"giftexchange/internal/core/domain/model/kernel"
)

// DefaultMaxAttempts bounds the recipient draft retry loop.
const DefaultMaxAttempts = 10

// SeedSource yields the base seed of a run.
type SeedSource func() int64

// UnixMilliSeedSource seeds from the wall clock. Milliseconds keep consecutive
// seeds distinct after the float conversion in kernel.SeededFloat.
func UnixMilliSeedSource() int64 {
	return time.Now().UnixMilli()
}

// FixedSeedSource always returns seed.
func FixedSeedSource(seed int64) SeedSource {
	return func() int64 { return seed }
}

type engineConfig struct {
	maxAttempts int
	sampler     kernel.Sampler
	seedSource  SeedSource
	logger      *slog.Logger
}

func defaultEngineConfig() engineConfig {
	return engineConfig{
		maxAttempts: DefaultMaxAttempts,
		sampler:     kernel.NewSeededSampler(),
		seedSource:  UnixMilliSeedSource,
		logger:      slog.New(slog.NewTextHandler(io.Discard, nil)),
	}
}

// Option configures an engine.
type Option func(*engineConfig)

// WithMaxAttempts sets how many full drafts RecipientAssigner tries. Values below 1 are ignored.
func WithMaxAttempts(n int) Option {
	return func(c *engineConfig) {
		if n >= 1 {
			c.maxAttempts = n
		}
	}
}

func WithSampler(s kernel.Sampler) Option {
	return func(c *engineConfig) {
		if s != nil {
			c.sampler = s
		}
	}
}

func WithSeedSource(s SeedSource) Option {
	return func(c *engineConfig) {
		if s != nil {
			c.seedSource = s
		}
	}
}

func WithLogger(l *slog.Logger) Option {
	return func(c *engineConfig) {
		if l != nil {
			c.logger = l
		}
	}
}

func newEngineConfig(component string, opts []Option) engineConfig {
	cfg := defaultEngineConfig()
	for _, opt := range opts {
		opt(&cfg)
	}
	cfg.logger = cfg.logger.With("component", component)
	return cfg
}
