// Copyright (c) HashiCorp, Inc.
// SPDX-License-Identifier: BUSL-1.1

// Package loader bulk builds bplus indexes from text pair files and binary
// offset index files.
package loader

import (
	"time"

	"go.uber.org/zap"
)

// DefaultProgressInterval is how many records pass between progress logs.
const DefaultProgressInterval = 10000

// Stats summarises one load.
type Stats struct {
	// Records is the number of records read, duplicates included.
	Records int
	// Duplicates counts records whose key was already indexed. The first
	// value seen for a key is the one kept.
	Duplicates int
	Elapsed    time.Duration
}

// Inserted is the number of records that added a key.
func (s Stats) Inserted() int {
	return s.Records - s.Duplicates
}

type loadConfig struct {
	logger        *zap.Logger
	progressEvery int
}

// LoadOption configures a load.
type LoadOption func(*loadConfig)

// WithLogger sets the logger progress and summaries are written to.
func WithLogger(logger *zap.Logger) LoadOption {
	return func(c *loadConfig) {
		c.logger = logger
	}
}

// WithProgressInterval logs progress every n records. Zero or less turns
// progress logging off.
func WithProgressInterval(n int) LoadOption {
	return func(c *loadConfig) {
		c.progressEvery = n
	}
}

func buildLoadConfig(opts []LoadOption) loadConfig {
	cfg := loadConfig{
		logger:        zap.NewNop(),
		progressEvery: DefaultProgressInterval,
	}
	for _, opt := range opts {
		opt(&cfg)
	}
	if cfg.logger == nil {
		cfg.logger = zap.NewNop()
	}
	return cfg
}

// progress logs every progressEvery records.
func (c loadConfig) progress(records int) {
	if c.progressEvery <= 0 || records%c.progressEvery != 0 {
		return
	}
	if ce := c.logger.Check(zap.DebugLevel, "loading"); ce != nil {
		ce.Write(zap.Int("records", records))
	}
}

func (c loadConfig) done(what string, stats Stats) {
	c.logger.Info("load complete",
		zap.String("source", what),
		zap.Int("records", stats.Records),
		zap.Int("duplicates", stats.Duplicates),
		zap.Duration("elapsed", stats.Elapsed),
	)
}
