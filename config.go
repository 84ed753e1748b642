// Copyright (c) HashiCorp, Inc.
// SPDX-License-Identifier: BUSL-1.1

package bplus

import (
	"github.com/cockroachdb/errors"
	"go.uber.org/zap"
)

const (
	// DefaultOrder is the fan-out used when no order is configured.
	DefaultOrder = 20

	// MinOrder is the smallest order that still allows a split to leave
	// both siblings non-empty.
	MinOrder = 3

	// MaxOrder bounds the per-node key and child storage.
	MaxOrder = 20
)

// Config holds the per-tree tuning. A node holds at most Order-1 keys and
// an internal node at most Order children.
type Config struct {
	Order  int
	Logger *zap.Logger
}

// Option mutates a Config before the tree is built.
type Option func(*Config)

// WithOrder sets the maximum fan-out of the tree.
func WithOrder(order int) Option {
	return func(c *Config) {
		c.Order = order
	}
}

// WithLogger attaches a logger. Lookups emit their descent path at debug
// level.
func WithLogger(logger *zap.Logger) Option {
	return func(c *Config) {
		c.Logger = logger
	}
}

func DefaultConfig() Config {
	return Config{
		Order:  DefaultOrder,
		Logger: zap.NewNop(),
	}
}

// Validate reports whether the configuration can build a tree.
func (c Config) Validate() error {
	if c.Order < MinOrder || c.Order > MaxOrder {
		return errors.Wrapf(ErrInvalidOrder, "order %d outside [%d, %d]", c.Order, MinOrder, MaxOrder)
	}
	return nil
}

func buildConfig(opts []Option) (Config, error) {
	cfg := DefaultConfig()
	for _, opt := range opts {
		opt(&cfg)
	}
	if cfg.Logger == nil {
		cfg.Logger = zap.NewNop()
	}
	if err := cfg.Validate(); err != nil {
		return Config{}, err
	}
	return cfg, nil
}
