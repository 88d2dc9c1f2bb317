// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package config

import (
	"fmt"
	"os"
	"strings"

	"github.com/rs/zerolog"
)

// validate checks invariants shared by every binary on the final merged
// [StructuredConfig].
func (cfg *StructuredConfig) validate() error {
	if cfg.Log.Level != "" {
		if _, err := zerolog.ParseLevel(cfg.Log.Level); err != nil {
			return fmt.Errorf("%w: %w", ErrInvalidLogConfigs, err)
		}
	}

	if cfg.Adapter.RequestTimeout < 0 {
		return fmt.Errorf("%w: negative request timeout", ErrInvalidAdapterConfigs)
	}

	if cfg.Server.RequestTimeout < 0 {
		return fmt.Errorf("%w: negative request timeout", ErrInvalidServerConfigs)
	}

	return nil
}

func (cfg *ClientConfig) validate() error {
	if strings.TrimSpace(cfg.Adapter.BaseURL) == "" || cfg.Adapter.RequestTimeout <= 0 {
		return ErrInvalidAdapterConfigs
	}

	return nil
}

func (cfg *ServerConfig) validate() error {
	if cfg.Server.HTTPAddress == "" || cfg.Server.RequestTimeout <= 0 {
		return ErrInvalidServerConfigs
	}

	if cfg.Storage.SeedFile != "" {
		if _, err := os.Stat(cfg.Storage.SeedFile); err != nil {
			return fmt.Errorf("%w: seed file: %w", ErrInvalidStorageConfigs, err)
		}
	}

	return nil
}
