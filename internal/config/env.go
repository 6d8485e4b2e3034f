// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package config

import (
	"fmt"
	"strings"

	"github.com/caarlos0/env/v11"
)

// envSecrets holds variables that name files instead of carrying values.
type envSecrets struct {
	// AdapterPasswordFile is read in full; trailing newlines are dropped.
	AdapterPasswordFile string `env:"ADAPTER_PASSWORD_FILE,file"`
}

// parseEnv populates cfg from environment variables. Field names come from
// the `env` and `envPrefix` tags of [StructuredConfig].
//
// ADAPTER_PASSWORD_FILE fills the password only when ADAPTER_PASSWORD is
// unset, so a mounted secret never overrides an explicit value.
func parseEnv(cfg *StructuredConfig) error {
	if err := env.Parse(cfg); err != nil {
		return fmt.Errorf("error getting env configs: %w", err)
	}

	var secrets envSecrets
	if err := env.Parse(&secrets); err != nil {
		return fmt.Errorf("error reading env secret files: %w", err)
	}
	if cfg.Adapter.Password == "" {
		cfg.Adapter.Password = strings.TrimRight(secrets.AdapterPasswordFile, "\r\n")
	}

	return nil
}
