// Copyright (c) 2026 Nouvèl Ayiti
// SPDX-License-Identifier: GPL-3.0-or-later

package config

import (
	"fmt"
	"strings"

	"github.com/caarlos0/env/v11"
)

// knownWeakSecrets contains default/example secrets that must be rejected.
var knownWeakSecrets = []string{
	"change-me-to-32-byte-secret-key!",
	"REPLACE_WITH_YOUR_OWN_SECRET_KEY!",
}

// MinSessionSecretLength is the minimum required length for the session secret.
const MinSessionSecretLength = 32

// Config holds the application configuration loaded from environment variables.
type Config struct {
	SessionSecret string `env:"NOUVEL_SESSION_SECRET,required"`
	ServerHost    string `env:"NOUVEL_SERVER_HOST" envDefault:"localhost"`
	ServerPort    int    `env:"NOUVEL_SERVER_PORT" envDefault:"8080"`
	Env           string `env:"NOUVEL_ENV" envDefault:"development"`
	LogLevel      string `env:"NOUVEL_LOG_LEVEL" envDefault:"info"`

	// Seeding configuration. The store is memory-resident, so demo content
	// is installed on every start when enabled.
	SeedDemo bool `env:"NOUVEL_SEED_DEMO" envDefault:"true"`

	// Bootstrap admin account. The password is argon2id-hashed before it
	// reaches the store; it is never kept in plaintext past startup.
	AdminUsername string `env:"NOUVEL_ADMIN_USERNAME" envDefault:"admin"`
	AdminEmail    string `env:"NOUVEL_ADMIN_EMAIL" envDefault:"admin@nouvelayiti.ht"`
	AdminPassword string `env:"NOUVEL_ADMIN_PASSWORD,required"`

	// EventRetentionDays controls how long audit events are kept before the
	// scheduler prunes them.
	EventRetentionDays int `env:"NOUVEL_EVENT_RETENTION_DAYS" envDefault:"30"`
}

// IsDevelopment returns true if the application is running in development mode.
func (c Config) IsDevelopment() bool {
	return c.Env == "development"
}

// ServerAddr returns the full server address in host:port format.
func (c Config) ServerAddr() string {
	return fmt.Sprintf("%s:%d", c.ServerHost, c.ServerPort)
}

// Load parses environment variables and returns a Config struct.
func Load() (*Config, error) {
	cfg := &Config{}
	if err := env.Parse(cfg); err != nil {
		return nil, fmt.Errorf("parsing config: %w", err)
	}

	if len(cfg.SessionSecret) < MinSessionSecretLength {
		return nil, fmt.Errorf("NOUVEL_SESSION_SECRET must be at least %d bytes long, got %d bytes; "+
			"generate a secure secret with: openssl rand -base64 32",
			MinSessionSecretLength, len(cfg.SessionSecret))
	}

	for _, weak := range knownWeakSecrets {
		if cfg.SessionSecret == weak {
			return nil, fmt.Errorf("NOUVEL_SESSION_SECRET is a known default value and must not be used; " +
				"generate a secure secret with: openssl rand -base64 32")
		}
	}

	if strings.TrimSpace(cfg.AdminPassword) == "" {
		return nil, fmt.Errorf("NOUVEL_ADMIN_PASSWORD must not be blank")
	}

	return cfg, nil
}
