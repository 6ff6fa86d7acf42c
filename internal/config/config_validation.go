// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package config

import (
	"fmt"
	"strings"
)

// validate checks that the final merged [StructuredConfig] satisfies all
// invariants before it is used at startup.
func (cfg *StructuredConfig) validate() error {
	if cfg.App.TokenSignKey == "" || cfg.App.TokenIssuer == "" || cfg.App.TokenDuration <= 0 {
		return fmt.Errorf("%w: token sign key, issuer and positive duration are required", ErrInvalidAppConfigs)
	}
	if cfg.App.BcryptCost < 4 || cfg.App.BcryptCost > 31 {
		return fmt.Errorf("%w: bcrypt cost must be in range 4..31", ErrInvalidAppConfigs)
	}

	if cfg.Storage.DB.DSN == "" {
		return fmt.Errorf("%w: database DSN is required", ErrInvalidStorageConfigs)
	}
	if _, err := cfg.Storage.DB.Backend(); err != nil {
		return err
	}

	if cfg.Server.HTTPAddress == "" || cfg.Server.RequestTimeout <= 0 {
		return fmt.Errorf("%w: address and positive request timeout are required", ErrInvalidServerConfigs)
	}

	if cfg.Adapter.Classifier.URL == "" {
		return fmt.Errorf("%w: classifier url is required", ErrInvalidAdapterConfigs)
	}
	if cfg.Adapter.Mail.Host == "" || cfg.Adapter.Mail.Port <= 0 {
		return fmt.Errorf("%w: mail host and port are required", ErrInvalidAdapterConfigs)
	}
	if cfg.Adapter.Mail.From == "" && cfg.Adapter.Mail.Username == "" {
		return fmt.Errorf("%w: mail sender is required", ErrInvalidAdapterConfigs)
	}

	if !cfg.Workers.AlertDisabled && cfg.Workers.AlertInterval <= 0 {
		return ErrInvalidWorkerConfigs
	}

	return nil
}

// Backend identifies the primary store implementation.
type Backend string

const (
	BackendPostgres Backend = "postgres"
	BackendMongo    Backend = "mongo"
)

// Backend resolves the store implementation from the DSN scheme.
func (db DB) Backend() (Backend, error) {
	switch {
	case strings.HasPrefix(db.DSN, "postgres://"), strings.HasPrefix(db.DSN, "postgresql://"):
		return BackendPostgres, nil
	case strings.HasPrefix(db.DSN, "mongodb://"), strings.HasPrefix(db.DSN, "mongodb+srv://"):
		return BackendMongo, nil
	}
	return "", fmt.Errorf("%w: unsupported DSN scheme", ErrInvalidStorageConfigs)
}

// Sender returns the From address, falling back to the SMTP username.
func (m Mail) Sender() string {
	if m.From != "" {
		return m.From
	}
	return m.Username
}
