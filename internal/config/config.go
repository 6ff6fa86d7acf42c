// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package config

import (
	"time"
)

// StructuredConfig is the top-level configuration container for the
// PriceWise server. It aggregates all sub-configurations and is populated
// by merging values from environment variables, command-line flags, an
// optional JSON file and built-in defaults.
//
// Struct tags:
//   - envPrefix: prefix applied to all nested env tag lookups (caarlos0/env).
//   - env: direct environment variable name for scalar fields.
type StructuredConfig struct {
	// App holds token parameters, password hashing cost and logging settings.
	App App `envPrefix:"APP_"`

	// Storage holds the primary database and the product cache settings.
	Storage Storage `envPrefix:"STORAGE_"`

	// Server holds the HTTP listen address and request timeout.
	Server Server `envPrefix:"SERVER_"`

	// Adapter holds settings of outbound integrations: the price
	// classifier and the SMTP relay.
	Adapter Adapter `envPrefix:"ADAPTER_"`

	// Workers holds settings of background jobs.
	Workers Workers `envPrefix:"WORKERS_"`

	// JSONFilePath is the optional path to a JSON configuration file.
	// Populated via the CONFIG environment variable or the -c / -config flag.
	JSONFilePath string `env:"CONFIG"`
}

// App holds application-level configuration values.
type App struct {
	// TokenSignKey is the HMAC secret used to sign and verify credentials.
	// Env: APP_TOKEN_SIGN_KEY
	TokenSignKey string `env:"TOKEN_SIGN_KEY"`

	// TokenIssuer is the "iss" claim embedded in every issued credential.
	// Env: APP_TOKEN_ISSUER
	TokenIssuer string `env:"TOKEN_ISSUER"`

	// TokenDuration is the credential lifetime. It is also the Max-Age of
	// the token cookie.
	// Env: APP_TOKEN_DURATION
	TokenDuration time.Duration `env:"TOKEN_DURATION"`

	// BcryptCost is the bcrypt work factor for password hashes.
	// Env: APP_BCRYPT_COST
	BcryptCost int `env:"BCRYPT_COST"`

	// SecureCookie marks the token cookie Secure. Enable in production.
	// Env: APP_SECURE_COOKIE
	SecureCookie bool `env:"SECURE_COOKIE"`

	// LogLevel is a zerolog level name.
	// Env: APP_LOG_LEVEL
	LogLevel string `env:"LOG_LEVEL"`

	// Version is exposed via GET /api/version.
	// Env: APP_VERSION
	Version string `env:"VERSION"`
}

// Storage groups the configuration for all storage backends.
type Storage struct {
	DB    DB    `envPrefix:"DB_"`
	Cache Cache `envPrefix:"CACHE_"`
}

// DB holds connection settings of the primary store.
type DB struct {
	// DSN selects the backend by scheme:
	// "postgres://..." for PostgreSQL, "mongodb://..." or "mongodb+srv://..."
	// for MongoDB.
	// Env: STORAGE_DB_DATABASE_URI
	DSN string `env:"DATABASE_URI"`

	// Name is the MongoDB database name. Ignored by PostgreSQL.
	// Env: STORAGE_DB_NAME
	Name string `env:"NAME"`
}

// Cache holds the Redis product lookup cache settings.
// The cache is disabled when RedisAddress is empty.
type Cache struct {
	// Env: STORAGE_CACHE_REDIS_ADDRESS
	RedisAddress string `env:"REDIS_ADDRESS"`
	// Env: STORAGE_CACHE_REDIS_PASSWORD
	RedisPassword string `env:"REDIS_PASSWORD"`
	// Env: STORAGE_CACHE_REDIS_DB
	RedisDB int `env:"REDIS_DB"`
	// TTL of cached product lookups.
	// Env: STORAGE_CACHE_TTL
	TTL time.Duration `env:"TTL"`
}

// Server holds network and timeout settings for the inbound transport layer.
type Server struct {
	// HTTPAddress is the TCP address in "host:port" format.
	// Env: SERVER_ADDRESS
	HTTPAddress string `env:"ADDRESS"`

	// RequestTimeout is the maximum duration of a single inbound request.
	// Env: SERVER_REQUEST_TIMEOUT
	RequestTimeout time.Duration `env:"REQUEST_TIMEOUT"`
}

// Adapter holds configuration for outbound integrations.
type Adapter struct {
	Classifier Classifier `envPrefix:"CLASSIFIER_"`
	Mail       Mail       `envPrefix:"MAIL_"`
}

// Classifier holds the price classifier endpoint.
type Classifier struct {
	// URL is the full prediction endpoint, e.g. "http://classifier:5000/predict".
	// Env: ADAPTER_CLASSIFIER_URL
	URL string `env:"URL"`
	// Env: ADAPTER_CLASSIFIER_TIMEOUT
	Timeout time.Duration `env:"TIMEOUT"`
}

// Mail holds the SMTP relay settings of the notification dispatcher.
type Mail struct {
	// Env: ADAPTER_MAIL_HOST
	Host string `env:"HOST"`
	// Port 465 uses implicit TLS, other ports use STARTTLS.
	// Env: ADAPTER_MAIL_PORT
	Port int `env:"PORT"`
	// Env: ADAPTER_MAIL_USERNAME
	Username string `env:"USERNAME"`
	// Env: ADAPTER_MAIL_PASSWORD
	Password string `env:"PASSWORD"`
	// From is the sender address. Defaults to Username.
	// Env: ADAPTER_MAIL_FROM
	From string `env:"FROM"`
}

// Workers holds configuration for background jobs.
type Workers struct {
	// AlertInterval is the period of the price alert scan.
	// Env: WORKERS_ALERT_INTERVAL
	AlertInterval time.Duration `env:"ALERT_INTERVAL"`
	// AlertDisabled turns the price alert worker off.
	// Env: WORKERS_ALERT_DISABLED
	AlertDisabled bool `env:"ALERT_DISABLED"`
}

// GetStructuredConfig loads, merges, and validates the server configuration
// from all available sources in the following priority order (the first
// source that sets a field wins):
//  1. Environment variables
//  2. Command-line flags
//  3. JSON file (path resolved from sources 1 and 2)
//  4. Built-in defaults
func GetStructuredConfig(args []string) (*StructuredConfig, error) {
	return newConfigBuilder().
		withEnv().
		withFlags(args).
		withJSON().
		withDefaults().
		build()
}
