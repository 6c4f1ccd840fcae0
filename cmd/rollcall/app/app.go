// Package app provides the application context and dependency management
// for the rollcall CLI. It centralizes configuration, logging, and
// threshold wiring so commands stay thin.
package app

import (
	"github.com/rs/zerolog"

	"github.com/sutthirak/rollcall/internal/appcontext"
	"github.com/sutthirak/rollcall/pkg/aggregate"
	"github.com/sutthirak/rollcall/pkg/errors"
	"github.com/sutthirak/rollcall/pkg/roster"
)

// App represents the rollcall application with all its dependencies.
type App struct {
	// Version information
	version string
	commit  string
	date    string
	builtBy string

	// Configuration
	config *Config

	// Logger
	logger *zerolog.Logger
}

// Ensure App implements the command context interface at compile time.
var _ appcontext.Interface = (*App)(nil)

// New creates a new App instance with the given version information.
func New(version, commit, date, builtBy string, opts ...Option) (*App, error) {
	app := &App{
		version: version,
		commit:  commit,
		date:    date,
		builtBy: builtBy,
	}

	config, err := LoadConfig()
	if err != nil {
		return nil, errors.WrapIO("load", "config", err)
	}
	app.config = config

	logger := NewLogger(config)
	app.logger = &logger

	for _, opt := range opts {
		if err := opt(app); err != nil {
			return nil, err
		}
	}

	return app, nil
}

// Version returns the version information.
func (a *App) Version() string {
	return a.version
}

// Commit returns the git commit hash.
func (a *App) Commit() string {
	return a.commit
}

// Date returns the build date.
func (a *App) Date() string {
	return a.date
}

// BuiltBy returns the build system identifier.
func (a *App) BuiltBy() string {
	return a.builtBy
}

// Config returns the application configuration.
func (a *App) Config() *Config {
	return a.config
}

// Logger returns the application logger.
func (a *App) Logger() *zerolog.Logger {
	return a.logger
}

// Matching returns the identity-matching thresholds from configuration.
func (a *App) Matching() aggregate.Config {
	cfg := aggregate.DefaultConfig()
	if a.config.NameSimilarity > 0 {
		cfg.NameSimilarity = a.config.NameSimilarity
	}
	if a.config.FirstNameSimilarity > 0 {
		cfg.FirstNameSimilarity = a.config.FirstNameSimilarity
	}
	if a.config.LastNameSimilarity > 0 {
		cfg.LastNameSimilarity = a.config.LastNameSimilarity
	}
	return cfg
}

// RosterMatching returns the roster reconciliation threshold.
func (a *App) RosterMatching() roster.Config {
	cfg := roster.DefaultConfig()
	if a.config.NameSimilarity > 0 {
		cfg.NameSimilarity = a.config.NameSimilarity
	}
	return cfg
}

// Option is a functional option for configuring the App.
type Option func(*App) error

// WithConfig sets a custom configuration.
func WithConfig(config *Config) Option {
	return func(a *App) error {
		a.config = config
		return nil
	}
}

// WithLogger sets a custom logger.
func WithLogger(logger *zerolog.Logger) Option {
	return func(a *App) error {
		a.logger = logger
		return nil
	}
}
