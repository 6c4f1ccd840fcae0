// Package appcontext provides the shared application context interface
// used by all commands. Commands accept this interface rather than the
// concrete App type, which keeps them testable with the Mock below.
package appcontext

import (
	"github.com/rs/zerolog"

	"github.com/sutthirak/rollcall/pkg/aggregate"
	"github.com/sutthirak/rollcall/pkg/roster"
)

// Interface defines the application context that commands need.
// The App struct from cmd/rollcall/app implements it.
type Interface interface {
	// Logger returns the configured logger instance.
	Logger() *zerolog.Logger

	// Matching returns the identity-matching thresholds.
	Matching() aggregate.Config

	// RosterMatching returns the roster reconciliation threshold.
	RosterMatching() roster.Config

	// Version returns the application version string.
	Version() string

	// Commit returns the git commit hash.
	Commit() string

	// Date returns the build date.
	Date() string

	// BuiltBy returns the build system identifier.
	BuiltBy() string
}
