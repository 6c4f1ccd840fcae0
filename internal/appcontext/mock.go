package appcontext

import (
	"github.com/rs/zerolog"

	"github.com/sutthirak/rollcall/pkg/aggregate"
	"github.com/sutthirak/rollcall/pkg/logging"
	"github.com/sutthirak/rollcall/pkg/roster"
)

// Mock implements Interface for command tests. Each method can be
// customized by setting the corresponding function field; nil fields
// return quiet defaults.
type Mock struct {
	LoggerFunc         func() *zerolog.Logger
	MatchingFunc       func() aggregate.Config
	RosterMatchingFunc func() roster.Config
	VersionFunc        func() string
	CommitFunc         func() string
	DateFunc           func() string
	BuiltByFunc        func() string
}

// Logger returns the mock logger, or a no-op logger.
func (m *Mock) Logger() *zerolog.Logger {
	if m.LoggerFunc != nil {
		return m.LoggerFunc()
	}
	return &logging.Nop
}

// Matching returns the mock thresholds, or the defaults.
func (m *Mock) Matching() aggregate.Config {
	if m.MatchingFunc != nil {
		return m.MatchingFunc()
	}
	return aggregate.DefaultConfig()
}

// RosterMatching returns the mock roster threshold, or the default.
func (m *Mock) RosterMatching() roster.Config {
	if m.RosterMatchingFunc != nil {
		return m.RosterMatchingFunc()
	}
	return roster.DefaultConfig()
}

// Version returns the mock version, or "test".
func (m *Mock) Version() string {
	if m.VersionFunc != nil {
		return m.VersionFunc()
	}
	return "test"
}

// Commit returns the mock commit, or "unknown".
func (m *Mock) Commit() string {
	if m.CommitFunc != nil {
		return m.CommitFunc()
	}
	return "unknown"
}

// Date returns the mock build date, or "unknown".
func (m *Mock) Date() string {
	if m.DateFunc != nil {
		return m.DateFunc()
	}
	return "unknown"
}

// BuiltBy returns the mock builder, or "test".
func (m *Mock) BuiltBy() string {
	if m.BuiltByFunc != nil {
		return m.BuiltByFunc()
	}
	return "test"
}
