package app

import (
	"github.com/spf13/cobra"

	"github.com/sutthirak/rollcall/cmd/rollcall/cmd/aggregate"
	"github.com/sutthirak/rollcall/cmd/rollcall/cmd/inspect"
	"github.com/sutthirak/rollcall/cmd/rollcall/cmd/version"
)

// registerCommands registers all subcommands with the root command.
func (a *App) registerCommands(rootCmd *cobra.Command) {
	rootCmd.AddCommand(aggregate.NewCommand(a, a.config.InputDir, a.config.RosterPath, a.config.OutputPath, a.config.AuditPath))
	rootCmd.AddCommand(inspect.NewCommand(a))
	rootCmd.AddCommand(version.NewCommand(a))
}
