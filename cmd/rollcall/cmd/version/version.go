// Package version implements the version command.
package version

import (
	"fmt"
	"runtime"

	"github.com/spf13/cobra"

	"github.com/sutthirak/rollcall/internal/appcontext"
)

// NewCommand creates the version command.
func NewCommand(appCtx appcontext.Interface) *cobra.Command {
	var short bool

	cmd := &cobra.Command{
		Use:   "version",
		Short: "Show version information",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			out := cmd.OutOrStdout()
			if short {
				fmt.Fprintln(out, appCtx.Version())
				return nil
			}
			fmt.Fprintf(out, "rollcall %s\n", appCtx.Version())
			fmt.Fprintf(out, "  commit:   %s\n", appCtx.Commit())
			fmt.Fprintf(out, "  built:    %s by %s\n", appCtx.Date(), appCtx.BuiltBy())
			fmt.Fprintf(out, "  platform: %s/%s (%s)\n", runtime.GOOS, runtime.GOARCH, runtime.Version())
			return nil
		},
	}

	cmd.Flags().BoolVar(&short, "short", false, "print the bare version string")

	return cmd
}
