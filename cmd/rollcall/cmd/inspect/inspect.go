// Package inspect implements the inspect command for examining monthly
// export files without running the full pipeline.
package inspect

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/sutthirak/rollcall/internal/appcontext"
	"github.com/sutthirak/rollcall/internal/formats"
	"github.com/sutthirak/rollcall/pkg/absence"
	"github.com/sutthirak/rollcall/pkg/names"
)

// NewCommand creates the inspect command.
func NewCommand(appCtx appcontext.Interface) *cobra.Command {
	var showRecords bool

	cmd := &cobra.Command{
		Use:   "inspect <file>...",
		Short: "Inspect monthly export files",
		Long: `Inspect shows how a monthly export file will be read: the layout it
routes to, the number of usable records, and the per-type totals. Use it
to sanity-check a new file before aggregating a whole directory.

Examples:
  rollcall inspect 01.2568.xlsx
  rollcall inspect --records 11.2568.xlsx`,
		Args: cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			for i, arg := range args {
				if i > 0 {
					fmt.Fprintln(cmd.OutOrStdout())
				}
				if err := inspectFile(cmd, appCtx, arg, showRecords); err != nil {
					return err
				}
			}
			return nil
		},
	}

	cmd.Flags().BoolVar(&showRecords, "records", false, "list every record with its parsed name key")

	return cmd
}

func inspectFile(cmd *cobra.Command, appCtx appcontext.Interface, path string, showRecords bool) error {
	out := cmd.OutOrStdout()

	handler, month, err := formats.ForFile(path)
	if err != nil {
		return err
	}

	ex, err := handler.Extract(path)
	if err != nil {
		return err
	}

	var totals absence.Totals
	unparseable := 0
	for _, rec := range ex.Records {
		totals.Add(rec.Totals)
		if _, ok := names.Parse(rec.RawName); !ok {
			unparseable++
		}
	}

	fmt.Fprintf(out, "  File: %s\n", path)
	fmt.Fprintf(out, "Layout: %s (month %s)\n", handler.Name(), month)
	fmt.Fprintf(out, "  Rows: %d records", len(ex.Records))
	if unparseable > 0 {
		fmt.Fprintf(out, " (%d with unparseable names)", unparseable)
	}
	fmt.Fprintln(out)

	for i, h := range absence.TypeHeaders {
		if totals[i] == 0 {
			continue
		}
		fmt.Fprintf(out, "        %s: %g\n", h, totals[i])
	}
	for _, sec := range ex.Sections {
		fmt.Fprintf(out, "Section %s: %g work days\n", sec.Name, sec.Totals[absence.WorkDays])
	}

	if showRecords {
		fmt.Fprintln(out)
		for _, rec := range ex.Records {
			parsed, ok := names.Parse(rec.RawName)
			if !ok {
				fmt.Fprintf(out, "  %-10s  %s  [unparseable]\n", rec.ID, rec.RawName)
				continue
			}
			fmt.Fprintf(out, "  %-10s  %s  key=%s", rec.ID, parsed.Display, parsed.Key.String())
			if parsed.Note != "" {
				fmt.Fprintf(out, "  note=%q", parsed.Note)
			}
			fmt.Fprintln(out)
		}
	}

	appCtx.Logger().Debug().Str("file", path).Int("records", len(ex.Records)).Msg("Inspected file")
	return nil
}
