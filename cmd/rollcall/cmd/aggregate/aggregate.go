// Package aggregate implements the aggregate command: the full pipeline
// from monthly export files to the review workbook.
package aggregate

import (
	"github.com/spf13/cobra"

	"github.com/sutthirak/rollcall/internal/appcontext"
	"github.com/sutthirak/rollcall/internal/formats"
	"github.com/sutthirak/rollcall/internal/report"
	"github.com/sutthirak/rollcall/internal/xlsxio"
	"github.com/sutthirak/rollcall/pkg/absence"
	agg "github.com/sutthirak/rollcall/pkg/aggregate"
	"github.com/sutthirak/rollcall/pkg/errors"
	"github.com/sutthirak/rollcall/pkg/roster"
)

// NewCommand creates the aggregate command. The defaults come from the
// application config so flags, env vars, and the config file all feed
// the same knobs.
func NewCommand(appCtx appcontext.Interface, inputDir, rosterPath, outputPath, auditPath string) *cobra.Command {
	if inputDir == "" {
		inputDir = "."
	}
	if outputPath == "" {
		outputPath = "absence-summary-2568.xlsx"
	}

	cmd := &cobra.Command{
		Use:   "aggregate [dir]",
		Short: "Aggregate monthly absence exports into one summary workbook",
		Long: `Aggregate reads every MM.2568.xlsx file in the input directory,
resolves which rows belong to the same employee across months, and
writes the multi-sheet review workbook.

When a master roster is supplied with --roster, the resolved employees
are reconciled against it: matched employees are re-keyed to their
canonical payroll code and the match audit is added to the workbook.`,
		Args: cobra.MaximumNArgs(1),
		RunE: func(_ *cobra.Command, args []string) error {
			// A positional directory wins over --input and the config.
			if len(args) > 0 {
				inputDir = args[0]
			}
			return run(appCtx, inputDir, rosterPath, outputPath, auditPath)
		},
	}

	cmd.Flags().StringVarP(&inputDir, "input", "i", inputDir, "directory containing the monthly MM.2568.xlsx files")
	cmd.Flags().StringVarP(&rosterPath, "roster", "r", rosterPath, "master roster workbook (optional)")
	cmd.Flags().StringVarP(&outputPath, "output", "o", outputPath, "output workbook path")
	cmd.Flags().StringVar(&auditPath, "audit", auditPath, "write a YAML run audit to this path (optional)")

	return cmd
}

func run(appCtx appcontext.Interface, inputDir, rosterPath, outputPath, auditPath string) error {
	logger := appCtx.Logger()

	sources, err := formats.Discover(inputDir)
	if err != nil {
		return err
	}

	var (
		months   [][]absence.Record
		files    []string
		sections [][]formats.Section
		records  int
	)
	for _, src := range sources {
		ex, err := src.Handler.Extract(src.Path)
		if err != nil {
			// One broken file must not sink the rest of the year.
			logger.Error().Err(err).Str("file", src.Name).Msg("Skipping unreadable file")
			continue
		}
		logger.Info().
			Str("file", src.Name).
			Str("layout", src.Handler.Name()).
			Int("records", len(ex.Records)).
			Msg("Loaded monthly file")

		months = append(months, ex.Records)
		files = append(files, src.Name)
		sections = append(sections, ex.Sections)
		records += len(ex.Records)
	}
	if records == 0 {
		return errors.NewIOError("aggregate", inputDir, errors.ErrNoRecords)
	}

	cfg := appCtx.Matching()
	engine := agg.New(agg.WithConfig(cfg), agg.WithLogger(logger))
	identities := engine.Aggregate(months)

	var audit []roster.Audit
	if rosterPath != "" {
		entries, err := xlsxio.LoadRoster(rosterPath)
		if err != nil {
			return err
		}
		logger.Info().Int("entries", len(entries)).Str("roster", rosterPath).Msg("Loaded master roster")

		matcher := roster.NewMatcher(entries,
			roster.WithConfig(appCtx.RosterMatching()),
			roster.WithLogger(logger))
		identities, audit = matcher.Reconcile(identities)
	}

	review := agg.ReviewCandidates(identities, cfg)
	if len(review) > 0 {
		logger.Warn().Int("pairs", len(review)).Msg("Near-duplicate names surfaced for review")
	}

	data := &report.Data{
		Identities: identities,
		Months:     months,
		Files:      files,
		Sections:   sections,
		Audit:      audit,
		Review:     review,
	}

	if err := report.Write(outputPath, data); err != nil {
		return err
	}
	logger.Info().Str("output", outputPath).Int("employees", len(identities)).Msg("Wrote summary workbook")

	if auditPath != "" {
		if err := report.WriteYAML(auditPath, data); err != nil {
			return err
		}
		logger.Info().Str("audit", auditPath).Msg("Wrote run audit")
	}

	return nil
}
