package main

import (
	"fmt"
	"time"

	"github.com/rigup-sh/rigup/internal/domain/run"
	"github.com/spf13/cobra"
)

const timeRounding = 10 * time.Millisecond

var applyCmd = &cobra.Command{
	Use:   "apply UNIT...",
	Short: "Install the named units and their prerequisites",
	Long: `Apply resolves the prerequisites of the named units, installs any that
are not yet present, then installs the units themselves in the order given.

The first failing install aborts the run; already-installed units are left
in place and the run can simply be repeated after fixing the cause.`,
	Args: cobra.MinimumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		log := newLogger()
		p, err := buildProvisioner(log)
		if err != nil {
			return err
		}

		report, runErr := p.Apply(cmd.Context(), args)
		if report != nil {
			printReport(cmd, report)
		}
		return runErr
	},
}

func printReport(cmd *cobra.Command, report *run.Report) {
	out := cmd.OutOrStdout()

	fmt.Fprintln(out, titleStyle.Render("Run "+report.ID()))
	for _, result := range report.Results() {
		switch result.Outcome() {
		case run.OutcomeApplied:
			fmt.Fprintf(out, "  %s %s %s\n", statusGlyph(true), result.ID(),
				mutedStyle.Render(result.Duration().Round(timeRounding).String()))
		case run.OutcomeFailed:
			fmt.Fprintf(out, "  %s %s: %v\n", statusGlyph(false), result.ID(), result.Err())
		case run.OutcomeSkipped:
			fmt.Fprintf(out, "  %s %s\n", mutedStyle.Render("-"), mutedStyle.Render(result.ID().String()+" (skipped)"))
		case run.OutcomeMissing:
			fmt.Fprintf(out, "  %s %s\n", warnStyle.Render("?"), result.ID().String()+" (not in catalog, skipped)")
		}
	}

	s := report.Summary()
	fmt.Fprintln(out, mutedStyle.Render(
		fmt.Sprintf("%d applied, %d failed, %d skipped, %d unknown", s.Applied, s.Failed, s.Skipped, s.Missing)))
}
