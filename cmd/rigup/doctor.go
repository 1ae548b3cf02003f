package main

import (
	"errors"
	"fmt"

	"github.com/rigup-sh/rigup/internal/adapters/command"
	"github.com/rigup-sh/rigup/internal/app"
	"github.com/spf13/cobra"
)

var doctorCmd = &cobra.Command{
	Use:   "doctor",
	Short: "Check that this host can run a provisioning pass",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		out := cmd.OutOrStdout()
		fmt.Fprintln(out, titleStyle.Render("Host checks"))

		healthy := true
		for _, check := range app.Doctor(cmd.Context(), command.NewExecRunner()) {
			fmt.Fprintf(out, "  %s %s", statusGlyph(check.OK), check.Name)
			if check.Detail != "" {
				fmt.Fprintf(out, " %s", mutedStyle.Render(check.Detail))
			}
			fmt.Fprintln(out)
			if !check.OK {
				healthy = false
			}
		}

		if !healthy {
			return errors.New("host is not ready; fix the failed checks above")
		}
		return nil
	},
}
