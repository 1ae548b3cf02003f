package main

import (
	"fmt"

	"github.com/rigup-sh/rigup/internal/domain/catalog"
	"github.com/spf13/cobra"
)

var planCmd = &cobra.Command{
	Use:   "plan UNIT...",
	Short: "Show what apply would install, without installing anything",
	Args:  cobra.MinimumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		log := newLogger()
		p, err := buildProvisioner(log)
		if err != nil {
			return err
		}

		entries, err := p.Plan(cmd.Context(), args)
		if err != nil {
			return err
		}

		out := cmd.OutOrStdout()
		fmt.Fprintln(out, titleStyle.Render("Plan"))
		for _, e := range entries {
			var marker, note string
			switch {
			case !e.Known:
				marker = warnStyle.Render("?")
				note = "not in catalog, would be skipped"
			case e.Status == catalog.StatusSatisfied && e.Dependency:
				marker = successStyle.Render("✓")
				note = "prerequisite, already installed"
			case e.Dependency:
				marker = warnStyle.Render("+")
				note = "prerequisite, would install"
			case e.Status == catalog.StatusSatisfied:
				// Requested units reinstall even when present.
				marker = warnStyle.Render("+")
				note = "would install (already present)"
			default:
				marker = warnStyle.Render("+")
				note = "would install"
			}
			fmt.Fprintf(out, "  %s %s %s\n", marker, e.ID, mutedStyle.Render(note))
		}
		fmt.Fprintln(out, mutedStyle.Render(fmt.Sprintf("%d unit(s)", len(entries))))
		return nil
	},
}
