package main

import (
	"fmt"

	"github.com/spf13/cobra"
)

var listCmd = &cobra.Command{
	Use:   "list",
	Short: "List the units the catalog can install",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		log := newLogger()
		p, err := buildProvisioner(log)
		if err != nil {
			return err
		}

		out := cmd.OutOrStdout()
		cat := p.Catalog()
		fmt.Fprintln(out, titleStyle.Render("Catalog"))
		for _, id := range cat.IDs() {
			fmt.Fprintf(out, "  %s\n", id)
		}
		fmt.Fprintln(out, mutedStyle.Render(fmt.Sprintf("%d unit(s)", cat.Len())))
		return nil
	},
}
