package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/philipparndt/geodome/pkg/polyhedra"
)

func newBasesCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "bases",
		Short: "List the base solids",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			out := cmd.OutOrStdout()
			fmt.Fprintf(out, "%-3s %-12s %-14s %-14s\n", "ID", "Name", "Full (V/F)", "Half (V/F)")
			fmt.Fprintln(out, "-----------------------------------------------")
			for _, s := range polyhedra.Shapes {
				full, err := polyhedra.Get(s, false)
				if err != nil {
					return err
				}
				half, err := polyhedra.Get(s, true)
				if err != nil {
					return err
				}
				fmt.Fprintf(out, "%-3d %-12s %-14s %-14s\n", int(s), s,
					fmt.Sprintf("%d/%d", len(full.Vertices), len(full.Faces)),
					fmt.Sprintf("%d/%d", len(half.Vertices), len(half.Faces)))
			}
			return nil
		},
	}
}
