package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/philipparndt/geodome/internal/config"
	"github.com/philipparndt/geodome/pkg/analysis"
	"github.com/philipparndt/geodome/pkg/geometry"
)

func newMeasureCmd() *cobra.Command {
	flags := &config.Flags{}
	var (
		file                      string
		point1X, point1Y, point1Z float64
		point2X, point2Y, point2Z float64
	)

	cmd := &cobra.Command{
		Use:   "measure",
		Short: "Measure the distance between the hubs nearest two points",
		Long: `Measure the straight-line distance between two 3D points and between the
dome vertices (hubs) nearest to them.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := setup(flags)
			if err != nil {
				return err
			}
			m, label, err := loadMesh(cfg, file)
			if err != nil {
				return err
			}
			if len(m.Vertices) == 0 {
				return fmt.Errorf("%s has no vertices", label)
			}

			p1 := geometry.NewVector3(point1X, point1Y, point1Z)
			p2 := geometry.NewVector3(point2X, point2Y, point2Z)

			i1, dist1 := analysis.FindNearestVertex(m, p1)
			i2, dist2 := analysis.FindNearestVertex(m, p2)
			hub1, hub2 := m.Vertices[i1], m.Vertices[i2]

			out := cmd.OutOrStdout()
			fmt.Fprintln(out, "Point-to-Point Measurement")
			fmt.Fprintln(out, "==========================")

			fmt.Fprintf(out, "\nPoint 1: %s\n", analysis.FormatVector(p1))
			fmt.Fprintf(out, "  Nearest vertex #%d: %s (distance: %.6f)\n", i1, analysis.FormatVector(hub1), dist1)

			fmt.Fprintf(out, "\nPoint 2: %s\n", analysis.FormatVector(p2))
			fmt.Fprintf(out, "  Nearest vertex #%d: %s (distance: %.6f)\n", i2, analysis.FormatVector(hub2), dist2)

			fmt.Fprintf(out, "\nDirect distance: %.6f units\n", p1.Distance(p2))
			fmt.Fprintf(out, "Distance between nearest vertices: %.6f units\n", hub1.Distance(hub2))
			return nil
		},
	}

	flags.Register(cmd.Flags())
	cmd.Flags().StringVar(&file, "file", "", "Measure in this STL file instead of a generated dome")
	cmd.Flags().Float64Var(&point1X, "x1", 0.0, "X coordinate of first point")
	cmd.Flags().Float64Var(&point1Y, "y1", 0.0, "Y coordinate of first point")
	cmd.Flags().Float64Var(&point1Z, "z1", 0.0, "Z coordinate of first point")
	cmd.Flags().Float64Var(&point2X, "x2", 0.0, "X coordinate of second point")
	cmd.Flags().Float64Var(&point2Y, "y2", 0.0, "Y coordinate of second point")
	cmd.Flags().Float64Var(&point2Z, "z2", 0.0, "Z coordinate of second point")
	cmd.MarkFlagsRequiredTogether("x1", "y1", "z1", "x2", "y2", "z2")
	return cmd
}
