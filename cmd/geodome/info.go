package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/philipparndt/geodome/internal/config"
	"github.com/philipparndt/geodome/pkg/analysis"
)

func newInfoCmd() *cobra.Command {
	flags := &config.Flags{}
	var file string

	cmd := &cobra.Command{
		Use:   "info",
		Short: "Display statistics of a dome or an STL file",
		Long:  "Show vertex, face and edge counts, Euler characteristic, dimensions, surface area and strut classes.",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := setup(flags)
			if err != nil {
				return err
			}
			m, label, err := loadMesh(cfg, file)
			if err != nil {
				return err
			}

			result := analysis.AnalyzeMesh(m)
			out := cmd.OutOrStdout()

			fmt.Fprintln(out, "Dome Information")
			fmt.Fprintln(out, "================")
			fmt.Fprintf(out, "Source: %s\n\n", label)

			fmt.Fprintln(out, "Mesh Statistics:")
			fmt.Fprintf(out, "  Vertices: %d\n", result.VertexCount)
			fmt.Fprintf(out, "  Faces: %d\n", result.TriangleCount)
			fmt.Fprintf(out, "  Edges: %d\n", result.EdgeCount)
			fmt.Fprintf(out, "  Boundary Edges: %d\n", result.BoundaryEdgeCount)
			fmt.Fprintf(out, "  Euler Characteristic: %d\n", result.EulerCharacteristic)
			fmt.Fprintf(out, "  Surface Area: %.6f square units\n\n", result.SurfaceArea)

			fmt.Fprintln(out, "Bounding Box:")
			fmt.Fprintf(out, "  Min: %s\n", analysis.FormatVector(result.BoundingBox.Min))
			fmt.Fprintf(out, "  Max: %s\n", analysis.FormatVector(result.BoundingBox.Max))
			fmt.Fprintf(out, "  Center: %s\n\n", analysis.FormatVector(result.BoundingBox.Center()))

			fmt.Fprintln(out, "Dimensions:")
			fmt.Fprintf(out, "  Width (X): %.6f units\n", result.Dimensions.X)
			fmt.Fprintf(out, "  Depth (Y): %.6f units\n", result.Dimensions.Y)
			fmt.Fprintf(out, "  Height (Z): %.6f units\n", result.Dimensions.Z)
			fmt.Fprintf(out, "  Mean Radius: %.6f units\n\n", result.MeanRadius)

			fmt.Fprintln(out, "Edge Lengths:")
			fmt.Fprintf(out, "  Minimum: %.6f units\n", result.MinEdgeLength)
			fmt.Fprintf(out, "  Maximum: %.6f units\n", result.MaxEdgeLength)
			fmt.Fprintf(out, "  Average: %.6f units\n", result.AvgEdgeLength)
			fmt.Fprintf(out, "  Strut Classes: %d\n", len(result.Struts))
			return nil
		},
	}

	flags.Register(cmd.Flags())
	cmd.Flags().StringVar(&file, "file", "", "Analyze this STL file instead of generating a dome")
	return cmd
}
