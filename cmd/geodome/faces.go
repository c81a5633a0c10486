package main

import (
	"fmt"
	"math"

	"github.com/spf13/cobra"

	"github.com/philipparndt/geodome/internal/config"
	"github.com/philipparndt/geodome/pkg/analysis"
)

func newFacesCmd() *cobra.Command {
	flags := &config.Flags{}
	var (
		file     string
		count    int
		largest  bool
		smallest bool
	)

	cmd := &cobra.Command{
		Use:   "faces",
		Short: "Analyze the triangular panels of a dome",
		Long:  "Display panel statistics including area and perimeter, optionally sorted by area.",
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

			faces := analysis.Faces(m)
			totalArea := 0.0
			minArea := math.MaxFloat64
			maxArea := 0.0
			for _, f := range faces {
				totalArea += f.Area
				minArea = math.Min(minArea, f.Area)
				maxArea = math.Max(maxArea, f.Area)
			}
			if len(faces) == 0 {
				minArea = 0
			}

			out := cmd.OutOrStdout()
			fmt.Fprintf(out, "Panel Analysis (%s)\n", label)
			fmt.Fprintln(out, "====================")
			fmt.Fprintf(out, "Total panels: %d\n", len(faces))
			fmt.Fprintf(out, "Total area: %.6f square units\n", totalArea)
			if len(faces) > 0 {
				fmt.Fprintf(out, "Average area: %.6f square units\n", totalArea/float64(len(faces)))
			}
			fmt.Fprintf(out, "Min area: %.6f square units\n", minArea)
			fmt.Fprintf(out, "Max area: %.6f square units\n\n", maxArea)

			title := "Panels"
			switch {
			case largest:
				analysis.SortFacesByArea(faces, true)
				title = "Largest Panels"
			case smallest:
				analysis.SortFacesByArea(faces, false)
				title = "Smallest Panels"
			}
			if len(faces) > count {
				faces = faces[:count]
			}

			fmt.Fprintf(out, "%s (showing %d)\n", title, len(faces))
			fmt.Fprintf(out, "%-7s %-14s %-14s\n", "Index", "Area", "Perimeter")
			fmt.Fprintln(out, "-------------------------------------")
			for _, f := range faces {
				fmt.Fprintf(out, "%-7d %-14.6f %-14.6f\n", f.Index, f.Area, f.Perimeter)
			}
			return nil
		},
	}

	flags.Register(cmd.Flags())
	cmd.Flags().StringVar(&file, "file", "", "Analyze this STL file instead of generating a dome")
	cmd.Flags().IntVarP(&count, "count", "n", 10, "Number of panels to display")
	cmd.Flags().BoolVarP(&largest, "largest", "l", false, "Show largest panels by area")
	cmd.Flags().BoolVarP(&smallest, "smallest", "s", false, "Show smallest panels by area")
	cmd.MarkFlagsMutuallyExclusive("largest", "smallest")
	return cmd
}
