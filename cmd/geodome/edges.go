package main

import (
	"fmt"
	"io"

	"github.com/spf13/cobra"

	"github.com/philipparndt/geodome/internal/config"
	"github.com/philipparndt/geodome/pkg/analysis"
)

func newEdgesCmd() *cobra.Command {
	flags := &config.Flags{}
	var (
		file      string
		count     int
		longest   bool
		shortest  bool
		minLength float64
		maxLength float64
		tolerance float64
	)

	cmd := &cobra.Command{
		Use:   "edges",
		Short: "List strut classes and measure edges",
		Long: `Group the unique edges of a dome into strut classes of equal length and list
the longest, shortest, or edges within a length range.`,
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

			result := analysis.AnalyzeMesh(m)
			out := cmd.OutOrStdout()

			struts := result.Struts
			if cmd.Flags().Changed("tolerance") {
				struts = analysis.StrutClasses(result.AllEdges, result.MeanRadius, tolerance)
			}

			fmt.Fprintf(out, "Strut Classes (%s)\n", label)
			fmt.Fprintln(out, "====================")
			fmt.Fprintf(out, "%-6s %-12s %-14s %-8s\n", "Strut", "Length", "Chord Factor", "Count")
			for _, s := range struts {
				fmt.Fprintf(out, "%-6s %-12.6f %-14.6f %-8d\n", s.Label, s.Length, s.ChordFactor, s.Count)
			}
			fmt.Fprintf(out, "Total: %d edges, %d classes\n\n", result.EdgeCount, len(struts))

			var edges []analysis.EdgeInfo
			var title string

			switch {
			case longest:
				edges = analysis.FindLongestEdges(result, count)
				title = fmt.Sprintf("Top %d Longest Edges", len(edges))
			case shortest:
				edges = analysis.FindShortestEdges(result, count)
				title = fmt.Sprintf("Top %d Shortest Edges", len(edges))
			case maxLength > 0:
				edges = analysis.FindEdgesByLength(result, minLength, maxLength)
				title = fmt.Sprintf("Edges between %.6f and %.6f units (found %d)", minLength, maxLength, len(edges))
				if len(edges) > count {
					edges = edges[:count]
				}
			default:
				return nil
			}

			printEdges(out, title, edges)
			return nil
		},
	}

	flags.Register(cmd.Flags())
	cmd.Flags().StringVar(&file, "file", "", "Analyze this STL file instead of generating a dome")
	cmd.Flags().IntVarP(&count, "count", "n", 10, "Number of edges to display")
	cmd.Flags().BoolVarP(&longest, "longest", "l", false, "Show longest edges")
	cmd.Flags().BoolVarP(&shortest, "shortest", "s", false, "Show shortest edges")
	cmd.Flags().Float64Var(&minLength, "min", 0.0, "Minimum edge length filter")
	cmd.Flags().Float64Var(&maxLength, "max", 0.0, "Maximum edge length filter")
	cmd.Flags().Float64Var(&tolerance, "tolerance", analysis.DefaultStrutTolerance, "Length difference within which edges share a strut class")
	cmd.MarkFlagsMutuallyExclusive("longest", "shortest")
	return cmd
}

func printEdges(out io.Writer, title string, edges []analysis.EdgeInfo) {
	fmt.Fprintln(out, title)
	fmt.Fprintln(out, "====================")
	if len(edges) == 0 {
		fmt.Fprintln(out, "No edges found matching the criteria.")
		return
	}

	fmt.Fprintf(out, "%-6s %-35s %-35s %-15s\n", "Index", "Start", "End", "Length")
	fmt.Fprintln(out, "-----------------------------------------------------------------------------------------------------------")
	for i, edge := range edges {
		fmt.Fprintf(out, "%-6d %-35s %-35s %-15.6f\n",
			i+1,
			analysis.FormatVector(edge.Start),
			analysis.FormatVector(edge.End),
			edge.Length)
	}
}
