package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/philipparndt/geodome/internal/logger"
	"github.com/philipparndt/geodome/version"
)

func newRootCmd() *cobra.Command {
	rootCmd := &cobra.Command{
		Use:   "geodome",
		Short: "Generate geodesic spheres and domes",
		Long: `geodome builds geodesic spheres and domes by subdividing an icosahedron,
octahedron, tetrahedron or a single triangle, welding the pieces into an
indexed mesh and optionally projecting it onto the unit sphere.
Meshes are written as ASCII or binary STL.`,
		Version:       version.GetFullVersion(),
		SilenceUsage:  true,
		SilenceErrors: true,
	}

	rootCmd.AddCommand(
		newGenerateCmd(),
		newInfoCmd(),
		newEdgesCmd(),
		newFacesCmd(),
		newMeasureCmd(),
		newWatchCmd(),
		newBasesCmd(),
		newVersionCmd(),
	)
	return rootCmd
}

func main() {
	err := newRootCmd().Execute()
	logger.Sync()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}
