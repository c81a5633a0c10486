package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/philipparndt/geodome/internal/config"
	"github.com/philipparndt/geodome/internal/logger"
	"github.com/philipparndt/geodome/pkg/openscad"
)

func newGenerateCmd() *cobra.Command {
	flags := &config.Flags{}
	var (
		saveConfig string
		scadPath   string
		scadScale  float64
	)

	cmd := &cobra.Command{
		Use:   "generate",
		Short: "Generate a dome and write it as STL",
		Long: `Generate a geodesic sphere or dome from the configured parameters and write
it to an STL file. Flags override values from the config file.`,
		Example: `  geodome generate -b icosahedron -r 4 -o dome.stl
  geodome generate --base octa --algorithm depth -r 3 --half-dome --format ascii
  geodome generate -r 5 --save-config geodome.yaml
  geodome generate -r 3 --half-dome --scad dome.scad --scale 2500`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := setup(flags)
			if err != nil {
				return err
			}

			m, p, err := buildDome(cfg)
			if err != nil {
				return err
			}
			if err := writeDome(cfg, m); err != nil {
				return err
			}

			fmt.Fprintf(cmd.OutOrStdout(), "Wrote %s: %s, %d vertices, %d faces (%s STL)\n",
				cfg.Output.Path, p, len(m.Vertices), len(m.Faces), cfg.Output.Format)

			if scadPath != "" {
				opts := openscad.Options{Module: cfg.Output.Name, Scale: scadScale}
				if err := openscad.Save(scadPath, m, opts); err != nil {
					return fmt.Errorf("writing %s: %w", scadPath, err)
				}
				fmt.Fprintf(cmd.OutOrStdout(), "Wrote %s (OpenSCAD polyhedron)\n", scadPath)
			}

			if saveConfig != "" {
				if err := cfg.SaveTo(saveConfig); err != nil {
					return fmt.Errorf("saving config: %w", err)
				}
				logger.Info("config saved to " + saveConfig)
			}
			return nil
		},
	}

	flags.Register(cmd.Flags())
	cmd.Flags().StringVar(&scadPath, "scad", "", "Also write the mesh as an OpenSCAD polyhedron to this file")
	cmd.Flags().Float64Var(&scadScale, "scale", 1, "Scale applied to the OpenSCAD polyhedron (dome radius)")
	cmd.Flags().StringVar(&saveConfig, "save-config", "", "Write the effective configuration to this YAML file")
	return cmd
}
