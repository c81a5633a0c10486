package main

import (
	"context"
	"errors"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/philipparndt/geodome/internal/config"
	"github.com/philipparndt/geodome/internal/logger"
	"github.com/philipparndt/geodome/pkg/watcher"
)

var errNoConfigFile = errors.New("no config file to watch (pass --config or create ./" + config.FileName + ")")

func newWatchCmd() *cobra.Command {
	flags := &config.Flags{}

	cmd := &cobra.Command{
		Use:   "watch",
		Short: "Regenerate the STL whenever the config file changes",
		Long: `Generate the dome once, then watch the config file and write a fresh STL
every time it is saved. Invalid edits are logged and the previous STL is kept.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			path := config.Path(flags)
			if path == "" {
				return errNoConfigFile
			}

			cfg, err := setup(flags)
			if err != nil {
				return err
			}

			ctx, stop := signal.NotifyContext(cmd.Context(), os.Interrupt, syscall.SIGTERM)
			defer stop()
			return watchConfig(ctx, cmd, flags, path, cfg)
		},
	}

	flags.Register(cmd.Flags())
	return cmd
}

// watchConfig regenerates on every change of path until ctx is done
func watchConfig(ctx context.Context, cmd *cobra.Command, flags *config.Flags, path string, cfg *config.Config) error {
	regenerate := func(cfg *config.Config) {
		m, p, err := buildDome(cfg)
		if err == nil {
			err = writeDome(cfg, m)
		}
		if err != nil {
			logger.Error("regeneration failed", zap.Error(err))
			return
		}
		fmt.Fprintf(cmd.OutOrStdout(), "Wrote %s: %s, %d vertices, %d faces\n",
			cfg.Output.Path, p, len(m.Vertices), len(m.Faces))
	}

	regenerate(cfg)

	fw, err := watcher.NewFileWatcher(cfg.Watch.Debounce, logger.Log)
	if err != nil {
		return err
	}
	defer fw.Close()

	changes := make(chan struct{}, 1)
	if err := fw.Watch([]string{path}, func(string) {
		select {
		case changes <- struct{}{}:
		default:
		}
	}); err != nil {
		return err
	}
	fw.Start(ctx)
	logger.Info("watching for changes", zap.String("path", path))

	for {
		select {
		case <-ctx.Done():
			logger.Info("stopped watching")
			return nil
		case <-changes:
			next, err := config.Load(flags)
			if err != nil {
				logger.Error("config rejected", zap.Error(err))
				continue
			}
			regenerate(next)
		}
	}
}
