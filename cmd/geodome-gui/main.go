package main

import (
	"fmt"
	"os"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/app"
	"github.com/spf13/pflag"
	"go.uber.org/zap"

	"github.com/philipparndt/geodome/internal/config"
	"github.com/philipparndt/geodome/internal/logger"
)

func main() {
	flags := &config.Flags{}
	flags.Register(pflag.CommandLine)
	pflag.Parse()

	cfg, err := config.Load(flags)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
	if err := logger.Init(cfg.Logging.Level, cfg.Logging.LogFile); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
	defer logger.Sync()

	params, err := cfg.Dome.Params()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
	logger.Info("starting", zap.Stringer("params", params))

	a := app.NewWithID("com.github.philipparndt.geodome")
	w := a.NewWindow("GeoDome - Geodesic Dome Generator")

	dome := newDomeApp(a, w, cfg, params)
	w.SetContent(dome.build())
	w.Resize(fyne.NewSize(1200, 800))
	dome.regenerate()
	w.ShowAndRun()
}
