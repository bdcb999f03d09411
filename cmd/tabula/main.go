package main

import (
	"context"
	"os"

	"pkt.systems/psi"
	"pkt.systems/pslog"

	"github.com/javiermolinar/tabula/internal/config"
	"github.com/javiermolinar/tabula/internal/ui"
)

func main() {
	psi.Run(submain)
}

func submain(ctx context.Context) int {
	logger := pslog.LoggerFromEnv(
		pslog.WithEnvWriter(os.Stderr),
		pslog.WithEnvOptions(pslog.Options{Mode: pslog.ModeConsole}),
	)
	ctx = pslog.ContextWithLogger(ctx, logger)

	cfg, err := config.Load()
	if err != nil {
		logger.With("err", err).Error("loading config")
		return 1
	}

	app := ui.NewApp(nil, cfg)
	defer func() { _ = app.Close() }()

	if err := app.Execute(ctx); err != nil {
		logger.With("err", err).Error("tabula command failed")
		return 1
	}
	return 0
}
