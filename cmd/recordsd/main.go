package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/prometheus/client_golang/prometheus"

	"github.com/MKhiriev/go-patient-guard/internal/app"
	"github.com/MKhiriev/go-patient-guard/internal/config"
	"github.com/MKhiriev/go-patient-guard/internal/logger"
	"github.com/MKhiriev/go-patient-guard/models"
)

var (
	buildVersion string
	buildDate    string
	buildCommit  string
)

func main() {
	build := models.NewAppBuildInfo(buildVersion, buildDate, buildCommit)
	fmt.Print(build)

	log := logger.NewLogger("recordsd")
	cfg, err := config.GetStructuredConfig(os.Args[1:])
	if err != nil {
		log.Fatal().Err(err).Msg("error getting configs")
	}
	if err = log.SetLevel(cfg.App.LogLevel); err != nil {
		log.Fatal().Err(err).Msg("invalid log level")
	}

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()
	ctx = logger.ContextWithLogger(ctx, log)

	a, err := app.New(ctx, cfg, build, prometheus.DefaultRegisterer, log)
	if err != nil {
		log.Fatal().Err(err).Msg("init records app error")
	}
	defer func() {
		if err := a.Close(); err != nil {
			log.Err(err).Msg("close storage")
		}
	}()

	if err = a.Run(ctx); err != nil {
		log.Err(err).Msg("records daemon stopped with error")
		return
	}
	log.Info().Msg("records daemon stopped")
}
