// Command credmigrate replaces every legacy plaintext credential in the
// users table with its SHA-256 digest. Running it again is a no-op.
package main

import (
	"context"
	"fmt"
	"os"

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

	log := logger.NewLogger("credmigrate")
	cfg, err := config.GetStructuredConfig(os.Args[1:])
	if err != nil {
		log.Fatal().Err(err).Msg("error getting configs")
	}
	cfg.Retention.Enabled = false

	ctx := logger.ContextWithLogger(context.Background(), log)
	a, err := app.New(ctx, cfg, build, prometheus.NewRegistry(), log)
	if err != nil {
		log.Fatal().Err(err).Msg("init records app error")
	}

	migrated, err := a.Services.AuthService.MigrateLegacyCredentials(ctx)
	if closeErr := a.Close(); closeErr != nil {
		log.Err(closeErr).Msg("close storage")
	}
	if err != nil {
		log.Err(err).Int("migrated", migrated).Msg("credential migration failed")
		fmt.Fprintln(os.Stderr, app.Message(err))
		os.Exit(1)
	}

	fmt.Printf("migrated %d credential(s)\n", migrated)
}
