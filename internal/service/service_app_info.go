package service

import (
	"context"

	"github.com/MKhiriev/go-patient-guard/internal/config"
	"github.com/MKhiriev/go-patient-guard/internal/logger"
	"github.com/MKhiriev/go-patient-guard/models"
)

type appInfoService struct {
	buildInfo models.AppBuildInfo

	logger *logger.Logger
}

// NewAppInfoService returns an AppInfoService for the configured version.
// Date and commit come from build, when the binary was linked with them.
func NewAppInfoService(cfg config.App, logger *logger.Logger, build ...models.AppBuildInfo) (AppInfoService, error) {
	if cfg.Version == "" {
		return nil, ErrVersionIsNotSpecified
	}

	info := models.NewAppBuildInfo(cfg.Version, "", "")
	if len(build) > 0 {
		info = models.NewAppBuildInfo(cfg.Version, build[0].BuildDate(), build[0].BuildCommit())
	}

	return &appInfoService{
		buildInfo: info,
		logger:    logger,
	}, nil
}

func (s *appInfoService) GetAppVersion(ctx context.Context) string {
	return s.buildInfo.BuildVersion()
}

func (s *appInfoService) BuildInfo(ctx context.Context) models.AppBuildInfo {
	return s.buildInfo
}
