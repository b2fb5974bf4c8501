package service_test

import (
	"context"
	"testing"

	"github.com/MKhiriev/go-expense-keeper/internal/logger"
	"github.com/MKhiriev/go-expense-keeper/internal/service"
	"github.com/MKhiriev/go-expense-keeper/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestAppInfoService_ReturnsBuildInfo(t *testing.T) {
	buildInfo := models.NewAppBuildInfo("1.4.0", "2026-08-30", "deadbeef")

	svc, err := service.NewAppInfoService(buildInfo, logger.Nop())
	require.NoError(t, err)

	got := svc.GetAppBuildInfo(context.Background())
	assert.Equal(t, buildInfo, got)
}

func TestAppInfoService_RejectsEmptyVersion(t *testing.T) {
	_, err := service.NewAppInfoService(models.NewAppBuildInfo("", "2026-08-30", "deadbeef"), logger.Nop())
	require.ErrorIs(t, err, service.ErrVersionIsNotSpecified)
}
