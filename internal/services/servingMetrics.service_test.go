package services_test

import (
	"net/http"
	"os"
	"path/filepath"
	"testing"

	"cinelog/config"
	"cinelog/internal/services"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestServingMetricsService_Record(t *testing.T) {
	service := services.NewServingMetricsService(config.Config{
		MetricsOutputDir:  t.TempDir(),
		MetricsThresholds: "100",
	})

	service.Record(http.StatusOK, []byte("movie+a,movie+b"))
	service.Record(http.StatusOK, []byte("movie+a,movie+b"))
	service.Record(http.StatusOK, []byte("movie+c,movie+d"))
	service.Record(http.StatusBadRequest, []byte("invalid user id"))
	service.Record(http.StatusInternalServerError, nil)

	snapshot := service.Snapshot()
	assert.Equal(t, 5, snapshot.TotalRequests)
	assert.Equal(t, 2, snapshot.InvalidResponses)
	assert.Equal(t, 2, snapshot.UniqueResponses)
}

func TestServingMetricsService_ThresholdFlush(t *testing.T) {
	dir := t.TempDir()
	service := services.NewServingMetricsService(config.Config{
		MetricsOutputDir:  dir,
		MetricsThresholds: "3,5",
	})

	service.Record(http.StatusOK, []byte("movie+a"))
	service.Record(http.StatusOK, []byte("movie+b"))

	reportPath := filepath.Join(dir, "serving_metrics_3.txt")
	_, err := os.Stat(reportPath)
	assert.True(t, os.IsNotExist(err), "report written before threshold")

	service.Record(http.StatusNotFound, nil)

	content, err := os.ReadFile(reportPath)
	require.NoError(t, err)
	assert.Contains(t, string(content), "Number of Invalid Responses: 1")
	assert.Contains(t, string(content), "Number of Unique Responses: 2")
	assert.Contains(t, string(content), "Unique Responses Rate: 1")
	assert.Contains(t, string(content), "Total Number of Requests: 3")

	service.Record(http.StatusOK, []byte("movie+a"))
	service.Record(http.StatusOK, []byte("movie+c"))

	content, err = os.ReadFile(filepath.Join(dir, "serving_metrics_5.txt"))
	require.NoError(t, err)
	assert.Contains(t, string(content), "Total Number of Requests: 5")
	assert.Contains(t, string(content), "Number of Unique Responses: 3")
}

func TestServingMetricsService_DefaultThresholds(t *testing.T) {
	service := services.NewServingMetricsService(config.Config{})

	// unparseable configuration falls back silently to the defaults
	service.Record(http.StatusOK, []byte("movie+a"))
	snapshot := service.Snapshot()
	assert.Equal(t, 1, snapshot.TotalRequests)
}
