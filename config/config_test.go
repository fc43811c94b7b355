// config/config_test.go
package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeConfig(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "config.yaml")
	require.NoError(t, os.WriteFile(path, []byte(content), 0644))
	return path
}

func TestLoadConfigDefaults(t *testing.T) {
	require.NoError(t, LoadConfig(writeConfig(t, "server:\n  port: \"9090\"\n")))

	assert.Equal(t, "9090", AppConfig.Server.Port)
	// Keys absent from the file keep their defaults.
	assert.Equal(t, 10, AppConfig.Dashboard.TopN)
	assert.Equal(t, 30, AppConfig.Dashboard.HistogramBins)
	assert.True(t, AppConfig.Charts.TopManufacturers)
	assert.True(t, AppConfig.Charts.OwnershipTrend)
	assert.Equal(t, "data/carsownr.csv", AppConfig.Registry.OwnersCSV)
}

func TestLoadConfigChartToggles(t *testing.T) {
	content := "charts:\n  top_models: false\n  age_histogram: false\n"
	require.NoError(t, LoadConfig(writeConfig(t, content)))

	assert.False(t, AppConfig.Charts.TopModels)
	assert.False(t, AppConfig.Charts.AgeHistogram)
	assert.True(t, AppConfig.Charts.TopManufacturers)
}

func TestLoadConfigEnvOverrides(t *testing.T) {
	t.Setenv("PORT", "3000")
	t.Setenv("REGISTRY_OWNERS_CSV", "/tmp/owners.csv")

	require.NoError(t, LoadConfig(writeConfig(t, "server:\n  port: \"9090\"\n")))
	assert.Equal(t, "3000", AppConfig.Server.Port)
	assert.Equal(t, "/tmp/owners.csv", AppConfig.Registry.OwnersCSV)
}

func TestLoadConfigUnreadableFile(t *testing.T) {
	err := LoadConfig(filepath.Join(t.TempDir(), "missing.yaml"))
	require.Error(t, err)
}

func TestLoadConfigInvalidYAML(t *testing.T) {
	err := LoadConfig(writeConfig(t, "server: [not a map"))
	require.Error(t, err)
}
