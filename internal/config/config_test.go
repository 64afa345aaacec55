package config

import (
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadDefaults(t *testing.T) {
	cfg, err := Load()
	require.NoError(t, err)

	assert.Equal(t, "8080", cfg.Server.Port)
	assert.Equal(t, "events_data.json", cfg.Data.EventsFile)
	assert.Equal(t, "data", cfg.Data.Dir)
	assert.Equal(t, "admin123", cfg.Auth.Credentials["admin@eventpro.com"])
}

func TestDataConfigPaths(t *testing.T) {
	d := DataConfig{Dir: "data"}
	assert.Equal(t, filepath.Join("data", "engagement_data.json"), d.EngagementFile())
	assert.Equal(t, filepath.Join("data", "tickets_data.json"), d.TicketsFile())
}

func TestEnvOverride(t *testing.T) {
	t.Setenv("APP_SERVER_PORT", "9090")

	cfg, err := Load()
	require.NoError(t, err)
	assert.Equal(t, "9090", cfg.Server.Port)
}
