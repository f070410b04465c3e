package config

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadDefaults(t *testing.T) {
	cfg, err := Load()
	require.NoError(t, err)

	assert.Equal(t, "local", cfg.AppEnv)
	assert.Equal(t, 8080, cfg.Port)
	assert.Equal(t, "srs_24_07.csv", cfg.RatingsCSV)
	assert.Equal(t, "team_metadata.csv", cfg.TeamMetadataCSV)
	assert.Empty(t, cfg.BearerToken)
	assert.Equal(t, ":8080", cfg.ListenAddr())
}

func TestLoadOverrides(t *testing.T) {
	t.Setenv("PORT", "9000")
	t.Setenv("RATINGS_CSV", "/data/ratings.csv")
	t.Setenv("API_BEARER_TOKEN", "sekrit")

	cfg, err := Load()
	require.NoError(t, err)
	assert.Equal(t, 9000, cfg.Port)
	assert.Equal(t, "/data/ratings.csv", cfg.RatingsCSV)
	assert.Equal(t, "sekrit", cfg.BearerToken)
}

func TestLoadRejectsBadPort(t *testing.T) {
	t.Setenv("PORT", "0")

	_, err := Load()
	assert.Error(t, err)
}
