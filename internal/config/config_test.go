package config

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewServerConfigDefaults(t *testing.T) {
	t.Setenv("DATABASE_URL", "postgres://localhost/careerfolio")
	t.Setenv("PORT", "")
	t.Setenv("DATA_DIR", "")

	cfg, err := NewServerConfig()
	require.NoError(t, err)
	assert.Equal(t, 8080, cfg.Port)
	assert.Equal(t, "data", cfg.DataDir)
	assert.Equal(t, ":8080", cfg.Addr())
}

func TestNewServerConfigRequiresDatabaseURL(t *testing.T) {
	t.Setenv("DATABASE_URL", "")

	_, err := NewServerConfig()
	assert.ErrorContains(t, err, "DATABASE_URL")
}

func TestNewServerConfigInvalidPort(t *testing.T) {
	t.Setenv("DATABASE_URL", "postgres://localhost/careerfolio")

	t.Setenv("PORT", "notanumber")
	_, err := NewServerConfig()
	assert.Error(t, err)

	t.Setenv("PORT", "70000")
	_, err = NewServerConfig()
	assert.ErrorContains(t, err, "out of range")
}
