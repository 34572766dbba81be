package config

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gopkg.in/yaml.v3"
)

func TestDefaultConfig(t *testing.T) {
	cfg := DefaultConfig()

	assert.Equal(t, DefaultFramework, cfg.Defaults.Framework)
	assert.Equal(t, DefaultDatabase, cfg.Defaults.Database)
	assert.Empty(t, cfg.Defaults.ORM)
	require.NotNil(t, cfg.Defaults.Auth)
	assert.True(t, *cfg.Defaults.Auth)
	require.NotNil(t, cfg.Log.Timestamps)
	assert.True(t, *cfg.Log.Timestamps)
}

func TestDefaultConfigPassesValidation(t *testing.T) {
	data, err := yaml.Marshal(DefaultConfig())
	require.NoError(t, err)

	v, err := NewValidator()
	require.NoError(t, err)
	assert.NoError(t, v.ValidateBytes(data))
}
