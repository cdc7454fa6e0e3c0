package main

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gopkg.in/yaml.v3"

	"github.com/hy4ri/weekdaytab/internal/config"
)

// The template written by --init must load and validate as-is.
func TestConfigTemplateIsValid(t *testing.T) {
	cfg := config.DefaultConfig()
	require.NoError(t, yaml.Unmarshal([]byte(configTemplate), cfg))
	require.NoError(t, cfg.Validate())

	assert.Equal(t, config.DefaultConfig(), cfg)
}
