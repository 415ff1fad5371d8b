package main

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestTierOf(t *testing.T) {
	for _, n := range []int{256, 512, 1024} {
		tier, err := tierOf(n)
		require.NoError(t, err, "tier %v", n)
		assert.Equal(t, n, tier)
	}
	for _, n := range []int{0, -256, 300, 2048} {
		_, err := tierOf(n)
		require.Error(t, err, "tier %v", n)
		assert.Contains(t, err.Error(), "invalid tier")
	}
}

func TestConfigLoadFile(t *testing.T) {
	writeConfig := func(body string) string {
		path := filepath.Join(t.TempDir(), "config.json")
		require.NoError(t, os.WriteFile(path, []byte(body), 0o644))
		return path
	}

	var cfg config
	require.NoError(t, cfg.loadFile(writeConfig(`{"tier": 512, "steps": 100, "trace": true}`)))
	assert.Equal(t, config{tier: 512, steps: 100, trace: true}, cfg)

	cfg = config{}
	require.NoError(t, cfg.loadFile(writeConfig(`{"steps": 7}`)))
	assert.Equal(t, config{steps: 7}, cfg)

	cfg = config{}
	err := cfg.loadFile(writeConfig(`{"tier": 300}`))
	require.Error(t, err)
	assert.Contains(t, err.Error(), "invalid tier")
}
