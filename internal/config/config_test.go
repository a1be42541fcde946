package config

import (
	"errors"
	"os"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/abhisek/kuku/internal/drill"
)

func TestLoad_Defaults(t *testing.T) {
	for _, k := range []string{"KUKU_ENV", "KUKU_FROM", "KUKU_TO", "KUKU_CHANT", "KUKU_SEED", "KUKU_LOG_FILE"} {
		t.Setenv(k, "")
		os.Unsetenv(k)
	}

	cfg, err := Load()
	require.NoError(t, err)

	assert.Equal(t, "local", cfg.Env)
	assert.Equal(t, 1, cfg.From)
	assert.Equal(t, 9, cfg.To)
	assert.True(t, cfg.Chant)
	assert.Zero(t, cfg.Seed)
	assert.Empty(t, cfg.LogFile)
	assert.False(t, cfg.IsProduction())

	r, err := cfg.Range()
	require.NoError(t, err)
	assert.Equal(t, drill.FullRange(), r)
}

func TestLoad_FromEnv(t *testing.T) {
	t.Setenv("KUKU_ENV", "production")
	t.Setenv("KUKU_FROM", "3")
	t.Setenv("KUKU_TO", "5")
	t.Setenv("KUKU_CHANT", "false")
	t.Setenv("KUKU_SEED", "42")
	t.Setenv("KUKU_LOG_FILE", "/tmp/kuku.log")

	cfg, err := Load()
	require.NoError(t, err)

	assert.True(t, cfg.IsProduction())
	assert.Equal(t, 3, cfg.From)
	assert.Equal(t, 5, cfg.To)
	assert.False(t, cfg.Chant)
	assert.Equal(t, uint64(42), cfg.Seed)
	assert.Equal(t, "/tmp/kuku.log", cfg.LogFile)
}

func TestLoad_BadValue(t *testing.T) {
	t.Setenv("KUKU_FROM", "three")

	_, err := Load()
	require.Error(t, err)
	assert.Contains(t, err.Error(), "parse env")
}

func TestRange_Invalid(t *testing.T) {
	cfg := &Config{From: 10, To: 9}
	_, err := cfg.Range()
	assert.True(t, errors.Is(err, drill.ErrInvalidRange))
}
