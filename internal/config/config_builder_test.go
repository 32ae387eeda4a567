package config

import (
	"encoding/json"
	"os"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// ── helpers ───────────────────────────────────────────────────────────────────

func writeTempJSONConfig(t *testing.T, v any) string {
	t.Helper()
	data, err := json.Marshal(v)
	require.NoError(t, err)
	f, err := os.CreateTemp(t.TempDir(), "config-*.json")
	require.NoError(t, err)
	_, err = f.Write(data)
	require.NoError(t, err)
	require.NoError(t, f.Close())
	return f.Name()
}

// ── build ─────────────────────────────────────────────────────────────────────

func TestNewConfigBuilder_InitialState(t *testing.T) {
	b := newConfigBuilder(nil)
	require.NotNil(t, b)
	assert.NoError(t, b.err)
	assert.Empty(t, b.configs)
}

func TestBuild_EmptyBuilder(t *testing.T) {
	cfg, err := newConfigBuilder(nil).build()
	require.NoError(t, err)
	assert.Equal(t, &StructuredConfig{}, cfg)
}

func TestBuild_PropagatesBuilderError(t *testing.T) {
	b := newConfigBuilder(nil)
	b.err = assert.AnError

	cfg, err := b.build()
	assert.Nil(t, cfg)
	assert.ErrorIs(t, err, assert.AnError)
}

// TestBuild_LaterSourceOverrides verifies that a later non-zero field wins
// and a later zero field keeps the earlier value.
func TestBuild_LaterSourceOverrides(t *testing.T) {
	b := newConfigBuilder(nil)
	b.configs = append(b.configs,
		&StructuredConfig{App: App{Version: "1.0.0", TokenIssuer: "first"}},
		&StructuredConfig{App: App{TokenIssuer: "second"}},
	)

	cfg, err := b.build()
	require.NoError(t, err)
	assert.Equal(t, "1.0.0", cfg.App.Version)
	assert.Equal(t, "second", cfg.App.TokenIssuer)
}

// ── withDefaults ──────────────────────────────────────────────────────────────

func TestWithDefaults(t *testing.T) {
	cfg, err := newConfigBuilder(nil).withDefaults().build()
	require.NoError(t, err)

	assert.Equal(t, DefaultGenerationTimeout, cfg.Generation.Timeout)
	assert.Equal(t, 30*time.Second, cfg.Generation.Timeout)
	require.NotNil(t, cfg.Generation.Temperature)
	assert.InDelta(t, 0.9, *cfg.Generation.Temperature, 1e-9)
	assert.Equal(t, DefaultRequestTimeout, cfg.Adapter.RequestTimeout)
	assert.Equal(t, DefaultNotifyChannel, cfg.Notify.Channel)
}

// ── withEnv ───────────────────────────────────────────────────────────────────

func TestWithEnv_ReadsEnvVars(t *testing.T) {
	t.Setenv("APP_VERSION", "env-version")
	t.Setenv("GENERATION_MODEL", "env-model")

	b := newConfigBuilder(nil).withEnv()

	require.Len(t, b.configs, 1)
	assert.NoError(t, b.err)
	assert.Equal(t, "env-version", b.configs[0].App.Version)
	assert.Equal(t, "env-model", b.configs[0].Generation.Model)
}

func TestWithEnv_InvalidValueSetsError(t *testing.T) {
	t.Setenv("GENERATION_TIMEOUT", "not-a-duration")

	b := newConfigBuilder(nil).withEnv()

	assert.Error(t, b.err)
	assert.Empty(t, b.configs)
}

// ── withFlags ─────────────────────────────────────────────────────────────────

func TestWithFlags_ParsesArgs(t *testing.T) {
	b := newConfigBuilder([]string{"-gen-model", "flag-model"}).withFlags()

	require.NoError(t, b.err)
	require.Len(t, b.configs, 1)
	assert.Equal(t, "flag-model", b.configs[0].Generation.Model)
}

func TestWithFlags_UnknownFlagSetsError(t *testing.T) {
	b := newConfigBuilder([]string{"-nope"}).withFlags()

	assert.Error(t, b.err)
}

// ── withJSON ──────────────────────────────────────────────────────────────────

func TestWithJSON_NoPathIsNoop(t *testing.T) {
	b := newConfigBuilder(nil)
	b.configs = append(b.configs, &StructuredConfig{})

	b.withJSON()

	assert.NoError(t, b.err)
	assert.Len(t, b.configs, 1)
}

func TestWithJSON_MissingFileSetsError(t *testing.T) {
	b := newConfigBuilder(nil)
	b.configs = append(b.configs, &StructuredConfig{JSONFilePath: "/does/not/exist.json"})

	b.withJSON()

	assert.Error(t, b.err)
}

// TestFullChain_Priority verifies defaults < env < flags < JSON.
func TestFullChain_Priority(t *testing.T) {
	path := writeTempJSONConfig(t, map[string]any{
		"generation": map[string]any{"model": "json-model"},
	})
	t.Setenv("GENERATION_MODEL", "env-model")
	t.Setenv("GENERATION_URL", "http://env:11434")
	t.Setenv("APP_VERSION", "env-version")

	cfg, err := newConfigBuilder([]string{
		"-gen-url", "http://flag:11434",
		"-c", path,
	}).withDefaults().withEnv().withFlags().withJSON().build()

	require.NoError(t, err)
	assert.Equal(t, "json-model", cfg.Generation.Model)
	assert.Equal(t, "http://flag:11434", cfg.Generation.URL)
	assert.Equal(t, "env-version", cfg.App.Version)
	assert.Equal(t, DefaultGenerationTimeout, cfg.Generation.Timeout)
}
