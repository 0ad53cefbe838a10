package config

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func envMap(m map[string]string) func(string) string {
	return func(k string) string { return m[k] }
}

func baseEnv() map[string]string {
	return map[string]string{
		"APP_NAME":   "mentor-match",
		"APP_ENV":    "test",
		"HTTP_PORT":  "8080",
		"JWT_SECRET": "secret",
	}
}

func TestLoadFrom_Defaults(t *testing.T) {
	cfg, err := LoadFrom(envMap(baseEnv()))
	require.NoError(t, err)

	assert.Equal(t, DefaultMatching(), cfg.Matching)
	assert.Equal(t, 0.6, cfg.Matching.SemanticWeight)
	assert.Equal(t, 24*time.Hour, cfg.Matching.CacheTTL)
	assert.Equal(t, "localhost:6379", cfg.Redis.Addr())
	assert.Equal(t, "disable", cfg.Database.DBSSLMode)
	assert.False(t, cfg.Embedding.Enabled())
	assert.Equal(t, DefaultResearch(), cfg.Research)
}

func TestLoadFrom_MissingRequired(t *testing.T) {
	env := baseEnv()
	delete(env, "HTTP_PORT")
	delete(env, "JWT_SECRET")

	_, err := LoadFrom(envMap(env))
	require.ErrorIs(t, err, errMissingRequiredEnv)
	assert.Contains(t, err.Error(), "HTTP_PORT, JWT_SECRET")
}

func TestLoadFrom_Overrides(t *testing.T) {
	env := baseEnv()
	env["MATCH_SEMANTIC_WEIGHT"] = "0.5"
	env["MATCH_CACHE_TTL"] = "1h"
	env["MATCH_CONCURRENCY"] = "2"
	env["GEMINI_API_KEY"] = "k"
	env["DB_POOL_MAX_CONNS"] = "20"
	env["RESEARCH_HEADLESS_FALLBACK"] = "true"

	cfg, err := LoadFrom(envMap(env))
	require.NoError(t, err)

	assert.Equal(t, 0.5, cfg.Matching.SemanticWeight)
	assert.Equal(t, time.Hour, cfg.Matching.CacheTTL)
	assert.Equal(t, 2, cfg.Matching.Concurrency)
	assert.True(t, cfg.Embedding.Enabled())
	assert.Equal(t, int32(20), cfg.Database.PoolMaxConns)
	assert.True(t, cfg.Research.HeadlessFallback)
}

func TestLoadFrom_InvalidValues(t *testing.T) {
	env := baseEnv()
	env["MATCH_CACHE_TTL"] = "forever"
	env["MATCH_CONCURRENCY"] = "0"

	_, err := LoadFrom(envMap(env))
	require.ErrorIs(t, err, errInvalidEnv)
	assert.Contains(t, err.Error(), "MATCH_CACHE_TTL")
	assert.Contains(t, err.Error(), "MATCH_CONCURRENCY")
}
