package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCanonicalizeEnvKey_UsesExistingCamelCaseKeys(t *testing.T) {
	existing := map[string]any{
		"store": map[string]any{
			"autoMigrate": false,
		},
		"locator": map[string]any{
			"defaultRadiusKm": 50,
			"lookupWorkers":   10,
		},
		"pubsub": map[string]any{
			"topicId": "",
		},
		"secretKey": map[string]any{
			"access": "",
		},
	}

	tests := []struct {
		envKey string
		want   string
	}{
		{envKey: "STORE_AUTOMIGRATE", want: "store.autoMigrate"},
		{envKey: "LOCATOR_DEFAULTRADIUSKM", want: "locator.defaultRadiusKm"},
		{envKey: "LOCATOR_LOOKUP_WORKERS", want: "locator.lookup.workers"},
		{envKey: "PUBSUB_TOPICID", want: "pubsub.topicId"},
		{envKey: "SECRETKEY_ACCESS", want: "secretKey.access"},
		{envKey: "NEW_FEATURE_FLAG", want: "new.feature.flag"},
	}

	for _, tt := range tests {
		t.Run(tt.envKey, func(t *testing.T) {
			if got := canonicalizeEnvKey(tt.envKey, existing); got != tt.want {
				t.Fatalf("canonicalizeEnvKey(%q) = %q, want %q", tt.envKey, got, tt.want)
			}
		})
	}
}

func TestLoadWithEnv_EnvOverridesYAML(t *testing.T) {
	dir := t.TempDir()
	yamlBody := []byte(`
store:
  backend: sqlite
locator:
  defaultRadiusKm: 50
  storeTimeout: 5s
`)
	require.NoError(t, os.WriteFile(filepath.Join(dir, "test.yaml"), yamlBody, 0o600))

	t.Setenv("LOCATOR_DEFAULTRADIUSKM", "25")
	t.Chdir(dir)

	cfg, err := LoadWithEnv[Config]("test")
	require.NoError(t, err)
	require.NotNil(t, cfg.Locator)
	assert.Equal(t, 25.0, cfg.Locator.DefaultRadiusKm)
	assert.Equal(t, 5*time.Second, cfg.Locator.StoreTimeout)
	assert.Equal(t, StoreBackendSQLite, cfg.Store.Backend)
}

func TestLoadWithEnv_MissingFile(t *testing.T) {
	t.Chdir(t.TempDir())

	_, err := LoadWithEnv[Config]("absent")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "absent.yaml not found")
}

func TestApplyDefaults(t *testing.T) {
	cfg := &Config{}
	applyDefaults(cfg)

	assert.Equal(t, defaultMaxRequestBodySize, cfg.HTTP.MaxRequestBodySize)
	assert.Equal(t, StoreBackendSQLite, cfg.Store.Backend)
	assert.Equal(t, defaultSQLiteDSN, cfg.SQLite.DSN)
	assert.Equal(t, defaultTokenTTL, cfg.Auth.TokenTTL)
}
