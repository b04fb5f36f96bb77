package config

import (
	"os"
	"path/filepath"
	"sync/atomic"
	"testing"
	"time"

	log "github.com/sirupsen/logrus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func clearEnv(t *testing.T) {
	t.Helper()
	for _, k := range []string{"GEMINI_API_KEY", "BENGLISH_API_KEY", "BENGLISH_LISTEN", "BENGLISH_BACKEND", "BENGLISH_CONVERT_MODEL", "BENGLISH_LOG_LEVEL"} {
		t.Setenv(k, "")
		os.Unsetenv(k)
	}
}

func TestLoadDefaults(t *testing.T) {
	clearEnv(t)

	cfg, err := Load("")
	require.NoError(t, err)

	assert.Equal(t, "", cfg.APIKey)
	assert.Equal(t, ":7458", cfg.Listen)
	assert.Equal(t, BackendREST, cfg.Backend)
	assert.Equal(t, "gemini-1.5-flash", cfg.ConvertModel)
	assert.Equal(t, "gemini-2.0-flash-exp", cfg.GrammarModel)
	assert.InDelta(t, 0.3, cfg.Temperature, 1e-6)
	assert.Equal(t, int32(1024), cfg.ConvertMaxTokens)
	assert.Equal(t, int32(2048), cfg.GrammarMaxTokens)
	assert.Equal(t, 30*time.Second, cfg.PingInterval)
}

func TestLoadGeminiAPIKeyFromEnv(t *testing.T) {
	clearEnv(t)
	t.Setenv("GEMINI_API_KEY", "k-123")

	cfg, err := Load("")
	require.NoError(t, err)
	assert.Equal(t, "k-123", cfg.APIKey)
}

func TestLoadFromFileWithEnvOverride(t *testing.T) {
	clearEnv(t)
	t.Setenv("BENGLISH_CONVERT_MODEL", "gemini-from-env")

	path := filepath.Join(t.TempDir(), "config.yaml")
	content := `listen: ":9999"
api_key: "from-file"
convert_model: "gemini-from-file"
grammar_max_tokens: 512
ping_interval: 5s
log_level: debug
`
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))

	cfg, err := Load(path)
	require.NoError(t, err)
	assert.Equal(t, ":9999", cfg.Listen)
	assert.Equal(t, "from-file", cfg.APIKey)
	assert.Equal(t, "gemini-from-env", cfg.ConvertModel)
	assert.Equal(t, int32(512), cfg.GrammarMaxTokens)
	assert.Equal(t, 5*time.Second, cfg.PingInterval)
	assert.Equal(t, "debug", cfg.LogLevel)
}

func TestLoadRejectsUnknownBackend(t *testing.T) {
	clearEnv(t)
	t.Setenv("BENGLISH_BACKEND", "carrier-pigeon")

	_, err := Load("")
	assert.ErrorContains(t, err, "unknown backend")
}

func TestLoadMissingFile(t *testing.T) {
	clearEnv(t)
	_, err := Load(filepath.Join(t.TempDir(), "nope.yaml"))
	assert.Error(t, err)
}

func TestInitPublishesConfig(t *testing.T) {
	clearEnv(t)
	t.Setenv("BENGLISH_LOG_LEVEL", "warn")
	t.Setenv("GEMINI_API_KEY", "published")
	t.Cleanup(func() {
		cfg := Default()
		current.Store(&cfg)
	})

	require.NoError(t, Init(""))
	assert.Equal(t, "published", ReadConfig().APIKey)
	assert.Equal(t, log.WarnLevel, GetLogLevel())
	assert.False(t, GetIsDebug())
}

func TestConfigChangeCallbacks(t *testing.T) {
	var called atomic.Int32
	AddConfigChangeCallback(func() { called.Add(1) })
	notify()
	assert.GreaterOrEqual(t, called.Load(), int32(1))
}

func TestInitReloadsChangedFile(t *testing.T) {
	clearEnv(t)
	t.Cleanup(func() {
		cfg := Default()
		current.Store(&cfg)
	})

	path := filepath.Join(t.TempDir(), "config.yaml")
	require.NoError(t, os.WriteFile(path, []byte("api_key: one\nlog_level: info\n"), 0o644))

	reloaded := make(chan struct{}, 1)
	AddConfigChangeCallback(func() {
		select {
		case reloaded <- struct{}{}:
		default:
		}
	})

	require.NoError(t, Init(path))
	assert.Equal(t, "one", ReadConfig().APIKey)
	assert.Equal(t, log.InfoLevel, GetLogLevel())

	require.NoError(t, os.WriteFile(path, []byte("api_key: two\nlog_level: debug\n"), 0o644))

	deadline := time.After(5 * time.Second)
	for ReadConfig().APIKey != "two" {
		select {
		case <-reloaded:
		case <-deadline:
			t.Fatalf("config not reloaded, api_key still %q", ReadConfig().APIKey)
		}
	}
	assert.Equal(t, log.DebugLevel, GetLogLevel())
}
