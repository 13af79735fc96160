package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeConfig(t *testing.T, content string) string {
	t.Helper()

	path := filepath.Join(t.TempDir(), "config.yml")
	require.NoError(t, os.WriteFile(path, []byte(content), 0o600))

	return path
}

func TestLoad(t *testing.T) {
	t.Run("Defaults fill what the file leaves out", func(t *testing.T) {
		// Given: a minimal config file
		path := writeConfig(t, "jwt-secret-key: secret\ntelegram:\n  bot-token: \"123:abc\"\n")

		// When: it is loaded
		conf, err := Load(path)

		// Then: every section has a usable value
		require.NoError(t, err)
		assert.Equal(t, "info", conf.LogLevel)
		assert.Equal(t, "9090", conf.HTTPPort)
		assert.Equal(t, "localhost:6379", conf.Redis.GetRedisAddr())
		assert.Equal(t, "secret", conf.JWTSecretKey)
		assert.Equal(t, "123:abc", conf.Telegram.BotToken)
		assert.Equal(t, "https://api.telegram.org", conf.Telegram.APIURL)
		assert.Equal(t, 10*time.Second, conf.Telegram.Timeout)
		assert.Equal(t, 24*time.Hour, conf.Game.AuthMaxAge)
		assert.Equal(t, 24*time.Hour, conf.Game.SessionTTL)
	})

	t.Run("Environment overrides the file", func(t *testing.T) {
		path := writeConfig(t, "http-port: \"8080\"\nredis:\n  host: redis\n")
		t.Setenv("HTTP_PORT", "7070")
		t.Setenv("CORS_ORIGINS", "https://a.example,https://b.example")

		conf, err := Load(path)

		require.NoError(t, err)
		assert.Equal(t, "7070", conf.HTTPPort)
		assert.Equal(t, "redis:6379", conf.Redis.GetRedisAddr())
		assert.Equal(t, []string{"https://a.example", "https://b.example"}, conf.CORSOrigins)
	})

	t.Run("Missing file", func(t *testing.T) {
		_, err := Load(filepath.Join(t.TempDir(), "absent.yml"))

		require.Error(t, err)
	})
}

func TestRedis_GetRedisAddr(t *testing.T) {
	t.Run("Host and port", func(t *testing.T) {
		redis := Redis{Host: "redis", Port: "6380"}

		assert.Equal(t, "redis:6380", redis.GetRedisAddr())
	})

	t.Run("Empty host yields no address", func(t *testing.T) {
		// Given: a host blanked out by the environment
		redis := Redis{Host: "", Port: "6379"}

		// When: the address is built
		addr := redis.GetRedisAddr()

		// Then: there is nothing to connect to
		assert.Empty(t, addr)
	})
}
