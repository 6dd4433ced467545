package config

import (
	"testing"
	"time"

	env "github.com/Netflix/go-env"
	"github.com/stretchr/testify/require"

	"github.com/tinoosan/social/internal/service/message"
)

func TestFromEnvSet_Defaults(t *testing.T) {
	cfg, err := FromEnvSet(env.EnvSet{})
	require.NoError(t, err)
	require.Equal(t, ":8080", cfg.HTTPAddr)
	require.Equal(t, "info", cfg.LogLevel)
	require.Equal(t, "json", cfg.LogFormat)
	require.Equal(t, 10*time.Second, cfg.ShutdownTimeout)
	require.Zero(t, cfg.AuthRateLimitRPS)
	require.False(t, cfg.DevSeed)
	require.Equal(t, StoreMemory, cfg.Store())

	p, err := cfg.PosterPolicy()
	require.NoError(t, err)
	require.Equal(t, message.PosterPolicyAccount, p)
}

func TestFromEnvSet_Overrides(t *testing.T) {
	cfg, err := FromEnvSet(env.EnvSet{
		"HTTP_ADDR":             "127.0.0.1:9000",
		"SQLITE_PATH":           "/tmp/social.db",
		"POSTED_BY_POLICY":      "prior_message",
		"AUTH_RATE_LIMIT_RPS":   "2.5",
		"AUTH_RATE_LIMIT_BURST": "3",
		"DEV_SEED":              "true",
		"SHUTDOWN_TIMEOUT":      "3s",
	})
	require.NoError(t, err)
	require.Equal(t, "127.0.0.1:9000", cfg.HTTPAddr)
	require.Equal(t, StoreSQLite, cfg.Store())
	require.Equal(t, 2.5, cfg.AuthRateLimitRPS)
	require.Equal(t, 3, cfg.AuthRateLimitBurst)
	require.True(t, cfg.DevSeed)
	require.Equal(t, 3*time.Second, cfg.ShutdownTimeout)

	p, err := cfg.PosterPolicy()
	require.NoError(t, err)
	require.Equal(t, message.PosterPolicyPriorMessage, p)
}

func TestStore_PostgresWins(t *testing.T) {
	cfg := Config{DatabaseURL: "postgres://localhost/social", SQLitePath: "x.db"}
	require.Equal(t, StorePostgres, cfg.Store())
}

func TestFromEnvSet_Rejects(t *testing.T) {
	cases := map[string]env.EnvSet{
		"unknown policy":  {"POSTED_BY_POLICY": "anyone"},
		"negative rps":    {"AUTH_RATE_LIMIT_RPS": "-1"},
		"zero burst":      {"AUTH_RATE_LIMIT_RPS": "1", "AUTH_RATE_LIMIT_BURST": "0"},
		"zero shutdown":   {"SHUTDOWN_TIMEOUT": "0s"},
		"malformed bool":  {"DEV_SEED": "maybe"},
		"malformed float": {"AUTH_RATE_LIMIT_RPS": "fast"},
	}
	for name, es := range cases {
		t.Run(name, func(t *testing.T) {
			_, err := FromEnvSet(es)
			require.Error(t, err)
		})
	}
}

func TestFromEnvSet_PolicyIsCaseInsensitive(t *testing.T) {
	cfg, err := FromEnvSet(env.EnvSet{"POSTED_BY_POLICY": " Prior_Message "})
	require.NoError(t, err)
	p, err := cfg.PosterPolicy()
	require.NoError(t, err)
	require.Equal(t, message.PosterPolicyPriorMessage, p)
}
