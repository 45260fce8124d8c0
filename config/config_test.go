package config

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestLoad_Defaults(t *testing.T) {
	t.Setenv("APP_ENV", "")
	t.Setenv("PORT", "")
	t.Setenv("DATABASE_URL", "")
	t.Setenv("CORS_ORIGINS", "")
	t.Setenv("RATE_LIMIT_MAX_REQUESTS", "")

	cfg, err := Load()
	require.NoError(t, err)
	require.Equal(t, EnvDevelopment, cfg.AppEnv)
	require.Equal(t, "5000", cfg.Port)
	require.Equal(t, "*", cfg.CORSOrigins)
	require.False(t, cfg.IsProduction())
	require.Equal(t, 100, cfg.RateLimitMaxRequests)
}

func TestLoad_DatabaseURLWins(t *testing.T) {
	t.Setenv("APP_ENV", EnvDevelopment)
	t.Setenv("DATABASE_URL", "postgres://app:secret@db:5432/teamplay")
	t.Setenv("DB_HOST", "ignored")

	cfg, err := Load()
	require.NoError(t, err)
	require.Equal(t, "postgres://app:secret@db:5432/teamplay", cfg.DatabaseURL)
}

func TestLoad_AssemblesDSNFromParts(t *testing.T) {
	t.Setenv("DATABASE_URL", "")
	t.Setenv("DB_HOST", "db.internal")
	t.Setenv("DB_PORT", "6432")
	t.Setenv("DB_USER", "app")
	t.Setenv("DB_PASSWORD", "secret")
	t.Setenv("DB_NAME", "teamplay")
	t.Setenv("DB_SSLMODE", "require")

	cfg, err := Load()
	require.NoError(t, err)
	require.Equal(t,
		"host=db.internal port=6432 user=app password=secret dbname=teamplay sslmode=require",
		cfg.DatabaseURL)
}

func TestLoad_InvalidAppEnv(t *testing.T) {
	t.Setenv("APP_ENV", "staging")

	_, err := Load()
	require.Error(t, err)
}

func TestLoad_Production(t *testing.T) {
	t.Setenv("APP_ENV", EnvProduction)
	t.Setenv("DATABASE_URL", "postgres://app@db/teamplay")

	cfg, err := Load()
	require.NoError(t, err)
	require.True(t, cfg.IsProduction())
}

func TestLoad_BadRateLimitFallsBack(t *testing.T) {
	t.Setenv("APP_ENV", EnvDevelopment)
	t.Setenv("RATE_LIMIT_MAX_REQUESTS", "lots")

	cfg, err := Load()
	require.NoError(t, err)
	require.Equal(t, 100, cfg.RateLimitMaxRequests)
}
