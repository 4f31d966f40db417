package config

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestLoadDefaults(t *testing.T) {
	cfg, err := Load()
	require.NoError(t, err)

	require.Equal(t, "0.0.0.0:8080", cfg.Server.Addr)
	require.Equal(t, "data/movienight.db", cfg.Database.Path)
	require.Equal(t, "movienight-api", cfg.Auth.Issuer)
	require.Equal(t, 120, cfg.Auth.RegisterTTLMinutes)
	require.Equal(t, 480, cfg.Auth.LoginTTLMinutes)
	require.Less(t, cfg.Auth.RegisterTTLMinutes, cfg.Auth.LoginTTLMinutes)
}

func TestLoadEnvOverrides(t *testing.T) {
	t.Setenv("MOVIENIGHT_SERVER_ADDR", "127.0.0.1:9999")
	t.Setenv("MOVIENIGHT_AUTH_JWTSECRET", "s3cret")
	t.Setenv("MOVIENIGHT_AUTH_LOGINTTLMINUTES", "60")

	cfg, err := Load()
	require.NoError(t, err)

	require.Equal(t, "127.0.0.1:9999", cfg.Server.Addr)
	require.Equal(t, "s3cret", cfg.Auth.JWTSecret)
	require.Equal(t, 60, cfg.Auth.LoginTTLMinutes)
}
