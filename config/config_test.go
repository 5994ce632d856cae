package config

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestLoadDefaults(t *testing.T) {
	cfg := Load()
	require.Equal(t, "1337", cfg.Port)
	require.Equal(t, "mongodb://localhost:27017", cfg.MongoURI)
	require.Equal(t, "StudentInformationSystem", cfg.DBName)
	require.Equal(t, "mongo", cfg.Store)
	require.Equal(t, "info", cfg.LogLevel)
}

func TestLoadFromEnvironment(t *testing.T) {
	t.Setenv("PORT", "9999")
	t.Setenv("STORE", "memory")

	cfg := Load()
	require.Equal(t, "9999", cfg.Port)
	require.Equal(t, "memory", cfg.Store)
}
