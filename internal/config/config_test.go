package config

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func Test_Load_Defaults(t *testing.T) {
	t.Setenv(PortEnv, "")
	t.Setenv(MongoURIEnv, "")
	t.Setenv(MongoDatabaseEnv, "")
	t.Setenv(PublicDirEnv, "")
	t.Setenv(SessionSecretEnv, "")
	t.Setenv(ViewsGlobEnv, "")

	cfg := Load()

	require.Equal(t, "8000", cfg.Port)
	require.Equal(t, "mongodb://127.0.0.1:27017", cfg.MongoURI)
	require.Equal(t, "productdb", cfg.MongoDatabase)
	require.Equal(t, "public", cfg.PublicDir)
	require.Equal(t, "dev_fallback_secret", cfg.SessionSecret)
	require.Equal(t, "internal/views/*.tmpl", cfg.ViewsGlob)
}

func Test_Load_Env_Overrides(t *testing.T) {
	t.Setenv(PortEnv, "9000")
	t.Setenv(MongoURIEnv, "mongodb://db.local:27017")
	t.Setenv(MongoDatabaseEnv, "catalog_test")
	t.Setenv(PublicDirEnv, "/srv/public")

	cfg := Load()

	require.Equal(t, "9000", cfg.Port)
	require.Equal(t, "mongodb://db.local:27017", cfg.MongoURI)
	require.Equal(t, "catalog_test", cfg.MongoDatabase)
	require.Equal(t, "/srv/public", cfg.PublicDir)
}
