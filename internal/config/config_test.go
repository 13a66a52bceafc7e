package config

import (
	"os"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// chdir changes into dir for the duration of the test, restoring the
// previous working directory on cleanup (t.Chdir requires Go 1.24+).
func chdir(t *testing.T, dir string) {
	t.Helper()
	old, err := os.Getwd()
	require.NoError(t, err)
	require.NoError(t, os.Chdir(dir))
	t.Cleanup(func() { _ = os.Chdir(old) })
}

func TestLoadDefaults(t *testing.T) {
	chdir(t, t.TempDir())

	cfg, err := Load()
	require.NoError(t, err)
	assert.Equal(t, "0.0.0.0:8080", cfg.Server.Addr)
	assert.Equal(t, "data/signup.db", cfg.Database.Path)
	assert.Equal(t, "https://test.hostbisonapp.com", cfg.CORS.Origin)
	assert.Empty(t, cfg.Deploy.Secret, "secrets must come from the environment")
	assert.Equal(t, "data/deploy.log", cfg.Deploy.LogPath)
}

func TestLoadFromEnvironment(t *testing.T) {
	chdir(t, t.TempDir())
	t.Setenv("HOSTBISON_SERVER_ADDR", "127.0.0.1:9090")
	t.Setenv("HOSTBISON_CORS_ORIGIN", "https://example.com")
	t.Setenv("HOSTBISON_DEPLOY_SECRET", "hook-secret")
	t.Setenv("HOSTBISON_DEPLOY_REPODIR", "/srv/app")

	cfg, err := Load()
	require.NoError(t, err)
	assert.Equal(t, "127.0.0.1:9090", cfg.Server.Addr)
	assert.Equal(t, "https://example.com", cfg.CORS.Origin)
	assert.Equal(t, "hook-secret", cfg.Deploy.Secret)
	assert.Equal(t, "/srv/app", cfg.Deploy.RepoDir)
}
