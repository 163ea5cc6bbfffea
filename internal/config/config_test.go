package config_test

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/budget-ok/budget-ok/internal/config"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDefaults(t *testing.T) {
	for _, key := range []string{"API_URL", "PORT", "DB_PATH", "GIN_MODE", "LOG_FORMAT", "CORS_ALLOW_ORIGINS", "ENABLE_PPROF"} {
		t.Setenv(key, "")
		os.Unsetenv(key)
	}

	c, err := config.FromEnv()
	require.Nil(t, err)

	assert.Equal(t, config.DefaultAPIURL, c.APIURL.String())
	assert.Equal(t, config.DefaultPort, c.Port)
	assert.Equal(t, config.DefaultDBPath, c.DBPath)
	assert.Empty(t, c.CORSAllowOrigins)
	assert.False(t, c.EnablePprof)
}

func TestFromEnv(t *testing.T) {
	t.Setenv("API_URL", "https://budget.example.com/api/")
	t.Setenv("PORT", "3000")
	t.Setenv("CORS_ALLOW_ORIGINS", "http://localhost:5173 https://*.example.com")
	t.Setenv("ENABLE_PPROF", "true")
	t.Setenv("GIN_MODE", "debug")

	c, err := config.FromEnv()
	require.Nil(t, err)

	assert.Equal(t, "https://budget.example.com/api", c.APIURL.String(), "Trailing slashes must be removed")
	assert.Equal(t, "/api", c.APIURL.Path)
	assert.Equal(t, "3000", c.Port)
	assert.Equal(t, []string{"http://localhost:5173", "https://*.example.com"}, c.CORSAllowOrigins)
	assert.True(t, c.EnablePprof)
	assert.Equal(t, "debug", c.GinMode)
}

func TestInvalidAPIURL(t *testing.T) {
	tests := []string{
		"localhost:8090",
		"/api",
		"http://[::1",
	}

	for _, tt := range tests {
		t.Run(tt, func(t *testing.T) {
			t.Setenv("API_URL", tt)
			_, err := config.FromEnv()
			assert.NotNil(t, err)
		})
	}
}

func TestInvalidPprof(t *testing.T) {
	t.Setenv("ENABLE_PPROF", "yes please")

	c, err := config.FromEnv()
	require.Nil(t, err)
	assert.False(t, c.EnablePprof)
}

func TestLoadDotEnv(t *testing.T) {
	dir := t.TempDir()
	require.Nil(t, os.WriteFile(filepath.Join(dir, ".env"), []byte("DB_PATH=from-dotenv.db\nPORT=9999\n"), 0o600))

	chdir(t, dir)
	t.Setenv("PORT", "1234")
	t.Setenv("DB_PATH", "")
	os.Unsetenv("DB_PATH")

	c, err := config.Load()
	require.Nil(t, err)

	assert.Equal(t, "from-dotenv.db", c.DBPath)
	assert.Equal(t, "1234", c.Port, "Variables from the environment must take precedence")
}

func TestLoadWithoutDotEnv(t *testing.T) {
	chdir(t, t.TempDir())

	_, err := config.Load()
	assert.Nil(t, err)
}

// chdir changes the working directory for the duration of the test.
func chdir(t *testing.T, dir string) {
	t.Helper()
	wd, err := os.Getwd()
	require.Nil(t, err)
	require.Nil(t, os.Chdir(dir))
	t.Cleanup(func() { _ = os.Chdir(wd) })
}
