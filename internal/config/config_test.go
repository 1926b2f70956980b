package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const testSecret = "a-test-secret-that-is-at-least-32-characters"

// chdirTemp keeps stray .env or cityinfo.yaml files out of the test.
func chdirTemp(t *testing.T) string {
	t.Helper()
	dir := t.TempDir()
	t.Chdir(dir)
	return dir
}

func TestLoad_Defaults(t *testing.T) {
	chdirTemp(t)
	t.Setenv("CITYINFO_AUTH_SECRET", testSecret)

	cfg, err := Load()
	require.NoError(t, err)

	assert.Equal(t, 8080, cfg.Server.Port)
	assert.Equal(t, "sqlite3", cfg.Database.Driver)
	assert.Equal(t, time.Hour, cfg.Auth.TokenLifetime)
	assert.Equal(t, "Antwerp", cfg.Auth.PolicyCity)
	assert.Equal(t, "local", cfg.Mail.Provider)
	assert.Equal(t, 10, cfg.Pagination.DefaultPageSize)
	assert.Equal(t, 20, cfg.Pagination.MaxPageSize)
}

func TestLoad_EnvOverrides(t *testing.T) {
	chdirTemp(t)
	t.Setenv("CITYINFO_AUTH_SECRET", testSecret)
	t.Setenv("CITYINFO_SERVER_PORT", "9090")
	t.Setenv("CITYINFO_DATABASE_DRIVER", "postgres")
	t.Setenv("CITYINFO_DATABASE_DSN", "postgres://localhost/cityinfo")
	t.Setenv("CITYINFO_AUTH_TOKEN_LIFETIME", "15m")
	t.Setenv("CITYINFO_AUTH_POLICY_CITY", "Paris")

	cfg, err := Load()
	require.NoError(t, err)

	assert.Equal(t, 9090, cfg.Server.Port)
	assert.Equal(t, "postgres", cfg.Database.Driver)
	assert.Equal(t, "postgres://localhost/cityinfo", cfg.Database.DSN)
	assert.Equal(t, 15*time.Minute, cfg.Auth.TokenLifetime)
	assert.Equal(t, "Paris", cfg.Auth.PolicyCity)
}

func TestLoad_YAMLFile(t *testing.T) {
	dir := chdirTemp(t)
	t.Setenv("CITYINFO_AUTH_SECRET", testSecret)

	yaml := []byte("server:\n  port: 7000\npagination:\n  max_page_size: 50\n")
	require.NoError(t, os.WriteFile(filepath.Join(dir, "cityinfo.yaml"), yaml, 0o600))

	cfg, err := Load()
	require.NoError(t, err)

	assert.Equal(t, 7000, cfg.Server.Port)
	assert.Equal(t, 50, cfg.Pagination.MaxPageSize)
}

func TestLoad_DotEnv(t *testing.T) {
	dir := chdirTemp(t)
	require.NoError(t, os.WriteFile(filepath.Join(dir, ".env"), []byte("CITYINFO_AUTH_SECRET="+testSecret+"\n"), 0o600))
	t.Cleanup(func() { _ = os.Unsetenv("CITYINFO_AUTH_SECRET") })

	cfg, err := Load()
	require.NoError(t, err)
	assert.Equal(t, testSecret, cfg.Auth.Secret)
}

func TestLoad_Invalid(t *testing.T) {
	tests := []struct {
		name string
		env  map[string]string
		want string
	}{
		{
			name: "missing secret",
			env:  map[string]string{},
			want: "auth.secret",
		},
		{
			name: "short secret",
			env:  map[string]string{"CITYINFO_AUTH_SECRET": "short"},
			want: "auth.secret",
		},
		{
			name: "unknown driver",
			env: map[string]string{
				"CITYINFO_AUTH_SECRET":     testSecret,
				"CITYINFO_DATABASE_DRIVER": "oracle",
			},
			want: "database.driver",
		},
		{
			name: "smtp without host",
			env: map[string]string{
				"CITYINFO_AUTH_SECRET":   testSecret,
				"CITYINFO_MAIL_PROVIDER": "smtp",
			},
			want: "mail.host",
		},
		{
			name: "default page size above max",
			env: map[string]string{
				"CITYINFO_AUTH_SECRET":                  testSecret,
				"CITYINFO_PAGINATION_DEFAULT_PAGE_SIZE": "30",
			},
			want: "pagination.defaultpagesize",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			chdirTemp(t)
			t.Setenv("CITYINFO_AUTH_SECRET", "")
			for k, v := range tt.env {
				t.Setenv(k, v)
			}

			_, err := Load()
			require.Error(t, err)
			assert.Contains(t, err.Error(), tt.want)
		})
	}
}
