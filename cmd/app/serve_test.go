package main

import (
	"testing"
	"time"

	"github.com/stretchr/testify/require"
	"go.uber.org/fx"

	"cityinfo/internal/config"
)

func TestAppOptionsGraph(t *testing.T) {
	cfg := &config.Config{
		Server:   config.ServerConfig{Port: 8080, Mode: "test"},
		Database: config.DatabaseConfig{Driver: "sqlite3", DSN: "file:graph?mode=memory&cache=shared"},
		Auth: config.AuthConfig{
			Secret:        "test-secret-that-is-long-enough-for-testing",
			Issuer:        "https://localhost:7169",
			Audience:      "cityinfoapi",
			TokenLifetime: time.Hour,
			PolicyCity:    "Antwerp",
		},
		Log:        config.LogConfig{Level: "info"},
		Mail:       config.MailConfig{Provider: "local", From: "noreply@cityinfo.com", To: "admin@cityinfo.com"},
		Pagination: config.PaginationConfig{DefaultPageSize: 10, MaxPageSize: 20},
	}

	require.NoError(t, fx.ValidateApp(appOptions(cfg)...))
}
