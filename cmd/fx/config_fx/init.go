package config_fx

import (
	"go.uber.org/fx"

	"cityinfo/internal/config"
)

// Module splits the loaded *config.Config into the sections components ask for.
var Module = fx.Provide(
	provideServerConfig,
	provideDatabaseConfig,
	provideAuthConfig,
	provideMailConfig,
	providePaginationConfig)

func provideServerConfig(cfg *config.Config) config.ServerConfig {
	return cfg.Server
}

func provideDatabaseConfig(cfg *config.Config) config.DatabaseConfig {
	return cfg.Database
}

func provideAuthConfig(cfg *config.Config) config.AuthConfig {
	return cfg.Auth
}

func provideMailConfig(cfg *config.Config) config.MailConfig {
	return cfg.Mail
}

func providePaginationConfig(cfg *config.Config) config.PaginationConfig {
	return cfg.Pagination
}
