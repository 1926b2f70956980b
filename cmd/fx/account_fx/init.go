package account_fx

import (
	"go.uber.org/fx"
	"go.uber.org/zap"
	"gorm.io/gorm"

	"cityinfo/internal/config"
	"cityinfo/internal/repositories"
	"cityinfo/internal/services"
	"cityinfo/pkg/utils"
)

var Module = fx.Provide(
	provideAccountService, provideAccountRepo, provideTokenService)

func provideAccountRepo(db *gorm.DB) repositories.AccountRepository {
	return repositories.NewAccountRepository(db)
}

func provideTokenService(cfg config.AuthConfig) (*utils.TokenService, error) {
	return utils.NewTokenService(utils.JWTConfig{
		Secret:   cfg.Secret,
		Issuer:   cfg.Issuer,
		Audience: cfg.Audience,
		Lifetime: cfg.TokenLifetime,
	})
}

func provideAccountService(accountRepo repositories.AccountRepository, tokens *utils.TokenService, lggr *zap.SugaredLogger) services.AccountServiceInterface {
	return services.NewAccountService(accountRepo, tokens, lggr)
}
