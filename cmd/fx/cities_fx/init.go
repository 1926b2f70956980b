package cities_fx

import (
	"go.uber.org/fx"
	"go.uber.org/zap"
	"gorm.io/gorm"

	"cityinfo/internal/config"
	"cityinfo/internal/repositories"
	"cityinfo/internal/services"
)

var Module = fx.Provide(
	provideCityInfoRepo, provideCityService)

func provideCityInfoRepo(db *gorm.DB) repositories.CityInfoRepository {
	return repositories.NewCityInfoRepository(db)
}

func provideCityService(repo repositories.CityInfoRepository, pagination config.PaginationConfig, lggr *zap.SugaredLogger) services.CityServiceInterface {
	return services.NewCityService(repo, pagination.MaxPageSize, lggr)
}
