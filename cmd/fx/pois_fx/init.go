package pois_fx

import (
	"go.uber.org/fx"
	"go.uber.org/zap"

	"cityinfo/internal/repositories"
	"cityinfo/internal/services"
)

var Module = fx.Provide(
	providePoisService)

func providePoisService(repo repositories.CityInfoRepository, mail services.IMailService, lggr *zap.SugaredLogger) services.POIServiceInterface {
	return services.NewPoiService(repo, mail, lggr)
}
