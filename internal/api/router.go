package api

import (
	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"cityinfo/internal/api/controllers"
	"cityinfo/pkg/middleware"
	"cityinfo/pkg/utils"
)

const (
	APIVersion1 = "1.0"
	APIVersion2 = "2.0"
)

// RouterParams are the collaborators of the HTTP surface.
type RouterParams struct {
	Mode       string
	PolicyCity string

	Logger *zap.SugaredLogger
	Tokens *utils.TokenService

	Cities   *controllers.CitiesController
	POIs     *controllers.POIsController
	Accounts *controllers.AccountController
}

func NewRouter(p RouterParams) *gin.Engine {
	if p.Mode != "" {
		gin.SetMode(p.Mode)
	}

	r := gin.New()
	r.Use(middleware.TraceIDMiddleware())
	r.Use(middleware.RequestLogger(p.Logger))
	r.Use(middleware.Recovery())
	r.Use(middleware.CORSMiddleware())
	r.Use(middleware.AcceptableFormats())

	RegisterRoutes(r, p)

	return r
}

func RegisterRoutes(r *gin.Engine, p RouterParams) {
	api := r.Group("/api")

	authGroup := api.Group("/authentication")
	authGroup.POST("/authenticate", p.Accounts.Authenticate)

	// Unversioned requests get the default version.
	registerCities(api.Group("", middleware.JWTAuthMiddleware(p.Tokens)), p, APIVersion1)

	for _, prefix := range []string{"/v1", "/v1.0"} {
		registerCities(api.Group(prefix, middleware.JWTAuthMiddleware(p.Tokens)), p, APIVersion1)
	}
	for _, prefix := range []string{"/v2", "/v2.0"} {
		g := api.Group(prefix, middleware.JWTAuthMiddleware(p.Tokens))
		registerCities(g, p, APIVersion2)
		registerPointsOfInterest(g, p, APIVersion2)
	}
}

func registerCities(g *gin.RouterGroup, p RouterParams, version string) {
	cities := g.Group("/cities", middleware.APIVersion(version, APIVersion1, APIVersion2))
	cities.GET("", p.Cities.GetCities)
	cities.GET("/:cityId", p.Cities.GetCity)
}

func registerPointsOfInterest(g *gin.RouterGroup, p RouterParams, version string) {
	pois := g.Group("/cities/:cityId/pointsofinterest",
		middleware.APIVersion(version, APIVersion2),
		middleware.MustBeFromCity(p.PolicyCity))
	pois.GET("", p.POIs.GetPointsOfInterest)
	pois.GET("/:pointOfInterestId", p.POIs.GetPointOfInterest)
	pois.POST("", p.POIs.CreatePointOfInterest)
	pois.PUT("/:pointOfInterestId", p.POIs.UpdatePointOfInterest)
	pois.PATCH("/:pointOfInterestId", p.POIs.PartiallyUpdatePointOfInterest)
	pois.DELETE("/:pointOfInterestId", p.POIs.DeletePointOfInterest)
}
