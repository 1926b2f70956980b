package controllers

import (
	"encoding/json"
	"net/http"

	"github.com/gin-gonic/gin"

	"cityinfo/internal/config"
	"cityinfo/internal/models/request_models"
	"cityinfo/internal/services"
	"cityinfo/pkg/utils"
)

const PaginationHeader = "X-Pagination"

type CitiesController struct {
	cityService     services.CityServiceInterface
	defaultPageSize int
}

func NewCitiesController(cityService services.CityServiceInterface, pagination config.PaginationConfig) *CitiesController {
	return &CitiesController{
		cityService:     cityService,
		defaultPageSize: pagination.DefaultPageSize,
	}
}

// GetCities godoc
// @Summary List cities
// @Description Filter by exact name or search name and description, one page at a time
// @Tags Cities
// @Produce json,xml
// @Param name query string false "Exact city name"
// @Param searchQuery query string false "Substring of name or description"
// @Param pageNumber query int false "1-based page number" default(1)
// @Param pageSize query int false "Page size, capped at the configured maximum" default(10)
// @Success 200 {object} utils.APIResponse
// @Header 200 {string} X-Pagination "JSON pagination metadata"
// @Failure 400 {object} utils.APIResponse
// @Security BearerAuth
// @Router /v1/cities [get]
func (ct *CitiesController) GetCities(c *gin.Context) {
	query := request_models.CityListQuery{PageNumber: 1, PageSize: ct.defaultPageSize}
	if err := c.ShouldBindQuery(&query); err != nil {
		utils.RespondError(c, http.StatusBadRequest, "Invalid query parameters")
		return
	}

	cities, metadata, err := ct.cityService.ListCities(c.Request.Context(), query)
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}

	header, err := json.Marshal(metadata)
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}
	c.Header(PaginationHeader, string(header))

	utils.RespondSuccess(c, cities, "Cities fetched successfully")
}

// GetCity godoc
// @Summary Get a city
// @Description Returns the city, with its points of interest when asked to
// @Tags Cities
// @Produce json,xml
// @Param cityId path int true "City ID"
// @Param includePointsOfInterest query bool false "Include points of interest"
// @Success 200 {object} utils.APIResponse
// @Failure 404 {object} utils.APIResponse
// @Security BearerAuth
// @Router /v1/cities/{cityId} [get]
func (ct *CitiesController) GetCity(c *gin.Context) {
	cityID, ok := intParam(c, "cityId")
	if !ok {
		return
	}

	var query request_models.CityQuery
	if err := c.ShouldBindQuery(&query); err != nil {
		utils.RespondError(c, http.StatusBadRequest, "Invalid query parameters")
		return
	}

	if query.IncludePointsOfInterest {
		city, err := ct.cityService.GetCityWithPointsOfInterest(c.Request.Context(), cityID)
		if err != nil {
			utils.HandleServiceError(c, err)
			return
		}
		utils.RespondSuccess(c, city, "City fetched successfully")
		return
	}

	city, err := ct.cityService.GetCity(c.Request.Context(), cityID)
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}
	utils.RespondSuccess(c, city, "City fetched successfully")
}
