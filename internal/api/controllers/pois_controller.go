package controllers

import (
	"net/http"
	"strconv"
	"strings"

	"github.com/gin-gonic/gin"

	"cityinfo/internal/models/request_models"
	"cityinfo/internal/services"
	"cityinfo/pkg/middleware"
	"cityinfo/pkg/utils"
)

type POIsController struct {
	poiService services.POIServiceInterface
}

func NewPOIsController(poiService services.POIServiceInterface) *POIsController {
	return &POIsController{
		poiService: poiService,
	}
}

// GetPointsOfInterest godoc
// @Summary List the points of interest of a city
// @Description The caller's city claim must name the requested city
// @Tags PointsOfInterest
// @Produce json,xml
// @Param cityId path int true "City ID"
// @Success 200 {object} utils.APIResponse
// @Failure 403 {object} utils.APIResponse
// @Failure 404 {object} utils.APIResponse
// @Security BearerAuth
// @Router /v2/cities/{cityId}/pointsofinterest [get]
func (p *POIsController) GetPointsOfInterest(c *gin.Context) {
	cityID, ok := intParam(c, "cityId")
	if !ok {
		return
	}

	pois, err := p.poiService.ListPointsOfInterest(c.Request.Context(), cityID, c.GetString(middleware.CityKey))
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}

	utils.RespondSuccess(c, pois, "Points of interest fetched successfully")
}

// GetPointOfInterest godoc
// @Summary Get a point of interest
// @Tags PointsOfInterest
// @Produce json,xml
// @Param cityId path int true "City ID"
// @Param pointOfInterestId path int true "Point of interest ID"
// @Success 200 {object} utils.APIResponse
// @Failure 404 {object} utils.APIResponse
// @Security BearerAuth
// @Router /v2/cities/{cityId}/pointsofinterest/{pointOfInterestId} [get]
func (p *POIsController) GetPointOfInterest(c *gin.Context) {
	cityID, ok := intParam(c, "cityId")
	if !ok {
		return
	}
	poiID, ok := intParam(c, "pointOfInterestId")
	if !ok {
		return
	}

	poi, err := p.poiService.GetPointOfInterest(c.Request.Context(), cityID, poiID)
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}

	utils.RespondSuccess(c, poi, "Point of interest fetched successfully")
}

// CreatePointOfInterest godoc
// @Summary Create a point of interest
// @Tags PointsOfInterest
// @Accept json,xml
// @Produce json,xml
// @Param cityId path int true "City ID"
// @Param request body request_models.PointOfInterestForCreation true "Point of interest"
// @Success 201 {object} utils.APIResponse
// @Header 201 {string} Location "URL of the new point of interest"
// @Failure 400 {object} utils.APIResponse
// @Failure 404 {object} utils.APIResponse
// @Security BearerAuth
// @Router /v2/cities/{cityId}/pointsofinterest [post]
func (p *POIsController) CreatePointOfInterest(c *gin.Context) {
	cityID, ok := intParam(c, "cityId")
	if !ok {
		return
	}

	var req request_models.PointOfInterestForCreation
	if err := bindBody(c, &req); err != nil {
		utils.RespondError(c, http.StatusBadRequest, "Invalid request format: "+err.Error())
		return
	}

	created, err := p.poiService.CreatePointOfInterest(c.Request.Context(), cityID, req)
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}

	location := strings.TrimSuffix(c.Request.URL.Path, "/") + "/" + strconv.Itoa(created.ID)
	utils.RespondCreated(c, location, created, "Point of interest created successfully")
}

// UpdatePointOfInterest godoc
// @Summary Replace a point of interest
// @Tags PointsOfInterest
// @Accept json,xml
// @Param cityId path int true "City ID"
// @Param pointOfInterestId path int true "Point of interest ID"
// @Param request body request_models.PointOfInterestForUpdate true "Point of interest"
// @Success 204
// @Failure 400 {object} utils.APIResponse
// @Failure 404 {object} utils.APIResponse
// @Security BearerAuth
// @Router /v2/cities/{cityId}/pointsofinterest/{pointOfInterestId} [put]
func (p *POIsController) UpdatePointOfInterest(c *gin.Context) {
	cityID, ok := intParam(c, "cityId")
	if !ok {
		return
	}
	poiID, ok := intParam(c, "pointOfInterestId")
	if !ok {
		return
	}

	var req request_models.PointOfInterestForUpdate
	if err := bindBody(c, &req); err != nil {
		utils.RespondError(c, http.StatusBadRequest, "Invalid request format: "+err.Error())
		return
	}

	if err := p.poiService.UpdatePointOfInterest(c.Request.Context(), cityID, poiID, req); err != nil {
		utils.HandleServiceError(c, err)
		return
	}

	utils.RespondNoContent(c)
}

// PartiallyUpdatePointOfInterest godoc
// @Summary Patch a point of interest
// @Description Applies an RFC 6902 JSON Patch document; paths are /name and /description
// @Tags PointsOfInterest
// @Accept json
// @Param cityId path int true "City ID"
// @Param pointOfInterestId path int true "Point of interest ID"
// @Param request body []object true "JSON Patch operations"
// @Success 204
// @Failure 400 {object} utils.APIResponse
// @Failure 404 {object} utils.APIResponse
// @Security BearerAuth
// @Router /v2/cities/{cityId}/pointsofinterest/{pointOfInterestId} [patch]
func (p *POIsController) PartiallyUpdatePointOfInterest(c *gin.Context) {
	cityID, ok := intParam(c, "cityId")
	if !ok {
		return
	}
	poiID, ok := intParam(c, "pointOfInterestId")
	if !ok {
		return
	}

	patch, err := c.GetRawData()
	if err != nil || len(patch) == 0 {
		utils.RespondError(c, http.StatusBadRequest, "Patch document is required")
		return
	}

	if err := p.poiService.PatchPointOfInterest(c.Request.Context(), cityID, poiID, patch); err != nil {
		utils.HandleServiceError(c, err)
		return
	}

	utils.RespondNoContent(c)
}

// DeletePointOfInterest godoc
// @Summary Delete a point of interest
// @Description Deletes the point of interest and notifies the administrator by mail
// @Tags PointsOfInterest
// @Param cityId path int true "City ID"
// @Param pointOfInterestId path int true "Point of interest ID"
// @Success 204
// @Failure 404 {object} utils.APIResponse
// @Security BearerAuth
// @Router /v2/cities/{cityId}/pointsofinterest/{pointOfInterestId} [delete]
func (p *POIsController) DeletePointOfInterest(c *gin.Context) {
	cityID, ok := intParam(c, "cityId")
	if !ok {
		return
	}
	poiID, ok := intParam(c, "pointOfInterestId")
	if !ok {
		return
	}

	if err := p.poiService.DeletePointOfInterest(c.Request.Context(), cityID, poiID); err != nil {
		utils.HandleServiceError(c, err)
		return
	}

	utils.RespondNoContent(c)
}
