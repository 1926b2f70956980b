package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"cityinfo/internal/models/request_models"
	"cityinfo/internal/services"
	"cityinfo/pkg/utils"
)

type AccountController struct {
	accountService services.AccountServiceInterface
}

func NewAccountController(accountService services.AccountServiceInterface) *AccountController {
	return &AccountController{
		accountService: accountService,
	}
}

// Authenticate godoc
// @Summary Authenticate
// @Description Exchanges a user name and password for a bearer token carrying the account's city
// @Tags Authentication
// @Accept json,xml
// @Produce json,xml
// @Param request body request_models.AuthenticationRequest true "Credentials"
// @Success 200 {object} utils.APIResponse
// @Failure 400 {object} utils.APIResponse
// @Failure 401 {object} utils.APIResponse
// @Router /authentication/authenticate [post]
func (a *AccountController) Authenticate(c *gin.Context) {
	var req request_models.AuthenticationRequest
	if err := bindBody(c, &req); err != nil {
		utils.RespondError(c, http.StatusBadRequest, "Invalid request format")
		return
	}

	token, err := a.accountService.Authenticate(c.Request.Context(), req)
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}

	utils.RespondSuccess(c, token, "Authenticated successfully")
}
