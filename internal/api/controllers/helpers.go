package controllers

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"github.com/gin-gonic/gin/binding"

	"cityinfo/pkg/utils"
)

// bindBody decodes XML bodies when the request says so and JSON otherwise.
func bindBody(c *gin.Context, obj interface{}) error {
	switch c.ContentType() {
	case binding.MIMEXML, binding.MIMEXML2:
		return c.ShouldBindWith(obj, binding.XML)
	default:
		return c.ShouldBindWith(obj, binding.JSON)
	}
}

// intParam reads a positive integer path parameter, answering 400 when it is
// not one.
func intParam(c *gin.Context, name string) (int, bool) {
	v, err := strconv.Atoi(c.Param(name))
	if err != nil || v < 1 {
		utils.RespondError(c, http.StatusBadRequest, "Invalid "+name)
		return 0, false
	}
	return v, true
}
