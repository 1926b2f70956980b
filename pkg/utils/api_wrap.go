package utils

import (
	"encoding/xml"
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/gin-gonic/gin/binding"
	"go.uber.org/zap"
)

const (
	TraceIDKey = "trace_id"
	LoggerKey  = "logger"
)

// OfferedFormats are the response media types the API can produce, in order
// of preference when the client accepts anything.
var OfferedFormats = []string{binding.MIMEJSON, binding.MIMEXML, binding.MIMEXML2}

type APIResponse struct {
	XMLName xml.Name    `json:"-" xml:"response"`
	Status  string      `json:"status" xml:"status"`
	Code    int         `json:"code" xml:"code"`
	Message string      `json:"message,omitempty" xml:"message,omitempty"`
	TraceID string      `json:"trace_id,omitempty" xml:"traceId,omitempty"`
	Data    interface{} `json:"data,omitempty" xml:"-"`
	XMLData *xmlPayload `json:"-" xml:"data,omitempty"`
}

// xmlPayload nests the payload under <data> in XML as JSON does. Each item
// keeps its own element name, so a list renders as <data><City/><City/></data>.
type xmlPayload struct {
	Value interface{} `xml:",any"`
}

// Respond writes body in the format negotiated from the Accept header.
func Respond(c *gin.Context, code int, body interface{}) {
	switch c.NegotiateFormat(OfferedFormats...) {
	case binding.MIMEXML, binding.MIMEXML2:
		c.XML(code, body)
	case binding.MIMEJSON:
		c.JSON(code, body)
	default:
		c.AbortWithStatus(http.StatusNotAcceptable)
	}
}

func RespondSuccess(c *gin.Context, data interface{}, message string) {
	respondData(c, http.StatusOK, data, message)
}

// RespondCreated answers 201 with a Location header pointing at the new resource.
func RespondCreated(c *gin.Context, location string, data interface{}, message string) {
	c.Header("Location", location)
	respondData(c, http.StatusCreated, data, message)
}

func RespondNoContent(c *gin.Context) {
	c.Status(http.StatusNoContent)
}

func respondData(c *gin.Context, code int, data interface{}, message string) {
	resp := APIResponse{
		Status:  "success",
		Code:    code,
		Message: message,
		TraceID: c.GetString(TraceIDKey),
		Data:    data,
	}
	if data != nil {
		resp.XMLData = &xmlPayload{Value: data}
	}
	Respond(c, code, resp)
}

func RespondError(c *gin.Context, code int, message string) {
	Respond(c, code, APIResponse{
		Status:  "error",
		Code:    code,
		Message: message,
		TraceID: c.GetString(TraceIDKey),
	})
}

// LoggerFrom returns the request-scoped logger set by the request logging
// middleware, or the global zap logger.
func LoggerFrom(c *gin.Context) *zap.SugaredLogger {
	if v, ok := c.Get(LoggerKey); ok {
		if lggr, ok := v.(*zap.SugaredLogger); ok {
			return lggr
		}
	}
	return zap.S()
}

func HandleServiceError(c *gin.Context, err error) {
	switch {
	case errors.Is(err, ErrCityNotFound):
		RespondError(c, http.StatusNotFound, "City not found")
	case errors.Is(err, ErrPointOfInterestNotFound):
		RespondError(c, http.StatusNotFound, "Point of interest not found")
	case errors.Is(err, ErrCityAccessDenied):
		RespondError(c, http.StatusForbidden, "Forbidden: city claim does not match the requested city")
	case errors.Is(err, ErrInvalidPage):
		RespondError(c, http.StatusBadRequest, "Page number must be greater than 0")
	case errors.Is(err, ErrInvalidPageSize):
		RespondError(c, http.StatusBadRequest, "Page size must be greater than 0")
	case errors.Is(err, ErrInvalidPatch), errors.Is(err, ErrValidation):
		RespondError(c, http.StatusBadRequest, err.Error())
	case errors.Is(err, ErrInvalidCredentials):
		RespondError(c, http.StatusUnauthorized, "Invalid user name or password")
	case errors.Is(err, ErrAccountExists):
		RespondError(c, http.StatusConflict, "Account already exists")
	case errors.Is(err, ErrDatabaseError):
		LoggerFrom(c).Errorw("Database error", "error", err)
		RespondError(c, http.StatusInternalServerError, "Internal server error")
	default:
		LoggerFrom(c).Errorw("Unknown error", "error", err)
		RespondError(c, http.StatusInternalServerError, "Internal server error")
	}
}
