package middleware

import (
	"strings"

	"github.com/gin-gonic/gin"
)

const (
	APIVersionKey           = "api_version"
	SupportedVersionsHeader = "api-supported-versions"
)

// APIVersion marks a route group as serving version and advertises every
// version the API supports.
func APIVersion(version string, supported ...string) gin.HandlerFunc {
	header := strings.Join(supported, ", ")

	return func(c *gin.Context) {
		c.Set(APIVersionKey, version)
		c.Header(SupportedVersionsHeader, header)
		c.Next()
	}
}
