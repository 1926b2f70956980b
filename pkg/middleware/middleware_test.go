package middleware_test

import (
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap/zapcore"

	"cityinfo/pkg/logger"
	"cityinfo/pkg/middleware"
	"cityinfo/pkg/utils"
)

func init() {
	gin.SetMode(gin.TestMode)
}

func newTokens(t *testing.T) *utils.TokenService {
	t.Helper()
	tokens, err := utils.NewTokenService(utils.JWTConfig{
		Secret:   "test-secret-that-is-long-enough-for-testing",
		Issuer:   "https://localhost:7169",
		Audience: "cityinfoapi",
		Lifetime: time.Hour,
	})
	require.NoError(t, err)
	return tokens
}

func serve(r *gin.Engine, req *http.Request) *httptest.ResponseRecorder {
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	return w
}

func TestJWTAuthMiddleware(t *testing.T) {
	tokens := newTokens(t)
	r := gin.New()
	r.GET("/me", middleware.JWTAuthMiddleware(tokens), func(c *gin.Context) {
		claims, ok := middleware.ClaimsFrom(c)
		require.True(t, ok)
		c.String(http.StatusOK, c.GetString(middleware.CityKey)+"|"+claims.Subject)
	})

	token, _, err := tokens.CreateToken(utils.TokenSubject{AccountID: 4, City: "Antwerp"})
	require.NoError(t, err)

	tests := []struct {
		name       string
		header     string
		wantStatus int
		wantBody   string
	}{
		{name: "valid", header: "Bearer " + token, wantStatus: http.StatusOK, wantBody: "Antwerp|4"},
		{name: "missing", header: "", wantStatus: http.StatusUnauthorized},
		{name: "wrong scheme", header: "Basic abc", wantStatus: http.StatusUnauthorized},
		{name: "garbage token", header: "Bearer abc.def.ghi", wantStatus: http.StatusUnauthorized},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req := httptest.NewRequest(http.MethodGet, "/me", nil)
			if tt.header != "" {
				req.Header.Set("Authorization", tt.header)
			}
			w := serve(r, req)
			assert.Equal(t, tt.wantStatus, w.Code)
			if tt.wantBody != "" {
				assert.Equal(t, tt.wantBody, w.Body.String())
			}
			if tt.wantStatus == http.StatusUnauthorized {
				assert.Contains(t, w.Header().Get("WWW-Authenticate"), "Bearer")
			}
		})
	}
}

func TestMustBeFromCity(t *testing.T) {
	newRouter := func(policyCity, claim string) *gin.Engine {
		r := gin.New()
		r.GET("/x", func(c *gin.Context) {
			c.Set(middleware.CityKey, claim)
		}, middleware.MustBeFromCity(policyCity), func(c *gin.Context) {
			c.Status(http.StatusOK)
		})
		return r
	}

	assert.Equal(t, http.StatusOK, serve(newRouter("Antwerp", "Antwerp"), httptest.NewRequest(http.MethodGet, "/x", nil)).Code)
	assert.Equal(t, http.StatusForbidden, serve(newRouter("Antwerp", "Paris"), httptest.NewRequest(http.MethodGet, "/x", nil)).Code)
	assert.Equal(t, http.StatusOK, serve(newRouter("", "Paris"), httptest.NewRequest(http.MethodGet, "/x", nil)).Code)
}

func TestTraceIDMiddleware(t *testing.T) {
	r := gin.New()
	r.Use(middleware.TraceIDMiddleware())
	r.GET("/x", func(c *gin.Context) { c.String(http.StatusOK, c.GetString(utils.TraceIDKey)) })

	w := serve(r, httptest.NewRequest(http.MethodGet, "/x", nil))
	generated := w.Header().Get(middleware.TraceIDHeader)
	_, err := uuid.Parse(generated)
	require.NoError(t, err)
	assert.Equal(t, generated, w.Body.String())

	incoming := uuid.NewString()
	req := httptest.NewRequest(http.MethodGet, "/x", nil)
	req.Header.Set(middleware.TraceIDHeader, incoming)
	assert.Equal(t, incoming, serve(r, req).Header().Get(middleware.TraceIDHeader))

	req = httptest.NewRequest(http.MethodGet, "/x", nil)
	req.Header.Set(middleware.TraceIDHeader, "not a uuid")
	assert.NotEqual(t, "not a uuid", serve(r, req).Header().Get(middleware.TraceIDHeader))
}

func TestRequestLogger(t *testing.T) {
	lggr, logs := logger.TestObserved(t, zapcore.InfoLevel)
	r := gin.New()
	r.Use(middleware.TraceIDMiddleware(), middleware.RequestLogger(lggr))
	r.GET("/ok", func(c *gin.Context) { c.Status(http.StatusOK) })
	r.GET("/missing", func(c *gin.Context) { c.Status(http.StatusNotFound) })

	serve(r, httptest.NewRequest(http.MethodGet, "/ok", nil))
	serve(r, httptest.NewRequest(http.MethodGet, "/missing", nil))

	handled := logs.FilterMessage("Request handled").All()
	require.Len(t, handled, 1)
	fields := handled[0].ContextMap()
	assert.Equal(t, "/ok", fields["path"])
	assert.EqualValues(t, http.StatusOK, fields["status"])
	assert.NotEmpty(t, fields[utils.TraceIDKey])

	assert.Equal(t, 1, logs.FilterMessage("Request rejected").Len())
}

func TestRecovery(t *testing.T) {
	r := gin.New()
	r.Use(middleware.Recovery())
	r.GET("/panic", func(c *gin.Context) { panic("boom") })

	w := serve(r, httptest.NewRequest(http.MethodGet, "/panic", nil))
	assert.Equal(t, http.StatusInternalServerError, w.Code)
	assert.Contains(t, w.Body.String(), "Internal server error")
}

func TestAPIVersion(t *testing.T) {
	r := gin.New()
	r.GET("/x", middleware.APIVersion("2.0", "1.0", "2.0"), func(c *gin.Context) {
		c.String(http.StatusOK, c.GetString(middleware.APIVersionKey))
	})

	w := serve(r, httptest.NewRequest(http.MethodGet, "/x", nil))
	assert.Equal(t, "2.0", w.Body.String())
	assert.Equal(t, "1.0, 2.0", w.Header().Get(middleware.SupportedVersionsHeader))
}

func TestAcceptableFormats(t *testing.T) {
	r := gin.New()
	r.Use(middleware.AcceptableFormats())
	r.GET("/x", func(c *gin.Context) { c.Status(http.StatusOK) })

	for accept, want := range map[string]int{
		"":                 http.StatusOK,
		"*/*":              http.StatusOK,
		"application/json": http.StatusOK,
		"application/xml":  http.StatusOK,
		"text/xml":         http.StatusOK,
		"text/csv":         http.StatusNotAcceptable,
		"application/pdf":  http.StatusNotAcceptable,
	} {
		req := httptest.NewRequest(http.MethodGet, "/x", nil)
		if accept != "" {
			req.Header.Set("Accept", accept)
		}
		assert.Equal(t, want, serve(r, req).Code, "Accept: %q", accept)
	}
}

func TestCORSMiddleware(t *testing.T) {
	r := gin.New()
	r.Use(middleware.CORSMiddleware())
	r.GET("/x", func(c *gin.Context) { c.Status(http.StatusOK) })

	w := serve(r, httptest.NewRequest(http.MethodOptions, "/x", nil))
	assert.Equal(t, http.StatusNoContent, w.Code)
	assert.Equal(t, "*", w.Header().Get("Access-Control-Allow-Origin"))
	assert.Contains(t, w.Header().Get("Access-Control-Expose-Headers"), "X-Pagination")
}
