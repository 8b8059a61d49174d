package middleware

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/campushire/campushire/internal/app/models"
	"github.com/campushire/campushire/internal/app/models/dto"
	"github.com/campushire/campushire/internal/pkg/apperrors"
	"github.com/campushire/campushire/internal/pkg/auth"
)

func respondWith(t *testing.T, err error) (*httptest.ResponseRecorder, *dto.ErrorResponse) {
	t.Helper()
	gin.SetMode(gin.TestMode)

	recorder := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(recorder)
	c.Request = httptest.NewRequest(http.MethodGet, "/", nil)

	HandleAPIError(c, err)

	var body dto.ErrorResponse
	require.NoError(t, json.Unmarshal(recorder.Body.Bytes(), &body))
	require.NotNil(t, body.Error)
	return recorder, &body
}

func TestHandleAPIErrorSentinels(t *testing.T) {
	recorder, body := respondWith(t, apperrors.ErrJobNotFound)
	assert.Equal(t, http.StatusNotFound, recorder.Code)
	assert.Equal(t, dto.ErrorCodeResourceNotFound, body.Error.Code)
	assert.Equal(t, "Job not found", body.Error.Message)

	recorder, body = respondWith(t, apperrors.ErrDuplicateApplication)
	assert.Equal(t, http.StatusConflict, recorder.Code)
	assert.Equal(t, dto.ErrorCodeDuplicateApplication, body.Error.Code)
}

func TestHandleAPIErrorCustomMessages(t *testing.T) {
	recorder, body := respondWith(t, apperrors.NewResourceNotFoundError("saved job not found"))
	assert.Equal(t, http.StatusNotFound, recorder.Code)
	assert.Equal(t, dto.ErrorCodeResourceNotFound, body.Error.Code)
	assert.Equal(t, "saved job not found", body.Error.Message)

	recorder, body = respondWith(t, apperrors.NewConflictError("user violates a unique constraint"))
	assert.Equal(t, http.StatusConflict, recorder.Code)
	assert.Equal(t, dto.ErrorCodeResourceAlreadyExists, body.Error.Code)
	assert.Equal(t, "user violates a unique constraint", body.Error.Message)

	recorder, body = respondWith(t, apperrors.NewBadRequestError("invalid jobId parameter"))
	assert.Equal(t, http.StatusBadRequest, recorder.Code)
	assert.Equal(t, dto.ErrorCodeValidationFailed, body.Error.Code)
	assert.Equal(t, "invalid jobId parameter", body.Error.Message)

	recorder, body = respondWith(t, apperrors.NewForbiddenError("job belongs to another recruiter"))
	assert.Equal(t, http.StatusForbidden, recorder.Code)
	assert.Equal(t, dto.ErrorCodeForbidden, body.Error.Code)
	assert.Equal(t, "job belongs to another recruiter", body.Error.Message)
}

func TestHandleAPIErrorCustomDetails(t *testing.T) {
	err := apperrors.NewCustomError(apperrors.ErrTokenExpired, "Authentication failed").
		WithDetails(map[string]interface{}{"reason": "token has expired"})

	recorder, body := respondWith(t, err)
	assert.Equal(t, http.StatusUnauthorized, recorder.Code)
	assert.Equal(t, dto.ErrorCodeExpiredToken, body.Error.Code)
	assert.Equal(t, "Authentication failed", body.Error.Message)

	details, ok := body.Error.Details.(map[string]interface{})
	require.True(t, ok)
	assert.Equal(t, "token has expired", details["reason"])
}

func newAuthTestRouter(t *testing.T, jwtService *auth.JWTService) *gin.Engine {
	t.Helper()
	gin.SetMode(gin.TestMode)

	router := gin.New()
	router.GET("/protected", NewAuthMiddleware(jwtService).JWTAuth(), func(c *gin.Context) {
		c.Status(http.StatusOK)
	})
	return router
}

func doProtected(t *testing.T, router *gin.Engine, header string) (*httptest.ResponseRecorder, *dto.ErrorResponse) {
	t.Helper()

	req := httptest.NewRequest(http.MethodGet, "/protected", nil)
	if header != "" {
		req.Header.Set("Authorization", header)
	}
	recorder := httptest.NewRecorder()
	router.ServeHTTP(recorder, req)

	var body dto.ErrorResponse
	if recorder.Code != http.StatusOK {
		require.NoError(t, json.Unmarshal(recorder.Body.Bytes(), &body))
		require.NotNil(t, body.Error)
	}
	return recorder, &body
}

func TestJWTAuthRejections(t *testing.T) {
	jwtService := auth.NewJWTService(auth.JWTConfig{
		SecretKey:      "test-secret",
		AccessTokenExp: time.Hour,
		TokenIssuer:    "test",
	})
	router := newAuthTestRouter(t, jwtService)

	recorder, body := doProtected(t, router, "")
	assert.Equal(t, http.StatusUnauthorized, recorder.Code)
	assert.Equal(t, dto.ErrorCodeUnauthorized, body.Error.Code)
	assert.Equal(t, "Authentication required", body.Error.Message)

	recorder, body = doProtected(t, router, "Token abc")
	assert.Equal(t, http.StatusUnauthorized, recorder.Code)
	assert.Equal(t, dto.ErrorCodeUnauthorized, body.Error.Code)

	recorder, body = doProtected(t, router, "Bearer not-a-token")
	assert.Equal(t, http.StatusUnauthorized, recorder.Code)
	assert.Equal(t, dto.ErrorCodeInvalidToken, body.Error.Code)
	assert.Equal(t, "Authentication failed", body.Error.Message)
}

func TestJWTAuthExpiredToken(t *testing.T) {
	expired := auth.NewJWTService(auth.JWTConfig{
		SecretKey:      "test-secret",
		AccessTokenExp: -time.Hour,
		TokenIssuer:    "test",
	})
	token, _, err := expired.GenerateToken(&models.User{ID: 1, Role: models.RoleStudent})
	require.NoError(t, err)

	current := auth.NewJWTService(auth.JWTConfig{
		SecretKey:      "test-secret",
		AccessTokenExp: time.Hour,
		TokenIssuer:    "test",
	})
	router := newAuthTestRouter(t, current)

	recorder, body := doProtected(t, router, "Bearer "+token)
	assert.Equal(t, http.StatusUnauthorized, recorder.Code)
	assert.Equal(t, dto.ErrorCodeExpiredToken, body.Error.Code)

	details, ok := body.Error.Details.(map[string]interface{})
	require.True(t, ok)
	assert.Equal(t, "token has expired", details["reason"])
}
