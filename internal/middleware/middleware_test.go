package middleware

import (
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/yigit/schooladmin/internal/app/models"
	"github.com/yigit/schooladmin/internal/app/models/dto"
	"github.com/yigit/schooladmin/internal/pkg/apperrors"
	"github.com/yigit/schooladmin/internal/pkg/auth"
	"github.com/yigit/schooladmin/internal/pkg/dberrors"
)

func init() {
	gin.SetMode(gin.TestMode)
}

type errorBody struct {
	Success bool `json:"success"`
	Error   struct {
		Code    dto.ErrorCode   `json:"code"`
		Message string          `json:"message"`
		Details json.RawMessage `json:"details"`
	} `json:"error"`
}

func decodeError(t *testing.T, rec *httptest.ResponseRecorder) errorBody {
	t.Helper()
	var body errorBody
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
	assert.False(t, body.Success)
	return body
}

func TestHandleAPIError(t *testing.T) {
	tests := []struct {
		name   string
		err    error
		status int
		code   dto.ErrorCode
	}{
		{"not found", apperrors.NewResourceNotFoundError("student 9 not found"), http.StatusNotFound, dto.ErrorCodeResourceNotFound},
		{"blocked", apperrors.NewDeletionBlockedError("group", 12, []string{"Ana Pérez"}), http.StatusConflict, dto.ErrorCodeResourceInUse},
		{"conflict", apperrors.NewConflictError("references changed"), http.StatusConflict, dto.ErrorCodeConflict},
		{"constraint", dberrors.NewForeignKeyViolation("students", "students_group_id_fkey", nil), http.StatusConflict, dto.ErrorCodeConflict},
		{"duplicate", fmt.Errorf("%w: user", apperrors.ErrResourceAlreadyExists), http.StatusConflict, dto.ErrorCodeResourceAlreadyExists},
		{"validation", fmt.Errorf("%w: invalid group ID", apperrors.ErrValidationFailed), http.StatusBadRequest, dto.ErrorCodeValidationFailed},
		{"bad request", apperrors.NewBadRequestError("unknown kind"), http.StatusBadRequest, dto.ErrorCodeResourceInvalid},
		{"credentials", apperrors.ErrInvalidCredentials, http.StatusUnauthorized, dto.ErrorCodeInvalidCredentials},
		{"forbidden", apperrors.NewForbiddenError("admins only"), http.StatusForbidden, dto.ErrorCodeForbidden},
		{"unavailable", &dberrors.StoreFailure{Kind: apperrors.ErrConnectionUnavailable, Err: errors.New("dial")}, http.StatusServiceUnavailable, dto.ErrorCodeServiceUnavailable},
		{"store", &dberrors.StoreFailure{Kind: apperrors.ErrStore, Err: errors.New("syntax")}, http.StatusInternalServerError, dto.ErrorCodeDatabaseError},
		{"unknown", errors.New("boom"), http.StatusInternalServerError, dto.ErrorCodeInternalServer},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			rec := httptest.NewRecorder()
			c, _ := gin.CreateTestContext(rec)
			c.Request = httptest.NewRequest(http.MethodDelete, "/", nil)

			HandleAPIError(c, tt.err)

			assert.Equal(t, tt.status, rec.Code)
			assert.Equal(t, tt.code, decodeError(t, rec).Error.Code)
		})
	}
}

func TestHandleAPIErrorBlockers(t *testing.T) {
	rec := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(rec)
	c.Request = httptest.NewRequest(http.MethodDelete, "/", nil)

	HandleAPIError(c, apperrors.NewDeletionBlockedError("institution", 3, []string{"Ana Pérez", "Luis Gómez"}))

	var details dto.BlockersDetails
	require.NoError(t, json.Unmarshal(decodeError(t, rec).Error.Details, &details))
	assert.Equal(t, dto.BlockersDetails{Entity: "institution", ID: 3, Blockers: []string{"Ana Pérez", "Luis Gómez"}}, details)
}

func newAuthRouter(t *testing.T) (*gin.Engine, *auth.JWTService) {
	t.Helper()
	jwtService := auth.NewJWTService(auth.JWTConfig{SecretKey: "test-secret", AccessTokenExp: time.Hour, TokenIssuer: "schooladmin-test"})
	m := NewAuthMiddleware(jwtService)

	r := gin.New()
	r.GET("/read", m.JWTAuth(), func(c *gin.Context) {
		c.String(http.StatusOK, c.GetString(ContextUsername))
	})
	r.DELETE("/write", m.JWTAuth(), m.RoleRequired(string(models.RoleAdmin)), func(c *gin.Context) {
		c.Status(http.StatusNoContent)
	})
	return r, jwtService
}

func token(t *testing.T, jwtService *auth.JWTService, role models.Role) string {
	t.Helper()
	signed, _, err := jwtService.GenerateToken(&models.User{ID: 1, Username: "maria", Role: role})
	require.NoError(t, err)
	return "Bearer " + signed
}

func TestJWTAuth(t *testing.T) {
	r, jwtService := newAuthRouter(t)

	t.Run("missing header", func(t *testing.T) {
		rec := httptest.NewRecorder()
		r.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/read", nil))
		assert.Equal(t, http.StatusUnauthorized, rec.Code)
		assert.Equal(t, dto.ErrorCodeUnauthorized, decodeError(t, rec).Error.Code)
	})

	t.Run("garbage token", func(t *testing.T) {
		req := httptest.NewRequest(http.MethodGet, "/read", nil)
		req.Header.Set("Authorization", "Bearer not.a.token")
		rec := httptest.NewRecorder()
		r.ServeHTTP(rec, req)
		assert.Equal(t, http.StatusUnauthorized, rec.Code)
		assert.Equal(t, dto.ErrorCodeInvalidToken, decodeError(t, rec).Error.Code)
	})

	t.Run("valid token", func(t *testing.T) {
		req := httptest.NewRequest(http.MethodGet, "/read", nil)
		req.Header.Set("Authorization", token(t, jwtService, models.RoleStaff))
		rec := httptest.NewRecorder()
		r.ServeHTTP(rec, req)
		assert.Equal(t, http.StatusOK, rec.Code)
		assert.Equal(t, "maria", rec.Body.String())
	})
}

func TestRoleRequired(t *testing.T) {
	r, jwtService := newAuthRouter(t)

	req := httptest.NewRequest(http.MethodDelete, "/write", nil)
	req.Header.Set("Authorization", token(t, jwtService, models.RoleStaff))
	rec := httptest.NewRecorder()
	r.ServeHTTP(rec, req)
	assert.Equal(t, http.StatusForbidden, rec.Code)
	assert.Equal(t, dto.ErrorCodeForbidden, decodeError(t, rec).Error.Code)

	req = httptest.NewRequest(http.MethodDelete, "/write", nil)
	req.Header.Set("Authorization", token(t, jwtService, models.RoleAdmin))
	rec = httptest.NewRecorder()
	r.ServeHTTP(rec, req)
	assert.Equal(t, http.StatusNoContent, rec.Code)
}

func TestBindAndValidate(t *testing.T) {
	r := gin.New()
	r.POST("/groups", func(c *gin.Context) {
		var req dto.GroupRequest
		if !BindAndValidate(c, &req) {
			return
		}
		c.Status(http.StatusCreated)
	})

	rec := httptest.NewRecorder()
	r.ServeHTTP(rec, httptest.NewRequest(http.MethodPost, "/groups", strings.NewReader(`{"name":"A","gradeId":""}`)))
	assert.Equal(t, http.StatusBadRequest, rec.Code)
	body := decodeError(t, rec)
	assert.Equal(t, dto.ErrorCodeValidationFailed, body.Error.Code)
	assert.Contains(t, string(body.Error.Details), "gradeId")

	rec = httptest.NewRecorder()
	r.ServeHTTP(rec, httptest.NewRequest(http.MethodPost, "/groups", strings.NewReader(`{"name":"A","gradeId":"3"}`)))
	assert.Equal(t, http.StatusCreated, rec.Code)

	rec = httptest.NewRecorder()
	r.ServeHTTP(rec, httptest.NewRequest(http.MethodPost, "/groups", strings.NewReader(`{"name":`)))
	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestRequestLoggerSetsRequestID(t *testing.T) {
	r := gin.New()
	r.Use(RequestLogger(zerolog.Nop()))
	r.GET("/ping", func(c *gin.Context) { c.Status(http.StatusOK) })

	rec := httptest.NewRecorder()
	r.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/ping", nil))
	assert.NotEmpty(t, rec.Header().Get(RequestIDHeader))

	req := httptest.NewRequest(http.MethodGet, "/ping", nil)
	req.Header.Set(RequestIDHeader, "abc")
	rec = httptest.NewRecorder()
	r.ServeHTTP(rec, req)
	assert.Equal(t, "abc", rec.Header().Get(RequestIDHeader))
}
