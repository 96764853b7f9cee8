package auth

import (
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
	"go.uber.org/zap"
)

const testSecret = "test-secret"

func signToken(t *testing.T, secret string, claims jwt.MapClaims) string {
	t.Helper()
	token, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString([]byte(secret))
	assert.NoError(t, err)
	return token
}

func validClaims(userID uuid.UUID, role string) jwt.MapClaims {
	return jwt.MapClaims{
		"sub":  userID.String(),
		"role": role,
		"iat":  time.Now().Unix(),
		"exp":  time.Now().Add(time.Hour).Unix(),
	}
}

func invokeMiddleware(t *testing.T, config JWTConfig, authHeader string, next echo.HandlerFunc) *httptest.ResponseRecorder {
	t.Helper()
	e := echo.New()
	req := httptest.NewRequest(http.MethodGet, "/api/v1/users/me", nil)
	if authHeader != "" {
		req.Header.Set("Authorization", authHeader)
	}
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)

	err := JWTMiddleware(config)(next)(c)
	assert.NoError(t, err)
	return rec
}

func TestJWTMiddleware_SuccessfulAuthentication(t *testing.T) {
	config := JWTConfig{Secret: testSecret, Logger: zap.NewNop()}
	userID := uuid.New()
	token := signToken(t, testSecret, validClaims(userID, "ADMIN"))

	rec := invokeMiddleware(t, config, "Bearer "+token, func(c echo.Context) error {
		user, err := GetUserFromContext(c)
		assert.NoError(t, err)
		assert.Equal(t, userID, user.UserID)
		assert.Equal(t, "ADMIN", user.Role)

		actor := user.Actor()
		assert.Equal(t, userID, actor.ID)
		assert.True(t, actor.IsAdmin())
		return c.JSON(http.StatusOK, echo.Map{"status": "ok"})
	})

	assert.Equal(t, http.StatusOK, rec.Code)
}

func TestJWTMiddleware_MissingAuthorizationHeader(t *testing.T) {
	config := JWTConfig{Secret: testSecret, Logger: zap.NewNop()}

	rec := invokeMiddleware(t, config, "", func(c echo.Context) error {
		t.Fatal("next handler must not run")
		return nil
	})

	assert.Equal(t, http.StatusUnauthorized, rec.Code)
	assert.Contains(t, rec.Body.String(), "MISSING_AUTH_HEADER")
}

func TestJWTMiddleware_MalformedHeader(t *testing.T) {
	config := JWTConfig{Secret: testSecret, Logger: zap.NewNop()}

	rec := invokeMiddleware(t, config, "Token abc", func(c echo.Context) error {
		t.Fatal("next handler must not run")
		return nil
	})

	assert.Equal(t, http.StatusUnauthorized, rec.Code)
	assert.Contains(t, rec.Body.String(), "INVALID_AUTH_FORMAT")
}

func TestJWTMiddleware_WrongSecret(t *testing.T) {
	config := JWTConfig{Secret: testSecret, Logger: zap.NewNop()}
	token := signToken(t, "other-secret", validClaims(uuid.New(), "USER"))

	rec := invokeMiddleware(t, config, "Bearer "+token, func(c echo.Context) error {
		t.Fatal("next handler must not run")
		return nil
	})

	assert.Equal(t, http.StatusUnauthorized, rec.Code)
	assert.Contains(t, rec.Body.String(), "INVALID_TOKEN")
}

func TestJWTMiddleware_ExpiredToken(t *testing.T) {
	config := JWTConfig{Secret: testSecret, Logger: zap.NewNop()}
	claims := validClaims(uuid.New(), "USER")
	claims["exp"] = time.Now().Add(-time.Hour).Unix()
	token := signToken(t, testSecret, claims)

	rec := invokeMiddleware(t, config, "Bearer "+token, func(c echo.Context) error {
		t.Fatal("next handler must not run")
		return nil
	})

	assert.Equal(t, http.StatusUnauthorized, rec.Code)
	assert.Contains(t, rec.Body.String(), "INVALID_TOKEN")
}

func TestJWTMiddleware_InvalidSubject(t *testing.T) {
	config := JWTConfig{Secret: testSecret, Logger: zap.NewNop()}
	claims := validClaims(uuid.New(), "USER")
	claims["sub"] = "not-a-uuid"
	token := signToken(t, testSecret, claims)

	rec := invokeMiddleware(t, config, "Bearer "+token, func(c echo.Context) error {
		t.Fatal("next handler must not run")
		return nil
	})

	assert.Equal(t, http.StatusUnauthorized, rec.Code)
	assert.Contains(t, rec.Body.String(), "INVALID_SUBJECT")
}

func TestJWTMiddleware_UnknownRole(t *testing.T) {
	config := JWTConfig{Secret: testSecret, Logger: zap.NewNop()}
	token := signToken(t, testSecret, validClaims(uuid.New(), "SUPERUSER"))

	rec := invokeMiddleware(t, config, "Bearer "+token, func(c echo.Context) error {
		t.Fatal("next handler must not run")
		return nil
	})

	assert.Equal(t, http.StatusUnauthorized, rec.Code)
	assert.Contains(t, rec.Body.String(), "INVALID_ROLE")
}

func TestJWTMiddleware_SkipPaths(t *testing.T) {
	config := JWTConfig{
		Secret:    testSecret,
		Logger:    zap.NewNop(),
		SkipPaths: []string{"/api/v1/auth"},
	}

	e := echo.New()
	req := httptest.NewRequest(http.MethodPost, "/api/v1/auth/login", nil)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)

	called := false
	err := JWTMiddleware(config)(func(c echo.Context) error {
		called = true
		return c.NoContent(http.StatusOK)
	})(c)

	assert.NoError(t, err)
	assert.True(t, called, "skip paths bypass token validation")
}

func TestRequireAdmin(t *testing.T) {
	config := JWTConfig{Secret: testSecret, Logger: zap.NewNop()}
	token := signToken(t, testSecret, validClaims(uuid.New(), "USER"))

	rec := invokeMiddleware(t, config, "Bearer "+token, RequireAdmin(func(c echo.Context) error {
		t.Fatal("non-admin must not pass")
		return nil
	}))

	assert.Equal(t, http.StatusForbidden, rec.Code)
	assert.Contains(t, rec.Body.String(), "ADMIN_REQUIRED")
}
