package handlers

import (
	"bytes"
	"context"
	"database/sql"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/golang-jwt/jwt/v4"
	"github.com/rs/zerolog"
	"github.com/stretchr/testify/require"
	"github.com/vivahalink/vivaha-api/internal/authz"
	"github.com/vivahalink/vivaha-api/internal/models"
	"github.com/vivahalink/vivaha-api/internal/repository"
)

const testJWTSecret = "unit-test-secret"

func newTestAuthHandler(repo repository.AdminRepository) *AuthHandler {
	return &AuthHandler{
		adminRepository: repo,
		jwtSecret:       testJWTSecret,
		tokenTTL:        time.Hour,
		logger:          zerolog.Nop(),
	}
}

func TestAuthLogin(t *testing.T) {
	admin := models.Admin{ID: "admin-1", Email: "owner@example.com"}

	t.Run("success returns bearer token", func(t *testing.T) {
		handler := newTestAuthHandler(&mockAdminRepository{
			AuthenticateFunc: func(ctx context.Context, email, password string) (models.Admin, error) {
				require.Equal(t, "owner@example.com", email)
				require.Equal(t, "s3cret", password)
				return admin, nil
			},
		})

		req := httptest.NewRequest(http.MethodPost, "/api/auth/login",
			bytes.NewBufferString(`{"email":"owner@example.com","password":"s3cret"}`))
		rr := httptest.NewRecorder()
		handler.Login(rr, req)

		require.Equal(t, http.StatusOK, rr.Code)

		var resp loginResponse
		require.NoError(t, json.NewDecoder(rr.Body).Decode(&resp))
		require.Equal(t, "bearer", resp.TokenType)
		require.Equal(t, admin, resp.Admin)

		token, err := jwt.Parse(resp.AccessToken, func(*jwt.Token) (interface{}, error) {
			return []byte(testJWTSecret), nil
		})
		require.NoError(t, err)
		claims := token.Claims.(jwt.MapClaims)
		require.Equal(t, "admin-1", claims["sub"])
		require.Equal(t, "owner@example.com", claims["email"])
	})

	t.Run("wrong credentials", func(t *testing.T) {
		handler := newTestAuthHandler(&mockAdminRepository{
			AuthenticateFunc: func(ctx context.Context, email, password string) (models.Admin, error) {
				return models.Admin{}, repository.ErrInvalidCredentials
			},
		})

		req := httptest.NewRequest(http.MethodPost, "/api/auth/login",
			bytes.NewBufferString(`{"email":"owner@example.com","password":"nope"}`))
		rr := httptest.NewRecorder()
		handler.Login(rr, req)

		requireErrorResponse(t, rr, http.StatusUnauthorized, "invalid email or password")
	})

	t.Run("malformed body", func(t *testing.T) {
		handler := newTestAuthHandler(&mockAdminRepository{})
		req := httptest.NewRequest(http.MethodPost, "/api/auth/login", bytes.NewBufferString("{"))
		rr := httptest.NewRecorder()
		handler.Login(rr, req)

		requireErrorResponse(t, rr, http.StatusBadRequest, "invalid request body")
	})

	t.Run("missing fields", func(t *testing.T) {
		handler := newTestAuthHandler(&mockAdminRepository{})
		req := httptest.NewRequest(http.MethodPost, "/api/auth/login",
			bytes.NewBufferString(`{"email":"  ","password":""}`))
		rr := httptest.NewRecorder()
		handler.Login(rr, req)

		requireErrorResponse(t, rr, http.StatusBadRequest, "email and password are required")
	})
}

func TestAuthMe(t *testing.T) {
	t.Run("without admin on context", func(t *testing.T) {
		handler := newTestAuthHandler(&mockAdminRepository{})
		req := httptest.NewRequest(http.MethodGet, "/api/auth/me", nil)
		rr := httptest.NewRecorder()
		handler.Me(rr, req)

		requireErrorResponse(t, rr, http.StatusUnauthorized, "authentication required")
	})

	t.Run("returns current admin", func(t *testing.T) {
		admin := models.Admin{ID: "admin-1", Email: "owner@example.com"}
		handler := newTestAuthHandler(&mockAdminRepository{
			GetByIDFunc: func(ctx context.Context, adminID string) (models.Admin, error) {
				require.Equal(t, "admin-1", adminID)
				return admin, nil
			},
		})

		req := httptest.NewRequest(http.MethodGet, "/api/auth/me", nil)
		req = req.WithContext(authz.WithAdmin(req.Context(), "admin-1", "owner@example.com"))
		rr := httptest.NewRecorder()
		handler.Me(rr, req)

		require.Equal(t, http.StatusOK, rr.Code)
		var got models.Admin
		require.NoError(t, json.NewDecoder(rr.Body).Decode(&got))
		require.Equal(t, admin, got)
	})

	t.Run("deleted admin", func(t *testing.T) {
		handler := newTestAuthHandler(&mockAdminRepository{
			GetByIDFunc: func(ctx context.Context, adminID string) (models.Admin, error) {
				return models.Admin{}, sql.ErrNoRows
			},
		})

		req := httptest.NewRequest(http.MethodGet, "/api/auth/me", nil)
		req = req.WithContext(authz.WithAdmin(req.Context(), "admin-1", "owner@example.com"))
		rr := httptest.NewRecorder()
		handler.Me(rr, req)

		requireErrorResponse(t, rr, http.StatusUnauthorized, "admin no longer exists")
	})
}

func TestJWTMiddleware(t *testing.T) {
	handler := newTestAuthHandler(&mockAdminRepository{})

	next := func(called *bool, gotAdminID, gotEmail *string) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			*called = true
			*gotAdminID, _ = authz.AdminIDFromRequest(r)
			*gotEmail, _ = authz.AdminEmailFromRequest(r)
			w.WriteHeader(http.StatusOK)
		})
	}

	signToken := func(t *testing.T, claims jwt.MapClaims) string {
		t.Helper()
		token, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString([]byte(testJWTSecret))
		require.NoError(t, err)
		return token
	}

	t.Run("missing header", func(t *testing.T) {
		var called bool
		var id, email string
		req := httptest.NewRequest(http.MethodGet, "/api/admin/profiles", nil)
		rr := httptest.NewRecorder()
		handler.JWTMiddleware(next(&called, &id, &email)).ServeHTTP(rr, req)

		requireErrorResponse(t, rr, http.StatusUnauthorized, "authorization header required")
		require.False(t, called)
	})

	t.Run("not a bearer token", func(t *testing.T) {
		var called bool
		var id, email string
		req := httptest.NewRequest(http.MethodGet, "/api/admin/profiles", nil)
		req.Header.Set("Authorization", "Basic abc123")
		rr := httptest.NewRecorder()
		handler.JWTMiddleware(next(&called, &id, &email)).ServeHTTP(rr, req)

		requireErrorResponse(t, rr, http.StatusUnauthorized, "invalid authorization format")
		require.False(t, called)
	})

	t.Run("garbage token", func(t *testing.T) {
		var called bool
		var id, email string
		req := httptest.NewRequest(http.MethodGet, "/api/admin/profiles", nil)
		req.Header.Set("Authorization", "Bearer not.a.jwt")
		rr := httptest.NewRecorder()
		handler.JWTMiddleware(next(&called, &id, &email)).ServeHTTP(rr, req)

		requireErrorResponse(t, rr, http.StatusUnauthorized, "invalid token")
		require.False(t, called)
	})

	t.Run("expired token", func(t *testing.T) {
		var called bool
		var id, email string
		token := signToken(t, jwt.MapClaims{
			"sub": "admin-1",
			"exp": time.Now().Add(-time.Minute).Unix(),
		})
		req := httptest.NewRequest(http.MethodGet, "/api/admin/profiles", nil)
		req.Header.Set("Authorization", "Bearer "+token)
		rr := httptest.NewRecorder()
		handler.JWTMiddleware(next(&called, &id, &email)).ServeHTTP(rr, req)

		require.Equal(t, http.StatusUnauthorized, rr.Code)
		require.False(t, called)
	})

	t.Run("missing sub claim", func(t *testing.T) {
		var called bool
		var id, email string
		token := signToken(t, jwt.MapClaims{
			"exp": time.Now().Add(time.Hour).Unix(),
		})
		req := httptest.NewRequest(http.MethodGet, "/api/admin/profiles", nil)
		req.Header.Set("Authorization", "Bearer "+token)
		rr := httptest.NewRecorder()
		handler.JWTMiddleware(next(&called, &id, &email)).ServeHTTP(rr, req)

		requireErrorResponse(t, rr, http.StatusUnauthorized, "missing token claim")
		require.False(t, called)
	})

	t.Run("valid token reaches the handler with admin on context", func(t *testing.T) {
		var called bool
		var id, email string
		token := signToken(t, jwt.MapClaims{
			"sub":   "admin-1",
			"email": "owner@example.com",
			"exp":   time.Now().Add(time.Hour).Unix(),
		})
		req := httptest.NewRequest(http.MethodGet, "/api/admin/profiles", nil)
		req.Header.Set("Authorization", "Bearer "+token)
		rr := httptest.NewRecorder()
		handler.JWTMiddleware(next(&called, &id, &email)).ServeHTTP(rr, req)

		require.Equal(t, http.StatusOK, rr.Code)
		require.True(t, called)
		require.Equal(t, "admin-1", id)
		require.Equal(t, "owner@example.com", email)
	})

	t.Run("login token round-trips through the middleware", func(t *testing.T) {
		admin := models.Admin{ID: "admin-9", Email: "owner@example.com"}
		login := newTestAuthHandler(&mockAdminRepository{
			AuthenticateFunc: func(ctx context.Context, email, password string) (models.Admin, error) {
				return admin, nil
			},
		})

		req := httptest.NewRequest(http.MethodPost, "/api/auth/login",
			bytes.NewBufferString(`{"email":"owner@example.com","password":"s3cret"}`))
		rr := httptest.NewRecorder()
		login.Login(rr, req)
		require.Equal(t, http.StatusOK, rr.Code)

		var resp loginResponse
		require.NoError(t, json.NewDecoder(rr.Body).Decode(&resp))

		var called bool
		var id, email string
		authed := httptest.NewRequest(http.MethodGet, "/api/auth/me", nil)
		authed.Header.Set("Authorization", "Bearer "+resp.AccessToken)
		rr = httptest.NewRecorder()
		login.JWTMiddleware(next(&called, &id, &email)).ServeHTTP(rr, authed)

		require.True(t, called)
		require.Equal(t, "admin-9", id)
	})
}
