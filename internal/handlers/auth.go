package handlers

import (
	"database/sql"
	"encoding/json"
	"errors"
	"net/http"
	"strings"
	"time"

	"github.com/golang-jwt/jwt/v4"
	"github.com/rs/zerolog"
	"github.com/vivahalink/vivaha-api/internal/authz"
	"github.com/vivahalink/vivaha-api/internal/config"
	"github.com/vivahalink/vivaha-api/internal/models"
	"github.com/vivahalink/vivaha-api/internal/repository"
)

type AuthHandler struct {
	adminRepository repository.AdminRepository
	jwtSecret       string
	tokenTTL        time.Duration
	logger          zerolog.Logger
}

type loginRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

type loginResponse struct {
	AccessToken string       `json:"access_token"`
	TokenType   string       `json:"token_type"`
	Admin       models.Admin `json:"admin"`
}

func NewAuthHandler(db *sql.DB, cfg *config.Config, logger zerolog.Logger) *AuthHandler {
	return &AuthHandler{
		adminRepository: repository.NewAdminRepository(db),
		jwtSecret:       cfg.Auth.JWTSecret,
		tokenTTL:        time.Duration(cfg.Auth.TokenTTLHours) * time.Hour,
		logger:          logger.With().Str("handler", "auth").Logger(),
	}
}

func (h *AuthHandler) Login(w http.ResponseWriter, r *http.Request) {
	var req loginRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid request body")
		return
	}

	req.Email = strings.TrimSpace(req.Email)
	if req.Email == "" || req.Password == "" {
		writeError(w, http.StatusBadRequest, "email and password are required")
		return
	}

	admin, err := h.adminRepository.Authenticate(r.Context(), req.Email, req.Password)
	if err != nil {
		if errors.Is(err, repository.ErrInvalidCredentials) {
			writeError(w, http.StatusUnauthorized, "invalid email or password")
			return
		}
		h.logger.Error().Err(err).Msg("login failed")
		writeError(w, http.StatusInternalServerError, "failed to authenticate")
		return
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, jwt.MapClaims{
		"sub":   admin.ID,
		"email": admin.Email,
		"exp":   time.Now().Add(h.tokenTTL).Unix(),
	})
	tokenString, err := token.SignedString([]byte(h.jwtSecret))
	if err != nil {
		h.logger.Error().Err(err).Msg("failed to sign token")
		writeError(w, http.StatusInternalServerError, "failed to generate token")
		return
	}

	writeJSON(w, http.StatusOK, loginResponse{
		AccessToken: tokenString,
		TokenType:   "bearer",
		Admin:       admin,
	})
}

func (h *AuthHandler) Me(w http.ResponseWriter, r *http.Request) {
	adminID, ok := adminIDFromRequest(r)
	if !ok {
		writeError(w, http.StatusUnauthorized, "authentication required")
		return
	}

	admin, err := h.adminRepository.GetByID(r.Context(), adminID)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			writeError(w, http.StatusUnauthorized, "admin no longer exists")
			return
		}
		h.logger.Error().Err(err).Msg("failed to load admin")
		writeError(w, http.StatusInternalServerError, "failed to load admin")
		return
	}

	writeJSON(w, http.StatusOK, admin)
}

func (h *AuthHandler) JWTMiddleware(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		auth := r.Header.Get("Authorization")
		if auth == "" {
			writeError(w, http.StatusUnauthorized, "authorization header required")
			return
		}
		parts := strings.SplitN(auth, " ", 2)
		if len(parts) != 2 || parts[0] != "Bearer" {
			writeError(w, http.StatusUnauthorized, "invalid authorization format")
			return
		}
		tokenString := parts[1]
		token, err := jwt.Parse(tokenString, func(token *jwt.Token) (interface{}, error) {
			if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
				return nil, jwt.ErrSignatureInvalid
			}
			return []byte(h.jwtSecret), nil
		})
		if err != nil || !token.Valid {
			writeError(w, http.StatusUnauthorized, "invalid token")
			return
		}
		claims, ok := token.Claims.(jwt.MapClaims)
		if !ok || !claims.VerifyExpiresAt(time.Now().Unix(), true) {
			writeError(w, http.StatusUnauthorized, "token expired")
			return
		}

		adminID, _ := claims["sub"].(string)
		if adminID == "" {
			writeError(w, http.StatusUnauthorized, "missing token claim")
			return
		}
		email, _ := claims["email"].(string)

		ctx := authz.WithAdmin(r.Context(), adminID, email)
		next.ServeHTTP(w, r.WithContext(ctx))
	})
}
