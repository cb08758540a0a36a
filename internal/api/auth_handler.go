package api

import (
	"errors"
	"net/http"

	"github.com/go-playground/validator/v10"
	"github.com/taskwell/taskwell-api/internal/api/shared"
	"github.com/taskwell/taskwell-api/internal/platform/logger"
	"github.com/taskwell/taskwell-api/internal/service"
	"github.com/taskwell/taskwell-api/internal/service/auth"
	"github.com/taskwell/taskwell-api/internal/store"
)

// AuthHandler handles authentication-related API requests.
type AuthHandler struct {
	registrar        service.UserRegistrar
	userStore        store.UserStore
	jwtService       auth.JWTService
	passwordVerifier auth.PasswordVerifier
	validator        *validator.Validate
}

// NewAuthHandler creates a new AuthHandler with the given dependencies.
func NewAuthHandler(
	registrar service.UserRegistrar,
	userStore store.UserStore,
	jwtService auth.JWTService,
	passwordVerifier auth.PasswordVerifier,
) *AuthHandler {
	return &AuthHandler{
		registrar:        registrar,
		userStore:        userStore,
		jwtService:       jwtService,
		passwordVerifier: passwordVerifier,
		validator:        validator.New(),
	}
}

// Register handles POST /register.
func (h *AuthHandler) Register(w http.ResponseWriter, r *http.Request) {
	log := logger.FromContext(r.Context())

	var req RegisterRequest
	if err := shared.DecodeJSON(r, &req); err != nil {
		shared.RespondWithError(w, r, http.StatusBadRequest,
			shared.CodeValidationError, "Invalid request format")
		return
	}

	if err := h.validator.Struct(req); err != nil {
		shared.RespondWithError(w, r, http.StatusBadRequest,
			shared.CodeValidationError, "Username and password are required")
		return
	}

	user, err := h.registrar.RegisterUser(r.Context(), req.Username, req.Password)
	if err != nil {
		switch {
		case errors.Is(err, store.ErrUsernameExists):
			shared.RespondWithError(w, r, http.StatusConflict,
				shared.CodeUsernameTaken, "Username already exists")
		case errors.Is(err, store.ErrInvalidEntity):
			shared.RespondWithError(w, r, http.StatusBadRequest,
				shared.CodeValidationError, "Invalid user data")
		default:
			shared.RespondWithErrorAndLog(w, r, http.StatusInternalServerError,
				shared.CodeInternalError, "Failed to create user", err)
		}
		return
	}

	log.Info("user registered", "user_id", user.ID)
	shared.RespondWithJSON(w, r, http.StatusOK, MessageResponse{
		Message: "User created successfully",
	})
}

// Login handles POST /login.
// A missing user and a wrong password produce the same response, so the
// caller cannot tell which field was wrong.
func (h *AuthHandler) Login(w http.ResponseWriter, r *http.Request) {
	log := logger.FromContext(r.Context())

	var req LoginRequest
	if err := shared.DecodeJSON(r, &req); err != nil {
		shared.RespondWithError(w, r, http.StatusBadRequest,
			shared.CodeValidationError, "Invalid request format")
		return
	}

	if err := h.validator.Struct(req); err != nil {
		shared.RespondWithError(w, r, http.StatusBadRequest,
			shared.CodeValidationError, "Username and password are required")
		return
	}

	user, err := h.userStore.GetByUsername(r.Context(), req.Username)
	if err != nil {
		if errors.Is(err, store.ErrUserNotFound) {
			shared.RespondWithError(w, r, http.StatusUnauthorized,
				shared.CodeInvalidCredentials, "Invalid username or password")
			return
		}
		shared.RespondWithErrorAndLog(w, r, http.StatusInternalServerError,
			shared.CodeInternalError, "Failed to authenticate user", err)
		return
	}

	if err := h.passwordVerifier.Compare(user.HashedPassword, req.Password); err != nil {
		shared.RespondWithError(w, r, http.StatusUnauthorized,
			shared.CodeInvalidCredentials, "Invalid username or password")
		return
	}

	token, err := h.jwtService.GenerateToken(r.Context(), user.ID)
	if err != nil {
		shared.RespondWithErrorAndLog(w, r, http.StatusInternalServerError,
			shared.CodeInternalError, "Failed to generate authentication token", err)
		return
	}

	log.Info("user logged in", "user_id", user.ID)
	shared.RespondWithJSON(w, r, http.StatusOK, LoginResponse{AccessToken: token})
}

// Logout handles POST /logout. The presented token's ID is revoked until
// its natural expiry; the user record is untouched.
func (h *AuthHandler) Logout(w http.ResponseWriter, r *http.Request) {
	log := logger.FromContext(r.Context())

	claims, ok := getClaimsFromContext(r)
	if !ok {
		log.Warn("token claims not found in request context")
		shared.RespondWithError(w, r, http.StatusUnauthorized,
			shared.CodeTokenInvalid, "Invalid access token")
		return
	}

	if err := h.jwtService.RevokeToken(r.Context(), claims); err != nil {
		shared.RespondWithErrorAndLog(w, r, http.StatusInternalServerError,
			shared.CodeInternalError, "Failed to log out", err)
		return
	}

	log.Info("user logged out", "user_id", claims.UserID)
	shared.RespondWithJSON(w, r, http.StatusOK, MessageResponse{
		Message: "User logged out successfully",
	})
}
