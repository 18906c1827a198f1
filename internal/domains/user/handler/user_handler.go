package handler

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"poems-backend/internal/domains/user/model"
	"poems-backend/internal/domains/user/service"
	"poems-backend/internal/shared/middleware"
	"poems-backend/internal/shared/response"
	"poems-backend/pkg/jwt"
	"poems-backend/pkg/logger"
)

// UserHandler serves the auth endpoints. Stateless; holds dependencies only.
type UserHandler struct {
	service       service.Service
	jwtManager    *jwt.Manager
	secureCookies bool
}

func NewUserHandler(svc service.Service, jwtManager *jwt.Manager, secureCookies bool) *UserHandler {
	return &UserHandler{
		service:       svc,
		jwtManager:    jwtManager,
		secureCookies: secureCookies,
	}
}

// Register handles POST /auth/register
func (h *UserHandler) Register(c *gin.Context) {
	var req model.RegisterRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, "Username and password required")
		return
	}

	if err := req.Validate(); err != nil {
		response.BadRequest(c, err.Error())
		return
	}

	u, err := h.service.Register(c.Request.Context(), req)
	if err != nil {
		switch {
		case errors.Is(err, model.ErrUsernameTaken):
			response.BadRequest(c, "Username already exists")
		case errors.Is(err, model.ErrEmailTaken):
			response.BadRequest(c, "Email already exists")
		default:
			logger.Error("registration failed", err)
			response.InternalServerError(c, "Failed to register")
		}
		return
	}

	if err := h.setSessionCookie(c, u.ID.String()); err != nil {
		logger.Error("session creation failed", err)
		response.InternalServerError(c, "Failed to register")
		return
	}

	response.Success(c, http.StatusOK, u.ToPublic())
}

// Login handles POST /auth/login
func (h *UserHandler) Login(c *gin.Context) {
	var req model.LoginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, "Username and password required")
		return
	}

	if err := req.Validate(); err != nil {
		response.BadRequest(c, err.Error())
		return
	}

	u, err := h.service.Login(c.Request.Context(), req)
	if err != nil {
		if errors.Is(err, model.ErrInvalidCredentials) {
			// Identical response for unknown username and wrong password.
			response.Unauthorized(c, "Invalid credentials")
			return
		}
		logger.Error("login failed", err)
		response.InternalServerError(c, "Failed to login")
		return
	}

	if err := h.setSessionCookie(c, u.ID.String()); err != nil {
		logger.Error("session creation failed", err)
		response.InternalServerError(c, "Failed to login")
		return
	}

	response.Success(c, http.StatusOK, u.ToPublic())
}

// Logout handles POST /auth/logout by expiring the session cookie.
func (h *UserHandler) Logout(c *gin.Context) {
	h.clearSessionCookie(c)
	response.Success(c, http.StatusOK, gin.H{"message": "Logged out"})
}

// Me handles GET /auth/me. Always 200; user is null when unauthenticated.
func (h *UserHandler) Me(c *gin.Context) {
	userID, ok := middleware.CurrentUserID(c)
	if !ok {
		response.Success(c, http.StatusOK, model.MeResponse{User: nil})
		return
	}

	u, err := h.service.GetByID(c.Request.Context(), userID)
	if err != nil {
		if errors.Is(err, model.ErrUserNotFound) {
			// Valid token for a user that no longer exists.
			response.Success(c, http.StatusOK, model.MeResponse{User: nil})
			return
		}
		logger.Error("session lookup failed", err)
		response.InternalServerError(c, "Failed to resolve session")
		return
	}

	pub := u.ToPublic()
	response.Success(c, http.StatusOK, model.MeResponse{User: &pub})
}

// setSessionCookie issues a signed session token and attaches it as an
// http-only, same-site-lax cookie valid for 7 days.
func (h *UserHandler) setSessionCookie(c *gin.Context, userID string) error {
	token, err := h.jwtManager.GenerateSessionToken(userID)
	if err != nil {
		return err
	}

	c.SetSameSite(http.SameSiteLaxMode)
	c.SetCookie(
		middleware.SessionCookieName,
		token,
		int(jwt.SessionDuration.Seconds()),
		"/",
		"",
		h.secureCookies,
		true,
	)
	return nil
}

func (h *UserHandler) clearSessionCookie(c *gin.Context) {
	c.SetSameSite(http.SameSiteLaxMode)
	c.SetCookie(middleware.SessionCookieName, "", -1, "/", "", h.secureCookies, true)
}
