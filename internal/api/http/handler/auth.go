package handler

import (
	"errors"
	"log/slog"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/lanestel/admin-gateway/internal/api/http/dto"
	"github.com/lanestel/admin-gateway/internal/api/http/middleware"
	"github.com/lanestel/admin-gateway/internal/auth"
)

type AuthHandler struct {
	authService    *auth.Service
	cookieLifetime int
	cookieSecure   bool
}

func NewAuthHandler(authService *auth.Service, cookieLifetimeSeconds int, cookieSecure bool) *AuthHandler {
	return &AuthHandler{
		authService:    authService,
		cookieLifetime: cookieLifetimeSeconds,
		cookieSecure:   cookieSecure,
	}
}

// Login checks the submitted credential pair and on success issues a
// session token, returned in the body and set as an HttpOnly cookie for
// the browser flow. A malformed body and a wrong credential pair are
// indistinguishable to the caller.
func (h *AuthHandler) Login(c *gin.Context) {
	var req dto.LoginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "invalid credentials"})
		return
	}

	token, err := h.authService.Login(req.Username, req.Password)
	if err != nil {
		if errors.Is(err, auth.ErrInvalidCredentials) {
			c.JSON(http.StatusUnauthorized, gin.H{"error": "invalid credentials"})
			return
		}
		slog.Error("Failed to issue session token", "error", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "internal error"})
		return
	}

	c.SetCookie(middleware.SessionCookieName, token, h.cookieLifetime, "/", "", h.cookieSecure, true)
	c.JSON(http.StatusOK, dto.LoginResponse{Token: token})
}

// Logout clears the session cookie. Issued tokens stay valid until they
// expire; there is no server-side revocation.
func (h *AuthHandler) Logout(c *gin.Context) {
	c.SetCookie(middleware.SessionCookieName, "", -1, "/", "", h.cookieSecure, true)
	c.JSON(http.StatusOK, gin.H{"message": "logged out"})
}
