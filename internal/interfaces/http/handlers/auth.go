// internal/interfaces/http/handlers/auth.go
package handlers

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/your-org/shopping-cart-backend/internal/config"
	"github.com/your-org/shopping-cart-backend/internal/domain/user"
	"github.com/your-org/shopping-cart-backend/internal/interfaces/http/middleware"
	"github.com/your-org/shopping-cart-backend/internal/pkg/auth"
)

// AuthHandler handles registration, login, logout and profile endpoints
type AuthHandler struct {
	userService *user.Service
	jwtManager  *auth.JWTManager
	blacklist   *auth.Blacklist
	config      *config.Config
}

// NewAuthHandler creates a new auth handler
func NewAuthHandler(userService *user.Service, jwtManager *auth.JWTManager, blacklist *auth.Blacklist, cfg *config.Config) *AuthHandler {
	return &AuthHandler{
		userService: userService,
		jwtManager:  jwtManager,
		blacklist:   blacklist,
		config:      cfg,
	}
}

// Register handles POST /auth/register
func (h *AuthHandler) Register(c *gin.Context) {
	var req user.RegisterRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondBindingError(c, err)
		return
	}

	userResponse, err := h.userService.Register(c.Request.Context(), &req)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusCreated, gin.H{
		"message": "User registered successfully",
		"data":    userResponse,
	})
}

// Login handles POST /auth/login. A successful login issues a JWT carried
// both in the response body and in an HTTP-only cookie.
func (h *AuthHandler) Login(c *gin.Context) {
	var req user.LoginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondBindingError(c, err)
		return
	}

	userResponse, err := h.userService.Login(c.Request.Context(), &req)
	if err != nil {
		respondError(c, err)
		return
	}

	token, err := h.jwtManager.GenerateToken(userResponse.ID, userResponse.Email)
	if err != nil {
		respondError(c, err)
		return
	}

	h.setAuthCookie(c, token, int(h.config.JWT.TokenExpiry.Seconds()))

	c.JSON(http.StatusOK, gin.H{
		"message": "Login successful",
		"data": gin.H{
			"user":  userResponse,
			"token": token,
		},
	})
}

// Logout handles POST /auth/logout. The current token is blacklisted for
// the rest of its lifetime and the auth cookie is cleared.
func (h *AuthHandler) Logout(c *gin.Context) {
	claims, ok := middleware.GetTokenClaimsFromContext(c)
	if ok && claims.ExpiresAt != nil {
		ttl := time.Until(claims.ExpiresAt.Time)
		if err := h.blacklist.Revoke(c.Request.Context(), claims.ID, ttl); err != nil {
			respondError(c, err)
			return
		}
	}

	h.setAuthCookie(c, "", -1)

	c.JSON(http.StatusOK, gin.H{
		"message": "Logout successful",
	})
}

// GetProfile handles GET /auth/me
func (h *AuthHandler) GetProfile(c *gin.Context) {
	userID, exists := middleware.GetUserIDFromContext(c)
	if !exists {
		c.JSON(http.StatusUnauthorized, gin.H{
			"error": "Authentication required",
		})
		return
	}

	userResponse, err := h.userService.GetUser(c.Request.Context(), userID)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"message": "Profile retrieved successfully",
		"data":    userResponse,
	})
}

func (h *AuthHandler) setAuthCookie(c *gin.Context, token string, maxAge int) {
	c.SetSameSite(http.SameSiteLaxMode)
	c.SetCookie(auth.CookieName, token, maxAge, "/", "", h.config.IsProduction(), true)
}
