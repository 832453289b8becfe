package handler

import (
	"errors"
	"net/http"
	"time"

	"hospital-admission-backend/internal/service"
	"hospital-admission-backend/pkg/utils"

	"github.com/gin-gonic/gin"
)

type AuthHandler struct {
	authService *service.AuthService
}

func NewAuthHandler(authService *service.AuthService) *AuthHandler {
	return &AuthHandler{
		authService: authService,
	}
}

type LoginRequest struct {
	Email    string `json:"email" binding:"required,email"`
	Password string `json:"password" binding:"required"`
	Remember bool   `json:"remember"`
}

// Login authenticates against the web guard and redirects by role
func (h *AuthHandler) Login(c *gin.Context) {
	h.login(c, service.GuardWeb)
}

// AdminLogin authenticates against the narrower admin guard
func (h *AuthHandler) AdminLogin(c *gin.Context) {
	h.login(c, service.GuardAdmin)
}

func (h *AuthHandler) login(c *gin.Context, guard string) {
	var req LoginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.ErrorResponse(c, http.StatusBadRequest, "Invalid request body")
		return
	}

	response, err := h.authService.Login(req.Email, req.Password, req.Remember, guard)
	if err != nil {
		if errors.Is(err, service.ErrInvalidCredentials) {
			// Generic message, never indicating which field was wrong; the
			// email is echoed back so the login form can be re-populated
			c.JSON(http.StatusUnauthorized, gin.H{
				"success": false,
				"error":   err.Error(),
				"email":   req.Email,
			})
			return
		}
		utils.ErrorResponse(c, http.StatusInternalServerError, "Failed to log in")
		return
	}

	setRefreshCookie(c, response.RefreshToken)

	utils.SuccessResponse(c, gin.H{
		"access_token": response.AccessToken,
		"redirect":     response.Redirect,
		"user":         response.User,
	})
}

// Refresh generates a new access token from the refresh token cookie
func (h *AuthHandler) Refresh(c *gin.Context) {
	refreshToken, err := c.Cookie("refresh_token")
	if err != nil {
		utils.ErrorResponse(c, http.StatusUnauthorized, "Refresh token not found")
		return
	}

	accessToken, err := h.authService.RefreshAccessToken(refreshToken)
	if err != nil {
		utils.ErrorResponse(c, http.StatusUnauthorized, "Invalid or expired refresh token")
		return
	}

	utils.SuccessResponse(c, gin.H{
		"access_token": accessToken,
	})
}

// Logout revokes the refresh token and clears the session cookie
func (h *AuthHandler) Logout(c *gin.Context) {
	refreshToken, err := c.Cookie("refresh_token")
	if err != nil {
		// No session cookie; clear it anyway and report success
		clearRefreshCookie(c)
		utils.MessageResponse(c, "Logged out successfully")
		return
	}

	if err := h.authService.Logout(refreshToken); err != nil {
		utils.ErrorResponse(c, http.StatusInternalServerError, "Failed to logout")
		return
	}

	clearRefreshCookie(c)

	utils.SuccessResponse(c, gin.H{
		"message":  "Logged out successfully",
		"redirect": "/login",
	})
}

func setRefreshCookie(c *gin.Context, token string) {
	c.SetCookie(
		"refresh_token",               // name
		token,                         // value
		int(7*24*time.Hour.Seconds()), // maxAge in seconds (7 days)
		"/",                           // path
		"",                            // domain (empty means current domain)
		false,                         // secure (set to true in production with HTTPS)
		true,                          // httpOnly
	)
}

func clearRefreshCookie(c *gin.Context) {
	c.SetCookie("refresh_token", "", -1, "/", "", false, true)
}
