package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/devfolio/backend/internal/config"
	"github.com/devfolio/backend/internal/services"
)

type AuthHandler struct {
	authService *services.AuthService
	cfg         *config.Config
}

func NewAuthHandler(authService *services.AuthService, cfg *config.Config) *AuthHandler {
	return &AuthHandler{authService: authService, cfg: cfg}
}

// Login exchanges the dashboard passphrase for a session cookie.
func (h *AuthHandler) Login(c *gin.Context) {
	var req struct {
		PassKey string `json:"passKey" binding:"required"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"status": http.StatusBadRequest, "message": err.Error()})
		return
	}

	res := h.authService.Login(req.PassKey)
	if res.Status != http.StatusOK {
		c.JSON(res.Status, res)
		return
	}

	token := res.Data.(map[string]interface{})["token"].(string)
	c.SetSameSite(http.SameSiteLaxMode)
	c.SetCookie(
		h.cfg.AdminCookieName,
		token,
		int(h.cfg.AdminTokenDuration.Seconds()),
		"/",
		"",
		h.cfg.Env == "production",
		true,
	)
	c.JSON(res.Status, res)
}

// Logout clears the session cookie.
func (h *AuthHandler) Logout(c *gin.Context) {
	c.SetSameSite(http.SameSiteLaxMode)
	c.SetCookie(h.cfg.AdminCookieName, "", -1, "/", "", h.cfg.Env == "production", true)
	c.JSON(http.StatusOK, gin.H{"status": http.StatusOK, "message": "Logged out successfully"})
}

// Session reports whether the presented token still grants admin access.
func (h *AuthHandler) Session(c *gin.Context) {
	token, err := c.Cookie(h.cfg.AdminCookieName)
	if err != nil || !h.authService.Verify(token) {
		c.JSON(http.StatusUnauthorized, gin.H{"status": http.StatusUnauthorized, "authenticated": false})
		return
	}
	c.JSON(http.StatusOK, gin.H{"status": http.StatusOK, "authenticated": true})
}
