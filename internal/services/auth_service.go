package services

import (
	"log"

	"github.com/devfolio/backend/internal/config"
	"github.com/devfolio/backend/pkg/crypto"
	"github.com/devfolio/backend/pkg/jwt"
)

// AuthService gates the admin dashboard behind a single passphrase. A
// wrong passphrase answers 404 so probing the endpoint looks the same
// as hitting a route that does not exist.
type AuthService struct {
	cfg *config.Config
}

func NewAuthService(cfg *config.Config) *AuthService {
	return &AuthService{cfg: cfg}
}

// Login checks the passphrase and returns a signed session token. The
// hashed variant wins when both are configured.
func (s *AuthService) Login(passKey string) *Result {
	if !s.checkPassKey(passKey) {
		return notFound("Invalid password key")
	}

	token, err := jwt.GenerateToken(jwt.RoleAdmin, s.cfg.JWTSecret, s.cfg.AdminTokenDuration)
	if err != nil {
		log.Printf("ERROR: sign session token: %v", err)
		return serverError("Failed to create session")
	}

	return ok("Logged in successfully", map[string]interface{}{"token": token})
}

// Verify reports whether a presented token still grants admin access.
func (s *AuthService) Verify(token string) bool {
	return jwt.IsAdminToken(token, s.cfg.JWTSecret)
}

func (s *AuthService) checkPassKey(passKey string) bool {
	if passKey == "" {
		return false
	}
	if s.cfg.AdminPassKeyHash != "" {
		return crypto.CheckPassKeyHash(passKey, s.cfg.AdminPassKeyHash)
	}
	return crypto.ConstantTimeEquals(passKey, s.cfg.AdminPassKey)
}
