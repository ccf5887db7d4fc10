package service

import (
	"net/http"

	"github.com/caic-xyz/website/internal/config"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog/log"
)

type AuthServiceConfig struct {
	AdminEmails  []string
	SecureCookie bool
}

// AuthService is the gate in front of the admin endpoints. Authentication is
// the session cookie (verified by the session service), authorization is an
// exact match against the configured admin allowlist.
type AuthService struct {
	Config   AuthServiceConfig
	Sessions *SessionService
}

func NewAuthService(config AuthServiceConfig, sessions *SessionService) *AuthService {
	return &AuthService{
		Config:   config,
		Sessions: sessions,
	}
}

// Authenticate resolves the session cookie into an identity. Missing cookie,
// malformed token, bad signature and expired token all look the same to the
// caller.
func (auth *AuthService) Authenticate(c *gin.Context) (string, bool) {
	token, err := c.Cookie(config.SessionCookieName)
	if err != nil {
		return "", false
	}
	return auth.Sessions.Verify(token)
}

// IsAdmin checks the allowlist. Matching is intentionally exact, emails must
// be configured exactly as the identity provider reports them.
func (auth *AuthService) IsAdmin(email string) bool {
	for _, admin := range auth.Config.AdminEmails {
		if admin == email {
			return true
		}
	}
	return false
}

func (auth *AuthService) CreateSessionCookie(c *gin.Context, email string) {
	log.Debug().Msg("Creating session cookie")
	token := auth.Sessions.Mint(email)
	c.SetSameSite(http.SameSiteLaxMode)
	c.SetCookie(config.SessionCookieName, token, config.SessionCookieMaxAge, "/", "", auth.Config.SecureCookie, true)
}

func (auth *AuthService) DeleteSessionCookie(c *gin.Context) {
	log.Debug().Msg("Deleting session cookie")
	c.SetSameSite(http.SameSiteLaxMode)
	c.SetCookie(config.SessionCookieName, "", -1, "/", "", auth.Config.SecureCookie, true)
}

func (auth *AuthService) CreateCSRFCookie(c *gin.Context, state string) {
	c.SetSameSite(http.SameSiteLaxMode)
	c.SetCookie(config.CSRFCookieName, state, config.CSRFCookieMaxAge, "/", "", auth.Config.SecureCookie, true)
}

func (auth *AuthService) DeleteCSRFCookie(c *gin.Context) {
	c.SetSameSite(http.SameSiteLaxMode)
	c.SetCookie(config.CSRFCookieName, "", -1, "/", "", auth.Config.SecureCookie, true)
}

func (auth *AuthService) GetCSRFCookie(c *gin.Context) (string, error) {
	return c.Cookie(config.CSRFCookieName)
}
