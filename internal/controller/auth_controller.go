package controller

import (
	"net/http"

	"github.com/caic-xyz/website/internal/service"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog/log"
)

type AuthControllerConfig struct {
	AdminPath string
}

type AuthController struct {
	Config AuthControllerConfig
	Router *gin.RouterGroup
	Auth   *service.AuthService
	OAuth  *service.OAuthService
}

func NewAuthController(config AuthControllerConfig, router *gin.RouterGroup, auth *service.AuthService, oauth *service.OAuthService) *AuthController {
	return &AuthController{
		Config: config,
		Router: router,
		Auth:   auth,
		OAuth:  oauth,
	}
}

func (controller *AuthController) SetupRoutes() {
	authGroup := controller.Router.Group("/auth")
	authGroup.GET("/google", controller.loginHandler)
	authGroup.GET("/callback", controller.callbackHandler)
	authGroup.GET("/logout", controller.logoutHandler)
}

func (controller *AuthController) loginHandler(c *gin.Context) {
	state := controller.OAuth.GenerateState()
	controller.Auth.CreateCSRFCookie(c, state)
	c.Redirect(http.StatusFound, controller.OAuth.GetAuthURL(state))
}

func (controller *AuthController) callbackHandler(c *gin.Context) {
	code := c.Query("code")
	state := c.Query("state")
	csrfCookie, err := controller.Auth.GetCSRFCookie(c)

	if code == "" || state == "" || err != nil || state != csrfCookie {
		log.Warn().Err(err).Msg("CSRF state mismatch or missing callback parameters")
		c.JSON(403, gin.H{
			"status":  403,
			"message": "Forbidden",
		})
		return
	}

	idToken, err := controller.OAuth.ExchangeCode(code)

	if err != nil {
		log.Error().Err(err).Msg("Failed to exchange OAuth code")
		c.JSON(502, gin.H{
			"status":  502,
			"message": "Bad Gateway",
		})
		return
	}

	claims, err := controller.OAuth.ParseIDToken(idToken)

	if err != nil {
		log.Error().Err(err).Msg("Failed to parse id_token")
		c.JSON(502, gin.H{
			"status":  502,
			"message": "Bad Gateway",
		})
		return
	}

	if claims.Email == "" || !claims.EmailVerified {
		log.Warn().Msg("Provider did not return a verified email")
		c.JSON(403, gin.H{
			"status":  403,
			"message": "Forbidden",
		})
		return
	}

	if !controller.Auth.IsAdmin(claims.Email) {
		log.Warn().Str("email", claims.Email).Msg("Email not in admin allowlist")
		c.JSON(403, gin.H{
			"status":  403,
			"message": "Forbidden",
		})
		return
	}

	controller.Auth.CreateSessionCookie(c, claims.Email)
	controller.Auth.DeleteCSRFCookie(c)

	log.Info().Str("email", claims.Email).Msg("Admin logged in")
	c.Redirect(http.StatusFound, controller.Config.AdminPath)
}

// logoutHandler only clears the client cookie. Tokens are stateless so a
// previously issued copy stays valid until its natural expiry, there is no
// server side revocation list.
func (controller *AuthController) logoutHandler(c *gin.Context) {
	controller.Auth.DeleteSessionCookie(c)
	c.Redirect(http.StatusFound, "/")
}
