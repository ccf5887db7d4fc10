package middleware

import (
	"github.com/caic-xyz/website/internal/config"
	"github.com/caic-xyz/website/internal/service"

	"github.com/gin-gonic/gin"
)

type ContextMiddleware struct {
	auth *service.AuthService
}

func NewContextMiddleware(auth *service.AuthService) *ContextMiddleware {
	return &ContextMiddleware{
		auth: auth,
	}
}

func (m *ContextMiddleware) Init() error {
	return nil
}

// Middleware resolves the session cookie into a user context for downstream
// handlers. Anything short of a valid signed token leaves the request
// anonymous.
func (m *ContextMiddleware) Middleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		email, ok := m.auth.Authenticate(c)

		if !ok {
			c.Set("context", &config.UserContext{})
			c.Next()
			return
		}

		c.Set("context", &config.UserContext{
			Email:      email,
			IsLoggedIn: true,
		})
		c.Next()
	}
}
