package bootstrap

import (
	"fmt"
	"strings"

	"github.com/caic-xyz/website/internal/controller"
	"github.com/caic-xyz/website/internal/middleware"

	"github.com/gin-gonic/gin"
)

func (app *BootstrapApp) setupRouter() (*gin.Engine, error) {
	engine := gin.New()
	engine.Use(gin.Recovery())

	if len(app.config.TrustedProxies) > 0 {
		err := engine.SetTrustedProxies(strings.Split(app.config.TrustedProxies, ","))

		if err != nil {
			return nil, fmt.Errorf("failed to set trusted proxies: %w", err)
		}
	}

	contextMiddleware := middleware.NewContextMiddleware(app.services.authService)

	err := contextMiddleware.Init()

	if err != nil {
		return nil, fmt.Errorf("failed to initialize context middleware: %w", err)
	}

	engine.Use(contextMiddleware.Middleware())

	zerologMiddleware := middleware.NewZerologMiddleware()

	err = zerologMiddleware.Init()

	if err != nil {
		return nil, fmt.Errorf("failed to initialize zerolog middleware: %w", err)
	}

	engine.Use(zerologMiddleware.Middleware())

	authController := controller.NewAuthController(controller.AuthControllerConfig{
		AdminPath: "/admin/waitlist",
	}, &engine.RouterGroup, app.services.authService, app.services.oauthService)

	authController.SetupRoutes()

	waitlistController := controller.NewWaitlistController(controller.WaitlistControllerConfig{
		LoginPath: "/auth/google",
	}, &engine.RouterGroup, app.services.authService, app.services.waitlistService, app.services.webhookService)

	waitlistController.SetupRoutes()

	healthController := controller.NewHealthController(&engine.RouterGroup)

	healthController.SetupRoutes()

	engine.NoRoute(func(c *gin.Context) {
		c.String(404, "not found")
	})

	return engine, nil
}
