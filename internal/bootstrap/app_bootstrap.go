package bootstrap

import (
	"fmt"
	"net/url"
	"strings"

	"github.com/caic-xyz/website/internal/config"
	"github.com/caic-xyz/website/internal/utils"

	"github.com/rs/zerolog/log"
)

type BootstrapApp struct {
	config  config.Config
	context struct {
		uuid        string
		adminEmails []string
		redirectURL string
	}
	services Services
}

func NewBootstrapApp(config config.Config) *BootstrapApp {
	return &BootstrapApp{
		config: config,
	}
}

func (app *BootstrapApp) Setup() error {
	// Allowlist
	app.context.adminEmails = utils.ParseCommaString(app.config.AdminEmails)

	if len(app.context.adminEmails) == 0 {
		return fmt.Errorf("no admin emails configured")
	}

	// The provider redirects back to the app origin
	app.context.redirectURL = strings.TrimSuffix(app.config.AppURL, "/") + "/auth/callback"

	// Instance id, used to tag webhook notifications
	appUrl, _ := url.Parse(app.config.AppURL) // Already validated
	app.context.uuid = utils.GenerateUUID(appUrl.Hostname())

	log.Trace().Interface("config", app.config).Msg("Config dump")
	log.Trace().Strs("adminEmails", app.context.adminEmails).Msg("Admin allowlist")
	log.Trace().Str("redirectURL", app.context.redirectURL).Msg("OAuth redirect URL")
	log.Trace().Str("uuid", app.context.uuid).Msg("Instance id")

	// Services
	services, err := app.initServices()

	if err != nil {
		return fmt.Errorf("failed to initialize services: %w", err)
	}

	app.services = services

	// Router
	router, err := app.setupRouter()

	if err != nil {
		return fmt.Errorf("failed to setup routes: %w", err)
	}

	// Start server
	address := fmt.Sprintf("%s:%d", app.config.Address, app.config.Port)
	log.Info().Msgf("Starting server on %s", address)
	if err := router.Run(address); err != nil {
		log.Fatal().Err(err).Msg("Failed to start server")
	}

	return nil
}
