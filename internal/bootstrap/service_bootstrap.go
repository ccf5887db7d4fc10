package bootstrap

import (
	"github.com/caic-xyz/website/internal/config"
	"github.com/caic-xyz/website/internal/service"
)

type Services struct {
	databaseService *service.DatabaseService
	waitlistService *service.WaitlistService
	sessionService  *service.SessionService
	authService     *service.AuthService
	oauthService    *service.OAuthService
	webhookService  *service.WebhookService
}

func (app *BootstrapApp) initServices() (Services, error) {
	services := Services{}

	databaseService := service.NewDatabaseService(service.DatabaseServiceConfig{
		DatabasePath: app.config.DatabasePath,
	})

	err := databaseService.Init()

	if err != nil {
		return Services{}, err
	}

	services.databaseService = databaseService

	services.waitlistService = service.NewWaitlistService(databaseService.GetDatabase())

	services.sessionService = service.NewSessionService(service.SessionServiceConfig{
		Secret:        app.config.SessionSecret,
		SessionExpiry: config.SessionCookieMaxAge,
	})

	services.authService = service.NewAuthService(service.AuthServiceConfig{
		AdminEmails:  app.context.adminEmails,
		SecureCookie: app.config.SecureCookie,
	}, services.sessionService)

	oauthService := service.NewOAuthService(service.OAuthServiceConfig{
		ClientID:     app.config.GoogleClientID,
		ClientSecret: app.config.GoogleClientSecret,
		RedirectURL:  app.context.redirectURL,
	})

	err = oauthService.Init()

	if err != nil {
		return Services{}, err
	}

	services.oauthService = oauthService

	services.webhookService = service.NewWebhookService(service.WebhookServiceConfig{
		WebhookURL: app.config.WebhookURL,
		InstanceID: app.context.uuid,
	})

	return services, nil
}
